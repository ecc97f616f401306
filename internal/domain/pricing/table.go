package pricing

// PriceTable maps identity codes to a per-round amount.
type PriceTable map[IdentityCode]float64

// LegacyPrices is the flat pre-map price shape still stored on older records.
type LegacyPrices struct {
	Walkin  *float64 `json:"price_walkin,omitempty"`
	Guest   *float64 `json:"price_guest,omitempty"`
	Member1 *float64 `json:"price_member1,omitempty"`
	Member2 *float64 `json:"price_member2,omitempty"`
	Member3 *float64 `json:"price_member3,omitempty"`
	Member4 *float64 `json:"price_member4,omitempty"`
}

func (l LegacyPrices) IsZero() bool {
	return l.Walkin == nil && l.Guest == nil &&
		l.Member1 == nil && l.Member2 == nil && l.Member3 == nil && l.Member4 == nil
}

// NormalizePrices returns the canonical table for a record. A non-empty map wins;
// otherwise the legacy flat fields are lifted into walkin/guest/member_1..4 keys.
// The result is always a fresh map.
func NormalizePrices(prices PriceTable, legacy LegacyPrices) PriceTable {
	if len(prices) > 0 {
		return prices.Clone()
	}

	out := make(PriceTable, 6)
	put := func(code IdentityCode, v *float64) {
		if v != nil {
			out[code] = *v
		}
	}
	put(IdentityWalkin, legacy.Walkin)
	put(IdentityGuest, legacy.Guest)
	put(IdentityMember1, legacy.Member1)
	put(IdentityMember2, legacy.Member2)
	put(IdentityMember3, legacy.Member3)
	put(IdentityMember4, legacy.Member4)
	return out
}

func (t PriceTable) Clone() PriceTable {
	if t == nil {
		return nil
	}
	out := make(PriceTable, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Resolve looks up a price with the fallback chain exact -> member_1 (member
// codes only) -> walkin. The bool is false when nothing in the chain is priced.
func (t PriceTable) Resolve(code IdentityCode) (float64, bool) {
	code = code.Normalize()
	if v, ok := t[code]; ok {
		return v, true
	}
	if code.IsMember() {
		if v, ok := t[IdentityMember1]; ok {
			return v, true
		}
	}
	if v, ok := t[IdentityWalkin]; ok {
		return v, true
	}
	return 0, false
}
