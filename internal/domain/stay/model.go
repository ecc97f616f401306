package stay

import (
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
)

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Pricing holds a package's per-identity prices. Older packages only carry the
// flat legacy fields.
type Pricing struct {
	Prices           pricing.PriceTable `json:"prices,omitempty"`
	BasePrice        *float64           `json:"base_price,omitempty"`
	WeekendSurcharge float64            `json:"weekend_surcharge,omitempty"`
	pricing.LegacyPrices
}

type Includes struct {
	CaddyIncluded bool `json:"caddy_included"`
	CartIncluded  bool `json:"cart_included"`
}

// Package is a stay-and-play bundle priced per player.
type Package struct {
	ID        string
	ClubID    string
	Name      string
	Status    Status
	Pricing   Pricing
	Includes  Includes
	CreatedAt time.Time
}

func (p Package) IsActive() bool {
	return p.Status == StatusActive
}

// PriceSource names the field a package price was taken from.
type PriceSource string

const (
	SourceIdentity PriceSource = "identity"
	SourceWalkin   PriceSource = "walkin"
	SourceBase     PriceSource = "base_price"
	SourceLegacy   PriceSource = "legacy"
)

// Price is the resolved per-player package price.
type Price struct {
	PackageID        string               `json:"package_id"`
	PackageName      string               `json:"package_name"`
	IdentityCode     pricing.IdentityCode `json:"identity_code"`
	BasePrice        float64              `json:"base_price"`
	WeekendSurcharge float64              `json:"weekend_surcharge"`
	PerPlayer        float64              `json:"per_player"`
	Source           PriceSource          `json:"source"`
	CaddyIncluded    bool                 `json:"caddy_included"`
	CartIncluded     bool                 `json:"cart_included"`
}

// PriceFor resolves the per-player price: exact identity, then walkin, then the
// base price, then the legacy flat fields. Weekend and holiday dates add the
// surcharge. The bool is false when the package prices nothing.
func (p Package) PriceFor(code pricing.IdentityCode, dayType calendar.DayType) (Price, bool) {
	code = code.Normalize()
	base, source, ok := p.basePrice(code)
	if !ok {
		return Price{}, false
	}

	out := Price{
		PackageID:     p.ID,
		PackageName:   p.Name,
		IdentityCode:  code,
		BasePrice:     base,
		PerPlayer:     base,
		Source:        source,
		CaddyIncluded: p.Includes.CaddyIncluded,
		CartIncluded:  p.Includes.CartIncluded,
	}
	if dayType.IsPremium() {
		out.WeekendSurcharge = p.Pricing.WeekendSurcharge
		out.PerPlayer += p.Pricing.WeekendSurcharge
	}
	return out, true
}

func (p Package) basePrice(code pricing.IdentityCode) (float64, PriceSource, bool) {
	if v, ok := p.Pricing.Prices[code]; ok {
		return v, SourceIdentity, true
	}
	if v, ok := p.Pricing.Prices[pricing.IdentityWalkin]; ok {
		return v, SourceWalkin, true
	}
	if p.Pricing.BasePrice != nil {
		return *p.Pricing.BasePrice, SourceBase, true
	}
	if v, ok := pricing.NormalizePrices(nil, p.Pricing.LegacyPrices).Resolve(code); ok {
		return v, SourceLegacy, true
	}
	return 0, "", false
}
