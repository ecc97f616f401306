package ratesheet

import (
	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
)

const (
	// AddOnEstimateRate prices an add-on nine when the sheet has no add-on table.
	AddOnEstimateRate = 0.5

	AddOnDescription          = "加打9洞"
	AddOnEstimatedDescription = "加打9洞（估算50%）"
)

// AddOnPrice is the fee for a post-round nine-hole extension.
type AddOnPrice struct {
	Fee         float64 `json:"fee"`
	Available   bool    `json:"available"`
	Estimated   bool    `json:"estimated"`
	Description string  `json:"description,omitempty"`
}

// ReducedPrice is the fee for a round stopped short of the booked holes.
type ReducedPrice struct {
	Fee         float64    `json:"fee"`
	StandardFee float64    `json:"standard_fee"`
	PolicyType  PolicyType `json:"policy_type"`
	HolesPlayed int        `json:"holes_played"`
	HolesBooked int        `json:"holes_booked"`
	ChargeRatio float64    `json:"charge_ratio"`
	FixedPrice  bool       `json:"fixed_price"`
}

// GreenFee resolves the standard fee. A nil sheet, or a sheet with nothing in
// the fallback chain, prices at zero.
func GreenFee(sheet *RateSheet, code pricing.IdentityCode) float64 {
	if sheet == nil {
		return 0
	}
	fee, _ := sheet.PriceTable().Resolve(code)
	return fee
}

// AddOnFee resolves a configured add-on price, or estimates half the standard
// fee when the sheet configures no add-on prices at all.
func AddOnFee(sheet *RateSheet, code pricing.IdentityCode) AddOnPrice {
	if sheet == nil {
		return AddOnPrice{}
	}

	if len(sheet.AddOnPrices) > 0 {
		fee, ok := sheet.AddOnPrices.Resolve(code)
		return AddOnPrice{
			Fee:         fee,
			Available:   ok,
			Description: AddOnDescription,
		}
	}

	return AddOnPrice{
		Fee:         pricing.Round(GreenFee(sheet, code) * AddOnEstimateRate),
		Available:   true,
		Estimated:   true,
		Description: AddOnEstimatedDescription,
	}
}

// ReducedFee prices a shortened round according to the sheet's policy.
// A booking with no known hole count is a standard round.
func ReducedFee(sheet *RateSheet, code pricing.IdentityCode, holesPlayed, holesBooked int) ReducedPrice {
	if holesBooked <= 0 {
		holesBooked = StandardHoles
	}
	standard := GreenFee(sheet, code)
	out := ReducedPrice{
		StandardFee: standard,
		HolesPlayed: holesPlayed,
		HolesBooked: holesBooked,
	}

	var policy ReducedPlayPolicy = Proportional{}
	if sheet != nil && sheet.ReducedPolicy != nil {
		policy = sheet.ReducedPolicy
	}
	out.PolicyType = policy.Type()

	switch p := policy.(type) {
	case NoRefund:
		out.Fee = standard
		out.ChargeRatio = 1
	case FixedRate:
		if fee, ok := p.Prices.Resolve(code); ok {
			out.Fee = fee
			out.FixedPrice = true
			if standard > 0 {
				out.ChargeRatio = fee / standard
			}
			return out
		}
		out.ChargeRatio = chargeRatio(holesPlayed, holesBooked, Proportional{MinimumRate: p.MinimumRate}.minimum())
		out.Fee = pricing.Round(standard * out.ChargeRatio)
	case Proportional:
		out.ChargeRatio = chargeRatio(holesPlayed, holesBooked, p.minimum())
		out.Fee = pricing.Round(standard * out.ChargeRatio)
	}

	return out
}

// chargeRatio is max(played/booked, minimum) with the completion ratio clamped
// to [0, 1].
func chargeRatio(holesPlayed, holesBooked int, minimum float64) float64 {
	completion := 1.0
	if holesBooked > 0 {
		completion = float64(holesPlayed) / float64(holesBooked)
	}
	if completion < 0 {
		completion = 0
	}
	if completion > 1 {
		completion = 1
	}
	if minimum > completion {
		return minimum
	}
	return completion
}
