package teampricing

import (
	"sort"

	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
)

const (
	// MinResolvablePlayers is the smallest party a tier can apply to.
	MinResolvablePlayers = 2
	// MinTeamSize is the party size at which quotes apply team pricing.
	MinTeamSize = 8
)

// Tier is one volume-discount band. A nil MaxPlayers is open-ended.
type Tier struct {
	MinPlayers   int     `json:"min_players"`
	MaxPlayers   *int    `json:"max_players,omitempty"`
	DiscountRate float64 `json:"discount_rate"`
	Label        string  `json:"label"`
}

func (t Tier) Contains(players int) bool {
	if players < t.MinPlayers {
		return false
	}
	return t.MaxPlayers == nil || players <= *t.MaxPlayers
}

// Config is the per-club team pricing setup.
type Config struct {
	ClubID         string
	Enabled        bool
	FloorPriceRate float64
	Tiers          []Tier
}

// Discount is the tier resolved for a party. Rate 1 means no discount.
type Discount struct {
	Rate           float64 `json:"rate"`
	Label          string  `json:"label,omitempty"`
	MinPlayers     int     `json:"min_players,omitempty"`
	FloorPriceRate float64 `json:"floor_price_rate"`
	Applied        bool    `json:"applied"`
}

// NoDiscount is the identity discount.
func NoDiscount() Discount {
	return Discount{Rate: 1}
}

// Resolve picks the tier for totalPlayers, scanning tiers from the highest
// threshold down; the first containing tier wins.
func (c Config) Resolve(totalPlayers int) Discount {
	if totalPlayers < MinResolvablePlayers || !c.Enabled || len(c.Tiers) == 0 {
		return NoDiscount()
	}

	tiers := append([]Tier(nil), c.Tiers...)
	sort.SliceStable(tiers, func(i, j int) bool {
		return tiers[i].MinPlayers > tiers[j].MinPlayers
	})

	for _, tier := range tiers {
		if tier.Contains(totalPlayers) {
			return Discount{
				Rate:           tier.DiscountRate,
				Label:          tier.Label,
				MinPlayers:     tier.MinPlayers,
				FloorPriceRate: c.FloorPriceRate,
				Applied:        true,
			}
		}
	}
	return NoDiscount()
}

// Application is the audited result of applying a discount to a base fee.
type Application struct {
	BaseAmount       float64 `json:"base_amount"`
	DiscountedAmount float64 `json:"discounted_amount"`
	FloorAmount      float64 `json:"floor_amount"`
	FinalAmount      float64 `json:"final_amount"`
	Discount         float64 `json:"discount"`
	FloorApplied     bool    `json:"floor_applied"`
}

// Apply discounts base by d.Rate but never below base x FloorPriceRate, and
// never above base.
func Apply(base float64, d Discount) Application {
	out := Application{
		BaseAmount:       base,
		DiscountedAmount: base * d.Rate,
		FloorAmount:      base * d.FloorPriceRate,
	}

	final := out.DiscountedAmount
	if out.FloorAmount > final {
		final = out.FloorAmount
		out.FloorApplied = true
	}
	if final > base {
		final = base
	}

	out.FinalAmount = pricing.Round2(final)
	out.Discount = pricing.Round2(base - final)
	return out
}
