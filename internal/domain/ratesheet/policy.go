package ratesheet

import (
	"strings"

	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
)

type PolicyType string

const (
	PolicyNoRefund     PolicyType = "no_refund"
	PolicyFixedRate    PolicyType = "fixed_rate"
	PolicyProportional PolicyType = "proportional"
)

// DefaultMinimumRate is the floor ratio charged for a reduced round when the
// policy does not configure one.
const DefaultMinimumRate = 0.6

// StandardHoles is the booked length assumed when neither the request nor
// the sheet names one.
const StandardHoles = 18

// ReducedPlayPolicy prices a round stopped short of the booked hole count.
// Implementations: NoRefund, FixedRate, Proportional.
type ReducedPlayPolicy interface {
	Type() PolicyType
	reducedPlayPolicy()
}

// NoRefund charges the full standard fee.
type NoRefund struct{}

// FixedRate charges a configured price per identity, falling back to
// proportional pricing when no price resolves.
type FixedRate struct {
	Prices      pricing.PriceTable
	MinimumRate *float64
}

// Proportional charges the higher of the completion ratio and MinimumRate.
type Proportional struct {
	MinimumRate *float64
}

func (NoRefund) Type() PolicyType     { return PolicyNoRefund }
func (FixedRate) Type() PolicyType    { return PolicyFixedRate }
func (Proportional) Type() PolicyType { return PolicyProportional }

func (NoRefund) reducedPlayPolicy()     {}
func (FixedRate) reducedPlayPolicy()    {}
func (Proportional) reducedPlayPolicy() {}

func (p Proportional) minimum() float64 {
	if p.MinimumRate == nil {
		return DefaultMinimumRate
	}
	return *p.MinimumRate
}

// PolicyRecord is the stored, loosely typed policy shape.
type PolicyRecord struct {
	Type        string             `json:"type"`
	Rate        *float64           `json:"rate,omitempty"`
	FixedPrices pricing.PriceTable `json:"fixed_prices,omitempty"`
}

// PolicyFromRecord converts a stored policy into the closed union. A nil record
// or unknown type is proportional.
func PolicyFromRecord(rec *PolicyRecord) ReducedPlayPolicy {
	if rec == nil {
		return Proportional{}
	}

	switch PolicyType(strings.ToLower(strings.TrimSpace(rec.Type))) {
	case PolicyNoRefund:
		return NoRefund{}
	case PolicyFixedRate:
		return FixedRate{Prices: rec.FixedPrices.Clone(), MinimumRate: rec.Rate}
	default:
		return Proportional{MinimumRate: rec.Rate}
	}
}

// RecordFromPolicy is the inverse of PolicyFromRecord.
func RecordFromPolicy(p ReducedPlayPolicy) *PolicyRecord {
	switch v := p.(type) {
	case NoRefund:
		return &PolicyRecord{Type: string(PolicyNoRefund)}
	case FixedRate:
		return &PolicyRecord{Type: string(PolicyFixedRate), Rate: v.MinimumRate, FixedPrices: v.Prices.Clone()}
	case Proportional:
		return &PolicyRecord{Type: string(PolicyProportional), Rate: v.MinimumRate}
	default:
		return nil
	}
}
