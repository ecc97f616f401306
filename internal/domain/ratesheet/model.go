package ratesheet

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

// RateSheet is a priced rule scoped to club, day type, time slot and optionally
// course, hole count and a validity window.
type RateSheet struct {
	ID            string
	ClubID        string
	CourseID      string
	Name          string
	Holes         int
	DayType       calendar.DayType
	TimeSlot      TimeSlot
	Status        Status
	Priority      int
	ValidFrom     *time.Time
	ValidTo       *time.Time
	Prices        pricing.PriceTable
	LegacyPrices  pricing.LegacyPrices
	AddOnPrices   pricing.PriceTable
	ReducedPolicy ReducedPlayPolicy
	CaddyFee      float64
	CartFee       float64
	InsuranceFee  float64
	CreatedAt     time.Time
}

// PriceTable is the normalized standard price map of the sheet.
func (s RateSheet) PriceTable() pricing.PriceTable {
	return pricing.NormalizePrices(s.Prices, s.LegacyPrices)
}

// CoversDate reports whether date sits inside the inclusive validity window.
// A missing bound is open-ended.
func (s RateSheet) CoversDate(date time.Time) bool {
	day := truncateDay(date)
	if s.ValidFrom != nil && day.Before(truncateDay(*s.ValidFrom)) {
		return false
	}
	if s.ValidTo != nil && day.After(truncateDay(*s.ValidTo)) {
		return false
	}
	return true
}

func (s RateSheet) Clone() RateSheet {
	copied := s
	copied.Prices = s.Prices.Clone()
	copied.AddOnPrices = s.AddOnPrices.Clone()
	if fixed, ok := s.ReducedPolicy.(FixedRate); ok {
		fixed.Prices = fixed.Prices.Clone()
		copied.ReducedPolicy = fixed
	}
	return copied
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
