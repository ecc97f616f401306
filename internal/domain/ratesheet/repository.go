package ratesheet

import (
	"context"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
)

// Query narrows candidates to active sheets of one club, day type and slot.
type Query struct {
	ClubID   string
	DayType  calendar.DayType
	TimeSlot TimeSlot
	Limit    int
}

// Repository returns candidates ordered as Less defines, at most Limit of them.
type Repository interface {
	Query(ctx context.Context, q Query) ([]RateSheet, error)
}
