package ratesheet

import (
	"sort"
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
)

// DefaultScanLimit bounds how many candidates are considered per lookup.
const DefaultScanLimit = 20

// Criteria selects a rate sheet for one tee time.
type Criteria struct {
	ClubID   string
	CourseID string
	DayType  calendar.DayType
	TimeSlot TimeSlot
	Holes    int
	Date     time.Time
}

// SortCandidates orders sheets by priority descending. Ties go to the oldest
// sheet, then to the lowest id.
func SortCandidates(sheets []RateSheet) {
	sort.SliceStable(sheets, func(i, j int) bool {
		return Less(sheets[i], sheets[j])
	})
}

// Less is the candidate ordering used by every store.
func Less(a, b RateSheet) bool {
	if a.Priority != b.Priority {
		return a.Priority > b.Priority
	}
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.Before(b.CreatedAt)
	}
	return a.ID < b.ID
}

// Match returns the first candidate, in the given order, that satisfies c.
func Match(candidates []RateSheet, c Criteria) (RateSheet, bool) {
	for _, sheet := range candidates {
		if sheet.Matches(c) {
			return sheet, true
		}
	}
	return RateSheet{}, false
}

// Matches checks scope, status, course, holes and validity window. Course and
// holes are wildcards when unset on the sheet.
func (s RateSheet) Matches(c Criteria) bool {
	if s.ClubID != c.ClubID || s.DayType != c.DayType || s.TimeSlot != c.TimeSlot {
		return false
	}
	if s.Status != StatusActive {
		return false
	}
	if s.CourseID != "" && s.CourseID != c.CourseID {
		return false
	}
	if s.Holes != 0 && s.Holes != c.Holes {
		return false
	}
	return s.CoversDate(c.Date)
}
