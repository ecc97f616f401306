package calendar

import (
	"strings"
	"time"
)

// DayType is the pricing classification of a calendar date.
type DayType string

const (
	DayTypeWeekday DayType = "weekday"
	DayTypeWeekend DayType = "weekend"
	DayTypeHoliday DayType = "holiday"
)

// IsPremium reports whether package weekend surcharges apply.
func (d DayType) IsPremium() bool {
	return d == DayTypeWeekend || d == DayTypeHoliday
}

// SpecialDate overrides weekday arithmetic for one club and date.
type SpecialDate struct {
	ClubID          string
	Date            string
	PricingOverride string
	DateType        string
	DateName        string
	IsClosed        bool
}

// DayInfo is the result of classifying a date.
type DayInfo struct {
	Date      string
	DayType   DayType
	DateName  string
	IsClosed  bool
	IsSpecial bool
}

// Classify resolves the day type of date. A special date, when present, wins
// outright; its override label is used first, then its date type, then holiday.
func Classify(date time.Time, special *SpecialDate) DayInfo {
	info := DayInfo{Date: date.Format("2006-01-02")}

	if special != nil {
		info.IsSpecial = true
		info.DateName = special.DateName
		info.IsClosed = special.IsClosed
		info.DayType = DayTypeHoliday
		if v := strings.TrimSpace(special.PricingOverride); v != "" {
			info.DayType = DayType(v)
		} else if v := strings.TrimSpace(special.DateType); v != "" {
			info.DayType = DayType(v)
		}
		return info
	}

	switch date.Weekday() {
	case time.Saturday, time.Sunday:
		info.DayType = DayTypeWeekend
	default:
		info.DayType = DayTypeWeekday
	}
	return info
}
