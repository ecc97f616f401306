package ratesheet

import (
	"strconv"
	"strings"
)

// TimeSlot is the coarse tee-time bucket a rate sheet is priced for.
type TimeSlot string

const (
	TimeSlotMorning   TimeSlot = "morning"
	TimeSlotAfternoon TimeSlot = "afternoon"
	TimeSlotTwilight  TimeSlot = "twilight"
)

// ClassifyTimeSlot maps an HH:MM tee time to a slot: before 12 morning, before
// 16 afternoon, otherwise twilight. Missing or unparseable input is morning.
func ClassifyTimeSlot(teeTime string) TimeSlot {
	hourPart, _, _ := strings.Cut(strings.TrimSpace(teeTime), ":")
	hour, err := strconv.Atoi(hourPart)
	if err != nil || hour < 0 || hour > 23 {
		return TimeSlotMorning
	}

	switch {
	case hour < 12:
		return TimeSlotMorning
	case hour < 16:
		return TimeSlotAfternoon
	default:
		return TimeSlotTwilight
	}
}
