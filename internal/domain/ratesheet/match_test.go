package ratesheet

import (
	"testing"
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
)

func day(raw string) time.Time {
	t, _ := time.Parse("2006-01-02", raw)
	return t
}

func dayPtr(raw string) *time.Time {
	t := day(raw)
	return &t
}

func baseSheet(id string, priority int) RateSheet {
	return RateSheet{
		ID:        id,
		ClubID:    "club-1",
		DayType:   calendar.DayTypeWeekday,
		TimeSlot:  TimeSlotMorning,
		Status:    StatusActive,
		Priority:  priority,
		CreatedAt: day("2025-01-01"),
	}
}

func TestMatch(t *testing.T) {
	criteria := Criteria{
		ClubID:   "club-1",
		CourseID: "east",
		DayType:  calendar.DayTypeWeekday,
		TimeSlot: TimeSlotMorning,
		Holes:    18,
		Date:     day("2025-06-04"),
	}

	t.Run("first eligible in priority order wins", func(t *testing.T) {
		otherCourse := baseSheet("s-west", 30)
		otherCourse.CourseID = "west"
		nineHoles := baseSheet("s-nine", 20)
		nineHoles.Holes = 9
		expired := baseSheet("s-expired", 15)
		expired.ValidTo = dayPtr("2025-05-31")
		generic := baseSheet("s-generic", 10)

		candidates := []RateSheet{otherCourse, nineHoles, expired, generic}
		got, ok := Match(candidates, criteria)
		if !ok || got.ID != "s-generic" {
			t.Fatalf("unexpected match: ok=%t id=%s", ok, got.ID)
		}
	})

	t.Run("course and holes specific sheet", func(t *testing.T) {
		specific := baseSheet("s-east-18", 5)
		specific.CourseID = "east"
		specific.Holes = 18
		got, ok := Match([]RateSheet{specific}, criteria)
		if !ok || got.ID != "s-east-18" {
			t.Fatalf("expected course specific match")
		}
	})

	t.Run("validity bounds inclusive", func(t *testing.T) {
		bounded := baseSheet("s-bounded", 1)
		bounded.ValidFrom = dayPtr("2025-06-04")
		bounded.ValidTo = dayPtr("2025-06-04")
		if _, ok := Match([]RateSheet{bounded}, criteria); !ok {
			t.Fatalf("expected inclusive bounds to match")
		}
		bounded.ValidFrom = dayPtr("2025-06-05")
		bounded.ValidTo = nil
		if _, ok := Match([]RateSheet{bounded}, criteria); ok {
			t.Fatalf("expected future sheet to be skipped")
		}
	})

	t.Run("inactive skipped", func(t *testing.T) {
		inactive := baseSheet("s-off", 99)
		inactive.Status = StatusInactive
		if _, ok := Match([]RateSheet{inactive}, criteria); ok {
			t.Fatalf("expected inactive sheet to be skipped")
		}
	})

	t.Run("no candidates", func(t *testing.T) {
		if _, ok := Match(nil, criteria); ok {
			t.Fatalf("expected no match")
		}
	})

	t.Run("course specific sheet rejected without requested course", func(t *testing.T) {
		specific := baseSheet("s-east", 5)
		specific.CourseID = "east"
		c := criteria
		c.CourseID = ""
		if _, ok := Match([]RateSheet{specific}, c); ok {
			t.Fatalf("expected course specific sheet to be skipped")
		}
	})
}

func TestSortCandidates_TieBreak(t *testing.T) {
	newer := baseSheet("s-b", 10)
	newer.CreatedAt = day("2025-03-01")
	older := baseSheet("s-c", 10)
	older.CreatedAt = day("2025-01-01")
	sameTimeLowerID := baseSheet("s-a", 10)
	sameTimeLowerID.CreatedAt = day("2025-01-01")
	top := baseSheet("s-z", 50)

	sheets := []RateSheet{newer, older, top, sameTimeLowerID}
	SortCandidates(sheets)

	want := []string{"s-z", "s-a", "s-c", "s-b"}
	for i, id := range want {
		if sheets[i].ID != id {
			t.Fatalf("unexpected order at %d: got=%s want=%s", i, sheets[i].ID, id)
		}
	}
}

func TestMatch_Idempotent(t *testing.T) {
	candidates := []RateSheet{baseSheet("s-1", 10), baseSheet("s-2", 10)}
	criteria := Criteria{ClubID: "club-1", DayType: calendar.DayTypeWeekday, TimeSlot: TimeSlotMorning, Holes: 18, Date: day("2025-06-04")}

	first, _ := Match(candidates, criteria)
	second, _ := Match(candidates, criteria)
	if first.ID != second.ID {
		t.Fatalf("match not idempotent: %s vs %s", first.ID, second.ID)
	}
}
