package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
)

func TestRateSheetRepository_Query(t *testing.T) {
	created := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	sheet := func(id string, priority int, status ratesheet.Status, slot ratesheet.TimeSlot) ratesheet.RateSheet {
		return ratesheet.RateSheet{
			ID: id, ClubID: "club", DayType: calendar.DayTypeWeekday, TimeSlot: slot,
			Status: status, Priority: priority, CreatedAt: created,
		}
	}
	repo := NewRateSheetRepository([]ratesheet.RateSheet{
		sheet("low", 1, ratesheet.StatusActive, ratesheet.TimeSlotMorning),
		sheet("high", 9, ratesheet.StatusActive, ratesheet.TimeSlotMorning),
		sheet("mid-b", 5, ratesheet.StatusActive, ratesheet.TimeSlotMorning),
		sheet("mid-a", 5, ratesheet.StatusActive, ratesheet.TimeSlotMorning),
		sheet("inactive", 99, ratesheet.StatusInactive, ratesheet.TimeSlotMorning),
		sheet("afternoon", 50, ratesheet.StatusActive, ratesheet.TimeSlotAfternoon),
	})

	got, err := repo.Query(context.Background(), ratesheet.Query{
		ClubID: "club", DayType: calendar.DayTypeWeekday, TimeSlot: ratesheet.TimeSlotMorning, Limit: 3,
	})
	if err != nil {
		t.Fatalf("query: %v", err)
	}

	want := []string{"high", "mid-a", "mid-b"}
	if len(got) != len(want) {
		t.Fatalf("expected %d sheets, got %d", len(want), len(got))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Fatalf("position %d: expected %s, got %s", i, id, got[i].ID)
		}
	}
}

func TestRateSheetRepository_Upsert(t *testing.T) {
	ctx := context.Background()
	repo := NewRateSheetRepository(SeedRateSheets())
	q := ratesheet.Query{ClubID: ClubIDDemo, DayType: calendar.DayTypeWeekday, TimeSlot: ratesheet.TimeSlotMorning}

	promo := ratesheet.RateSheet{
		ID: "rs-weekday-morning-promo", ClubID: ClubIDDemo, Name: "Weekday morning promo",
		DayType: calendar.DayTypeWeekday, TimeSlot: ratesheet.TimeSlotMorning, Priority: 50,
		Status: ratesheet.StatusActive,
		Prices: pricing.PriceTable{pricing.IdentityWalkin: 650},
	}
	if err := repo.Upsert(ctx, promo); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err := repo.Query(ctx, q)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) == 0 || got[0].ID != promo.ID {
		t.Fatalf("expected promo sheet first, got %+v", got)
	}

	promo.Status = ratesheet.StatusInactive
	if err := repo.Upsert(ctx, promo); err != nil {
		t.Fatalf("upsert: %v", err)
	}
	got, err = repo.Query(ctx, q)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(got) == 0 || got[0].ID != "rs-weekday-morning" {
		t.Fatalf("expected seeded sheet after deactivation, got %+v", got)
	}
}

func TestSeedRateSheets(t *testing.T) {
	for _, sheet := range SeedRateSheets() {
		if sheet.Status != ratesheet.StatusActive || sheet.ClubID != ClubIDDemo {
			t.Fatalf("unexpected seed sheet: %+v", sheet)
		}
		if len(sheet.PriceTable()) == 0 {
			t.Fatalf("seed sheet %s has no prices", sheet.ID)
		}
	}
}
