package memory

import (
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
)

const (
	ClubIDDemo      = "club-demo"
	CourseIDEast    = "course-east"
	PackageIDStay   = "pkg-stay-and-play"
	PlayerIDMember  = "player-001"
	PlayerIDGuest   = "player-002"
	MembershipIDOne = "mbr-001"
)

var seedCreatedAt = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func SeedSpecialDates() []calendar.SpecialDate {
	return []calendar.SpecialDate{
		{ClubID: ClubIDDemo, Date: "2025-12-25", DateName: "Christmas Day", IsClosed: true},
		{ClubID: ClubIDDemo, Date: "2026-01-01", DateType: string(calendar.DayTypeHoliday), DateName: "New Year's Day"},
		{ClubID: ClubIDDemo, Date: "2026-02-17", PricingOverride: string(calendar.DayTypeWeekend), DateName: "Lunar New Year"},
	}
}

func SeedRateSheets() []ratesheet.RateSheet {
	minimum := 0.5
	sheets := []ratesheet.RateSheet{
		{
			ID: "rs-weekday-morning", ClubID: ClubIDDemo, Name: "Weekday morning",
			DayType: calendar.DayTypeWeekday, TimeSlot: ratesheet.TimeSlotMorning, Priority: 10,
			Prices:        pricing.PriceTable{pricing.IdentityWalkin: 800, pricing.IdentityGuest: 700, pricing.IdentityMember1: 500, pricing.IdentityMember2: 450},
			ReducedPolicy: ratesheet.Proportional{},
			CaddyFee:      400, CartFee: 300, InsuranceFee: 20,
		},
		{
			ID: "rs-weekday-afternoon", ClubID: ClubIDDemo, Name: "Weekday afternoon",
			DayType: calendar.DayTypeWeekday, TimeSlot: ratesheet.TimeSlotAfternoon, Priority: 10,
			Prices:        pricing.PriceTable{pricing.IdentityWalkin: 700, pricing.IdentityMember1: 450},
			AddOnPrices:   pricing.PriceTable{pricing.IdentityWalkin: 300, pricing.IdentityMember1: 200},
			ReducedPolicy: ratesheet.NoRefund{},
			CaddyFee:      400, CartFee: 300, InsuranceFee: 20,
		},
		{
			ID: "rs-weekday-twilight", ClubID: ClubIDDemo, Name: "Weekday twilight",
			DayType: calendar.DayTypeWeekday, TimeSlot: ratesheet.TimeSlotTwilight, Priority: 10,
			Prices:   pricing.PriceTable{pricing.IdentityWalkin: 500},
			CaddyFee: 400, CartFee: 300, InsuranceFee: 20,
		},
		{
			ID: "rs-weekend-morning", ClubID: ClubIDDemo, Name: "Weekend morning",
			DayType: calendar.DayTypeWeekend, TimeSlot: ratesheet.TimeSlotMorning, Priority: 10,
			Prices: pricing.PriceTable{pricing.IdentityWalkin: 1200, pricing.IdentityGuest: 1000, pricing.IdentityMember1: 800},
			ReducedPolicy: ratesheet.FixedRate{
				Prices:      pricing.PriceTable{pricing.IdentityWalkin: 900, pricing.IdentityMember1: 600},
				MinimumRate: &minimum,
			},
			CaddyFee: 500, CartFee: 350, InsuranceFee: 30,
		},
		{
			ID: "rs-weekend-morning-east-9", ClubID: ClubIDDemo, CourseID: CourseIDEast, Holes: 9, Name: "East nine weekend morning",
			DayType: calendar.DayTypeWeekend, TimeSlot: ratesheet.TimeSlotMorning, Priority: 20,
			Prices:   pricing.PriceTable{pricing.IdentityWalkin: 650, pricing.IdentityMember1: 420},
			CaddyFee: 250, CartFee: 200, InsuranceFee: 30,
		},
		{
			ID: "rs-holiday-morning", ClubID: ClubIDDemo, Name: "Holiday morning",
			DayType: calendar.DayTypeHoliday, TimeSlot: ratesheet.TimeSlotMorning, Priority: 10,
			LegacyPrices: pricing.LegacyPrices{Walkin: ptr(1500), Guest: ptr(1300), Member1: ptr(1000)},
			CaddyFee:     500, CartFee: 350, InsuranceFee: 30,
		},
	}

	for i := range sheets {
		sheets[i].Status = ratesheet.StatusActive
		sheets[i].CreatedAt = seedCreatedAt
	}
	return sheets
}

func SeedTeamPricing() []teampricing.Config {
	return []teampricing.Config{
		{
			ClubID:         ClubIDDemo,
			Enabled:        true,
			FloorPriceRate: 0.8,
			Tiers: []teampricing.Tier{
				{MinPlayers: 8, MaxPlayers: intPtr(15), DiscountRate: 0.9, Label: "Group 8+"},
				{MinPlayers: 16, MaxPlayers: intPtr(39), DiscountRate: 0.85, Label: "Group 16+"},
				{MinPlayers: 40, DiscountRate: 0.7, Label: "Tournament 40+"},
			},
		},
	}
}

func SeedPackages() []stay.Package {
	return []stay.Package{
		{
			ID:     PackageIDStay,
			ClubID: ClubIDDemo,
			Name:   "Stay and play",
			Status: stay.StatusActive,
			Pricing: stay.Pricing{
				Prices:           pricing.PriceTable{pricing.IdentityWalkin: 2500, pricing.IdentityMember1: 2000},
				WeekendSurcharge: 500,
			},
			Includes:  stay.Includes{CaddyIncluded: true},
			CreatedAt: seedCreatedAt,
		},
	}
}

func SeedMemberships() []membership.Membership {
	return []membership.Membership{
		{
			ID:       MembershipIDOne,
			PlayerID: PlayerIDMember,
			ClubID:   ClubIDDemo,
			Level:    1,
			Status:   membership.StatusActive,
			Benefits: membership.Benefits{
				FreeRounds:      4,
				DiscountRate:    0.1,
				GuestQuota:      2,
				GuestDiscount:   0.2,
				PriorityBooking: true,
				FreeCaddy:       true,
			},
			CreatedAt: seedCreatedAt,
			UpdatedAt: seedCreatedAt,
		},
		{
			ID:        "mbr-000",
			PlayerID:  PlayerIDMember,
			ClubID:    ClubIDDemo,
			Level:     2,
			Status:    membership.StatusExpired,
			CreatedAt: seedCreatedAt.AddDate(-1, 0, 0),
			UpdatedAt: seedCreatedAt,
		},
	}
}

func ptr(v float64) *float64 { return &v }

func intPtr(v int) *int { return &v }
