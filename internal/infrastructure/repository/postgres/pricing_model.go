package postgres

import (
	"database/sql"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
)

type specialDateTableModel struct {
	ClubID          string    `db:"club_id"`
	Date            time.Time `db:"date"`
	PricingOverride string    `db:"pricing_override"`
	DateType        string    `db:"date_type"`
	DateName        string    `db:"date_name"`
	IsClosed        bool      `db:"is_closed"`
}

func (m specialDateTableModel) toDomain() calendar.SpecialDate {
	return calendar.SpecialDate{
		ClubID:          m.ClubID,
		Date:            pricing.FormatDate(m.Date),
		PricingOverride: m.PricingOverride,
		DateType:        m.DateType,
		DateName:        m.DateName,
		IsClosed:        m.IsClosed,
	}
}

type rateSheetTableModel struct {
	PublicID      string         `db:"public_id"`
	ClubID        string         `db:"club_id"`
	CourseID      sql.NullString `db:"course_id"`
	Name          string         `db:"name"`
	Holes         sql.NullInt64  `db:"holes"`
	DayType       string         `db:"day_type"`
	TimeSlot      string         `db:"time_slot"`
	Status        string         `db:"status"`
	Priority      int            `db:"priority"`
	ValidFrom     *time.Time     `db:"valid_from"`
	ValidTo       *time.Time     `db:"valid_to"`
	Prices        []byte         `db:"prices"`
	LegacyPrices  []byte         `db:"legacy_prices"`
	AddOnPrices   []byte         `db:"add_on_prices"`
	ReducedPolicy []byte         `db:"reduced_policy"`
	CaddyFee      float64        `db:"caddy_fee"`
	CartFee       float64        `db:"cart_fee"`
	InsuranceFee  float64        `db:"insurance_fee"`
	CreatedAt     time.Time      `db:"created_at"`
}

func (m rateSheetTableModel) toDomain() (ratesheet.RateSheet, error) {
	out := ratesheet.RateSheet{
		ID:           m.PublicID,
		ClubID:       m.ClubID,
		CourseID:     nullStringValue(m.CourseID),
		Name:         m.Name,
		Holes:        nullInt64Value(m.Holes),
		DayType:      calendar.DayType(m.DayType),
		TimeSlot:     ratesheet.TimeSlot(m.TimeSlot),
		Status:       ratesheet.Status(m.Status),
		Priority:     m.Priority,
		ValidFrom:    m.ValidFrom,
		ValidTo:      m.ValidTo,
		CaddyFee:     m.CaddyFee,
		CartFee:      m.CartFee,
		InsuranceFee: m.InsuranceFee,
		CreatedAt:    m.CreatedAt,
	}

	if err := decodeJSONB(m.Prices, &out.Prices); err != nil {
		return ratesheet.RateSheet{}, crerr.Wrapf(err, "rate sheet %s prices", m.PublicID)
	}
	if err := decodeJSONB(m.LegacyPrices, &out.LegacyPrices); err != nil {
		return ratesheet.RateSheet{}, crerr.Wrapf(err, "rate sheet %s legacy prices", m.PublicID)
	}
	if err := decodeJSONB(m.AddOnPrices, &out.AddOnPrices); err != nil {
		return ratesheet.RateSheet{}, crerr.Wrapf(err, "rate sheet %s add-on prices", m.PublicID)
	}

	var policy *ratesheet.PolicyRecord
	if err := decodeJSONB(m.ReducedPolicy, &policy); err != nil {
		return ratesheet.RateSheet{}, crerr.Wrapf(err, "rate sheet %s reduced policy", m.PublicID)
	}
	out.ReducedPolicy = ratesheet.PolicyFromRecord(policy)
	return out, nil
}

type teamPricingTableModel struct {
	ClubID         string  `db:"club_id"`
	Enabled        bool    `db:"enabled"`
	FloorPriceRate float64 `db:"floor_price_rate"`
	Tiers          []byte  `db:"tiers"`
}

func (m teamPricingTableModel) toDomain() (teampricing.Config, error) {
	out := teampricing.Config{
		ClubID:         m.ClubID,
		Enabled:        m.Enabled,
		FloorPriceRate: m.FloorPriceRate,
	}
	if err := decodeJSONB(m.Tiers, &out.Tiers); err != nil {
		return teampricing.Config{}, crerr.Wrapf(err, "team pricing %s tiers", m.ClubID)
	}
	return out, nil
}

type stayPackageTableModel struct {
	PublicID      string    `db:"public_id"`
	ClubID        string    `db:"club_id"`
	Name          string    `db:"name"`
	Status        string    `db:"status"`
	Pricing       []byte    `db:"pricing"`
	CaddyIncluded bool      `db:"caddy_included"`
	CartIncluded  bool      `db:"cart_included"`
	CreatedAt     time.Time `db:"created_at"`
}

func (m stayPackageTableModel) toDomain() (stay.Package, error) {
	out := stay.Package{
		ID:     m.PublicID,
		ClubID: m.ClubID,
		Name:   m.Name,
		Status: stay.Status(m.Status),
		Includes: stay.Includes{
			CaddyIncluded: m.CaddyIncluded,
			CartIncluded:  m.CartIncluded,
		},
		CreatedAt: m.CreatedAt,
	}
	if err := decodeJSONB(m.Pricing, &out.Pricing); err != nil {
		return stay.Package{}, crerr.Wrapf(err, "package %s pricing", m.PublicID)
	}
	return out, nil
}

type membershipTableModel struct {
	PublicID         string    `db:"public_id"`
	PlayerID         string    `db:"player_id"`
	ClubID           string    `db:"club_id"`
	Level            int       `db:"level"`
	Status           string    `db:"status"`
	FreeRounds       int       `db:"free_rounds"`
	DiscountRate     float64   `db:"discount_rate"`
	GuestQuota       int       `db:"guest_quota"`
	GuestDiscount    float64   `db:"guest_discount"`
	PriorityBooking  bool      `db:"priority_booking"`
	FreeCaddy        bool      `db:"free_caddy"`
	FreeCart         bool      `db:"free_cart"`
	FreeLocker       bool      `db:"free_locker"`
	FreeParking      bool      `db:"free_parking"`
	RoundsUsed       int       `db:"rounds_used"`
	GuestBrought     int       `db:"guest_brought"`
	TotalConsumption float64   `db:"total_consumption"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

func (m membershipTableModel) toDomain() membership.Membership {
	return membership.Membership{
		ID:       m.PublicID,
		PlayerID: m.PlayerID,
		ClubID:   m.ClubID,
		Level:    m.Level,
		Status:   membership.Status(m.Status),
		Benefits: membership.Benefits{
			FreeRounds:      m.FreeRounds,
			DiscountRate:    m.DiscountRate,
			GuestQuota:      m.GuestQuota,
			GuestDiscount:   m.GuestDiscount,
			PriorityBooking: m.PriorityBooking,
			FreeCaddy:       m.FreeCaddy,
			FreeCart:        m.FreeCart,
			FreeLocker:      m.FreeLocker,
			FreeParking:     m.FreeParking,
		},
		Usage: membership.Usage{
			RoundsUsed:       m.RoundsUsed,
			GuestBrought:     m.GuestBrought,
			TotalConsumption: m.TotalConsumption,
		},
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
