package usecase

import (
	"strings"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
)

// QuoteMode is the pricing path a quote was computed with.
type QuoteMode string

const (
	QuoteModeStandard QuoteMode = "standard"
	QuoteModeAddOn    QuoteMode = "add_on"
	QuoteModeReduced  QuoteMode = "reduced"
	QuoteModePackage  QuoteMode = "package"
)

const memberTypeMember = "member"

// PlayerInput identifies one player of a booking. IdentityCode wins when set;
// MemberType, MemberLevel and Type are the older request shape.
type PlayerInput struct {
	PlayerID     string `json:"player_id,omitempty"`
	IdentityCode string `json:"identity_code,omitempty" validate:"omitempty,max=64"`
	MemberType   string `json:"member_type,omitempty"`
	MemberLevel  int    `json:"member_level,omitempty" validate:"gte=0"`
	Type         string `json:"type,omitempty"`
}

// QuoteRequest is one booking to price. TotalPlayers may exceed len(Players)
// when only some players are named; the larger of the two is the party size.
type QuoteRequest struct {
	ClubID       string        `json:"club_id" validate:"required"`
	CourseID     string        `json:"course_id,omitempty"`
	Date         string        `json:"date" validate:"required"`
	TeeTime      string        `json:"tee_time,omitempty"`
	Holes        int           `json:"holes,omitempty" validate:"gte=0,lte=72"`
	Players      []PlayerInput `json:"players" validate:"required,min=1,dive"`
	TotalPlayers int           `json:"total_players,omitempty" validate:"gte=0"`
	NeedCaddy    bool          `json:"need_caddy,omitempty"`
	NeedCart     bool          `json:"need_cart,omitempty"`
	PackageID    string        `json:"package_id,omitempty"`
	IsAddOn      bool          `json:"is_add_on,omitempty"`
	IsReduced    bool          `json:"is_reduced,omitempty"`
	HolesPlayed  int           `json:"holes_played,omitempty" validate:"gte=0"`
}

// Mode reports the per-player pricing path requested. Add-on wins over
// reduced play; a package only applies to otherwise standard bookings.
func (r QuoteRequest) Mode() QuoteMode {
	switch {
	case r.IsAddOn:
		return QuoteModeAddOn
	case r.IsReduced:
		return QuoteModeReduced
	case strings.TrimSpace(r.PackageID) != "":
		return QuoteModePackage
	default:
		return QuoteModeStandard
	}
}

// PartySize is max(TotalPlayers, len(Players)).
func (r QuoteRequest) PartySize() int {
	return max(r.TotalPlayers, len(r.Players))
}

type PlayerQuote struct {
	Index        int                     `json:"index"`
	PlayerID     string                  `json:"player_id,omitempty"`
	IdentityCode pricing.IdentityCode    `json:"identity_code"`
	GreenFee     float64                 `json:"green_fee"`
	AddOn        *ratesheet.AddOnPrice   `json:"add_on,omitempty"`
	Reduced      *ratesheet.ReducedPrice `json:"reduced,omitempty"`
}

type FeeSummary struct {
	GreenFee     float64 `json:"green_fee"`
	CaddyFee     float64 `json:"caddy_fee"`
	CartFee      float64 `json:"cart_fee"`
	InsuranceFee float64 `json:"insurance_fee"`
	Discount     float64 `json:"discount"`
	TotalFee     float64 `json:"total_fee"`
}

// TeamDiscountDetail records the tier and the floor computation behind a team
// discount.
type TeamDiscountDetail struct {
	Tier   teampricing.Discount    `json:"tier"`
	Result teampricing.Application `json:"result"`
}

// Quote is an itemized price with enough provenance to explain every amount.
type Quote struct {
	ID            string              `json:"id"`
	Success       bool                `json:"success"`
	IsClosed      bool                `json:"is_closed"`
	Message       string              `json:"message,omitempty"`
	ClubID        string              `json:"club_id"`
	CourseID      string              `json:"course_id,omitempty"`
	Date          string              `json:"date"`
	TeeTime       string              `json:"tee_time,omitempty"`
	DayType       calendar.DayType    `json:"day_type"`
	DateName      string              `json:"date_name,omitempty"`
	TimeSlot      ratesheet.TimeSlot  `json:"time_slot,omitempty"`
	Mode          QuoteMode           `json:"mode,omitempty"`
	HasRateSheet  bool                `json:"has_rate_sheet"`
	RateSheetID   string              `json:"rate_sheet_id,omitempty"`
	RateSheetName string              `json:"rate_sheet_name,omitempty"`
	PartySize     int                 `json:"party_size"`
	Players       []PlayerQuote       `json:"players,omitempty"`
	Fees          FeeSummary          `json:"fees"`
	TeamDiscount  *TeamDiscountDetail `json:"team_discount,omitempty"`
	Package       *stay.Price         `json:"package,omitempty"`
}

// ResolveIdentityCode derives the price-lookup key for a player: an explicit
// identity code, then member_<level> for members, then the raw member type or
// type, then walkin.
func ResolveIdentityCode(p PlayerInput) pricing.IdentityCode {
	if code := strings.TrimSpace(p.IdentityCode); code != "" {
		return pricing.IdentityCode(code).Normalize()
	}

	memberType := strings.ToLower(strings.TrimSpace(p.MemberType))
	if memberType == memberTypeMember && p.MemberLevel > 0 {
		return pricing.MemberIdentity(p.MemberLevel)
	}
	if memberType != "" {
		return pricing.IdentityCode(memberType).Normalize()
	}
	return pricing.IdentityCode(p.Type).Normalize()
}
