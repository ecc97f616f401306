package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
	"github.com/riskibarqy/golf-pricing/internal/platform/id"
	"github.com/riskibarqy/golf-pricing/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

const (
	defaultQuoteMaxWorkers = 8
	closedDateMessage      = "date is closed for booking"
)

type PricingConfig struct {
	RateSheetScanLimit int
	QuoteMaxWorkers    int
}

// PricingService prices bookings. Store reads are best effort: a failed read
// is logged and treated as missing configuration so a bookable date always
// gets a quote.
type PricingService struct {
	calendarRepo    calendar.Repository
	rateSheetRepo   ratesheet.Repository
	teamPricingRepo teampricing.Repository
	packageRepo     stay.Repository
	ids             id.Generator
	logger          *logging.Logger
	validator       *validator.Validate
	scanLimit       int
	maxWorkers      int
}

func NewPricingService(
	calendarRepo calendar.Repository,
	rateSheetRepo ratesheet.Repository,
	teamPricingRepo teampricing.Repository,
	packageRepo stay.Repository,
	ids id.Generator,
	logger *logging.Logger,
	cfg PricingConfig,
) *PricingService {
	if logger == nil {
		logger = logging.Default()
	}
	if ids == nil {
		ids = id.NewUUIDGenerator()
	}
	if cfg.RateSheetScanLimit <= 0 {
		cfg.RateSheetScanLimit = ratesheet.DefaultScanLimit
	}
	if cfg.QuoteMaxWorkers <= 0 {
		cfg.QuoteMaxWorkers = defaultQuoteMaxWorkers
	}

	return &PricingService{
		calendarRepo:    calendarRepo,
		rateSheetRepo:   rateSheetRepo,
		teamPricingRepo: teamPricingRepo,
		packageRepo:     packageRepo,
		ids:             ids,
		logger:          logger.Named("pricing"),
		validator:       validator.New(),
		scanLimit:       cfg.RateSheetScanLimit,
		maxWorkers:      cfg.QuoteMaxWorkers,
	}
}

// DetermineDayType classifies a YYYY-MM-DD date for a club. Only an
// unparseable date is an error; a failed special-date lookup falls back to
// weekday arithmetic.
func (s *PricingService) DetermineDayType(ctx context.Context, clubID, date string) (calendar.DayInfo, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PricingService.DetermineDayType", attribute.String("club_id", clubID))
	defer span.End()

	day, err := pricing.ParseDate(date)
	if err != nil {
		return calendar.DayInfo{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	special, found, err := s.calendarRepo.FindSpecialDate(ctx, clubID, pricing.FormatDate(day))
	if err != nil {
		s.logger.WarnContext(ctx, "special date lookup failed, using weekday rules",
			"club_id", clubID,
			"date", date,
			"error", err,
		)
		return calendar.Classify(day, nil), nil
	}
	if !found {
		return calendar.Classify(day, nil), nil
	}
	return calendar.Classify(day, &special), nil
}

func (s *PricingService) DetermineTimeSlot(teeTime string) ratesheet.TimeSlot {
	return ratesheet.ClassifyTimeSlot(teeTime)
}

// MatchRateSheet returns the best candidate for c among the top scan window
// of sheets for the club, day type and time slot.
func (s *PricingService) MatchRateSheet(ctx context.Context, c ratesheet.Criteria) (ratesheet.RateSheet, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PricingService.MatchRateSheet", attribute.String("club_id", c.ClubID))
	defer span.End()

	candidates, err := s.rateSheetRepo.Query(ctx, ratesheet.Query{
		ClubID:   c.ClubID,
		DayType:  c.DayType,
		TimeSlot: c.TimeSlot,
		Limit:    s.scanLimit,
	})
	if err != nil {
		s.logger.WarnContext(ctx, "rate sheet lookup failed",
			"club_id", c.ClubID,
			"day_type", c.DayType,
			"time_slot", c.TimeSlot,
			"error", err,
		)
		return ratesheet.RateSheet{}, false
	}

	ordered := append([]ratesheet.RateSheet(nil), candidates...)
	ratesheet.SortCandidates(ordered)
	if len(ordered) > s.scanLimit {
		ordered = ordered[:s.scanLimit]
	}
	return ratesheet.Match(ordered, c)
}

// GetTeamDiscount resolves the tier for a party. Missing or failing
// configuration yields the identity discount.
func (s *PricingService) GetTeamDiscount(ctx context.Context, clubID string, totalPlayers int) teampricing.Discount {
	if totalPlayers < teampricing.MinResolvablePlayers {
		return teampricing.NoDiscount()
	}

	ctx, span := startUsecaseSpan(ctx, "usecase.PricingService.GetTeamDiscount", attribute.String("club_id", clubID))
	defer span.End()

	cfg, found, err := s.teamPricingRepo.GetByClub(ctx, clubID)
	if err != nil {
		s.logger.WarnContext(ctx, "team pricing lookup failed",
			"club_id", clubID,
			"error", err,
		)
		return teampricing.NoDiscount()
	}
	if !found {
		return teampricing.NoDiscount()
	}
	return cfg.Resolve(totalPlayers)
}

// CalculatePackagePrice prices one player on a package. A missing, inactive
// or foreign package reports false so the caller can price per player.
func (s *PricingService) CalculatePackagePrice(
	ctx context.Context,
	clubID, packageID string,
	code pricing.IdentityCode,
	dayType calendar.DayType,
) (stay.Price, bool) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PricingService.CalculatePackagePrice", attribute.String("package_id", packageID))
	defer span.End()

	pkg, found, err := s.packageRepo.GetByID(ctx, packageID)
	if err != nil {
		s.logger.WarnContext(ctx, "package lookup failed",
			"club_id", clubID,
			"package_id", packageID,
			"error", err,
		)
		return stay.Price{}, false
	}
	if !found || !pkg.IsActive() {
		return stay.Price{}, false
	}
	if pkg.ClubID != "" && pkg.ClubID != clubID {
		return stay.Price{}, false
	}
	return pkg.PriceFor(code, dayType)
}

// CalculateBookingPrice assembles an itemized quote. The returned error is
// always ErrInvalidInput; a closed date is reported on the quote itself.
func (s *PricingService) CalculateBookingPrice(ctx context.Context, req QuoteRequest) (Quote, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PricingService.CalculateBookingPrice",
		attribute.String("club_id", req.ClubID),
		attribute.String("date", req.Date),
	)
	defer span.End()

	req.ClubID = strings.TrimSpace(req.ClubID)
	req.CourseID = strings.TrimSpace(req.CourseID)
	if err := s.validator.StructCtx(ctx, req); err != nil {
		return Quote{}, fmt.Errorf("%w: validation failed: %v", ErrInvalidInput, err)
	}

	day, err := s.DetermineDayType(ctx, req.ClubID, req.Date)
	if err != nil {
		return Quote{}, err
	}

	quote := Quote{
		ID:        s.newQuoteID(ctx),
		ClubID:    req.ClubID,
		CourseID:  req.CourseID,
		Date:      day.Date,
		TeeTime:   req.TeeTime,
		DayType:   day.DayType,
		DateName:  day.DateName,
		PartySize: req.PartySize(),
	}
	if day.IsClosed {
		quote.IsClosed = true
		quote.Message = closedDateMessage
		return quote, nil
	}

	quote.Success = true
	quote.TimeSlot = s.DetermineTimeSlot(req.TeeTime)
	refDate, _ := pricing.ParseDate(day.Date)
	sheet, hasSheet := s.MatchRateSheet(ctx, ratesheet.Criteria{
		ClubID:   req.ClubID,
		CourseID: req.CourseID,
		DayType:  day.DayType,
		TimeSlot: quote.TimeSlot,
		Holes:    req.Holes,
		Date:     refDate,
	})
	var sheetRef *ratesheet.RateSheet
	if hasSheet {
		sheetRef = &sheet
		quote.HasRateSheet = true
		quote.RateSheetID = sheet.ID
		quote.RateSheetName = sheet.Name
	}

	mode := req.Mode()
	if mode == QuoteModePackage {
		firstCode := ResolveIdentityCode(req.Players[0])
		if price, ok := s.CalculatePackagePrice(ctx, req.ClubID, req.PackageID, firstCode, day.DayType); ok {
			quote.Mode = QuoteModePackage
			s.fillPackageQuote(&quote, req, sheetRef, price)
			return quote, nil
		}
		mode = QuoteModeStandard
	}
	quote.Mode = mode

	s.fillPlayerQuotes(&quote, req, sheetRef, mode)
	s.fillFlatFees(&quote, req, sheetRef, mode)

	if quote.PartySize >= teampricing.MinTeamSize && mode == QuoteModeStandard {
		discount := s.GetTeamDiscount(ctx, req.ClubID, quote.PartySize)
		if discount.Applied {
			result := teampricing.Apply(quote.Fees.GreenFee, discount)
			quote.Fees.Discount = result.Discount
			quote.TeamDiscount = &TeamDiscountDetail{Tier: discount, Result: result}
		}
	}

	quote.Fees.TotalFee = totalFee(quote.Fees)
	return quote, nil
}

func (s *PricingService) fillPlayerQuotes(quote *Quote, req QuoteRequest, sheet *ratesheet.RateSheet, mode QuoteMode) {
	holesBooked := req.Holes
	if holesBooked <= 0 && sheet != nil {
		holesBooked = sheet.Holes
	}

	quote.Players = make([]PlayerQuote, 0, len(req.Players))
	var total float64
	for i, player := range req.Players {
		item := PlayerQuote{
			Index:        i,
			PlayerID:     player.PlayerID,
			IdentityCode: ResolveIdentityCode(player),
		}

		switch mode {
		case QuoteModeAddOn:
			addOn := ratesheet.AddOnFee(sheet, item.IdentityCode)
			item.AddOn = &addOn
			item.GreenFee = addOn.Fee
		case QuoteModeReduced:
			reduced := ratesheet.ReducedFee(sheet, item.IdentityCode, req.HolesPlayed, holesBooked)
			item.Reduced = &reduced
			item.GreenFee = reduced.Fee
		default:
			item.GreenFee = ratesheet.GreenFee(sheet, item.IdentityCode)
		}

		total += item.GreenFee
		quote.Players = append(quote.Players, item)
	}
	quote.Fees.GreenFee = pricing.Round2(total)
}

// fillFlatFees charges caddy and cart once per party and insurance per
// player. An add-on nine carries no extra insurance.
func (s *PricingService) fillFlatFees(quote *Quote, req QuoteRequest, sheet *ratesheet.RateSheet, mode QuoteMode) {
	if sheet == nil {
		return
	}
	if req.NeedCaddy {
		quote.Fees.CaddyFee = sheet.CaddyFee
	}
	if req.NeedCart {
		quote.Fees.CartFee = sheet.CartFee
	}
	if mode != QuoteModeAddOn {
		quote.Fees.InsuranceFee = pricing.Round2(sheet.InsuranceFee * float64(quote.PartySize))
	}
}

func (s *PricingService) fillPackageQuote(quote *Quote, req QuoteRequest, sheet *ratesheet.RateSheet, price stay.Price) {
	quote.Package = &price
	quote.Players = make([]PlayerQuote, 0, len(req.Players))
	for i, player := range req.Players {
		quote.Players = append(quote.Players, PlayerQuote{
			Index:        i,
			PlayerID:     player.PlayerID,
			IdentityCode: price.IdentityCode,
			GreenFee:     price.PerPlayer,
		})
	}

	quote.Fees.GreenFee = pricing.Round2(price.PerPlayer * float64(quote.PartySize))
	if sheet != nil {
		if req.NeedCaddy && !price.CaddyIncluded {
			quote.Fees.CaddyFee = sheet.CaddyFee
		}
		if req.NeedCart && !price.CartIncluded {
			quote.Fees.CartFee = sheet.CartFee
		}
		quote.Fees.InsuranceFee = pricing.Round2(sheet.InsuranceFee * float64(quote.PartySize))
	}
	quote.Fees.TotalFee = totalFee(quote.Fees)
}

func (s *PricingService) newQuoteID(ctx context.Context) string {
	quoteID, err := s.ids.NewID()
	if err != nil {
		s.logger.WarnContext(ctx, "quote id generation failed", "error", err)
		return ""
	}
	return quoteID
}

func totalFee(f FeeSummary) float64 {
	return pricing.Round2(f.GreenFee + f.CaddyFee + f.CartFee + f.InsuranceFee - f.Discount)
}
