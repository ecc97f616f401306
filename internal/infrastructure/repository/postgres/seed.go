package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
	"github.com/riskibarqy/golf-pricing/internal/infrastructure/repository/memory"
)

// BootstrapSeed loads the demo club into an empty database.
func BootstrapSeed(ctx context.Context, db *sqlx.DB) error {
	var count int
	if err := db.GetContext(ctx, &count, `SELECT COUNT(1) FROM rate_sheets WHERE deleted_at IS NULL`); err != nil {
		return crerr.Wrap(err, "count rate sheets for bootstrap seed")
	}
	if count > 0 {
		return nil
	}

	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return crerr.Wrap(err, "begin seed tx")
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, d := range memory.SeedSpecialDates() {
		if err := execNamed(ctx, tx, `
INSERT INTO special_dates (club_id, date, pricing_override, date_type, date_name, is_closed)
VALUES (:club_id, :date, :pricing_override, :date_type, :date_name, :is_closed)
ON CONFLICT DO NOTHING`, map[string]any{
			"club_id":          d.ClubID,
			"date":             d.Date,
			"pricing_override": d.PricingOverride,
			"date_type":        d.DateType,
			"date_name":        d.DateName,
			"is_closed":        d.IsClosed,
		}); err != nil {
			return crerr.Wrapf(err, "seed special date %s", d.Date)
		}
	}

	for _, s := range memory.SeedRateSheets() {
		args, err := rateSheetSeedArgs(s)
		if err != nil {
			return err
		}
		if err := execNamed(ctx, tx, `
INSERT INTO rate_sheets (
    public_id, club_id, course_id, name, holes, day_type, time_slot, status, priority,
    valid_from, valid_to, prices, legacy_prices, add_on_prices, reduced_policy,
    caddy_fee, cart_fee, insurance_fee, created_at
)
VALUES (
    :public_id, :club_id, :course_id, :name, :holes, :day_type, :time_slot, :status, :priority,
    :valid_from, :valid_to, :prices, :legacy_prices, :add_on_prices, :reduced_policy,
    :caddy_fee, :cart_fee, :insurance_fee, :created_at
)
ON CONFLICT (public_id) DO NOTHING`, args); err != nil {
			return crerr.Wrapf(err, "seed rate sheet %s", s.ID)
		}
	}

	for _, c := range memory.SeedTeamPricing() {
		tiers, err := encodeJSONB(c.Tiers)
		if err != nil {
			return err
		}
		if err := execNamed(ctx, tx, `
INSERT INTO team_pricing_configs (club_id, enabled, floor_price_rate, tiers)
VALUES (:club_id, :enabled, :floor_price_rate, :tiers)
ON CONFLICT (club_id) DO NOTHING`, map[string]any{
			"club_id":          c.ClubID,
			"enabled":          c.Enabled,
			"floor_price_rate": c.FloorPriceRate,
			"tiers":            tiers,
		}); err != nil {
			return crerr.Wrapf(err, "seed team pricing %s", c.ClubID)
		}
	}

	for _, p := range memory.SeedPackages() {
		encoded, err := encodeJSONB(p.Pricing)
		if err != nil {
			return err
		}
		if err := execNamed(ctx, tx, `
INSERT INTO stay_packages (public_id, club_id, name, status, pricing, caddy_included, cart_included, created_at)
VALUES (:public_id, :club_id, :name, :status, :pricing, :caddy_included, :cart_included, :created_at)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":      p.ID,
			"club_id":        p.ClubID,
			"name":           p.Name,
			"status":         string(p.Status),
			"pricing":        encoded,
			"caddy_included": p.Includes.CaddyIncluded,
			"cart_included":  p.Includes.CartIncluded,
			"created_at":     p.CreatedAt.UTC(),
		}); err != nil {
			return crerr.Wrapf(err, "seed package %s", p.ID)
		}
	}

	for _, m := range memory.SeedMemberships() {
		if err := execNamed(ctx, tx, `
INSERT INTO memberships (
    public_id, player_id, club_id, level, status,
    free_rounds, discount_rate, guest_quota, guest_discount,
    priority_booking, free_caddy, free_cart, free_locker, free_parking,
    rounds_used, guest_brought, total_consumption, created_at, updated_at
)
VALUES (
    :public_id, :player_id, :club_id, :level, :status,
    :free_rounds, :discount_rate, :guest_quota, :guest_discount,
    :priority_booking, :free_caddy, :free_cart, :free_locker, :free_parking,
    :rounds_used, :guest_brought, :total_consumption, :created_at, :updated_at
)
ON CONFLICT (public_id) DO NOTHING`, map[string]any{
			"public_id":         m.ID,
			"player_id":         m.PlayerID,
			"club_id":           m.ClubID,
			"level":             m.Level,
			"status":            string(m.Status),
			"free_rounds":       m.Benefits.FreeRounds,
			"discount_rate":     m.Benefits.DiscountRate,
			"guest_quota":       m.Benefits.GuestQuota,
			"guest_discount":    m.Benefits.GuestDiscount,
			"priority_booking":  m.Benefits.PriorityBooking,
			"free_caddy":        m.Benefits.FreeCaddy,
			"free_cart":         m.Benefits.FreeCart,
			"free_locker":       m.Benefits.FreeLocker,
			"free_parking":      m.Benefits.FreeParking,
			"rounds_used":       m.Usage.RoundsUsed,
			"guest_brought":     m.Usage.GuestBrought,
			"total_consumption": m.Usage.TotalConsumption,
			"created_at":        m.CreatedAt.UTC(),
			"updated_at":        m.UpdatedAt.UTC(),
		}); err != nil {
			return crerr.Wrapf(err, "seed membership %s", m.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return crerr.Wrap(err, "commit seed tx")
	}
	return nil
}

func execNamed(ctx context.Context, tx *sqlx.Tx, query string, arg map[string]any) error {
	bound, args, err := sqlx.Named(query, arg)
	if err != nil {
		return crerr.Wrap(err, "bind named query")
	}
	_, err = tx.ExecContext(ctx, tx.Rebind(bound), args...)
	return err
}

func rateSheetSeedArgs(s ratesheet.RateSheet) (map[string]any, error) {
	prices, err := encodeJSONB(s.Prices)
	if err != nil {
		return nil, err
	}
	legacy, err := encodeJSONB(s.LegacyPrices)
	if err != nil {
		return nil, err
	}
	addOn, err := encodeJSONB(s.AddOnPrices)
	if err != nil {
		return nil, err
	}
	policy, err := encodeJSONB(ratesheet.RecordFromPolicy(s.ReducedPolicy))
	if err != nil {
		return nil, err
	}

	return map[string]any{
		"public_id":      s.ID,
		"club_id":        s.ClubID,
		"course_id":      nullableString(s.CourseID),
		"name":           s.Name,
		"holes":          nullableInt(s.Holes),
		"day_type":       string(s.DayType),
		"time_slot":      string(s.TimeSlot),
		"status":         string(s.Status),
		"priority":       s.Priority,
		"valid_from":     s.ValidFrom,
		"valid_to":       s.ValidTo,
		"prices":         prices,
		"legacy_prices":  legacy,
		"add_on_prices":  addOn,
		"reduced_policy": policy,
		"caddy_fee":      s.CaddyFee,
		"cart_fee":       s.CartFee,
		"insurance_fee":  s.InsuranceFee,
		"created_at":     s.CreatedAt.UTC(),
	}, nil
}
