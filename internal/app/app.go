package app

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/riskibarqy/golf-pricing/internal/config"
	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
	"github.com/riskibarqy/golf-pricing/internal/infrastructure/repository/cache"
	"github.com/riskibarqy/golf-pricing/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/golf-pricing/internal/infrastructure/repository/postgres"
	"github.com/riskibarqy/golf-pricing/internal/platform/id"
	"github.com/riskibarqy/golf-pricing/internal/platform/logging"
	"github.com/riskibarqy/golf-pricing/internal/usecase"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
)

// Engine holds the wired pricing and benefits services.
type Engine struct {
	Pricing  *usecase.PricingService
	Benefits *usecase.BenefitsService

	db           *sqlx.DB
	invalidators []cache.Invalidator
}

type stores struct {
	calendar    calendar.Repository
	rateSheets  ratesheet.Repository
	teamPricing teampricing.Repository
	packages    stay.Repository
	memberships membership.Repository
}

// NewEngine builds the services on the store selected by cfg.StoreDriver.
// The memory store starts with the demo seed.
func NewEngine(ctx context.Context, cfg config.Config, logger *logging.Logger) (*Engine, error) {
	if logger == nil {
		logger = logging.Default()
	}

	engine := &Engine{}
	var repos stores
	switch cfg.StoreDriver {
	case config.StorePostgres:
		db, err := OpenPostgres(ctx, cfg)
		if err != nil {
			return nil, err
		}
		engine.db = db
		repos = stores{
			calendar:    postgres.NewSpecialDateRepository(db),
			rateSheets:  postgres.NewRateSheetRepository(db),
			teamPricing: postgres.NewTeamPricingRepository(db),
			packages:    postgres.NewPackageRepository(db),
			memberships: postgres.NewMembershipRepository(db, cfg.MembershipScanLimit),
		}
	default:
		repos = stores{
			calendar:    memory.NewSpecialDateRepository(memory.SeedSpecialDates()),
			rateSheets:  memory.NewRateSheetRepository(memory.SeedRateSheets()),
			teamPricing: memory.NewTeamPricingRepository(memory.SeedTeamPricing()),
			packages:    memory.NewPackageRepository(memory.SeedPackages()),
			memberships: memory.NewMembershipRepository(memory.SeedMemberships(), cfg.MembershipScanLimit),
		}
	}

	if cfg.CacheEnabled {
		calendarCache := cache.NewSpecialDateRepository(repos.calendar, cfg.CacheTTL)
		rateSheetCache := cache.NewRateSheetRepository(repos.rateSheets, cfg.CacheTTL)
		teamPricingCache := cache.NewTeamPricingRepository(repos.teamPricing, cfg.CacheTTL)
		packageCache := cache.NewPackageRepository(repos.packages, cfg.CacheTTL)
		repos.calendar = calendarCache
		repos.rateSheets = rateSheetCache
		repos.teamPricing = teamPricingCache
		repos.packages = packageCache
		engine.invalidators = []cache.Invalidator{calendarCache, rateSheetCache, teamPricingCache, packageCache}
	}

	engine.Pricing = usecase.NewPricingService(
		repos.calendar,
		repos.rateSheets,
		repos.teamPricing,
		repos.packages,
		id.NewUUIDGenerator(),
		logger,
		usecase.PricingConfig{
			RateSheetScanLimit: cfg.RateSheetScanLimit,
			QuoteMaxWorkers:    cfg.QuoteMaxWorkers,
		},
	)
	engine.Benefits = usecase.NewBenefitsService(repos.memberships, logger)

	logger.InfoContext(ctx, "pricing engine ready",
		"store", cfg.StoreDriver,
		"cache_enabled", cfg.CacheEnabled,
	)
	return engine, nil
}

// InvalidateClub drops cached configuration of one club.
func (e *Engine) InvalidateClub(ctx context.Context, clubID string) int {
	return cache.InvalidateClub(ctx, clubID, e.invalidators...)
}

// DB is the Postgres handle, nil on the memory store.
func (e *Engine) DB() *sqlx.DB {
	return e.db
}

func (e *Engine) Close() error {
	if e.db == nil {
		return nil
	}
	return e.db.Close()
}

// OpenPostgres opens a traced connection pool and verifies it with a ping.
func OpenPostgres(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	dsn := PostgresDSN(cfg)
	db, err := otelsqlx.Open("postgres", dsn,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(dsn)),
		otelsql.WithQueryFormatter(formatDBQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}
