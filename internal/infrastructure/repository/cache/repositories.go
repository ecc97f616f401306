package cache

import (
	"context"
	"strconv"
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
	"github.com/riskibarqy/golf-pricing/internal/domain/stay"
	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
	basecache "github.com/riskibarqy/golf-pricing/internal/platform/cache"
)

// Memberships are never cached: their usage counters change on every
// consumption and the guard must see the stored row.

// cached wraps a lookup result so that misses are cached too.
type cached[V any] struct {
	value  V
	exists bool
}

func clubPrefix(clubID string) string {
	return "club:" + clubID + ":"
}

func lookup[V any](
	ctx context.Context,
	store *basecache.Store[cached[V]],
	key string,
	load func(context.Context) (V, bool, error),
) (V, bool, error) {
	v, err := store.GetOrLoad(ctx, key, func(ctx context.Context) (cached[V], error) {
		item, exists, err := load(ctx)
		if err != nil {
			return cached[V]{}, err
		}
		return cached[V]{value: item, exists: exists}, nil
	})
	if err != nil {
		var zero V
		return zero, false, err
	}
	return v.value, v.exists, nil
}

type SpecialDateRepository struct {
	next  calendar.Repository
	cache *basecache.Store[cached[calendar.SpecialDate]]
}

func NewSpecialDateRepository(next calendar.Repository, ttl time.Duration) *SpecialDateRepository {
	return &SpecialDateRepository{next: next, cache: basecache.NewStore[cached[calendar.SpecialDate]](ttl)}
}

func (r *SpecialDateRepository) FindSpecialDate(ctx context.Context, clubID, date string) (calendar.SpecialDate, bool, error) {
	return lookup(ctx, r.cache, clubPrefix(clubID)+"special:"+date, func(ctx context.Context) (calendar.SpecialDate, bool, error) {
		return r.next.FindSpecialDate(ctx, clubID, date)
	})
}

func (r *SpecialDateRepository) InvalidateClub(ctx context.Context, clubID string) int {
	return r.cache.DeletePrefix(ctx, clubPrefix(clubID))
}

type RateSheetRepository struct {
	next  ratesheet.Repository
	cache *basecache.Store[[]ratesheet.RateSheet]
}

func NewRateSheetRepository(next ratesheet.Repository, ttl time.Duration) *RateSheetRepository {
	return &RateSheetRepository{next: next, cache: basecache.NewStore[[]ratesheet.RateSheet](ttl)}
}

func (r *RateSheetRepository) Query(ctx context.Context, q ratesheet.Query) ([]ratesheet.RateSheet, error) {
	key := clubPrefix(q.ClubID) + "ratesheets:" + string(q.DayType) + ":" + string(q.TimeSlot) + ":" + strconv.Itoa(q.Limit)
	items, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) ([]ratesheet.RateSheet, error) {
		return r.next.Query(ctx, q)
	})
	if err != nil {
		return nil, err
	}

	out := make([]ratesheet.RateSheet, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out, nil
}

func (r *RateSheetRepository) InvalidateClub(ctx context.Context, clubID string) int {
	return r.cache.DeletePrefix(ctx, clubPrefix(clubID))
}

type TeamPricingRepository struct {
	next  teampricing.Repository
	cache *basecache.Store[cached[teampricing.Config]]
}

func NewTeamPricingRepository(next teampricing.Repository, ttl time.Duration) *TeamPricingRepository {
	return &TeamPricingRepository{next: next, cache: basecache.NewStore[cached[teampricing.Config]](ttl)}
}

func (r *TeamPricingRepository) GetByClub(ctx context.Context, clubID string) (teampricing.Config, bool, error) {
	cfg, exists, err := lookup(ctx, r.cache, clubPrefix(clubID)+"teampricing", func(ctx context.Context) (teampricing.Config, bool, error) {
		return r.next.GetByClub(ctx, clubID)
	})
	if err != nil || !exists {
		return cfg, exists, err
	}
	cfg.Tiers = append([]teampricing.Tier(nil), cfg.Tiers...)
	return cfg, true, nil
}

func (r *TeamPricingRepository) InvalidateClub(ctx context.Context, clubID string) int {
	return r.cache.DeletePrefix(ctx, clubPrefix(clubID))
}

type PackageRepository struct {
	next  stay.Repository
	cache *basecache.Store[cached[stay.Package]]
}

func NewPackageRepository(next stay.Repository, ttl time.Duration) *PackageRepository {
	return &PackageRepository{next: next, cache: basecache.NewStore[cached[stay.Package]](ttl)}
}

func (r *PackageRepository) GetByID(ctx context.Context, packageID string) (stay.Package, bool, error) {
	pkg, exists, err := lookup(ctx, r.cache, "package:"+packageID, func(ctx context.Context) (stay.Package, bool, error) {
		return r.next.GetByID(ctx, packageID)
	})
	if err != nil || !exists {
		return pkg, exists, err
	}
	pkg.Pricing.Prices = pkg.Pricing.Prices.Clone()
	return pkg, true, nil
}

// InvalidateClub drops the club's cached packages. Package keys carry no club,
// so cached misses are dropped as well.
func (r *PackageRepository) InvalidateClub(ctx context.Context, clubID string) int {
	return r.cache.DeleteFunc(ctx, func(_ string, item cached[stay.Package]) bool {
		return !item.exists || item.value.ClubID == clubID
	})
}

// Invalidator drops cached configuration for one club.
type Invalidator interface {
	InvalidateClub(ctx context.Context, clubID string) int
}

// InvalidateClub runs every invalidator and returns the number of dropped
// entries.
func InvalidateClub(ctx context.Context, clubID string, invalidators ...Invalidator) int {
	removed := 0
	for _, inv := range invalidators {
		if inv != nil {
			removed += inv.InvalidateClub(ctx, clubID)
		}
	}
	return removed
}
