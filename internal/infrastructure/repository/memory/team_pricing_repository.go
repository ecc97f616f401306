package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
)

type TeamPricingRepository struct {
	mu     sync.RWMutex
	byClub map[string]teampricing.Config
}

func NewTeamPricingRepository(configs []teampricing.Config) *TeamPricingRepository {
	byClub := make(map[string]teampricing.Config, len(configs))
	for _, cfg := range configs {
		byClub[cfg.ClubID] = cloneTeamPricing(cfg)
	}
	return &TeamPricingRepository{byClub: byClub}
}

func (r *TeamPricingRepository) GetByClub(_ context.Context, clubID string) (teampricing.Config, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	cfg, ok := r.byClub[clubID]
	if !ok {
		return teampricing.Config{}, false, nil
	}
	return cloneTeamPricing(cfg), true, nil
}

func cloneTeamPricing(cfg teampricing.Config) teampricing.Config {
	copied := cfg
	copied.Tiers = append([]teampricing.Tier(nil), cfg.Tiers...)
	return copied
}
