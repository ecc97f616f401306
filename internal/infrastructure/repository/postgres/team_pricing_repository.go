package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-pricing/internal/domain/teampricing"
)

type TeamPricingRepository struct {
	db *sqlx.DB
}

func NewTeamPricingRepository(db *sqlx.DB) *TeamPricingRepository {
	return &TeamPricingRepository{db: db}
}

func (r *TeamPricingRepository) GetByClub(ctx context.Context, clubID string) (teampricing.Config, bool, error) {
	const query = `
SELECT club_id, enabled, floor_price_rate, tiers
FROM team_pricing_configs
WHERE club_id = $1
  AND deleted_at IS NULL`

	var row teamPricingTableModel
	if err := r.db.GetContext(ctx, &row, query, clubID); err != nil {
		if isNotFound(err) {
			return teampricing.Config{}, false, nil
		}
		return teampricing.Config{}, false, crerr.Wrapf(err, "get team pricing club=%s", clubID)
	}

	cfg, err := row.toDomain()
	if err != nil {
		return teampricing.Config{}, false, err
	}
	return cfg, true, nil
}
