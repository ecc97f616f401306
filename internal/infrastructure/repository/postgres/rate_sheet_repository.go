package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-pricing/internal/domain/ratesheet"
)

type RateSheetRepository struct {
	db *sqlx.DB
}

// public_id sorts bytewise so ties break the same way ratesheet.Less does.
const rateSheetCandidatesSQL = `
SELECT public_id, club_id, course_id, name, holes, day_type, time_slot, status, priority,
       valid_from, valid_to, prices, legacy_prices, add_on_prices, reduced_policy,
       caddy_fee, cart_fee, insurance_fee, created_at
FROM rate_sheets
WHERE club_id = $1
  AND day_type = $2
  AND time_slot = $3
  AND status = $4
  AND deleted_at IS NULL
ORDER BY priority DESC, created_at ASC, public_id COLLATE "C" ASC
LIMIT $5`

func NewRateSheetRepository(db *sqlx.DB) *RateSheetRepository {
	return &RateSheetRepository{db: db}
}

// Query returns active candidates in the same order ratesheet.Less defines.
func (r *RateSheetRepository) Query(ctx context.Context, q ratesheet.Query) ([]ratesheet.RateSheet, error) {
	limit := q.Limit
	if limit <= 0 {
		limit = ratesheet.DefaultScanLimit
	}

	var rows []rateSheetTableModel
	if err := r.db.SelectContext(ctx, &rows, rateSheetCandidatesSQL,
		q.ClubID,
		string(q.DayType),
		string(q.TimeSlot),
		string(ratesheet.StatusActive),
		limit,
	); err != nil {
		return nil, crerr.Wrapf(err, "select rate sheets club=%s", q.ClubID)
	}

	out := make([]ratesheet.RateSheet, 0, len(rows))
	for _, row := range rows {
		sheet, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, sheet)
	}
	return out, nil
}
