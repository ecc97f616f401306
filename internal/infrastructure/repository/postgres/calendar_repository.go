package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/riskibarqy/golf-pricing/internal/domain/calendar"
)

type SpecialDateRepository struct {
	db *sqlx.DB
}

func NewSpecialDateRepository(db *sqlx.DB) *SpecialDateRepository {
	return &SpecialDateRepository{db: db}
}

func (r *SpecialDateRepository) FindSpecialDate(ctx context.Context, clubID, date string) (calendar.SpecialDate, bool, error) {
	const query = `
SELECT club_id, date, pricing_override, date_type, date_name, is_closed
FROM special_dates
WHERE club_id = $1
  AND date = $2::date
  AND deleted_at IS NULL`

	var row specialDateTableModel
	if err := r.db.GetContext(ctx, &row, query, clubID, date); err != nil {
		if isNotFound(err) {
			return calendar.SpecialDate{}, false, nil
		}
		return calendar.SpecialDate{}, false, crerr.Wrapf(err, "get special date club=%s date=%s", clubID, date)
	}

	return row.toDomain(), true, nil
}
