package postgres

import (
	"context"

	crerr "github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
)

const membershipColumns = `
public_id, player_id, club_id, level, status,
free_rounds, discount_rate, guest_quota, guest_discount,
priority_booking, free_caddy, free_cart, free_locker, free_parking,
rounds_used, guest_brought, total_consumption, created_at, updated_at`

// Usage increments are single conditional UPDATE statements. The allowance
// and status are compared against the row as it is at write time, so two
// concurrent consumers of the last unit cannot both succeed.
const (
	incrementRoundsGuardedSQL = `
UPDATE memberships
SET rounds_used = rounds_used + $2, updated_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL
  AND status = ANY($3)
  AND (free_rounds <= 0 OR rounds_used + $2 <= free_rounds)`

	incrementGuestsGuardedSQL = `
UPDATE memberships
SET guest_brought = guest_brought + $2, updated_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL
  AND status = ANY($3)
  AND (guest_quota <= 0 OR guest_brought + $2 <= guest_quota)`

	incrementRoundsSQL = `
UPDATE memberships
SET rounds_used = rounds_used + $2, updated_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	incrementGuestsSQL = `
UPDATE memberships
SET guest_brought = guest_brought + $2, updated_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`

	incrementConsumptionSQL = `
UPDATE memberships
SET total_consumption = total_consumption + $2, updated_at = NOW()
WHERE public_id = $1
  AND deleted_at IS NULL`
)

type MembershipRepository struct {
	db        *sqlx.DB
	scanLimit int
}

func NewMembershipRepository(db *sqlx.DB, scanLimit int) *MembershipRepository {
	if scanLimit <= 0 {
		scanLimit = membership.DefaultScanLimit
	}
	return &MembershipRepository{db: db, scanLimit: scanLimit}
}

func (r *MembershipRepository) FindActive(ctx context.Context, clubID, playerID string) (membership.Membership, bool, error) {
	query := `
SELECT` + membershipColumns + `
FROM memberships
WHERE club_id = $1
  AND player_id = $2
  AND status = ANY($3)
  AND deleted_at IS NULL
ORDER BY created_at DESC, public_id DESC
LIMIT $4`

	var rows []membershipTableModel
	if err := r.db.SelectContext(ctx, &rows, query, clubID, playerID, pq.Array(usableStatuses()), r.scanLimit); err != nil {
		return membership.Membership{}, false, crerr.Wrapf(err, "select memberships club=%s player=%s", clubID, playerID)
	}

	items := make([]membership.Membership, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toDomain())
	}
	m, ok := membership.SelectActive(items, r.scanLimit)
	return m, ok, nil
}

func (r *MembershipRepository) UpdateUsage(ctx context.Context, update membership.UsageUpdate) (bool, error) {
	if err := update.Validate(); err != nil {
		return false, err
	}

	query, args := usageStatement(update)
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, crerr.Wrapf(err, "update membership %s %s", update.MembershipID, update.Field)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, crerr.Wrapf(err, "rows affected for membership %s", update.MembershipID)
	}
	// The guarded UPDATE is the compare-and-swap: one row means the guard held
	// at write time, zero means it did not and nothing changed.
	return affected == 1, nil
}

// usageStatement picks the statement for a validated update. Guarded
// statements carry their bound in the WHERE clause, so UpdateUsage reads
// RowsAffected == 1 as success.
func usageStatement(update membership.UsageUpdate) (string, []any) {
	statuses := pq.Array(usableStatuses())
	switch update.Field {
	case membership.FieldRoundsUsed:
		if update.Guard == membership.GuardFreeRounds {
			return incrementRoundsGuardedSQL, []any{update.MembershipID, int(update.Delta), statuses}
		}
		return incrementRoundsSQL, []any{update.MembershipID, int(update.Delta)}
	case membership.FieldGuestBrought:
		if update.Guard == membership.GuardGuestQuota {
			return incrementGuestsGuardedSQL, []any{update.MembershipID, int(update.Delta), statuses}
		}
		return incrementGuestsSQL, []any{update.MembershipID, int(update.Delta)}
	default:
		return incrementConsumptionSQL, []any{update.MembershipID, update.Delta}
	}
}

func usableStatuses() []string {
	statuses := membership.UsableStatuses()
	out := make([]string, 0, len(statuses))
	for _, status := range statuses {
		out = append(out, string(status))
	}
	return out
}
