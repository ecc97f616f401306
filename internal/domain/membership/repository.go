package membership

import "context"

// Repository describes membership reads and usage writes.
type Repository interface {
	// FindActive returns the newest active or expiring membership of a player.
	FindActive(ctx context.Context, clubID, playerID string) (Membership, bool, error)
	// UpdateUsage applies update if its guard holds at write time and reports
	// whether the increment was applied. Implementations must make the guard
	// check and the increment one atomic step.
	UpdateUsage(ctx context.Context, update UsageUpdate) (bool, error)
}
