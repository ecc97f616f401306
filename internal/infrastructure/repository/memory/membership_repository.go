package memory

import (
	"context"
	"sync"
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
)

// MembershipRepository keeps memberships in process. UpdateUsage evaluates
// the guard and applies the increment under one write lock.
type MembershipRepository struct {
	mu        sync.RWMutex
	byID      map[string]membership.Membership
	scanLimit int
	now       func() time.Time
}

func NewMembershipRepository(items []membership.Membership, scanLimit int) *MembershipRepository {
	if scanLimit <= 0 {
		scanLimit = membership.DefaultScanLimit
	}
	byID := make(map[string]membership.Membership, len(items))
	for _, item := range items {
		byID[item.ID] = item
	}
	return &MembershipRepository{byID: byID, scanLimit: scanLimit, now: time.Now}
}

func (r *MembershipRepository) FindActive(_ context.Context, clubID, playerID string) (membership.Membership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	owned := make([]membership.Membership, 0)
	for _, item := range r.byID {
		if item.ClubID == clubID && item.PlayerID == playerID {
			owned = append(owned, item)
		}
	}

	m, ok := membership.SelectActive(owned, r.scanLimit)
	return m, ok, nil
}

func (r *MembershipRepository) UpdateUsage(_ context.Context, update membership.UsageUpdate) (bool, error) {
	if err := update.Validate(); err != nil {
		return false, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	m, ok := r.byID[update.MembershipID]
	if !ok {
		return false, nil
	}
	if !update.Guard.Permits(m, update.Delta) {
		return false, nil
	}

	update.ApplyTo(&m)
	m.UpdatedAt = r.now().UTC()
	r.byID[m.ID] = m
	return true, nil
}

// GetByID is used by seeding and tests to inspect stored counters.
func (r *MembershipRepository) GetByID(_ context.Context, membershipID string) (membership.Membership, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	m, ok := r.byID[membershipID]
	return m, ok, nil
}
