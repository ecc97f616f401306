package membership

import (
	"sort"
	"time"

	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
)

type Status string

const (
	StatusActive    Status = "active"
	StatusExpiring  Status = "expiring"
	StatusExpired   Status = "expired"
	StatusSuspended Status = "suspended"
	StatusCancelled Status = "cancelled"
	StatusPending   Status = "pending"
)

// DefaultScanLimit bounds how many recent memberships are considered.
const DefaultScanLimit = 10

// IsUsable reports whether benefits of a membership in this status may be read
// or consumed.
func (s Status) IsUsable() bool {
	return s == StatusActive || s == StatusExpiring
}

// UsableStatuses lists the statuses accepted by FindActive.
func UsableStatuses() []Status {
	return []Status{StatusActive, StatusExpiring}
}

// Benefits are the allowances granted by a membership. FreeRounds of zero is
// unlimited; GuestQuota of zero allows no guests.
type Benefits struct {
	FreeRounds      int     `json:"free_rounds"`
	DiscountRate    float64 `json:"discount_rate"`
	GuestQuota      int     `json:"guest_quota"`
	GuestDiscount   float64 `json:"guest_discount"`
	PriorityBooking bool    `json:"priority_booking"`
	FreeCaddy       bool    `json:"free_caddy"`
	FreeCart        bool    `json:"free_cart"`
	FreeLocker      bool    `json:"free_locker"`
	FreeParking     bool    `json:"free_parking"`
}

// Usage counters only ever grow.
type Usage struct {
	RoundsUsed       int     `json:"rounds_used"`
	GuestBrought     int     `json:"guest_brought"`
	TotalConsumption float64 `json:"total_consumption"`
}

type Membership struct {
	ID        string
	PlayerID  string
	ClubID    string
	Level     int
	Status    Status
	Benefits  Benefits
	Usage     Usage
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IdentityCode is the price-lookup key implied by the membership level.
func (m Membership) IdentityCode() pricing.IdentityCode {
	return pricing.MemberIdentity(m.Level)
}

// SelectActive returns the most recently created usable membership among the
// newest limit usable ones. Ties on creation time go to the higher id.
func SelectActive(items []Membership, limit int) (Membership, bool) {
	if limit <= 0 {
		limit = DefaultScanLimit
	}

	usable := make([]Membership, 0, len(items))
	for _, item := range items {
		if item.Status.IsUsable() {
			usable = append(usable, item)
		}
	}
	if len(usable) == 0 {
		return Membership{}, false
	}

	sort.SliceStable(usable, func(i, j int) bool {
		if !usable[i].CreatedAt.Equal(usable[j].CreatedAt) {
			return usable[i].CreatedAt.After(usable[j].CreatedAt)
		}
		return usable[i].ID > usable[j].ID
	})
	if len(usable) > limit {
		usable = usable[:limit]
	}
	return usable[0], true
}
