package membership

import (
	"math"

	crerr "github.com/cockroachdb/errors"
)

var ErrInvalidUsageUpdate = crerr.New("invalid membership usage update")

// UsageField names a usage counter.
type UsageField string

const (
	FieldRoundsUsed       UsageField = "rounds_used"
	FieldGuestBrought     UsageField = "guest_brought"
	FieldTotalConsumption UsageField = "total_consumption"
)

// Guard is the bound a usage increment must respect at write time.
type Guard string

const (
	GuardNone       Guard = ""
	GuardFreeRounds Guard = "free_rounds"
	GuardGuestQuota Guard = "guest_quota"
)

// UsageUpdate increments one counter of one membership. Guarded updates must
// be applied atomically: the bound is evaluated against the stored record at
// the moment of the write, never against a copy read earlier.
type UsageUpdate struct {
	MembershipID string
	Field        UsageField
	Delta        float64
	Guard        Guard
}

func (u UsageUpdate) Validate() error {
	if u.MembershipID == "" {
		return crerr.Wrap(ErrInvalidUsageUpdate, "membership id is required")
	}
	if u.Delta <= 0 || math.IsNaN(u.Delta) || math.IsInf(u.Delta, 0) {
		return crerr.Wrapf(ErrInvalidUsageUpdate, "delta must be positive, got %v", u.Delta)
	}

	switch u.Field {
	case FieldRoundsUsed, FieldGuestBrought:
		if u.Delta != math.Trunc(u.Delta) {
			return crerr.Wrapf(ErrInvalidUsageUpdate, "%s delta must be whole, got %v", u.Field, u.Delta)
		}
	case FieldTotalConsumption:
	default:
		return crerr.Wrapf(ErrInvalidUsageUpdate, "unknown field %q", u.Field)
	}

	switch u.Guard {
	case GuardNone:
	case GuardFreeRounds:
		if u.Field != FieldRoundsUsed {
			return crerr.Wrapf(ErrInvalidUsageUpdate, "guard %s cannot protect %s", u.Guard, u.Field)
		}
	case GuardGuestQuota:
		if u.Field != FieldGuestBrought {
			return crerr.Wrapf(ErrInvalidUsageUpdate, "guard %s cannot protect %s", u.Guard, u.Field)
		}
	default:
		return crerr.Wrapf(ErrInvalidUsageUpdate, "unknown guard %q", u.Guard)
	}
	return nil
}

// Permits evaluates the guard against the current stored state of m. A
// guarded update also requires the membership to still be usable.
func (g Guard) Permits(m Membership, delta float64) bool {
	switch g {
	case GuardFreeRounds:
		return m.Status.IsUsable() && WithinAllowance(m.Usage.RoundsUsed, int(delta), m.Benefits.FreeRounds)
	case GuardGuestQuota:
		return m.Status.IsUsable() && WithinAllowance(m.Usage.GuestBrought, int(delta), m.Benefits.GuestQuota)
	default:
		return true
	}
}

// WithinAllowance is the write-time bound: an allowance of zero is unbounded,
// otherwise used+delta may reach but not exceed it.
func WithinAllowance(used, delta, allowance int) bool {
	if allowance <= 0 {
		return true
	}
	return used+delta <= allowance
}

// ApplyTo adds the delta to the targeted counter.
func (u UsageUpdate) ApplyTo(m *Membership) {
	switch u.Field {
	case FieldRoundsUsed:
		m.Usage.RoundsUsed += int(u.Delta)
	case FieldGuestBrought:
		m.Usage.GuestBrought += int(u.Delta)
	case FieldTotalConsumption:
		m.Usage.TotalConsumption += u.Delta
	}
}
