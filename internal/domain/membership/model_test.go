package membership

import (
	"errors"
	"testing"
	"time"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name          string
		benefits      Benefits
		usage         Usage
		wantUnlimited bool
		wantRounds    int
		wantGuests    int
		wantFreeRound bool
		wantGuest     bool
	}{
		{
			name:          "bounded rounds with remaining guests",
			benefits:      Benefits{FreeRounds: 5, GuestQuota: 3},
			usage:         Usage{RoundsUsed: 2, GuestBrought: 1},
			wantRounds:    3,
			wantGuests:    2,
			wantFreeRound: true,
			wantGuest:     true,
		},
		{
			name:          "zero free rounds is unlimited and zero quota allows no guests",
			benefits:      Benefits{},
			usage:         Usage{RoundsUsed: 40},
			wantUnlimited: true,
			wantFreeRound: true,
		},
		{
			name:       "exhausted allowances",
			benefits:   Benefits{FreeRounds: 2, GuestQuota: 2},
			usage:      Usage{RoundsUsed: 2, GuestBrought: 2},
			wantRounds: 0,
			wantGuests: 0,
		},
		{
			name:       "overdrawn counters clamp at zero",
			benefits:   Benefits{FreeRounds: 2, GuestQuota: 1},
			usage:      Usage{RoundsUsed: 5, GuestBrought: 4},
			wantRounds: 0,
			wantGuests: 0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Summarize(Membership{ID: "m-1", Level: 2, Status: StatusActive, Benefits: tc.benefits, Usage: tc.usage})
			if !got.HasMembership || got.IdentityCode != "member_2" {
				t.Fatalf("unexpected header: %+v", got)
			}
			if got.UnlimitedFreeRounds != tc.wantUnlimited {
				t.Fatalf("unlimited = %v, want %v", got.UnlimitedFreeRounds, tc.wantUnlimited)
			}
			if !tc.wantUnlimited && got.RemainingFreeRounds != tc.wantRounds {
				t.Fatalf("remaining rounds = %d, want %d", got.RemainingFreeRounds, tc.wantRounds)
			}
			if got.RemainingGuestQuota != tc.wantGuests {
				t.Fatalf("remaining guests = %d, want %d", got.RemainingGuestQuota, tc.wantGuests)
			}
			if got.CanUseFreeRound != tc.wantFreeRound || got.CanBringGuest != tc.wantGuest {
				t.Fatalf("flags = (%v,%v), want (%v,%v)", got.CanUseFreeRound, got.CanBringGuest, tc.wantFreeRound, tc.wantGuest)
			}
		})
	}
}

func TestRemainingFreeRoundsText(t *testing.T) {
	if got := Summarize(Membership{}).RemainingFreeRoundsText(); got != UnlimitedLabel {
		t.Fatalf("expected %q, got %q", UnlimitedLabel, got)
	}
	got := Summarize(Membership{Benefits: Benefits{FreeRounds: 4}, Usage: Usage{RoundsUsed: 1}}).RemainingFreeRoundsText()
	if got != "3" {
		t.Fatalf("expected 3, got %q", got)
	}
}

func TestGuardPermits(t *testing.T) {
	active := Membership{Status: StatusActive, Benefits: Benefits{FreeRounds: 3, GuestQuota: 2}, Usage: Usage{RoundsUsed: 2, GuestBrought: 1}}

	tests := []struct {
		name  string
		guard Guard
		m     Membership
		delta float64
		want  bool
	}{
		{name: "last free round", guard: GuardFreeRounds, m: active, delta: 1, want: true},
		{name: "guest quota exceeded", guard: GuardGuestQuota, m: active, delta: 2, want: false},
		{name: "guest quota reached exactly", guard: GuardGuestQuota, m: active, delta: 1, want: true},
		{name: "unguarded", guard: GuardNone, m: Membership{Status: StatusExpired}, delta: 99, want: true},
		{name: "zero allowance unbounded on write", guard: GuardGuestQuota, m: Membership{Status: StatusExpiring, Usage: Usage{GuestBrought: 10}}, delta: 1, want: true},
		{name: "suspended membership", guard: GuardFreeRounds, m: Membership{Status: StatusSuspended}, delta: 1, want: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.guard.Permits(tc.m, tc.delta); got != tc.want {
				t.Fatalf("Permits() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestUsageUpdateValidate(t *testing.T) {
	valid := []UsageUpdate{
		{MembershipID: "m", Field: FieldRoundsUsed, Delta: 1, Guard: GuardFreeRounds},
		{MembershipID: "m", Field: FieldGuestBrought, Delta: 2, Guard: GuardGuestQuota},
		{MembershipID: "m", Field: FieldTotalConsumption, Delta: 12.5},
	}
	for _, u := range valid {
		if err := u.Validate(); err != nil {
			t.Fatalf("expected %+v to be valid, got %v", u, err)
		}
	}

	invalid := []UsageUpdate{
		{Field: FieldRoundsUsed, Delta: 1},
		{MembershipID: "m", Field: FieldRoundsUsed, Delta: 0},
		{MembershipID: "m", Field: FieldGuestBrought, Delta: 1.5},
		{MembershipID: "m", Field: "locker", Delta: 1},
		{MembershipID: "m", Field: FieldTotalConsumption, Delta: 1, Guard: GuardFreeRounds},
	}
	for _, u := range invalid {
		if err := u.Validate(); !errors.Is(err, ErrInvalidUsageUpdate) {
			t.Fatalf("expected ErrInvalidUsageUpdate for %+v, got %v", u, err)
		}
	}
}

func TestApplyTo(t *testing.T) {
	m := Membership{}
	UsageUpdate{Field: FieldRoundsUsed, Delta: 1}.ApplyTo(&m)
	UsageUpdate{Field: FieldGuestBrought, Delta: 2}.ApplyTo(&m)
	UsageUpdate{Field: FieldTotalConsumption, Delta: 99.5}.ApplyTo(&m)
	if m.Usage != (Usage{RoundsUsed: 1, GuestBrought: 2, TotalConsumption: 99.5}) {
		t.Fatalf("unexpected usage: %+v", m.Usage)
	}
}

func TestSelectActive(t *testing.T) {
	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	items := []Membership{
		{ID: "old", Status: StatusActive, CreatedAt: base},
		{ID: "newest-expired", Status: StatusExpired, CreatedAt: base.Add(3 * time.Hour)},
		{ID: "expiring", Status: StatusExpiring, CreatedAt: base.Add(2 * time.Hour)},
		{ID: "pending", Status: StatusPending, CreatedAt: base.Add(4 * time.Hour)},
	}

	got, ok := SelectActive(items, 0)
	if !ok || got.ID != "expiring" {
		t.Fatalf("expected expiring membership, got %+v ok=%v", got, ok)
	}

	if _, ok := SelectActive([]Membership{{ID: "x", Status: StatusCancelled}}, 10); ok {
		t.Fatalf("expected no usable membership")
	}
}
