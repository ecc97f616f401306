package membership

import (
	"strconv"

	"github.com/riskibarqy/golf-pricing/internal/domain/pricing"
)

const UnlimitedLabel = "unlimited"

// Summary is the derived, read-only view of a player's entitlements.
type Summary struct {
	HasMembership       bool                 `json:"has_membership"`
	MembershipID        string               `json:"membership_id,omitempty"`
	Status              Status               `json:"status,omitempty"`
	Level               int                  `json:"level,omitempty"`
	IdentityCode        pricing.IdentityCode `json:"identity_code"`
	Benefits            Benefits             `json:"benefits"`
	Usage               Usage                `json:"usage"`
	UnlimitedFreeRounds bool                 `json:"unlimited_free_rounds"`
	RemainingFreeRounds int                  `json:"remaining_free_rounds"`
	RemainingGuestQuota int                  `json:"remaining_guest_quota"`
	CanUseFreeRound     bool                 `json:"can_use_free_round"`
	CanBringGuest       bool                 `json:"can_bring_guest"`
}

// NoMembership is the summary of a player without a usable membership.
func NoMembership() Summary {
	return Summary{IdentityCode: pricing.IdentityWalkin}
}

// Summarize derives remaining allowances. Free rounds of zero are unlimited,
// while a guest quota of zero leaves nothing to bring.
func Summarize(m Membership) Summary {
	out := Summary{
		HasMembership: true,
		MembershipID:  m.ID,
		Status:        m.Status,
		Level:         m.Level,
		IdentityCode:  m.IdentityCode(),
		Benefits:      m.Benefits,
		Usage:         m.Usage,
	}

	if m.Benefits.FreeRounds > 0 {
		out.RemainingFreeRounds = max(0, m.Benefits.FreeRounds-m.Usage.RoundsUsed)
		out.CanUseFreeRound = out.RemainingFreeRounds > 0
	} else {
		out.UnlimitedFreeRounds = true
		out.CanUseFreeRound = true
	}

	out.RemainingGuestQuota = max(0, m.Benefits.GuestQuota-m.Usage.GuestBrought)
	out.CanBringGuest = out.RemainingGuestQuota > 0
	return out
}

// RemainingFreeRoundsText renders the free-round balance for display.
func (s Summary) RemainingFreeRoundsText() string {
	if s.UnlimitedFreeRounds {
		return UnlimitedLabel
	}
	return strconv.Itoa(s.RemainingFreeRounds)
}
