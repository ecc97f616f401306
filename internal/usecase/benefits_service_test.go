package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
	"github.com/riskibarqy/golf-pricing/internal/infrastructure/repository/memory"
	membershipmock "github.com/riskibarqy/golf-pricing/internal/mocks/domain/membership"
	"github.com/riskibarqy/golf-pricing/internal/platform/logging"
	"github.com/sourcegraph/conc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newMembership(id string, benefits membership.Benefits, usage membership.Usage) membership.Membership {
	return membership.Membership{
		ID:       id,
		PlayerID: "player-1",
		ClubID:   "club-1",
		Level:    2,
		Status:   membership.StatusActive,
		Benefits: benefits,
		Usage:    usage,
	}
}

func TestBenefitsService_GetPlayerBenefits(t *testing.T) {
	t.Parallel()

	repo := memory.NewMembershipRepository(memory.SeedMemberships(), 0)
	svc := NewBenefitsService(repo, logging.NewNop())

	summary, err := svc.GetPlayerBenefits(context.Background(), memory.ClubIDDemo, memory.PlayerIDMember)
	require.NoError(t, err)
	assert.True(t, summary.HasMembership)
	assert.Equal(t, memory.MembershipIDOne, summary.MembershipID)
	assert.EqualValues(t, "member_1", summary.IdentityCode)
	assert.Equal(t, 4, summary.RemainingFreeRounds)
	assert.Equal(t, 2, summary.RemainingGuestQuota)
	assert.True(t, summary.CanUseFreeRound)
	assert.True(t, summary.CanBringGuest)

	none, err := svc.GetPlayerBenefits(context.Background(), memory.ClubIDDemo, memory.PlayerIDGuest)
	require.NoError(t, err)
	assert.Equal(t, membership.NoMembership(), none)

	_, err = svc.GetPlayerBenefits(context.Background(), " ", memory.PlayerIDMember)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBenefitsService_ConsumeFreeRound_LastRoundOnce(t *testing.T) {
	t.Parallel()

	repo := memory.NewMembershipRepository([]membership.Membership{
		newMembership("mbr-1", membership.Benefits{FreeRounds: 1}, membership.Usage{}),
	}, 0)
	svc := NewBenefitsService(repo, logging.NewNop())

	const callers = 32
	results := make([]bool, callers)
	errs := make([]error, callers)
	var wg conc.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Go(func() {
			results[i], errs[i] = svc.ConsumeFreeRound(context.Background(), "club-1", "player-1")
		})
	}
	wg.Wait()

	granted := 0
	for i := range results {
		require.NoError(t, errs[i])
		if results[i] {
			granted++
		}
	}
	assert.Equal(t, 1, granted)

	stored, _, err := repo.GetByID(context.Background(), "mbr-1")
	require.NoError(t, err)
	assert.Equal(t, 1, stored.Usage.RoundsUsed)
}

func TestBenefitsService_ConsumeFreeRound_Unlimited(t *testing.T) {
	t.Parallel()

	repo := memory.NewMembershipRepository([]membership.Membership{
		newMembership("mbr-1", membership.Benefits{}, membership.Usage{RoundsUsed: 120}),
	}, 0)
	svc := NewBenefitsService(repo, logging.NewNop())

	ok, err := svc.ConsumeFreeRound(context.Background(), "club-1", "player-1")
	require.NoError(t, err)
	assert.True(t, ok)

	stored, _, _ := repo.GetByID(context.Background(), "mbr-1")
	assert.Equal(t, 121, stored.Usage.RoundsUsed)
}

func TestBenefitsService_ConsumeGuestQuota(t *testing.T) {
	t.Parallel()

	repo := memory.NewMembershipRepository([]membership.Membership{
		newMembership("mbr-1", membership.Benefits{GuestQuota: 3}, membership.Usage{GuestBrought: 1}),
	}, 0)
	svc := NewBenefitsService(repo, logging.NewNop())
	ctx := context.Background()

	ok, err := svc.ConsumeGuestQuota(ctx, "club-1", "player-1", 3)
	require.NoError(t, err)
	assert.False(t, ok, "three guests exceed the two remaining")

	ok, err = svc.ConsumeGuestQuota(ctx, "club-1", "player-1", 2)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.ConsumeGuestQuota(ctx, "club-1", "player-1", 1)
	require.NoError(t, err)
	assert.False(t, ok)

	stored, _, _ := repo.GetByID(ctx, "mbr-1")
	assert.Equal(t, 3, stored.Usage.GuestBrought)

	_, err = svc.ConsumeGuestQuota(ctx, "club-1", "player-1", 0)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBenefitsService_AddConsumption(t *testing.T) {
	t.Parallel()

	repo := memory.NewMembershipRepository([]membership.Membership{
		newMembership("mbr-1", membership.Benefits{}, membership.Usage{TotalConsumption: 100}),
	}, 0)
	svc := NewBenefitsService(repo, logging.NewNop())

	ok, err := svc.AddConsumption(context.Background(), "club-1", "player-1", 250.5)
	require.NoError(t, err)
	assert.True(t, ok)

	stored, _, _ := repo.GetByID(context.Background(), "mbr-1")
	assert.Equal(t, 350.5, stored.Usage.TotalConsumption)

	_, err = svc.AddConsumption(context.Background(), "club-1", "player-1", -1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBenefitsService_InactiveMembershipNotConsumed(t *testing.T) {
	t.Parallel()

	suspended := newMembership("mbr-1", membership.Benefits{FreeRounds: 5}, membership.Usage{})
	suspended.Status = membership.StatusSuspended
	repo := memory.NewMembershipRepository([]membership.Membership{suspended}, 0)
	svc := NewBenefitsService(repo, logging.NewNop())

	ok, err := svc.ConsumeFreeRound(context.Background(), "club-1", "player-1")
	require.NoError(t, err)
	assert.False(t, ok)

	stored, _, _ := repo.GetByID(context.Background(), "mbr-1")
	assert.Zero(t, stored.Usage.RoundsUsed)
}

func TestBenefitsService_StoreFailures(t *testing.T) {
	t.Parallel()

	t.Run("lookup", func(t *testing.T) {
		repo := membershipmock.NewRepository(t)
		repo.
			On("FindActive", mock.Anything, "club-1", "player-1").
			Return(membership.Membership{}, false, errors.New("connection reset")).
			Once()

		svc := NewBenefitsService(repo, logging.NewNop())
		ok, err := svc.ConsumeFreeRound(context.Background(), "club-1", "player-1")
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrDependencyUnavailable)
	})

	t.Run("update", func(t *testing.T) {
		repo := membershipmock.NewRepository(t)
		repo.
			On("FindActive", mock.Anything, "club-1", "player-1").
			Return(newMembership("mbr-1", membership.Benefits{FreeRounds: 2}, membership.Usage{}), true, nil).
			Once()
		repo.
			On("UpdateUsage", mock.Anything, membership.UsageUpdate{
				MembershipID: "mbr-1",
				Field:        membership.FieldRoundsUsed,
				Delta:        1,
				Guard:        membership.GuardFreeRounds,
			}).
			Return(false, errors.New("deadlock detected")).
			Once()

		svc := NewBenefitsService(repo, logging.NewNop())
		ok, err := svc.ConsumeFreeRound(context.Background(), "club-1", "player-1")
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrDependencyUnavailable)
	})

	t.Run("lost race", func(t *testing.T) {
		repo := membershipmock.NewRepository(t)
		repo.
			On("FindActive", mock.Anything, "club-1", "player-1").
			Return(newMembership("mbr-1", membership.Benefits{FreeRounds: 2}, membership.Usage{RoundsUsed: 1}), true, nil).
			Once()
		repo.
			On("UpdateUsage", mock.Anything, mock.AnythingOfType("membership.UsageUpdate")).
			Return(false, nil).
			Once()

		svc := NewBenefitsService(repo, logging.NewNop())
		ok, err := svc.ConsumeFreeRound(context.Background(), "club-1", "player-1")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("summary lookup", func(t *testing.T) {
		repo := membershipmock.NewRepository(t)
		repo.
			On("FindActive", mock.Anything, "club-1", "player-1").
			Return(membership.Membership{}, false, errors.New("connection reset")).
			Once()

		svc := NewBenefitsService(repo, logging.NewNop())
		summary, err := svc.GetPlayerBenefits(context.Background(), "club-1", "player-1")
		assert.ErrorIs(t, err, ErrDependencyUnavailable)
		assert.False(t, summary.HasMembership)
	})
}
