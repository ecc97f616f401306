package usecase

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/riskibarqy/golf-pricing/internal/domain/membership"
	"github.com/riskibarqy/golf-pricing/internal/platform/logging"
	"go.opentelemetry.io/otel/attribute"
)

// BenefitsService reads membership entitlements and records their use.
// Allowance bounds are enforced by the repository in the same atomic step as
// the increment, never against a previously read balance.
type BenefitsService struct {
	membershipRepo membership.Repository
	logger         *logging.Logger
}

func NewBenefitsService(membershipRepo membership.Repository, logger *logging.Logger) *BenefitsService {
	if logger == nil {
		logger = logging.Default()
	}
	return &BenefitsService{
		membershipRepo: membershipRepo,
		logger:         logger.Named("benefits"),
	}
}

// GetPlayerBenefits summarizes the player's active membership. A player with
// none gets an empty summary, not an error. Apart from a blank club or player
// id (ErrInvalidInput), an error only ever means the membership store is
// unavailable (ErrDependencyUnavailable).
func (s *BenefitsService) GetPlayerBenefits(ctx context.Context, clubID, playerID string) (membership.Summary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BenefitsService.GetPlayerBenefits", attribute.String("club_id", clubID))
	defer span.End()

	m, found, err := s.findActive(ctx, clubID, playerID)
	if err != nil {
		return membership.Summary{}, err
	}
	if !found {
		return membership.NoMembership(), nil
	}
	return membership.Summarize(m), nil
}

// ConsumeFreeRound spends one free round. It reports false when the player
// has no usable membership or the allowance is used up. Exhaustion is never
// an error: apart from invalid input, an error only ever means the store is
// unavailable.
func (s *BenefitsService) ConsumeFreeRound(ctx context.Context, clubID, playerID string) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BenefitsService.ConsumeFreeRound", attribute.String("club_id", clubID))
	defer span.End()

	return s.consume(ctx, clubID, playerID, membership.FieldRoundsUsed, 1, membership.GuardFreeRounds)
}

// ConsumeGuestQuota spends count guest passes, all or nothing. A quota that
// cannot cover count is reported as false; errors are limited to invalid
// input and ErrDependencyUnavailable.
func (s *BenefitsService) ConsumeGuestQuota(ctx context.Context, clubID, playerID string, count int) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BenefitsService.ConsumeGuestQuota", attribute.String("club_id", clubID))
	defer span.End()

	if count <= 0 {
		return false, fmt.Errorf("%w: guest count must be positive", ErrInvalidInput)
	}
	return s.consume(ctx, clubID, playerID, membership.FieldGuestBrought, float64(count), membership.GuardGuestQuota)
}

// AddConsumption adds amount to the lifetime spend. It is unguarded, so apart
// from invalid input an error only ever means the store is unavailable.
func (s *BenefitsService) AddConsumption(ctx context.Context, clubID, playerID string, amount float64) (bool, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.BenefitsService.AddConsumption", attribute.String("club_id", clubID))
	defer span.End()

	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false, fmt.Errorf("%w: consumption amount must be positive", ErrInvalidInput)
	}
	return s.consume(ctx, clubID, playerID, membership.FieldTotalConsumption, amount, membership.GuardNone)
}

// consume reports a refused guard as false with a nil error. Errors are
// reserved for invalid ids and store failures.
func (s *BenefitsService) consume(
	ctx context.Context,
	clubID, playerID string,
	field membership.UsageField,
	delta float64,
	guard membership.Guard,
) (bool, error) {
	m, found, err := s.findActive(ctx, clubID, playerID)
	if err != nil {
		return false, err
	}
	if !found {
		return false, nil
	}
	// Early exit only; the repository re-checks against stored state.
	if !guard.Permits(m, delta) {
		return false, nil
	}

	update := membership.UsageUpdate{
		MembershipID: m.ID,
		Field:        field,
		Delta:        delta,
		Guard:        guard,
	}
	if err := update.Validate(); err != nil {
		return false, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	applied, err := s.membershipRepo.UpdateUsage(ctx, update)
	if err != nil {
		s.logger.WarnContext(ctx, "membership usage update failed",
			"membership_id", m.ID,
			"field", field,
			"error", err,
		)
		return false, fmt.Errorf("%w: update membership usage: %v", ErrDependencyUnavailable, err)
	}
	if !applied {
		s.logger.InfoContext(ctx, "membership allowance exhausted",
			"membership_id", m.ID,
			"field", field,
			"delta", delta,
		)
		return false, nil
	}

	s.logger.InfoContext(ctx, "membership usage recorded",
		"membership_id", m.ID,
		"field", field,
		"delta", delta,
	)
	return true, nil
}

func (s *BenefitsService) findActive(ctx context.Context, clubID, playerID string) (membership.Membership, bool, error) {
	clubID = strings.TrimSpace(clubID)
	playerID = strings.TrimSpace(playerID)
	if clubID == "" || playerID == "" {
		return membership.Membership{}, false, fmt.Errorf("%w: club id and player id are required", ErrInvalidInput)
	}

	m, found, err := s.membershipRepo.FindActive(ctx, clubID, playerID)
	if err != nil {
		s.logger.WarnContext(ctx, "membership lookup failed",
			"club_id", clubID,
			"player_id", playerID,
			"error", err,
		)
		return membership.Membership{}, false, fmt.Errorf("%w: find membership: %v", ErrDependencyUnavailable, err)
	}
	return m, found, nil
}
