package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// UpdateCardProgress bumps a card's outcome counters and last-reviewed
// stamp without touching the schedule. Test-mode submissions use this so
// practicing does not move the spaced-repetition clock.
func (s *Service) UpdateCardProgress(ctx context.Context, input UpdateProgressInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	now := time.Now().UTC()

	if err := s.cards.UpdateProgress(ctx, userID, input.CardID, input.IsSuccess, now); err != nil {
		return fmt.Errorf("update card progress: %w", err)
	}

	s.log.DebugContext(ctx, "card progress updated",
		slog.String("user_id", userID.String()),
		slog.String("card_id", input.CardID.String()),
		slog.Bool("success", input.IsSuccess),
	)

	return nil
}

// AddToReview re-activates the given cards: status back to ACTIVE, next
// review now, last-reviewed and counters cleared. IDs the user does not
// own are skipped silently; the returned count covers only actual resets.
func (s *Service) AddToReview(ctx context.Context, input AddToReviewInput) (int, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return 0, err
	}

	now := time.Now().UTC()

	affected, err := s.cards.AddToReview(ctx, userID, input.CardIDs, now)
	if err != nil {
		return 0, fmt.Errorf("add cards to review: %w", err)
	}

	s.log.InfoContext(ctx, "cards added to review",
		slog.String("user_id", userID.String()),
		slog.Int("requested", len(input.CardIDs)),
		slog.Int("affected", affected),
	)

	return affected, nil
}
