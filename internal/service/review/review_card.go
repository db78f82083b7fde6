package review

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// ReviewCard records a review outcome and advances the card through its
// interval schedule. The step, status, next review timestamp, counters,
// and the immutable review record are written in one transaction.
func (s *Service) ReviewCard(ctx context.Context, input ReviewCardInput) (domain.CardWithListName, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CardWithListName{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.CardWithListName{}, err
	}

	now := time.Now().UTC()

	card, err := s.cards.GetByID(ctx, userID, input.CardID)
	if err != nil {
		return domain.CardWithListName{}, fmt.Errorf("get card: %w", err)
	}

	intervals, err := s.intervalsFor(ctx, userID)
	if err != nil {
		return domain.CardWithListName{}, err
	}

	result := NextStep(intervals, card.ReviewStep, input.IsSuccess)

	// Status never reverts here; only a success landing on the last
	// step moves it forward to COMPLETED.
	status := card.ReviewStatus
	if result.Completed {
		status = domain.ReviewStatusCompleted
	}

	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.cards.UpdateSchedule(txCtx, userID, card.ID, domain.ScheduleUpdateParams{
			ReviewStep:   result.Step,
			ReviewStatus: status,
			NextReview:   now.AddDate(0, 0, result.IntervalDays),
			LastReviewed: now,
			IsSuccess:    input.IsSuccess,
		}); err != nil {
			return fmt.Errorf("update card schedule: %w", err)
		}

		if _, err := s.reviews.Create(txCtx, card.ID, input.IsSuccess, now); err != nil {
			return fmt.Errorf("create review: %w", err)
		}

		return nil
	})
	if err != nil {
		return domain.CardWithListName{}, err
	}

	updated, err := s.cards.GetWithListName(ctx, userID, card.ID)
	if err != nil {
		return domain.CardWithListName{}, fmt.Errorf("reload card: %w", err)
	}

	s.log.InfoContext(ctx, "card reviewed",
		slog.String("user_id", userID.String()),
		slog.String("card_id", card.ID.String()),
		slog.Bool("success", input.IsSuccess),
		slog.Int("old_step", card.ReviewStep),
		slog.Int("new_step", result.Step),
		slog.String("status", string(updated.ReviewStatus)),
	)

	return updated, nil
}
