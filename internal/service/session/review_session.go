package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// StartReviewSessionInput opens a review sitting. With no explicit
// CardIDs the sitting covers everything due today.
type StartReviewSessionInput struct {
	CardIDs []uuid.UUID
}

// StartReviewSession opens a review sitting over the given cards, or
// over today's due cards when none are given. Unowned IDs are dropped.
func (s *Service) StartReviewSession(ctx context.Context, input StartReviewSessionInput) (domain.ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReviewSession{}, domain.ErrUnauthorized
	}

	cardIDs := input.CardIDs
	if len(cardIDs) > 0 {
		owned, err := s.cards.ListByIDs(ctx, userID, cardIDs)
		if err != nil {
			return domain.ReviewSession{}, fmt.Errorf("resolve session cards: %w", err)
		}
		cardIDs = make([]uuid.UUID, 0, len(owned))
		for _, c := range owned {
			cardIDs = append(cardIDs, c.ID)
		}
	} else {
		today, err := s.reviews.GetTodayCards(ctx)
		if err != nil {
			return domain.ReviewSession{}, fmt.Errorf("load due cards: %w", err)
		}
		cardIDs = make([]uuid.UUID, 0, len(today.Cards))
		for _, c := range today.Cards {
			cardIDs = append(cardIDs, c.ID)
		}
	}

	if len(cardIDs) == 0 {
		return domain.ReviewSession{}, domain.NewValidationErrors([]domain.FieldError{{
			Field:   "cardIds",
			Message: "no cards to review",
		}})
	}

	created, err := s.sessions.CreateReviewSession(ctx, userID, cardIDs)
	if err != nil {
		return domain.ReviewSession{}, fmt.Errorf("create review session: %w", err)
	}

	s.log.InfoContext(ctx, "review session started",
		"user_id", userID,
		"session_id", created.ID,
		"cards", len(created.CardIDs),
	)

	return created, nil
}

// GetReviewSession returns one of the user's review sittings.
func (s *Service) GetReviewSession(ctx context.Context, sessionID uuid.UUID) (domain.ReviewSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReviewSession{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetReviewSession(ctx, userID, sessionID)
	if err != nil {
		return domain.ReviewSession{}, fmt.Errorf("get review session: %w", err)
	}

	return session, nil
}

// FinishReviewSession closes an active sitting as completed or
// abandoned. Finishing twice returns domain.ErrConflict.
func (s *Service) FinishReviewSession(ctx context.Context, sessionID uuid.UUID, abandoned bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	status := domain.SessionStatusCompleted
	if abandoned {
		status = domain.SessionStatusAbandoned
	}

	if err := s.sessions.FinishReviewSession(ctx, userID, sessionID, status); err != nil {
		return fmt.Errorf("finish review session: %w", err)
	}

	s.log.InfoContext(ctx, "review session finished",
		"user_id", userID,
		"session_id", sessionID,
		"status", status,
	)

	return nil
}
