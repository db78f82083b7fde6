package card

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	cardrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/card"
	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// CreateCard creates a new card scheduled for its first review after the
// first interval of the user's schedule. The schedule is created on the
// fly for users who have none yet.
func (s *Service) CreateCard(ctx context.Context, input CreateCardInput) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	schedule, err := s.schedules.GetOrCreate(ctx)
	if err != nil {
		return domain.Card{}, fmt.Errorf("get schedule: %w", err)
	}

	firstInterval := 1
	if len(schedule.Intervals) > 0 {
		firstInterval = schedule.Intervals[0]
	}

	now := time.Now().UTC()

	created, err := s.cards.Create(ctx, domain.Card{
		UserID:       userID,
		WordListID:   input.WordListID,
		Word:         strings.TrimSpace(input.Word),
		Definition:   strings.TrimSpace(input.Definition),
		Details:      input.Details,
		ReviewStep:   0,
		ReviewStatus: domain.ReviewStatusActive,
		NextReview:   now.AddDate(0, 0, firstInterval),
	})
	if err != nil {
		return domain.Card{}, fmt.Errorf("create card: %w", err)
	}

	s.log.InfoContext(ctx, "card created",
		"user_id", userID,
		"card_id", created.ID,
		"word", created.Word,
	)

	return created, nil
}

// GetCard returns a card joined with its word list name and records the
// view.
func (s *Service) GetCard(ctx context.Context, cardID uuid.UUID) (domain.CardWithListName, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.CardWithListName{}, domain.ErrUnauthorized
	}

	card, err := s.cards.GetWithListName(ctx, userID, cardID)
	if err != nil {
		return domain.CardWithListName{}, fmt.Errorf("get card: %w", err)
	}

	if err := s.cards.IncrementViewCount(ctx, userID, cardID); err != nil {
		s.log.WarnContext(ctx, "failed to record card view",
			"card_id", cardID,
			"error", err,
		)
	} else {
		card.ViewCount++
	}

	return card, nil
}

// ListCards returns the user's cards matching the filter, newest first.
func (s *Service) ListCards(ctx context.Context, input ListCardsInput) ([]domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return nil, err
	}

	cards, err := s.cards.List(ctx, userID, cardrepo.Filter{
		WordListID: input.WordListID,
		Status:     input.Status,
		Search:     strings.TrimSpace(input.Search),
		Limit:      input.Limit,
		Offset:     input.Offset,
	})
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}

	return cards, nil
}

// UpdateCard applies a partial edit to a card's content fields.
func (s *Service) UpdateCard(ctx context.Context, input UpdateCardInput) (domain.Card, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Card{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.Card{}, err
	}

	updated, err := s.cards.Update(ctx, userID, input.CardID, domain.CardUpdateParams{
		Word:       input.Word,
		Definition: input.Definition,
		Details:    input.Details,
		WordListID: input.WordListID,
	})
	if err != nil {
		return domain.Card{}, fmt.Errorf("update card: %w", err)
	}

	s.log.InfoContext(ctx, "card updated",
		"user_id", userID,
		"card_id", updated.ID,
	)

	return updated, nil
}

// DeleteCard removes a card and its review history (cascaded by the
// database).
func (s *Service) DeleteCard(ctx context.Context, cardID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.cards.Delete(ctx, userID, cardID); err != nil {
		return fmt.Errorf("delete card: %w", err)
	}

	s.log.InfoContext(ctx, "card deleted",
		"user_id", userID,
		"card_id", cardID,
	)

	return nil
}
