package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// TodayCards is the due set for the current calendar day.
type TodayCards struct {
	Cards []domain.Card
	Total int
}

// GetTodayCards returns the user's ACTIVE cards due by the end of the
// current calendar day, excluding cards already reviewed today. Overdue
// cards stay in the set until they are reviewed.
func (s *Service) GetTodayCards(ctx context.Context) (TodayCards, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return TodayCards{}, domain.ErrUnauthorized
	}

	now := time.Now().UTC()
	dayStart := DayStart(now, s.tz)
	nextDay := NextDayStart(now, s.tz)
	endOfDay := nextDay.Add(-time.Millisecond)

	due, err := s.cards.ListDue(ctx, userID, endOfDay)
	if err != nil {
		return TodayCards{}, fmt.Errorf("list due cards: %w", err)
	}

	reviewedIDs, err := s.reviews.ListCardIDsBetween(ctx, userID, dayStart, nextDay)
	if err != nil {
		return TodayCards{}, fmt.Errorf("list reviewed cards: %w", err)
	}

	reviewed := make(map[uuid.UUID]bool, len(reviewedIDs))
	for _, id := range reviewedIDs {
		reviewed[id] = true
	}

	cards := make([]domain.Card, 0, len(due))
	for _, c := range due {
		if reviewed[c.ID] {
			continue
		}
		cards = append(cards, c)
	}

	return TodayCards{Cards: cards, Total: len(cards)}, nil
}
