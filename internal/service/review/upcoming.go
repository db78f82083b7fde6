package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// GetUpcomingCards projects the user's active cards over a calendar
// window (by default two weeks back to one week ahead) and groups the
// projected review dates into per-day buckets.
func (s *Service) GetUpcomingCards(ctx context.Context, input UpcomingInput) (domain.UpcomingCards, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.UpcomingCards{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.UpcomingCards{}, err
	}
	in := input.withDefaults()

	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return domain.UpcomingCards{}, fmt.Errorf("get user: %w", err)
	}

	now := time.Now().UTC()
	today := DayStart(now, s.tz)
	windowStart := today.AddDate(0, 0, in.StartDays)
	windowEnd := today.AddDate(0, 0, in.Days)

	intervals, err := s.intervalsFor(ctx, userID)
	if err != nil {
		return domain.UpcomingCards{}, err
	}

	cards, err := s.cards.ListActive(ctx, userID)
	if err != nil {
		return domain.UpcomingCards{}, fmt.Errorf("list active cards: %w", err)
	}

	reviews, err := s.reviews.ListByUserBetween(ctx, userID, windowStart, windowEnd)
	if err != nil {
		return domain.UpcomingCards{}, fmt.Errorf("list reviews: %w", err)
	}

	reviewedDates := make(map[uuid.UUID]map[string]bool)
	for _, r := range reviews {
		key := dateKey(r.CreatedAt, s.tz)
		if reviewedDates[r.CardID] == nil {
			reviewedDates[r.CardID] = make(map[string]bool)
		}
		reviewedDates[r.CardID][key] = true
	}

	var entries []domain.ProjectionEntry
	for _, c := range cards {
		entries = append(entries, ProjectCard(c, intervals, windowStart, windowEnd, s.tz)...)
	}

	buckets, total := GroupByDate(entries, reviewedDates, s.tz)

	return domain.UpcomingCards{
		Buckets:   buckets,
		Total:     total,
		Intervals: intervals,
	}, nil
}
