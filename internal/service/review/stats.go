package review

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// GetStats aggregates card and review statistics for the user.
func (s *Service) GetStats(ctx context.Context) (domain.Stats, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.Stats{}, domain.ErrUnauthorized
	}

	total, active, completed, err := s.cards.CountByStatus(ctx, userID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count cards: %w", err)
	}

	success, failure, err := s.cards.SumCounters(ctx, userID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("sum counters: %w", err)
	}

	challenging, err := s.cards.CountChallenging(ctx, userID)
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count challenging cards: %w", err)
	}

	now := time.Now().UTC()
	reviewsToday, err := s.reviews.CountBetween(ctx, userID, DayStart(now, s.tz), NextDayStart(now, s.tz))
	if err != nil {
		return domain.Stats{}, fmt.Errorf("count reviews today: %w", err)
	}

	return domain.Stats{
		TotalCards:       total,
		ActiveCards:      active,
		CompletedCards:   completed,
		TotalReviews:     success + failure,
		SuccessRate:      successRate(success, success+failure),
		ChallengingCards: challenging,
		ReviewsToday:     reviewsToday,
	}, nil
}

// GetReviewHistory returns the user's cards reviewed inside the window,
// newest first, with summary statistics and a per-date grouping. Cards
// without a last-reviewed stamp are excluded from the grouping only.
func (s *Service) GetReviewHistory(ctx context.Context, input HistoryInput) (domain.ReviewHistory, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ReviewHistory{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.ReviewHistory{}, err
	}

	var from, to time.Time
	if input.StartDate != nil && input.EndDate != nil {
		from, to = *input.StartDate, *input.EndDate
	} else {
		days := input.Days
		if days == 0 {
			days = 30
		}
		to = time.Now().UTC()
		from = to.AddDate(0, 0, -days)
	}

	cards, err := s.cards.ListWithListName(ctx, userID, &from, &to)
	if err != nil {
		return domain.ReviewHistory{}, fmt.Errorf("list reviewed cards: %w", err)
	}

	var summary domain.HistorySummary
	byDate := make(map[string][]domain.CardWithListName)

	for _, c := range cards {
		summary.TotalSuccess += c.SuccessCount
		summary.TotalFailures += c.FailureCount
		if c.LastReviewed != nil {
			key := dateKey(*c.LastReviewed, s.tz)
			byDate[key] = append(byDate[key], c)
		}
	}
	summary.TotalReviews = summary.TotalSuccess + summary.TotalFailures
	summary.AverageSuccessRate = successRate(summary.TotalSuccess, summary.TotalReviews)

	return domain.ReviewHistory{
		Cards:   cards,
		Summary: summary,
		ByDate:  byDate,
	}, nil
}

// successRate returns round(100 * success / total), or 0 when there are
// no reviews at all.
func successRate(success, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(success) / float64(total)))
}
