// Package review implements the spaced-repetition scheduling engine:
// recording review outcomes, selecting today's due set, projecting
// upcoming reviews, and aggregating history and statistics.
package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type cardRepo interface {
	GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error)
	GetWithListName(ctx context.Context, userID, cardID uuid.UUID) (domain.CardWithListName, error)
	ListDue(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Card, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)
	ListWithListName(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.CardWithListName, error)
	UpdateSchedule(ctx context.Context, userID, cardID uuid.UUID, params domain.ScheduleUpdateParams) error
	UpdateProgress(ctx context.Context, userID, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) error
	AddToReview(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int, error)
	CountByStatus(ctx context.Context, userID uuid.UUID) (total, active, completed int, err error)
	CountChallenging(ctx context.Context, userID uuid.UUID) (int, error)
	SumCounters(ctx context.Context, userID uuid.UUID) (success, failure int, err error)
}

type reviewRepo interface {
	Create(ctx context.Context, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) (domain.Review, error)
	CountBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
	ListCardIDsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error)
	ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Review, error)
}

type scheduleRepo interface {
	GetDefaultByUser(ctx context.Context, userID uuid.UUID) (domain.IntervalSchedule, error)
}

type userRepo interface {
	GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the review scheduling business logic.
type Service struct {
	cards     cardRepo
	reviews   reviewRepo
	schedules scheduleRepo
	users     userRepo
	tx        txManager
	log       *slog.Logger
	tz        *time.Location
}

// NewService creates a new review service. tz is the timezone used for
// calendar-day boundaries; nil means UTC.
func NewService(
	log *slog.Logger,
	cards cardRepo,
	reviews reviewRepo,
	schedules scheduleRepo,
	users userRepo,
	tx txManager,
	tz *time.Location,
) *Service {
	if tz == nil {
		tz = time.UTC
	}

	return &Service{
		cards:     cards,
		reviews:   reviews,
		schedules: schedules,
		users:     users,
		tx:        tx,
		log:       log.With("service", "review"),
		tz:        tz,
	}
}

// intervalsFor returns the user's schedule intervals, or the fallback
// table when no schedule row exists yet. The fallback deliberately
// differs from the creation-time default, see domain.FallbackIntervals.
func (s *Service) intervalsFor(ctx context.Context, userID uuid.UUID) ([]int, error) {
	sched, err := s.schedules.GetDefaultByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.FallbackIntervals, nil
		}
		return nil, fmt.Errorf("get schedule: %w", err)
	}

	return sched.Intervals, nil
}
