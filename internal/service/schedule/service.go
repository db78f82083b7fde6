// Package schedule manages the per-user interval schedule that drives
// review spacing. Each user has at most one schedule; it is created
// lazily the first time something needs it.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

const defaultScheduleName = "Default"

type scheduleRepo interface {
	GetDefaultByUser(ctx context.Context, userID uuid.UUID) (domain.IntervalSchedule, error)
	Create(ctx context.Context, userID uuid.UUID, intervals []int, name string, description *string) (domain.IntervalSchedule, error)
	Update(ctx context.Context, scheduleID uuid.UUID, params domain.ScheduleUpsertParams) (domain.IntervalSchedule, error)
}

// Service exposes interval schedule operations.
type Service struct {
	schedules scheduleRepo
	log       *slog.Logger
}

// NewService creates a new schedule service.
func NewService(log *slog.Logger, schedules scheduleRepo) *Service {
	return &Service{
		schedules: schedules,
		log:       log.With("service", "schedule"),
	}
}

// GetOrCreate returns the current user's schedule, creating one with the
// standard intervals if the user has none yet. Safe to call concurrently;
// a lost creation race falls back to reading the winner's row.
func (s *Service) GetOrCreate(ctx context.Context) (domain.IntervalSchedule, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.IntervalSchedule{}, domain.ErrUnauthorized
	}

	existing, err := s.schedules.GetDefaultByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return domain.IntervalSchedule{}, fmt.Errorf("get schedule: %w", err)
	}

	created, err := s.schedules.Create(ctx, userID, domain.DefaultIntervals, defaultScheduleName, nil)
	if err != nil {
		if errors.Is(err, domain.ErrAlreadyExists) {
			// another request created it between our read and write
			return s.schedules.GetDefaultByUser(ctx, userID)
		}
		return domain.IntervalSchedule{}, fmt.Errorf("create schedule: %w", err)
	}

	s.log.InfoContext(ctx, "default schedule created",
		"user_id", userID,
		"schedule_id", created.ID,
	)

	return created, nil
}

// UpsertInput carries a partial schedule update. Nil name and
// description are left unchanged; intervals always replace the stored
// sequence.
type UpsertInput struct {
	Intervals   []int
	Name        *string
	Description *string
}

// Validate checks the input.
func (i UpsertInput) Validate() error {
	var fieldErrors []domain.FieldError

	if i.Intervals == nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "intervals",
			Message: "is required",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// Upsert replaces the user's interval sequence and optionally renames or
// re-describes the schedule, creating the schedule first if needed. The
// sequence itself is stored as given.
func (s *Service) Upsert(ctx context.Context, input UpsertInput) (domain.IntervalSchedule, error) {
	if err := input.Validate(); err != nil {
		return domain.IntervalSchedule{}, err
	}

	current, err := s.GetOrCreate(ctx)
	if err != nil {
		return domain.IntervalSchedule{}, err
	}

	updated, err := s.schedules.Update(ctx, current.ID, domain.ScheduleUpsertParams{
		Intervals:   input.Intervals,
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return domain.IntervalSchedule{}, fmt.Errorf("update schedule: %w", err)
	}

	s.log.InfoContext(ctx, "schedule updated",
		"schedule_id", updated.ID,
		"intervals", updated.Intervals,
	)

	return updated, nil
}
