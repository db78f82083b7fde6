// Package schedule implements the IntervalSchedule repository using PostgreSQL.
package schedule

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/wordloop/wordloop-backend/internal/adapter/postgres"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

// Repo provides interval schedule persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new schedule repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const scheduleColumns = `id, user_id, intervals, is_default, name, description, created_at, updated_at`

const getDefaultSQL = `
SELECT ` + scheduleColumns + `
FROM interval_schedules
WHERE user_id = $1 AND is_default`

const createSQL = `
INSERT INTO interval_schedules (id, user_id, intervals, is_default, name, description, created_at, updated_at)
VALUES ($1, $2, $3, true, $4, $5, $6, $6)
RETURNING ` + scheduleColumns

const updateSQL = `
UPDATE interval_schedules
SET intervals   = $2,
    name        = COALESCE($3, name),
    description = COALESCE($4, description),
    updated_at  = $5
WHERE id = $1
RETURNING ` + scheduleColumns

// GetDefaultByUser returns the user's default schedule.
// Returns domain.ErrNotFound when the user has none yet.
func (r *Repo) GetDefaultByUser(ctx context.Context, userID uuid.UUID) (domain.IntervalSchedule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanSchedule(querier.QueryRow(ctx, getDefaultSQL, userID))
	if err != nil {
		return domain.IntervalSchedule{}, postgres.MapError(err, "schedule", userID)
	}

	return s, nil
}

// Create inserts a default schedule for the user.
// A second default for the same user results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, intervals []int, name string, description *string) (domain.IntervalSchedule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	s, err := scanSchedule(querier.QueryRow(ctx, createSQL, id, userID, intervals, name, description, now))
	if err != nil {
		return domain.IntervalSchedule{}, postgres.MapError(err, "schedule", id)
	}

	return s, nil
}

// Update replaces the schedule's intervals and optionally its name and
// description. nil name or description leaves the stored value unchanged.
func (r *Repo) Update(ctx context.Context, scheduleID uuid.UUID, params domain.ScheduleUpsertParams) (domain.IntervalSchedule, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	s, err := scanSchedule(querier.QueryRow(ctx, updateSQL,
		scheduleID, params.Intervals, params.Name, params.Description, now))
	if err != nil {
		return domain.IntervalSchedule{}, postgres.MapError(err, "schedule", scheduleID)
	}

	return s, nil
}

func scanSchedule(row pgx.Row) (domain.IntervalSchedule, error) {
	var s domain.IntervalSchedule
	err := row.Scan(&s.ID, &s.UserID, &s.Intervals, &s.IsDefault,
		&s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return domain.IntervalSchedule{}, err
	}

	return s, nil
}
