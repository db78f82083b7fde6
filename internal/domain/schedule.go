package domain

import (
	"time"

	"github.com/google/uuid"
)

// DefaultIntervals is the interval table created for a user the first
// time one of their cards is created.
//
// FallbackIntervals is used by the review state machine when a user has
// no schedule row at review time. The two sets intentionally differ
// (the fallback is missing the 2-day step); the mismatch is inherited
// product behavior and must not be silently unified.
var (
	DefaultIntervals  = []int{1, 2, 7, 30, 365}
	FallbackIntervals = []int{1, 7, 30, 365}
)

// IntervalSchedule is a user's ordered sequence of day offsets that
// governs how spacing grows with successive successful reviews.
// Exactly one schedule exists per user; it is created lazily.
type IntervalSchedule struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Intervals   []int
	IsDefault   bool
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ScheduleUpsertParams holds optional fields for a partial schedule
// update. nil means "leave unchanged".
type ScheduleUpsertParams struct {
	Intervals   []int
	Name        *string
	Description *string
}
