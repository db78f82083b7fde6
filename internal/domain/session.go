package domain

import (
	"time"

	"github.com/google/uuid"
)

// ReviewSession is a lightweight envelope grouping a batch of card IDs
// under a user for one sitting of spaced-repetition review.
type ReviewSession struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	CardIDs     []uuid.UUID
	Status      SessionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
}

// TestSession records a self-test run: per-card pass/fail results that
// update counters but do not touch the spaced-repetition clock.
type TestSession struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Status      SessionStatus
	StartedAt   time.Time
	CompletedAt *time.Time
	Results     []TestResult
}

// TestResult is one card's outcome within a test session.
type TestResult struct {
	ID          uuid.UUID
	SessionID   uuid.UUID
	CardID      uuid.UUID
	IsCorrect   bool
	TimeSpentMs int
}
