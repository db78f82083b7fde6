// Package session implements the review and test session repositories
// using PostgreSQL.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/wordloop/wordloop-backend/internal/adapter/postgres"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

// Repo provides session persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new session repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createReviewSessionSQL = `
INSERT INTO review_sessions (id, user_id, card_ids, status, started_at)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, user_id, card_ids, status, started_at, completed_at`

const getReviewSessionSQL = `
SELECT id, user_id, card_ids, status, started_at, completed_at
FROM review_sessions
WHERE id = $1 AND user_id = $2`

const finishReviewSessionSQL = `
UPDATE review_sessions
SET status = $3, completed_at = $4
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'`

const createTestSessionSQL = `
INSERT INTO test_sessions (id, user_id, status, started_at)
VALUES ($1, $2, $3, $4)
RETURNING id, user_id, status, started_at, completed_at`

const getTestSessionSQL = `
SELECT id, user_id, status, started_at, completed_at
FROM test_sessions
WHERE id = $1 AND user_id = $2`

const finishTestSessionSQL = `
UPDATE test_sessions
SET status = $3, completed_at = $4
WHERE id = $1 AND user_id = $2 AND status = 'ACTIVE'`

const createTestResultSQL = `
INSERT INTO test_results (id, session_id, card_id, is_correct, time_spent_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6)`

const listTestResultsSQL = `
SELECT id, session_id, card_id, is_correct, time_spent_ms
FROM test_results
WHERE session_id = $1
ORDER BY created_at ASC`

// ---------------------------------------------------------------------------
// Review sessions
// ---------------------------------------------------------------------------

// CreateReviewSession opens a review session over the given cards.
func (r *Repo) CreateReviewSession(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	s, err := scanReviewSession(querier.QueryRow(ctx, createReviewSessionSQL,
		id, userID, cardIDs, domain.SessionStatusActive.String(), now))
	if err != nil {
		return domain.ReviewSession{}, postgres.MapError(err, "review session", id)
	}

	return s, nil
}

// GetReviewSession returns a review session by ID filtered by user_id.
func (r *Repo) GetReviewSession(ctx context.Context, userID, sessionID uuid.UUID) (domain.ReviewSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanReviewSession(querier.QueryRow(ctx, getReviewSessionSQL, sessionID, userID))
	if err != nil {
		return domain.ReviewSession{}, postgres.MapError(err, "review session", sessionID)
	}

	return s, nil
}

// FinishReviewSession moves an ACTIVE review session to the given terminal
// status. Returns domain.ErrConflict if the session is already finished.
func (r *Repo) FinishReviewSession(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, finishReviewSessionSQL, sessionID, userID, status.String(), now)
	if err != nil {
		return postgres.MapError(err, "review session", sessionID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("review session %s: %w", sessionID, domain.ErrConflict)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Test sessions
// ---------------------------------------------------------------------------

// CreateTestSession opens a test session.
func (r *Repo) CreateTestSession(ctx context.Context, userID uuid.UUID) (domain.TestSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	s, err := scanTestSession(querier.QueryRow(ctx, createTestSessionSQL,
		id, userID, domain.SessionStatusActive.String(), now))
	if err != nil {
		return domain.TestSession{}, postgres.MapError(err, "test session", id)
	}

	return s, nil
}

// GetTestSession returns a test session with its results.
func (r *Repo) GetTestSession(ctx context.Context, userID, sessionID uuid.UUID) (domain.TestSession, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	s, err := scanTestSession(querier.QueryRow(ctx, getTestSessionSQL, sessionID, userID))
	if err != nil {
		return domain.TestSession{}, postgres.MapError(err, "test session", sessionID)
	}

	rows, err := querier.Query(ctx, listTestResultsSQL, sessionID)
	if err != nil {
		return domain.TestSession{}, fmt.Errorf("list test results: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var res domain.TestResult
		if err := rows.Scan(&res.ID, &res.SessionID, &res.CardID, &res.IsCorrect, &res.TimeSpentMs); err != nil {
			return domain.TestSession{}, fmt.Errorf("scan test result: %w", err)
		}
		s.Results = append(s.Results, res)
	}
	if err := rows.Err(); err != nil {
		return domain.TestSession{}, fmt.Errorf("iterate test results: %w", err)
	}

	return s, nil
}

// FinishTestSession moves an ACTIVE test session to the given terminal
// status. Returns domain.ErrConflict if the session is already finished.
func (r *Repo) FinishTestSession(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, finishTestSessionSQL, sessionID, userID, status.String(), now)
	if err != nil {
		return postgres.MapError(err, "test session", sessionID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("test session %s: %w", sessionID, domain.ErrConflict)
	}

	return nil
}

// CreateTestResult records one card outcome within a test session.
func (r *Repo) CreateTestResult(ctx context.Context, sessionID, cardID uuid.UUID, isCorrect bool, timeSpentMs int) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	if _, err := querier.Exec(ctx, createTestResultSQL, id, sessionID, cardID, isCorrect, timeSpentMs, now); err != nil {
		return postgres.MapError(err, "test result", id)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanReviewSession(row pgx.Row) (domain.ReviewSession, error) {
	var (
		s      domain.ReviewSession
		status string
	)
	err := row.Scan(&s.ID, &s.UserID, &s.CardIDs, &status, &s.StartedAt, &s.CompletedAt)
	if err != nil {
		return domain.ReviewSession{}, err
	}
	s.Status = domain.SessionStatus(status)

	return s, nil
}

func scanTestSession(row pgx.Row) (domain.TestSession, error) {
	var (
		s      domain.TestSession
		status string
	)
	err := row.Scan(&s.ID, &s.UserID, &status, &s.StartedAt, &s.CompletedAt)
	if err != nil {
		return domain.TestSession{}, err
	}
	s.Status = domain.SessionStatus(status)

	return s, nil
}
