// Package review implements the Review repository using PostgreSQL.
// Reviews are append-only; there are no update or delete operations.
package review

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	postgres "github.com/wordloop/wordloop-backend/internal/adapter/postgres"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

// Repo provides review persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new review repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO reviews (id, card_id, is_success, created_at)
VALUES ($1, $2, $3, $4)
RETURNING id, card_id, is_success, created_at`

const countBetweenSQL = `
SELECT count(*)
FROM reviews r
JOIN cards c ON r.card_id = c.id
WHERE c.user_id = $1 AND r.created_at >= $2 AND r.created_at < $3`

const listCardIDsBetweenSQL = `
SELECT DISTINCT r.card_id
FROM reviews r
JOIN cards c ON r.card_id = c.id
WHERE c.user_id = $1 AND r.created_at >= $2 AND r.created_at < $3`

const listByUserBetweenSQL = `
SELECT r.id, r.card_id, r.is_success, r.created_at
FROM reviews r
JOIN cards c ON r.card_id = c.id
WHERE c.user_id = $1 AND r.created_at >= $2 AND r.created_at < $3
ORDER BY r.created_at ASC`

// Create appends a review record for a card.
func (r *Repo) Create(ctx context.Context, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) (domain.Review, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()

	var rev domain.Review
	err := querier.QueryRow(ctx, createSQL, id, cardID, isSuccess, reviewedAt).
		Scan(&rev.ID, &rev.CardID, &rev.IsSuccess, &rev.CreatedAt)
	if err != nil {
		return domain.Review{}, postgres.MapError(err, "review", id)
	}

	return rev, nil
}

// CountBetween returns the number of the user's reviews in [from, to).
func (r *Repo) CountBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countBetweenSQL, userID, from, to).Scan(&count); err != nil {
		return 0, fmt.Errorf("count reviews between: %w", err)
	}

	return count, nil
}

// ListCardIDsBetween returns the distinct cards the user reviewed in [from, to).
func (r *Repo) ListCardIDsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listCardIDsBetweenSQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list reviewed card ids: %w", err)
	}
	defer rows.Close()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan reviewed card id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviewed card ids: %w", err)
	}

	if ids == nil {
		ids = []uuid.UUID{}
	}

	return ids, nil
}

// ListByUserBetween returns the user's reviews in [from, to), oldest first.
func (r *Repo) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Review, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByUserBetweenSQL, userID, from, to)
	if err != nil {
		return nil, fmt.Errorf("list reviews by user: %w", err)
	}
	defer rows.Close()

	var reviews []domain.Review
	for rows.Next() {
		var rev domain.Review
		if err := rows.Scan(&rev.ID, &rev.CardID, &rev.IsSuccess, &rev.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate reviews: %w", err)
	}

	if reviews == nil {
		reviews = []domain.Review{}
	}

	return reviews, nil
}
