// Package card implements the Card repository using PostgreSQL.
// Fixed-shape queries use raw SQL constants; list queries with optional
// filters are built with squirrel.
package card

import (
	"context"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/wordloop/wordloop-backend/internal/adapter/postgres"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

// Filter narrows List results. Zero values mean "no constraint".
type Filter struct {
	WordListID *uuid.UUID
	Status     *domain.ReviewStatus
	Search     string
	Limit      int
	Offset     int
}

// Repo provides card persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new card repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var cardColumnList = []string{
	"id", "user_id", "word_list_id", "word", "definition", "details",
	"review_step", "review_status", "next_review", "last_reviewed",
	"view_count", "success_count", "failure_count", "created_at", "updated_at",
}

const cardColumns = `id, user_id, word_list_id, word, definition, details,
       review_step, review_status, next_review, last_reviewed,
       view_count, success_count, failure_count, created_at, updated_at`

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const createSQL = `
INSERT INTO cards (id, user_id, word_list_id, word, definition, details,
                   review_step, review_status, next_review, last_reviewed,
                   view_count, success_count, failure_count, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
RETURNING ` + cardColumns

const getByIDSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE id = $1 AND user_id = $2`

const listByIDsSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1 AND id = ANY($2::uuid[])`

const listDueSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1 AND review_status = 'ACTIVE' AND next_review <= $2
ORDER BY next_review ASC`

const listActiveSQL = `
SELECT ` + cardColumns + `
FROM cards
WHERE user_id = $1 AND review_status = 'ACTIVE'
ORDER BY created_at ASC`

const updateScheduleSQL = `
UPDATE cards
SET review_step   = $3,
    review_status = $4,
    next_review   = $5,
    last_reviewed = $6,
    view_count    = view_count + 1,
    success_count = success_count + CASE WHEN $7 THEN 1 ELSE 0 END,
    failure_count = failure_count + CASE WHEN $7 THEN 0 ELSE 1 END,
    updated_at    = $8
WHERE id = $1 AND user_id = $2`

const updateProgressSQL = `
UPDATE cards
SET view_count    = view_count + 1,
    success_count = success_count + CASE WHEN $3 THEN 1 ELSE 0 END,
    failure_count = failure_count + CASE WHEN $3 THEN 0 ELSE 1 END,
    last_reviewed = $4,
    updated_at    = $4
WHERE id = $1 AND user_id = $2`

const incrementViewSQL = `
UPDATE cards
SET view_count = view_count + 1
WHERE id = $1 AND user_id = $2`

const addToReviewSQL = `
UPDATE cards
SET review_status = 'ACTIVE',
    next_review   = $3,
    last_reviewed = NULL,
    success_count = 0,
    failure_count = 0,
    updated_at    = $3
WHERE user_id = $1 AND id = ANY($2::uuid[])`

const deleteSQL = `
DELETE FROM cards
WHERE id = $1 AND user_id = $2`

const countByStatusSQL = `
SELECT review_status, count(*)
FROM cards
WHERE user_id = $1
GROUP BY review_status`

const countChallengingSQL = `
SELECT count(*)
FROM cards
WHERE user_id = $1 AND review_status = 'ACTIVE' AND failure_count > success_count`

const sumCountersSQL = `
SELECT COALESCE(sum(success_count), 0), COALESCE(sum(failure_count), 0)
FROM cards
WHERE user_id = $1`

const getWithListNameSQL = `
SELECT c.id, c.user_id, c.word_list_id, c.word, c.definition, c.details,
       c.review_step, c.review_status, c.next_review, c.last_reviewed,
       c.view_count, c.success_count, c.failure_count, c.created_at, c.updated_at,
       wl.name
FROM cards c
LEFT JOIN word_lists wl ON c.word_list_id = wl.id
WHERE c.id = $1 AND c.user_id = $2`

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a card by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, getByIDSQL, cardID, userID)
	c, err := scanCard(row)
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", cardID)
	}

	return c, nil
}

// ListByIDs returns the user's cards among the given IDs.
// Unknown and unowned IDs are silently absent from the result.
func (r *Repo) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Card, error) {
	if len(ids) == 0 {
		return []domain.Card{}, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByIDsSQL, userID, ids)
	if err != nil {
		return nil, fmt.Errorf("list cards by ids: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// ListDue returns ACTIVE cards whose next_review is at or before cutoff,
// ordered by next_review ascending.
func (r *Repo) ListDue(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listDueSQL, userID, cutoff)
	if err != nil {
		return nil, fmt.Errorf("list due cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// ListActive returns all ACTIVE cards of the user.
func (r *Repo) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listActiveSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list active cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// List returns the user's cards matching the filter, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, filter Filter) ([]domain.Card, error) {
	builder := psql.
		Select(cardColumnList...).
		From("cards").
		Where(sq.Eq{"user_id": userID}).
		OrderBy("created_at DESC")

	if filter.WordListID != nil {
		builder = builder.Where(sq.Eq{"word_list_id": *filter.WordListID})
	}
	if filter.Status != nil {
		builder = builder.Where(sq.Eq{"review_status": filter.Status.String()})
	}
	if filter.Search != "" {
		builder = builder.Where(sq.ILike{"word": "%" + filter.Search + "%"})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		builder = builder.Offset(uint64(filter.Offset))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list cards query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards: %w", err)
	}
	defer rows.Close()

	return scanCards(rows)
}

// GetWithListName returns one card joined with its word list's name.
func (r *Repo) GetWithListName(ctx context.Context, userID, cardID uuid.UUID) (domain.CardWithListName, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var (
		c        domain.Card
		status   string
		listName *string
	)
	err := querier.QueryRow(ctx, getWithListNameSQL, cardID, userID).
		Scan(&c.ID, &c.UserID, &c.WordListID, &c.Word, &c.Definition, &c.Details,
			&c.ReviewStep, &status, &c.NextReview, &c.LastReviewed,
			&c.ViewCount, &c.SuccessCount, &c.FailureCount, &c.CreatedAt, &c.UpdatedAt,
			&listName)
	if err != nil {
		return domain.CardWithListName{}, postgres.MapError(err, "card", cardID)
	}
	c.ReviewStatus = domain.ReviewStatus(status)

	return domain.CardWithListName{Card: c, WordListName: listName}, nil
}

// ListWithListName returns the user's cards joined with their word list
// name, most recently reviewed first. Cards never reviewed come last.
// from and to, when set, bound last_reviewed inclusively.
func (r *Repo) ListWithListName(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.CardWithListName, error) {
	builder := psql.
		Select("c.id", "c.user_id", "c.word_list_id", "c.word", "c.definition", "c.details",
			"c.review_step", "c.review_status", "c.next_review", "c.last_reviewed",
			"c.view_count", "c.success_count", "c.failure_count", "c.created_at", "c.updated_at",
			"wl.name").
		From("cards c").
		LeftJoin("word_lists wl ON c.word_list_id = wl.id").
		Where(sq.Eq{"c.user_id": userID}).
		OrderBy("c.last_reviewed DESC NULLS LAST", "c.created_at DESC")

	if from != nil {
		builder = builder.Where(sq.GtOrEq{"c.last_reviewed": *from})
	}
	if to != nil {
		builder = builder.Where(sq.LtOrEq{"c.last_reviewed": *to})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build card history query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list cards with list name: %w", err)
	}
	defer rows.Close()

	var cards []domain.CardWithListName
	for rows.Next() {
		var (
			c        domain.Card
			status   string
			listName *string
		)
		if err := rows.Scan(&c.ID, &c.UserID, &c.WordListID, &c.Word, &c.Definition, &c.Details,
			&c.ReviewStep, &status, &c.NextReview, &c.LastReviewed,
			&c.ViewCount, &c.SuccessCount, &c.FailureCount, &c.CreatedAt, &c.UpdatedAt,
			&listName); err != nil {
			return nil, fmt.Errorf("scan card with list name: %w", err)
		}
		c.ReviewStatus = domain.ReviewStatus(status)
		cards = append(cards, domain.CardWithListName{Card: c, WordListName: listName})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards with list name: %w", err)
	}

	if cards == nil {
		cards = []domain.CardWithListName{}
	}

	return cards, nil
}

// CountByStatus returns the total, active, and completed card counts.
func (r *Repo) CountByStatus(ctx context.Context, userID uuid.UUID) (total, active, completed int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, countByStatusSQL, userID)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("count cards by status: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			status string
			count  int
		)
		if err := rows.Scan(&status, &count); err != nil {
			return 0, 0, 0, fmt.Errorf("scan status count: %w", err)
		}
		total += count
		switch domain.ReviewStatus(status) {
		case domain.ReviewStatusActive:
			active = count
		case domain.ReviewStatusCompleted:
			completed = count
		}
	}
	if err := rows.Err(); err != nil {
		return 0, 0, 0, fmt.Errorf("iterate status counts: %w", err)
	}

	return total, active, completed, nil
}

// CountChallenging returns the number of ACTIVE cards with more failures
// than successes.
func (r *Repo) CountChallenging(ctx context.Context, userID uuid.UUID) (int, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	var count int
	if err := querier.QueryRow(ctx, countChallengingSQL, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count challenging cards: %w", err)
	}

	return count, nil
}

// SumCounters returns the sums of success and failure counters across
// all of the user's cards.
func (r *Repo) SumCounters(ctx context.Context, userID uuid.UUID) (success, failure int, err error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	if err := querier.QueryRow(ctx, sumCountersSQL, userID).Scan(&success, &failure); err != nil {
		return 0, 0, fmt.Errorf("sum review counters: %w", err)
	}

	return success, failure, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new card and returns the persisted domain.Card.
// A duplicate word within the same list results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)
	c.ID = uuid.New()
	c.CreatedAt = now
	c.UpdatedAt = now

	row := querier.QueryRow(ctx, createSQL,
		c.ID, c.UserID, c.WordListID, c.Word, c.Definition, c.Details,
		c.ReviewStep, c.ReviewStatus.String(), c.NextReview, c.LastReviewed,
		c.ViewCount, c.SuccessCount, c.FailureCount, c.CreatedAt, c.UpdatedAt)

	created, err := scanCard(row)
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", c.ID)
	}

	return created, nil
}

// Update applies partial content changes to a card.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, cardID uuid.UUID, params domain.CardUpdateParams) (domain.Card, error) {
	builder := psql.
		Update("cards").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": cardID, "user_id": userID}).
		Suffix("RETURNING " + cardColumns)

	if params.Word != nil {
		builder = builder.Set("word", *params.Word)
	}
	if params.Definition != nil {
		builder = builder.Set("definition", *params.Definition)
	}
	if params.Details != nil {
		builder = builder.Set("details", *params.Details)
	}
	if params.WordListID != nil {
		builder = builder.Set("word_list_id", *params.WordListID)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return domain.Card{}, fmt.Errorf("build update card query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	row := querier.QueryRow(ctx, query, args...)
	c, err := scanCard(row)
	if err != nil {
		return domain.Card{}, postgres.MapError(err, "card", cardID)
	}

	return c, nil
}

// UpdateSchedule applies a review outcome to a card's scheduling fields
// and bumps the matching outcome counter.
func (r *Repo) UpdateSchedule(ctx context.Context, userID, cardID uuid.UUID, params domain.ScheduleUpdateParams) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	now := time.Now().UTC().Truncate(time.Microsecond)

	tag, err := querier.Exec(ctx, updateScheduleSQL,
		cardID, userID,
		params.ReviewStep, params.ReviewStatus.String(), params.NextReview, params.LastReviewed,
		params.IsSuccess, now)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// UpdateProgress bumps the outcome counters and last_reviewed without
// touching the schedule. Used by test-mode sessions.
func (r *Repo) UpdateProgress(ctx context.Context, userID, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, updateProgressSQL, cardID, userID, isSuccess, reviewedAt)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// IncrementViewCount bumps a card's view counter.
func (r *Repo) IncrementViewCount(ctx context.Context, userID, cardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, incrementViewSQL, cardID, userID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// AddToReview resets the given cards back into the review queue.
// Unowned IDs are skipped. Returns the number of cards actually reset.
func (r *Repo) AddToReview(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int, error) {
	if len(cardIDs) == 0 {
		return 0, nil
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, addToReviewSQL, userID, cardIDs, now)
	if err != nil {
		return 0, fmt.Errorf("add cards to review: %w", err)
	}

	return int(tag.RowsAffected()), nil
}

// Delete removes a card by ID.
// Returns domain.ErrNotFound if the card does not exist or belongs to another user.
func (r *Repo) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, cardID, userID)
	if err != nil {
		return postgres.MapError(err, "card", cardID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("card %s: %w", cardID, domain.ErrNotFound)
	}

	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func scanCard(row pgx.Row) (domain.Card, error) {
	var (
		c      domain.Card
		status string
	)
	err := row.Scan(&c.ID, &c.UserID, &c.WordListID, &c.Word, &c.Definition, &c.Details,
		&c.ReviewStep, &status, &c.NextReview, &c.LastReviewed,
		&c.ViewCount, &c.SuccessCount, &c.FailureCount, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return domain.Card{}, err
	}
	c.ReviewStatus = domain.ReviewStatus(status)

	return c, nil
}

func scanCards(rows pgx.Rows) ([]domain.Card, error) {
	var cards []domain.Card
	for rows.Next() {
		c, err := scanCard(rows)
		if err != nil {
			return nil, fmt.Errorf("scan card: %w", err)
		}
		cards = append(cards, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cards: %w", err)
	}

	if cards == nil {
		cards = []domain.Card{}
	}

	return cards, nil
}
