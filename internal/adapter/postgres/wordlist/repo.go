// Package wordlist implements the WordList repository using PostgreSQL.
package wordlist

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

// Repo provides word list persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new word list repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const listColumns = `id, user_id, name, description, is_public, created_at, updated_at`

const createSQL = `
INSERT INTO word_lists (id, user_id, name, description, is_public, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $6)
RETURNING ` + listColumns

const getByIDSQL = `
SELECT ` + listColumns + `
FROM word_lists
WHERE id = $1 AND user_id = $2`

const listByUserSQL = `
SELECT wl.id, wl.user_id, wl.name, wl.description, wl.is_public, wl.created_at, wl.updated_at,
       count(c.id)
FROM word_lists wl
LEFT JOIN cards c ON c.word_list_id = wl.id
WHERE wl.user_id = $1
GROUP BY wl.id
ORDER BY wl.created_at ASC`

const deleteSQL = `
DELETE FROM word_lists
WHERE id = $1 AND user_id = $2`

// Create inserts a new word list.
// A duplicate name for the same user results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, userID uuid.UUID, name string, description *string, isPublic bool) (domain.WordList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	wl, err := scanWordList(querier.QueryRow(ctx, createSQL, id, userID, name, description, isPublic, now))
	if err != nil {
		return domain.WordList{}, postgres.MapError(err, "word list", id)
	}

	return wl, nil
}

// GetByID returns a word list by primary key filtered by user_id.
func (r *Repo) GetByID(ctx context.Context, userID, listID uuid.UUID) (domain.WordList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	wl, err := scanWordList(querier.QueryRow(ctx, getByIDSQL, listID, userID))
	if err != nil {
		return domain.WordList{}, postgres.MapError(err, "word list", listID)
	}

	return wl, nil
}

// ListByUser returns the user's word lists with their card counts,
// oldest first.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	rows, err := querier.Query(ctx, listByUserSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}
	defer rows.Close()

	var lists []domain.WordList
	for rows.Next() {
		var wl domain.WordList
		if err := rows.Scan(&wl.ID, &wl.UserID, &wl.Name, &wl.Description, &wl.IsPublic,
			&wl.CreatedAt, &wl.UpdatedAt, &wl.CardCount); err != nil {
			return nil, fmt.Errorf("scan word list: %w", err)
		}
		lists = append(lists, wl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate word lists: %w", err)
	}

	if lists == nil {
		lists = []domain.WordList{}
	}

	return lists, nil
}

// Update applies partial changes to a word list.
// Returns domain.ErrNotFound if the list does not exist or belongs to another user.
func (r *Repo) Update(ctx context.Context, userID, listID uuid.UUID, params domain.WordListUpdateParams) (domain.WordList, error) {
	builder := psql.
		Update("word_lists").
		Set("updated_at", time.Now().UTC().Truncate(time.Microsecond)).
		Where(sq.Eq{"id": listID, "user_id": userID}).
		Suffix("RETURNING " + listColumns)

	if params.Name != nil {
		builder = builder.Set("name", *params.Name)
	}
	if params.Description != nil {
		builder = builder.Set("description", *params.Description)
	}
	if params.IsPublic != nil {
		builder = builder.Set("is_public", *params.IsPublic)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return domain.WordList{}, fmt.Errorf("build update word list query: %w", err)
	}

	querier := postgres.QuerierFromCtx(ctx, r.db)

	wl, err := scanWordList(querier.QueryRow(ctx, query, args...))
	if err != nil {
		return domain.WordList{}, postgres.MapError(err, "word list", listID)
	}

	return wl, nil
}

// Delete removes a word list. Its cards survive with word_list_id set
// to NULL by the schema's ON DELETE SET NULL.
func (r *Repo) Delete(ctx context.Context, userID, listID uuid.UUID) error {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	tag, err := querier.Exec(ctx, deleteSQL, listID, userID)
	if err != nil {
		return postgres.MapError(err, "word list", listID)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("word list %s: %w", listID, domain.ErrNotFound)
	}

	return nil
}

func scanWordList(row pgx.Row) (domain.WordList, error) {
	var wl domain.WordList
	err := row.Scan(&wl.ID, &wl.UserID, &wl.Name, &wl.Description, &wl.IsPublic, &wl.CreatedAt, &wl.UpdatedAt)
	if err != nil {
		return domain.WordList{}, err
	}

	return wl, nil
}
