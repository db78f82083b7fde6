// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	postgres "github.com/wordloop/wordloop-backend/internal/adapter/postgres"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new user repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

const userColumns = `id, email, password_hash, display_name, created_at, updated_at`

const createSQL = `
INSERT INTO users (id, email, password_hash, display_name, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $5)
RETURNING ` + userColumns

const getByIDSQL = `
SELECT ` + userColumns + `
FROM users
WHERE id = $1`

const getByEmailSQL = `
SELECT ` + userColumns + `
FROM users
WHERE email = $1`

// Create inserts a new user.
// A duplicate email results in domain.ErrAlreadyExists.
func (r *Repo) Create(ctx context.Context, email, passwordHash, displayName string) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	id := uuid.New()
	now := time.Now().UTC().Truncate(time.Microsecond)

	u, err := scanUser(querier.QueryRow(ctx, createSQL, id, email, passwordHash, displayName, now))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", id)
	}

	return u, nil
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(querier.QueryRow(ctx, getByIDSQL, userID))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", userID)
	}

	return u, nil
}

// GetByEmail returns a user by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	querier := postgres.QuerierFromCtx(ctx, r.db)

	u, err := scanUser(querier.QueryRow(ctx, getByEmailSQL, email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, "user", uuid.Nil)
	}

	return u, nil
}

func scanUser(row pgx.Row) (domain.User, error) {
	var u domain.User
	err := row.Scan(&u.ID, &u.Email, &u.PasswordHash, &u.DisplayName, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return domain.User{}, err
	}

	return u, nil
}
