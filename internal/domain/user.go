package domain

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that owns cards, word lists, and one interval
// schedule. PasswordHash is a bcrypt hash; the raw password never
// leaves the account service.
type User struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	DisplayName  string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
