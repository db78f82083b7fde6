package domain

import (
	"time"

	"github.com/google/uuid"
)

// Review is an immutable record of a single review outcome.
// It is appended once per review submission and never mutated or
// deleted; "already reviewed today" checks and statistics read it.
type Review struct {
	ID        uuid.UUID
	CardID    uuid.UUID
	IsSuccess bool
	CreatedAt time.Time
}
