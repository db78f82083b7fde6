package domain

import (
	"time"

	"github.com/google/uuid"
)

// WordList groups a user's cards under a name. Public lists are
// readable by other users; cards always stay owned by the list's owner.
type WordList struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Name        string
	Description *string
	IsPublic    bool
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// CardCount is filled on list reads only; it is not a stored column.
	CardCount int
}

// WordListUpdateParams holds optional fields for a partial word list
// update. nil means "leave unchanged".
type WordListUpdateParams struct {
	Name        *string
	Description *string
	IsPublic    *bool
}
