package domain

import (
	"time"

	"github.com/google/uuid"
)

// Card is a single flashcard owned by one user, optionally grouped
// into a word list. ReviewStep is a zero-based index into the owning
// user's interval schedule.
type Card struct {
	ID           uuid.UUID
	UserID       uuid.UUID
	WordListID   *uuid.UUID
	Word         string
	Definition   string
	Details      WordDetails
	ReviewStep   int
	ReviewStatus ReviewStatus
	NextReview   time.Time
	LastReviewed *time.Time
	ViewCount    int
	SuccessCount int
	FailureCount int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// WordDetails holds optional free-form enrichment for a card.
// Stored as JSONB, so the field tags are part of the storage format.
type WordDetails struct {
	Synonyms []string `json:"synonyms,omitempty"`
	Antonyms []string `json:"antonyms,omitempty"`
	Examples []string `json:"examples,omitempty"`
	Notes    []string `json:"notes,omitempty"`
}

// IsEmpty reports whether no detail list has entries.
func (d WordDetails) IsEmpty() bool {
	return len(d.Synonyms) == 0 && len(d.Antonyms) == 0 &&
		len(d.Examples) == 0 && len(d.Notes) == 0
}

// IsDue reports whether the card needs review at the given time.
// Only ACTIVE cards can be due; overdue cards (NextReview in the past)
// count as due.
func (c *Card) IsDue(now time.Time) bool {
	if c.ReviewStatus != ReviewStatusActive {
		return false
	}
	return !c.NextReview.After(now)
}

// BaseDate is the anchor for projecting future review dates:
// the last review if one happened, the creation time otherwise.
func (c *Card) BaseDate() time.Time {
	if c.LastReviewed != nil {
		return *c.LastReviewed
	}
	return c.CreatedAt
}

// CardWithListName joins a card with its word list's name for read views.
type CardWithListName struct {
	Card
	WordListName *string
}

// CardUpdateParams holds optional fields for a partial card update.
// nil means "leave unchanged".
type CardUpdateParams struct {
	Word       *string
	Definition *string
	Details    *WordDetails
	WordListID *uuid.UUID
}

// ScheduleUpdateParams holds the scheduling fields written after a review.
type ScheduleUpdateParams struct {
	ReviewStep   int
	ReviewStatus ReviewStatus
	NextReview   time.Time
	LastReviewed time.Time
	IsSuccess    bool
}
