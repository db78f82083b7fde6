package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stats holds aggregated study statistics for a user.
type Stats struct {
	TotalCards       int
	ActiveCards      int
	CompletedCards   int
	TotalReviews     int
	SuccessRate      int // rounded percentage, 0 when no reviews
	ChallengingCards int // ACTIVE cards failing more than they succeed
	ReviewsToday     int
}

// ProjectionEntry is one projected due-date for a card inside a window.
// A card contributes at most one immediate entry (IsFutureReview=false,
// from its current step) and any number of speculative entries for
// steps it has not reached yet.
type ProjectionEntry struct {
	Date           time.Time // truncated to the calendar day
	CardID         uuid.UUID
	IsFutureReview bool
	IsFromFailure  bool
}

// DateBucketEntry is one card's appearance inside a date bucket,
// carrying whether a real review already happened on that date.
type DateBucketEntry struct {
	CardID          uuid.UUID
	IsFutureReview  bool
	IsFromFailure   bool
	HasBeenReviewed bool
}

// DateBucket aggregates the projected cards for one calendar date.
type DateBucket struct {
	Date        time.Time
	Entries     []DateBucketEntry
	Reviewed    int
	NotReviewed int
	FromFailure int
}

// UpcomingCards is the forward-projection view for a day window.
// Buckets are keyed by the date's yyyy-mm-dd string.
type UpcomingCards struct {
	Buckets   map[string]*DateBucket
	Total     int
	Intervals []int
}

// HistorySummary summarizes the review outcomes inside a history window.
type HistorySummary struct {
	TotalReviews       int
	TotalSuccess       int
	TotalFailures      int
	AverageSuccessRate int // percentage, 0 when no reviews
}

// ReviewHistory is the result of a history query: cards ordered by
// LastReviewed descending, summary stats, and a grouping by the
// calendar date of LastReviewed (cards without one are excluded from
// the grouping only).
type ReviewHistory struct {
	Cards   []CardWithListName
	Summary HistorySummary
	ByDate  map[string][]CardWithListName
}
