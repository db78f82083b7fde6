package review

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestProjectCard_ImmediateAndFuture(t *testing.T) {
	t.Parallel()

	intervals := []int{1, 2, 7, 30, 365}
	base := day(2024, 3, 10)
	card := domain.Card{
		ID:           uuid.New(),
		ReviewStatus: domain.ReviewStatusActive,
		ReviewStep:   0,
		LastReviewed: &base,
	}

	windowStart := day(2024, 3, 1)
	windowEnd := day(2024, 3, 20)

	entries := ProjectCard(card, intervals, windowStart, windowEnd, time.UTC)

	// step 0 due 3-11 (immediate), step 1 due 3-12, step 2 due 3-17;
	// steps 3 and 4 fall outside the window.
	if len(entries) != 3 {
		t.Fatalf("entries = %d, want 3: %+v", len(entries), entries)
	}
	if entries[0].IsFutureReview {
		t.Errorf("first entry should be the immediate one")
	}
	if !entries[0].Date.Equal(day(2024, 3, 11)) {
		t.Errorf("immediate date = %v, want 2024-03-11", entries[0].Date)
	}
	for _, e := range entries[1:] {
		if !e.IsFutureReview {
			t.Errorf("entry on %v should be speculative", e.Date)
		}
		if e.IsFromFailure {
			t.Errorf("speculative entry on %v must not carry the failure flag", e.Date)
		}
	}
}

func TestProjectCard_NeverTwoEntriesSameDate(t *testing.T) {
	t.Parallel()

	// Steps 0 and 1 share the same offset, so the immediate and the
	// first speculative date collide. The immediate entry must win.
	intervals := []int{1, 1, 3}
	base := day(2024, 3, 10)
	card := domain.Card{
		ID:           uuid.New(),
		ReviewStatus: domain.ReviewStatusActive,
		ReviewStep:   0,
		LastReviewed: &base,
		FailureCount: 2,
	}

	entries := ProjectCard(card, intervals, day(2024, 3, 1), day(2024, 3, 20), time.UTC)

	seen := make(map[string]int)
	for _, e := range entries {
		seen[e.Date.Format("2006-01-02")]++
	}
	for date, n := range seen {
		if n > 1 {
			t.Errorf("date %s appears %d times, want at most 1", date, n)
		}
	}

	if len(entries) != 2 {
		t.Fatalf("entries = %d, want 2 (collided dates deduplicated)", len(entries))
	}
	if entries[0].IsFutureReview || !entries[0].IsFromFailure {
		t.Errorf("surviving entry on the collision date must be the immediate, failure-flagged one: %+v", entries[0])
	}
}

func TestProjectCard_SkipsNonActiveAndZeroBase(t *testing.T) {
	t.Parallel()

	intervals := []int{1, 2}
	windowStart, windowEnd := day(2024, 3, 1), day(2024, 3, 20)

	completed := domain.Card{
		ID:           uuid.New(),
		ReviewStatus: domain.ReviewStatusCompleted,
		CreatedAt:    day(2024, 3, 10),
	}
	if got := ProjectCard(completed, intervals, windowStart, windowEnd, time.UTC); got != nil {
		t.Errorf("completed card projected %d entries, want none", len(got))
	}

	noBase := domain.Card{
		ID:           uuid.New(),
		ReviewStatus: domain.ReviewStatusActive,
	}
	if got := ProjectCard(noBase, intervals, windowStart, windowEnd, time.UTC); got != nil {
		t.Errorf("card without base date projected %d entries, want none", len(got))
	}
}

func TestProjectCard_UsesCreatedAtWhenNeverReviewed(t *testing.T) {
	t.Parallel()

	intervals := []int{5}
	card := domain.Card{
		ID:           uuid.New(),
		ReviewStatus: domain.ReviewStatusActive,
		ReviewStep:   0,
		CreatedAt:    day(2024, 3, 10),
	}

	entries := ProjectCard(card, intervals, day(2024, 3, 1), day(2024, 3, 20), time.UTC)
	if len(entries) != 1 {
		t.Fatalf("entries = %d, want 1", len(entries))
	}
	if !entries[0].Date.Equal(day(2024, 3, 15)) {
		t.Errorf("date = %v, want 2024-03-15 (created_at + 5d)", entries[0].Date)
	}
}

func TestGroupByDate(t *testing.T) {
	t.Parallel()

	cardA := uuid.New()
	cardB := uuid.New()
	d1 := day(2024, 3, 11)
	d2 := day(2024, 3, 12)

	entries := []domain.ProjectionEntry{
		{Date: d1, CardID: cardA, IsFutureReview: false, IsFromFailure: true},
		{Date: d1, CardID: cardB, IsFutureReview: false, IsFromFailure: false},
		{Date: d2, CardID: cardA, IsFutureReview: true, IsFromFailure: false},
	}

	// cardA has a real review on d1, so its immediate entry counts as
	// reviewed; its speculative entry on d2 never does.
	reviewed := map[uuid.UUID]map[string]bool{
		cardA: {"2024-03-11": true, "2024-03-12": true},
	}

	buckets, total := GroupByDate(entries, reviewed, time.UTC)

	if total != 3 {
		t.Errorf("total = %d, want 3", total)
	}
	if len(buckets) != 2 {
		t.Fatalf("buckets = %d, want 2", len(buckets))
	}

	b1 := buckets["2024-03-11"]
	if b1 == nil {
		t.Fatal("missing bucket 2024-03-11")
	}
	if b1.Reviewed != 1 || b1.NotReviewed != 1 || b1.FromFailure != 1 {
		t.Errorf("bucket 2024-03-11 = (reviewed=%d, notReviewed=%d, fromFailure=%d), want (1, 1, 1)",
			b1.Reviewed, b1.NotReviewed, b1.FromFailure)
	}

	b2 := buckets["2024-03-12"]
	if b2 == nil {
		t.Fatal("missing bucket 2024-03-12")
	}
	if b2.Reviewed != 0 || b2.NotReviewed != 1 {
		t.Errorf("bucket 2024-03-12 = (reviewed=%d, notReviewed=%d), want (0, 1): speculative entries are never reviewed",
			b2.Reviewed, b2.NotReviewed)
	}
}

func TestGroupByDate_Empty(t *testing.T) {
	t.Parallel()

	buckets, total := GroupByDate(nil, nil, time.UTC)
	if total != 0 || len(buckets) != 0 {
		t.Errorf("GroupByDate(nil) = (%d buckets, total %d), want empty", len(buckets), total)
	}
}
