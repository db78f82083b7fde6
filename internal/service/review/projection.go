package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

// ProjectCard enumerates the projected review dates of one card inside
// [windowStart, windowEnd). It emits at most one immediate entry, derived
// from the card's current step, plus one speculative entry per schedule
// step the card has not reached yet. A card never gets two entries on the
// same calendar date; the immediate entry wins.
//
// Pure function: no clock, no storage.
func ProjectCard(c domain.Card, intervals []int, windowStart, windowEnd time.Time, tz *time.Location) []domain.ProjectionEntry {
	if c.ReviewStatus != domain.ReviewStatusActive {
		return nil
	}

	base := c.BaseDate()
	if base.IsZero() {
		return nil
	}

	inWindow := func(t time.Time) bool {
		return !t.Before(windowStart) && t.Before(windowEnd)
	}

	var entries []domain.ProjectionEntry
	seen := make(map[string]bool)

	immediate := bucketDate(base.AddDate(0, 0, intervalAt(intervals, c.ReviewStep)), tz)
	if inWindow(immediate) {
		entries = append(entries, domain.ProjectionEntry{
			Date:           immediate,
			CardID:         c.ID,
			IsFutureReview: false,
			IsFromFailure:  c.FailureCount > 0,
		})
		seen[dateKey(immediate, tz)] = true
	}

	for step := c.ReviewStep + 1; step < len(intervals); step++ {
		future := bucketDate(base.AddDate(0, 0, intervals[step]), tz)
		if !inWindow(future) || seen[dateKey(future, tz)] {
			continue
		}
		entries = append(entries, domain.ProjectionEntry{
			Date:           future,
			CardID:         c.ID,
			IsFutureReview: true,
			IsFromFailure:  false,
		})
		seen[dateKey(future, tz)] = true
	}

	return entries
}

// GroupByDate aggregates flat projection entries into per-date buckets.
// reviewedDates maps a card ID to the set of calendar-date keys on which
// a real review happened; only immediate entries consult it, speculative
// entries always count as not reviewed. Returns the buckets keyed by
// yyyy-mm-dd and the total entry count.
//
// Pure function, second half of the projection pipeline.
func GroupByDate(entries []domain.ProjectionEntry, reviewedDates map[uuid.UUID]map[string]bool, tz *time.Location) (map[string]*domain.DateBucket, int) {
	buckets := make(map[string]*domain.DateBucket)

	for _, e := range entries {
		key := dateKey(e.Date, tz)

		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.DateBucket{Date: e.Date}
			buckets[key] = bucket
		}

		reviewed := !e.IsFutureReview && reviewedDates[e.CardID][key]

		bucket.Entries = append(bucket.Entries, domain.DateBucketEntry{
			CardID:          e.CardID,
			IsFutureReview:  e.IsFutureReview,
			IsFromFailure:   e.IsFromFailure,
			HasBeenReviewed: reviewed,
		})
		if reviewed {
			bucket.Reviewed++
		} else {
			bucket.NotReviewed++
		}
		if e.IsFromFailure {
			bucket.FromFailure++
		}
	}

	total := 0
	for _, b := range buckets {
		total += len(b.Entries)
	}

	return buckets, total
}

// bucketDate truncates a timestamp to the start of its calendar day in tz.
func bucketDate(t time.Time, tz *time.Location) time.Time {
	local := t.In(tz)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, tz)
}
