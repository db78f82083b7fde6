package review

import (
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

// ReviewCardInput holds the parameters for recording a review outcome.
type ReviewCardInput struct {
	CardID    uuid.UUID
	IsSuccess bool
}

// Validate checks all fields and collects all errors.
func (i *ReviewCardInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpdateProgressInput holds the parameters for a counters-only update.
type UpdateProgressInput struct {
	CardID    uuid.UUID
	IsSuccess bool
}

// Validate checks all fields and collects all errors.
func (i *UpdateProgressInput) Validate() error {
	var errs []domain.FieldError

	if i.CardID == uuid.Nil {
		errs = append(errs, domain.FieldError{Field: "card_id", Message: "required"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// AddToReviewInput holds the parameters for the bulk re-activation.
type AddToReviewInput struct {
	CardIDs []uuid.UUID
}

// Validate checks all fields and collects all errors.
func (i *AddToReviewInput) Validate() error {
	var errs []domain.FieldError

	if len(i.CardIDs) == 0 {
		errs = append(errs, domain.FieldError{Field: "card_ids", Message: "required (at least 1)"})
	} else if len(i.CardIDs) > 500 {
		errs = append(errs, domain.FieldError{Field: "card_ids", Message: "too many (max 500)"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// UpcomingInput holds the window parameters for the forward projection.
// Zero values take the defaults: 7 days forward, 14 days back.
type UpcomingInput struct {
	Days      int
	StartDays int
}

func (i *UpcomingInput) withDefaults() UpcomingInput {
	out := *i
	if out.Days == 0 {
		out.Days = 7
	}
	if out.StartDays == 0 {
		out.StartDays = -14
	}
	return out
}

// Validate checks all fields and collects all errors.
func (i *UpcomingInput) Validate() error {
	var errs []domain.FieldError

	if i.Days < 0 || i.Days > 366 {
		errs = append(errs, domain.FieldError{Field: "days", Message: "must be between 0 and 366"})
	}
	if i.StartDays > 0 || i.StartDays < -366 {
		errs = append(errs, domain.FieldError{Field: "start_days", Message: "must be between -366 and 0"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// HistoryInput holds the window parameters for the review history.
// StartDate and EndDate must be given together; when absent the window
// is the trailing Days days (default 30).
type HistoryInput struct {
	StartDate *time.Time
	EndDate   *time.Time
	Days      int
}

// Validate checks all fields and collects all errors.
func (i *HistoryInput) Validate() error {
	var errs []domain.FieldError

	if (i.StartDate == nil) != (i.EndDate == nil) {
		errs = append(errs, domain.FieldError{Field: "start_date", Message: "start_date and end_date must be given together"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not precede start_date"})
	}
	if i.Days < 0 || i.Days > 366 {
		errs = append(errs, domain.FieldError{Field: "days", Message: "must be between 0 and 366"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
