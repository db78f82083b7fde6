package card

import (
	"strings"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

const (
	maxWordLength       = 255
	maxDefinitionLength = 2000
)

// CreateCardInput carries the fields of a new card.
type CreateCardInput struct {
	Word       string
	Definition string
	Details    domain.WordDetails
	WordListID *uuid.UUID
}

// Validate checks the input.
func (i CreateCardInput) Validate() error {
	var fieldErrors []domain.FieldError

	word := strings.TrimSpace(i.Word)
	if word == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "word",
			Message: "is required",
		})
	} else if len(word) > maxWordLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "word",
			Message: "is too long",
		})
	}

	definition := strings.TrimSpace(i.Definition)
	if definition == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "definition",
			Message: "is required",
		})
	} else if len(definition) > maxDefinitionLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "definition",
			Message: "is too long",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// UpdateCardInput carries a partial card edit. Nil fields are left
// unchanged.
type UpdateCardInput struct {
	CardID     uuid.UUID
	Word       *string
	Definition *string
	Details    *domain.WordDetails
	WordListID *uuid.UUID
}

// Validate checks the input.
func (i UpdateCardInput) Validate() error {
	var fieldErrors []domain.FieldError

	if i.CardID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "cardId",
			Message: "is required",
		})
	}
	if i.Word != nil && strings.TrimSpace(*i.Word) == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "word",
			Message: "must not be empty",
		})
	}
	if i.Definition != nil && strings.TrimSpace(*i.Definition) == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "definition",
			Message: "must not be empty",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// ListCardsInput narrows the card listing.
type ListCardsInput struct {
	WordListID *uuid.UUID
	Status     *domain.ReviewStatus
	Search     string
	Limit      int
	Offset     int
}

// Validate checks the input.
func (i ListCardsInput) Validate() error {
	var fieldErrors []domain.FieldError

	if i.Limit < 0 || i.Limit > 500 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "limit",
			Message: "must be between 0 and 500",
		})
	}
	if i.Offset < 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "offset",
			Message: "must not be negative",
		})
	}
	if i.Status != nil && !i.Status.IsValid() {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "status",
			Message: "is not a known review status",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}
