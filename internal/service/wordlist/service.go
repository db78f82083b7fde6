// Package wordlist manages named groups of cards.
package wordlist

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

const maxNameLength = 255

type wordListRepo interface {
	Create(ctx context.Context, userID uuid.UUID, name string, description *string, isPublic bool) (domain.WordList, error)
	GetByID(ctx context.Context, userID, listID uuid.UUID) (domain.WordList, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.WordList, error)
	Update(ctx context.Context, userID, listID uuid.UUID, params domain.WordListUpdateParams) (domain.WordList, error)
	Delete(ctx context.Context, userID, listID uuid.UUID) error
}

// Service exposes word list operations.
type Service struct {
	lists wordListRepo
	log   *slog.Logger
}

// NewService creates a new word list service.
func NewService(log *slog.Logger, lists wordListRepo) *Service {
	return &Service{
		lists: lists,
		log:   log.With("service", "wordlist"),
	}
}

// CreateListInput carries the fields of a new word list.
type CreateListInput struct {
	Name        string
	Description *string
	IsPublic    bool
}

// Validate checks the input.
func (i CreateListInput) Validate() error {
	var fieldErrors []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "name",
			Message: "is required",
		})
	} else if len(name) > maxNameLength {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "name",
			Message: "is too long",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// UpdateListInput carries a partial word list edit. Nil fields are left
// unchanged.
type UpdateListInput struct {
	ListID      uuid.UUID
	Name        *string
	Description *string
	IsPublic    *bool
}

// Validate checks the input.
func (i UpdateListInput) Validate() error {
	var fieldErrors []domain.FieldError

	if i.ListID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "listId",
			Message: "is required",
		})
	}
	if i.Name != nil && strings.TrimSpace(*i.Name) == "" {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "name",
			Message: "must not be empty",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// CreateList creates a new word list.
func (s *Service) CreateList(ctx context.Context, input CreateListInput) (domain.WordList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.WordList{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.WordList{}, err
	}

	created, err := s.lists.Create(ctx, userID, strings.TrimSpace(input.Name), input.Description, input.IsPublic)
	if err != nil {
		return domain.WordList{}, fmt.Errorf("create word list: %w", err)
	}

	s.log.InfoContext(ctx, "word list created",
		"user_id", userID,
		"list_id", created.ID,
		"name", created.Name,
	)

	return created, nil
}

// GetList returns one of the user's word lists.
func (s *Service) GetList(ctx context.Context, listID uuid.UUID) (domain.WordList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.WordList{}, domain.ErrUnauthorized
	}

	list, err := s.lists.GetByID(ctx, userID, listID)
	if err != nil {
		return domain.WordList{}, fmt.Errorf("get word list: %w", err)
	}

	return list, nil
}

// ListLists returns all of the user's word lists with card counts.
func (s *Service) ListLists(ctx context.Context) ([]domain.WordList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	lists, err := s.lists.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list word lists: %w", err)
	}

	return lists, nil
}

// UpdateList applies a partial edit to a word list.
func (s *Service) UpdateList(ctx context.Context, input UpdateListInput) (domain.WordList, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.WordList{}, domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return domain.WordList{}, err
	}

	updated, err := s.lists.Update(ctx, userID, input.ListID, domain.WordListUpdateParams{
		Name:        input.Name,
		Description: input.Description,
		IsPublic:    input.IsPublic,
	})
	if err != nil {
		return domain.WordList{}, fmt.Errorf("update word list: %w", err)
	}

	s.log.InfoContext(ctx, "word list updated",
		"user_id", userID,
		"list_id", updated.ID,
	)

	return updated, nil
}

// DeleteList removes a word list. Cards in the list are kept and
// detached from it.
func (s *Service) DeleteList(ctx context.Context, listID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.lists.Delete(ctx, userID, listID); err != nil {
		return fmt.Errorf("delete word list: %w", err)
	}

	s.log.InfoContext(ctx, "word list deleted",
		"user_id", userID,
		"list_id", listID,
	)

	return nil
}
