package session

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/review"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

// SubmitTestResultInput records one card's outcome within a test sitting.
type SubmitTestResultInput struct {
	SessionID   uuid.UUID
	CardID      uuid.UUID
	IsCorrect   bool
	TimeSpentMs int
}

// Validate checks the input.
func (i SubmitTestResultInput) Validate() error {
	var fieldErrors []domain.FieldError

	if i.SessionID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "sessionId",
			Message: "is required",
		})
	}
	if i.CardID == uuid.Nil {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "cardId",
			Message: "is required",
		})
	}
	if i.TimeSpentMs < 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "timeSpentMs",
			Message: "must not be negative",
		})
	}

	if len(fieldErrors) > 0 {
		return domain.NewValidationErrors(fieldErrors)
	}

	return nil
}

// StartTestSession opens a test sitting.
func (s *Service) StartTestSession(ctx context.Context) (domain.TestSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.TestSession{}, domain.ErrUnauthorized
	}

	created, err := s.sessions.CreateTestSession(ctx, userID)
	if err != nil {
		return domain.TestSession{}, fmt.Errorf("create test session: %w", err)
	}

	s.log.InfoContext(ctx, "test session started",
		"user_id", userID,
		"session_id", created.ID,
	)

	return created, nil
}

// GetTestSession returns one of the user's test sittings with results.
func (s *Service) GetTestSession(ctx context.Context, sessionID uuid.UUID) (domain.TestSession, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.TestSession{}, domain.ErrUnauthorized
	}

	session, err := s.sessions.GetTestSession(ctx, userID, sessionID)
	if err != nil {
		return domain.TestSession{}, fmt.Errorf("get test session: %w", err)
	}

	return session, nil
}

// SubmitTestResult records a card outcome and bumps the card's counters.
// The card's review schedule is left untouched; testing a card is not
// reviewing it.
func (s *Service) SubmitTestResult(ctx context.Context, input SubmitTestResultInput) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := input.Validate(); err != nil {
		return err
	}

	session, err := s.sessions.GetTestSession(ctx, userID, input.SessionID)
	if err != nil {
		return fmt.Errorf("get test session: %w", err)
	}
	if session.Status != domain.SessionStatusActive {
		return fmt.Errorf("test session %s is not active: %w", input.SessionID, domain.ErrConflict)
	}

	if err := s.sessions.CreateTestResult(ctx, input.SessionID, input.CardID, input.IsCorrect, input.TimeSpentMs); err != nil {
		return fmt.Errorf("create test result: %w", err)
	}

	if err := s.reviews.UpdateCardProgress(ctx, review.UpdateProgressInput{
		CardID:    input.CardID,
		IsSuccess: input.IsCorrect,
	}); err != nil {
		return fmt.Errorf("update card progress: %w", err)
	}

	return nil
}

// FinishTestSession closes an active test sitting as completed or
// abandoned. Finishing twice returns domain.ErrConflict.
func (s *Service) FinishTestSession(ctx context.Context, sessionID uuid.UUID, abandoned bool) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	status := domain.SessionStatusCompleted
	if abandoned {
		status = domain.SessionStatusAbandoned
	}

	if err := s.sessions.FinishTestSession(ctx, userID, sessionID, status); err != nil {
		return fmt.Errorf("finish test session: %w", err)
	}

	s.log.InfoContext(ctx, "test session finished",
		"user_id", userID,
		"session_id", sessionID,
		"status", status,
	)

	return nil
}
