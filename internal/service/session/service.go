// Package session runs review and test sittings. A review sitting
// batches due cards for the spaced-repetition flow; a test sitting
// records per-card outcomes without touching the review schedule.
package session

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/review"
)

type sessionRepo interface {
	CreateReviewSession(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (domain.ReviewSession, error)
	GetReviewSession(ctx context.Context, userID, sessionID uuid.UUID) (domain.ReviewSession, error)
	FinishReviewSession(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error
	CreateTestSession(ctx context.Context, userID uuid.UUID) (domain.TestSession, error)
	GetTestSession(ctx context.Context, userID, sessionID uuid.UUID) (domain.TestSession, error)
	FinishTestSession(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error
	CreateTestResult(ctx context.Context, sessionID, cardID uuid.UUID, isCorrect bool, timeSpentMs int) error
}

type cardLister interface {
	ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Card, error)
}

type reviewService interface {
	GetTodayCards(ctx context.Context) (review.TodayCards, error)
	UpdateCardProgress(ctx context.Context, input review.UpdateProgressInput) error
}

// Service exposes session operations.
type Service struct {
	sessions sessionRepo
	cards    cardLister
	reviews  reviewService
	log      *slog.Logger
}

// NewService creates a new session service.
func NewService(log *slog.Logger, sessions sessionRepo, cards cardLister, reviews reviewService) *Service {
	return &Service{
		sessions: sessions,
		cards:    cards,
		reviews:  reviews,
		log:      log.With("service", "session"),
	}
}
