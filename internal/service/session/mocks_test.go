package session

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/review"
)

// sessionRepoMock is a mock implementation of sessionRepo.
type sessionRepoMock struct {
	CreateReviewSessionFunc func(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (domain.ReviewSession, error)
	GetReviewSessionFunc    func(ctx context.Context, userID, sessionID uuid.UUID) (domain.ReviewSession, error)
	FinishReviewSessionFunc func(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error
	CreateTestSessionFunc   func(ctx context.Context, userID uuid.UUID) (domain.TestSession, error)
	GetTestSessionFunc      func(ctx context.Context, userID, sessionID uuid.UUID) (domain.TestSession, error)
	FinishTestSessionFunc   func(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error
	CreateTestResultFunc    func(ctx context.Context, sessionID, cardID uuid.UUID, isCorrect bool, timeSpentMs int) error

	mu                       sync.Mutex
	CreateReviewSessionCalls [][]uuid.UUID
	FinishReviewSessionCalls []domain.SessionStatus
	FinishTestSessionCalls   []domain.SessionStatus
	CreateTestResultCalls    []uuid.UUID
}

var _ sessionRepo = (*sessionRepoMock)(nil)

func (m *sessionRepoMock) CreateReviewSession(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID) (domain.ReviewSession, error) {
	if m.CreateReviewSessionFunc == nil {
		panic("sessionRepoMock.CreateReviewSessionFunc: method is nil but sessionRepo.CreateReviewSession was just called")
	}
	m.mu.Lock()
	m.CreateReviewSessionCalls = append(m.CreateReviewSessionCalls, cardIDs)
	m.mu.Unlock()
	return m.CreateReviewSessionFunc(ctx, userID, cardIDs)
}

func (m *sessionRepoMock) GetReviewSession(ctx context.Context, userID, sessionID uuid.UUID) (domain.ReviewSession, error) {
	if m.GetReviewSessionFunc == nil {
		panic("sessionRepoMock.GetReviewSessionFunc: method is nil but sessionRepo.GetReviewSession was just called")
	}
	return m.GetReviewSessionFunc(ctx, userID, sessionID)
}

func (m *sessionRepoMock) FinishReviewSession(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error {
	if m.FinishReviewSessionFunc == nil {
		panic("sessionRepoMock.FinishReviewSessionFunc: method is nil but sessionRepo.FinishReviewSession was just called")
	}
	m.mu.Lock()
	m.FinishReviewSessionCalls = append(m.FinishReviewSessionCalls, status)
	m.mu.Unlock()
	return m.FinishReviewSessionFunc(ctx, userID, sessionID, status)
}

func (m *sessionRepoMock) CreateTestSession(ctx context.Context, userID uuid.UUID) (domain.TestSession, error) {
	if m.CreateTestSessionFunc == nil {
		panic("sessionRepoMock.CreateTestSessionFunc: method is nil but sessionRepo.CreateTestSession was just called")
	}
	return m.CreateTestSessionFunc(ctx, userID)
}

func (m *sessionRepoMock) GetTestSession(ctx context.Context, userID, sessionID uuid.UUID) (domain.TestSession, error) {
	if m.GetTestSessionFunc == nil {
		panic("sessionRepoMock.GetTestSessionFunc: method is nil but sessionRepo.GetTestSession was just called")
	}
	return m.GetTestSessionFunc(ctx, userID, sessionID)
}

func (m *sessionRepoMock) FinishTestSession(ctx context.Context, userID, sessionID uuid.UUID, status domain.SessionStatus) error {
	if m.FinishTestSessionFunc == nil {
		panic("sessionRepoMock.FinishTestSessionFunc: method is nil but sessionRepo.FinishTestSession was just called")
	}
	m.mu.Lock()
	m.FinishTestSessionCalls = append(m.FinishTestSessionCalls, status)
	m.mu.Unlock()
	return m.FinishTestSessionFunc(ctx, userID, sessionID, status)
}

func (m *sessionRepoMock) CreateTestResult(ctx context.Context, sessionID, cardID uuid.UUID, isCorrect bool, timeSpentMs int) error {
	if m.CreateTestResultFunc == nil {
		panic("sessionRepoMock.CreateTestResultFunc: method is nil but sessionRepo.CreateTestResult was just called")
	}
	m.mu.Lock()
	m.CreateTestResultCalls = append(m.CreateTestResultCalls, cardID)
	m.mu.Unlock()
	return m.CreateTestResultFunc(ctx, sessionID, cardID, isCorrect, timeSpentMs)
}

// cardListerMock is a mock implementation of cardLister.
type cardListerMock struct {
	ListByIDsFunc func(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Card, error)
}

var _ cardLister = (*cardListerMock)(nil)

func (m *cardListerMock) ListByIDs(ctx context.Context, userID uuid.UUID, ids []uuid.UUID) ([]domain.Card, error) {
	if m.ListByIDsFunc == nil {
		panic("cardListerMock.ListByIDsFunc: method is nil but cardLister.ListByIDs was just called")
	}
	return m.ListByIDsFunc(ctx, userID, ids)
}

// reviewServiceMock is a mock implementation of reviewService.
type reviewServiceMock struct {
	GetTodayCardsFunc      func(ctx context.Context) (review.TodayCards, error)
	UpdateCardProgressFunc func(ctx context.Context, input review.UpdateProgressInput) error

	mu                  sync.Mutex
	UpdateProgressCalls []review.UpdateProgressInput
}

var _ reviewService = (*reviewServiceMock)(nil)

func (m *reviewServiceMock) GetTodayCards(ctx context.Context) (review.TodayCards, error) {
	if m.GetTodayCardsFunc == nil {
		panic("reviewServiceMock.GetTodayCardsFunc: method is nil but reviewService.GetTodayCards was just called")
	}
	return m.GetTodayCardsFunc(ctx)
}

func (m *reviewServiceMock) UpdateCardProgress(ctx context.Context, input review.UpdateProgressInput) error {
	if m.UpdateCardProgressFunc == nil {
		panic("reviewServiceMock.UpdateCardProgressFunc: method is nil but reviewService.UpdateCardProgress was just called")
	}
	m.mu.Lock()
	m.UpdateProgressCalls = append(m.UpdateProgressCalls, input)
	m.mu.Unlock()
	return m.UpdateCardProgressFunc(ctx, input)
}
