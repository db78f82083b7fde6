package review

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

var _ cardRepo = &cardRepoMock{}

type cardRepoMock struct {
	GetByIDFunc          func(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error)
	GetWithListNameFunc  func(ctx context.Context, userID, cardID uuid.UUID) (domain.CardWithListName, error)
	ListDueFunc          func(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Card, error)
	ListActiveFunc       func(ctx context.Context, userID uuid.UUID) ([]domain.Card, error)
	ListWithListNameFunc func(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.CardWithListName, error)
	UpdateScheduleFunc   func(ctx context.Context, userID, cardID uuid.UUID, params domain.ScheduleUpdateParams) error
	UpdateProgressFunc   func(ctx context.Context, userID, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) error
	AddToReviewFunc      func(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int, error)
	CountByStatusFunc    func(ctx context.Context, userID uuid.UUID) (int, int, int, error)
	CountChallengingFunc func(ctx context.Context, userID uuid.UUID) (int, error)
	SumCountersFunc      func(ctx context.Context, userID uuid.UUID) (int, int, error)

	mu                  sync.Mutex
	UpdateScheduleCalls []domain.ScheduleUpdateParams
	UpdateProgressCalls []uuid.UUID
	AddToReviewCalls    [][]uuid.UUID
}

func (m *cardRepoMock) GetByID(ctx context.Context, userID, cardID uuid.UUID) (domain.Card, error) {
	if m.GetByIDFunc == nil {
		panic("cardRepoMock.GetByIDFunc: method is nil but cardRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) GetWithListName(ctx context.Context, userID, cardID uuid.UUID) (domain.CardWithListName, error) {
	if m.GetWithListNameFunc == nil {
		panic("cardRepoMock.GetWithListNameFunc: method is nil but cardRepo.GetWithListName was just called")
	}
	return m.GetWithListNameFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) ListDue(ctx context.Context, userID uuid.UUID, cutoff time.Time) ([]domain.Card, error) {
	if m.ListDueFunc == nil {
		panic("cardRepoMock.ListDueFunc: method is nil but cardRepo.ListDue was just called")
	}
	return m.ListDueFunc(ctx, userID, cutoff)
}

func (m *cardRepoMock) ListActive(ctx context.Context, userID uuid.UUID) ([]domain.Card, error) {
	if m.ListActiveFunc == nil {
		panic("cardRepoMock.ListActiveFunc: method is nil but cardRepo.ListActive was just called")
	}
	return m.ListActiveFunc(ctx, userID)
}

func (m *cardRepoMock) ListWithListName(ctx context.Context, userID uuid.UUID, from, to *time.Time) ([]domain.CardWithListName, error) {
	if m.ListWithListNameFunc == nil {
		panic("cardRepoMock.ListWithListNameFunc: method is nil but cardRepo.ListWithListName was just called")
	}
	return m.ListWithListNameFunc(ctx, userID, from, to)
}

func (m *cardRepoMock) UpdateSchedule(ctx context.Context, userID, cardID uuid.UUID, params domain.ScheduleUpdateParams) error {
	if m.UpdateScheduleFunc == nil {
		panic("cardRepoMock.UpdateScheduleFunc: method is nil but cardRepo.UpdateSchedule was just called")
	}
	m.mu.Lock()
	m.UpdateScheduleCalls = append(m.UpdateScheduleCalls, params)
	m.mu.Unlock()
	return m.UpdateScheduleFunc(ctx, userID, cardID, params)
}

func (m *cardRepoMock) UpdateProgress(ctx context.Context, userID, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) error {
	if m.UpdateProgressFunc == nil {
		panic("cardRepoMock.UpdateProgressFunc: method is nil but cardRepo.UpdateProgress was just called")
	}
	m.mu.Lock()
	m.UpdateProgressCalls = append(m.UpdateProgressCalls, cardID)
	m.mu.Unlock()
	return m.UpdateProgressFunc(ctx, userID, cardID, isSuccess, reviewedAt)
}

func (m *cardRepoMock) AddToReview(ctx context.Context, userID uuid.UUID, cardIDs []uuid.UUID, now time.Time) (int, error) {
	if m.AddToReviewFunc == nil {
		panic("cardRepoMock.AddToReviewFunc: method is nil but cardRepo.AddToReview was just called")
	}
	m.mu.Lock()
	m.AddToReviewCalls = append(m.AddToReviewCalls, cardIDs)
	m.mu.Unlock()
	return m.AddToReviewFunc(ctx, userID, cardIDs, now)
}

func (m *cardRepoMock) CountByStatus(ctx context.Context, userID uuid.UUID) (int, int, int, error) {
	if m.CountByStatusFunc == nil {
		panic("cardRepoMock.CountByStatusFunc: method is nil but cardRepo.CountByStatus was just called")
	}
	return m.CountByStatusFunc(ctx, userID)
}

func (m *cardRepoMock) CountChallenging(ctx context.Context, userID uuid.UUID) (int, error) {
	if m.CountChallengingFunc == nil {
		panic("cardRepoMock.CountChallengingFunc: method is nil but cardRepo.CountChallenging was just called")
	}
	return m.CountChallengingFunc(ctx, userID)
}

func (m *cardRepoMock) SumCounters(ctx context.Context, userID uuid.UUID) (int, int, error) {
	if m.SumCountersFunc == nil {
		panic("cardRepoMock.SumCountersFunc: method is nil but cardRepo.SumCounters was just called")
	}
	return m.SumCountersFunc(ctx, userID)
}

var _ reviewRepo = &reviewRepoMock{}

type reviewRepoMock struct {
	CreateFunc             func(ctx context.Context, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) (domain.Review, error)
	CountBetweenFunc       func(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error)
	ListCardIDsBetweenFunc func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error)
	ListByUserBetweenFunc  func(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Review, error)

	mu          sync.Mutex
	CreateCalls []uuid.UUID
}

func (m *reviewRepoMock) Create(ctx context.Context, cardID uuid.UUID, isSuccess bool, reviewedAt time.Time) (domain.Review, error) {
	if m.CreateFunc == nil {
		panic("reviewRepoMock.CreateFunc: method is nil but reviewRepo.Create was just called")
	}
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, cardID)
	m.mu.Unlock()
	return m.CreateFunc(ctx, cardID, isSuccess, reviewedAt)
}

func (m *reviewRepoMock) CountBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) (int, error) {
	if m.CountBetweenFunc == nil {
		panic("reviewRepoMock.CountBetweenFunc: method is nil but reviewRepo.CountBetween was just called")
	}
	return m.CountBetweenFunc(ctx, userID, from, to)
}

func (m *reviewRepoMock) ListCardIDsBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]uuid.UUID, error) {
	if m.ListCardIDsBetweenFunc == nil {
		panic("reviewRepoMock.ListCardIDsBetweenFunc: method is nil but reviewRepo.ListCardIDsBetween was just called")
	}
	return m.ListCardIDsBetweenFunc(ctx, userID, from, to)
}

func (m *reviewRepoMock) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Review, error) {
	if m.ListByUserBetweenFunc == nil {
		panic("reviewRepoMock.ListByUserBetweenFunc: method is nil but reviewRepo.ListByUserBetween was just called")
	}
	return m.ListByUserBetweenFunc(ctx, userID, from, to)
}

var _ scheduleRepo = &scheduleRepoMock{}

type scheduleRepoMock struct {
	GetDefaultByUserFunc func(ctx context.Context, userID uuid.UUID) (domain.IntervalSchedule, error)
}

func (m *scheduleRepoMock) GetDefaultByUser(ctx context.Context, userID uuid.UUID) (domain.IntervalSchedule, error) {
	if m.GetDefaultByUserFunc == nil {
		panic("scheduleRepoMock.GetDefaultByUserFunc: method is nil but scheduleRepo.GetDefaultByUser was just called")
	}
	return m.GetDefaultByUserFunc(ctx, userID)
}

var _ userRepo = &userRepoMock{}

type userRepoMock struct {
	GetByIDFunc func(ctx context.Context, userID uuid.UUID) (domain.User, error)
}

func (m *userRepoMock) GetByID(ctx context.Context, userID uuid.UUID) (domain.User, error) {
	if m.GetByIDFunc == nil {
		panic("userRepoMock.GetByIDFunc: method is nil but userRepo.GetByID was just called")
	}
	return m.GetByIDFunc(ctx, userID)
}

var _ txManager = &txManagerMock{}

// txManagerMock runs the callback directly, without a transaction.
type txManagerMock struct{}

func (m *txManagerMock) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
