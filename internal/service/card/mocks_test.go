package card

import (
	"context"
	"sync"

	"github.com/google/uuid"

	cardrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/card"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

// cardRepoMock is a mock implementation of cardRepo.
type cardRepoMock struct {
	CreateFunc             func(ctx context.Context, c domain.Card) (domain.Card, error)
	GetWithListNameFunc    func(ctx context.Context, userID, cardID uuid.UUID) (domain.CardWithListName, error)
	ListFunc               func(ctx context.Context, userID uuid.UUID, filter cardrepo.Filter) ([]domain.Card, error)
	UpdateFunc             func(ctx context.Context, userID, cardID uuid.UUID, params domain.CardUpdateParams) (domain.Card, error)
	DeleteFunc             func(ctx context.Context, userID, cardID uuid.UUID) error
	IncrementViewCountFunc func(ctx context.Context, userID, cardID uuid.UUID) error

	mu          sync.Mutex
	CreateCalls []domain.Card
	ListCalls   []cardrepo.Filter
	UpdateCalls []domain.CardUpdateParams
	DeleteCalls []uuid.UUID
}

var _ cardRepo = (*cardRepoMock)(nil)

func (m *cardRepoMock) Create(ctx context.Context, c domain.Card) (domain.Card, error) {
	if m.CreateFunc == nil {
		panic("cardRepoMock.CreateFunc: method is nil but cardRepo.Create was just called")
	}
	m.mu.Lock()
	m.CreateCalls = append(m.CreateCalls, c)
	m.mu.Unlock()
	return m.CreateFunc(ctx, c)
}

func (m *cardRepoMock) GetWithListName(ctx context.Context, userID, cardID uuid.UUID) (domain.CardWithListName, error) {
	if m.GetWithListNameFunc == nil {
		panic("cardRepoMock.GetWithListNameFunc: method is nil but cardRepo.GetWithListName was just called")
	}
	return m.GetWithListNameFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) List(ctx context.Context, userID uuid.UUID, filter cardrepo.Filter) ([]domain.Card, error) {
	if m.ListFunc == nil {
		panic("cardRepoMock.ListFunc: method is nil but cardRepo.List was just called")
	}
	m.mu.Lock()
	m.ListCalls = append(m.ListCalls, filter)
	m.mu.Unlock()
	return m.ListFunc(ctx, userID, filter)
}

func (m *cardRepoMock) Update(ctx context.Context, userID, cardID uuid.UUID, params domain.CardUpdateParams) (domain.Card, error) {
	if m.UpdateFunc == nil {
		panic("cardRepoMock.UpdateFunc: method is nil but cardRepo.Update was just called")
	}
	m.mu.Lock()
	m.UpdateCalls = append(m.UpdateCalls, params)
	m.mu.Unlock()
	return m.UpdateFunc(ctx, userID, cardID, params)
}

func (m *cardRepoMock) Delete(ctx context.Context, userID, cardID uuid.UUID) error {
	if m.DeleteFunc == nil {
		panic("cardRepoMock.DeleteFunc: method is nil but cardRepo.Delete was just called")
	}
	m.mu.Lock()
	m.DeleteCalls = append(m.DeleteCalls, cardID)
	m.mu.Unlock()
	return m.DeleteFunc(ctx, userID, cardID)
}

func (m *cardRepoMock) IncrementViewCount(ctx context.Context, userID, cardID uuid.UUID) error {
	if m.IncrementViewCountFunc == nil {
		panic("cardRepoMock.IncrementViewCountFunc: method is nil but cardRepo.IncrementViewCount was just called")
	}
	return m.IncrementViewCountFunc(ctx, userID, cardID)
}

// scheduleProviderMock is a mock implementation of scheduleProvider.
type scheduleProviderMock struct {
	GetOrCreateFunc func(ctx context.Context) (domain.IntervalSchedule, error)
}

var _ scheduleProvider = (*scheduleProviderMock)(nil)

func (m *scheduleProviderMock) GetOrCreate(ctx context.Context) (domain.IntervalSchedule, error) {
	if m.GetOrCreateFunc == nil {
		panic("scheduleProviderMock.GetOrCreateFunc: method is nil but scheduleProvider.GetOrCreate was just called")
	}
	return m.GetOrCreateFunc(ctx)
}
