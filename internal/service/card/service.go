// Package card manages flashcard content: creation, lookup, listing,
// editing and deletion. Scheduling state transitions live in the review
// service; this package only seeds the initial schedule fields.
package card

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	cardrepo "github.com/wordloop/wordloop-backend/internal/adapter/postgres/card"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

type cardRepo interface {
	Create(ctx context.Context, c domain.Card) (domain.Card, error)
	GetWithListName(ctx context.Context, userID, cardID uuid.UUID) (domain.CardWithListName, error)
	List(ctx context.Context, userID uuid.UUID, filter cardrepo.Filter) ([]domain.Card, error)
	Update(ctx context.Context, userID, cardID uuid.UUID, params domain.CardUpdateParams) (domain.Card, error)
	Delete(ctx context.Context, userID, cardID uuid.UUID) error
	IncrementViewCount(ctx context.Context, userID, cardID uuid.UUID) error
}

type scheduleProvider interface {
	GetOrCreate(ctx context.Context) (domain.IntervalSchedule, error)
}

// Service exposes card content operations.
type Service struct {
	cards     cardRepo
	schedules scheduleProvider
	log       *slog.Logger
}

// NewService creates a new card service.
func NewService(log *slog.Logger, cards cardRepo, schedules scheduleProvider) *Service {
	return &Service{
		cards:     cards,
		schedules: schedules,
		log:       log.With("service", "card"),
	}
}
