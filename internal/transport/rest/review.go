package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/review"
)

// reviewService defines the minimal interface needed by ReviewHandler.
type reviewService interface {
	GetTodayCards(ctx context.Context) (review.TodayCards, error)
	ReviewCard(ctx context.Context, input review.ReviewCardInput) (domain.CardWithListName, error)
	UpdateCardProgress(ctx context.Context, input review.UpdateProgressInput) error
	AddToReview(ctx context.Context, input review.AddToReviewInput) (int, error)
	GetUpcomingCards(ctx context.Context, input review.UpcomingInput) (domain.UpcomingCards, error)
}

// ReviewHandler serves the spaced-repetition endpoints.
type ReviewHandler struct {
	svc reviewService
	log *slog.Logger
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc reviewService, logger *slog.Logger) *ReviewHandler {
	return &ReviewHandler{svc: svc, log: logger.With("handler", "review")}
}

type reviewOutcomeRequest struct {
	IsSuccess bool `json:"isSuccess"`
}

type addToReviewRequest struct {
	CardIDs []uuid.UUID `json:"cardIds"`
}

// Today handles GET /api/v1/review/today.
func (h *ReviewHandler) Today(w http.ResponseWriter, r *http.Request) {
	today, err := h.svc.GetTodayCards(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cards": toCardResponses(today.Cards),
		"total": today.Total,
	})
}

// Review handles POST /api/v1/cards/{id}/review: records an outcome and
// advances the card's schedule.
func (h *ReviewHandler) Review(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req reviewOutcomeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	reviewed, err := h.svc.ReviewCard(r.Context(), review.ReviewCardInput{
		CardID:    cardID,
		IsSuccess: req.IsSuccess,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardWithListResponse(reviewed))
}

// Progress handles POST /api/v1/cards/{id}/progress: updates the
// success and failure counters without touching the schedule.
func (h *ReviewHandler) Progress(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req reviewOutcomeRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.UpdateCardProgress(r.Context(), review.UpdateProgressInput{
		CardID:    cardID,
		IsSuccess: req.IsSuccess,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// AddToReview handles POST /api/v1/review/cards: re-activates completed
// cards so they re-enter the rotation.
func (h *ReviewHandler) AddToReview(w http.ResponseWriter, r *http.Request) {
	var req addToReviewRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	count, err := h.svc.AddToReview(r.Context(), review.AddToReviewInput{CardIDs: req.CardIDs})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int{"activated": count})
}

// Upcoming handles GET /api/v1/review/upcoming?days=&startDays=.
func (h *ReviewHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	upcoming, err := h.svc.GetUpcomingCards(r.Context(), review.UpcomingInput{
		Days:      queryInt(q.Get("days")),
		StartDays: queryInt(q.Get("startDays")),
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toUpcomingResponse(upcoming))
}
