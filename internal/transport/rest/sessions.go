package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/session"
)

// sessionService defines the minimal interface needed by SessionHandler.
type sessionService interface {
	StartReviewSession(ctx context.Context, input session.StartReviewSessionInput) (domain.ReviewSession, error)
	GetReviewSession(ctx context.Context, sessionID uuid.UUID) (domain.ReviewSession, error)
	FinishReviewSession(ctx context.Context, sessionID uuid.UUID, abandoned bool) error
	StartTestSession(ctx context.Context) (domain.TestSession, error)
	GetTestSession(ctx context.Context, sessionID uuid.UUID) (domain.TestSession, error)
	SubmitTestResult(ctx context.Context, input session.SubmitTestResultInput) error
	FinishTestSession(ctx context.Context, sessionID uuid.UUID, abandoned bool) error
}

// SessionHandler serves review and test session endpoints.
type SessionHandler struct {
	svc sessionService
	log *slog.Logger
}

// NewSessionHandler creates a SessionHandler.
func NewSessionHandler(svc sessionService, logger *slog.Logger) *SessionHandler {
	return &SessionHandler{svc: svc, log: logger.With("handler", "sessions")}
}

type startReviewSessionRequest struct {
	CardIDs []uuid.UUID `json:"cardIds"`
}

type finishSessionRequest struct {
	Abandoned bool `json:"abandoned"`
}

type submitResultRequest struct {
	CardID      uuid.UUID `json:"cardId"`
	IsCorrect   bool      `json:"isCorrect"`
	TimeSpentMs int       `json:"timeSpentMs"`
}

// StartReview handles POST /api/v1/sessions/review. An empty body or
// empty cardIds opens a sitting over today's due cards.
func (h *SessionHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	var req startReviewSessionRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}

	started, err := h.svc.StartReviewSession(r.Context(), session.StartReviewSessionInput{
		CardIDs: req.CardIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toReviewSessionResponse(started))
}

// GetReview handles GET /api/v1/sessions/review/{id}.
func (h *SessionHandler) GetReview(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	s, err := h.svc.GetReviewSession(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toReviewSessionResponse(s))
}

// FinishReview handles POST /api/v1/sessions/review/{id}/finish.
func (h *SessionHandler) FinishReview(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req finishSessionRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.FinishReviewSession(r.Context(), sessionID, req.Abandoned); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// StartTest handles POST /api/v1/sessions/test.
func (h *SessionHandler) StartTest(w http.ResponseWriter, r *http.Request) {
	started, err := h.svc.StartTestSession(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toTestSessionResponse(started))
}

// GetTest handles GET /api/v1/sessions/test/{id}.
func (h *SessionHandler) GetTest(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	s, err := h.svc.GetTestSession(r.Context(), sessionID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toTestSessionResponse(s))
}

// SubmitResult handles POST /api/v1/sessions/test/{id}/results.
func (h *SessionHandler) SubmitResult(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req submitResultRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	err := h.svc.SubmitTestResult(r.Context(), session.SubmitTestResultInput{
		SessionID:   sessionID,
		CardID:      req.CardID,
		IsCorrect:   req.IsCorrect,
		TimeSpentMs: req.TimeSpentMs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"status": "ok"})
}

// FinishTest handles POST /api/v1/sessions/test/{id}/finish.
func (h *SessionHandler) FinishTest(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req finishSessionRequest
	if r.ContentLength > 0 && !decodeJSON(w, r, &req) {
		return
	}

	if err := h.svc.FinishTestSession(r.Context(), sessionID, req.Abandoned); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
