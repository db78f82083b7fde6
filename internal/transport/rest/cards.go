package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/card"
)

// cardService defines the minimal interface needed by CardHandler.
type cardService interface {
	CreateCard(ctx context.Context, input card.CreateCardInput) (domain.Card, error)
	GetCard(ctx context.Context, cardID uuid.UUID) (domain.CardWithListName, error)
	ListCards(ctx context.Context, input card.ListCardsInput) ([]domain.Card, error)
	UpdateCard(ctx context.Context, input card.UpdateCardInput) (domain.Card, error)
	DeleteCard(ctx context.Context, cardID uuid.UUID) error
}

// CardHandler serves card CRUD endpoints.
type CardHandler struct {
	svc cardService
	log *slog.Logger
}

// NewCardHandler creates a CardHandler.
func NewCardHandler(svc cardService, logger *slog.Logger) *CardHandler {
	return &CardHandler{svc: svc, log: logger.With("handler", "cards")}
}

type createCardRequest struct {
	Word       string             `json:"word"`
	Definition string             `json:"definition"`
	Details    domain.WordDetails `json:"details"`
	WordListID *uuid.UUID         `json:"wordListId"`
}

type updateCardRequest struct {
	Word       *string             `json:"word"`
	Definition *string             `json:"definition"`
	Details    *domain.WordDetails `json:"details"`
	WordListID *uuid.UUID          `json:"wordListId"`
}

// Create handles POST /api/v1/cards.
func (h *CardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.CreateCard(r.Context(), card.CreateCardInput{
		Word:       req.Word,
		Definition: req.Definition,
		Details:    req.Details,
		WordListID: req.WordListID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toCardResponse(created))
}

// Get handles GET /api/v1/cards/{id}.
func (h *CardHandler) Get(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	c, err := h.svc.GetCard(r.Context(), cardID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardWithListResponse(c))
}

// List handles GET /api/v1/cards with optional filters:
// ?listId=&status=&search=&limit=&offset=.
func (h *CardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := card.ListCardsInput{
		Search: q.Get("search"),
		Limit:  queryInt(q.Get("limit")),
		Offset: queryInt(q.Get("offset")),
	}

	if v := q.Get("listId"); v != "" {
		listID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid listId")
			return
		}
		input.WordListID = &listID
	}
	if v := q.Get("status"); v != "" {
		status := domain.ReviewStatus(v)
		input.Status = &status
	}

	cards, err := h.svc.ListCards(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"cards": toCardResponses(cards),
		"total": len(cards),
	})
}

// Update handles PATCH /api/v1/cards/{id}.
func (h *CardHandler) Update(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateCardRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateCard(r.Context(), card.UpdateCardInput{
		CardID:     cardID,
		Word:       req.Word,
		Definition: req.Definition,
		Details:    req.Details,
		WordListID: req.WordListID,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toCardResponse(updated))
}

// Delete handles DELETE /api/v1/cards/{id}.
func (h *CardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	cardID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteCard(r.Context(), cardID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// queryInt parses a numeric query parameter; garbage reads as zero and
// falls back to the service defaults.
func queryInt(v string) int {
	n, _ := strconv.Atoi(v)
	return n
}
