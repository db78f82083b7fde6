package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/wordlist"
)

// wordListService defines the minimal interface needed by WordListHandler.
type wordListService interface {
	CreateList(ctx context.Context, input wordlist.CreateListInput) (domain.WordList, error)
	GetList(ctx context.Context, listID uuid.UUID) (domain.WordList, error)
	ListLists(ctx context.Context) ([]domain.WordList, error)
	UpdateList(ctx context.Context, input wordlist.UpdateListInput) (domain.WordList, error)
	DeleteList(ctx context.Context, listID uuid.UUID) error
}

// WordListHandler serves word list CRUD endpoints.
type WordListHandler struct {
	svc wordListService
	log *slog.Logger
}

// NewWordListHandler creates a WordListHandler.
func NewWordListHandler(svc wordListService, logger *slog.Logger) *WordListHandler {
	return &WordListHandler{svc: svc, log: logger.With("handler", "wordlists")}
}

type createListRequest struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
	IsPublic    bool    `json:"isPublic"`
}

type updateListRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsPublic    *bool   `json:"isPublic"`
}

// Create handles POST /api/v1/lists.
func (h *WordListHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	created, err := h.svc.CreateList(r.Context(), wordlist.CreateListInput{
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, toWordListResponse(created))
}

// Get handles GET /api/v1/lists/{id}.
func (h *WordListHandler) Get(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	list, err := h.svc.GetList(r.Context(), listID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordListResponse(list))
}

// List handles GET /api/v1/lists.
func (h *WordListHandler) List(w http.ResponseWriter, r *http.Request) {
	lists, err := h.svc.ListLists(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]wordListResponse, 0, len(lists))
	for _, l := range lists {
		out = append(out, toWordListResponse(l))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"lists": out,
		"total": len(out),
	})
}

// Update handles PATCH /api/v1/lists/{id}.
func (h *WordListHandler) Update(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	var req updateListRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateList(r.Context(), wordlist.UpdateListInput{
		ListID:      listID,
		Name:        req.Name,
		Description: req.Description,
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toWordListResponse(updated))
}

// Delete handles DELETE /api/v1/lists/{id}. Cards in the list survive,
// they just lose the grouping.
func (h *WordListHandler) Delete(w http.ResponseWriter, r *http.Request) {
	listID, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	if err := h.svc.DeleteList(r.Context(), listID); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
