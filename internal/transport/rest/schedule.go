package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/schedule"
)

// scheduleService defines the minimal interface needed by ScheduleHandler.
type scheduleService interface {
	GetOrCreate(ctx context.Context) (domain.IntervalSchedule, error)
	Upsert(ctx context.Context, input schedule.UpsertInput) (domain.IntervalSchedule, error)
}

// ScheduleHandler serves the interval schedule endpoints.
type ScheduleHandler struct {
	svc scheduleService
	log *slog.Logger
}

// NewScheduleHandler creates a ScheduleHandler.
func NewScheduleHandler(svc scheduleService, logger *slog.Logger) *ScheduleHandler {
	return &ScheduleHandler{svc: svc, log: logger.With("handler", "schedule")}
}

type upsertScheduleRequest struct {
	Intervals   []int   `json:"intervals"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Get handles GET /api/v1/schedule. The schedule is created on first
// access, so this never 404s for an authenticated user.
func (h *ScheduleHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.GetOrCreate(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(s))
}

// Update handles PUT /api/v1/schedule.
func (h *ScheduleHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req upsertScheduleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	s, err := h.svc.Upsert(r.Context(), schedule.UpsertInput{
		Intervals:   req.Intervals,
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toScheduleResponse(s))
}
