package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/review"
)

// statsService defines the minimal interface needed by StatsHandler.
type statsService interface {
	GetStats(ctx context.Context) (domain.Stats, error)
	GetReviewHistory(ctx context.Context, input review.HistoryInput) (domain.ReviewHistory, error)
}

// StatsHandler serves aggregate statistics and review history.
type StatsHandler struct {
	svc statsService
	log *slog.Logger
}

// NewStatsHandler creates a StatsHandler.
func NewStatsHandler(svc statsService, logger *slog.Logger) *StatsHandler {
	return &StatsHandler{svc: svc, log: logger.With("handler", "stats")}
}

// Stats handles GET /api/v1/stats.
func (h *StatsHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.GetStats(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toStatsResponse(stats))
}

// History handles GET /api/v1/review/history?days= or
// ?startDate=&endDate= (yyyy-mm-dd, given together).
func (h *StatsHandler) History(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	input := review.HistoryInput{Days: queryInt(q.Get("days"))}

	if v := q.Get("startDate"); v != "" {
		start, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid startDate")
			return
		}
		input.StartDate = &start
	}
	if v := q.Get("endDate"); v != "" {
		end, err := time.Parse("2006-01-02", v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid endDate")
			return
		}
		// the whole end date is inside the range, not just its midnight
		end = end.AddDate(0, 0, 1).Add(-time.Microsecond)
		input.EndDate = &end
	}

	history, err := h.svc.GetReviewHistory(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toHistoryResponse(history))
}
