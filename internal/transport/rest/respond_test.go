package rest

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

func TestHandleError_StatusMapping(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"validation", domain.NewValidationError("word", "is required"), http.StatusBadRequest},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"not found", fmt.Errorf("get card: %w", domain.ErrNotFound), http.StatusNotFound},
		{"already exists", domain.ErrAlreadyExists, http.StatusConflict},
		{"conflict", domain.ErrConflict, http.StatusConflict},
		{"upstream", fmt.Errorf("classify columns: %w", domain.ErrUpstream), http.StatusBadGateway},
		{"unknown", errors.New("boom"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()

			handleError(slog.Default(), rec, req, tc.err)

			if rec.Code != tc.want {
				t.Errorf("status = %d, want %d", rec.Code, tc.want)
			}
			if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
				t.Errorf("content type = %q, want application/json", ct)
			}
		})
	}
}

func TestHandleError_ValidationMessagePreserved(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handleError(slog.Default(), rec, req, domain.NewValidationError("word", "is required"))

	body := rec.Body.String()
	if !strings.Contains(body, "word") {
		t.Errorf("body = %q, want the failing field named", body)
	}
}

func TestHandleError_InternalDetailHidden(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handleError(slog.Default(), rec, req, errors.New("pq: relation cards does not exist"))

	body := rec.Body.String()
	if strings.Contains(body, "relation") {
		t.Errorf("body = %q, internal error detail must not leak", body)
	}
}
