package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/importer"
)

// importService defines the minimal interface needed by ImportHandler.
type importService interface {
	Import(ctx context.Context, input importer.ImportInput) (domain.ImportResult, error)
}

// ImportHandler serves the bulk file import endpoint.
type ImportHandler struct {
	svc         importService
	maxFileSize int64
	log         *slog.Logger
}

// NewImportHandler creates an ImportHandler. maxFileSize caps the
// upload in bytes; zero means no cap.
func NewImportHandler(svc importService, maxFileSize int64, logger *slog.Logger) *ImportHandler {
	return &ImportHandler{
		svc:         svc,
		maxFileSize: maxFileSize,
		log:         logger.With("handler", "import"),
	}
}

// Import handles POST /api/v1/import: a multipart form with a "file"
// part and an optional "listId" field.
func (h *ImportHandler) Import(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}

	if err := r.ParseMultipartForm(h.maxFileSize); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			writeError(w, http.StatusRequestEntityTooLarge, "file is too large")
			return
		}
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	input := importer.ImportInput{
		Filename: header.Filename,
		File:     file,
	}

	if v := r.FormValue("listId"); v != "" {
		listID, err := uuid.Parse(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid listId")
			return
		}
		input.WordListID = &listID
	}

	result, err := h.svc.Import(r.Context(), input)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, toImportResponse(result))
}
