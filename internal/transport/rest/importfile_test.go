package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/importer"
)

// importServiceMock is a mock implementation of importService.
type importServiceMock struct {
	ImportFunc func(ctx context.Context, input importer.ImportInput) (domain.ImportResult, error)
}

var _ importService = (*importServiceMock)(nil)

func (m *importServiceMock) Import(ctx context.Context, input importer.ImportInput) (domain.ImportResult, error) {
	if m.ImportFunc == nil {
		panic("importServiceMock.ImportFunc: method is nil but importService.Import was just called")
	}
	return m.ImportFunc(ctx, input)
}

func multipartUpload(t *testing.T, filename, content string, fields map[string]string) (io.Reader, string) {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	return &buf, w.FormDataContentType()
}

func TestImportHandler_Import(t *testing.T) {
	t.Parallel()

	listID := uuid.New()
	var gotInput importer.ImportInput
	mock := &importServiceMock{
		ImportFunc: func(ctx context.Context, input importer.ImportInput) (domain.ImportResult, error) {
			gotInput = input
			return domain.ImportResult{Success: 2, Failed: 1, Errors: []domain.ImportRowError{
				{Row: 3, Message: "definition is empty"},
			}}, nil
		},
	}
	h := NewImportHandler(mock, 1<<20, slog.Default())

	body, contentType := multipartUpload(t, "words.csv", "Word,Definition\nephemeral,short lived\n",
		map[string]string{"listId": listID.String()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200, body: %s", rec.Code, rec.Body.String())
	}
	if gotInput.Filename != "words.csv" {
		t.Errorf("filename = %q, want words.csv", gotInput.Filename)
	}
	if gotInput.WordListID == nil || *gotInput.WordListID != listID {
		t.Errorf("listId = %v, want %s", gotInput.WordListID, listID)
	}

	var resp importResponse
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Success != 2 || resp.Failed != 1 {
		t.Errorf("result = %d/%d, want 2/1", resp.Success, resp.Failed)
	}
	if len(resp.Errors) != 1 || resp.Errors[0].Row != 3 {
		t.Errorf("errors = %+v, want one error on row 3", resp.Errors)
	}
}

func TestImportHandler_Import_MissingFile(t *testing.T) {
	t.Parallel()

	h := NewImportHandler(&importServiceMock{}, 1<<20, slog.Default())

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if err := w.WriteField("listId", uuid.NewString()); err != nil {
		t.Fatal(err)
	}
	w.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestImportHandler_Import_FileTooLarge(t *testing.T) {
	t.Parallel()

	h := NewImportHandler(&importServiceMock{}, 64, slog.Default())

	content := make([]byte, 1024)
	for i := range content {
		content[i] = 'a'
	}
	body, contentType := multipartUpload(t, "words.csv", string(content), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusRequestEntityTooLarge {
		t.Errorf("status = %d, want 413", rec.Code)
	}
}

func TestImportHandler_Import_ClassifierDown(t *testing.T) {
	t.Parallel()

	mock := &importServiceMock{
		ImportFunc: func(ctx context.Context, input importer.ImportInput) (domain.ImportResult, error) {
			return domain.ImportResult{}, domain.ErrUpstream
		},
	}
	h := NewImportHandler(mock, 1<<20, slog.Default())

	body, contentType := multipartUpload(t, "words.csv", "Word,Definition\nephemeral,short lived\n", nil)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/import", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	h.Import(rec, req)

	if rec.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", rec.Code)
	}
}
