package classifier

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/wordloop/wordloop-backend/internal/config"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

func TestClient_ClassifyColumns_HTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/classify" {
			t.Errorf("path = %s, want /v1/classify", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Errorf("authorization = %q, want bearer token", got)
		}

		var req classifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decode request: %v", err)
		}
		if len(req.Headers) != 2 || len(req.Samples) != 1 {
			t.Errorf("request = %+v, want headers and samples forwarded", req)
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"columns": {"word": "Vocab", "definition": "Meaning"}}`))
	}))
	defer srv.Close()

	client := NewClient(config.ClassifierConfig{BaseURL: srv.URL, APIKey: "test-key", Timeout: 5 * time.Second})

	mapping, err := client.ClassifyColumns(context.Background(),
		[]string{"Vocab", "Meaning"},
		[][]string{{"ephemeral", "lasting a short time"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mapping.Word == nil || *mapping.Word != "Vocab" {
		t.Errorf("word mapping = %v, want Vocab", mapping.Word)
	}
	if mapping.Definition == nil || *mapping.Definition != "Meaning" {
		t.Errorf("definition mapping = %v, want Meaning", mapping.Definition)
	}
	if mapping.Example != nil {
		t.Errorf("example mapping = %v, want nil", mapping.Example)
	}
}

func TestClient_ClassifyColumns_UpstreamError(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	client := NewClient(config.ClassifierConfig{BaseURL: srv.URL, Timeout: 5 * time.Second})

	_, err := client.ClassifyColumns(context.Background(), []string{"Word"}, nil)
	if !errors.Is(err, domain.ErrUpstream) {
		t.Errorf("error = %v, want ErrUpstream", err)
	}
}

func TestClient_ClassifyColumns_HeaderFallback(t *testing.T) {
	t.Parallel()

	client := NewClient(config.ClassifierConfig{Timeout: time.Second})

	mapping, err := client.ClassifyColumns(context.Background(),
		[]string{"Word", "Translation", "Examples", "Comment"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if mapping.Word == nil || *mapping.Word != "Word" {
		t.Errorf("word mapping = %v, want Word", mapping.Word)
	}
	if mapping.Definition == nil || *mapping.Definition != "Translation" {
		t.Errorf("definition mapping = %v, want Translation (alias)", mapping.Definition)
	}
	if mapping.Example == nil || *mapping.Example != "Examples" {
		t.Errorf("example mapping = %v, want Examples", mapping.Example)
	}
	if mapping.Notes == nil || *mapping.Notes != "Comment" {
		t.Errorf("notes mapping = %v, want Comment (alias)", mapping.Notes)
	}
	if mapping.Synonym != nil {
		t.Errorf("synonym mapping = %v, want nil", mapping.Synonym)
	}
}
