// Package classifier calls an external service that maps spreadsheet
// columns onto card fields. Without a configured base URL it falls back
// to matching column headers by name.
package classifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/wordloop/wordloop-backend/internal/config"
	"github.com/wordloop/wordloop-backend/internal/domain"
)

// Client resolves column mappings via the classifier HTTP API.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

// NewClient creates a new classifier client.
func NewClient(cfg config.ClassifierConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

type classifyRequest struct {
	Headers []string   `json:"headers"`
	Samples [][]string `json:"samples"`
}

type classifyResponse struct {
	Columns struct {
		Word       *string `json:"word"`
		Definition *string `json:"definition"`
		Example    *string `json:"example"`
		Synonym    *string `json:"synonym"`
		Antonym    *string `json:"antonym"`
		Notes      *string `json:"notes"`
	} `json:"columns"`
}

// ClassifyColumns asks the classifier which column holds which card
// field, passing a few sample rows for context. Falls back to header
// name matching when no classifier is configured.
func (c *Client) ClassifyColumns(ctx context.Context, headers []string, samples [][]string) (domain.ColumnMapping, error) {
	if c.baseURL == "" {
		return mapByHeaderNames(headers), nil
	}

	body, err := json.Marshal(classifyRequest{Headers: headers, Samples: samples})
	if err != nil {
		return domain.ColumnMapping{}, fmt.Errorf("marshal classify request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/v1/classify", bytes.NewReader(body))
	if err != nil {
		return domain.ColumnMapping{}, fmt.Errorf("build classify request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.ColumnMapping{}, fmt.Errorf("call classifier: %w: %w", domain.ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return domain.ColumnMapping{}, fmt.Errorf("classifier returned %d: %s: %w",
			resp.StatusCode, strings.TrimSpace(string(snippet)), domain.ErrUpstream)
	}

	var parsed classifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return domain.ColumnMapping{}, fmt.Errorf("decode classifier response: %w: %w", domain.ErrUpstream, err)
	}

	return domain.ColumnMapping{
		Word:       parsed.Columns.Word,
		Definition: parsed.Columns.Definition,
		Example:    parsed.Columns.Example,
		Synonym:    parsed.Columns.Synonym,
		Antonym:    parsed.Columns.Antonym,
		Notes:      parsed.Columns.Notes,
	}, nil
}

var headerAliases = map[string][]string{
	"word":       {"word", "term", "front"},
	"definition": {"definition", "meaning", "translation", "back"},
	"example":    {"example", "examples", "usage", "sentence"},
	"synonym":    {"synonym", "synonyms"},
	"antonym":    {"antonym", "antonyms"},
	"notes":      {"notes", "note", "comment", "comments"},
}

func mapByHeaderNames(headers []string) domain.ColumnMapping {
	find := func(field string) *string {
		for _, h := range headers {
			lowered := strings.ToLower(strings.TrimSpace(h))
			for _, alias := range headerAliases[field] {
				if lowered == alias {
					header := h
					return &header
				}
			}
		}
		return nil
	}

	return domain.ColumnMapping{
		Word:       find("word"),
		Definition: find("definition"),
		Example:    find("example"),
		Synonym:    find("synonym"),
		Antonym:    find("antonym"),
		Notes:      find("notes"),
	}
}
