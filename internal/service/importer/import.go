// Package importer loads cards in bulk from uploaded spreadsheets. An
// external classifier decides which column feeds which card field; rows
// then become cards through the regular card creation path.
package importer

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/wordloop/wordloop-backend/internal/config"
	"github.com/wordloop/wordloop-backend/internal/domain"
	"github.com/wordloop/wordloop-backend/internal/service/card"
	"github.com/wordloop/wordloop-backend/pkg/ctxutil"
)

type cardCreator interface {
	CreateCard(ctx context.Context, input card.CreateCardInput) (domain.Card, error)
}

type columnClassifier interface {
	ClassifyColumns(ctx context.Context, headers []string, samples [][]string) (domain.ColumnMapping, error)
}

// Service runs bulk imports.
type Service struct {
	cards      cardCreator
	classifier columnClassifier
	cfg        config.ImportConfig
	log        *slog.Logger
}

// NewService creates a new importer service.
func NewService(log *slog.Logger, cards cardCreator, classifier columnClassifier, cfg config.ImportConfig) *Service {
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 10
	}
	if cfg.SampleRows <= 0 {
		cfg.SampleRows = 3
	}
	return &Service{
		cards:      cards,
		classifier: classifier,
		cfg:        cfg,
		log:        log.With("service", "importer"),
	}
}

// ImportInput carries an uploaded file and its destination.
type ImportInput struct {
	Filename   string
	File       io.Reader
	WordListID *uuid.UUID
}

// Import parses the upload, classifies its columns, and creates one card
// per data row. Rows are processed in batches; rows within a batch run
// concurrently. A failing row is recorded and skipped, it does not stop
// the rest of the file.
func (s *Service) Import(ctx context.Context, input ImportInput) (domain.ImportResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ImportResult{}, domain.ErrUnauthorized
	}

	table, err := ParseFile(input.Filename, input.File)
	if err != nil {
		return domain.ImportResult{}, err
	}

	if s.cfg.MaxRows > 0 && len(table.Rows) > s.cfg.MaxRows {
		return domain.ImportResult{}, domain.NewValidationError("file",
			fmt.Sprintf("has %d rows, the limit is %d", len(table.Rows), s.cfg.MaxRows))
	}

	sampleCount := s.cfg.SampleRows
	if sampleCount > len(table.Rows) {
		sampleCount = len(table.Rows)
	}

	mapping, err := s.classifier.ClassifyColumns(ctx, table.Headers, table.Rows[:sampleCount])
	if err != nil {
		return domain.ImportResult{}, fmt.Errorf("classify columns: %w", err)
	}

	idx, err := resolveMapping(mapping, table.Headers)
	if err != nil {
		return domain.ImportResult{}, err
	}

	result := s.importRows(ctx, table.Rows, idx, input.WordListID)

	s.log.InfoContext(ctx, "import finished",
		"user_id", userID,
		"filename", input.Filename,
		"success", result.Success,
		"failed", result.Failed,
	)

	return result, nil
}

func (s *Service) importRows(ctx context.Context, rows [][]string, idx columnIndexes, wordListID *uuid.UUID) domain.ImportResult {
	var (
		mu     sync.Mutex
		result domain.ImportResult
	)

	for start := 0; start < len(rows); start += s.cfg.BatchSize {
		end := start + s.cfg.BatchSize
		if end > len(rows) {
			end = len(rows)
		}

		g, gctx := errgroup.WithContext(ctx)
		for i := start; i < end; i++ {
			rowNum := i + 2 // 1-based, after the header row
			row := rows[i]
			g.Go(func() error {
				err := s.importRow(gctx, row, idx, wordListID)

				mu.Lock()
				defer mu.Unlock()
				if err != nil {
					result.Failed++
					result.Errors = append(result.Errors, domain.ImportRowError{
						Row:     rowNum,
						Message: err.Error(),
					})
				} else {
					result.Success++
				}
				return nil
			})
		}
		// per-row errors never propagate, so this only fails on a
		// cancelled context
		if err := g.Wait(); err != nil {
			break
		}
		if ctx.Err() != nil {
			break
		}
	}

	sort.Slice(result.Errors, func(a, b int) bool {
		return result.Errors[a].Row < result.Errors[b].Row
	})

	return result
}

func (s *Service) importRow(ctx context.Context, row []string, idx columnIndexes, wordListID *uuid.UUID) error {
	word := cell(row, idx.word)
	definition := cell(row, idx.definition)

	if word == "" {
		return fmt.Errorf("word is empty")
	}
	if definition == "" {
		return fmt.Errorf("definition is empty")
	}

	_, err := s.cards.CreateCard(ctx, card.CreateCardInput{
		Word:       word,
		Definition: definition,
		Details:    detailsFromRow(row, idx),
		WordListID: wordListID,
	})

	return err
}
