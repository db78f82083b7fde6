package importer

import (
	"encoding/csv"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

// Table is a parsed upload: one header row plus data rows. Rows may be
// ragged; missing trailing cells read as empty strings downstream.
type Table struct {
	Headers []string
	Rows    [][]string
}

// ParseFile reads an uploaded xlsx or csv file into a Table. The format
// is picked by file extension.
func ParseFile(filename string, r io.Reader) (Table, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".csv":
		return parseCSV(r)
	case ".xlsx":
		return parseXLSX(r)
	default:
		return Table{}, domain.NewValidationError("file", "must be a .csv or .xlsx file")
	}
}

func parseCSV(r io.Reader) (Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return Table{}, fmt.Errorf("read csv: %w", err)
	}

	return tableFromRecords(records)
}

func parseXLSX(r io.Reader) (Table, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return Table{}, fmt.Errorf("open xlsx: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return Table{}, domain.NewValidationError("file", "workbook has no sheets")
	}

	// only the first sheet is imported
	records, err := f.GetRows(sheets[0])
	if err != nil {
		return Table{}, fmt.Errorf("read xlsx rows: %w", err)
	}

	return tableFromRecords(records)
}

func tableFromRecords(records [][]string) (Table, error) {
	if len(records) == 0 {
		return Table{}, domain.NewValidationError("file", "is empty")
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := records[1:]
	if len(rows) == 0 {
		return Table{}, domain.NewValidationError("file", "has no data rows")
	}

	return Table{Headers: headers, Rows: rows}, nil
}
