package importer

import (
	"strings"

	"github.com/wordloop/wordloop-backend/internal/domain"
)

// columnIndexes is a resolved ColumnMapping: header names turned into
// positions within the parsed table. -1 means no such column.
type columnIndexes struct {
	word       int
	definition int
	example    int
	synonym    int
	antonym    int
	notes      int
}

// resolveMapping turns the classifier's header names into column
// positions. Word and definition are mandatory; an import without them
// has nothing to build cards from.
func resolveMapping(mapping domain.ColumnMapping, headers []string) (columnIndexes, error) {
	find := func(name *string) int {
		if name == nil {
			return -1
		}
		for i, h := range headers {
			if strings.EqualFold(strings.TrimSpace(h), strings.TrimSpace(*name)) {
				return i
			}
		}
		return -1
	}

	idx := columnIndexes{
		word:       find(mapping.Word),
		definition: find(mapping.Definition),
		example:    find(mapping.Example),
		synonym:    find(mapping.Synonym),
		antonym:    find(mapping.Antonym),
		notes:      find(mapping.Notes),
	}

	var fieldErrors []domain.FieldError
	if idx.word < 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "word",
			Message: "no column could be mapped to the word field",
		})
	}
	if idx.definition < 0 {
		fieldErrors = append(fieldErrors, domain.FieldError{
			Field:   "definition",
			Message: "no column could be mapped to the definition field",
		})
	}
	if len(fieldErrors) > 0 {
		return columnIndexes{}, domain.NewValidationErrors(fieldErrors)
	}

	return idx, nil
}

func cell(row []string, i int) string {
	if i < 0 || i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}

// splitCell turns a multi-value cell into its parts. Both semicolons
// and commas are accepted as separators.
func splitCell(value string) []string {
	if value == "" {
		return nil
	}

	var parts []string
	for _, p := range strings.FieldsFunc(value, func(r rune) bool { return r == ';' || r == ',' }) {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			parts = append(parts, trimmed)
		}
	}

	return parts
}

func detailsFromRow(row []string, idx columnIndexes) domain.WordDetails {
	return domain.WordDetails{
		Synonyms: splitCell(cell(row, idx.synonym)),
		Antonyms: splitCell(cell(row, idx.antonym)),
		Examples: splitCell(cell(row, idx.example)),
		Notes:    splitCell(cell(row, idx.notes)),
	}
}
