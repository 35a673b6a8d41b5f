// pkg/cleaner/text.go
package cleaner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// NormalizeText canonicalizes casing and whitespace in free-text
// columns. Columns identified as email columns by name are skipped so
// addresses keep their exact form for validation. Each string cell is
// trimmed, lowercased, and re-cased per the configured rule; missing
// cells and numeric cells in mixed columns are left untouched.
func (c *DataCleaner) NormalizeText(ds *dataset.Dataset) (*StepResult, error) {
	result := &StepResult{}

	titleCaser := cases.Title(language.Und)

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if col.Kind() != dataset.KindText || dataset.IsEmailColumn(col.Name) {
			continue
		}

		for j, v := range col.Values {
			if v.Kind != dataset.KindString {
				continue
			}

			normalized := strings.ToLower(strings.TrimSpace(v.Str))
			if c.config.TextCasing == model.CasingSentence {
				normalized = capitalizeFirst(normalized)
			} else {
				normalized = titleCaser.String(normalized)
			}

			if normalized == v.Str {
				continue
			}
			col.Values[j] = dataset.String(normalized)
			result.record(model.CleaningOperation{
				ColumnName:    col.Name,
				RowIndex:      j,
				OriginalValue: v.Str,
				NewValue:      normalized,
				Operation:     "normalize_text",
				Reason:        "casing_" + c.config.TextCasing.String(),
			})
		}
	}

	c.logger.Debug("Normalized text columns",
		zap.String("casing", c.config.TextCasing.String()),
		zap.Int("operations", len(result.Operations)))

	return result, nil
}

// capitalizeFirst uppercases only the first letter of the value
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
