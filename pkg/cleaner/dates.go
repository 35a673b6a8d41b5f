// pkg/cleaner/dates.go
package cleaner

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// canonicalDateFormat is the output layout for every fixed date
const canonicalDateFormat = "2006-01-02"

// dateFormats is the fixed priority order of accepted input layouts.
// The first successful parse wins, so ambiguous strings like "01/02/03"
// resolve by position in this list, not by content inspection. The
// non-padded layouts accept both "01/02/23" and "1/2/23".
var dateFormats = []string{
	"2006-1-2",    // ISO YYYY-MM-DD
	"2/1/06",      // DD/MM/YY
	"2/1/2006",    // DD/MM/YYYY
	"Jan 2, 2006", // Mon DD, YYYY
	"2006.1.2",    // YYYY.MM.DD
}

// FixDates normalizes date strings to YYYY-MM-DD in every column whose
// name contains "date". This is a best-effort heuristic pass: values
// matching none of the known layouts pass through unchanged, never as
// errors.
func (c *DataCleaner) FixDates(ds *dataset.Dataset) (*StepResult, error) {
	result := &StepResult{}

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if !dataset.IsDateColumn(col.Name) {
			continue
		}

		for j, v := range col.Values {
			if v.Kind != dataset.KindString {
				continue
			}

			canonical, ok := parseDate(v.Str)
			if !ok || canonical == v.Str {
				continue
			}
			col.Values[j] = dataset.String(canonical)
			result.record(model.CleaningOperation{
				ColumnName:    col.Name,
				RowIndex:      j,
				OriginalValue: v.Str,
				NewValue:      canonical,
				Operation:     "standardize_date",
				Reason:        "canonical_date_format",
			})
		}
	}

	c.logger.Debug("Standardized date columns",
		zap.Int("operations", len(result.Operations)))

	return result, nil
}

// parseDate tries the accepted layouts in priority order and reformats
// the first match to the canonical form
func parseDate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return "", false
	}
	for _, layout := range dateFormats {
		if t, err := time.Parse(layout, trimmed); err == nil {
			return t.Format(canonicalDateFormat), true
		}
	}
	return "", false
}
