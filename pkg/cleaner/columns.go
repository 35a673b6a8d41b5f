// pkg/cleaner/columns.go
package cleaner

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// StandardizeColumns rewrites every header into canonical form: trim
// surrounding whitespace, lowercase, and collapse internal whitespace
// runs into a single underscore. When two headers normalize to the same
// name, the configured collision policy decides between failing the step
// and appending a deterministic numeric suffix; either way a
// duplicate-column-name condition is reported.
func (c *DataCleaner) StandardizeColumns(ds *dataset.Dataset) (*StepResult, error) {
	result := &StepResult{}

	// Under the error policy the dataset must come through untouched, so
	// collisions are detected before any rename is applied
	if c.config.ColumnCollisionPolicy == model.CollisionError {
		seen := make(map[string]int, len(ds.Columns))
		for i, col := range ds.Columns {
			normalized := normalizeColumnName(col.Name)
			if first, exists := seen[normalized]; exists {
				return result, fmt.Errorf("columns %q and %q both normalize to %q",
					ds.Columns[first].Name, col.Name, normalized)
			}
			seen[normalized] = i
		}
	}

	taken := make(map[string]int, len(ds.Columns))
	for i := range ds.Columns {
		col := &ds.Columns[i]
		normalized := normalizeColumnName(col.Name)

		if _, exists := taken[normalized]; exists {
			base := normalized
			for n := 2; ; n++ {
				candidate := fmt.Sprintf("%s_%d", base, n)
				if _, clash := taken[candidate]; !clash {
					normalized = candidate
					break
				}
			}
			result.warn(model.Condition{
				Code:    model.ConditionDuplicateColumnName,
				Column:  col.Name,
				Message: fmt.Sprintf("normalized name collides with an earlier column, renamed to %q", normalized),
			})
			c.logger.Warn("Column name collision after normalization",
				zap.String("column", col.Name),
				zap.String("renamed", normalized))
		}

		if normalized != col.Name {
			result.record(model.CleaningOperation{
				ColumnName:    col.Name,
				OriginalValue: col.Name,
				NewValue:      normalized,
				Operation:     "standardize_column_name",
				Reason:        "canonical_header_form",
			})
		}

		taken[normalized] = i
		col.Name = normalized
	}

	return result, nil
}

// normalizeColumnName maps a header to its canonical form
func normalizeColumnName(name string) string {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	return strings.Join(strings.Fields(trimmed), "_")
}
