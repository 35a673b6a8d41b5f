// pkg/cleaner/dedupe.go
package cleaner

import (
	"go.uber.org/zap"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// RemoveDuplicates drops rows that are exact matches of an earlier row,
// keeping the first occurrence. Missing compares equal to missing, so
// two rows that are both missing in the same cells are duplicates.
// Row order is preserved.
func (c *DataCleaner) RemoveDuplicates(ds *dataset.Dataset) (*StepResult, error) {
	result := &StepResult{}

	rows := ds.RowCount()
	seen := make(map[string]struct{}, rows)
	keep := make([]int, 0, rows)

	for i := 0; i < rows; i++ {
		key := ds.RowKey(i)
		if _, dup := seen[key]; dup {
			result.record(model.CleaningOperation{
				RowIndex:  i,
				Operation: "drop_duplicate_row",
				Reason:    "exact_duplicate",
			})
			continue
		}
		seen[key] = struct{}{}
		keep = append(keep, i)
	}

	if len(keep) < rows {
		*ds = *ds.SelectRows(keep)
	}

	c.logger.Debug("Removed duplicate rows",
		zap.Int("removed", rows-len(keep)),
		zap.Int("remaining", len(keep)))

	return result, nil
}
