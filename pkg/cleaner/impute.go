// pkg/cleaner/impute.go
package cleaner

import (
	"sort"

	"go.uber.org/zap"
	"gonum.org/v1/gonum/stat"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// missingPlaceholder is the literal text written by the fill-na strategy
const missingPlaceholder = "N/A"

// ImputeMissing applies the configured missing-value strategy. Drop-rows
// operates on the whole dataset at once and short-circuits, since it
// changes the row count for every column; the fill strategies work
// column by column. Columns a strategy cannot serve are left untouched.
func (c *DataCleaner) ImputeMissing(ds *dataset.Dataset, strategy model.MissingStrategy) (*StepResult, error) {
	result := &StepResult{}

	if strategy == model.StrategyNone {
		return result, nil
	}

	if strategy == model.StrategyDropRows {
		c.dropMissingRows(ds, result)
		return result, nil
	}

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if col.MissingCount() == 0 {
			continue
		}

		switch strategy {
		case model.StrategyFillNA:
			fillConstant(col, dataset.String(missingPlaceholder), "fill_na", result)

		case model.StrategyFillMean:
			if col.Kind() != dataset.KindNumeric {
				continue
			}
			nums := numericValues(col)
			if len(nums) == 0 {
				continue
			}
			fillConstant(col, dataset.Number(stat.Mean(nums, nil)), "fill_mean", result)

		case model.StrategyFillMedian:
			if col.Kind() != dataset.KindNumeric {
				continue
			}
			nums := numericValues(col)
			if len(nums) == 0 {
				continue
			}
			fillConstant(col, dataset.Number(median(nums)), "fill_median", result)

		case model.StrategyFillMode:
			mode, ok := modeValue(col)
			if !ok {
				c.logger.Warn("No mode available for all-missing column",
					zap.String("column", col.Name))
				result.warn(model.Condition{
					Code:    model.ConditionNoModeAvailable,
					Column:  col.Name,
					Message: "fill_mode requested but the column has no non-missing values",
				})
				continue
			}
			fillConstant(col, mode, "fill_mode", result)
		}
	}

	c.logger.Debug("Imputed missing values",
		zap.String("strategy", strategy.String()),
		zap.Int("operations", len(result.Operations)))

	return result, nil
}

// dropMissingRows removes every row that contains at least one missing
// cell, keeping the remaining rows in order
func (c *DataCleaner) dropMissingRows(ds *dataset.Dataset, result *StepResult) {
	rows := ds.RowCount()
	keep := make([]int, 0, rows)

	for i := 0; i < rows; i++ {
		firstMissing := ""
		for _, col := range ds.Columns {
			if col.Values[i].IsMissing() {
				firstMissing = col.Name
				break
			}
		}
		if firstMissing == "" {
			keep = append(keep, i)
			continue
		}
		result.record(model.CleaningOperation{
			ColumnName: firstMissing,
			RowIndex:   i,
			Operation:  "drop_row",
			Reason:     "missing_cell",
		})
	}

	if len(keep) == rows {
		return
	}

	*ds = *ds.SelectRows(keep)
	c.logger.Debug("Dropped rows with missing cells",
		zap.Int("dropped", rows-len(keep)),
		zap.Int("remaining", len(keep)))
}

// fillConstant replaces every missing cell in the column with the given
// value and records one operation per cell
func fillConstant(col *dataset.Column, fill dataset.Value, operation string, result *StepResult) {
	for i, v := range col.Values {
		if !v.IsMissing() {
			continue
		}
		col.Values[i] = fill
		result.record(model.CleaningOperation{
			ColumnName: col.Name,
			RowIndex:   i,
			NewValue:   fill.Text(),
			Operation:  operation,
			Reason:     "missing_value",
		})
	}
}

// numericValues collects the non-missing numeric cells of a column
func numericValues(col *dataset.Column) []float64 {
	nums := make([]float64, 0, len(col.Values))
	for _, v := range col.Values {
		if v.Kind == dataset.KindNumber {
			nums = append(nums, v.Num)
		}
	}
	return nums
}

// median returns the interpolated median: the middle value for odd
// counts, the mean of the two middle values for even counts
func median(nums []float64) float64 {
	sorted := append([]float64(nil), nums...)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// modeValue returns the most frequent non-missing value of a column.
// Ties resolve to the smallest value: numbers sort before strings,
// numbers by magnitude, strings lexicographically. Returns false when
// the column has no non-missing values.
func modeValue(col *dataset.Column) (dataset.Value, bool) {
	type entry struct {
		value dataset.Value
		count int
	}

	counts := make(map[string]*entry)
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		key := modeKey(v)
		if e, ok := counts[key]; ok {
			e.count++
		} else {
			counts[key] = &entry{value: v, count: 1}
		}
	}
	if len(counts) == 0 {
		return dataset.Value{}, false
	}

	entries := make([]*entry, 0, len(counts))
	for _, e := range counts {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].count != entries[j].count {
			return entries[i].count > entries[j].count
		}
		return valueLess(entries[i].value, entries[j].value)
	})

	return entries[0].value, true
}

func modeKey(v dataset.Value) string {
	if v.Kind == dataset.KindNumber {
		return "n:" + v.Text()
	}
	return "s:" + v.Str
}

func valueLess(a, b dataset.Value) bool {
	if a.Kind != b.Kind {
		return a.Kind == dataset.KindNumber
	}
	if a.Kind == dataset.KindNumber {
		return a.Num < b.Num
	}
	return a.Str < b.Str
}
