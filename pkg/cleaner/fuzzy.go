// pkg/cleaner/fuzzy.go
package cleaner

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
	"go.uber.org/zap"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// FuzzyStandardize merges near-duplicate values into a canonical
// representative, per column. The algorithm is greedy and first-fit by
// design: distinct values are visited in first-seen order, each value
// matches against all previously seen keys, and the first key whose
// similarity ratio reaches the cutoff decides the canonical value. The
// result is fully deterministic for a given row order; reordering input
// rows can change groupings, and that order dependence is an intentional
// property of the step, not an instability to correct.
//
// By default only text columns are consolidated. With FuzzyAllColumns
// every column participates and numeric cells join the grouping through
// their rendered form, which can widen a numeric column to mixed type.
func (c *DataCleaner) FuzzyStandardize(ds *dataset.Dataset) (*StepResult, error) {
	result := &StepResult{}

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if !c.config.FuzzyAllColumns && col.Kind() != dataset.KindText {
			continue
		}
		c.consolidateColumn(col, result)
	}

	c.logger.Debug("Consolidated near-duplicate values",
		zap.Float64("cutoff", c.config.FuzzyCutoff),
		zap.Int("operations", len(result.Operations)))

	return result, nil
}

// consolidateColumn builds the raw-to-canonical mapping over the
// column's distinct non-missing values and applies it to every cell
func (c *DataCleaner) consolidateColumn(col *dataset.Column, result *StepResult) {
	var seen []string
	canonical := make(map[string]string)

	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		raw := strings.TrimSpace(v.Text())
		if _, done := canonical[raw]; done {
			continue
		}

		if match, ok := closestMatch(raw, seen, c.config.FuzzyCutoff); ok {
			canonical[raw] = canonical[match]
		} else {
			canonical[raw] = raw
		}
		seen = append(seen, raw)
	}

	for j, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		raw := strings.TrimSpace(v.Text())
		target := canonical[raw]
		if target == v.Text() {
			continue
		}
		col.Values[j] = dataset.String(target)
		result.record(model.CleaningOperation{
			ColumnName:    col.Name,
			RowIndex:      j,
			OriginalValue: v.Text(),
			NewValue:      target,
			Operation:     "fuzzy_standardize",
			Reason:        "near_duplicate_value",
		})
	}
}

// closestMatch returns the candidate with the highest similarity ratio
// at or above the cutoff. Ties resolve to the earliest-seen candidate.
func closestMatch(value string, candidates []string, cutoff float64) (string, bool) {
	best := ""
	bestRatio := 0.0
	found := false

	for _, candidate := range candidates {
		ratio := similarityRatio(candidate, value)
		if ratio >= cutoff && ratio > bestRatio {
			best = candidate
			bestRatio = ratio
			found = true
		}
	}

	return best, found
}

// similarityRatio computes the normalized sequence similarity of two
// strings over their characters: twice the number of matching
// characters divided by the total length. This is the matching-blocks
// ratio, deliberately not plain edit distance, to preserve the exact
// grouping behavior consumers observe.
func similarityRatio(a, b string) float64 {
	matcher := difflib.NewMatcher(explode(a), explode(b))
	return matcher.Ratio()
}

// explode splits a string into per-rune elements for the matcher
func explode(s string) []string {
	return strings.Split(s, "")
}
