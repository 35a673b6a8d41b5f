// pkg/cleaner/impute_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

func TestImputeNoneLeavesDataUntouched(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())
	ds := mustDataset(t, []dataset.Column{
		{Name: "a", Values: []dataset.Value{dataset.Number(1), dataset.Missing()}},
	})

	result, err := c.ImputeMissing(ds, model.StrategyNone)
	require.NoError(t, err)
	assert.Empty(t, result.Operations)
	assert.True(t, ds.Columns[0].Values[1].IsMissing())
}

func TestImputeFillNAWidensNumericColumns(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())
	ds := mustDataset(t, []dataset.Column{
		{Name: "score", Values: []dataset.Value{dataset.Number(1), dataset.Missing(), dataset.Number(3)}},
	})

	result, err := c.ImputeMissing(ds, model.StrategyFillNA)
	require.NoError(t, err)

	col := ds.Columns[0]
	assert.Equal(t, dataset.String("N/A"), col.Values[1])
	// the literal fill turns a numeric column into a mixed one
	assert.Equal(t, dataset.KindText, col.Kind())

	require.Len(t, result.Operations, 1)
	assert.Equal(t, "fill_na", result.Operations[0].Operation)
	assert.Equal(t, 1, result.Operations[0].RowIndex)
}

func TestImputeFillMean(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())
	ds := mustDataset(t, []dataset.Column{
		{Name: "n", Values: []dataset.Value{dataset.Number(1), dataset.Number(2), dataset.Missing(), dataset.Number(3)}},
		{Name: "s", Values: []dataset.Value{dataset.String("x"), dataset.Missing(), dataset.String("y"), dataset.String("z")}},
	})

	result, err := c.ImputeMissing(ds, model.StrategyFillMean)
	require.NoError(t, err)

	assert.Equal(t, dataset.Number(2), ds.Columns[0].Values[2])
	// text columns are out of scope for mean fill
	assert.True(t, ds.Columns[1].Values[1].IsMissing())
	assert.Len(t, result.Operations, 1)
}

func TestImputeFillMedianInterpolates(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())
	ds := mustDataset(t, []dataset.Column{
		{Name: "n", Values: []dataset.Value{dataset.Number(1), dataset.Number(2), dataset.Number(3), dataset.Number(4), dataset.Missing()}},
	})

	_, err := c.ImputeMissing(ds, model.StrategyFillMedian)
	require.NoError(t, err)
	assert.Equal(t, dataset.Number(2.5), ds.Columns[0].Values[4])
}

func TestImputeFillModeTieBreaks(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())

	// tie between "a" and "b" resolves to the smaller value
	ds := mustDataset(t, []dataset.Column{
		{Name: "s", Values: []dataset.Value{dataset.String("b"), dataset.String("a"), dataset.String("b"), dataset.String("a"), dataset.Missing()}},
	})
	_, err := c.ImputeMissing(ds, model.StrategyFillMode)
	require.NoError(t, err)
	assert.Equal(t, dataset.String("a"), ds.Columns[0].Values[4])

	// numbers sort before strings on a count tie
	ds = mustDataset(t, []dataset.Column{
		{Name: "m", Values: []dataset.Value{dataset.Number(7), dataset.String("x"), dataset.Number(7), dataset.String("x"), dataset.Missing()}},
	})
	_, err = c.ImputeMissing(ds, model.StrategyFillMode)
	require.NoError(t, err)
	assert.Equal(t, dataset.Number(7), ds.Columns[0].Values[4])
}

func TestImputeFillModeAllMissingRaisesCondition(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())
	ds := mustDataset(t, []dataset.Column{
		{Name: "empty", Values: []dataset.Value{dataset.Missing(), dataset.Missing()}},
		{Name: "ok", Values: []dataset.Value{dataset.String("v"), dataset.Missing()}},
	})

	result, err := c.ImputeMissing(ds, model.StrategyFillMode)
	require.NoError(t, err)

	// the all-missing column is untouched, the other still fills
	assert.True(t, ds.Columns[0].Values[0].IsMissing())
	assert.Equal(t, dataset.String("v"), ds.Columns[1].Values[1])

	require.Len(t, result.Conditions, 1)
	assert.Equal(t, model.ConditionNoModeAvailable, result.Conditions[0].Code)
	assert.Equal(t, "empty", result.Conditions[0].Column)
}

func TestImputeDropRows(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())
	ds := mustDataset(t, []dataset.Column{
		{Name: "a", Values: []dataset.Value{dataset.Number(1), dataset.Missing(), dataset.Number(3)}},
		{Name: "b", Values: []dataset.Value{dataset.String("x"), dataset.String("y"), dataset.Missing()}},
	})

	result, err := c.ImputeMissing(ds, model.StrategyDropRows)
	require.NoError(t, err)

	assert.Equal(t, 1, ds.RowCount())
	assert.Equal(t, dataset.Number(1), ds.Columns[0].Values[0])
	assert.Len(t, result.Operations, 2)
	assert.Equal(t, "drop_row", result.Operations[0].Operation)
}

func TestMedian(t *testing.T) {
	assert.Equal(t, 3.0, median([]float64{5, 1, 3}))
	assert.Equal(t, 2.5, median([]float64{4, 1, 2, 3}))
	assert.Equal(t, 7.0, median([]float64{7}))
}
