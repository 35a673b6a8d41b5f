// pkg/dataset/dataset_test.go
package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidatesShape(t *testing.T) {
	_, err := New([]Column{
		{Name: "a", Values: []Value{Number(1), Number(2)}},
		{Name: "b", Values: []Value{String("x")}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected 2")

	_, err = New([]Column{
		{Name: "a", Values: []Value{Number(1)}},
		{Name: "a", Values: []Value{Number(2)}},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate column name")

	ds, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ds.RowCount())
}

func TestValueEqual(t *testing.T) {
	assert.True(t, Missing().Equal(Missing()))
	assert.True(t, Number(1.5).Equal(Number(1.5)))
	assert.True(t, String("a").Equal(String("a")))
	assert.False(t, Number(1).Equal(String("1")))
	assert.False(t, Missing().Equal(String("")))
}

func TestValueText(t *testing.T) {
	assert.Equal(t, "1.5", Number(1.5).Text())
	assert.Equal(t, "100", Number(100).Text())
	assert.Equal(t, "hi", String("hi").Text())
	assert.Equal(t, "", Missing().Text())
}

func TestCloneIsIndependent(t *testing.T) {
	ds, err := New([]Column{
		{Name: "a", Values: []Value{Number(1), Number(2)}},
	})
	require.NoError(t, err)

	clone := ds.Clone()
	clone.Columns[0].Values[0] = String("changed")
	clone.Columns[0].Name = "renamed"

	assert.Equal(t, Number(1), ds.Columns[0].Values[0])
	assert.Equal(t, "a", ds.Columns[0].Name)
}

func TestRowKeyDistinguishesKinds(t *testing.T) {
	ds, err := New([]Column{
		{Name: "a", Values: []Value{Number(1), String("1"), Missing(), String("")}},
	})
	require.NoError(t, err)

	keys := map[string]struct{}{}
	for i := 0; i < ds.RowCount(); i++ {
		keys[ds.RowKey(i)] = struct{}{}
	}
	assert.Len(t, keys, 4, "number, its string twin, missing and empty string must not collide")
}

func TestSnapshotCountsNullsAndDuplicates(t *testing.T) {
	ds, err := New([]Column{
		{Name: "a", Values: []Value{Number(1), Missing(), Number(1), Missing()}},
		{Name: "b", Values: []Value{String("x"), String("y"), String("x"), String("y")}},
	})
	require.NoError(t, err)

	snap := ds.Snapshot()
	assert.Equal(t, 4, snap.Rows)
	assert.Equal(t, 2, snap.Nulls)
	// rows 2 and 3 repeat rows 0 and 1; missing equals missing
	assert.Equal(t, 2, snap.Duplicates)
}

func TestSelectRowsPreservesOrder(t *testing.T) {
	ds, err := New([]Column{
		{Name: "a", Values: []Value{Number(10), Number(20), Number(30)}},
	})
	require.NoError(t, err)

	sub := ds.SelectRows([]int{2, 0})
	require.Equal(t, 2, sub.RowCount())
	assert.Equal(t, Number(30), sub.Columns[0].Values[0])
	assert.Equal(t, Number(10), sub.Columns[0].Values[1])
}
