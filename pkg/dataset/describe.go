// pkg/dataset/describe.go
package dataset

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ColumnProfile summarizes a single column for dataset inspection.
// Numeric fields are NaN when the column has no non-missing numeric cells.
type ColumnProfile struct {
	Name    string
	Kind    ColumnKind
	Count   int // non-missing cells
	Missing int
	Unique  int
	Top     string // most frequent textual value, empty for numeric columns
	Mean    float64
	StdDev  float64
	Min     float64
	Max     float64
}

// Describe profiles every column in the dataset: kind, counts, and
// summary statistics for numeric columns.
func (d *Dataset) Describe() []ColumnProfile {
	profiles := make([]ColumnProfile, 0, len(d.Columns))
	for _, col := range d.Columns {
		profiles = append(profiles, profileColumn(col))
	}
	return profiles
}

func profileColumn(col Column) ColumnProfile {
	p := ColumnProfile{
		Name:   col.Name,
		Kind:   col.Kind(),
		Mean:   math.NaN(),
		StdDev: math.NaN(),
		Min:    math.NaN(),
		Max:    math.NaN(),
	}

	distinct := make(map[string]int)
	var nums []float64
	for _, v := range col.Values {
		if v.IsMissing() {
			p.Missing++
			continue
		}
		p.Count++
		distinct[v.Text()]++
		if v.Kind == KindNumber {
			nums = append(nums, v.Num)
		}
	}
	p.Unique = len(distinct)

	if p.Kind == KindNumeric && len(nums) > 0 {
		sorted := append([]float64(nil), nums...)
		sort.Float64s(sorted)
		p.Mean = stat.Mean(nums, nil)
		p.StdDev = stat.StdDev(nums, nil)
		p.Min = sorted[0]
		p.Max = sorted[len(sorted)-1]
		return p
	}

	// Most frequent value, ties broken by first occurrence
	best := -1
	for _, v := range col.Values {
		if v.IsMissing() {
			continue
		}
		if n := distinct[v.Text()]; n > best {
			best = n
			p.Top = v.Text()
		}
	}
	return p
}
