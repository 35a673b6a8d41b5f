// pkg/dataset/dataset.go
package dataset

import (
	"fmt"
	"strconv"
	"strings"
)

// ValueKind identifies the semantic type of a single cell value
type ValueKind int

const (
	// KindMissing marks an absent value. It is a distinguished sentinel,
	// not the string "N/A" (that is an output encoding choice).
	KindMissing ValueKind = iota
	// KindNumber marks a numeric cell stored as float64
	KindNumber
	// KindString marks a textual cell
	KindString
)

// Value is a single cell at a (row, column) position
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// Missing returns the missing-value sentinel
func Missing() Value {
	return Value{Kind: KindMissing}
}

// Number wraps a float64 as a cell value
func Number(f float64) Value {
	return Value{Kind: KindNumber, Num: f}
}

// String wraps a string as a cell value
func String(s string) Value {
	return Value{Kind: KindString, Str: s}
}

// IsMissing reports whether the value is the missing sentinel
func (v Value) IsMissing() bool {
	return v.Kind == KindMissing
}

// Equal compares two values. Missing equals missing.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case KindNumber:
		return v.Num == o.Num
	case KindString:
		return v.Str == o.Str
	default:
		return true
	}
}

// Text renders the value for display and matching. Numbers use the
// minimal representation, missing renders empty.
func (v Value) Text() string {
	switch v.Kind {
	case KindNumber:
		return strconv.FormatFloat(v.Num, 'f', -1, 64)
	case KindString:
		return v.Str
	default:
		return ""
	}
}

// Column is a named, ordered sequence of cell values
type Column struct {
	Name   string
	Values []Value
}

// Clone returns a deep copy of the column
func (c Column) Clone() Column {
	values := make([]Value, len(c.Values))
	copy(values, c.Values)
	return Column{Name: c.Name, Values: values}
}

// MissingCount returns the number of missing cells in the column
func (c Column) MissingCount() int {
	count := 0
	for _, v := range c.Values {
		if v.IsMissing() {
			count++
		}
	}
	return count
}

// Dataset is an ordered sequence of named columns of equal length
type Dataset struct {
	Columns []Column
}

// New builds a dataset from columns, validating the structural invariants:
// all columns share one row count and column names are unique.
func New(columns []Column) (*Dataset, error) {
	if len(columns) == 0 {
		return &Dataset{}, nil
	}

	rows := len(columns[0].Values)
	seen := make(map[string]struct{}, len(columns))
	for _, col := range columns {
		if len(col.Values) != rows {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", col.Name, len(col.Values), rows)
		}
		if _, dup := seen[col.Name]; dup {
			return nil, fmt.Errorf("duplicate column name %q", col.Name)
		}
		seen[col.Name] = struct{}{}
	}

	return &Dataset{Columns: columns}, nil
}

// RowCount returns the number of rows in the dataset
func (d *Dataset) RowCount() int {
	if len(d.Columns) == 0 {
		return 0
	}
	return len(d.Columns[0].Values)
}

// ColumnCount returns the number of columns in the dataset
func (d *Dataset) ColumnCount() int {
	return len(d.Columns)
}

// Column returns a pointer to the column with the given name,
// or nil if no such column exists
func (d *Dataset) Column(name string) *Column {
	for i := range d.Columns {
		if d.Columns[i].Name == name {
			return &d.Columns[i]
		}
	}
	return nil
}

// Names returns the column names in order
func (d *Dataset) Names() []string {
	names := make([]string, len(d.Columns))
	for i, col := range d.Columns {
		names[i] = col.Name
	}
	return names
}

// Row returns the values of a single row in column order
func (d *Dataset) Row(i int) []Value {
	row := make([]Value, len(d.Columns))
	for j, col := range d.Columns {
		row[j] = col.Values[i]
	}
	return row
}

// Clone returns a deep copy of the dataset. The pipeline clones its input
// once per run so the caller's dataset is never mutated.
func (d *Dataset) Clone() *Dataset {
	columns := make([]Column, len(d.Columns))
	for i, col := range d.Columns {
		columns[i] = col.Clone()
	}
	return &Dataset{Columns: columns}
}

// SelectRows builds a new dataset containing the given row indices, in order
func (d *Dataset) SelectRows(indices []int) *Dataset {
	columns := make([]Column, len(d.Columns))
	for i, col := range d.Columns {
		values := make([]Value, 0, len(indices))
		for _, idx := range indices {
			values = append(values, col.Values[idx])
		}
		columns[i] = Column{Name: col.Name, Values: values}
	}
	return &Dataset{Columns: columns}
}

// RowKey encodes a row into a comparable key. Values of different kinds
// never collide: the kind tag is part of the encoding.
func (d *Dataset) RowKey(i int) string {
	var sb strings.Builder
	for _, col := range d.Columns {
		v := col.Values[i]
		switch v.Kind {
		case KindMissing:
			sb.WriteString("m|")
		case KindNumber:
			sb.WriteString("n")
			sb.WriteString(strconv.FormatFloat(v.Num, 'g', -1, 64))
			sb.WriteString("|")
		case KindString:
			sb.WriteString("s")
			sb.WriteString(strconv.Itoa(len(v.Str)))
			sb.WriteString(":")
			sb.WriteString(v.Str)
			sb.WriteString("|")
		}
	}
	return sb.String()
}

// Snapshot captures the row, missing-cell and duplicate-row counts of a
// dataset at one point in time. Duplicate counting follows the convention
// of counting every occurrence after the first.
type Snapshot struct {
	Rows       int
	Nulls      int
	Duplicates int
}

// Snapshot computes the current metrics of the dataset
func (d *Dataset) Snapshot() Snapshot {
	snap := Snapshot{Rows: d.RowCount()}

	for _, col := range d.Columns {
		snap.Nulls += col.MissingCount()
	}

	seen := make(map[string]struct{}, snap.Rows)
	for i := 0; i < snap.Rows; i++ {
		key := d.RowKey(i)
		if _, dup := seen[key]; dup {
			snap.Duplicates++
		} else {
			seen[key] = struct{}{}
		}
	}

	return snap
}
