// pkg/dataset/classify.go
package dataset

import "strings"

// ColumnKind is the content classification of a column used to route
// cleaning steps
type ColumnKind int

const (
	// KindNumeric means every non-missing cell is a number
	KindNumeric ColumnKind = iota
	// KindText means the column holds at least one non-numeric cell
	KindText
)

// String returns a readable name for the column kind
func (k ColumnKind) String() string {
	switch k {
	case KindNumeric:
		return "numeric"
	case KindText:
		return "text"
	default:
		return "unknown"
	}
}

// Kind classifies the column by content. A column is numeric when every
// non-missing value is a number; an all-missing column classifies as
// numeric, matching the dtype a tabular loader would assign it.
func (c Column) Kind() ColumnKind {
	for _, v := range c.Values {
		if v.Kind == KindString {
			return KindText
		}
	}
	return KindNumeric
}

// IsDateColumn reports whether a column is date-like. This is a naming
// heuristic only: the name contains "date" (case-insensitive). Content is
// deliberately not inspected; downstream consumers rely on the heuristic's
// exact false-positive/false-negative behavior.
func IsDateColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "date")
}

// IsEmailColumn reports whether a column holds email addresses, by the
// same naming heuristic: the name contains "email" (case-insensitive).
func IsEmailColumn(name string) bool {
	return strings.Contains(strings.ToLower(name), "email")
}
