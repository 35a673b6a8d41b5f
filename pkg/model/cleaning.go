// pkg/model/cleaning.go
package model

import (
	"fmt"
)

// MissingStrategy selects how missing cells are handled by the imputer
type MissingStrategy int

const (
	// StrategyNone leaves missing cells untouched
	StrategyNone MissingStrategy = iota
	// StrategyFillNA replaces missing cells with the literal text "N/A".
	// This applies even to numeric columns and widens them to mixed type.
	StrategyFillNA
	// StrategyFillMean fills numeric columns with the column mean
	StrategyFillMean
	// StrategyFillMedian fills numeric columns with the column median
	StrategyFillMedian
	// StrategyFillMode fills with the most frequent non-missing value
	StrategyFillMode
	// StrategyDropRows removes every row containing a missing cell
	StrategyDropRows
)

// String returns the strategy name
func (s MissingStrategy) String() string {
	switch s {
	case StrategyNone:
		return "none"
	case StrategyFillNA:
		return "fill_na"
	case StrategyFillMean:
		return "fill_mean"
	case StrategyFillMedian:
		return "fill_median"
	case StrategyFillMode:
		return "fill_mode"
	case StrategyDropRows:
		return "drop_rows"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// ParseMissingStrategy converts a strategy name to its value
func ParseMissingStrategy(s string) (MissingStrategy, error) {
	switch s {
	case "", "none":
		return StrategyNone, nil
	case "fill_na":
		return StrategyFillNA, nil
	case "fill_mean":
		return StrategyFillMean, nil
	case "fill_median":
		return StrategyFillMedian, nil
	case "fill_mode":
		return StrategyFillMode, nil
	case "drop_rows":
		return StrategyDropRows, nil
	default:
		return StrategyNone, fmt.Errorf("unknown missing strategy %q", s)
	}
}

// TextCasing selects the casing rule applied by the text normalizer
type TextCasing int

const (
	// CasingTitle capitalizes the first letter of each word
	CasingTitle TextCasing = iota
	// CasingSentence capitalizes only the first letter of the value
	CasingSentence
)

// String returns the casing rule name
func (c TextCasing) String() string {
	if c == CasingSentence {
		return "sentence"
	}
	return "title"
}

// ParseTextCasing converts a casing name to its value
func ParseTextCasing(s string) (TextCasing, error) {
	switch s {
	case "", "title":
		return CasingTitle, nil
	case "sentence":
		return CasingSentence, nil
	default:
		return CasingTitle, fmt.Errorf("unknown text casing %q", s)
	}
}

// CollisionPolicy selects how duplicate column names are resolved after
// column-name normalization
type CollisionPolicy int

const (
	// CollisionSuffix appends a numeric suffix (_2, _3, ...) to later
	// colliding columns, deterministically in column order
	CollisionSuffix CollisionPolicy = iota
	// CollisionError fails the step when two columns normalize to the
	// same name
	CollisionError
)

// String returns the policy name
func (p CollisionPolicy) String() string {
	if p == CollisionError {
		return "error"
	}
	return "suffix"
}

// ParseCollisionPolicy converts a policy name to its value
func ParseCollisionPolicy(s string) (CollisionPolicy, error) {
	switch s {
	case "", "suffix":
		return CollisionSuffix, nil
	case "error":
		return CollisionError, nil
	default:
		return CollisionSuffix, fmt.Errorf("unknown collision policy %q", s)
	}
}

// CleaningConfig is the immutable per-run configuration of the pipeline
type CleaningConfig struct {
	MissingStrategy  MissingStrategy
	RemoveDuplicates bool
	StandardizeCols  bool
	NormalizeText    bool
	FixDates         bool
	ValidateEmails   bool
	FuzzyStandardize bool
	DetectAnomalies  bool

	// FuzzyCutoff is the minimum similarity ratio for two values to be
	// consolidated. Defaults to 0.85.
	FuzzyCutoff float64

	// AnomalyZScoreThreshold flags rows whose |z| exceeds it. Defaults to 3.0.
	AnomalyZScoreThreshold float64

	// TextCasing selects title or sentence casing for text normalization
	TextCasing TextCasing

	// ColumnCollisionPolicy resolves duplicate names after normalization
	ColumnCollisionPolicy CollisionPolicy

	// FuzzyAllColumns extends fuzzy consolidation to every column instead
	// of only text columns; numeric cells join through their rendered form
	FuzzyAllColumns bool
}

// DefaultConfig returns a config with all steps disabled and the
// documented default thresholds
func DefaultConfig() CleaningConfig {
	return CleaningConfig{
		MissingStrategy:        StrategyNone,
		FuzzyCutoff:            0.85,
		AnomalyZScoreThreshold: 3.0,
		TextCasing:             CasingTitle,
		ColumnCollisionPolicy:  CollisionSuffix,
	}
}

// Validate ensures the configuration thresholds are usable
func (c CleaningConfig) Validate() error {
	if c.FuzzyCutoff < 0 || c.FuzzyCutoff > 1 {
		return fmt.Errorf("fuzzy cutoff must be in [0,1], got %v", c.FuzzyCutoff)
	}
	if c.AnomalyZScoreThreshold <= 0 {
		return fmt.Errorf("anomaly z-score threshold must be positive, got %v", c.AnomalyZScoreThreshold)
	}
	return nil
}

// CleaningOperation records a single value-level cleaning action. The
// trail lives in the report for the duration of one run; cleaning history
// is never persisted.
type CleaningOperation struct {
	ColumnName    string // Column that was cleaned
	RowIndex      int    // Row position at the time of the operation
	OriginalValue string // Rendered original value, empty for missing
	NewValue      string // Rendered value after cleaning
	Operation     string // Action performed (e.g. "fill_mean", "email_replaced")
	Reason        string // Why the action fired (e.g. "missing_value")
}
