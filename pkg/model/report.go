// pkg/model/report.go
package model

import (
	"fmt"
	"time"

	"github.com/rawtoready/cleanse/pkg/dataset"
)

// ConditionCode identifies a warning-level event raised during a run.
// Conditions degrade a step locally and never abort the pipeline.
type ConditionCode int

const (
	// ConditionNoModeAvailable fires when fill-mode is requested on a
	// column with no non-missing values; the column is left unmodified
	ConditionNoModeAvailable ConditionCode = iota
	// ConditionDuplicateColumnName fires when two headers normalize to
	// the same name; the configured collision policy resolves it
	ConditionDuplicateColumnName
	// ConditionStepDegraded fires when a step could not be applied to a
	// column and fell back to a no-op for that column
	ConditionStepDegraded
)

// String returns the condition name
func (c ConditionCode) String() string {
	switch c {
	case ConditionNoModeAvailable:
		return "no_mode_available"
	case ConditionDuplicateColumnName:
		return "duplicate_column_name"
	case ConditionStepDegraded:
		return "step_degraded"
	default:
		return fmt.Sprintf("unknown(%d)", c)
	}
}

// Condition is a warning raised while cleaning, tied to the column that
// triggered it
type Condition struct {
	Code    ConditionCode
	Column  string
	Message string
}

// String formats the condition for logs
func (c Condition) String() string {
	if c.Column == "" {
		return fmt.Sprintf("[%s] %s", c.Code, c.Message)
	}
	return fmt.Sprintf("[%s] column %q: %s", c.Code, c.Column, c.Message)
}

// CleaningReport is the structured result of one pipeline run: before and
// after metrics, the anomaly sub-dataset, the value-level operation trail,
// and any warning conditions raised along the way.
type CleaningReport struct {
	RunID string

	RowsBefore       int
	RowsAfter        int
	NullsBefore      int
	NullsAfter       int
	DuplicatesBefore int
	DuplicatesAfter  int

	// AnomalyCount is the number of distinct rows flagged by the
	// anomaly detector
	AnomalyCount int

	// Anomalies holds the flagged rows, one per distinct input row,
	// annotated with the offending column name(s) and value(s)
	Anomalies *dataset.Dataset

	Operations []CleaningOperation
	Conditions []Condition

	StartTime time.Time
	EndTime   time.Time
	Duration  time.Duration
}

// Complete stamps the end time and duration
func (r *CleaningReport) Complete() {
	r.EndTime = time.Now()
	r.Duration = r.EndTime.Sub(r.StartTime)
}

// AddOperation appends a value-level operation to the trail
func (r *CleaningReport) AddOperation(op CleaningOperation) {
	r.Operations = append(r.Operations, op)
}

// AddCondition appends a warning condition
func (r *CleaningReport) AddCondition(cond Condition) {
	r.Conditions = append(r.Conditions, cond)
}

// RowsDelta returns rows-after minus rows-before
func (r *CleaningReport) RowsDelta() int {
	return r.RowsAfter - r.RowsBefore
}

// NullsFixed returns the number of missing cells resolved by the run
func (r *CleaningReport) NullsFixed() int {
	return r.NullsBefore - r.NullsAfter
}

// DuplicatesFixed returns the number of duplicate rows resolved by the run
func (r *CleaningReport) DuplicatesFixed() int {
	return r.DuplicatesBefore - r.DuplicatesAfter
}
