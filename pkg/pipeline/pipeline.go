// pkg/pipeline/pipeline.go
package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rawtoready/cleanse/pkg/cleaner"
	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// ErrNoDatasetLoaded is returned when a run is started without input
var ErrNoDatasetLoaded = errors.New("no dataset loaded")

// State tracks a pipeline through one run
type State int

const (
	// StateIdle is the initial state before configuration
	StateIdle State = iota
	// StateConfigured means a configuration has been accepted
	StateConfigured
	// StateRunning means steps are executing
	StateRunning
	// StateCompleted means the run finished and produced a report
	StateCompleted
	// StateFailed means the run aborted with an error
	StateFailed
)

// String returns the state name
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateConfigured:
		return "configured"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("unknown(%d)", s)
	}
}

// Pipeline sequences the cleaning steps over a dataset and assembles
// the before/after report. A pipeline carries no state between runs
// beyond the last observed State: each run clones its input and builds
// everything else fresh, so one value can serve sequential runs, and
// callers exposing it as a service must serialize calls or create one
// pipeline per call.
type Pipeline struct {
	logger *zap.Logger
	state  State
}

// New creates an idle pipeline
func New(logger *zap.Logger) (*Pipeline, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	return &Pipeline{logger: logger, state: StateIdle}, nil
}

// State returns the pipeline's current state
func (p *Pipeline) State() State {
	return p.state
}

// Clean runs the configured steps over the dataset and returns the
// cleaned copy plus the run report. The input dataset is never
// modified. Steps run in a fixed order: impute missing, deduplicate,
// standardize column names, normalize text, fix dates, validate
// emails, fuzzy-standardize, detect anomalies. The order is part of
// the contract: deduplication runs before text normalization, so rows
// that only become identical after normalization are the fuzzy
// consolidator's concern, not exact dedup's.
//
// The context is checked between stages; a cancelled run fails with
// the context error. Per-column step problems degrade to warnings in
// the report, only a missing dataset is fatal.
func (p *Pipeline) Clean(ctx context.Context, ds *dataset.Dataset, config model.CleaningConfig) (*dataset.Dataset, *model.CleaningReport, error) {
	if err := config.Validate(); err != nil {
		p.state = StateFailed
		return nil, nil, fmt.Errorf("invalid cleaning config: %w", err)
	}
	p.state = StateConfigured

	if ds == nil {
		p.state = StateFailed
		return nil, nil, ErrNoDatasetLoaded
	}
	p.state = StateRunning

	runID := uuid.New().String()
	report := &model.CleaningReport{
		RunID:     runID,
		StartTime: time.Now(),
		Anomalies: &dataset.Dataset{},
	}

	before := ds.Snapshot()
	report.RowsBefore = before.Rows
	report.NullsBefore = before.Nulls
	report.DuplicatesBefore = before.Duplicates

	p.logger.Info("Starting cleaning run",
		zap.String("runID", runID),
		zap.Int("rows", before.Rows),
		zap.Int("columns", ds.ColumnCount()),
		zap.String("missingStrategy", config.MissingStrategy.String()))

	clean, err := cleaner.NewDataCleaner(p.logger, config)
	if err != nil {
		p.state = StateFailed
		return nil, nil, err
	}

	// Copy-on-run: all steps mutate this clone only
	working := ds.Clone()

	steps := []struct {
		name    string
		enabled bool
		run     func(*dataset.Dataset) (*cleaner.StepResult, error)
	}{
		{"impute_missing", config.MissingStrategy != model.StrategyNone, func(d *dataset.Dataset) (*cleaner.StepResult, error) {
			return clean.ImputeMissing(d, config.MissingStrategy)
		}},
		{"remove_duplicates", config.RemoveDuplicates, clean.RemoveDuplicates},
		{"standardize_columns", config.StandardizeCols, clean.StandardizeColumns},
		{"normalize_text", config.NormalizeText, clean.NormalizeText},
		{"fix_dates", config.FixDates, clean.FixDates},
		{"validate_emails", config.ValidateEmails, clean.ValidateEmails},
		{"fuzzy_standardize", config.FuzzyStandardize, clean.FuzzyStandardize},
	}

	for _, step := range steps {
		if !step.enabled {
			continue
		}
		if err := ctx.Err(); err != nil {
			p.state = StateFailed
			return nil, nil, fmt.Errorf("run cancelled before %s: %w", step.name, err)
		}

		stepResult, err := step.run(working)
		if stepResult != nil {
			for _, op := range stepResult.Operations {
				report.AddOperation(op)
			}
			for _, cond := range stepResult.Conditions {
				report.AddCondition(cond)
			}
		}
		if err != nil {
			// Step-level failures degrade: the step becomes a no-op
			// beyond what it already applied, and the run continues
			p.logger.Warn("Cleaning step degraded",
				zap.String("runID", runID),
				zap.String("step", step.name),
				zap.Error(err))
			report.AddCondition(model.Condition{
				Code:    model.ConditionStepDegraded,
				Message: fmt.Sprintf("step %s: %v", step.name, err),
			})
		}
	}

	if config.DetectAnomalies {
		if err := ctx.Err(); err != nil {
			p.state = StateFailed
			return nil, nil, fmt.Errorf("run cancelled before detect_anomalies: %w", err)
		}
		anomalies, err := clean.DetectAnomalies(working, config.AnomalyZScoreThreshold)
		if err != nil {
			p.logger.Warn("Anomaly detection degraded",
				zap.String("runID", runID),
				zap.Error(err))
			report.AddCondition(model.Condition{
				Code:    model.ConditionStepDegraded,
				Message: fmt.Sprintf("step detect_anomalies: %v", err),
			})
		} else {
			report.Anomalies = anomalies.Anomalies
			report.AnomalyCount = anomalies.RowCount
		}
	}

	after := working.Snapshot()
	report.RowsAfter = after.Rows
	report.NullsAfter = after.Nulls
	report.DuplicatesAfter = after.Duplicates
	report.Complete()

	p.state = StateCompleted
	p.logger.Info("Cleaning run completed",
		zap.String("runID", runID),
		zap.Int("rowsBefore", report.RowsBefore),
		zap.Int("rowsAfter", report.RowsAfter),
		zap.Int("nullsFixed", report.NullsFixed()),
		zap.Int("duplicatesFixed", report.DuplicatesFixed()),
		zap.Int("anomalies", report.AnomalyCount),
		zap.Int("operations", len(report.Operations)),
		zap.Int("conditions", len(report.Conditions)),
		zap.Duration("duration", report.Duration))

	return working, report, nil
}
