// pkg/cleaner/cleaner.go
package cleaner

import (
	"errors"

	"go.uber.org/zap"

	"github.com/rawtoready/cleanse/pkg/model"
)

// DataCleaner applies the individual cleaning and detection steps to a
// dataset. Every step mutates the dataset it is handed in place; the
// pipeline owns the copy-on-run clone, so the caller's data is never
// touched. Steps report their work as value-level operations and
// warning conditions rather than failing the run.
type DataCleaner struct {
	logger *zap.Logger
	config model.CleaningConfig
}

// NewDataCleaner creates a DataCleaner for one run configuration
func NewDataCleaner(logger *zap.Logger, config model.CleaningConfig) (*DataCleaner, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &DataCleaner{
		logger: logger,
		config: config,
	}, nil
}

// StepResult collects what a single step did: the value-level operation
// trail and any warning conditions raised
type StepResult struct {
	Operations []model.CleaningOperation
	Conditions []model.Condition
}

func (r *StepResult) record(op model.CleaningOperation) {
	r.Operations = append(r.Operations, op)
}

func (r *StepResult) warn(cond model.Condition) {
	r.Conditions = append(r.Conditions, cond)
}
