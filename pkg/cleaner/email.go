// pkg/cleaner/email.go
package cleaner

import (
	"regexp"

	"go.uber.org/zap"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

// invalidEmailPlaceholder replaces values that fail the pattern
const invalidEmailPlaceholder = "invalid@example.com"

// emailPattern is the minimal shape an address must have: something
// before a single @, something after it containing a dot. It is
// intentionally permissive; downstream consumers depend on exactly this
// pattern, so it must not be tightened toward RFC validation.
var emailPattern = regexp.MustCompile(`^[^@]+@[^@]+\.[^@]+$`)

// ValidateEmails replaces malformed values in email-named columns with
// the placeholder address. Non-string and missing cells are also
// replaced: an email column is expected to hold only addresses.
func (c *DataCleaner) ValidateEmails(ds *dataset.Dataset) (*StepResult, error) {
	result := &StepResult{}

	for i := range ds.Columns {
		col := &ds.Columns[i]
		if !dataset.IsEmailColumn(col.Name) {
			continue
		}

		for j, v := range col.Values {
			if v.Kind == dataset.KindString && emailPattern.MatchString(v.Str) {
				continue
			}
			col.Values[j] = dataset.String(invalidEmailPlaceholder)
			result.record(model.CleaningOperation{
				ColumnName:    col.Name,
				RowIndex:      j,
				OriginalValue: v.Text(),
				NewValue:      invalidEmailPlaceholder,
				Operation:     "replace_invalid_email",
				Reason:        "pattern_mismatch",
			})
		}
	}

	c.logger.Debug("Validated email columns",
		zap.Int("operations", len(result.Operations)))

	return result, nil
}
