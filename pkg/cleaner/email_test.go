// pkg/cleaner/email_test.go
package cleaner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
)

func TestEmailPattern(t *testing.T) {
	valid := []string{
		"user@example.com",
		"a@b.co",
		"first.last@sub.domain.org",
		"weird name@host.tld", // spaces pass, the pattern is deliberately loose
	}
	for _, s := range valid {
		assert.True(t, emailPattern.MatchString(s), s)
	}

	invalid := []string{
		"plainaddress",
		"@no-local.com",
		"two@@ats.com",
		"no-dot-after-at@domain",
		"trailing@dot.",
		"",
	}
	for _, s := range invalid {
		assert.False(t, emailPattern.MatchString(s), s)
	}
}

func TestValidateEmailsReplacesInvalid(t *testing.T) {
	c := newTestCleaner(t, model.DefaultConfig())
	ds := mustDataset(t, []dataset.Column{
		{Name: "email", Values: []dataset.Value{
			dataset.String("good@example.com"),
			dataset.String("not-an-email"),
			dataset.Missing(),
			dataset.Number(42),
		}},
		{Name: "notes", Values: []dataset.Value{
			dataset.String("also not an email"),
			dataset.String("x"),
			dataset.String("y"),
			dataset.String("z"),
		}},
	})

	result, err := c.ValidateEmails(ds)
	require.NoError(t, err)

	col := ds.Columns[0]
	assert.Equal(t, dataset.String("good@example.com"), col.Values[0])
	assert.Equal(t, dataset.String("invalid@example.com"), col.Values[1])
	assert.Equal(t, dataset.String("invalid@example.com"), col.Values[2])
	assert.Equal(t, dataset.String("invalid@example.com"), col.Values[3])

	// non-email columns are never validated
	assert.Equal(t, dataset.String("also not an email"), ds.Columns[1].Values[0])

	assert.Len(t, result.Operations, 3)
}
