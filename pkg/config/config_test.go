// pkg/config/config_test.go
package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rawtoready/cleanse/pkg/model"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, model.StrategyNone, cfg.Cleaning.MissingStrategy)
	assert.False(t, cfg.Cleaning.RemoveDuplicates)
	assert.Equal(t, 0.85, cfg.Cleaning.FuzzyCutoff)
	assert.Equal(t, 3.0, cfg.Cleaning.AnomalyZScoreThreshold)
	assert.Equal(t, model.CasingTitle, cfg.Cleaning.TextCasing)
	assert.Equal(t, model.CollisionSuffix, cfg.Cleaning.ColumnCollisionPolicy)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigFromEnvironment(t *testing.T) {
	t.Setenv("CLEANSE_MISSING_STRATEGY", "fill_median")
	t.Setenv("CLEANSE_REMOVE_DUPLICATES", "true")
	t.Setenv("CLEANSE_FUZZY_CUTOFF", "0.7")
	t.Setenv("CLEANSE_ZSCORE_THRESHOLD", "2.5")
	t.Setenv("CLEANSE_TEXT_CASING", "sentence")
	t.Setenv("CLEANSE_COLUMN_COLLISION", "error")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "console")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, model.StrategyFillMedian, cfg.Cleaning.MissingStrategy)
	assert.True(t, cfg.Cleaning.RemoveDuplicates)
	assert.Equal(t, 0.7, cfg.Cleaning.FuzzyCutoff)
	assert.Equal(t, 2.5, cfg.Cleaning.AnomalyZScoreThreshold)
	assert.Equal(t, model.CasingSentence, cfg.Cleaning.TextCasing)
	assert.Equal(t, model.CollisionError, cfg.Cleaning.ColumnCollisionPolicy)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	t.Setenv("CLEANSE_MISSING_STRATEGY", "nonsense")
	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestValidateRejectsBadLogSettings(t *testing.T) {
	t.Setenv("LOG_LEVEL", "verbose")
	_, err := LoadConfig()
	assert.Error(t, err)

	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("LOG_FORMAT", "xml")
	_, err = LoadConfig()
	assert.Error(t, err)
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("TEST_BOOL", "true")
	assert.True(t, getEnvAsBool("TEST_BOOL", false))
	assert.False(t, getEnvAsBool("TEST_BOOL_UNSET", false))

	t.Setenv("TEST_FLOAT", "1.25")
	assert.Equal(t, 1.25, getEnvAsFloat("TEST_FLOAT", 0))
	assert.Equal(t, 9.5, getEnvAsFloat("TEST_FLOAT_UNSET", 9.5))

	t.Setenv("TEST_BAD_FLOAT", "abc")
	assert.Equal(t, 2.0, getEnvAsFloat("TEST_BAD_FLOAT", 2.0))
}
