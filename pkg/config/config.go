// pkg/config/config.go
package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/rawtoready/cleanse/pkg/model"
)

// Config represents the application configuration
type Config struct {
	// Cleaning defaults, overridable per run via CLI flags
	Cleaning model.CleaningConfig

	// Logging
	LogLevel  string
	LogFormat string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	strategy, err := model.ParseMissingStrategy(getEnv("CLEANSE_MISSING_STRATEGY", "none"))
	if err != nil {
		return nil, err
	}
	casing, err := model.ParseTextCasing(getEnv("CLEANSE_TEXT_CASING", "title"))
	if err != nil {
		return nil, err
	}
	collision, err := model.ParseCollisionPolicy(getEnv("CLEANSE_COLUMN_COLLISION", "suffix"))
	if err != nil {
		return nil, err
	}

	cleaning := model.DefaultConfig()
	cleaning.MissingStrategy = strategy
	cleaning.RemoveDuplicates = getEnvAsBool("CLEANSE_REMOVE_DUPLICATES", false)
	cleaning.StandardizeCols = getEnvAsBool("CLEANSE_STANDARDIZE_COLUMNS", false)
	cleaning.NormalizeText = getEnvAsBool("CLEANSE_NORMALIZE_TEXT", false)
	cleaning.FixDates = getEnvAsBool("CLEANSE_FIX_DATES", false)
	cleaning.ValidateEmails = getEnvAsBool("CLEANSE_VALIDATE_EMAILS", false)
	cleaning.FuzzyStandardize = getEnvAsBool("CLEANSE_FUZZY_STANDARDIZE", false)
	cleaning.DetectAnomalies = getEnvAsBool("CLEANSE_DETECT_ANOMALIES", false)
	cleaning.FuzzyCutoff = getEnvAsFloat("CLEANSE_FUZZY_CUTOFF", 0.85)
	cleaning.AnomalyZScoreThreshold = getEnvAsFloat("CLEANSE_ZSCORE_THRESHOLD", 3.0)
	cleaning.TextCasing = casing
	cleaning.ColumnCollisionPolicy = collision
	cleaning.FuzzyAllColumns = getEnvAsBool("CLEANSE_FUZZY_ALL_COLUMNS", false)

	cfg := &Config{
		Cleaning:  cleaning,
		LogLevel:  getEnv("LOG_LEVEL", "info"),
		LogFormat: getEnv("LOG_FORMAT", "json"),
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate ensures all required configuration is present and valid
func (c *Config) Validate() error {
	if err := c.Cleaning.Validate(); err != nil {
		return err
	}

	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return errors.New("log level must be one of debug, info, warn, error")
	}

	switch c.LogFormat {
	case "json", "console":
	default:
		return errors.New("log format must be json or console")
	}

	return nil
}

// Helper functions for environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		return defaultValue
	}
	return value
}
