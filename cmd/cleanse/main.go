// cmd/cleanse/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/rawtoready/cleanse/pkg/config"
	"github.com/rawtoready/cleanse/pkg/csvio"
	"github.com/rawtoready/cleanse/pkg/dataset"
	"github.com/rawtoready/cleanse/pkg/model"
	"github.com/rawtoready/cleanse/pkg/pipeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "cleanse:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; environment variables win over defaults
	_ = godotenv.Load()

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	input := flag.String("input", "", "path to the input CSV (required)")
	output := flag.String("output", "cleaned.csv", "path for the cleaned CSV")
	anomaliesOut := flag.String("anomalies", "", "path for the flagged-rows CSV (omit to skip writing)")
	describe := flag.Bool("describe", false, "log a per-column profile of the input before cleaning")

	missing := flag.String("missing", cfg.Cleaning.MissingStrategy.String(),
		"missing-value strategy: none, fill_na, fill_mean, fill_median, fill_mode, drop_rows")
	dedupe := flag.Bool("dedupe", cfg.Cleaning.RemoveDuplicates, "remove exact duplicate rows")
	columns := flag.Bool("columns", cfg.Cleaning.StandardizeCols, "standardize column names")
	text := flag.Bool("text", cfg.Cleaning.NormalizeText, "normalize text values")
	dates := flag.Bool("dates", cfg.Cleaning.FixDates, "normalize date columns")
	emails := flag.Bool("emails", cfg.Cleaning.ValidateEmails, "validate email columns")
	fuzzy := flag.Bool("fuzzy", cfg.Cleaning.FuzzyStandardize, "consolidate near-duplicate values")
	anomalies := flag.Bool("detect-anomalies", cfg.Cleaning.DetectAnomalies, "flag numeric outliers by z-score")

	cutoff := flag.Float64("fuzzy-cutoff", cfg.Cleaning.FuzzyCutoff, "similarity cutoff for fuzzy consolidation")
	threshold := flag.Float64("zscore", cfg.Cleaning.AnomalyZScoreThreshold, "z-score threshold for anomaly flagging")
	casing := flag.String("casing", cfg.Cleaning.TextCasing.String(), "text casing: title or sentence")
	collision := flag.String("collision", cfg.Cleaning.ColumnCollisionPolicy.String(), "column-name collision policy: suffix or error")
	fuzzyAll := flag.Bool("fuzzy-all-columns", cfg.Cleaning.FuzzyAllColumns, "apply fuzzy consolidation to every column")
	flag.Parse()

	if *input == "" {
		flag.Usage()
		return fmt.Errorf("-input is required")
	}

	cleaning := cfg.Cleaning
	cleaning.MissingStrategy, err = model.ParseMissingStrategy(*missing)
	if err != nil {
		return err
	}
	cleaning.TextCasing, err = model.ParseTextCasing(*casing)
	if err != nil {
		return err
	}
	cleaning.ColumnCollisionPolicy, err = model.ParseCollisionPolicy(*collision)
	if err != nil {
		return err
	}
	cleaning.RemoveDuplicates = *dedupe
	cleaning.StandardizeCols = *columns
	cleaning.NormalizeText = *text
	cleaning.FixDates = *dates
	cleaning.ValidateEmails = *emails
	cleaning.FuzzyStandardize = *fuzzy
	cleaning.DetectAnomalies = *anomalies
	cleaning.FuzzyCutoff = *cutoff
	cleaning.AnomalyZScoreThreshold = *threshold
	cleaning.FuzzyAllColumns = *fuzzyAll

	logger, err := buildLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ds, err := readDataset(*input)
	if err != nil {
		return err
	}
	logger.Info("Loaded dataset",
		zap.String("path", *input),
		zap.Int("rows", ds.RowCount()),
		zap.Int("columns", ds.ColumnCount()))

	if *describe {
		logProfile(logger, ds)
	}

	pipe, err := pipeline.New(logger)
	if err != nil {
		return err
	}

	cleaned, report, err := pipe.Clean(ctx, ds, cleaning)
	if err != nil {
		return fmt.Errorf("cleaning run failed: %w", err)
	}

	for _, cond := range report.Conditions {
		logger.Warn("Cleaning condition", zap.String("condition", cond.String()))
	}

	if err := writeDataset(*output, cleaned); err != nil {
		return err
	}
	logger.Info("Wrote cleaned dataset",
		zap.String("path", *output),
		zap.Int("rows", cleaned.RowCount()))

	if *anomaliesOut != "" && report.AnomalyCount > 0 {
		if err := writeDataset(*anomaliesOut, report.Anomalies); err != nil {
			return err
		}
		logger.Info("Wrote flagged rows",
			zap.String("path", *anomaliesOut),
			zap.Int("rows", report.AnomalyCount))
	}

	logger.Info("Summary",
		zap.String("runID", report.RunID),
		zap.Int("rowsDelta", report.RowsDelta()),
		zap.Int("nullsFixed", report.NullsFixed()),
		zap.Int("duplicatesFixed", report.DuplicatesFixed()),
		zap.Int("anomalies", report.AnomalyCount))

	return nil
}

// buildLogger constructs the run logger from the configured level and
// format. The json format is the production default; console is for
// local runs.
func buildLogger(level, format string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	zapCfg := zap.NewProductionConfig()
	if format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(lvl)

	return zapCfg.Build()
}

func readDataset(path string) (*dataset.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	ds, err := csvio.Read(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return ds, nil
}

func writeDataset(path string, ds *dataset.Dataset) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := csvio.Write(f, ds); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	return f.Close()
}

// logProfile logs the per-column profile the way the report renders it
func logProfile(logger *zap.Logger, ds *dataset.Dataset) {
	for _, p := range ds.Describe() {
		fields := []zap.Field{
			zap.String("column", p.Name),
			zap.String("kind", p.Kind.String()),
			zap.Int("count", p.Count),
			zap.Int("missing", p.Missing),
			zap.Int("unique", p.Unique),
		}
		if p.Kind == dataset.KindNumeric {
			fields = append(fields,
				zap.Float64("mean", p.Mean),
				zap.Float64("stddev", p.StdDev),
				zap.Float64("min", p.Min),
				zap.Float64("max", p.Max))
		} else {
			fields = append(fields, zap.String("top", p.Top))
		}
		logger.Info("Column profile", fields...)
	}
}
