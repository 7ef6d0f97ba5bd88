// Package config loads disasterprep settings from defaults, a YAML file, the environment and CLI flags.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode/utf8"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/dataprep"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/pipeline"
)

// Config is the on-disk and environment shape of a run's settings.
type Config struct {
	Input         string   `koanf:"input"`
	Output        string   `koanf:"output"`
	Delimiter     string   `koanf:"delimiter"`
	Encodings     []string `koanf:"encodings"`
	MissingTokens []string `koanf:"missing_tokens"`

	Dates    DatesConfig             `koanf:"dates"`
	Severity dataprep.SeverityConfig `koanf:"severity"`
	Encode   EncodeConfig            `koanf:"encode"`
	Scale    ScaleConfig             `koanf:"scale"`
	Reduce   ReduceConfig            `koanf:"reduce"`
	Log      LogConfig               `koanf:"log"`
	Report   ReportConfig            `koanf:"report"`

	// File is the config file that was read, if any.
	File string `koanf:"-"`
}

// DatesConfig lists the date columns and how to read them.
type DatesConfig struct {
	Columns     []string `koanf:"columns"`
	Layouts     []string `koanf:"layouts"`
	StartColumn string   `koanf:"start_column"`
	YearColumn  string   `koanf:"year_column"`
}

// EncodeConfig lists the categorical columns to one-hot encode.
type EncodeConfig struct {
	Columns []string `koanf:"columns"`
}

// ScaleConfig configures standardization.
type ScaleConfig struct {
	DDoF int `koanf:"ddof"`
}

// ReduceConfig configures PCA and truncated SVD.
type ReduceConfig struct {
	Components int `koanf:"components"`
}

// LogConfig selects the log handler.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// ReportConfig controls optional run artifacts besides the processed table.
type ReportConfig struct {
	// VarianceChart is a PNG/SVG path for the explained-variance chart. Empty disables it.
	VarianceChart string `koanf:"variance_chart"`
}

// Log formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Validate reports every setting that cannot produce a valid run.
func (c *Config) Validate() error {
	var errs []error
	if c.Input == "" {
		errs = append(errs, errors.New("input path is required"))
	}
	if c.Output == "" {
		errs = append(errs, errors.New("output path is required"))
	}
	if _, err := c.delimiter(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Encodings) == 0 {
		errs = append(errs, errors.New("at least one encoding is required"))
	}
	if c.Scale.DDoF < 0 {
		errs = append(errs, fmt.Errorf("scale.ddof must be >= 0, got %d", c.Scale.DDoF))
	}
	if c.Reduce.Components < 0 {
		errs = append(errs, fmt.Errorf("reduce.components must be >= 0, got %d", c.Reduce.Components))
	}
	if c.Severity.Output == "" {
		errs = append(errs, errors.New("severity.output is required"))
	}
	if c.Dates.StartColumn != "" && c.Dates.YearColumn == "" {
		errs = append(errs, errors.New("dates.year_column is required when dates.start_column is set"))
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		errs = append(errs, fmt.Errorf("log.format must be %q or %q, got %q", FormatText, FormatJSON, c.Log.Format))
	}
	return errors.Join(errs...)
}

func (c *Config) delimiter() (rune, error) {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", c.Delimiter)
	}
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", c.Delimiter)
	}
	return r, nil
}

// SlogLevel parses Level as a slog level name (debug, info, warn, error).
func (l LogConfig) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("invalid log.level %q: %w", l.Level, err)
	}
	return lvl, nil
}

// Pipeline converts c into a pipeline configuration. c must have passed Validate.
func (c *Config) Pipeline(logger *slog.Logger) pipeline.Config {
	delim, _ := c.delimiter()
	return pipeline.Config{
		Input:           c.Input,
		Output:          c.Output,
		Encodings:       c.Encodings,
		Delimiter:       delim,
		MissingTokens:   c.MissingTokens,
		DateColumns:     c.Dates.Columns,
		DateLayouts:     c.Dates.Layouts,
		StartDateColumn: c.Dates.StartColumn,
		YearColumn:      c.Dates.YearColumn,
		Severity:        c.Severity,
		EncodeColumns:   c.Encode.Columns,
		DDoF:            c.Scale.DDoF,
		Components:      c.Reduce.Components,
		Logger:          logger,
	}
}
