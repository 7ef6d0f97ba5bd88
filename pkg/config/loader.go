package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/pipeline"
)

// EnvPrefix prefixes every environment override. A double underscore separates nesting levels,
// so DISASTERPREP_REDUCE__COMPONENTS sets reduce.components.
const EnvPrefix = "DISASTERPREP_"

// DefaultFiles are looked up in the working directory when no config file is given.
var DefaultFiles = []string{"disasterprep.yaml", "disasterprep.yml"}

// flagKeys maps CLI flag names to config keys. Flags not listed here are not config values.
var flagKeys = map[string]string{
	"input":          "input",
	"output":         "output",
	"delimiter":      "delimiter",
	"components":     "reduce.components",
	"ddof":           "scale.ddof",
	"variance-chart": "report.variance_chart",
	"log-level":      "log.level",
	"log-format":     "log.format",
}

// findConfigFile finds the config file to use.
// Priority: explicit path > disasterprep.yaml > disasterprep.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range DefaultFiles {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// defaults flattens pipeline.DefaultConfig into koanf keys.
func defaults() map[string]any {
	d := pipeline.DefaultConfig()
	terms := make([]any, 0, len(d.Severity.Terms))
	for _, term := range d.Severity.Terms {
		terms = append(terms, map[string]any{"column": term.Column, "weight": term.Weight})
	}
	return map[string]any{
		"input":                 d.Input,
		"output":                d.Output,
		"delimiter":             string(d.Delimiter),
		"encodings":             d.Encodings,
		"dates.columns":         d.DateColumns,
		"dates.layouts":         d.DateLayouts,
		"dates.start_column":    d.StartDateColumn,
		"dates.year_column":     d.YearColumn,
		"severity.output":       d.Severity.Output,
		"severity.required":     d.Severity.Required,
		"severity.terms":        terms,
		"encode.columns":        d.EncodeColumns,
		"scale.ddof":            d.DDoF,
		"reduce.components":     d.Components,
		"log.level":             "info",
		"log.format":            FormatText,
		"report.variance_chart": "",
	}
}

// Load reads configuration from defaults, the config file, environment variables and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// Only flags that were explicitly set override anything.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// DISASTERPREP_SCALE__DDOF -> scale.ddof
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(key, "__", ".")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, any) {
			key, ok := flagKeys[f.Name]
			if !ok || !f.Changed {
				return "", nil
			}
			return key, posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.File = used

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}
