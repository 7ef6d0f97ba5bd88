package pipeline

import (
	"log/slog"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/dataprep"
)

// Config holds everything a run needs. Column roles are listed here rather than
// hard-coded in the stages, so alternative schemas only need a different Config.
type Config struct {
	// Input is the path of the raw delimited file.
	Input string
	// Output is the path the processed table is written to.
	Output string
	// Encodings are tried in order when decoding Input.
	Encodings []string
	// Delimiter separates fields in both Input and Output.
	Delimiter rune
	// MissingTokens are cell values read as missing.
	MissingTokens []string

	// DateColumns are converted to datetime when present.
	DateColumns []string
	// DateLayouts are the accepted date formats, tried in order.
	DateLayouts []string
	// StartDateColumn is the datetime column the year feature is taken from.
	StartDateColumn string
	// YearColumn names the extracted year feature.
	YearColumn string

	// Severity defines the composite severity score.
	Severity dataprep.SeverityConfig
	// EncodeColumns are one-hot encoded when present.
	EncodeColumns []string

	// DDoF is the delta degrees of freedom of the scaler's standard deviation.
	DDoF int
	// Components is the width of both reduced projections. Zero disables reduction.
	Components int

	// Logger is the structured logger (optional, uses discard if nil)
	Logger *slog.Logger
}

// DefaultConfig returns the configuration for EM-DAT style disaster exports.
func DefaultConfig() Config {
	return Config{
		Input:           "Dataset.csv",
		Output:          "emdat_preprocessed.csv",
		Encodings:       append([]string(nil), data.DefaultEncodings...),
		Delimiter:       ',',
		DateColumns:     []string{"Start Date", "End Date"},
		DateLayouts:     append([]string(nil), dataprep.DefaultDateLayouts...),
		StartDateColumn: "Start Date",
		YearColumn:      "Year",
		Severity:        dataprep.DefaultSeverityConfig(),
		EncodeColumns:   []string{"Disaster Type"},
		DDoF:            1,
		Components:      5,
	}
}
