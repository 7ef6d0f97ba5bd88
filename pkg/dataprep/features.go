package dataprep

import (
	"fmt"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

// Term is one weighted input of a composite score.
type Term struct {
	Column string  `koanf:"column"`
	Weight float64 `koanf:"weight"`
}

// SeverityConfig defines the composite severity score.
// Required is the set whose presence enables the score; Terms is the arithmetic.
// The two lists are configured independently and need not name the same columns.
type SeverityConfig struct {
	Output   string   `koanf:"output"`
	Required []string `koanf:"required"`
	Terms    []Term   `koanf:"terms"`
}

// DefaultSeverityConfig returns the EM-DAT severity definition. Its required set and its
// formula disagree: the formula reads "Total Damage ($USD)", which is never required, and
// "Total Affected" plus "Total Damage ('000 US$)" are required but never used.
func DefaultSeverityConfig() SeverityConfig {
	return SeverityConfig{
		Output: "Severity_Index",
		Required: []string{
			"Total Deaths",
			"No. Injured",
			"No. Affected",
			"No. Homeless",
			"Total Affected",
			"Total Damage ('000 US$)",
		},
		Terms: []Term{
			{Column: "Total Deaths", Weight: 0.5},
			{Column: "Total Damage ($USD)", Weight: 0.2},
			{Column: "No. Injured", Weight: 0.1},
			{Column: "No. Affected", Weight: 0.1},
			{Column: "No. Homeless", Weight: 0.1},
		},
	}
}

// SeverityMismatch lists where the presence check and the formula disagree.
type SeverityMismatch struct {
	RequiredUnused []string // required but not in any term
	TermsUnchecked []string // used by a term but not required
}

// Empty reports whether the check and the formula agree.
func (m SeverityMismatch) Empty() bool {
	return len(m.RequiredUnused) == 0 && len(m.TermsUnchecked) == 0
}

// Inconsistency compares the required set with the term columns.
func (c SeverityConfig) Inconsistency() SeverityMismatch {
	required := make(map[string]bool, len(c.Required))
	for _, r := range c.Required {
		required[r] = true
	}
	used := make(map[string]bool, len(c.Terms))
	var m SeverityMismatch
	for _, term := range c.Terms {
		used[term.Column] = true
		if !required[term.Column] {
			m.TermsUnchecked = append(m.TermsUnchecked, term.Column)
		}
	}
	for _, r := range c.Required {
		if !used[r] {
			m.RequiredUnused = append(m.RequiredUnused, r)
		}
	}
	return m
}

// SeverityIndex appends the weighted severity column.
// It returns a *SkipError, leaving t unchanged, when a required column is absent, when a term
// column is absent even though the required set is complete, or when a term column is not numeric.
func SeverityIndex(t *data.Table, cfg SeverityConfig) (*data.Table, error) {
	if missing := t.Missing(cfg.Required...); len(missing) > 0 {
		return t, &SkipError{Missing: missing, Reason: "severity inputs absent"}
	}

	terms := cfg.Terms
	var absent []string
	for _, term := range terms {
		if !t.Has(term.Column) {
			absent = append(absent, term.Column)
		}
	}
	if len(absent) > 0 {
		return t, &SkipError{
			Missing: absent,
			Reason:  "severity formula reads columns outside its required set",
		}
	}

	cols := make([]*data.Column, len(terms))
	for k, term := range terms {
		col, _ := t.Column(term.Column)
		if col.Kind != data.Numeric {
			return t, &SkipError{Reason: fmt.Sprintf("severity term %q is %s, not numeric", term.Column, col.Kind)}
		}
		cols[k] = col
	}

	n := t.Rows()
	score := make([]float64, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		for k, term := range terms {
			if cols[k].IsNull(i) {
				null[i] = true
				break
			}
			score[i] += cols[k].Num[i] * term.Weight
		}
	}
	if err := put(t, data.NewNumeric(cfg.Output, score, null)); err != nil {
		return nil, err
	}
	return t, nil
}

// ExtractYear appends an integer-valued column holding the calendar year of a datetime column.
// Rows with a missing date get a missing year.
func ExtractYear(t *data.Table, source, output string) (*data.Table, error) {
	col, ok := t.Column(source)
	if !ok {
		return t, &SkipError{Missing: []string{source}, Reason: "start date absent"}
	}
	if col.Kind != data.Datetime {
		return t, &SkipError{Reason: fmt.Sprintf("%q is %s, not datetime", source, col.Kind)}
	}

	n := col.Len()
	years := make([]float64, n)
	null := make([]bool, n)
	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			null[i] = true
			continue
		}
		years[i] = float64(col.Time[i].Year())
	}
	if err := put(t, data.NewNumeric(output, years, null)); err != nil {
		return nil, err
	}
	return t, nil
}

// put overwrites a same-named column in place or appends a new one.
func put(t *data.Table, c *data.Column) error {
	if t.Has(c.Name) {
		return t.Replace(c)
	}
	return t.Append(c)
}
