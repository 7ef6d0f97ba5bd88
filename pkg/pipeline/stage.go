package pipeline

import (
	"time"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

// Status is how a stage ended.
type Status string

const (
	StatusApplied Status = "applied"
	StatusSkipped Status = "skipped"
)

// Requirement lists the columns a stage needs. It is checked once, on stage entry.
type Requirement struct {
	// All must be present, otherwise the stage is skipped.
	All []string
	// Any needs at least one present, otherwise the stage is skipped.
	Any []string
}

// check returns the absent columns and whether the stage can run.
func (r Requirement) check(t *data.Table) ([]string, bool) {
	if missing := t.Missing(r.All...); len(missing) > 0 {
		return missing, false
	}
	if len(r.Any) == 0 {
		return nil, true
	}
	missing := t.Missing(r.Any...)
	return missing, len(missing) < len(r.Any)
}

// Stage is one step of the pipeline. Apply takes ownership of the table and returns the table
// the next stage should use; the stage keeps no reference to either.
type Stage interface {
	Name() string
	Requires() Requirement
	Apply(t *data.Table, r *Report) (*data.Table, error)
}

// Outcome records what one stage did.
type Outcome struct {
	Stage   string
	Status  Status
	Missing []string // columns that were absent, for skipped or partially applied stages
	Reason  string
	RowsIn  int
	RowsOut int
	ColsIn  int
	ColsOut int
	Elapsed time.Duration
}
