package pipeline

import (
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/dataprep"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/model"
)

// Report collects what a run did. The reduced projections live only here; they are never persisted.
type Report struct {
	RunID    string
	Input    string
	Output   string
	Encoding string

	// Rows and Columns describe the final table.
	Rows    int
	Columns int

	Classification *Classification
	// Profile is the per-column missing count before imputation.
	Profile  []ColumnProfile
	Outcomes []Outcome

	Fills      []dataprep.Fill
	Duplicates int
	// Severity is the name of the severity column when it was built.
	Severity         string
	SeverityMismatch dataprep.SeverityMismatch
	Indicators       []string
	Scaled           []string
	// Constant lists scaled columns that had zero variance and were set to 0.
	Constant []string

	PCA *model.Projection
	SVD *model.Projection
}

// Outcome returns the outcome recorded for a stage.
func (r *Report) Outcome(stage string) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Stage == stage {
			return o, true
		}
	}
	return Outcome{}, false
}

// Skipped returns the stages that were skipped, in order.
func (r *Report) Skipped() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.Status == StatusSkipped {
			out = append(out, o)
		}
	}
	return out
}
