package pipeline

import "fmt"

// Stage names, as they appear in outcomes and errors.
const (
	StageIngest    = "ingest"
	StageNormalize = "normalize_dates"
	StageClassify  = "classify"
	StageImpute    = "impute"
	StageDedup     = "deduplicate"
	StageSeverity  = "severity_index"
	StageYear      = "extract_year"
	StageEncode    = "encode"
	StageScale     = "scale"
	StageReduce    = "reduce"
	StagePersist   = "persist"
)

// StageError is a fatal failure, tagged with the stage that raised it.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("stage %s: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }
