package pipeline

import (
	"errors"
	"fmt"
	"slices"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/core"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/dataprep"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/model"
)

// ErrNotClassified means a stage that depends on the classification ran before it was taken.
var ErrNotClassified = errors.New("column classification has not been taken")

// Stages returns the table stages for cfg, in execution order.
func Stages(cfg Config) []Stage {
	return []Stage{
		normalizeStage{columns: cfg.DateColumns, layouts: cfg.DateLayouts},
		classifyStage{},
		imputeStage{},
		dedupStage{},
		severityStage{cfg: cfg.Severity},
		yearStage{source: cfg.StartDateColumn, output: cfg.YearColumn},
		encodeStage{columns: cfg.EncodeColumns},
		scaleStage{ddof: cfg.DDoF},
		reduceStage{components: cfg.Components},
	}
}

type normalizeStage struct {
	columns []string
	layouts []string
}

func (normalizeStage) Name() string            { return StageNormalize }
func (s normalizeStage) Requires() Requirement { return Requirement{Any: s.columns} }

func (s normalizeStage) Apply(t *data.Table, _ *Report) (*data.Table, error) {
	t, _, err := dataprep.NormalizeDates(t, s.columns, s.layouts)
	return t, err
}

type classifyStage struct{}

func (classifyStage) Name() string          { return StageClassify }
func (classifyStage) Requires() Requirement { return Requirement{} }

func (classifyStage) Apply(t *data.Table, r *Report) (*data.Table, error) {
	r.Classification = Classify(t)
	r.Profile = Profile(t)
	return t, nil
}

type imputeStage struct{}

func (imputeStage) Name() string          { return StageImpute }
func (imputeStage) Requires() Requirement { return Requirement{} }

func (imputeStage) Apply(t *data.Table, r *Report) (*data.Table, error) {
	if r.Classification == nil {
		return nil, ErrNotClassified
	}
	t, fills := dataprep.Impute(t, r.Classification.Numeric, r.Classification.Categorical)
	r.Fills = fills
	return t, nil
}

type dedupStage struct{}

func (dedupStage) Name() string          { return StageDedup }
func (dedupStage) Requires() Requirement { return Requirement{} }

func (dedupStage) Apply(t *data.Table, r *Report) (*data.Table, error) {
	t, removed := dataprep.DropDuplicates(t)
	r.Duplicates = removed
	return t, nil
}

type severityStage struct {
	cfg dataprep.SeverityConfig
}

func (severityStage) Name() string            { return StageSeverity }
func (s severityStage) Requires() Requirement { return Requirement{All: s.cfg.Required} }

func (s severityStage) Apply(t *data.Table, r *Report) (*data.Table, error) {
	t, err := dataprep.SeverityIndex(t, s.cfg)
	if err != nil {
		return t, err
	}
	r.Severity = s.cfg.Output
	return t, nil
}

type yearStage struct {
	source string
	output string
}

func (yearStage) Name() string            { return StageYear }
func (s yearStage) Requires() Requirement { return Requirement{All: []string{s.source}} }

func (s yearStage) Apply(t *data.Table, _ *Report) (*data.Table, error) {
	return dataprep.ExtractYear(t, s.source, s.output)
}

type encodeStage struct {
	columns []string
}

func (encodeStage) Name() string            { return StageEncode }
func (s encodeStage) Requires() Requirement { return Requirement{Any: s.columns} }

func (s encodeStage) Apply(t *data.Table, r *Report) (*data.Table, error) {
	for _, name := range s.columns {
		if !t.Has(name) {
			continue
		}
		var (
			added []string
			err   error
		)
		t, added, err = dataprep.OneHot(t, name)
		if err != nil {
			return nil, err
		}
		r.Indicators = append(r.Indicators, added...)
	}
	return t, nil
}

type scaleStage struct {
	ddof int
}

func (scaleStage) Name() string          { return StageScale }
func (scaleStage) Requires() Requirement { return Requirement{} }

// Apply scales the numeric columns of the classification plus the severity score, if one was built.
// Columns created after classification, such as indicators and the year, are left alone.
func (s scaleStage) Apply(t *data.Table, r *Report) (*data.Table, error) {
	if r.Classification == nil {
		return nil, ErrNotClassified
	}
	columns := append([]string(nil), r.Classification.Numeric...)
	// The score may have replaced an input column of another kind, so only a numeric entry counts.
	if r.Severity != "" && !slices.Contains(columns, r.Severity) {
		columns = append(columns, r.Severity)
	}

	t, scaled, scaler, err := dataprep.Standardize(t, columns, s.ddof)
	if err != nil {
		return nil, err
	}
	r.Scaled = scaled
	r.Constant = r.Constant[:0]
	for j, name := range scaled {
		if scaler.Constant[j] {
			r.Constant = append(r.Constant, name)
		}
	}
	return t, nil
}

type reduceStage struct {
	components int
}

func (reduceStage) Name() string          { return StageReduce }
func (reduceStage) Requires() Requirement { return Requirement{} }

// Apply runs both reductions over the scaled block. The table passes through unchanged.
func (s reduceStage) Apply(t *data.Table, r *Report) (*data.Table, error) {
	if s.components <= 0 {
		return t, &dataprep.SkipError{Reason: "reduction disabled (components = 0)"}
	}
	X, err := FeatureBlock(t, r.Scaled)
	if err != nil {
		return nil, err
	}

	reducers := []model.Reducer{model.NewPCA(s.components), model.NewTruncatedSVD(s.components)}
	projections := make([]*model.Projection, 0, len(reducers))
	for _, red := range reducers {
		p, err := red.FitTransform(X)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", red.Name(), err)
		}
		projections = append(projections, p)
	}
	r.PCA, r.SVD = projections[0], projections[1]
	return t, nil
}

// FeatureBlock copies the named numeric columns of t into a rows x columns matrix.
func FeatureBlock(t *data.Table, columns []string) (*core.Matrix, error) {
	cols := make([][]float64, 0, len(columns))
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			return nil, fmt.Errorf("%w: %q", data.ErrNoColumn, name)
		}
		if col.Kind != data.Numeric {
			return nil, fmt.Errorf("feature column %q is %s", name, col.Kind)
		}
		cols = append(cols, col.Num)
	}
	m, err := core.FromColumns(cols)
	if err != nil {
		return nil, err
	}
	if len(cols) == 0 {
		m.R = t.Rows()
	}
	return m, nil
}
