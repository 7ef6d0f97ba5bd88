package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/dataprep"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/model"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/pipeline"
)

func sampleReport() *pipeline.Report {
	return &pipeline.Report{
		RunID:      "run-1",
		Input:      "Dataset.csv",
		Encoding:   "UTF-8",
		Rows:       9,
		Columns:    12,
		Duplicates: 1,
		Severity:   "Severity_Index",
		Indicators: []string{"Disaster Type_Flood"},
		SeverityMismatch: dataprep.SeverityMismatch{
			RequiredUnused: []string{"Total Affected"},
			TermsUnchecked: []string{"Total Damage ($USD)"},
		},
		Profile: []pipeline.ColumnProfile{
			{Name: "Total Deaths", Kind: data.Numeric, Missing: 2, Rows: 8},
		},
		Outcomes: []pipeline.Outcome{
			{Stage: pipeline.StageImpute, Status: pipeline.StatusApplied, RowsIn: 10, RowsOut: 10, ColsIn: 12, ColsOut: 12},
			{Stage: pipeline.StageSeverity, Status: pipeline.StatusSkipped, Reason: "required columns absent", Missing: []string{"No. Homeless"}},
		},
	}
}

func projection(method string, ratios ...float64) *model.Projection {
	return &model.Projection{
		Method:                 method,
		Components:             len(ratios),
		ExplainedVariance:      ratios,
		ExplainedVarianceRatio: ratios,
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	Summary(&buf, sampleReport())

	out := buf.String()
	assert.Contains(t, out, "run-1")
	assert.Contains(t, out, "9 rows x 12 columns")
	assert.Contains(t, out, "Disaster Type_Flood")
	assert.Contains(t, out, "required but unused: Total Affected")
	assert.Contains(t, out, "used but not required: Total Damage ($USD)")
}

func TestOutcomes(t *testing.T) {
	var buf bytes.Buffer
	Outcomes(&buf, sampleReport())

	out := buf.String()
	assert.Contains(t, out, "impute")
	assert.Contains(t, out, "applied")
	assert.Contains(t, out, "10 -> 10")
	assert.Contains(t, out, "required columns absent (missing: No. Homeless)")
}

func TestFills(t *testing.T) {
	var buf bytes.Buffer
	Fills(&buf, nil)
	assert.Contains(t, buf.String(), "no missing values imputed")

	buf.Reset()
	Fills(&buf, []dataprep.Fill{{Column: "Country", Kind: data.Categorical, Count: 3, Value: "India"}})
	assert.Contains(t, buf.String(), "Country")
	assert.Contains(t, buf.String(), "India")
}

func TestProfile(t *testing.T) {
	var buf bytes.Buffer
	Profile(&buf, sampleReport())
	assert.Contains(t, buf.String(), "Total Deaths")
	assert.Contains(t, buf.String(), "25.00")
}

func TestReduction(t *testing.T) {
	var buf bytes.Buffer
	Reduction(&buf, projection("pca", 0.5, 0.25), nil)

	out := buf.String()
	assert.Contains(t, out, "Explained variance ratio (pca)")
	assert.Contains(t, out, "PC2")
	assert.Contains(t, out, "0.7500")
}

func TestSaveVarianceChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "charts", "variance.svg")

	err := SaveVarianceChart(path, projection("pca", 0.6, 0.3), projection("truncated_svd", 0.5, 0.2))
	require.NoError(t, err)

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestSaveVarianceChart_Empty(t *testing.T) {
	err := SaveVarianceChart(filepath.Join(t.TempDir(), "variance.svg"), nil, projection("pca"))
	assert.ErrorIs(t, err, ErrNothingToPlot)
}
