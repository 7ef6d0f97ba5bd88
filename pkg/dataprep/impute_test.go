package dataprep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

func TestImputeMedian(t *testing.T) {
	col := data.NewNumeric("Total Deaths", []float64{4, 0, 1, 10, 0}, []bool{false, true, false, false, true})

	fill, changed := ImputeMedian(col)
	require.True(t, changed)
	assert.Equal(t, Fill{Column: "Total Deaths", Kind: data.Numeric, Count: 2, Value: "4"}, fill)
	assert.Equal(t, []float64{4, 4, 1, 10, 4}, col.Num)
	assert.Zero(t, col.NullCount())
}

func TestImputeMedian_NothingMissing(t *testing.T) {
	col := data.NewNumeric("x", []float64{1, 2}, nil)
	_, changed := ImputeMedian(col)
	assert.False(t, changed)
}

func TestImputeMedian_AllMissing(t *testing.T) {
	col := data.NewNumeric("x", []float64{0, 0}, []bool{true, true})
	fill, changed := ImputeMedian(col)
	require.True(t, changed)
	assert.Equal(t, "0", fill.Value)
	assert.NotEmpty(t, fill.Note)
	assert.Zero(t, col.NullCount())
}

func TestImputeMode(t *testing.T) {
	col := data.NewCategorical("Region", []string{"Asia", "", "Africa", "Asia", "Africa", ""},
		[]bool{false, true, false, false, false, true})

	fill, changed := ImputeMode(col)
	require.True(t, changed)
	assert.Equal(t, "Africa", fill.Value, "tie resolves to the smallest value")
	assert.Equal(t, 2, fill.Count)
	assert.Equal(t, []string{"Asia", "Africa", "Africa", "Asia", "Africa", "Africa"}, col.Str)
}

func TestImputeMode_AllMissing(t *testing.T) {
	col := data.NewCategorical("Region", []string{"", ""}, []bool{true, true})
	fill, changed := ImputeMode(col)
	require.True(t, changed)
	assert.Zero(t, fill.Count)
	assert.Equal(t, 2, col.NullCount(), "left missing")
}

func TestImpute(t *testing.T) {
	tbl := mustTable(t,
		data.NewNumeric("a", []float64{1, 0, 3}, []bool{false, true, false}),
		data.NewCategorical("b", []string{"x", "", "x"}, []bool{false, true, false}),
		data.NewNumeric("c", []float64{1, 2, 3}, nil),
	)

	// "b" is listed as numeric by mistake and must be ignored there.
	out, fills := Impute(tbl, []string{"a", "b", "c", "gone"}, []string{"b"})
	require.Len(t, fills, 2)
	assert.Equal(t, "a", fills[0].Column)
	assert.Equal(t, "2", fills[0].Value)
	assert.Equal(t, "b", fills[1].Column)
	assert.Equal(t, "x", fills[1].Value)
	assert.Equal(t, []string{"x", "x", "x"}, column(t, out, "b").Str)
}
