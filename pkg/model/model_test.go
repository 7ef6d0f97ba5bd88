package model

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/core"
)

// features is a 6x3 block whose third column is nearly the sum of the first two.
func features(t *testing.T) *core.Matrix {
	t.Helper()
	m, err := core.FromColumns([][]float64{
		{1, 2, 3, 4, 5, 6},
		{2, 1, 4, 3, 6, 5},
		{3.1, 2.9, 7.2, 6.8, 11.1, 10.9},
	})
	require.NoError(t, err)
	return m
}

func TestPCA_FitTransform(t *testing.T) {
	X := features(t)
	p, err := NewPCA(2).FitTransform(X)
	require.NoError(t, err)

	assert.Equal(t, "pca", p.Method)
	r, c := p.Data.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)
	require.Len(t, p.ExplainedVarianceRatio, 2)
	assert.GreaterOrEqual(t, p.ExplainedVarianceRatio[0], p.ExplainedVarianceRatio[1])
	assert.LessOrEqual(t, p.TotalRatio(), 1+1e-9)
	assert.Greater(t, p.ExplainedVarianceRatio[0], 0.9, "one direction dominates")

	// projected columns are centered and their sample variance is the explained variance
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, p.Data)
		mean, variance := meanVar(col)
		assert.InDelta(t, 0, mean, 1e-9)
		assert.InDelta(t, p.ExplainedVariance[j], variance, 1e-9)
	}
	assertUnitRows(t, p.Loadings)
}

func TestPCA_AllComponentsExplainEverything(t *testing.T) {
	p, err := NewPCA(3).FitTransform(features(t))
	require.NoError(t, err)
	assert.InDelta(t, 1, p.TotalRatio(), 1e-9)
}

func TestPCA_SignIsDeterministic(t *testing.T) {
	X := features(t)
	a, err := NewPCA(2).FitTransform(X)
	require.NoError(t, err)

	neg := core.NewMatrix(X.R, X.C)
	for i, v := range X.Data {
		neg.Data[i] = -v
	}
	b, err := NewPCA(2).FitTransform(neg)
	require.NoError(t, err)

	// negating the data does not change the components once their sign is fixed
	for i := range a.Loadings.Data {
		assert.InDelta(t, a.Loadings.Data[i], b.Loadings.Data[i], 1e-9)
	}
	for k := 0; k < a.Loadings.R; k++ {
		row := a.Loadings.Row(k)
		best := 0
		for j := range row {
			if math.Abs(row[j]) > math.Abs(row[best]) {
				best = j
			}
		}
		assert.Positive(t, row[best])
	}
}

func TestTruncatedSVD_FitTransform(t *testing.T) {
	X := features(t)
	p, err := NewTruncatedSVD(2).FitTransform(X)
	require.NoError(t, err)

	assert.Equal(t, "truncated_svd", p.Method)
	r, c := p.Data.Dims()
	assert.Equal(t, 6, r)
	assert.Equal(t, 2, c)
	require.Len(t, p.SingularValues, 2)
	assert.GreaterOrEqual(t, p.SingularValues[0], p.SingularValues[1])
	assertUnitRows(t, p.Loadings)

	// the norm of each projected column is its singular value
	col := make([]float64, r)
	for j := 0; j < c; j++ {
		mat.Col(col, j, p.Data)
		assert.InDelta(t, p.SingularValues[j], mat.Norm(mat.NewVecDense(r, col), 2), 1e-9)
	}
	for _, ratio := range p.ExplainedVarianceRatio {
		assert.GreaterOrEqual(t, ratio, 0.0)
	}
	assert.LessOrEqual(t, p.TotalRatio(), 1+1e-9)
}

func TestReducers_ShapeErrors(t *testing.T) {
	reducers := []func(int) Reducer{
		func(k int) Reducer { return NewPCA(k) },
		func(k int) Reducer { return NewTruncatedSVD(k) },
	}
	for _, build := range reducers {
		t.Run(build(1).Name(), func(t *testing.T) {
			_, err := build(4).FitTransform(features(t))
			assert.ErrorIs(t, err, ErrTooFewFeatures)

			wide, err := core.FromColumns([][]float64{{1, 2}, {3, 5}, {4, 4}})
			require.NoError(t, err)
			_, err = build(3).FitTransform(wide)
			assert.ErrorIs(t, err, ErrTooFewSamples)

			_, err = build(0).FitTransform(features(t))
			assert.Error(t, err)
		})
	}
}

func TestTransformBeforeFit(t *testing.T) {
	_, err := NewPCA(1).Transform(features(t))
	assert.Error(t, err)
	_, err = NewTruncatedSVD(1).Transform(features(t))
	assert.Error(t, err)
}

func meanVar(x []float64) (float64, float64) {
	n := float64(len(x))
	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= n
	ss := 0.0
	for _, v := range x {
		ss += (v - mean) * (v - mean)
	}
	return mean, ss / (n - 1)
}

func assertUnitRows(t *testing.T, m *core.Matrix) {
	t.Helper()
	for k := 0; k < m.R; k++ {
		assert.InDelta(t, 1, norm(m.Row(k)), 1e-9)
	}
}

func norm(row []float64) float64 {
	ss := 0.0
	for _, v := range row {
		ss += v * v
	}
	return math.Sqrt(ss)
}
