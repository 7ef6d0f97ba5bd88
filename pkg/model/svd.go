package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/core"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/stats"
)

// TruncatedSVD is a rank-K factorization of the uncentered input, X ≈ U_K Σ_K V_Kᵀ.
// The projection is X V_K, which equals U_K Σ_K.
type TruncatedSVD struct {
	K              int
	Components     *core.Matrix // K x p, rows of V_Kᵀ
	SingularValues []float64
}

// NewTruncatedSVD creates a truncated SVD keeping k components.
func NewTruncatedSVD(k int) *TruncatedSVD {
	return &TruncatedSVD{K: k}
}

func (s *TruncatedSVD) Name() string { return "truncated_svd" }

// Fit factorizes X without centering it.
func (s *TruncatedSVD) Fit(X mat.Matrix) error {
	if err := checkShape(X, s.K); err != nil {
		return err
	}
	n, p := X.Dims()

	var svd mat.SVD
	if ok := svd.Factorize(X, mat.SVDThin); !ok {
		return fmt.Errorf("%w: svd of %dx%d matrix", ErrDecomposition, n, p)
	}
	var v mat.Dense
	svd.VTo(&v)
	orient(&v, s.K)

	s.SingularValues = svd.Values(nil)[:s.K]
	s.Components = loadings(&v, s.K)
	return nil
}

// Transform projects X onto the fitted right singular vectors.
func (s *TruncatedSVD) Transform(X mat.Matrix) (*core.Matrix, error) {
	if s.Components == nil {
		return nil, fmt.Errorf("truncated svd: transform before fit")
	}
	if _, p := X.Dims(); p != s.Components.C {
		return nil, fmt.Errorf("truncated svd: feature count mismatch between input (%d) and fit (%d)", p, s.Components.C)
	}
	var out mat.Dense
	out.Mul(X, s.Components.T())
	return core.FromDense(&out), nil
}

// FitTransform fits and projects X. Explained variance is the population variance of each
// projected column; the ratio divides it by the summed population variance of the input columns.
func (s *TruncatedSVD) FitTransform(X mat.Matrix) (*Projection, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	data, err := s.Transform(X)
	if err != nil {
		return nil, err
	}

	n, p := X.Dims()
	col := make([]float64, n)
	total := 0.0
	for j := 0; j < p; j++ {
		mat.Col(col, j, X)
		total += stats.Variance(col, 0)
	}
	explained := make([]float64, s.K)
	ratio := make([]float64, s.K)
	for c := 0; c < s.K; c++ {
		mat.Col(col, c, data)
		explained[c] = stats.Variance(col, 0)
		if total > 0 {
			ratio[c] = explained[c] / total
		}
	}

	return &Projection{
		Method:                 s.Name(),
		Components:             s.K,
		Data:                   data,
		Loadings:               s.Components,
		ExplainedVariance:      explained,
		ExplainedVarianceRatio: ratio,
		SingularValues:         s.SingularValues,
	}, nil
}
