package model

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/core"
)

var (
	// ErrTooFewFeatures means more components were requested than there are feature columns.
	ErrTooFewFeatures = errors.New("more components requested than feature columns")
	// ErrTooFewSamples means more components were requested than there are rows.
	ErrTooFewSamples = errors.New("more components requested than samples")
	// ErrDecomposition means the underlying factorization did not converge.
	ErrDecomposition = errors.New("matrix decomposition failed")
)

// Reducer projects a feature matrix onto a lower-dimensional space.
type Reducer interface {
	Name() string
	FitTransform(X mat.Matrix) (*Projection, error)
}

// Projection is the result of a reduction: the projected data and how much variance each component keeps.
type Projection struct {
	Method                 string
	Components             int
	Data                   *core.Matrix // rows x Components
	Loadings               *core.Matrix // Components x features, one unit vector per row
	ExplainedVariance      []float64
	ExplainedVarianceRatio []float64
	SingularValues         []float64
}

// TotalRatio sums the explained variance ratio over the kept components.
func (p *Projection) TotalRatio() float64 {
	s := 0.0
	for _, r := range p.ExplainedVarianceRatio {
		s += r
	}
	return s
}

func checkShape(X mat.Matrix, k int) error {
	if k < 1 {
		return fmt.Errorf("components must be positive, got %d", k)
	}
	n, p := X.Dims()
	if k > p {
		return fmt.Errorf("%w: %d components, %d features", ErrTooFewFeatures, k, p)
	}
	if k > n {
		return fmt.Errorf("%w: %d components, %d samples", ErrTooFewSamples, k, n)
	}
	return nil
}

// orient flips each of the first k columns of v so its largest-magnitude entry is positive.
// Decompositions only fix vectors up to sign; this makes results reproducible.
func orient(v *mat.Dense, k int) {
	r, _ := v.Dims()
	for j := 0; j < k; j++ {
		best := 0
		for i := 1; i < r; i++ {
			if math.Abs(v.At(i, j)) > math.Abs(v.At(best, j)) {
				best = i
			}
		}
		if v.At(best, j) < 0 {
			for i := 0; i < r; i++ {
				v.Set(i, j, -v.At(i, j))
			}
		}
	}
}

// loadings copies the first k columns of v as rows of a k x p matrix.
func loadings(v *mat.Dense, k int) *core.Matrix {
	p, _ := v.Dims()
	out := core.NewMatrix(k, p)
	for c := 0; c < k; c++ {
		for j := 0; j < p; j++ {
			out.Set(c, j, v.At(j, c))
		}
	}
	return out
}
