package model

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/core"
)

// PCA is a variance-maximizing orthogonal projection onto the top K principal components.
type PCA struct {
	K          int
	Means      []float64
	Components *core.Matrix // K x p, each row a unit vector
	Explained  []float64    // variance along each kept component
	Ratio      []float64    // Explained / total variance
}

// NewPCA creates and returns a new PCA model.
func NewPCA(k int) *PCA {
	return &PCA{K: k}
}

func (pca *PCA) Name() string { return "pca" }

// Fit centers X and computes the top K principal components.
func (pca *PCA) Fit(X mat.Matrix) error {
	if err := checkShape(X, pca.K); err != nil {
		return err
	}
	n, p := X.Dims()

	var pc stat.PC
	if ok := pc.PrincipalComponents(X, nil); !ok {
		return fmt.Errorf("%w: principal components of %dx%d matrix", ErrDecomposition, n, p)
	}
	vars := pc.VarsTo(nil)
	var vecs mat.Dense
	pc.VectorsTo(&vecs)
	orient(&vecs, pca.K)

	total := 0.0
	for _, v := range vars {
		total += v
	}
	pca.Explained = make([]float64, pca.K)
	pca.Ratio = make([]float64, pca.K)
	for i := 0; i < pca.K; i++ {
		pca.Explained[i] = vars[i]
		if total > 0 {
			pca.Ratio[i] = vars[i] / total
		}
	}

	pca.Means = make([]float64, p)
	col := make([]float64, n)
	for j := 0; j < p; j++ {
		mat.Col(col, j, X)
		pca.Means[j] = stat.Mean(col, nil)
	}
	pca.Components = loadings(&vecs, pca.K)
	return nil
}

// Transform projects X onto the fitted components after centering it with the fitted means.
func (pca *PCA) Transform(X mat.Matrix) (*core.Matrix, error) {
	if pca.Components == nil {
		return nil, fmt.Errorf("pca: transform before fit")
	}
	n, p := X.Dims()
	if p != len(pca.Means) {
		return nil, fmt.Errorf("pca: feature count mismatch between input (%d) and fit (%d)", p, len(pca.Means))
	}

	centered := mat.NewDense(n, p, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < p; j++ {
			centered.Set(i, j, X.At(i, j)-pca.Means[j])
		}
	}
	var out mat.Dense
	out.Mul(centered, pca.Components.T())
	return core.FromDense(&out), nil
}

// FitTransform fits the model and returns the projection of X with its variance report.
func (pca *PCA) FitTransform(X mat.Matrix) (*Projection, error) {
	if err := pca.Fit(X); err != nil {
		return nil, err
	}
	data, err := pca.Transform(X)
	if err != nil {
		return nil, err
	}
	return &Projection{
		Method:                 pca.Name(),
		Components:             pca.K,
		Data:                   data,
		Loadings:               pca.Components,
		ExplainedVariance:      pca.Explained,
		ExplainedVarianceRatio: pca.Ratio,
	}, nil
}
