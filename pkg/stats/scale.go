package stats

import "math"

// constantTolerance is the relative spread below which a column counts as constant.
const constantTolerance = 10 * 2.220446049250313e-16

// StandardScaler standardizes columns to zero mean and unit variance.
// Columns are column-major: cols[j] holds every value of feature j.
type StandardScaler struct {
	DDoF     int
	Mean     []float64
	Std      []float64
	Constant []bool // columns whose spread was zero; they transform to all zeros
	fit      bool
}

// NewStandardScaler returns a scaler using ddof delta degrees of freedom for the standard deviation.
func NewStandardScaler(ddof int) *StandardScaler { return &StandardScaler{DDoF: ddof} }

// Fit computes the per-column mean and standard deviation.
func (s *StandardScaler) Fit(cols [][]float64) {
	s.Mean = make([]float64, len(cols))
	s.Std = make([]float64, len(cols))
	s.Constant = make([]bool, len(cols))
	for j, col := range cols {
		s.Mean[j] = Mean(col)
		s.Std[j] = Std(col, s.DDoF)
		scale := math.Max(1, math.Abs(s.Mean[j]))
		if math.IsNaN(s.Std[j]) || math.IsInf(s.Std[j], 0) || s.Std[j] <= constantTolerance*scale {
			s.Constant[j] = true
		}
	}
	s.fit = true
}

// Transform returns standardized copies of cols. Constant columns become zeros
// rather than the NaN or Inf a division by zero would give.
func (s *StandardScaler) Transform(cols [][]float64) [][]float64 {
	if !s.fit {
		return cols
	}
	out := make([][]float64, len(cols))
	for j, col := range cols {
		scaled := make([]float64, len(col))
		if !s.Constant[j] {
			for i, v := range col {
				scaled[i] = (v - s.Mean[j]) / s.Std[j]
			}
		}
		out[j] = scaled
	}
	return out
}

func (s *StandardScaler) FitTransform(cols [][]float64) [][]float64 {
	s.Fit(cols)
	return s.Transform(cols)
}
