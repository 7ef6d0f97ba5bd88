package stats

import (
	"cmp"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Mean computes the average of a slice. It returns NaN for an empty slice.
func Mean(x []float64) float64 {
	if len(x) == 0 {
		return math.NaN()
	}
	return stat.Mean(x, nil)
}

// Variance computes the variance of x with ddof delta degrees of freedom:
// ddof 0 is the population variance, ddof 1 the sample variance.
// It returns NaN when len(x) <= ddof.
func Variance(x []float64, ddof int) float64 {
	n := len(x)
	if n == 0 || n <= ddof {
		return math.NaN()
	}
	if n == 1 {
		return 0
	}
	// stat.MeanVariance is the unbiased (n-1) estimator.
	_, v := stat.MeanVariance(x, nil)
	return v * float64(n-1) / float64(n-ddof)
}

// Std computes the standard deviation of x with ddof delta degrees of freedom.
func Std(x []float64, ddof int) float64 {
	return math.Sqrt(Variance(x, ddof))
}

// Median returns the median value of the slice (allocates a copy).
// Even-length input averages the two middle values. Empty input gives NaN.
func Median(x []float64) float64 {
	n := len(x)
	if n == 0 {
		return math.NaN()
	}
	cp := make([]float64, n)
	copy(cp, x)
	sort.Float64s(cp)
	mid := n >> 1 // bitwise division by 2
	if n&1 == 0 { // even
		return (cp[mid-1] + cp[mid]) * 0.5
	}
	return cp[mid]
}

// Mode returns the most frequent value in the slice.
// Ties go to the smallest tied value, so the result does not depend on input order.
// ok is false for an empty slice.
func Mode[T cmp.Ordered](x []T) (mode T, ok bool) {
	if len(x) == 0 {
		return mode, false
	}
	counts := make(map[T]int, len(x))
	maxCount := 0
	for _, v := range x {
		counts[v]++
		c := counts[v]
		if c > maxCount || (c == maxCount && v < mode) {
			maxCount = c
			mode = v
		}
	}
	return mode, true
}
