package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMedian(t *testing.T) {
	tests := []struct {
		name string
		in   []float64
		want float64
	}{
		{"odd", []float64{5, 1, 3}, 3},
		{"even", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
		{"negative", []float64{-2, -8, 0}, -2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := append([]float64(nil), tt.in...)
			assert.Equal(t, tt.want, Median(in))
			assert.Equal(t, tt.in, in, "input must not be reordered")
		})
	}
	assert.True(t, math.IsNaN(Median(nil)))
}

func TestMode(t *testing.T) {
	got, ok := Mode([]string{"Storm", "Flood", "Storm", "Flood", "Drought"})
	assert.True(t, ok)
	assert.Equal(t, "Flood", got, "ties go to the smallest value")

	got, ok = Mode([]string{"b", "a", "b"})
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	n, ok := Mode([]float64{3, 1, 3, 1, 2})
	assert.True(t, ok)
	assert.Equal(t, 1.0, n)

	_, ok = Mode([]string{})
	assert.False(t, ok)
}

func TestVariance(t *testing.T) {
	x := []float64{2, 4, 4, 4, 5, 5, 7, 9}
	assert.InDelta(t, 4.0, Variance(x, 0), 1e-12)
	assert.InDelta(t, 32.0/7, Variance(x, 1), 1e-12)
	assert.InDelta(t, 2.0, Std(x, 0), 1e-12)

	assert.Equal(t, 0.0, Variance([]float64{3}, 0))
	assert.True(t, math.IsNaN(Variance([]float64{3}, 1)))
	assert.True(t, math.IsNaN(Variance(nil, 0)))
}

func TestMean(t *testing.T) {
	assert.InDelta(t, 2.5, Mean([]float64{1, 2, 3, 4}), 1e-12)
	assert.True(t, math.IsNaN(Mean(nil)))
}
