package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestFromColumns(t *testing.T) {
	m, err := FromColumns([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	r, c := m.Dims()
	assert.Equal(t, 3, r)
	assert.Equal(t, 2, c)
	assert.Equal(t, []float64{1, 4, 2, 5, 3, 6}, m.Data)
	assert.Equal(t, []float64{2, 5}, m.Row(1))
	assert.Equal(t, 6.0, m.At(2, 1))

	_, err = FromColumns([][]float64{{1, 2}, {3}})
	assert.Error(t, err)

	empty, err := FromColumns(nil)
	require.NoError(t, err)
	r, c = empty.Dims()
	assert.Zero(t, r)
	assert.Zero(t, c)
}

func TestMatrix_GonumInterop(t *testing.T) {
	m := NewMatrix(2, 2)
	m.Set(0, 0, 1)
	m.Set(0, 1, 2)
	m.Set(1, 0, 3)
	m.Set(1, 1, 4)

	var prod mat.Dense
	prod.Mul(m, m.T())
	got := FromDense(&prod)
	assert.Equal(t, []float64{5, 11, 11, 25}, got.Data)
}
