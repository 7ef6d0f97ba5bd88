package core

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense row-major matrix. It satisfies gonum's mat.Matrix,
// so it can be handed straight to gonum decompositions.
type Matrix struct {
	R, C int
	Data []float64
}

var _ mat.Matrix = (*Matrix)(nil)

// NewMatrix allocates a zero matrix.
func NewMatrix(r, c int) *Matrix {
	return &Matrix{R: r, C: c, Data: make([]float64, r*c)}
}

// FromColumns builds a Matrix from column-major slices (copies data).
// Every column must have the same length.
func FromColumns(cols [][]float64) (*Matrix, error) {
	if len(cols) == 0 {
		return &Matrix{}, nil
	}
	r := len(cols[0])
	m := NewMatrix(r, len(cols))
	for j, col := range cols {
		if len(col) != r {
			return nil, errors.New("columns have different lengths")
		}
		for i, v := range col {
			m.Data[i*m.C+j] = v
		}
	}
	return m, nil
}

// Dims returns the number of rows and columns.
func (m *Matrix) Dims() (r, c int) { return m.R, m.C }

// At returns element (i, j).
func (m *Matrix) At(i, j int) float64 { return m.Data[i*m.C+j] }

// Set sets element (i, j).
func (m *Matrix) Set(i, j int, v float64) { m.Data[i*m.C+j] = v }

// T returns the transpose view of the matrix.
func (m *Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []float64 {
	row := make([]float64, m.C)
	copy(row, m.Data[i*m.C:(i+1)*m.C])
	return row
}

// FromDense copies any gonum matrix into a Matrix.
func FromDense(a mat.Matrix) *Matrix {
	r, c := a.Dims()
	m := NewMatrix(r, c)
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.Data[i*c+j] = a.At(i, j)
		}
	}
	return m
}
