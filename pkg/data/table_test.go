package data

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{12, "12"},
		{-3, "-3"},
		{1.5, "1.5"},
		{0.1, "0.1"},
		{1e20, "1e+20"},
		{-0.000123, "-0.000123"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatFloat(tt.in))
		})
	}
}

func TestColumn_Format(t *testing.T) {
	num := NewNumeric("n", []float64{1, 2.25, 0}, []bool{false, false, true})
	assert.Equal(t, "1", num.Format(0))
	assert.Equal(t, "2.25", num.Format(1))
	assert.Equal(t, "", num.Format(2))
	assert.Equal(t, 1, num.NullCount())

	day := time.Date(2004, 12, 26, 0, 0, 0, 0, time.UTC)
	dates := NewDatetime("d", []time.Time{day, {}}, []bool{false, true})
	assert.Equal(t, "2004-12-26", dates.Format(0))
	assert.Equal(t, "", dates.Format(1))

	stamped := NewDatetime("d", []time.Time{day, day.Add(90 * time.Minute)}, nil)
	assert.Equal(t, "2004-12-26 00:00:00", stamped.Format(0))
	assert.Equal(t, "2004-12-26 01:30:00", stamped.Format(1))
}

func TestColumn_Select(t *testing.T) {
	c := NewCategorical("c", []string{"a", "b", ""}, []bool{false, false, true})
	got := c.Select([]int{2, 0})
	assert.Equal(t, []string{"", "a"}, got.Str)
	assert.Equal(t, []bool{true, false}, got.Null)
	assert.Equal(t, Categorical, got.Kind)
}

func TestTable_Schema(t *testing.T) {
	tbl, err := NewTable(
		NewNumeric("a", []float64{1, 2}, nil),
		NewCategorical("b", []string{"x", "y"}, nil),
	)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Rows())
	assert.Equal(t, []string{"a", "b"}, tbl.Names())
	assert.Equal(t, []string{"c"}, tbl.Missing("a", "c"))

	err = tbl.Append(NewNumeric("a", []float64{0, 0}, nil))
	assert.ErrorIs(t, err, ErrDuplicateColumn)

	err = tbl.Append(NewNumeric("c", []float64{0}, nil))
	assert.ErrorIs(t, err, ErrLengthMismatch)

	err = tbl.Replace(NewNumeric("zz", []float64{0, 0}, nil))
	assert.ErrorIs(t, err, ErrNoColumn)

	require.NoError(t, tbl.Replace(NewNumeric("b", []float64{7, 8}, nil)))
	col, ok := tbl.Column("b")
	require.True(t, ok)
	assert.Equal(t, Numeric, col.Kind)
	assert.Equal(t, []string{"a", "b"}, tbl.Names(), "replace keeps position")

	require.NoError(t, tbl.Append(NewNumeric("c", []float64{3, 4}, nil)))
	assert.True(t, tbl.Drop("a"))
	assert.False(t, tbl.Drop("a"))
	assert.Equal(t, []string{"b", "c"}, tbl.Names())
	col, ok = tbl.Column("c")
	require.True(t, ok)
	assert.Equal(t, []float64{3, 4}, col.Num)
}

func TestTable_SelectRows(t *testing.T) {
	tbl, err := NewTable(NewNumeric("a", []float64{1, 2, 3}, nil))
	require.NoError(t, err)
	tbl.Encoding = "UTF-8"

	out := tbl.SelectRows([]int{2, 1})
	assert.Equal(t, 2, out.Rows())
	assert.Equal(t, "UTF-8", out.Encoding)
	col, _ := out.Column("a")
	assert.Equal(t, []float64{3, 2}, col.Num)

	orig, _ := tbl.Column("a")
	assert.Equal(t, 3, orig.Len(), "source table is unchanged")
}

func TestEmptyTable(t *testing.T) {
	tbl, err := NewTable()
	require.NoError(t, err)
	assert.Equal(t, 0, tbl.Rows())
	assert.Equal(t, 0, tbl.Width())
}
