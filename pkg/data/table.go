package data

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"
)

// Kind classifies a column and decides which imputation and scaling policy applies to it.
type Kind int

const (
	Numeric Kind = iota
	Categorical
	Datetime
)

func (k Kind) String() string {
	switch k {
	case Numeric:
		return "numeric"
	case Categorical:
		return "categorical"
	case Datetime:
		return "datetime"
	default:
		return "unknown"
	}
}

// Date layouts used when a datetime column is written out.
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

var (
	ErrDuplicateColumn = errors.New("duplicate column name")
	ErrLengthMismatch  = errors.New("column length mismatch")
	ErrNoColumn        = errors.New("column not found")
)

// Column is a named, typed value sequence with a null mask.
// Only the slice matching Kind is populated.
type Column struct {
	Name string
	Kind Kind
	Num  []float64
	Str  []string
	Time []time.Time
	Null []bool
}

// NewNumeric builds a numeric column. A nil null mask means no missing values.
func NewNumeric(name string, vals []float64, null []bool) *Column {
	return &Column{Name: name, Kind: Numeric, Num: vals, Null: maskFor(null, len(vals))}
}

// NewCategorical builds a categorical column.
func NewCategorical(name string, vals []string, null []bool) *Column {
	return &Column{Name: name, Kind: Categorical, Str: vals, Null: maskFor(null, len(vals))}
}

// NewDatetime builds a datetime column.
func NewDatetime(name string, vals []time.Time, null []bool) *Column {
	return &Column{Name: name, Kind: Datetime, Time: vals, Null: maskFor(null, len(vals))}
}

func maskFor(null []bool, n int) []bool {
	if null == nil {
		return make([]bool, n)
	}
	return null
}

// Len returns the number of cells in the column.
func (c *Column) Len() int { return len(c.Null) }

// IsNull reports whether row i is missing.
func (c *Column) IsNull(i int) bool { return c.Null[i] }

// NullCount returns the number of missing cells.
func (c *Column) NullCount() int {
	n := 0
	for _, null := range c.Null {
		if null {
			n++
		}
	}
	return n
}

// Format renders row i as text. Missing cells render as "".
// Use Formatter when rendering many rows of the same column.
func (c *Column) Format(i int) string {
	return c.Formatter()(i)
}

// Formatter returns a function rendering rows of c as Format does. The datetime layout is
// chosen once, from the values the column holds when Formatter is called.
func (c *Column) Formatter() func(i int) string {
	switch c.Kind {
	case Numeric:
		return func(i int) string {
			if c.Null[i] {
				return ""
			}
			return FormatFloat(c.Num[i])
		}
	case Datetime:
		layout := c.timeLayout()
		return func(i int) string {
			if c.Null[i] {
				return ""
			}
			return c.Time[i].Format(layout)
		}
	default:
		return func(i int) string {
			if c.Null[i] {
				return ""
			}
			return c.Str[i]
		}
	}
}

// timeLayout picks the date-only layout when no value carries a time of day.
func (c *Column) timeLayout() string {
	for i, t := range c.Time {
		if c.Null[i] {
			continue
		}
		if h, m, s := t.Clock(); h != 0 || m != 0 || s != 0 || t.Nanosecond() != 0 {
			return DateTimeLayout
		}
	}
	return DateLayout
}

// Select returns a new column holding the given rows in the given order.
func (c *Column) Select(rows []int) *Column {
	out := &Column{Name: c.Name, Kind: c.Kind, Null: make([]bool, len(rows))}
	switch c.Kind {
	case Numeric:
		out.Num = make([]float64, len(rows))
	case Datetime:
		out.Time = make([]time.Time, len(rows))
	default:
		out.Str = make([]string, len(rows))
	}
	for j, i := range rows {
		out.Null[j] = c.Null[i]
		switch c.Kind {
		case Numeric:
			out.Num[j] = c.Num[i]
		case Datetime:
			out.Time[j] = c.Time[i]
		default:
			out.Str[j] = c.Str[i]
		}
	}
	return out
}

// FormatFloat renders v with the shortest representation that parses back to v.
// Whole numbers print without a decimal point or exponent.
func FormatFloat(v float64) string {
	if v == math.Trunc(v) && math.Abs(v) < 1e15 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// Table is an ordered set of equal-length columns.
type Table struct {
	cols  []*Column
	index map[string]int

	// Encoding names the text encoding the source was decoded with, if it came from a file.
	Encoding string
}

// NewTable assembles columns into a table.
func NewTable(cols ...*Column) (*Table, error) {
	t := &Table{index: make(map[string]int, len(cols))}
	for _, c := range cols {
		if err := t.Append(c); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// Rows returns the number of records.
func (t *Table) Rows() int {
	if len(t.cols) == 0 {
		return 0
	}
	return t.cols[0].Len()
}

// Width returns the number of columns.
func (t *Table) Width() int { return len(t.cols) }

// Columns returns the columns in schema order. The slice must not be modified.
func (t *Table) Columns() []*Column { return t.cols }

// Names returns the column names in schema order.
func (t *Table) Names() []string {
	names := make([]string, len(t.cols))
	for i, c := range t.cols {
		names[i] = c.Name
	}
	return names
}

// Column looks a column up by name.
func (t *Table) Column(name string) (*Column, bool) {
	i, ok := t.index[name]
	if !ok {
		return nil, false
	}
	return t.cols[i], true
}

// Has reports whether the named column exists.
func (t *Table) Has(name string) bool {
	_, ok := t.index[name]
	return ok
}

// Missing returns the names that are not columns of t, in the order given.
func (t *Table) Missing(names ...string) []string {
	var out []string
	for _, n := range names {
		if !t.Has(n) {
			out = append(out, n)
		}
	}
	return out
}

// Append adds c at the end of the schema.
func (t *Table) Append(c *Column) error {
	if _, ok := t.index[c.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateColumn, c.Name)
	}
	if len(t.cols) > 0 && c.Len() != t.Rows() {
		return fmt.Errorf("%w: %q has %d rows, table has %d", ErrLengthMismatch, c.Name, c.Len(), t.Rows())
	}
	t.index[c.Name] = len(t.cols)
	t.cols = append(t.cols, c)
	return nil
}

// Replace swaps the column with the same name, keeping its position.
func (t *Table) Replace(c *Column) error {
	i, ok := t.index[c.Name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNoColumn, c.Name)
	}
	if c.Len() != t.Rows() {
		return fmt.Errorf("%w: %q has %d rows, table has %d", ErrLengthMismatch, c.Name, c.Len(), t.Rows())
	}
	t.cols[i] = c
	return nil
}

// Drop removes the named column. It reports whether the column existed.
func (t *Table) Drop(name string) bool {
	i, ok := t.index[name]
	if !ok {
		return false
	}
	t.cols = append(t.cols[:i], t.cols[i+1:]...)
	delete(t.index, name)
	for j := i; j < len(t.cols); j++ {
		t.index[t.cols[j].Name] = j
	}
	return true
}

// SelectRows returns a table holding the given rows of every column.
func (t *Table) SelectRows(rows []int) *Table {
	out := &Table{index: make(map[string]int, len(t.cols)), Encoding: t.Encoding}
	for i, c := range t.cols {
		out.cols = append(out.cols, c.Select(rows))
		out.index[c.Name] = i
	}
	return out
}
