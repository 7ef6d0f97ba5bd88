package pipeline

import "github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"

// Classification is the kind of every column, captured once before imputation.
// Later stages read it instead of re-deriving kinds from a mutated table.
type Classification struct {
	Kinds       map[string]data.Kind
	Numeric     []string
	Categorical []string
	Datetime    []string
}

// Classify snapshots the column kinds of t in schema order.
func Classify(t *data.Table) *Classification {
	c := &Classification{Kinds: make(map[string]data.Kind, t.Width())}
	for _, col := range t.Columns() {
		c.Kinds[col.Name] = col.Kind
		switch col.Kind {
		case data.Numeric:
			c.Numeric = append(c.Numeric, col.Name)
		case data.Categorical:
			c.Categorical = append(c.Categorical, col.Name)
		case data.Datetime:
			c.Datetime = append(c.Datetime, col.Name)
		}
	}
	return c
}

// Kind returns the recorded kind of a column.
func (c *Classification) Kind(name string) (data.Kind, bool) {
	k, ok := c.Kinds[name]
	return k, ok
}

// ColumnProfile summarizes one column of a table.
type ColumnProfile struct {
	Name    string
	Kind    data.Kind
	Missing int
	Rows    int
}

// Profile reports kind and missing count for every column of t.
func Profile(t *data.Table) []ColumnProfile {
	out := make([]ColumnProfile, 0, t.Width())
	for _, col := range t.Columns() {
		out = append(out, ColumnProfile{Name: col.Name, Kind: col.Kind, Missing: col.NullCount(), Rows: col.Len()})
	}
	return out
}
