package dataprep

import (
	"fmt"
	"sort"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

// Vocabulary returns the distinct non-missing values of a column, sorted.
func Vocabulary(col *data.Column) []string {
	unique := map[string]struct{}{}
	format := col.Formatter()
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		unique[format(i)] = struct{}{}
	}
	out := make([]string, 0, len(unique))
	for v := range unique {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// OneHot replaces column name with 0/1 indicator columns, one per distinct value except the
// first in sorted order, which is the reference level. Indicators are named "<name>_<value>" and
// appended at the end of the schema; a missing cell gives 0 in every indicator.
// It returns the indicator names in order.
func OneHot(t *data.Table, name string) (*data.Table, []string, error) {
	col, ok := t.Column(name)
	if !ok {
		return t, nil, &SkipError{Missing: []string{name}, Reason: "encode column absent"}
	}

	vocab := Vocabulary(col)
	levels := []string{}
	if len(vocab) > 1 {
		levels = vocab[1:]
	}

	index := make(map[string]int, len(levels))
	indicators := make([]*data.Column, len(levels))
	names := make([]string, len(levels))
	for k, v := range levels {
		index[v] = k
		names[k] = name + "_" + v
		if t.Has(names[k]) {
			return nil, nil, fmt.Errorf("failed to add indicator for %q: %w: %q", name, data.ErrDuplicateColumn, names[k])
		}
		indicators[k] = data.NewNumeric(names[k], make([]float64, col.Len()), nil)
	}
	format := col.Formatter()
	for i := 0; i < col.Len(); i++ {
		if col.IsNull(i) {
			continue
		}
		if k, ok := index[format(i)]; ok {
			indicators[k].Num[i] = 1
		}
	}

	t.Drop(name)
	for _, ind := range indicators {
		if err := t.Append(ind); err != nil {
			return nil, nil, fmt.Errorf("failed to add indicator for %q: %w", name, err)
		}
	}
	return t, names, nil
}
