package dataprep

import (
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/stats"
)

// Fill describes what imputation did to one column.
type Fill struct {
	Column string
	Kind   data.Kind
	Count  int    // cells filled
	Value  string // value written, as text
	Note   string
}

// Impute fills missing cells: numeric columns get the median of their non-missing values,
// categorical columns the mode. Columns are named by the caller so that the classification
// used is the one taken before any mutation. Names absent from t are ignored.
// Only columns that had missing cells are reported.
func Impute(t *data.Table, numeric, categorical []string) (*data.Table, []Fill) {
	var fills []Fill
	for _, name := range numeric {
		col, ok := t.Column(name)
		if !ok || col.Kind != data.Numeric {
			continue
		}
		if f, changed := ImputeMedian(col); changed {
			fills = append(fills, f)
		}
	}
	for _, name := range categorical {
		col, ok := t.Column(name)
		if !ok || col.Kind != data.Categorical {
			continue
		}
		if f, changed := ImputeMode(col); changed {
			fills = append(fills, f)
		}
	}
	return t, fills
}

// ImputeMedian replaces missing numeric values with the column median, in place.
// A column with no values at all is filled with 0.
func ImputeMedian(col *data.Column) (Fill, bool) {
	missing := col.NullCount()
	if missing == 0 {
		return Fill{}, false
	}

	nums := make([]float64, 0, col.Len()-missing)
	for i, v := range col.Num {
		if !col.Null[i] {
			nums = append(nums, v)
		}
	}
	fill := Fill{Column: col.Name, Kind: data.Numeric, Count: missing}
	median := 0.0
	if len(nums) > 0 {
		median = stats.Median(nums)
	} else {
		fill.Note = "no observed values, filled with 0"
	}
	fill.Value = data.FormatFloat(median)

	for i := range col.Num {
		if col.Null[i] {
			col.Num[i] = median
			col.Null[i] = false
		}
	}
	return fill, true
}

// ImputeMode replaces missing categorical values with the most frequent value, in place.
// Ties go to the lexicographically smallest value. A column with no values is left as is.
func ImputeMode(col *data.Column) (Fill, bool) {
	missing := col.NullCount()
	if missing == 0 {
		return Fill{}, false
	}

	vals := make([]string, 0, col.Len()-missing)
	for i, v := range col.Str {
		if !col.Null[i] {
			vals = append(vals, v)
		}
	}
	mode, ok := stats.Mode(vals)
	if !ok {
		return Fill{Column: col.Name, Kind: data.Categorical, Note: "no observed values, left missing"}, true
	}

	for i := range col.Str {
		if col.Null[i] {
			col.Str[i] = mode
			col.Null[i] = false
		}
	}
	return Fill{Column: col.Name, Kind: data.Categorical, Count: missing, Value: mode}, true
}
