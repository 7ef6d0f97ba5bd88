package dataprep

import (
	"fmt"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/stats"
)

// Standardize rescales the named numeric columns in place to zero mean and unit variance,
// using statistics from the table itself. Names absent from t are ignored.
// It returns the names it scaled and the fitted scaler.
func Standardize(t *data.Table, columns []string, ddof int) (*data.Table, []string, *stats.StandardScaler, error) {
	var (
		names []string
		cols  []*data.Column
		vals  [][]float64
	)
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		if col.Kind != data.Numeric {
			return nil, nil, nil, fmt.Errorf("cannot scale %q: column is %s", name, col.Kind)
		}
		if n := col.NullCount(); n > 0 {
			return nil, nil, nil, fmt.Errorf("cannot scale %q: %d missing values", name, n)
		}
		names = append(names, name)
		cols = append(cols, col)
		vals = append(vals, col.Num)
	}

	scaler := stats.NewStandardScaler(ddof)
	scaled := scaler.FitTransform(vals)
	for j, col := range cols {
		col.Num = scaled[j]
	}
	return t, names, scaler, nil
}
