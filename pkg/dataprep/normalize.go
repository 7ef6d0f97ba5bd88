package dataprep

import (
	"strings"
	"time"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

// DefaultDateLayouts are tried in order for every date cell.
var DefaultDateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	time.RFC3339,
	"2006/01/02",
	"01/02/2006",
	"1/2/2006",
	"02 Jan 2006",
	"Jan 2, 2006",
	"2006-01",
	"2006",
}

// NormalizeDates converts each listed column that exists into a datetime column.
// Cells that match none of the layouts become missing. It returns the names it converted.
func NormalizeDates(t *data.Table, columns, layouts []string) (*data.Table, []string, error) {
	if len(layouts) == 0 {
		layouts = DefaultDateLayouts
	}
	var converted []string
	for _, name := range columns {
		col, ok := t.Column(name)
		if !ok {
			continue
		}
		if err := t.Replace(parseDates(col, layouts)); err != nil {
			return nil, nil, err
		}
		converted = append(converted, name)
	}
	return t, converted, nil
}

func parseDates(col *data.Column, layouts []string) *data.Column {
	if col.Kind == data.Datetime {
		return col
	}
	n := col.Len()
	times := make([]time.Time, n)
	null := make([]bool, n)
	format := col.Formatter()
	for i := 0; i < n; i++ {
		if col.IsNull(i) {
			null[i] = true
			continue
		}
		ts, ok := parseDate(strings.TrimSpace(format(i)), layouts)
		if !ok {
			null[i] = true
			continue
		}
		times[i] = ts
	}
	return data.NewDatetime(col.Name, times, null)
}

func parseDate(s string, layouts []string) (time.Time, bool) {
	for _, layout := range layouts {
		if ts, err := time.Parse(layout, s); err == nil {
			return ts.UTC(), true
		}
	}
	return time.Time{}, false
}
