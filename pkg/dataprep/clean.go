package dataprep

import (
	"strconv"
	"strings"
	"time"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

// DropDuplicates removes rows that equal an earlier row in every column, keeping the first occurrence.
// It returns the deduplicated table and the number of rows removed.
func DropDuplicates(t *data.Table) (*data.Table, int) {
	seen := make(map[string]struct{}, t.Rows())
	keep := make([]int, 0, t.Rows())
	for i := 0; i < t.Rows(); i++ {
		key := rowKey(t, i)
		if _, ok := seen[key]; !ok {
			seen[key] = struct{}{}
			keep = append(keep, i)
		}
	}
	removed := t.Rows() - len(keep)
	if removed == 0 {
		return t, 0
	}
	return t.SelectRows(keep), removed
}

// rowKey encodes a row so that equal rows, and only equal rows, share a key.
func rowKey(t *data.Table, i int) string {
	var b strings.Builder
	for _, c := range t.Columns() {
		if c.IsNull(i) {
			b.WriteString("\x00")
		} else {
			b.WriteByte('v')
			switch c.Kind {
			case data.Numeric:
				b.WriteString(strconv.FormatFloat(c.Num[i], 'g', -1, 64))
			case data.Datetime:
				b.WriteString(c.Time[i].Format(time.RFC3339Nano))
			default:
				b.WriteString(strconv.Quote(c.Str[i]))
			}
		}
		b.WriteByte('\x1f')
	}
	return b.String()
}
