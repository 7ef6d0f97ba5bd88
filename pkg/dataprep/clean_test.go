package dataprep

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

func TestDropDuplicates(t *testing.T) {
	day := time.Date(2004, 12, 26, 0, 0, 0, 0, time.UTC)
	tbl := mustTable(t,
		data.NewCategorical("Country", []string{"India", "India", "India", "Chile", ""}, []bool{false, false, false, false, true}),
		data.NewNumeric("Deaths", []float64{10, 10, 11, 10, 0}, []bool{false, false, false, false, true}),
		data.NewDatetime("Start", []time.Time{day, day, day, day, {}}, []bool{false, false, false, false, true}),
	)

	out, removed := DropDuplicates(tbl)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 4, out.Rows())
	assert.Equal(t, []string{"India", "India", "Chile", ""}, column(t, out, "Country").Str)
	assert.Equal(t, []float64{10, 11, 10, 0}, column(t, out, "Deaths").Num)

	again, removed := DropDuplicates(out)
	assert.Zero(t, removed, "deduplication is idempotent")
	assert.Equal(t, 4, again.Rows())
}

func TestDropDuplicates_NullsMatchNulls(t *testing.T) {
	tbl := mustTable(t,
		data.NewCategorical("a", []string{"", ""}, []bool{true, true}),
		data.NewNumeric("b", []float64{1, 1}, nil),
	)
	out, removed := DropDuplicates(tbl)
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, out.Rows())
}

func TestRowKey_NoCollisions(t *testing.T) {
	tbl := mustTable(t,
		data.NewCategorical("a", []string{"x\x1fy", "x", ""}, []bool{false, false, false}),
		data.NewCategorical("b", []string{"", "y\x1f", ""}, []bool{false, false, true}),
	)
	keys := map[string]bool{}
	for i := 0; i < tbl.Rows(); i++ {
		keys[rowKey(tbl, i)] = true
	}
	assert.Len(t, keys, 3)
}
