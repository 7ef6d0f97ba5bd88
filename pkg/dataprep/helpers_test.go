package dataprep

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/data"
)

func mustTable(t *testing.T, cols ...*data.Column) *data.Table {
	t.Helper()
	tbl, err := data.NewTable(cols...)
	require.NoError(t, err)
	return tbl
}

func column(t *testing.T, tbl *data.Table, name string) *data.Column {
	t.Helper()
	col, ok := tbl.Column(name)
	require.True(t, ok, "column %q", name)
	return col
}
