// Package report renders a pipeline run for the terminal and draws its explained-variance chart.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/dataprep"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/model"
	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/pipeline"
)

func newTable(w io.Writer, title string) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	if title != "" {
		t.SetTitle(title)
	}
	return t
}

func rightAlign(cols ...int) []table.ColumnConfig {
	cfgs := make([]table.ColumnConfig, 0, len(cols))
	for _, n := range cols {
		cfgs = append(cfgs, table.ColumnConfig{Number: n, Align: text.AlignRight})
	}
	return cfgs
}

// Summary prints the one-line facts of a run.
func Summary(w io.Writer, r *pipeline.Report) {
	t := newTable(w, "Run")
	t.AppendRow(table.Row{"Run ID", r.RunID})
	t.AppendRow(table.Row{"Input", r.Input})
	t.AppendRow(table.Row{"Encoding", r.Encoding})
	t.AppendRow(table.Row{"Shape", fmt.Sprintf("%d rows x %d columns", r.Rows, r.Columns)})
	t.AppendRow(table.Row{"Duplicates removed", r.Duplicates})
	if r.Severity != "" {
		t.AppendRow(table.Row{"Severity column", r.Severity})
	}
	if len(r.Indicators) > 0 {
		t.AppendRow(table.Row{"Indicators", strings.Join(r.Indicators, ", ")})
	}
	if len(r.Constant) > 0 {
		t.AppendRow(table.Row{"Constant columns", strings.Join(r.Constant, ", ")})
	}
	if m := r.SeverityMismatch; !m.Empty() {
		t.AppendRow(table.Row{"Severity check mismatch", mismatch(m)})
	}
	t.Render()
}

func mismatch(m dataprep.SeverityMismatch) string {
	var parts []string
	if len(m.RequiredUnused) > 0 {
		parts = append(parts, "required but unused: "+strings.Join(m.RequiredUnused, ", "))
	}
	if len(m.TermsUnchecked) > 0 {
		parts = append(parts, "used but not required: "+strings.Join(m.TermsUnchecked, ", "))
	}
	return strings.Join(parts, "; ")
}

// Outcomes prints one row per stage.
func Outcomes(w io.Writer, r *pipeline.Report) {
	t := newTable(w, "Stages")
	t.AppendHeader(table.Row{"Stage", "Status", "Rows", "Columns", "Elapsed", "Note"})
	for _, o := range r.Outcomes {
		t.AppendRow(table.Row{
			o.Stage,
			string(o.Status),
			fmt.Sprintf("%d -> %d", o.RowsIn, o.RowsOut),
			fmt.Sprintf("%d -> %d", o.ColsIn, o.ColsOut),
			o.Elapsed.Round(time.Microsecond),
			note(o),
		})
	}
	t.SetColumnConfigs(rightAlign(3, 4, 5))
	t.Render()
}

func note(o pipeline.Outcome) string {
	switch {
	case o.Reason != "" && len(o.Missing) > 0:
		return fmt.Sprintf("%s (missing: %s)", o.Reason, strings.Join(o.Missing, ", "))
	case o.Reason != "":
		return o.Reason
	case len(o.Missing) > 0:
		return "missing: " + strings.Join(o.Missing, ", ")
	}
	return ""
}

// Fills prints the imputed value of every column that had gaps.
func Fills(w io.Writer, fills []dataprep.Fill) {
	if len(fills) == 0 {
		_, _ = fmt.Fprintln(w, "(no missing values imputed)")
		return
	}
	t := newTable(w, "Imputation")
	t.AppendHeader(table.Row{"Column", "Kind", "Filled", "Value", "Note"})
	for _, f := range fills {
		t.AppendRow(table.Row{f.Column, f.Kind.String(), f.Count, f.Value, f.Note})
	}
	t.SetColumnConfigs(rightAlign(3))
	t.Render()
}

// Profile prints the kind and missing count of every column, as seen before imputation.
func Profile(w io.Writer, r *pipeline.Report) {
	t := newTable(w, "Columns")
	t.AppendHeader(table.Row{"Column", "Kind", "Missing", "Missing %"})
	for _, c := range r.Profile {
		pct := 0.0
		if c.Rows > 0 {
			pct = 100 * float64(c.Missing) / float64(c.Rows)
		}
		t.AppendRow(table.Row{c.Name, c.Kind.String(), c.Missing, fmt.Sprintf("%.2f", pct)})
	}
	t.SetColumnConfigs(rightAlign(3, 4))
	t.Render()
}

// Reduction prints the explained variance ratio of each component, per method, with the running total.
func Reduction(w io.Writer, projections ...*model.Projection) {
	for _, p := range projections {
		if p == nil {
			continue
		}
		t := newTable(w, fmt.Sprintf("Explained variance ratio (%s)", p.Method))
		t.AppendHeader(table.Row{"Component", "Variance", "Ratio", "Cumulative"})
		cum := 0.0
		for i, ratio := range p.ExplainedVarianceRatio {
			cum += ratio
			t.AppendRow(table.Row{
				componentLabel(i),
				fmt.Sprintf("%.4f", p.ExplainedVariance[i]),
				fmt.Sprintf("%.4f", ratio),
				fmt.Sprintf("%.4f", cum),
			})
		}
		t.AppendFooter(table.Row{"Total", "", fmt.Sprintf("%.4f", p.TotalRatio()), ""})
		t.SetColumnConfigs(rightAlign(2, 3, 4))
		t.Render()
	}
}

func componentLabel(i int) string { return fmt.Sprintf("PC%d", i+1) }
