package report

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/KTrigunayat/AI-Powered-Disaster-Relief-Supply-Demand-Forecast/pkg/model"
)

// ErrNothingToPlot is returned when no projection was given to the chart.
var ErrNothingToPlot = errors.New("no projection to plot")

// SaveVarianceChart draws the explained variance ratio per component as grouped bars, one group
// per component and one bar per method. The image format follows the file extension (png, svg, pdf).
// Nil projections are ignored.
func SaveVarianceChart(path string, projections ...*model.Projection) error {
	var series []*model.Projection
	width := 0
	for _, pr := range projections {
		if pr == nil || len(pr.ExplainedVarianceRatio) == 0 {
			continue
		}
		series = append(series, pr)
		width = max(width, len(pr.ExplainedVarianceRatio))
	}
	if len(series) == 0 {
		return ErrNothingToPlot
	}

	p := plot.New()
	p.Title.Text = "Explained Variance Ratio per Component"
	p.X.Label.Text = "Component"
	p.Y.Label.Text = "Ratio"
	p.Y.Min = 0
	p.Legend.Top = true

	barWidth := vg.Points(14)
	for i, s := range series {
		bars, err := plotter.NewBarChart(plotter.Values(s.ExplainedVarianceRatio), barWidth)
		if err != nil {
			return fmt.Errorf("failed to build %s bars: %w", s.Method, err)
		}
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = plotutil.Color(i)
		bars.Offset = vg.Length(float64(i)-float64(len(series)-1)/2) * barWidth
		p.Add(bars)
		p.Legend.Add(s.Method, bars)
	}

	labels := make([]string, width)
	for i := range labels {
		labels[i] = componentLabel(i)
	}
	p.NominalX(labels...)

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("failed to create chart directory: %w", err)
		}
	}
	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return fmt.Errorf("failed to save chart %s: %w", path, err)
	}
	return nil
}
