package figure

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hedonic-org/hedonic/engine"
)

// ============================================================================
// DISTRIBUTION FIGURES — ECDF STAIRCASE, DENSITY HISTOGRAM
// ============================================================================

// ECDF renders the empirical distribution function as a staircase that
// steps up after each observation.
func ECDF(d *engine.Distribution) (*plot.Plot, error) {
	if d == nil || len(d.ECDF) == 0 {
		return nil, fmt.Errorf("no ecdf points")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("ECDF of %s", engine.LabelFor(d.Key))
	p.X.Label.Text = engine.LabelFor(d.Key)
	p.Y.Label.Text = "F(x)"
	p.Y.Min, p.Y.Max = 0, 1.05

	steps, err := plotter.NewLine(points(d.ECDF))
	if err != nil {
		return nil, err
	}
	steps.StepStyle = plotter.PostStep
	steps.Color = seriesColor(0)
	steps.Width = vg.Points(1.5)

	p.Add(plotter.NewGrid(), steps)
	return p, nil
}

// Histogram renders the density-scaled histogram with the kernel density
// estimate on top. When the gamma fit covers the same column its density
// curve is overlaid as a dashed line.
func Histogram(d *engine.Distribution, g *engine.GammaFit) (*plot.Plot, error) {
	if d == nil || len(d.Values) == 0 {
		return nil, fmt.Errorf("no observations")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Distribution of %s", engine.LabelFor(d.Key))
	p.X.Label.Text = engine.LabelFor(d.Key)
	p.Y.Label.Text = "density"

	bins := d.Bins
	if bins <= 0 {
		bins = engine.SturgesBins(len(d.Values))
	}
	hist, err := plotter.NewHist(plotter.Values(d.Values), bins)
	if err != nil {
		return nil, err
	}
	hist.Normalize(1) // bar areas sum to one, same scale as the curves
	hist.FillColor = withAlpha(seriesColor(0), 0x55)
	hist.LineStyle.Color = seriesColor(0)
	p.Add(hist)

	if len(d.Density) > 0 {
		kde, err := plotter.NewLine(points(d.Density))
		if err != nil {
			return nil, err
		}
		kde.Color = seriesColor(1)
		kde.Width = vg.Points(2)
		p.Add(kde)
		p.Legend.Add(fmt.Sprintf("kde (bw %.4g)", d.Bandwidth), kde)
	}

	if g != nil && g.Key == d.Key && len(g.Curve) > 0 {
		fit, err := plotter.NewLine(points(g.Curve))
		if err != nil {
			return nil, err
		}
		fit.Color = seriesColor(3)
		fit.Width = vg.Points(2)
		fit.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(fit)
		p.Legend.Add(fmt.Sprintf("gamma (shape %.2f, rate %.3g)", g.Shape, g.Rate), fit)
	}

	p.Legend.Top = true
	return p, nil
}
