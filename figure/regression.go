package figure

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hedonic-org/hedonic/engine"
)

// ============================================================================
// REGRESSION FIGURES — FITTED LINE, NORMAL Q-Q
// ============================================================================

// FittedLine renders the regression scatter with the least-squares line
// drawn across the full x range.
func FittedLine(reg *engine.Regression) (*plot.Plot, error) {
	if reg == nil || len(reg.Points) == 0 {
		return nil, fmt.Errorf("no regression points")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s vs %s", engine.LabelFor(reg.YKey), engine.LabelFor(reg.XKey))
	p.X.Label.Text = engine.LabelFor(reg.XKey)
	p.Y.Label.Text = engine.LabelFor(reg.YKey)

	scatter, err := plotter.NewScatter(points(reg.Points))
	if err != nil {
		return nil, err
	}
	scatter.Radius = vg.Points(2)
	scatter.Color = withAlpha(seriesColor(0), 0xB0)

	fit := plotter.NewFunction(func(x float64) float64 {
		return reg.Intercept + reg.Slope*x
	})
	fit.Color = seriesColor(3)
	fit.Width = vg.Points(2)

	p.Add(plotter.NewGrid(), scatter, fit)
	p.Legend.Add(fmt.Sprintf("fit: y = %.3f + %.3f x (R2 %.3f)", reg.Intercept, reg.Slope, reg.R2), fit)
	p.Legend.Top = true

	return p, nil
}

// QQ renders the normal Q-Q plot of the residuals with the reference line
// through the quartile pair.
func QQ(reg *engine.Regression) (*plot.Plot, error) {
	if reg == nil || reg.QQ == nil || len(reg.QQ.Points) == 0 {
		return nil, fmt.Errorf("no qq points")
	}
	qq := reg.QQ

	p := plot.New()
	p.Title.Text = "Normal Q-Q of Residuals"
	p.X.Label.Text = "theoretical quantiles"
	p.Y.Label.Text = "sample quantiles"

	scatter, err := plotter.NewScatter(points(qq.Points))
	if err != nil {
		return nil, err
	}
	scatter.Radius = vg.Points(2)
	scatter.Color = withAlpha(seriesColor(0), 0xB0)

	// points arrive sorted by theoretical quantile
	lo := qq.Points[0].X
	hi := qq.Points[len(qq.Points)-1].X
	ref, err := plotter.NewLine(plotter.XYs{
		{X: lo, Y: qq.Intercept + qq.Slope*lo},
		{X: hi, Y: qq.Intercept + qq.Slope*hi},
	})
	if err != nil {
		return nil, err
	}
	ref.Color = seriesColor(3)
	ref.Width = vg.Points(1.5)
	ref.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}

	p.Add(plotter.NewGrid(), scatter, ref)
	return p, nil
}
