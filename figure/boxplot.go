package figure

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hedonic-org/hedonic/engine"
)

// ============================================================================
// GROUPED BOXPLOT — ONE BOX PER LEVEL
// ============================================================================

// Boxplot renders one box per group level, in the grouped order, with the
// level names on the x axis.
func Boxplot(b *engine.GroupedValues) (*plot.Plot, error) {
	if b == nil || len(b.Groups) == 0 {
		return nil, fmt.Errorf("no groups")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s by %s", engine.LabelFor(b.ValueKey), engine.LabelFor(b.GroupKey))
	p.X.Label.Text = engine.LabelFor(b.GroupKey)
	p.Y.Label.Text = engine.LabelFor(b.ValueKey)

	levels := make([]string, 0, len(b.Groups))
	for i, g := range b.Groups {
		box, err := plotter.NewBoxPlot(vg.Points(30), float64(i), plotter.Values(g.Values))
		if err != nil {
			return nil, fmt.Errorf("box for level %s: %w", g.Level, err)
		}
		box.FillColor = withAlpha(seriesColor(i), 0x55)
		p.Add(box)
		levels = append(levels, g.Level)
	}
	p.NominalX(levels...)

	return p, nil
}
