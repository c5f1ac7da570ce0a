package figure

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette/moreland"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"

	"github.com/hedonic-org/hedonic/engine"
)

// ============================================================================
// CORRELATION HEATMAP — DIVERGING PALETTE, ANNOTATED CELLS
// ============================================================================

// corrGrid adapts a correlation matrix to the heat map grid. Matrix row 0
// draws at the TOP so the figure reads like the printed table.
type corrGrid struct {
	keys   []string
	matrix [][]float64
}

func (g corrGrid) Dims() (c, r int) { return len(g.keys), len(g.keys) }
func (g corrGrid) X(c int) float64  { return float64(c) }
func (g corrGrid) Y(r int) float64  { return float64(r) }
func (g corrGrid) Z(c, r int) float64 {
	return g.matrix[len(g.keys)-1-r][c]
}

// Heatmap renders the correlation matrix on a blue-red diverging palette
// pinned to [-1, 1], printing the coefficient inside every cell.
func Heatmap(corr *engine.Correlation) (*plot.Plot, error) {
	if corr == nil || len(corr.Keys) == 0 {
		return nil, fmt.Errorf("no correlation matrix")
	}
	n := len(corr.Keys)
	if len(corr.Matrix) != n {
		return nil, fmt.Errorf("correlation matrix has %d rows for %d keys", len(corr.Matrix), n)
	}

	grid := corrGrid{keys: corr.Keys, matrix: corr.Matrix}
	heat := plotter.NewHeatMap(grid, moreland.SmoothBlueRed().Palette(255))
	heat.Min, heat.Max = -1, 1 // pin so r=0 is always the midpoint color

	p := plot.New()
	p.Title.Text = "Correlation Matrix"
	p.Add(heat)

	labels := plotter.XYLabels{}
	for row := 0; row < n; row++ {
		for col := 0; col < n; col++ {
			labels.XYs = append(labels.XYs, plotter.XY{X: float64(col), Y: float64(n - 1 - row)})
			labels.Labels = append(labels.Labels, fmt.Sprintf("%.2f", corr.Matrix[row][col]))
		}
	}
	annot, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	for i := range annot.TextStyle {
		annot.TextStyle[i].XAlign = text.XCenter
		annot.TextStyle[i].YAlign = text.YCenter
	}
	p.Add(annot)

	xTicks := make([]plot.Tick, n)
	yTicks := make([]plot.Tick, n)
	for i, key := range corr.Keys {
		xTicks[i] = plot.Tick{Value: float64(i), Label: engine.LabelFor(key)}
		yTicks[i] = plot.Tick{Value: float64(n - 1 - i), Label: engine.LabelFor(key)}
	}
	p.X.Tick.Marker = plot.ConstantTicks(xTicks)
	p.Y.Tick.Marker = plot.ConstantTicks(yTicks)

	return p, nil
}
