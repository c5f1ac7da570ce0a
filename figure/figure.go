// Package figure renders report statistics as image files.
//
// Each visual has its own builder returning a *plot.Plot so callers can
// restyle or resize before saving; Renderer.All walks a report and saves
// every figure the report carries data for under fixed file names.
package figure

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/hedonic-org/hedonic/engine"
)

// ============================================================================
// PALETTE
// ============================================================================

// seriesColors is the default palette for figure series.
var seriesColors = []color.RGBA{
	{R: 0x4F, G: 0x46, B: 0xE5, A: 0xFF}, // indigo
	{R: 0x10, G: 0xB9, B: 0x81, A: 0xFF}, // green
	{R: 0xF5, G: 0x9E, B: 0x0B, A: 0xFF}, // amber
	{R: 0xEF, G: 0x44, B: 0x44, A: 0xFF}, // red
	{R: 0x8B, G: 0x5C, B: 0xF6, A: 0xFF}, // violet
	{R: 0x06, G: 0xB6, B: 0xD4, A: 0xFF}, // cyan
	{R: 0xEC, G: 0x48, B: 0x99, A: 0xFF}, // pink
	{R: 0x84, G: 0xCC, B: 0x16, A: 0xFF}, // lime
}

func seriesColor(i int) color.RGBA {
	return seriesColors[i%len(seriesColors)]
}

func withAlpha(c color.RGBA, a uint8) color.RGBA {
	c.A = a
	return c
}

// points converts engine curve points into plottable coordinates.
func points(ps []engine.Point) plotter.XYs {
	xys := make(plotter.XYs, len(ps))
	for i, pt := range ps {
		xys[i].X = pt.X
		xys[i].Y = pt.Y
	}
	return xys
}

// ============================================================================
// RENDERER — SAVES REPORT FIGURES AS IMAGE FILES
// ============================================================================

// validFormats are the image formats a Renderer can save.
var validFormats = map[string]bool{
	"png": true,
	"svg": true,
	"pdf": true,
}

// Renderer writes report figures into an output directory.
type Renderer struct {
	Dir    string    // output directory, created on first save
	Format string    // png, svg or pdf
	Width  vg.Length // figure width
	Height vg.Length // figure height
}

// NewRenderer returns a Renderer saving 6x4.5 inch PNG files under dir.
func NewRenderer(dir string) *Renderer {
	return &Renderer{
		Dir:    dir,
		Format: "png",
		Width:  6 * vg.Inch,
		Height: 4.5 * vg.Inch,
	}
}

type figureJob struct {
	name  string
	build func() (*plot.Plot, error)
}

// All renders every figure the report has data for and returns the paths
// of the written files. File names are fixed: ecdf, histogram, boxplot,
// correlation, regression and qq, each with the renderer's extension.
func (r *Renderer) All(report *engine.Report) ([]string, error) {
	if report == nil {
		return nil, fmt.Errorf("nil report")
	}

	var jobs []figureJob
	if d := report.Distribution; d != nil {
		jobs = append(jobs,
			figureJob{"ecdf", func() (*plot.Plot, error) { return ECDF(d) }},
			figureJob{"histogram", func() (*plot.Plot, error) { return Histogram(d, report.Gamma) }},
		)
	}
	if b := report.Boxplot; b != nil {
		jobs = append(jobs, figureJob{"boxplot", func() (*plot.Plot, error) { return Boxplot(b) }})
	}
	if c := report.Correlation; c != nil {
		jobs = append(jobs, figureJob{"correlation", func() (*plot.Plot, error) { return Heatmap(c) }})
	}
	if reg := report.Regression; reg != nil {
		jobs = append(jobs, figureJob{"regression", func() (*plot.Plot, error) { return FittedLine(reg) }})
		if reg.QQ != nil {
			jobs = append(jobs, figureJob{"qq", func() (*plot.Plot, error) { return QQ(reg) }})
		}
	}

	var paths []string
	for _, job := range jobs {
		p, err := job.build()
		if err != nil {
			return paths, fmt.Errorf("build %s figure: %w", job.name, err)
		}
		path, err := r.save(p, job.name)
		if err != nil {
			return paths, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// save writes the plot into Dir as name plus the configured extension.
func (r *Renderer) save(p *plot.Plot, name string) (string, error) {
	format := r.Format
	if format == "" {
		format = "png"
	}
	if !validFormats[format] {
		return "", fmt.Errorf("unsupported figure format %q (use png, svg or pdf)", format)
	}
	if err := os.MkdirAll(r.Dir, 0o755); err != nil {
		return "", fmt.Errorf("create figure directory: %w", err)
	}

	w, h := r.Width, r.Height
	if w <= 0 {
		w = 6 * vg.Inch
	}
	if h <= 0 {
		h = 4.5 * vg.Inch
	}

	path := filepath.Join(r.Dir, name+"."+format)
	if err := p.Save(w, h, path); err != nil {
		return "", fmt.Errorf("save %s: %w", path, err)
	}
	return path, nil
}
