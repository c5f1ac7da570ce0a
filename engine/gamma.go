package engine

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ============================================================================
// GAMMA FIT — Method of Moments
// ============================================================================

// FitGamma matches a gamma distribution to one measure by its first two
// moments: shape = mean²/variance, rate = mean/variance, with the n-1
// variance. The fitted density is sampled at gridPoints over the data
// span for overlay on the histogram. Gamma support is positive, so a
// non-positive mean is an error, as is zero variance.
func FitGamma(v RecordView, key string, gridPoints int) (*GammaFit, error) {
	xs := Column(v, key)
	if len(xs) < 2 {
		return nil, fmt.Errorf("gamma fit: %s has %d value(s), need at least 2", key, len(xs))
	}
	if gridPoints < 2 {
		return nil, fmt.Errorf("gamma fit: grid needs at least 2 points, got %d", gridPoints)
	}

	mean := stat.Mean(xs, nil)
	variance := stat.Variance(xs, nil)
	if mean <= 0 {
		return nil, fmt.Errorf("gamma fit: mean of %s is %v, need > 0", key, mean)
	}
	if variance <= 0 {
		return nil, fmt.Errorf("gamma fit: %s has zero variance", key)
	}

	g := &GammaFit{
		Key:      key,
		Mean:     mean,
		Variance: variance,
		Shape:    mean * mean / variance,
		Rate:     mean / variance,
	}

	dist := distuv.Gamma{Alpha: g.Shape, Beta: g.Rate}
	grid := make([]float64, gridPoints)
	floats.Span(grid, floats.Min(xs), floats.Max(xs))
	g.Curve = make([]Point, gridPoints)
	for i, x := range grid {
		g.Curve[i] = Point{X: x, Y: dist.Prob(x)}
	}

	return g, nil
}
