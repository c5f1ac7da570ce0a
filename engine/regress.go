package engine

import (
	"fmt"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// ============================================================================
// REGRESSION — Least-Squares Fit and Residual Diagnostics
// ============================================================================

// Regress fits y = intercept + slope*x by ordinary least squares and
// keeps the per-row residuals for diagnostics. The x measure must vary
// or the slope is undefined.
func Regress(v RecordView, yKey, xKey string) (*Regression, error) {
	xs := Column(v, xKey)
	ys := Column(v, yKey)
	n := len(xs)
	if n < 3 {
		return nil, fmt.Errorf("regression: %d row(s), need at least 3", n)
	}
	if stat.Variance(xs, nil) == 0 {
		return nil, fmt.Errorf("regression: %s is constant", xKey)
	}

	alpha, beta := stat.LinearRegression(xs, ys, nil, false)
	reg := &Regression{
		YKey:      yKey,
		XKey:      xKey,
		N:         n,
		Intercept: alpha,
		Slope:     beta,
		R2:        stat.RSquared(xs, ys, nil, alpha, beta),
	}

	reg.Points = make([]Point, n)
	reg.Residuals = make([]float64, n)
	for i := range xs {
		reg.Points[i] = Point{X: xs[i], Y: ys[i]}
		reg.Residuals[i] = ys[i] - (alpha + beta*xs[i])
	}
	reg.QQ = QQNormal(reg.Residuals)

	return reg, nil
}

// QQNormal pairs sorted values against standard normal quantiles at the
// plotting positions (i - a) / (n + 1 - 2a), a = 3/8 for small samples
// and 1/2 above ten. The reference line passes through the first and
// third quartiles of both axes.
func QQNormal(values []float64) *QQPlot {
	n := len(values)
	sorted := sortedCopy(values)

	a := 0.5
	if n <= 10 {
		a = 3.0 / 8.0
	}
	points := make([]Point, n)
	for i, y := range sorted {
		p := (float64(i+1) - a) / (float64(n) + 1 - 2*a)
		points[i] = Point{X: distuv.UnitNormal.Quantile(p), Y: y}
	}

	q1s := Quantile(sorted, 0.25)
	q3s := Quantile(sorted, 0.75)
	q1t := distuv.UnitNormal.Quantile(0.25)
	q3t := distuv.UnitNormal.Quantile(0.75)
	slope := (q3s - q1s) / (q3t - q1t)

	return &QQPlot{
		Points:    points,
		Slope:     slope,
		Intercept: q1s - slope*q1t,
	}
}
