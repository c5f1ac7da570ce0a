package engine

import (
	"fmt"
	"math"
	"sort"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// DISTRIBUTION — Empirical Shape of One Measure
// ============================================================================
// Quantiles follow the linear-interpolation rule (type 7), bin counts
// follow Sturges, bandwidths follow nrd0. Chosen once, used everywhere,
// so tables and figures never disagree.
// ============================================================================

// DistributionOf computes the empirical distribution of one measure:
// five-number summary, skewness, ECDF staircase and a Gaussian kernel
// density curve sampled at gridPoints over the data span.
func DistributionOf(v RecordView, key string, gridPoints int) (*Distribution, error) {
	xs := Column(v, key)
	n := len(xs)
	if n < 2 {
		return nil, fmt.Errorf("distribution: %s has %d value(s), need at least 2", key, n)
	}
	if gridPoints < 2 {
		return nil, fmt.Errorf("distribution: grid needs at least 2 points, got %d", gridPoints)
	}
	sorted := sortedCopy(xs)
	if sorted[0] == sorted[n-1] {
		return nil, fmt.Errorf("distribution: %s is constant at %v", key, sorted[0])
	}

	d := &Distribution{
		Key:       key,
		N:         n,
		Min:       sorted[0],
		Q1:        Quantile(sorted, 0.25),
		Median:    Quantile(sorted, 0.5),
		Q3:        Quantile(sorted, 0.75),
		Max:       sorted[n-1],
		Skewness:  Skewness(xs),
		Bins:      SturgesBins(n),
		Bandwidth: NRD0(xs),
		AtMean:    ECDFValue(stat.Mean(xs, nil), sorted),
		Values:    xs,
	}

	// ECDF staircase: one point per sorted observation
	d.ECDF = make([]Point, n)
	for i, x := range sorted {
		d.ECDF[i] = Point{X: x, Y: float64(i+1) / float64(n)}
	}

	// Kernel density curve over the data span
	kde := &stats.KDE{
		Sample:    stats.Sample{Xs: xs},
		Bandwidth: d.Bandwidth,
	}
	grid := make([]float64, gridPoints)
	floats.Span(grid, sorted[0], sorted[n-1])
	d.Density = make([]Point, gridPoints)
	for i, x := range grid {
		d.Density[i] = Point{X: x, Y: kde.PDF(x)}
	}

	return d, nil
}

// ============================================================================
// QUANTILES
// ============================================================================

// Quantile returns the p-th quantile of a sorted sample by linear
// interpolation between order statistics: h = p(n-1), the value lies
// frac(h) of the way from sorted[floor(h)] to the next observation.
func Quantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if p <= 0 {
		return sorted[0]
	}
	if p >= 1 {
		return sorted[n-1]
	}
	h := p * float64(n-1)
	lo := int(math.Floor(h))
	frac := h - float64(lo)
	if lo+1 >= n {
		return sorted[n-1]
	}
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// ECDFValue returns the fraction of the sorted sample at or below q.
func ECDFValue(q float64, sorted []float64) float64 {
	return stat.CDF(q, stat.Empirical, sorted, nil)
}

// ============================================================================
// SHAPE STATISTICS
// ============================================================================

// Skewness returns the moment coefficient of skewness g1 = m3 / m2^1.5,
// built from population central moments. Symmetric samples score 0,
// long right tails score positive.
func Skewness(xs []float64) float64 {
	m2 := stat.Moment(2, xs, nil)
	m3 := stat.Moment(3, xs, nil)
	return m3 / math.Pow(m2, 1.5)
}

// SturgesBins returns the Sturges histogram bin count ceil(log2 n) + 1.
func SturgesBins(n int) int {
	if n <= 1 {
		return 1
	}
	return int(math.Ceil(math.Log2(float64(n)))) + 1
}

// NRD0 returns the rule-of-thumb kernel bandwidth
// 0.9 * min(sd, IQR/1.34) * n^(-1/5), falling back to sd, then |x[0]|,
// then 1 when the spread terms vanish.
func NRD0(xs []float64) float64 {
	n := len(xs)
	sorted := sortedCopy(xs)
	sd := stat.StdDev(xs, nil)
	iqr := Quantile(sorted, 0.75) - Quantile(sorted, 0.25)
	lo := math.Min(sd, iqr/1.34)
	if lo == 0 {
		switch {
		case sd > 0:
			lo = sd
		case math.Abs(xs[0]) > 0:
			lo = math.Abs(xs[0])
		default:
			lo = 1
		}
	}
	return 0.9 * lo * math.Pow(float64(n), -0.2)
}

func sortedCopy(xs []float64) []float64 {
	out := make([]float64, len(xs))
	copy(out, xs)
	sort.Float64s(out)
	return out
}
