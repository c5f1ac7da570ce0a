package engine

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"
)

// ============================================================================
// DESCRIBE — Per-Measure Summary Table
// ============================================================================

// Describe summarizes each named measure over a view: count, mean,
// standard deviation (n-1) and the five-number summary.
func Describe(v RecordView, keys []string) ([]MeasureSummary, error) {
	out := make([]MeasureSummary, 0, len(keys))
	for _, key := range keys {
		xs := Column(v, key)
		if len(xs) < 2 {
			return nil, fmt.Errorf("describe: %s has %d value(s), need at least 2", key, len(xs))
		}
		s := stats.Sample{Xs: xs}
		min, max := s.Bounds()
		sorted := sortedCopy(xs)
		out = append(out, MeasureSummary{
			Key:    key,
			N:      len(xs),
			Mean:   s.Mean(),
			StdDev: s.StdDev(),
			Min:    min,
			Q1:     Quantile(sorted, 0.25),
			Median: Quantile(sorted, 0.5),
			Q3:     Quantile(sorted, 0.75),
			Max:    max,
		})
	}
	return out, nil
}
