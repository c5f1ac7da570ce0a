package engine

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// CORRELATION — Pearson Matrix over Measures
// ============================================================================

// Correlate builds the Pearson correlation matrix over the named
// measures. A constant column has no defined correlation and is an
// error rather than a row of NaNs.
func Correlate(v RecordView, keys []string) (*Correlation, error) {
	if len(keys) < 2 {
		return nil, fmt.Errorf("correlation: need at least 2 measures, got %d", len(keys))
	}
	n := v.Len()
	if n < 2 {
		return nil, fmt.Errorf("correlation: %d row(s), need at least 2", n)
	}

	data := mat.NewDense(n, len(keys), nil)
	for j, key := range keys {
		xs := Column(v, key)
		if stat.Variance(xs, nil) == 0 {
			return nil, fmt.Errorf("correlation: %s is constant", key)
		}
		for i, x := range xs {
			data.Set(i, j, x)
		}
	}

	sym := mat.NewSymDense(len(keys), nil)
	stat.CorrelationMatrix(sym, data, nil)

	matrix := make([][]float64, len(keys))
	for i := range matrix {
		matrix[i] = make([]float64, len(keys))
		for j := range matrix[i] {
			matrix[i][j] = sym.At(i, j)
		}
	}

	return &Correlation{Keys: keys, Matrix: matrix}, nil
}
