package engine

import (
	"fmt"
	"sort"

	"golang.org/x/exp/rand"
)

// ============================================================================
// SUBSAMPLE — Seeded row selection without replacement
// ============================================================================
// Same seed, same rows, every run. The analysis is only reproducible if
// this step is.
// ============================================================================

// Subsample selects n distinct rows from the view using a generator
// seeded with seed. Indices are kept in ascending order so the subsample
// preserves the source row order.
func Subsample(v RecordView, n int, seed uint64) (RecordView, error) {
	if n <= 0 {
		return nil, fmt.Errorf("subsample: size must be positive, got %d", n)
	}
	if n > v.Len() {
		return nil, fmt.Errorf("subsample: size %d exceeds %d rows", n, v.Len())
	}
	rng := rand.New(rand.NewSource(seed))
	indices := rng.Perm(v.Len())[:n]
	sort.Ints(indices)
	return newSubView(v, indices), nil
}
