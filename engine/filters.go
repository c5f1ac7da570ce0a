package engine

import (
	"strings"
)

// ============================================================================
// FILTERS — Category-Based Row Filtering via RecordView
// ============================================================================
// Single-pass filter: checks ALL category constraints per row in one loop.
// Returns a SubView (index list into parent) — zero data copy. Runs before
// subsampling so the seed draws from the restricted table.
// ============================================================================

// Filters restricts the analysis to rows whose category levels match.
// Keys are category names, values are allowed levels. Levels within a
// category are OR-combined; categories are AND-combined. Empty = all rows.
type Filters map[string][]string

// IsEmpty returns true if no filter is set.
func (f Filters) IsEmpty() bool {
	for _, levels := range f {
		if len(levels) > 0 {
			return false
		}
	}
	return true
}

// ApplyFilters returns a view of rows matching all category filters.
func ApplyFilters(view RecordView, filters Filters) RecordView {
	if filters.IsEmpty() {
		return view
	}

	// Pre-build lowercase lookup sets for each category filter
	sets := make(map[string]map[string]bool)
	for key, allowed := range filters {
		if len(allowed) > 0 {
			sets[key] = toLowerSet(allowed)
		}
	}

	if len(sets) == 0 {
		return view
	}

	// Single pass — a row passes if it matches ALL category filters
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		pass := true
		for key, set := range sets {
			val := strings.ToLower(view.Category(i, key))
			if !set[val] {
				pass = false
				break
			}
		}
		if pass {
			indices = append(indices, i)
		}
	}

	return newSubView(view, indices)
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}
