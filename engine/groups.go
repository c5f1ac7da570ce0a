package engine

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"gonum.org/v1/gonum/stat"
)

// ============================================================================
// GROUPS — Level Splits and Per-Group Spread via RecordView
// ============================================================================
// All functions operate on RecordView — zero-copy access to any data source.
// Splitting produces SubViews (index lists into the parent view).
// ============================================================================

// LevelGroup is one category level and the rows that carry it.
type LevelGroup struct {
	Level string
	View  RecordView
}

// SplitByLevel partitions a view by the levels of one category.
// Levels are ordered numerically when they parse as numbers (bedroom
// counts come out 1, 2, 3 rather than "1", "10", "2"), alphabetically
// otherwise.
func SplitByLevel(view RecordView, key string) []LevelGroup {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	for i := 0; i < view.Len(); i++ {
		level := view.Category(i, key)
		if _, exists := grouped[level]; !exists {
			order = append(order, level)
		}
		grouped[level] = append(grouped[level], i)
	}
	sortLevels(order)

	groups := make([]LevelGroup, 0, len(order))
	for _, level := range order {
		groups = append(groups, LevelGroup{
			Level: level,
			View:  newSubView(view, grouped[level]),
		})
	}
	return groups
}

// ValuesByLevel gathers one measure per level of a category.
// Feeds the grouped boxplot.
func ValuesByLevel(view RecordView, valueKey, groupKey string) *GroupedValues {
	gv := &GroupedValues{ValueKey: valueKey, GroupKey: groupKey}
	for _, g := range SplitByLevel(view, groupKey) {
		gv.Groups = append(gv.Groups, LevelValues{
			Level:  g.Level,
			Values: Column(g.View, valueKey),
		})
	}
	return gv
}

// SpreadByLevel computes mean, standard deviation and coefficient of
// variation of one measure per level of a category. Standard deviation
// uses the n-1 denominator. Groups need at least two rows; a zero group
// mean leaves the CV undefined and is an error.
func SpreadByLevel(view RecordView, valueKey, groupKey string) (*Dispersion, error) {
	d := &Dispersion{ValueKey: valueKey, GroupKey: groupKey}
	for _, g := range SplitByLevel(view, groupKey) {
		xs := Column(g.View, valueKey)
		if len(xs) < 2 {
			return nil, fmt.Errorf("dispersion: %s=%s has %d row(s), need at least 2", groupKey, g.Level, len(xs))
		}
		mean := stat.Mean(xs, nil)
		if mean == 0 {
			return nil, fmt.Errorf("dispersion: mean of %s is zero for %s=%s, cv undefined", valueKey, groupKey, g.Level)
		}
		sd := stat.StdDev(xs, nil)
		d.Groups = append(d.Groups, GroupSpread{
			Level:  g.Level,
			N:      len(xs),
			Mean:   mean,
			StdDev: sd,
			CV:     sd / mean,
		})
	}
	return d, nil
}

// ============================================================================
// LEVEL ORDERING
// ============================================================================

func sortLevels(levels []string) {
	sort.Slice(levels, func(i, j int) bool { return levelLess(levels[i], levels[j]) })
}

// levelLess orders numerically when both levels parse as numbers,
// numbers before words, words case-insensitively.
func levelLess(a, b string) bool {
	na, errA := strconv.ParseFloat(a, 64)
	nb, errB := strconv.ParseFloat(b, 64)
	switch {
	case errA == nil && errB == nil:
		if na != nb {
			return na < nb
		}
		return a < b
	case errA == nil:
		return true
	case errB == nil:
		return false
	}
	return strings.ToLower(a) < strings.ToLower(b)
}

// ============================================================================
// UTILITIES
// ============================================================================

// UniqueLevels returns distinct non-empty levels for a category across a
// view, in level order.
func UniqueLevels(view RecordView, key string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Category(i, key)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	sortLevels(result)
	return result
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// LabelFor returns a display label for a column key: snake_case in,
// spaced Title Case out.
func LabelFor(key string) string {
	parts := strings.Split(key, "_")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
