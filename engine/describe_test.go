package engine

import (
	"testing"
)

// ============================================================================
// DESCRIBE TESTS
// ============================================================================

func TestDescribeHandComputed(t *testing.T) {
	records := []Record{
		{Measures: map[string]float64{"v": 1}},
		{Measures: map[string]float64{"v": 2}},
		{Measures: map[string]float64{"v": 3}},
		{Measures: map[string]float64{"v": 4}},
	}
	sums, err := Describe(NewSliceView(records), []string{"v"})
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if len(sums) != 1 {
		t.Fatalf("got %d summaries, want 1", len(sums))
	}

	s := sums[0]
	if s.Key != "v" || s.N != 4 {
		t.Fatalf("summary = %s/%d, want v/4", s.Key, s.N)
	}
	assertNear(t, s.Mean, 2.5, 1e-12, "mean")
	assertNear(t, s.StdDev, 1.2909944, 1e-6, "sample sd")
	assertNear(t, s.Min, 1, 1e-12, "min")
	assertNear(t, s.Q1, 1.75, 1e-12, "q1")
	assertNear(t, s.Median, 2.5, 1e-12, "median")
	assertNear(t, s.Q3, 3.25, 1e-12, "q3")
	assertNear(t, s.Max, 4, 1e-12, "max")
}

func TestDescribeAllHousingMeasures(t *testing.T) {
	v := houseView()
	sums, err := Describe(v, v.MeasureKeys())
	if err != nil {
		t.Fatalf("Describe failed: %v", err)
	}
	if len(sums) != 6 {
		t.Fatalf("got %d summaries, want 6", len(sums))
	}
	for _, s := range sums {
		if s.N != 12 {
			t.Errorf("%s: N = %d, want 12", s.Key, s.N)
		}
		if s.Min > s.Q1 || s.Q1 > s.Median || s.Median > s.Q3 || s.Q3 > s.Max {
			t.Errorf("%s: five-number summary out of order", s.Key)
		}
	}
}

func TestDescribeRejectsShortColumn(t *testing.T) {
	single := NewSliceView([]Record{
		{Measures: map[string]float64{"v": 7}},
	})
	if _, err := Describe(single, []string{"v"}); err == nil {
		t.Error("expected error for single-row measure")
	}
}
