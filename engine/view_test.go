package engine

import (
	"math"
	"sort"
	"strconv"
	"testing"
)

// ============================================================================
// VIEW TESTS
// ============================================================================

// Twelve housing rows, small enough to check every statistic by hand.
// Counts go into both maps: numeric for correlations, string level for
// grouping, same as the loaders produce.
func houseView() RecordView {
	type house struct {
		price, lotsize             float64
		bed, bath, stories, garage int
		prefarea, driveway         string
	}
	rows := []house{
		{42000, 5850, 3, 1, 2, 1, "no", "yes"},
		{38500, 4000, 2, 1, 1, 0, "no", "yes"},
		{49500, 3060, 3, 1, 1, 0, "no", "yes"},
		{60500, 6650, 3, 1, 2, 0, "yes", "yes"},
		{61000, 6360, 2, 1, 1, 0, "no", "yes"},
		{66000, 4160, 3, 1, 1, 1, "yes", "yes"},
		{66500, 3880, 3, 2, 2, 2, "no", "yes"},
		{69000, 4160, 3, 1, 2, 0, "yes", "yes"},
		{83800, 4800, 3, 1, 1, 0, "yes", "yes"},
		{88500, 5500, 3, 2, 2, 1, "yes", "yes"},
		{90000, 7000, 3, 2, 2, 2, "yes", "yes"},
		{30500, 3000, 2, 1, 1, 0, "no", "no"},
	}

	records := make([]Record, len(rows))
	for i, r := range rows {
		records[i] = Record{
			Categories: map[string]string{
				"bedrooms": strconv.Itoa(r.bed),
				"bathrms":  strconv.Itoa(r.bath),
				"stories":  strconv.Itoa(r.stories),
				"garagepl": strconv.Itoa(r.garage),
				"prefarea": r.prefarea,
				"driveway": r.driveway,
			},
			Measures: map[string]float64{
				"price":    r.price,
				"lotsize":  r.lotsize,
				"bedrooms": float64(r.bed),
				"bathrms":  float64(r.bath),
				"stories":  float64(r.stories),
				"garagepl": float64(r.garage),
			},
		}
	}
	return NewSliceView(records)
}

func TestSliceViewAccess(t *testing.T) {
	v := houseView()

	if v.Len() != 12 {
		t.Fatalf("Len() = %d, want 12", v.Len())
	}
	if got := v.Measure(0, "price"); got != 42000 {
		t.Errorf("Measure(0, price) = %v, want 42000", got)
	}
	if got := v.Category(3, "prefarea"); got != "yes" {
		t.Errorf("Category(3, prefarea) = %q, want yes", got)
	}

	// Missing keys read as zero values
	if got := v.Measure(0, "nope"); got != 0 {
		t.Errorf("Measure(0, nope) = %v, want 0", got)
	}
	if got := v.Category(0, "nope"); got != "" {
		t.Errorf("Category(0, nope) = %q, want empty", got)
	}

	// Out-of-range reads as zero values
	if got := v.Measure(99, "price"); got != 0 {
		t.Errorf("Measure(99, price) = %v, want 0", got)
	}
	if got := v.Category(-1, "prefarea"); got != "" {
		t.Errorf("Category(-1, prefarea) = %q, want empty", got)
	}
}

func TestSliceViewKeyCaching(t *testing.T) {
	v := houseView()

	assertContains(t, v.MeasureKeys(), "price", "price should be a measure key")
	assertContains(t, v.MeasureKeys(), "garagepl", "garagepl should be a measure key")
	assertContains(t, v.CategoryKeys(), "prefarea", "prefarea should be a category key")

	if len(v.MeasureKeys()) != 6 {
		t.Errorf("MeasureKeys() has %d keys, want 6", len(v.MeasureKeys()))
	}
	if len(v.CategoryKeys()) != 6 {
		t.Errorf("CategoryKeys() has %d keys, want 6", len(v.CategoryKeys()))
	}

	// Key order is sorted, so two views over the same records agree.
	if !sort.StringsAreSorted(v.MeasureKeys()) {
		t.Errorf("MeasureKeys() not sorted: %v", v.MeasureKeys())
	}
	if !sort.StringsAreSorted(v.CategoryKeys()) {
		t.Errorf("CategoryKeys() not sorted: %v", v.CategoryKeys())
	}
}

func TestColumnGather(t *testing.T) {
	v := houseView()
	xs := Column(v, "price")

	if len(xs) != 12 {
		t.Fatalf("Column returned %d values, want 12", len(xs))
	}
	if xs[0] != 42000 || xs[11] != 30500 {
		t.Errorf("Column order broken: first %v last %v", xs[0], xs[11])
	}
}

func TestLogViewDerivesMeasures(t *testing.T) {
	v := houseView()
	lv, err := NewLogView(v, map[string]string{"log_price": "price"})
	if err != nil {
		t.Fatalf("NewLogView failed: %v", err)
	}

	if got, want := lv.Measure(0, "log_price"), math.Log(42000); got != want {
		t.Errorf("log_price[0] = %v, want %v", got, want)
	}
	// Parent measures still read through
	if got := lv.Measure(0, "price"); got != 42000 {
		t.Errorf("price[0] = %v, want 42000", got)
	}
	if got := lv.Category(0, "prefarea"); got != "no" {
		t.Errorf("prefarea[0] = %q, want no", got)
	}
	if lv.Len() != v.Len() {
		t.Errorf("Len() = %d, want %d", lv.Len(), v.Len())
	}
	assertContains(t, lv.MeasureKeys(), "log_price", "derived key should be listed")
	assertContains(t, lv.MeasureKeys(), "price", "parent keys should be listed")
}

func TestLogViewRejectsBadSources(t *testing.T) {
	v := houseView()

	if _, err := NewLogView(v, map[string]string{"log_x": "nope"}); err == nil {
		t.Error("expected error for unknown source measure")
	}

	zero := NewSliceView([]Record{
		{Measures: map[string]float64{"price": 0}},
	})
	if _, err := NewLogView(zero, map[string]string{"log_price": "price"}); err == nil {
		t.Error("expected error for non-positive source value")
	}
}

// ============================================================================
// HELPERS
// ============================================================================

func assertContains(t *testing.T, slice []string, item string, msg string) {
	t.Helper()
	for _, s := range slice {
		if s == item {
			return
		}
	}
	t.Errorf("%s: %q not found in %v", msg, item, slice)
}

func assertNear(t *testing.T, got, want, tol float64, msg string) {
	t.Helper()
	if math.IsNaN(got) || math.Abs(got-want) > tol {
		t.Errorf("%s: got %v, want %v (±%v)", msg, got, want, tol)
	}
}
