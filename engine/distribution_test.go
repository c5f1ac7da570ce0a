package engine

import (
	"math"
	"testing"
)

// ============================================================================
// DISTRIBUTION TESTS
// ============================================================================

func TestQuantileInterpolation(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	tests := []struct {
		p    float64
		want float64
	}{
		{0, 1},
		{0.25, 1.75},
		{0.5, 2.5},
		{0.75, 3.25},
		{1, 4},
	}
	for _, tt := range tests {
		if got := Quantile(sorted, tt.p); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("Quantile(p=%v) = %v, want %v", tt.p, got, tt.want)
		}
	}

	if got := Quantile([]float64{10}, 0.5); got != 10 {
		t.Errorf("single-value quantile = %v, want 10", got)
	}
	if got := Quantile(nil, 0.5); !math.IsNaN(got) {
		t.Errorf("empty quantile = %v, want NaN", got)
	}
}

func TestECDFValue(t *testing.T) {
	sorted := []float64{1, 2, 3, 4}

	tests := []struct {
		q    float64
		want float64
	}{
		{0, 0},
		{1, 0.25},
		{2, 0.5},
		{2.5, 0.5},
		{4, 1},
		{99, 1},
	}
	for _, tt := range tests {
		if got := ECDFValue(tt.q, sorted); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("ECDFValue(%v) = %v, want %v", tt.q, got, tt.want)
		}
	}
}

func TestSkewness(t *testing.T) {
	// Symmetric sample scores zero
	assertNear(t, Skewness([]float64{1, 2, 3, 4, 5}), 0, 1e-12, "symmetric skewness")

	// {1,2,3,6}: m2 = 3.5, m3 = 4.5, g1 = 4.5 / 3.5^1.5
	assertNear(t, Skewness([]float64{1, 2, 3, 6}), 0.6872432, 1e-6, "right-tailed skewness")
}

func TestSturgesBins(t *testing.T) {
	tests := []struct {
		n, want int
	}{
		{1, 1},
		{2, 2},
		{12, 5},
		{250, 9},
		{546, 11},
		{1024, 11},
	}
	for _, tt := range tests {
		if got := SturgesBins(tt.n); got != tt.want {
			t.Errorf("SturgesBins(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestNRD0Bandwidth(t *testing.T) {
	// {1..5}: sd = sqrt(2.5), IQR = 2, so 0.9 * (2/1.34) * 5^(-1/5)
	assertNear(t, NRD0([]float64{1, 2, 3, 4, 5}), 0.9735847, 1e-6, "nrd0 bandwidth")

	// Constant sample falls back to |x[0]|
	if got := NRD0([]float64{5, 5, 5}); got <= 0 {
		t.Errorf("constant-sample bandwidth = %v, want > 0", got)
	}
}

func TestDistributionOfPrices(t *testing.T) {
	d, err := DistributionOf(houseView(), "price", 50)
	if err != nil {
		t.Fatalf("DistributionOf failed: %v", err)
	}

	if d.Key != "price" || d.N != 12 {
		t.Fatalf("got key=%q n=%d, want price/12", d.Key, d.N)
	}
	if d.Min != 30500 || d.Max != 90000 {
		t.Errorf("bounds = [%v, %v], want [30500, 90000]", d.Min, d.Max)
	}
	assertNear(t, d.Q1, 47625, 1e-9, "price q1")
	assertNear(t, d.Median, 63500, 1e-9, "price median")
	assertNear(t, d.Q3, 72700, 1e-9, "price q3")

	if d.Bins != 5 {
		t.Errorf("Bins = %d, want 5", d.Bins)
	}
	if d.Bandwidth <= 0 {
		t.Errorf("Bandwidth = %v, want > 0", d.Bandwidth)
	}
	if d.AtMean <= 0 || d.AtMean >= 1 {
		t.Errorf("AtMean = %v, want inside (0, 1)", d.AtMean)
	}

	// ECDF is a staircase from 1/n to 1 over sorted values
	if len(d.ECDF) != 12 {
		t.Fatalf("ECDF has %d points, want 12", len(d.ECDF))
	}
	assertNear(t, d.ECDF[0].Y, 1.0/12, 1e-12, "first ECDF step")
	assertNear(t, d.ECDF[11].Y, 1, 1e-12, "last ECDF step")
	for i := 1; i < len(d.ECDF); i++ {
		if d.ECDF[i].X < d.ECDF[i-1].X || d.ECDF[i].Y < d.ECDF[i-1].Y {
			t.Fatalf("ECDF not monotone at %d", i)
		}
	}

	// Density curve spans the data and stays finite and non-negative
	if len(d.Density) != 50 {
		t.Fatalf("Density has %d points, want 50", len(d.Density))
	}
	if d.Density[0].X != 30500 || d.Density[49].X != 90000 {
		t.Errorf("density span [%v, %v], want [30500, 90000]", d.Density[0].X, d.Density[49].X)
	}
	for _, p := range d.Density {
		if math.IsNaN(p.Y) || math.IsInf(p.Y, 0) || p.Y < 0 {
			t.Fatalf("bad density value %v at x=%v", p.Y, p.X)
		}
	}
}

func TestDistributionOfRejectsDegenerate(t *testing.T) {
	constant := NewSliceView([]Record{
		{Measures: map[string]float64{"v": 7}},
		{Measures: map[string]float64{"v": 7}},
	})
	if _, err := DistributionOf(constant, "v", 50); err == nil {
		t.Error("expected error for constant measure")
	}

	single := NewSliceView([]Record{
		{Measures: map[string]float64{"v": 7}},
	})
	if _, err := DistributionOf(single, "v", 50); err == nil {
		t.Error("expected error for single row")
	}

	if _, err := DistributionOf(houseView(), "price", 1); err == nil {
		t.Error("expected error for one-point grid")
	}
}
