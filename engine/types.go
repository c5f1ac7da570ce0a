package engine

// ============================================================================
// HEDONIC ENGINE TYPES — House-Price Exploration Results
// ============================================================================
// Every analysis step fills one struct here. The Report is render-ready:
// the tables builder and the figure package consume it without touching
// the source view again.
// ============================================================================

// ============================================================================
// REPORT — Full analysis output
// ============================================================================

// Report is the engine's render-ready output for one run.
// Fields are nil when the corresponding step was skipped.
type Report struct {
	Source     string `json:"source"`     // dataset name, e.g. "housing.csv"
	Rows       int    `json:"rows"`       // rows in the source table
	SampleSize int    `json:"sampleSize"` // rows actually analyzed
	Seed       uint64 `json:"seed"`       // subsample seed

	Summaries    []MeasureSummary `json:"summaries,omitempty"`
	Crosstab     *Crosstab        `json:"crosstab,omitempty"`
	Distribution *Distribution    `json:"distribution,omitempty"`
	Gamma        *GammaFit        `json:"gamma,omitempty"`
	Boxplot      *GroupedValues   `json:"boxplot,omitempty"`
	Dispersion   *Dispersion      `json:"dispersion,omitempty"`
	Correlation  *Correlation     `json:"correlation,omitempty"`
	Regression   *Regression      `json:"regression,omitempty"`
}

// Point is a single (x, y) pair on a curve or scatter.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ============================================================================
// SUMMARY TYPES
// ============================================================================

// MeasureSummary is the five-number summary plus moments for one measure.
type MeasureSummary struct {
	Key    string  `json:"key"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
}

// ============================================================================
// CROSSTAB TYPES
// ============================================================================

// Crosstab is a two-way frequency table with margins.
// Counts is indexed [row level][column level].
type Crosstab struct {
	RowKey    string   `json:"rowKey"`
	ColKey    string   `json:"colKey"`
	RowLevels []string `json:"rowLevels"`
	ColLevels []string `json:"colLevels"`
	Counts    [][]int  `json:"counts"`
	RowTotals []int    `json:"rowTotals"`
	ColTotals []int    `json:"colTotals"`
	Total     int      `json:"total"`
}

// ============================================================================
// DISTRIBUTION TYPES
// ============================================================================

// Distribution describes the empirical shape of one measure: quantiles,
// skewness, the ECDF staircase and a kernel density curve. Values holds
// the raw observations so the histogram can re-bin them.
type Distribution struct {
	Key       string  `json:"key"`
	N         int     `json:"n"`
	Min       float64 `json:"min"`
	Q1        float64 `json:"q1"`
	Median    float64 `json:"median"`
	Q3        float64 `json:"q3"`
	Max       float64 `json:"max"`
	Skewness  float64 `json:"skewness"`
	AtMean    float64 `json:"atMean"`    // ECDF evaluated at the mean
	Bins      int     `json:"bins"`      // histogram bin count (Sturges)
	Bandwidth float64 `json:"bandwidth"` // KDE bandwidth (nrd0)

	ECDF    []Point   `json:"ecdf"`    // (sorted value, fraction ≤ value)
	Density []Point   `json:"density"` // KDE curve over the data span
	Values  []float64 `json:"-"`       // raw observations, view order
}

// GammaFit is a gamma distribution matched to a measure's first two
// moments: shape = mean²/variance, rate = mean/variance.
type GammaFit struct {
	Key      string  `json:"key"`
	Mean     float64 `json:"mean"`
	Variance float64 `json:"variance"`
	Shape    float64 `json:"shape"`
	Rate     float64 `json:"rate"`
	Curve    []Point `json:"curve"` // fitted density over the data span
}

// ============================================================================
// GROUP TYPES
// ============================================================================

// LevelValues is one group's raw observations, keyed by its level.
type LevelValues struct {
	Level  string    `json:"level"`
	Values []float64 `json:"values"`
}

// GroupedValues is one measure split by the levels of one category.
// Feeds the grouped boxplot.
type GroupedValues struct {
	ValueKey string        `json:"valueKey"`
	GroupKey string        `json:"groupKey"`
	Groups   []LevelValues `json:"groups"`
}

// GroupSpread is one group's location and spread for a measure.
type GroupSpread struct {
	Level  string  `json:"level"`
	N      int     `json:"n"`
	Mean   float64 `json:"mean"`
	StdDev float64 `json:"stdDev"`
	CV     float64 `json:"cv"` // coefficient of variation, sd/mean
}

// Dispersion compares a measure's spread across the levels of one
// category, e.g. price inside vs. outside the preferred area.
type Dispersion struct {
	ValueKey string        `json:"valueKey"`
	GroupKey string        `json:"groupKey"`
	Groups   []GroupSpread `json:"groups"`
}

// ============================================================================
// CORRELATION TYPES
// ============================================================================

// Correlation is a Pearson correlation matrix over a set of measures.
// Matrix is indexed [i][j] matching Keys order; the diagonal is 1.
type Correlation struct {
	Keys   []string    `json:"keys"`
	Matrix [][]float64 `json:"matrix"`
}

// ============================================================================
// REGRESSION TYPES
// ============================================================================

// Regression is a least-squares line fit of one measure on another,
// with residual diagnostics. For the default run both axes are log
// transformed, so Slope reads as a price elasticity.
type Regression struct {
	YKey      string  `json:"yKey"`
	XKey      string  `json:"xKey"`
	N         int     `json:"n"`
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
	R2        float64 `json:"r2"`

	Points    []Point   `json:"points"`    // (x, y) observations, view order
	Residuals []float64 `json:"residuals"` // y - fitted, view order
	QQ        *QQPlot   `json:"qq"`        // residual normality check
}

// QQPlot compares sorted residuals against normal quantiles.
// The reference line passes through the first and third quartile pairs.
type QQPlot struct {
	Points    []Point `json:"points"` // (theoretical, sample) per residual
	Slope     float64 `json:"slope"`
	Intercept float64 `json:"intercept"`
}
