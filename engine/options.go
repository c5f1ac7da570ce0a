package engine

// ============================================================================
// ENGINE OPTIONS — Functional options for Run()
// ============================================================================

// Option configures engine behavior via functional options pattern.
type Option func(*config)

type config struct {
	Source     string  // dataset name carried into the Report
	Seed       uint64  // subsample seed
	SampleSize int     // rows to draw; 0 = analyze every row
	GridPoints int     // curve resolution for density overlays
	Filters    Filters // row restriction, applied before sampling

	Describe []string // measures to summarize; nil = all

	DistKey            string   // measure for the distribution step
	CrossRow, CrossCol string   // categories for the two-way table
	BoxValue, BoxBy    string   // boxplot measure and grouping category
	GroupValue         string   // dispersion measure
	GroupKey           string   // dispersion grouping category
	CorrKeys           []string // measures for the correlation matrix
	RegY, RegX         string   // regression response and predictor
	LogRegression      bool     // regress on log-transformed axes
}

// WithSource records the dataset name in the report.
func WithSource(name string) Option {
	return func(c *config) { c.Source = name }
}

// WithSeed sets the subsample seed. Same seed, same rows.
func WithSeed(seed uint64) Option {
	return func(c *config) { c.Seed = seed }
}

// WithSampleSize sets how many rows the seeded subsample draws.
// Zero disables sampling and analyzes every row.
func WithSampleSize(n int) Option {
	return func(c *config) { c.SampleSize = n }
}

// WithGridPoints sets the resolution of density and fit curves.
func WithGridPoints(n int) Option {
	return func(c *config) { c.GridPoints = n }
}

// WithFilters restricts the analysis to rows matching category filters.
// Filtering happens before sampling, so the seed draws from the
// restricted table.
func WithFilters(f Filters) Option {
	return func(c *config) { c.Filters = f }
}

// WithDescribe limits the summary table to the named measures.
func WithDescribe(keys ...string) Option {
	return func(c *config) { c.Describe = keys }
}

// WithDistribution sets the measure for the quantile, ECDF, histogram
// and gamma-fit steps.
func WithDistribution(key string) Option {
	return func(c *config) { c.DistKey = key }
}

// WithCrosstab sets the two categories for the two-way frequency table.
func WithCrosstab(rowKey, colKey string) Option {
	return func(c *config) {
		c.CrossRow = rowKey
		c.CrossCol = colKey
	}
}

// WithBoxplot sets the measure and grouping category for the boxplot.
func WithBoxplot(valueKey, byKey string) Option {
	return func(c *config) {
		c.BoxValue = valueKey
		c.BoxBy = byKey
	}
}

// WithDispersion sets the measure and grouping category for the
// per-group spread comparison.
func WithDispersion(valueKey, groupKey string) Option {
	return func(c *config) {
		c.GroupValue = valueKey
		c.GroupKey = groupKey
	}
}

// WithCorrelation sets the measures for the Pearson matrix.
func WithCorrelation(keys ...string) Option {
	return func(c *config) { c.CorrKeys = keys }
}

// WithRegression sets the response and predictor measures. Both axes
// are log transformed, so the slope reads as an elasticity.
func WithRegression(yKey, xKey string) Option {
	return func(c *config) {
		c.RegY = yKey
		c.RegX = xKey
		c.LogRegression = true
	}
}

// WithRawRegression is WithRegression on the original scales, for
// measures where a log transform makes no sense.
func WithRawRegression(yKey, xKey string) Option {
	return func(c *config) {
		c.RegY = yKey
		c.RegX = xKey
		c.LogRegression = false
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		// sensible defaults for housing tables
		Seed:          123,
		SampleSize:    250,
		GridPoints:    200,
		DistKey:       "price",
		CrossRow:      "bedrooms",
		CrossCol:      "stories",
		BoxValue:      "price",
		BoxBy:         "bedrooms",
		GroupValue:    "price",
		GroupKey:      "prefarea",
		CorrKeys:      []string{"price", "lotsize", "bedrooms", "bathrms", "stories", "garagepl"},
		RegY:          "price",
		RegX:          "lotsize",
		LogRegression: true,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
