package engine

import (
	"fmt"
	"log"
)

// ============================================================================
// EXECUTOR — One-Shot Analysis Pipeline
// ============================================================================
// Entry point: Run(view, opts...)
//
// Pipeline:
//   1. Validate requested keys against the view
//   2. Apply filters → SubView
//   3. Seeded subsample → SubView
//   4. Summaries, crosstab, distribution, gamma fit
//   5. Boxplot groups, dispersion, correlation
//   6. Log-log regression with residual diagnostics
//   7. Return render-ready Report
//
// Every step reads through RecordView — zero data copy. Same seed,
// same report, down to the last digit.
// ============================================================================

// Run executes the full analysis over a view and returns a render-ready
// Report. Steps whose keys are blanked out by options are skipped and
// their Report fields stay nil.
func Run(view RecordView, opts ...Option) (*Report, error) {
	cfg := applyOptions(opts)

	if view.Len() == 0 {
		return nil, fmt.Errorf("run: table is empty")
	}
	if cfg.Describe == nil {
		cfg.Describe = view.MeasureKeys()
	}
	if err := validateKeys(view, cfg); err != nil {
		return nil, err
	}

	log.Printf("🔧 Hedonic: Analyzing %d rows, sample=%d, seed=%d",
		view.Len(), cfg.SampleSize, cfg.Seed)

	// 1. Filters → SubView (zero-copy)
	analyzed := ApplyFilters(view, cfg.Filters)
	if analyzed.Len() == 0 {
		return nil, fmt.Errorf("run: no rows match the filters")
	}
	if analyzed.Len() < view.Len() {
		log.Printf("🔧 Hedonic: %d rows after filtering (from %d)", analyzed.Len(), view.Len())
	}

	// 2. Seeded subsample → SubView (zero-copy)
	if cfg.SampleSize > 0 {
		sampled, err := Subsample(analyzed, cfg.SampleSize, cfg.Seed)
		if err != nil {
			return nil, err
		}
		log.Printf("🎲 Hedonic: Drew %d of %d rows with seed %d",
			sampled.Len(), analyzed.Len(), cfg.Seed)
		analyzed = sampled
	}

	report := &Report{
		Source:     cfg.Source,
		Rows:       view.Len(),
		SampleSize: analyzed.Len(),
		Seed:       cfg.Seed,
	}

	// 3. Per-measure summaries
	if len(cfg.Describe) > 0 {
		summaries, err := Describe(analyzed, cfg.Describe)
		if err != nil {
			return nil, err
		}
		report.Summaries = summaries
	}

	// 4. Two-way frequency table
	if cfg.CrossRow != "" && cfg.CrossCol != "" {
		ct, err := CrosstabOf(analyzed, cfg.CrossRow, cfg.CrossCol)
		if err != nil {
			return nil, err
		}
		report.Crosstab = ct
		log.Printf("📊 Hedonic: Crosstab %s × %s (%d levels × %d levels)",
			ct.RowKey, ct.ColKey, len(ct.RowLevels), len(ct.ColLevels))
	}

	// 5. Distribution shape and gamma fit
	if cfg.DistKey != "" {
		dist, err := DistributionOf(analyzed, cfg.DistKey, cfg.GridPoints)
		if err != nil {
			return nil, err
		}
		report.Distribution = dist
		log.Printf("📊 Hedonic: %s skewness %.4f, median %.6g",
			dist.Key, dist.Skewness, dist.Median)

		gamma, err := FitGamma(analyzed, cfg.DistKey, cfg.GridPoints)
		if err != nil {
			return nil, err
		}
		report.Gamma = gamma
		log.Printf("📊 Hedonic: Gamma fit shape %.4f, rate %.6g", gamma.Shape, gamma.Rate)
	}

	// 6. Boxplot groups
	if cfg.BoxValue != "" && cfg.BoxBy != "" {
		report.Boxplot = ValuesByLevel(analyzed, cfg.BoxValue, cfg.BoxBy)
	}

	// 7. Per-group spread
	if cfg.GroupValue != "" && cfg.GroupKey != "" {
		disp, err := SpreadByLevel(analyzed, cfg.GroupValue, cfg.GroupKey)
		if err != nil {
			return nil, err
		}
		report.Dispersion = disp
	}

	// 8. Correlation matrix
	if len(cfg.CorrKeys) >= 2 {
		corr, err := Correlate(analyzed, cfg.CorrKeys)
		if err != nil {
			return nil, err
		}
		report.Correlation = corr
	}

	// 9. Regression with residual diagnostics
	if cfg.RegY != "" && cfg.RegX != "" {
		regView, yKey, xKey := analyzed, cfg.RegY, cfg.RegX
		if cfg.LogRegression {
			lv, err := NewLogView(analyzed, map[string]string{
				"log_" + cfg.RegY: cfg.RegY,
				"log_" + cfg.RegX: cfg.RegX,
			})
			if err != nil {
				return nil, err
			}
			regView, yKey, xKey = lv, "log_"+cfg.RegY, "log_"+cfg.RegX
		}
		reg, err := Regress(regView, yKey, xKey)
		if err != nil {
			return nil, err
		}
		report.Regression = reg
		log.Printf("📉 Hedonic: %s ~ %s slope %.4f, R² %.4f",
			reg.YKey, reg.XKey, reg.Slope, reg.R2)
	}

	return report, nil
}

// ============================================================================
// KEY VALIDATION
// ============================================================================

// validateKeys rejects unknown column keys up front, before any work.
// Sub and log views preserve parent keys, so validating the input view
// covers the whole pipeline.
func validateKeys(view RecordView, cfg *config) error {
	measures := view.MeasureKeys()
	categories := view.CategoryKeys()

	wantMeasure := append([]string{cfg.DistKey, cfg.BoxValue, cfg.GroupValue, cfg.RegY, cfg.RegX}, cfg.CorrKeys...)
	wantMeasure = append(wantMeasure, cfg.Describe...)
	for _, key := range wantMeasure {
		if key != "" && !hasKey(measures, key) {
			return fmt.Errorf("run: unknown measure %q", key)
		}
	}

	wantCategory := []string{cfg.CrossRow, cfg.CrossCol, cfg.BoxBy, cfg.GroupKey}
	for key := range cfg.Filters {
		wantCategory = append(wantCategory, key)
	}
	for _, key := range wantCategory {
		if key != "" && !hasKey(categories, key) {
			return fmt.Errorf("run: unknown category %q", key)
		}
	}

	return nil
}
