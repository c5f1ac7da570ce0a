// Package hedonic provides an exploratory analysis engine for house-price
// tables. One command, one pass, reproducible numbers.
//
// Usage:
//
//	import "github.com/hedonic-org/hedonic/engine"
//
//	report, err := engine.Run(view,
//	    engine.WithSeed(123),
//	    engine.WithSampleSize(250),
//	    engine.WithRegression("price", "lotsize"),
//	)
//
// The engine takes a record view (generic level/value rows loaded from CSV
// or XLSX by the helpers package) and returns a Report: summary tables,
// distribution fits, a correlation matrix and a log-log price regression,
// all computed on a seeded subsample so repeat runs match digit for digit.
//
// Figure rendering is handled separately by the figure package. The engine
// never touches the filesystem — all computation is in memory.
package hedonic
