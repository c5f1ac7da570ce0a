package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/hedonic-org/hedonic/engine"
	"github.com/hedonic-org/hedonic/figure"
	"github.com/hedonic-org/hedonic/helpers"
)

// ============================================================================
// HEDONIC CLI — house price exploration in one run
// ============================================================================

const version = "0.1.0"

func main() {
	// ── Flags ─────────────────────────────────────────────────────────────
	dataPath := flag.String("data", "", "Path to the housing data file, .csv or .xlsx (required)")
	outDir := flag.String("out", "figures", "Directory for figure files")
	plotFormat := flag.String("plot", "png", "Figure format: png, svg, pdf")
	format := flag.String("format", "text", "Report format: text, json, pretty")
	seed := flag.Uint64("seed", 123, "Random seed for the subsample")
	sampleSize := flag.Int("sample", 250, "Subsample size, 0 analyzes every row")
	where := flag.String("where", "", "Keep only matching rows, e.g. prefarea=yes,airco=no")
	noFigures := flag.Bool("no-figures", false, "Print statistics only, skip figure rendering")
	discover := flag.Bool("discover", false, "Print the auto-detected schema and exit")
	showVersion := flag.Bool("version", false, "Print version and exit")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Hedonic — exploratory analysis of house sale prices

Usage:
  hedonic --data Housing.csv
  hedonic --data Housing.xlsx --out figures --plot svg
  hedonic --data Housing.csv --sample 0 --format pretty
  hedonic --data Housing.csv --where prefarea=yes --no-figures
  hedonic --data Housing.csv --discover --format pretty

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Formats:
  text      Aligned summary tables (default)
  json      Full report as a single JSON document
  pretty    Pretty-printed JSON

Figures:
  ecdf, histogram, boxplot, correlation, regression and qq are written
  under --out in the --plot format (png, svg or pdf).

Examples:
  # Full analysis of the Windsor table on a seeded 250-row subsample
  hedonic --data Housing.csv

  # Repeat with a different draw
  hedonic --data Housing.csv --seed 7

  # Preferred-area houses only, statistics to stdout, no figures
  hedonic --data Housing.csv --where prefarea=yes --no-figures
`)
	}

	flag.Parse()

	if *showVersion {
		fmt.Printf("hedonic %s\n", version)
		os.Exit(0)
	}

	if *dataPath == "" {
		fmt.Fprintln(os.Stderr, "Error: --data is required")
		flag.Usage()
		os.Exit(1)
	}

	filters, err := parseWhere(*where)
	if err != nil {
		fatalf("%v", err)
	}

	// ── Load data ─────────────────────────────────────────────────────────
	view, cfg, err := helpers.Load(*dataPath)
	if err != nil {
		fatalf("Failed to load data: %v", err)
	}
	log.Printf("📦 Loaded %d rows from %s (%d measures, %d categories)",
		view.Len(), *dataPath, len(cfg.Measures), len(cfg.Categories))

	// ── Discover mode ─────────────────────────────────────────────────────
	if *discover {
		writeJSON(cfg, *format)
		return
	}

	// ── Analyze ───────────────────────────────────────────────────────────
	opts := []engine.Option{
		engine.WithSource(cfg.Name),
		engine.WithSeed(*seed),
		engine.WithSampleSize(*sampleSize),
		engine.WithDescribe(cfg.MeasureKeys()...), // summaries in file column order
	}
	if len(filters) > 0 {
		opts = append(opts, engine.WithFilters(filters))
	}

	report, err := engine.Run(view, opts...)
	if err != nil {
		fatalf("Analysis failed: %v", err)
	}

	// ── Report ────────────────────────────────────────────────────────────
	switch *format {
	case "json", "pretty":
		writeJSON(report, *format)
	case "text":
		if err := engine.WriteReport(os.Stdout, report); err != nil {
			fatalf("Failed to write report: %v", err)
		}
	default:
		fatalf("Unknown format %q (use text, json or pretty)", *format)
	}

	// ── Figures ───────────────────────────────────────────────────────────
	if *noFigures {
		return
	}
	renderer := figure.NewRenderer(*outDir)
	renderer.Format = *plotFormat
	paths, err := renderer.All(report)
	if err != nil {
		fatalf("Figure rendering failed: %v", err)
	}
	log.Printf("📈 Wrote %d figures to %s", len(paths), *outDir)
}

// ============================================================================
// HELPERS
// ============================================================================

// parseWhere turns "prefarea=yes,airco=no" into row filters. Repeating a
// column keeps rows matching any of its values.
func parseWhere(s string) (engine.Filters, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	filters := engine.Filters{}
	for _, clause := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(strings.TrimSpace(clause), "=")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("bad --where clause %q (want column=value)", clause)
		}
		filters[key] = append(filters[key], value)
	}
	return filters, nil
}

func writeJSON(v interface{}, format string) {
	var out []byte
	var err error

	if format == "pretty" {
		out, err = json.MarshalIndent(v, "", "  ")
	} else {
		out, err = json.Marshal(v)
	}

	if err != nil {
		fatalf("Failed to marshal report: %v", err)
	}
	fmt.Println(string(out))
}

func fatalf(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
