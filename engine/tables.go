package engine

import (
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ============================================================================
// TABLES — Render-Ready Text Output from a Report
// ============================================================================
// Builders turn Report structs into aligned console tables. The first
// column is left-aligned (labels), every other column right-aligned
// (numbers). WriteReport composes the full text report.
// ============================================================================

// Table is one aligned text table.
type Table struct {
	Title  string
	Header []string
	Rows   [][]string
	Note   string // optional one-line footer
}

// Render returns the table as aligned text, title first.
func (t Table) Render() string {
	widths := make([]int, len(t.Header))
	for i, h := range t.Header {
		widths[i] = len(h)
	}
	for _, row := range t.Rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	b.WriteString(t.Title)
	b.WriteByte('\n')
	writeRow(&b, t.Header, widths)
	for i, w := range widths {
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(strings.Repeat("-", w))
	}
	b.WriteByte('\n')
	for _, row := range t.Rows {
		writeRow(&b, row, widths)
	}
	if t.Note != "" {
		b.WriteString(t.Note)
		b.WriteByte('\n')
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string, widths []int) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteString("  ")
		}
		pad := widths[i] - len(cell)
		if pad < 0 {
			pad = 0
		}
		if i == 0 {
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", pad))
		} else {
			b.WriteString(strings.Repeat(" ", pad))
			b.WriteString(cell)
		}
	}
	b.WriteByte('\n')
}

// ============================================================================
// TABLE BUILDERS
// ============================================================================

// SummaryTable lays out per-measure summaries, one measure per row.
func SummaryTable(sums []MeasureSummary) Table {
	t := Table{
		Title:  "MEASURE SUMMARIES",
		Header: []string{"measure", "n", "mean", "sd", "min", "q1", "median", "q3", "max"},
	}
	for _, s := range sums {
		t.Rows = append(t.Rows, []string{
			s.Key, FormatInt(s.N),
			fmtVal(s.Mean), fmtVal(s.StdDev),
			fmtVal(s.Min), fmtVal(s.Q1), fmtVal(s.Median), fmtVal(s.Q3), fmtVal(s.Max),
		})
	}
	return t
}

// CrosstabTable lays out the two-way counts with row and column totals.
func CrosstabTable(ct *Crosstab) Table {
	t := Table{
		Title:  fmt.Sprintf("CROSSTAB — %s × %s", LabelFor(ct.RowKey), LabelFor(ct.ColKey)),
		Header: append(append([]string{ct.RowKey + " \\ " + ct.ColKey}, ct.ColLevels...), "total"),
	}
	for i, lvl := range ct.RowLevels {
		row := []string{lvl}
		for j := range ct.ColLevels {
			row = append(row, FormatInt(ct.Counts[i][j]))
		}
		row = append(row, FormatInt(ct.RowTotals[i]))
		t.Rows = append(t.Rows, row)
	}
	totals := []string{"total"}
	for _, n := range ct.ColTotals {
		totals = append(totals, FormatInt(n))
	}
	totals = append(totals, FormatInt(ct.Total))
	t.Rows = append(t.Rows, totals)
	return t
}

// DispersionTable lays out per-group location and spread.
func DispersionTable(d *Dispersion) Table {
	t := Table{
		Title:  fmt.Sprintf("DISPERSION — %s by %s", LabelFor(d.ValueKey), LabelFor(d.GroupKey)),
		Header: []string{d.GroupKey, "n", "mean", "sd", "cv"},
	}
	for _, g := range d.Groups {
		t.Rows = append(t.Rows, []string{
			g.Level, FormatInt(g.N), fmtVal(g.Mean), fmtVal(g.StdDev), fmtStat(g.CV),
		})
	}
	return t
}

// CorrelationTable lays out the Pearson matrix with key labels on both
// axes.
func CorrelationTable(c *Correlation) Table {
	t := Table{
		Title:  "CORRELATION — Pearson",
		Header: append([]string{""}, c.Keys...),
	}
	for i, key := range c.Keys {
		row := []string{key}
		for j := range c.Keys {
			row = append(row, fmtStat(c.Matrix[i][j]))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// ============================================================================
// FULL TEXT REPORT
// ============================================================================

// WriteReport writes the whole report as console text: a header, every
// populated table, and scalar lines for the distribution, gamma fit and
// regression steps.
func WriteReport(w io.Writer, r *Report) error {
	rw := &reportWriter{w: w}

	source := r.Source
	if source == "" {
		source = "table"
	}
	rw.printf("HOUSE PRICE EXPLORATION — %s\n", source)
	rw.printf("%s rows, analyzing %s (seed %d)\n\n", FormatInt(r.Rows), FormatInt(r.SampleSize), r.Seed)

	if len(r.Summaries) > 0 {
		rw.table(SummaryTable(r.Summaries))
	}
	if r.Crosstab != nil {
		rw.table(CrosstabTable(r.Crosstab))
	}

	if d := r.Distribution; d != nil {
		rw.printf("DISTRIBUTION — %s\n", LabelFor(d.Key))
		rw.printf("quantiles 0/25/50/75/100: %s / %s / %s / %s / %s\n",
			fmtVal(d.Min), fmtVal(d.Q1), fmtVal(d.Median), fmtVal(d.Q3), fmtVal(d.Max))
		rw.printf("skewness: %s\n", fmtStat(d.Skewness))
		rw.printf("share at or below the mean: %.1f%%\n", d.AtMean*100)
		rw.printf("histogram: %d bins, kde bandwidth %s\n\n", d.Bins, fmtVal(d.Bandwidth))
	}
	if g := r.Gamma; g != nil {
		rw.printf("GAMMA FIT — %s (method of moments)\n", LabelFor(g.Key))
		rw.printf("mean %s, variance %s\n", fmtVal(g.Mean), fmtVal(g.Variance))
		rw.printf("shape %s, rate %s\n\n", fmtStat(g.Shape), fmtVal(g.Rate))
	}

	if r.Dispersion != nil {
		rw.table(DispersionTable(r.Dispersion))
	}
	if r.Correlation != nil {
		rw.table(CorrelationTable(r.Correlation))
	}

	if reg := r.Regression; reg != nil {
		rw.printf("REGRESSION — %s ~ %s (n=%d)\n", reg.YKey, reg.XKey, reg.N)
		rw.printf("intercept %s, slope %s, R² %s\n",
			fmtStat(reg.Intercept), fmtStat(reg.Slope), fmtStat(reg.R2))
		if reg.QQ != nil {
			res := sortedCopy(reg.Residuals)
			rw.printf("residual quartiles: %s / %s / %s\n",
				fmtStat(Quantile(res, 0.25)), fmtStat(Quantile(res, 0.5)), fmtStat(Quantile(res, 0.75)))
			rw.printf("qq reference line: slope %s, intercept %s\n",
				fmtStat(reg.QQ.Slope), fmtStat(reg.QQ.Intercept))
		}
		rw.printf("\n")
	}

	return rw.err
}

type reportWriter struct {
	w   io.Writer
	err error
}

func (rw *reportWriter) printf(format string, args ...interface{}) {
	if rw.err == nil {
		_, rw.err = fmt.Fprintf(rw.w, format, args...)
	}
}

func (rw *reportWriter) table(t Table) {
	rw.printf("%s\n", t.Render())
}

// ============================================================================
// NUMBER FORMATTING
// ============================================================================

// fmtVal formats measure-scale numbers: prices stay integral, derived
// values keep six significant digits.
func fmtVal(v float64) string {
	return strconv.FormatFloat(v, 'g', 6, 64)
}

// fmtStat formats bounded statistics (correlations, ratios, slopes)
// with fixed decimals so columns line up.
func fmtStat(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
