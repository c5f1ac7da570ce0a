package schema

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// ============================================================================
// AUTO-DISCOVERY — Heuristic Column Classification
// ============================================================================
// Inspects raw tabular data and generates a schema.Config automatically.
// ~80% accuracy for well-structured tables; the canonical Housing()
// config overlays the rest.
//
// Classification pipeline per column:
//   1. Sample values → detect type (numeric, binary, string)
//   2. Type + cardinality → classify role (measure, count, binary,
//      category, skip)
//   3. Row-ID heuristic: consecutive unique integers are dropped
// ============================================================================

// DiscoverOptions controls discovery behavior.
type DiscoverOptions struct {
	SampleSize     int      // max rows to inspect (0 = all, capped)
	RecoverColumns []string // force-include columns that were auto-skipped
	Name           string   // dataset name override (otherwise generic)
}

// DefaultDiscoverOptions returns sensible defaults.
func DefaultDiscoverOptions() DiscoverOptions {
	return DiscoverOptions{
		SampleSize: 1000,
	}
}

// DiscoverFromCSV generates a schema.Config by inspecting CSV data.
func DiscoverFromCSV(data []byte, opts ...DiscoverOptions) (*Config, error) {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	var rows [][]string
	limit := opt.SampleSize
	if limit <= 0 {
		limit = 100000 // safety cap
	}
	for i := 0; i < limit; i++ {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			continue // skip malformed rows during discovery
		}
		rows = append(rows, row)
	}

	return Discover(headers, rows, opt)
}

// Discover generates a schema.Config from headers and raw rows. The
// XLSX loader feeds it sheet cells; DiscoverFromCSV feeds it parsed CSV.
func Discover(headers []string, rows [][]string, opts ...DiscoverOptions) (*Config, error) {
	opt := DefaultDiscoverOptions()
	if len(opts) > 0 {
		opt = opts[0]
	}

	if len(headers) == 0 {
		return nil, fmt.Errorf("table has no columns")
	}
	if opt.SampleSize > 0 && len(rows) > opt.SampleSize {
		rows = rows[:opt.SampleSize]
	}
	totalRows := len(rows)
	if totalRows == 0 {
		return nil, fmt.Errorf("table has no data rows")
	}

	columns := make([]columnAnalysis, len(headers))
	for i, header := range headers {
		columns[i] = analyzeColumn(header, i, rows, totalRows)
	}

	recoverSet := make(map[string]bool)
	for _, col := range opt.RecoverColumns {
		recoverSet[strings.ToLower(col)] = true
	}

	config := &Config{
		Name:    opt.Name,
		Version: "1.0",
	}
	if config.Name == "" {
		config.Name = "Auto-discovered Dataset"
	}

	for _, col := range columns {
		recovered := recoverSet[strings.ToLower(col.header)] || recoverSet[col.key]

		switch col.role {
		case RoleMeasure:
			config.Measures = append(config.Measures, col.toMeasure())

		case RoleCount:
			config.Measures = append(config.Measures, col.toMeasure())
			config.Categories = append(config.Categories, col.toCategory())

		case RoleBinary, RoleCategory:
			config.Categories = append(config.Categories, col.toCategory())

		case RoleSkip:
			if recovered {
				config.Categories = append(config.Categories, col.toCategory())
			} else {
				config.SkippedColumns = append(config.SkippedColumns, SkippedColumn{
					Column:      col.header,
					Reason:      col.skipReason,
					Recoverable: col.recoverable,
				})
			}
		}
	}

	config.DiscoveredFrom = "table"
	config.DiscoveredAt = time.Now().Format(time.RFC3339)
	return config, nil
}

// ============================================================================
// COLUMN ANALYSIS
// ============================================================================

type columnType int

const (
	typeString columnType = iota
	typeNumeric
	typeBinary
)

type columnAnalysis struct {
	header      string
	key         string
	index       int
	colType     columnType
	role        Role
	skipReason  string
	recoverable bool

	// Stats
	uniqueCount int
	totalCount  int
	nullCount   int
	sampleVals  []string

	// Numeric detail
	hasDecimals bool
	allInteger  bool
	minVal      float64
	maxVal      float64

	cardinalityHint string
}

// analyzeColumn inspects all values in a column and classifies it.
func analyzeColumn(header string, index int, rows [][]string, totalRows int) columnAnalysis {
	col := columnAnalysis{
		header:     header,
		key:        toSnakeCase(header),
		index:      index,
		totalCount: totalRows,
	}

	values := make([]string, 0, len(rows))
	uniqueSet := make(map[string]bool)

	for _, row := range rows {
		if index >= len(row) {
			col.nullCount++
			continue
		}
		val := strings.TrimSpace(row[index])
		if val == "" || val == "null" || val == "NULL" || val == "N/A" || val == "n/a" {
			col.nullCount++
			continue
		}
		values = append(values, val)
		uniqueSet[val] = true
	}

	col.uniqueCount = len(uniqueSet)

	if len(values) == 0 {
		col.role = RoleSkip
		col.skipReason = "All values are empty/null"
		col.recoverable = false
		return col
	}

	col.sampleVals = collectSamples(uniqueSet, 10)
	col.colType = detectType(values)

	if col.colType == typeNumeric {
		col.allInteger = true
		col.minVal = math.Inf(1)
		col.maxVal = math.Inf(-1)
		for _, v := range values {
			f, err := parseNumeric(v)
			if err != nil {
				continue
			}
			if f != math.Trunc(f) {
				col.hasDecimals = true
				col.allInteger = false
			}
			col.minVal = math.Min(col.minVal, f)
			col.maxVal = math.Max(col.maxVal, f)
		}
	}

	col.classifyRole(totalRows)

	switch {
	case col.uniqueCount <= 10:
		col.cardinalityHint = "low"
	case col.uniqueCount <= 100:
		col.cardinalityHint = "medium"
	default:
		col.cardinalityHint = "high"
	}

	return col
}

// classifyRole decides measure vs count vs category vs skip.
func (col *columnAnalysis) classifyRole(totalRows int) {
	switch col.colType {

	case typeNumeric:
		// Decimals signal continuous data
		if col.hasDecimals {
			col.role = RoleMeasure
			return
		}
		// Consecutive unique integers are a row ID, not data. A
		// continuous column that merely has no duplicates (prices
		// often don't) spans far more than its row count.
		if col.uniqueCount == totalRows && totalRows > 10 &&
			col.allInteger && col.maxVal-col.minVal == float64(totalRows-1) {
			col.role = RoleSkip
			col.skipReason = "Consecutive unique integers — likely a row ID"
			col.recoverable = false
			return
		}
		// Few distinct small integers → a count that both groups and
		// aggregates (bedrooms, stories). High ratio → measure.
		uniqueRatio := float64(col.uniqueCount) / float64(totalRows)
		if col.uniqueCount < 20 && uniqueRatio < 0.3 {
			col.role = RoleCount
			return
		}
		col.role = RoleMeasure

	case typeBinary:
		col.role = RoleBinary

	case typeString:
		if col.uniqueCount == totalRows && totalRows > 10 {
			col.role = RoleSkip
			col.skipReason = "Unique per row — likely an identifier"
			col.recoverable = false
			return
		}
		if col.uniqueCount > totalRows/2 && col.uniqueCount > 50 {
			col.role = RoleSkip
			col.skipReason = fmt.Sprintf("High cardinality (%d unique values) — not useful for grouping", col.uniqueCount)
			col.recoverable = true
			return
		}
		col.role = RoleCategory
	}
}

// ============================================================================
// TYPE DETECTION
// ============================================================================

// detectType inspects values to determine column type.
// Requires 80%+ of non-null values to match for numeric/binary.
func detectType(values []string) columnType {
	if len(values) == 0 {
		return typeString
	}

	numCount := 0
	binCount := 0
	for _, v := range values {
		if isNumeric(v) {
			numCount++
		}
		if isBinaryWord(v) {
			binCount++
		}
	}

	threshold := int(float64(len(values)) * 0.8)
	if binCount >= threshold {
		return typeBinary
	}
	if numCount >= threshold {
		return typeNumeric
	}
	return typeString
}

func isNumeric(s string) bool {
	_, err := parseNumeric(s)
	return err == nil
}

func parseNumeric(s string) (float64, error) {
	s = strings.TrimSpace(s)
	s = strings.ReplaceAll(s, ",", "") // handle "1,234.56"
	s = strings.TrimPrefix(s, "$")
	return strconv.ParseFloat(s, 64)
}

// isBinaryWord matches yes/no style flags. Digits stay numeric so 0/1
// dummy columns keep their count role.
func isBinaryWord(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "yes" || s == "no" || s == "true" || s == "false"
}

// ============================================================================
// CONVERSION HELPERS
// ============================================================================

// toCategory converts a column analysis into CategoryMeta.
func (col *columnAnalysis) toCategory() CategoryMeta {
	return CategoryMeta{
		Key:             col.key,
		DisplayName:     toDisplayName(col.header),
		SampleValues:    col.sampleVals,
		IsBinary:        col.colType == typeBinary,
		IsCount:         col.role == RoleCount,
		CardinalityHint: col.cardinalityHint,
	}
}

// toMeasure converts a column analysis into MeasureMeta.
func (col *columnAnalysis) toMeasure() MeasureMeta {
	return MeasureMeta{
		Key:         col.key,
		DisplayName: toDisplayName(col.header),
		IsCount:     col.role == RoleCount,
	}
}

// ============================================================================
// STRING UTILITIES
// ============================================================================

// ColumnKey canonicalizes a raw header into its schema key. Loaders use
// it so their keys always line up with what discovery produced.
func ColumnKey(header string) string {
	return toSnakeCase(strings.TrimSpace(header))
}

// toSnakeCase converts "Column Name" or "columnName" → "column_name".
func toSnakeCase(s string) string {
	// Handle camelCase: insert underscore before uppercase letters
	var result strings.Builder
	for i, r := range s {
		if unicode.IsUpper(r) && i > 0 {
			prev := rune(s[i-1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) {
				result.WriteRune('_')
			}
		}
		result.WriteRune(r)
	}

	s = result.String()
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "_")
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.ReplaceAll(s, "__", "_")
	s = strings.Trim(s, "_")
	return s
}

// toDisplayName cleans a header for human display.
// "lot_size" → "Lot Size", "prefarea" → "Prefarea"
func toDisplayName(s string) string {
	// If already has spaces/mixed case, just trim
	if strings.Contains(s, " ") {
		return strings.TrimSpace(s)
	}

	s = strings.ReplaceAll(s, "_", " ")
	s = strings.ReplaceAll(s, "-", " ")

	words := strings.Fields(s)
	for i, w := range words {
		if len(w) > 0 {
			words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
		}
	}
	return strings.Join(words, " ")
}

// collectSamples picks up to maxSamples representative values.
func collectSamples(uniqueSet map[string]bool, maxSamples int) []string {
	samples := make([]string, 0, len(uniqueSet))
	for v := range uniqueSet {
		samples = append(samples, v)
	}

	// Sort for deterministic output
	sort.Strings(samples)

	if len(samples) > maxSamples {
		samples = samples[:maxSamples]
	}
	return samples
}
