package helpers

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/hedonic-org/hedonic/engine"
	"github.com/hedonic-org/hedonic/schema"
)

// ============================================================================
// CSV HELPER — Parses CSV data into []engine.Record
// ============================================================================
// Converts raw table bytes into generic Records using the schema. Column
// roles decide where each cell lands: measures parse as numbers, count
// columns land on both sides so they can group AND aggregate, yes/no
// flags normalize to lower case.
// ============================================================================

// ParseCSV parses CSV bytes into Records using the schema for placement.
// Parsing is strict: a non-numeric cell in a measure column or an empty
// cell in a mapped column fails with the offending data row.
func ParseCSV(data []byte, cfg *schema.Config) ([]engine.Record, error) {
	reader := csv.NewReader(strings.NewReader(string(data)))

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("malformed CSV: %w", err)
		}
		rows = append(rows, row)
	}

	return buildRecords(headers, rows, cfg)
}

// ParseCSVAuto parses CSV without a pre-existing schema: columns are
// classified by discovery first. Returns the records and the discovered
// config. Handy for quick looks at an unfamiliar table.
func ParseCSVAuto(data []byte) ([]engine.Record, *schema.Config, error) {
	cfg, err := schema.DiscoverFromCSV(data)
	if err != nil {
		return nil, nil, err
	}
	records, err := ParseCSV(data, cfg)
	if err != nil {
		return nil, nil, err
	}
	return records, cfg, nil
}

// ParseCSVView parses CSV into a RecordView (convenience wrapper).
func ParseCSVView(data []byte, cfg *schema.Config) (engine.RecordView, error) {
	records, err := ParseCSV(data, cfg)
	if err != nil {
		return nil, err
	}
	return engine.NewSliceView(records), nil
}

// ============================================================================
// RECORD BUILDER — shared by the CSV and workbook loaders
// ============================================================================

type colMapping struct {
	key  string
	role schema.Role
}

func mapColumns(headers []string, cfg *schema.Config) []colMapping {
	mappings := make([]colMapping, len(headers))
	for i, h := range headers {
		key := schema.ColumnKey(h)
		mappings[i] = colMapping{key: key, role: cfg.RoleOf(key)}
	}
	return mappings
}

// buildRecords turns raw rows into Records according to column roles.
// Rows that are entirely blank are dropped; anything else missing a
// mapped value is an error. Row numbers in errors count data rows only.
func buildRecords(headers []string, rows [][]string, cfg *schema.Config) ([]engine.Record, error) {
	mappings := mapColumns(headers, cfg)

	records := make([]engine.Record, 0, len(rows))
	for n, row := range rows {
		if isBlankRow(row) {
			continue
		}

		rec := engine.Record{
			Categories: make(map[string]string),
			Measures:   make(map[string]float64),
		}

		for i, m := range mappings {
			if m.role == schema.RoleSkip {
				continue
			}
			var val string
			if i < len(row) {
				val = strings.TrimSpace(row[i])
			}
			if val == "" {
				return nil, fmt.Errorf("data row %d: column %s is empty", n+1, m.key)
			}

			switch m.role {
			case schema.RoleMeasure, schema.RoleCount:
				f, err := parseNumber(val)
				if err != nil {
					return nil, fmt.Errorf("data row %d: column %s: %q is not numeric", n+1, m.key, val)
				}
				rec.Measures[m.key] = f
				if m.role == schema.RoleCount {
					// Canonical numeric string so "03" and "3" group together
					rec.Categories[m.key] = strconv.FormatFloat(f, 'g', -1, 64)
				}

			case schema.RoleBinary:
				rec.Categories[m.key] = strings.ToLower(val)

			case schema.RoleCategory:
				rec.Categories[m.key] = val
			}
		}

		records = append(records, rec)
	}

	if len(records) == 0 {
		return nil, fmt.Errorf("table has no data rows")
	}
	return records, nil
}

func isBlankRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// parseNumber mirrors the tolerance of schema discovery: thousands
// separators and a leading dollar sign are accepted.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(s, ",", "")
	s = strings.TrimPrefix(s, "$")
	return strconv.ParseFloat(s, 64)
}
