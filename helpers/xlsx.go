package helpers

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/hedonic-org/hedonic/engine"
	"github.com/hedonic-org/hedonic/schema"
)

// ============================================================================
// WORKBOOK HELPER — Reads XLSX sheets into []engine.Record
// ============================================================================
// The canonical housing table ships as a spreadsheet, so the loader
// speaks XLSX natively. Only the first sheet is read.
// ============================================================================

// ReadWorkbook reads the first sheet of an XLSX workbook into headers
// and data rows. Trailing cells excelize leaves off short rows are
// padded back to header width.
func ReadWorkbook(path string) ([]string, [][]string, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, nil, fmt.Errorf("workbook %s has no sheets", path)
	}

	all, err := f.GetRows(sheet)
	if err != nil {
		return nil, nil, fmt.Errorf("read sheet %s: %w", sheet, err)
	}
	if len(all) == 0 {
		return nil, nil, fmt.Errorf("sheet %s is empty", sheet)
	}

	headers := all[0]
	rows := make([][]string, 0, len(all)-1)
	for _, row := range all[1:] {
		if len(row) < len(headers) {
			padded := make([]string, len(headers))
			copy(padded, row)
			row = padded
		}
		rows = append(rows, row)
	}
	return headers, rows, nil
}

// ParseWorkbook reads the first sheet and builds Records using the
// schema for placement, with the same strictness as ParseCSV.
func ParseWorkbook(path string, cfg *schema.Config) ([]engine.Record, error) {
	headers, rows, err := ReadWorkbook(path)
	if err != nil {
		return nil, err
	}
	return buildRecords(headers, rows, cfg)
}
