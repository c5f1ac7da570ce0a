package helpers

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/hedonic-org/hedonic/schema"
)

// ============================================================================
// WORKBOOK TESTS
// ============================================================================

// houseSheet is a twelve-row housing table. Numbers are written as
// numbers so the round trip exercises excelize's cell rendering.
func houseSheet() [][]interface{} {
	return [][]interface{}{
		{"price", "lotsize", "bedrooms", "bathrms", "stories", "driveway", "recroom", "fullbase", "gashw", "airco", "garagepl", "prefarea"},
		{42000, 5850, 3, 1, 2, "yes", "no", "yes", "no", "no", 1, "no"},
		{38500, 4000, 2, 1, 1, "yes", "no", "no", "no", "no", 0, "no"},
		{49500, 3060, 3, 1, 1, "yes", "no", "no", "no", "no", 0, "no"},
		{60500, 6650, 3, 1, 2, "yes", "yes", "no", "no", "no", 0, "no"},
		{61000, 6360, 2, 1, 1, "yes", "no", "no", "no", "no", 0, "no"},
		{66000, 4160, 3, 1, 1, "yes", "yes", "yes", "no", "yes", 0, "no"},
		{66500, 3880, 3, 2, 2, "yes", "no", "yes", "no", "no", 2, "no"},
		{69000, 4160, 3, 1, 2, "yes", "no", "no", "no", "no", 0, "no"},
		{83800, 4800, 3, 1, 1, "yes", "yes", "yes", "no", "no", 0, "no"},
		{88500, 5500, 3, 2, 4, "yes", "yes", "no", "no", "yes", 1, "no"},
		{90000, 7200, 3, 2, 1, "yes", "no", "yes", "no", "yes", 2, "no"},
		{30500, 3000, 2, 1, 1, "no", "no", "no", "no", "no", 0, "yes"},
	}
}

// writeWorkbook saves rows to an XLSX file and returns its path.
func writeWorkbook(t *testing.T, dir, name string, rows [][]interface{}) string {
	t.Helper()
	path := filepath.Join(dir, name)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	for i := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatalf("cell name for row %d: %v", i+1, err)
		}
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			t.Fatalf("set row %d: %v", i+1, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		t.Fatalf("save workbook: %v", err)
	}
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "houses.xlsx", houseSheet())

	headers, rows, err := ReadWorkbook(path)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	if len(headers) != 12 {
		t.Errorf("expected 12 headers, got %d: %v", len(headers), headers)
	}
	if len(rows) != 12 {
		t.Errorf("expected 12 data rows, got %d", len(rows))
	}
	if rows[0][0] != "42000" {
		t.Errorf("first price cell = %q, want %q", rows[0][0], "42000")
	}
	if rows[11][11] != "yes" {
		t.Errorf("last prefarea cell = %q, want %q", rows[11][11], "yes")
	}
}

func TestReadWorkbookPadsShortRows(t *testing.T) {
	sheet := houseSheet()
	// Drop the trailing prefarea cell from the last row
	sheet[len(sheet)-1] = sheet[len(sheet)-1][:11]
	path := writeWorkbook(t, t.TempDir(), "ragged.xlsx", sheet)

	headers, rows, err := ReadWorkbook(path)
	if err != nil {
		t.Fatalf("ReadWorkbook failed: %v", err)
	}
	last := rows[len(rows)-1]
	if len(last) != len(headers) {
		t.Fatalf("short row not padded: %d cells vs %d headers", len(last), len(headers))
	}
	if last[11] != "" {
		t.Errorf("padded cell = %q, want empty", last[11])
	}

	// The padded hole is still a hole: strict parsing refuses it
	if _, err := ParseWorkbook(path, schema.Housing()); err == nil {
		t.Error("expected error for row missing prefarea")
	} else if !strings.Contains(err.Error(), "prefarea") {
		t.Errorf("error should name the column, got: %v", err)
	}
}

func TestParseWorkbook(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "houses.xlsx", houseSheet())

	records, err := ParseWorkbook(path, schema.Housing())
	if err != nil {
		t.Fatalf("ParseWorkbook failed: %v", err)
	}
	if len(records) != 12 {
		t.Fatalf("expected 12 records, got %d", len(records))
	}
	if records[0].Measures["price"] != 42000 {
		t.Errorf("price = %v, want 42000", records[0].Measures["price"])
	}
	if records[6].Categories["garagepl"] != "2" {
		t.Errorf("garagepl level = %q, want %q", records[6].Categories["garagepl"], "2")
	}
	if records[11].Categories["prefarea"] != "yes" {
		t.Errorf("prefarea = %q, want %q", records[11].Categories["prefarea"], "yes")
	}
}

func TestReadWorkbookMissing(t *testing.T) {
	if _, _, err := ReadWorkbook(filepath.Join(t.TempDir(), "nope.xlsx")); err == nil {
		t.Error("expected error for missing workbook")
	}
}
