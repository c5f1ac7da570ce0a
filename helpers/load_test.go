package helpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hedonic-org/hedonic/schema"
)

// ============================================================================
// LOADER TESTS
// ============================================================================

func TestLoadWorkbook(t *testing.T) {
	path := writeWorkbook(t, t.TempDir(), "houses.xlsx", houseSheet())

	view, cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if view.Len() != 12 {
		t.Errorf("view.Len() = %d, want 12", view.Len())
	}
	if cfg.Name != "houses" {
		t.Errorf("config name = %q, want %q", cfg.Name, "houses")
	}

	// Discovery found the count columns on a table this size
	if got := cfg.RoleOf("bedrooms"); got != schema.RoleCount {
		t.Errorf("RoleOf(bedrooms) = %v, want RoleCount", got)
	}
	if view.Category(0, "bedrooms") != "3" {
		t.Errorf("bedrooms level = %q, want %q", view.Category(0, "bedrooms"), "3")
	}
	if view.Measure(0, "price") != 42000 {
		t.Errorf("price = %v, want 42000", view.Measure(0, "price"))
	}

	// Canonical metadata overlays the discovered draft
	for _, m := range cfg.Measures {
		if m.Key == "price" && m.DisplayName != "Sale Price" {
			t.Errorf("price display name = %q, want %q", m.DisplayName, "Sale Price")
		}
	}
}

func TestLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "houses.csv")
	if err := os.WriteFile(path, houseCSV, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	view, cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if view.Len() != 3 {
		t.Errorf("view.Len() = %d, want 3", view.Len())
	}
	if cfg.Name != "houses" {
		t.Errorf("config name = %q, want %q", cfg.Name, "houses")
	}
	if view.Measure(1, "price") != 38500 {
		t.Errorf("price = %v, want 38500", view.Measure(1, "price"))
	}
}

func TestLoadUnsupportedExtension(t *testing.T) {
	_, _, err := Load("houses.parquet")
	if err == nil {
		t.Fatal("expected error for unsupported extension")
	}
	if !strings.Contains(err.Error(), "unsupported") {
		t.Errorf("error should say unsupported, got: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, _, err := Load(filepath.Join(t.TempDir(), "nope.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
