package helpers

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/hedonic-org/hedonic/engine"
	"github.com/hedonic-org/hedonic/schema"
)

// ============================================================================
// LOADER — One Call From File Path To RecordView
// ============================================================================

// Load reads a CSV or XLSX data file into a RecordView. The schema is
// discovered from the table itself, then canonical housing metadata is
// overlaid wherever the column keys line up. The returned config
// describes what was classified, including any skipped columns.
func Load(path string) (engine.RecordView, *schema.Config, error) {
	ext := strings.ToLower(filepath.Ext(path))
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch ext {
	case ".csv":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, nil, fmt.Errorf("read %s: %w", path, err)
		}
		cfg, err := schema.DiscoverFromCSV(data, discoverOptions(name))
		if err != nil {
			return nil, nil, err
		}
		cfg.Overlay(schema.Housing())
		records, err := ParseCSV(data, cfg)
		if err != nil {
			return nil, nil, err
		}
		return engine.NewSliceView(records), cfg, nil

	case ".xlsx", ".xlsm":
		headers, rows, err := ReadWorkbook(path)
		if err != nil {
			return nil, nil, err
		}
		cfg, err := schema.Discover(headers, rows, discoverOptions(name))
		if err != nil {
			return nil, nil, err
		}
		cfg.Overlay(schema.Housing())
		records, err := buildRecords(headers, rows, cfg)
		if err != nil {
			return nil, nil, err
		}
		return engine.NewSliceView(records), cfg, nil

	default:
		return nil, nil, fmt.Errorf("unsupported data file %q (use .csv or .xlsx)", ext)
	}
}

// discoverOptions classifies on the full table, not a sample. Housing
// tables are small enough that there is no reason to guess from a
// prefix.
func discoverOptions(name string) schema.DiscoverOptions {
	opt := schema.DefaultDiscoverOptions()
	opt.SampleSize = 0
	opt.Name = name
	return opt
}
