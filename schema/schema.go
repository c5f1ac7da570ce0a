package schema

// ============================================================================
// SCHEMA — Describes the shape of a housing table for the engine
// ============================================================================
// Auto-discovered from data files, or taken from the canonical Housing()
// config when the columns match. The loaders use column roles to decide
// which map each cell lands in: measures, categories, or both.
// ============================================================================

// Role says how the loaders treat a column.
type Role int

const (
	RoleSkip     Role = iota // excluded from analysis (IDs, free text)
	RoleMeasure              // continuous numeric → measure
	RoleCount                // small-integer count → measure AND category
	RoleBinary               // yes/no flag → category
	RoleCategory             // general label → category
)

// Config describes the complete shape of a dataset.
type Config struct {
	Name        string `json:"name"`
	Version     string `json:"version,omitempty"`
	Description string `json:"description,omitempty"`

	Categories []CategoryMeta `json:"categories"`
	Measures   []MeasureMeta  `json:"measures"`

	// Auto-discovery metadata
	DiscoveredFrom string `json:"discoveredFrom,omitempty"`
	DiscoveredAt   string `json:"discoveredAt,omitempty"`

	// Columns skipped during auto-discovery
	SkippedColumns []SkippedColumn `json:"skippedColumns,omitempty"`
}

// CategoryMeta describes a column used for grouping and filtering.
type CategoryMeta struct {
	Key             string   `json:"key"`
	DisplayName     string   `json:"displayName"`
	Description     string   `json:"description,omitempty"`
	SampleValues    []string `json:"sampleValues,omitempty"`
	IsBinary        bool     `json:"isBinary,omitempty"` // yes/no flag
	IsCount         bool     `json:"isCount,omitempty"`  // doubles as a measure
	CardinalityHint string   `json:"cardinalityHint,omitempty"`
}

// MeasureMeta describes a numeric column used for statistics.
type MeasureMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Description string `json:"description,omitempty"`
	Unit        string `json:"unit,omitempty"` // "dollars", "square feet", "rooms"
	IsCount     bool   `json:"isCount,omitempty"`
}

// SkippedColumn records why a column was excluded during auto-discovery.
type SkippedColumn struct {
	Column      string `json:"column"`
	Reason      string `json:"reason"`
	Recoverable bool   `json:"recoverable"` // can be restored if the caller overrides
}

// ============================================================================
// KEY HELPERS
// ============================================================================

// CategoryKeys returns all category keys.
func (c Config) CategoryKeys() []string {
	keys := make([]string, len(c.Categories))
	for i, d := range c.Categories {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}

// RoleOf returns the loader role for a column key. Count columns are
// listed under both Categories and Measures; their role is RoleCount.
func (c Config) RoleOf(key string) Role {
	for _, m := range c.Measures {
		if m.Key == key {
			if m.IsCount {
				return RoleCount
			}
			return RoleMeasure
		}
	}
	for _, d := range c.Categories {
		if d.Key == key {
			if d.IsBinary {
				return RoleBinary
			}
			return RoleCategory
		}
	}
	return RoleSkip
}

// ============================================================================
// CANONICAL HOUSING SCHEMA
// ============================================================================

// Housing returns the canonical config for the Windsor house-price
// table: sale price and lot size as continuous measures, room counts as
// count columns, and six yes/no attributes. Loaders overlay its display
// names and units onto discovered configs when the keys line up.
func Housing() *Config {
	counts := []struct {
		key, name, desc string
	}{
		{"bedrooms", "Bedrooms", "number of bedrooms"},
		{"bathrms", "Bathrooms", "number of full bathrooms"},
		{"stories", "Stories", "number of stories excluding basement"},
		{"garagepl", "Garage Places", "garage places"},
	}
	binaries := []struct {
		key, name, desc string
	}{
		{"driveway", "Driveway", "house has a driveway"},
		{"recroom", "Recreation Room", "house has a recreation room"},
		{"fullbase", "Full Basement", "house has a full finished basement"},
		{"gashw", "Gas Hot Water", "house uses gas for hot water heating"},
		{"airco", "Air Conditioning", "house has central air conditioning"},
		{"prefarea", "Preferred Area", "house is in a preferred neighbourhood"},
	}

	c := &Config{
		Name:        "Windsor Housing",
		Version:     "1.0",
		Description: "Sale prices of houses sold in Windsor, Ontario",
		Measures: []MeasureMeta{
			{Key: "price", DisplayName: "Sale Price", Unit: "dollars"},
			{Key: "lotsize", DisplayName: "Lot Size", Unit: "square feet"},
		},
	}
	for _, ct := range counts {
		c.Measures = append(c.Measures, MeasureMeta{
			Key: ct.key, DisplayName: ct.name, Description: ct.desc, Unit: "count", IsCount: true,
		})
		c.Categories = append(c.Categories, CategoryMeta{
			Key: ct.key, DisplayName: ct.name, Description: ct.desc, IsCount: true, CardinalityHint: "low",
		})
	}
	for _, bn := range binaries {
		c.Categories = append(c.Categories, CategoryMeta{
			Key: bn.key, DisplayName: bn.name, Description: bn.desc,
			SampleValues: []string{"no", "yes"}, IsBinary: true, CardinalityHint: "low",
		})
	}
	return c
}

// Overlay copies display names, units and descriptions from the other
// config onto matching keys. Roles and key sets stay as they are.
func (c *Config) Overlay(other *Config) {
	if other == nil {
		return
	}
	measures := make(map[string]MeasureMeta, len(other.Measures))
	for _, m := range other.Measures {
		measures[m.Key] = m
	}
	for i, m := range c.Measures {
		if o, ok := measures[m.Key]; ok {
			c.Measures[i].DisplayName = o.DisplayName
			c.Measures[i].Unit = o.Unit
			if o.Description != "" {
				c.Measures[i].Description = o.Description
			}
		}
	}

	categories := make(map[string]CategoryMeta, len(other.Categories))
	for _, d := range other.Categories {
		categories[d.Key] = d
	}
	for i, d := range c.Categories {
		if o, ok := categories[d.Key]; ok {
			c.Categories[i].DisplayName = o.DisplayName
			if o.Description != "" {
				c.Categories[i].Description = o.Description
			}
		}
	}
}
