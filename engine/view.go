package engine

import (
	"fmt"
	"math"
	"sort"
)

// ============================================================================
// RECORD VIEW — Zero-Copy Data Access Interface
// ============================================================================
// The engine never owns loader data. It reads through this interface.
//
// Implementations:
//   SliceView — wraps []Record (CSV, XLSX, ad-hoc)
//   SubView   — row subset (indices into parent, zero-copy)
//   LogView   — wraps any view, adds log-transformed measures on read
//
// Loaders build a view once; the engine reads thousands of times.
// ============================================================================

// RecordView provides indexed access to a dataset.
// The engine calls Category/Measure in tight loops — keep implementations fast.
type RecordView interface {
	Len() int
	Category(index int, key string) string
	Measure(index int, key string) float64
	CategoryKeys() []string // available category keys
	MeasureKeys() []string  // available measure keys
}

// ============================================================================
// SLICE VIEW — wraps []Record
// ============================================================================

// Record is a single data row with string categories and numeric measures.
//
// A housing row splits as:
//
//	Record{Categories["driveway"]="yes", Measures["price"]=42000}
type Record struct {
	Categories map[string]string  `json:"categories"`
	Measures   map[string]float64 `json:"measures"`
}

// SliceView wraps a []Record slice as a RecordView.
// Used by helpers.ParseCSV / helpers.ParseXLSX and ad-hoc consumers.
type SliceView struct {
	records []Record
	catKeys []string
	mesKeys []string
}

// NewSliceView creates a RecordView from a []Record slice.
func NewSliceView(records []Record) RecordView {
	v := &SliceView{records: records}
	v.cacheKeys()
	return v
}

func (v *SliceView) cacheKeys() {
	if len(v.records) == 0 {
		return
	}
	catSeen := make(map[string]bool)
	mesSeen := make(map[string]bool)
	for _, r := range v.records {
		for k := range r.Categories {
			if !catSeen[k] {
				catSeen[k] = true
				v.catKeys = append(v.catKeys, k)
			}
		}
		for k := range r.Measures {
			if !mesSeen[k] {
				mesSeen[k] = true
				v.mesKeys = append(v.mesKeys, k)
			}
		}
	}
	// Map iteration order is random; sorted keys keep repeat runs identical.
	sort.Strings(v.catKeys)
	sort.Strings(v.mesKeys)
}

func (v *SliceView) Len() int { return len(v.records) }

func (v *SliceView) Category(i int, key string) string {
	if i < 0 || i >= len(v.records) {
		return ""
	}
	return v.records[i].Categories[key]
}

func (v *SliceView) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.records) {
		return 0
	}
	return v.records[i].Measures[key]
}

func (v *SliceView) CategoryKeys() []string { return v.catKeys }
func (v *SliceView) MeasureKeys() []string  { return v.mesKeys }

// ============================================================================
// SUB VIEW — row subset (zero-copy)
// ============================================================================

// SubView is a row subset of a parent RecordView.
// Holds indices into the parent — no data copy. Subsampling and group
// splits both produce SubViews.
type SubView struct {
	parent  RecordView
	indices []int
}

func newSubView(parent RecordView, indices []int) RecordView {
	return &SubView{parent: parent, indices: indices}
}

func (v *SubView) Len() int { return len(v.indices) }

func (v *SubView) Category(i int, key string) string {
	if i < 0 || i >= len(v.indices) {
		return ""
	}
	return v.parent.Category(v.indices[i], key)
}

func (v *SubView) Measure(i int, key string) float64 {
	if i < 0 || i >= len(v.indices) {
		return 0
	}
	return v.parent.Measure(v.indices[i], key)
}

func (v *SubView) CategoryKeys() []string { return v.parent.CategoryKeys() }
func (v *SubView) MeasureKeys() []string  { return v.parent.MeasureKeys() }

// ============================================================================
// LOG VIEW — on-read log transform (zero-copy)
// ============================================================================

// LogView wraps a RecordView and exposes extra measures that are natural
// logs of parent measures. No data copy — the transform happens per
// Measure() call. The regression reads log_price and log_lotsize through
// one of these.
type LogView struct {
	parent  RecordView
	sources map[string]string // derived key → parent measure key
	mesKeys []string
}

// NewLogView derives log measures from parent measures.
// sources maps each derived key to the parent key it transforms, e.g.
// {"log_price": "price"}. Every source value must be strictly positive;
// a zero or negative value is an error because its log is undefined.
func NewLogView(parent RecordView, sources map[string]string) (RecordView, error) {
	v := &LogView{parent: parent, sources: make(map[string]string, len(sources))}
	v.mesKeys = append(v.mesKeys, parent.MeasureKeys()...)
	derivedKeys := make([]string, 0, len(sources))
	for derived := range sources {
		derivedKeys = append(derivedKeys, derived)
	}
	sort.Strings(derivedKeys)
	for _, derived := range derivedKeys {
		src := sources[derived]
		if !hasKey(parent.MeasureKeys(), src) {
			return nil, fmt.Errorf("log transform: unknown measure %q", src)
		}
		for i := 0; i < parent.Len(); i++ {
			if val := parent.Measure(i, src); val <= 0 {
				return nil, fmt.Errorf("log transform: %s is %v at row %d, must be > 0", src, val, i)
			}
		}
		v.sources[derived] = src
		v.mesKeys = append(v.mesKeys, derived)
	}
	return v, nil
}

func (v *LogView) Len() int { return v.parent.Len() }

func (v *LogView) Category(i int, key string) string {
	return v.parent.Category(i, key)
}

func (v *LogView) Measure(i int, key string) float64 {
	if src, ok := v.sources[key]; ok {
		return math.Log(v.parent.Measure(i, src))
	}
	return v.parent.Measure(i, key)
}

func (v *LogView) CategoryKeys() []string { return v.parent.CategoryKeys() }
func (v *LogView) MeasureKeys() []string  { return v.mesKeys }

// ============================================================================
// COLUMN ACCESS
// ============================================================================

// Column gathers one measure into a fresh slice, in view order.
func Column(v RecordView, key string) []float64 {
	xs := make([]float64, v.Len())
	for i := range xs {
		xs[i] = v.Measure(i, key)
	}
	return xs
}

func hasKey(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}
