package engine

import (
	"fmt"
)

// ============================================================================
// CROSSTAB — Two-Way Frequency Table
// ============================================================================

// CrosstabOf counts rows for every pair of levels of two categories and
// totals the margins. Levels follow the usual ordering (numeric when
// numeric). Rows missing either level are left out of the table.
func CrosstabOf(v RecordView, rowKey, colKey string) (*Crosstab, error) {
	rowLevels := UniqueLevels(v, rowKey)
	colLevels := UniqueLevels(v, colKey)
	if len(rowLevels) == 0 {
		return nil, fmt.Errorf("crosstab: no levels for %q", rowKey)
	}
	if len(colLevels) == 0 {
		return nil, fmt.Errorf("crosstab: no levels for %q", colKey)
	}

	rowIndex := make(map[string]int, len(rowLevels))
	for i, lvl := range rowLevels {
		rowIndex[lvl] = i
	}
	colIndex := make(map[string]int, len(colLevels))
	for j, lvl := range colLevels {
		colIndex[lvl] = j
	}

	ct := &Crosstab{
		RowKey:    rowKey,
		ColKey:    colKey,
		RowLevels: rowLevels,
		ColLevels: colLevels,
		Counts:    make([][]int, len(rowLevels)),
		RowTotals: make([]int, len(rowLevels)),
		ColTotals: make([]int, len(colLevels)),
	}
	for i := range ct.Counts {
		ct.Counts[i] = make([]int, len(colLevels))
	}

	for r := 0; r < v.Len(); r++ {
		i, okRow := rowIndex[v.Category(r, rowKey)]
		j, okCol := colIndex[v.Category(r, colKey)]
		if !okRow || !okCol {
			continue
		}
		ct.Counts[i][j]++
		ct.RowTotals[i]++
		ct.ColTotals[j]++
		ct.Total++
	}

	return ct, nil
}
