package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// valueBounds returns the number of rows and columns needed to hold every
// non-empty value.
func valueBounds(rows [][]string) (maxRow, maxCol int) {
	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if rowIdx+1 > maxRow {
				maxRow = rowIdx + 1
			}
			if colIdx+1 > maxCol {
				maxCol = colIdx + 1
			}
		}
	}
	return
}

// parseDimension parses a sheet dimension like A1:H12 or $A$1:$H$12 and
// returns its last row and column (1-based). A single cell reference is
// accepted as well.
func parseDimension(ref string) (lastRow, lastCol int, ok bool) {
	// Remove $ signs
	ref = strings.ReplaceAll(strings.TrimSpace(ref), "$", "")
	if ref == "" {
		return 0, 0, false
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return 0, 0, false
	}

	end := parts[len(parts)-1]
	col, row, err := excelize.CellNameToCoordinates(end)
	if err != nil {
		return 0, 0, false
	}
	return row, col, true
}
