package parser

import (
	"fmt"
	"log/slog"
	"math"
	"strconv"

	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
	"github.com/xuri/excelize/v2"
)

// ExtractGrid reads the values and fill colors of a sheet into a SheetGrid.
// The grid spans the last row and column holding a value, the stored sheet
// dimension and every cell present in the worksheet part, whichever is
// largest, so filled but empty trailing cells are kept. A nil logger uses
// slog.Default().
func ExtractGrid(f *excelize.File, sheetName string, logger *slog.Logger) (*SheetGrid, error) {
	if logger == nil {
		logger = slog.Default()
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	maxRow, maxCol := valueBounds(rows)
	if dim, err := f.GetSheetDimension(sheetName); err == nil {
		if dimRow, dimCol, ok := parseDimension(dim); ok {
			maxRow = max(maxRow, dimRow)
			maxCol = max(maxCol, dimCol)
		}
	}
	usedRow, usedCol, err := usedRange(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("used range: %w", err)
	}
	maxRow = max(maxRow, usedRow)
	maxCol = max(maxCol, usedCol)

	fills := newFillCache(f, logger)
	cells := make([][]models.Cell, maxRow)
	for rowIdx := range cells {
		row := make([]models.Cell, maxCol)
		for colIdx := range row {
			cellName, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1)
			if err != nil {
				return nil, err
			}
			color, err := fills.cellColor(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName, err)
			}
			row[colIdx] = models.Cell{Color: color}
			if rowIdx >= len(rows) || colIdx >= len(rows[rowIdx]) || rows[rowIdx][colIdx] == "" {
				continue
			}
			row[colIdx].Value = rows[rowIdx][colIdx]
			cellType, err := f.GetCellType(sheetName, cellName)
			if err != nil {
				return nil, fmt.Errorf("cell %s: %w", cellName, err)
			}
			row[colIdx].Text = isTextType(cellType)
		}
		cells[rowIdx] = row
	}

	return NewSheetGrid(cells), nil
}

// isTextType reports whether values of the cell type are kept as strings.
func isTextType(t excelize.CellType) bool {
	switch t {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString,
		excelize.CellTypeFormula, excelize.CellTypeError:
		return true
	}
	return false
}

// fillCache resolves style IDs to fill color keys once per workbook.
type fillCache struct {
	file   *excelize.File
	logger *slog.Logger
	colors map[int]string
}

func newFillCache(f *excelize.File, logger *slog.Logger) *fillCache {
	return &fillCache{file: f, logger: logger, colors: make(map[int]string)}
}

func (c *fillCache) cellColor(sheetName, cellName string) (string, error) {
	styleID, err := c.file.GetCellStyle(sheetName, cellName)
	if err != nil {
		return "", err
	}
	if color, ok := c.colors[styleID]; ok {
		return color, nil
	}
	style, err := c.file.GetStyle(styleID)
	if err != nil {
		return "", fmt.Errorf("style %d: %w", styleID, err)
	}
	color, resolved := fillColor(style)
	if !resolved {
		c.logger.Debug("pattern fill has no resolvable color, reading it as blank",
			"sheet", sheetName,
			"cell", cellName,
			"style", styleID,
		)
	}
	c.colors[styleID] = color
	return color, nil
}

// fillColor returns the fill color key of a style. resolved is false when the
// style has a pattern fill whose color could not be resolved, e.g. a theme
// color in a workbook without a theme part.
func fillColor(style *excelize.Style) (color string, resolved bool) {
	if style == nil {
		return models.BlankColor, true
	}
	fill := style.Fill
	if fill.Type == "pattern" && fill.Pattern == 0 {
		return models.BlankColor, true
	}
	if len(fill.Color) == 0 || fill.Color[0] == "" {
		return models.BlankColor, fill.Type != "pattern"
	}
	return models.NormalizeColor(fill.Color[0]), true
}

// cellValue returns the data value of a cell: text cells as strings, other
// cells parsed as numbers where possible.
func cellValue(c models.Cell) interface{} {
	if c.Text {
		return c.Value
	}
	return parseValue(c.Value)
}

// parseValue attempts to parse a string value as a number.
// Returns int64 for integers, finite float64 for decimals, or the original
// string. "inf" and "NaN" stay strings since JSON cannot carry them.
func parseValue(s string) interface{} {
	// Try integer first
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	// Try float
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
		return f
	}
	// Return as string
	return s
}
