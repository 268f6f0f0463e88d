// Package parser provides worksheet reading and waveform interpretation.
package parser

import "github.com/ukaji3/xlwave-go/pkg/xlwave/models"

// Grid is a rectangular view of one worksheet.
// Coordinates are zero-based.
type Grid interface {
	// Rows returns the number of rows in the grid.
	Rows() int
	// Cols returns the number of columns in the grid.
	Cols() int
	// Cell returns the cell at row, col. Out-of-range cells are empty and blank.
	Cell(row, col int) models.Cell
}

// SheetGrid is an in-memory Grid.
type SheetGrid struct {
	cells [][]models.Cell
	cols  int
}

// NewSheetGrid creates a grid from rows of cells. Rows may be ragged; the
// column count is the longest row.
func NewSheetGrid(cells [][]models.Cell) *SheetGrid {
	g := &SheetGrid{cells: cells}
	for _, row := range cells {
		if len(row) > g.cols {
			g.cols = len(row)
		}
	}
	return g
}

// Rows returns the number of rows.
func (g *SheetGrid) Rows() int { return len(g.cells) }

// Cols returns the number of columns.
func (g *SheetGrid) Cols() int { return g.cols }

// Cell returns the cell at row, col.
func (g *SheetGrid) Cell(row, col int) models.Cell {
	if row < 0 || row >= len(g.cells) || col < 0 || col >= len(g.cells[row]) {
		return models.Cell{Color: models.BlankColor}
	}
	c := g.cells[row][col]
	if c.Color == "" {
		c.Color = models.BlankColor
	}
	return c
}
