package parser

import "github.com/ukaji3/xlwave-go/pkg/xlwave/models"

const (
	red   = "FF0000"
	green = "00FF00"
	grey  = "AAAAAA"
	blue  = "0000FF"
)

// c builds a filled cell.
func c(value, color string) models.Cell {
	return models.Cell{Value: value, Color: color}
}

// v builds an unfilled cell.
func v(value string) models.Cell {
	return models.Cell{Value: value, Color: models.BlankColor}
}

// blank is an empty unfilled cell.
var blank = models.Cell{Color: models.BlankColor}

func grid(rows ...[]models.Cell) *SheetGrid {
	return NewSheetGrid(rows)
}
