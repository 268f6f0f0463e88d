package parser

import (
	"strings"

	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
)

// ResolveHeader scans the first row for "name" and "group" labels
// (case-insensitive). StartCol is one past the rightmost recognized label.
// Without any label the default layout is returned.
func ResolveHeader(g Grid) models.Header {
	h := models.DefaultHeader()
	if g.Rows() == 0 {
		return h
	}

	last := -1
	for col := 0; col < g.Cols(); col++ {
		switch strings.ToLower(g.Cell(0, col).Value) {
		case "name":
			h.Name = col
			last = col
		case "group":
			idx := col
			h.Group = &idx
			last = col
		}
	}
	if last >= 0 {
		h.StartCol = last + 1
	}
	return h
}
