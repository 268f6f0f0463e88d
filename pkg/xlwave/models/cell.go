// Package models defines data structures for timing diagram extraction.
package models

import "strings"

// BlankColor is the fill color key of a cell without a fill.
const BlankColor = "00000000"

// Cell represents a single worksheet cell as seen by the waveform reader.
type Cell struct {
	// Value is the raw cell text ("" when empty).
	Value string `json:"value,omitempty"`
	// Color is the normalized fill color key (BlankColor when unfilled).
	Color string `json:"color"`
	// Text marks values stored as strings; they are never parsed as numbers.
	Text bool `json:"text,omitempty"`
}

// IsEmpty reports whether the cell carries no value.
func (c Cell) IsEmpty() bool {
	return c.Value == ""
}

// IsBlank reports whether the cell has no fill.
func (c Cell) IsBlank() bool {
	return c.Color == BlankColor
}

// NormalizeColor converts a spreadsheet color string into a fill color key.
// "#ff0000", "FFFF0000" and "ff0000" all map to "FF0000". An empty string maps
// to BlankColor.
func NormalizeColor(color string) string {
	color = strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(color), "#"))
	switch {
	case color == "", color == BlankColor:
		return BlankColor
	case len(color) == 8:
		// ARGB
		return color[2:]
	}
	return color
}
