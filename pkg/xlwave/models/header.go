package models

// Header maps logical column roles to zero-based column indices.
type Header struct {
	// Name is the column holding signal names and configuration keywords.
	Name int `json:"name"`
	// Edge is reserved and never populated by header resolution.
	Edge *int `json:"edge,omitempty"`
	// Group is the column holding the signal group, if the header has one.
	Group *int `json:"group,omitempty"`
	// StartCol is the first column holding time-series data.
	StartCol int `json:"start_col"`
}

// DefaultHeader returns the column layout used when no header row is present.
func DefaultHeader() Header {
	return Header{Name: 0, StartCol: 1}
}
