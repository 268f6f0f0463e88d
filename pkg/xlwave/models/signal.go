package models

// Signal represents one waveform lane of the diagram.
type Signal struct {
	// Name is the signal name taken from the name column.
	Name string `json:"name"`
	// Data holds the raw values of cells that carried a data color, in column order.
	Data []interface{} `json:"data"`
	// Wave holds one character per scanned time column.
	Wave string `json:"wave"`
	// Group is the group column value, if any. It is not part of the rendered output.
	Group string `json:"-"`
}
