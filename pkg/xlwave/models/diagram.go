package models

// Diagram is the structure handed to a WaveDrom compatible renderer.
type Diagram struct {
	// Signal lists the selected signals in output order.
	Signal []Signal `json:"signal"`
	// Config is an opaque rendering configuration block (e.g. {"hscale": 0.5}).
	Config map[string]interface{} `json:"config,omitempty"`
}

// WithConfig attaches a rendering configuration block and returns the diagram.
func (d *Diagram) WithConfig(config map[string]interface{}) *Diagram {
	d.Config = config
	return d
}
