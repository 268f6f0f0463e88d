// Package output serializes diagrams.
package output

import (
	"encoding/json"

	"github.com/ukaji3/xlwave-go/pkg/xlwave/models"
)

// ToJSON serializes a diagram to WaveJSON.
func ToJSON(d *models.Diagram, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(d, "", "  ")
	}
	return json.Marshal(d)
}

// SignalToJSON serializes a single signal lane.
func SignalToJSON(s *models.Signal, pretty bool) ([]byte, error) {
	if pretty {
		return json.MarshalIndent(s, "", "  ")
	}
	return json.Marshal(s)
}
