package schema

import (
	"fmt"

	"github.com/goccy/go-json"
)

// DecodeModel parses a JSON array of schema nodes into a Model. Transform
// nodes decoded from JSON carry only the textual form of their decode
// function; the runtime probe is unavailable for them and the codec emitter
// degrades accordingly unless an explicit source shape is supplied.
func DecodeModel(data []byte) (Model, error) {
	var m Model
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse schema model: %w", err)
	}
	return m, nil
}

// EncodeModel serializes a Model back to JSON, mostly useful for debugging
// dumps from the CLI.
func EncodeModel(m Model) ([]byte, error) {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to serialize schema model: %w", err)
	}
	return data, nil
}
