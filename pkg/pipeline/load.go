package pipeline

import (
	"fmt"
	"os"

	"github.com/flowdeck/flowdeck/pkg/diagram"
)

// Load parses a diagram document and fills in any missing node or edge
// IDs, so downstream stages can rely on every element being addressable.
func Load(data []byte) (diagram.Diagram, error) {
	d, err := diagram.Unmarshal(data)
	if err != nil {
		return diagram.Diagram{}, err
	}
	diagram.EnsureIDs(&d)
	return d, nil
}

// LoadFile reads and parses a diagram document from disk.
func LoadFile(path string) (diagram.Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return diagram.Diagram{}, fmt.Errorf("read diagram: %w", err)
	}
	return Load(data)
}
