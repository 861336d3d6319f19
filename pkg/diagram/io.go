package diagram

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// =============================================================================
// Diagram Serialization API
// =============================================================================

// Marshal converts a diagram to pretty-printed JSON bytes.
func Marshal(d Diagram) ([]byte, error) {
	return json.MarshalIndent(d, "", "  ")
}

// Unmarshal deserializes JSON bytes into a diagram.
// An unset orientation defaults to [Horizontal].
func Unmarshal(data []byte) (Diagram, error) {
	var d Diagram
	if err := json.Unmarshal(data, &d); err != nil {
		return Diagram{}, fmt.Errorf("unmarshal diagram: %w", err)
	}
	if d.Orientation == "" {
		d.Orientation = Horizontal
	}
	if !d.Orientation.Valid() {
		return Diagram{}, fmt.Errorf("invalid orientation: %q", d.Orientation)
	}
	return d, nil
}

// Read decodes a JSON diagram from r.
// Use [ReadFile] for files or pass bytes.NewReader for in-memory data.
func Read(r io.Reader) (Diagram, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Diagram{}, fmt.Errorf("read: %w", err)
	}
	return Unmarshal(data)
}

// ReadFile reads a JSON file and returns the decoded diagram.
func ReadFile(path string) (Diagram, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Diagram{}, fmt.Errorf("read %s: %w", path, err)
	}
	d, err := Unmarshal(data)
	if err != nil {
		return Diagram{}, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

// Write encodes a diagram as indented JSON to w.
func Write(d Diagram, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(d); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteFile writes a diagram to a JSON file.
// The file is created with 0644 permissions.
func WriteFile(d Diagram, path string) error {
	data, err := Marshal(d)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
