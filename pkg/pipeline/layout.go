package pipeline

import (
	"encoding/json"
	"fmt"

	"github.com/flowdeck/flowdeck/pkg/diagram"
	"github.com/flowdeck/flowdeck/pkg/layout"
)

// Layout is the output of the layout stage: the laid-out diagram plus the
// layer structure and crossing count the engine reported. It serializes to
// JSON for caching and API responses.
type Layout struct {
	Diagram   diagram.Diagram `json:"diagram"`
	Layers    [][]string      `json:"layers"`
	Crossings int             `json:"crossings"`
}

// ComputeLayout runs the layout engine on a diagram.
// The returned Layout carries a copy of the diagram with positions and
// handles assigned; the input is never modified.
func ComputeLayout(d diagram.Diagram, opts Options) (Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return Layout{}, err
	}

	res := layout.Run(d.Nodes, d.Edges, opts.LayoutOptions())

	laid := d
	laid.Orientation = opts.Orientation
	laid.Nodes = res.Nodes
	laid.Edges = res.Edges

	return Layout{
		Diagram:   laid,
		Layers:    res.Layers,
		Crossings: res.Crossings,
	}, nil
}

// MarshalLayout serializes a layout for caching.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.Marshal(l)
}

// UnmarshalLayout deserializes a cached layout.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("parse cached layout: %w", err)
	}
	return l, nil
}
