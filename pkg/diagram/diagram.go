package diagram

import "time"

// =============================================================================
// Constants - Single Source of Truth
// =============================================================================

// Node shape types. The type tag is opaque to the layout engine (only the
// node's dimensions matter there) but drives how renderers draw the box.
const (
	TypeStart    = "start"
	TypeProcess  = "process"
	TypeDecision = "decision"
	TypeEnd      = "end"
	TypeIO       = "io"
)

// Orientation selects the global flow direction of a layout.
type Orientation string

// Flow directions. Horizontal lays layers out left→right with nodes stacking
// top→bottom inside a layer; Vertical transposes the two axes.
const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Valid reports whether o is a recognized orientation.
func (o Orientation) Valid() bool {
	return o == Horizontal || o == Vertical
}

// =============================================================================
// Handle - Edge Attachment Side
// =============================================================================

// Handle identifies the side of a node's bounding box where an edge attaches.
// The numeric values (0=top, 1=right, 2=bottom, 3=left) are part of the wire
// format and must not be reordered.
type Handle int

const (
	HandleTop Handle = iota
	HandleRight
	HandleBottom
	HandleLeft
)

// String returns the lowercase side name ("top", "right", "bottom", "left").
func (h Handle) String() string {
	switch h {
	case HandleTop:
		return "top"
	case HandleRight:
		return "right"
	case HandleBottom:
		return "bottom"
	case HandleLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Opposite returns the handle on the facing side of the box.
func (h Handle) Opposite() Handle {
	switch h {
	case HandleTop:
		return HandleBottom
	case HandleRight:
		return HandleLeft
	case HandleBottom:
		return HandleTop
	case HandleLeft:
		return HandleRight
	default:
		return h
	}
}

// Offset returns the attachment point of the handle on a box anchored at
// (x, y) with the given width and height. Renderers use this to start and
// end connector paths exactly on the box border.
func (h Handle) Offset(x, y, w, hgt float64) (float64, float64) {
	switch h {
	case HandleTop:
		return x + w/2, y
	case HandleRight:
		return x + w, y + hgt/2
	case HandleBottom:
		return x + w/2, y + hgt
	case HandleLeft:
		return x, y + hgt/2
	default:
		return x, y
	}
}

// =============================================================================
// Node - Typed, Positioned Box
// =============================================================================

// Node is a single flowchart box. X and Y are outputs of the layout engine
// and are overwritten on every layout run; Width and Height are inputs.
type Node struct {
	ID     string  `json:"id" bson:"id"`
	Type   string  `json:"type,omitempty" bson:"type,omitempty"` // start, process, decision, end, io
	Label  string  `json:"label,omitempty" bson:"label,omitempty"`
	X      float64 `json:"x" bson:"x"`
	Y      float64 `json:"y" bson:"y"`
	Width  float64 `json:"width,omitempty" bson:"width,omitempty"`
	Height float64 `json:"height,omitempty" bson:"height,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Edge - Directed Connection
// =============================================================================

// Edge is a directed connection between two nodes. SourceHandle and
// TargetHandle are outputs of the layout engine; any values present on input
// are ignored and recomputed. Loop marks a self-referencing edge that must
// be drawn as a loop stub rather than a normal connector.
type Edge struct {
	ID           string `json:"id" bson:"id"`
	Source       string `json:"source" bson:"source"`
	Target       string `json:"target" bson:"target"`
	SourceHandle Handle `json:"sourceHandle" bson:"source_handle"`
	TargetHandle Handle `json:"targetHandle" bson:"target_handle"`
	Label        string `json:"label,omitempty" bson:"label,omitempty"`
	Loop         bool   `json:"loop,omitempty" bson:"loop,omitempty"`
}

// IsSelfLoop reports whether the edge starts and ends on the same node.
func (e *Edge) IsSelfLoop() bool { return e.Source == e.Target }

// =============================================================================
// Diagram - Complete Flowchart
// =============================================================================

// Diagram is a complete flowchart: all nodes and edges of one drawing plus
// the flow orientation used for automatic layout.
type Diagram struct {
	Name        string      `json:"name,omitempty" bson:"name,omitempty"`
	Orientation Orientation `json:"orientation,omitempty" bson:"orientation,omitempty"`
	Nodes       []Node      `json:"nodes" bson:"nodes"`
	Edges       []Edge      `json:"edges" bson:"edges"`
}

// Node returns a pointer to the node with the given ID, or nil if absent.
func (d *Diagram) Node(id string) *Node {
	for i := range d.Nodes {
		if d.Nodes[i].ID == id {
			return &d.Nodes[i]
		}
	}
	return nil
}

// =============================================================================
// Project - Persisted Diagram
// =============================================================================

// Project wraps a diagram with identity and timestamps for storage.
// Projects are the unit of persistence in package store.
type Project struct {
	ID        string    `json:"id" bson:"_id"`
	Name      string    `json:"name" bson:"name"`
	Diagram   Diagram   `json:"diagram" bson:"diagram"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time `json:"updated_at" bson:"updated_at"`
}
