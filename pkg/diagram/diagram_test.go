package diagram

import (
	"strings"
	"testing"
)

func TestHandle_String(t *testing.T) {
	tests := []struct {
		h    Handle
		want string
	}{
		{HandleTop, "top"},
		{HandleRight, "right"},
		{HandleBottom, "bottom"},
		{HandleLeft, "left"},
		{Handle(9), "unknown"},
	}
	for _, tt := range tests {
		if got := tt.h.String(); got != tt.want {
			t.Errorf("Handle(%d).String() = %q, want %q", int(tt.h), got, tt.want)
		}
	}
}

func TestHandle_WireValues(t *testing.T) {
	// The 0-3 encoding is part of the wire format and must never shift.
	if HandleTop != 0 || HandleRight != 1 || HandleBottom != 2 || HandleLeft != 3 {
		t.Errorf("handle values = %d,%d,%d,%d, want 0,1,2,3",
			HandleTop, HandleRight, HandleBottom, HandleLeft)
	}
}

func TestHandle_Opposite(t *testing.T) {
	pairs := map[Handle]Handle{
		HandleTop:    HandleBottom,
		HandleRight:  HandleLeft,
		HandleBottom: HandleTop,
		HandleLeft:   HandleRight,
	}
	for h, want := range pairs {
		if got := h.Opposite(); got != want {
			t.Errorf("%s.Opposite() = %s, want %s", h, got, want)
		}
	}
}

func TestHandle_Offset(t *testing.T) {
	tests := []struct {
		h          Handle
		wantX      float64
		wantY      float64
	}{
		{HandleTop, 60, 20},
		{HandleRight, 110, 45},
		{HandleBottom, 60, 70},
		{HandleLeft, 10, 45},
	}
	for _, tt := range tests {
		x, y := tt.h.Offset(10, 20, 100, 50)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("%s.Offset() = (%v, %v), want (%v, %v)", tt.h, x, y, tt.wantX, tt.wantY)
		}
	}
}

func TestOrientation_Valid(t *testing.T) {
	if !Horizontal.Valid() || !Vertical.Valid() {
		t.Error("built-in orientations reported invalid")
	}
	if Orientation("diagonal").Valid() {
		t.Error(`Orientation("diagonal").Valid() = true, want false`)
	}
}

func TestMarshalUnmarshal_RoundTrip(t *testing.T) {
	d := Diagram{
		Name:        "approval",
		Orientation: Vertical,
		Nodes: []Node{
			{ID: "a", Type: TypeStart, Label: "Start", Width: 160, Height: 48},
			{ID: "b", Type: TypeEnd, Label: "End", X: 10, Y: 20},
		},
		Edges: []Edge{
			{ID: "e1", Source: "a", Target: "b", Label: "go",
				SourceHandle: HandleBottom, TargetHandle: HandleTop},
		},
	}

	data, err := Marshal(d)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}

	got, err := Unmarshal(data)
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Name != d.Name || got.Orientation != d.Orientation {
		t.Errorf("metadata changed: %+v", got)
	}
	if len(got.Nodes) != 2 || got.Nodes[0].Type != TypeStart {
		t.Errorf("nodes changed: %+v", got.Nodes)
	}
	if len(got.Edges) != 1 || got.Edges[0].SourceHandle != HandleBottom {
		t.Errorf("edges changed: %+v", got.Edges)
	}
}

func TestUnmarshal_DefaultsOrientation(t *testing.T) {
	got, err := Unmarshal([]byte(`{"nodes":[],"edges":[]}`))
	if err != nil {
		t.Fatalf("Unmarshal error: %v", err)
	}
	if got.Orientation != Horizontal {
		t.Errorf("Orientation = %q, want %q", got.Orientation, Horizontal)
	}
}

func TestUnmarshal_RejectsBadOrientation(t *testing.T) {
	_, err := Unmarshal([]byte(`{"orientation":"diagonal","nodes":[],"edges":[]}`))
	if err == nil || !strings.Contains(err.Error(), "orientation") {
		t.Errorf("Unmarshal error = %v, want invalid orientation", err)
	}
}

func TestEnsureIDs(t *testing.T) {
	d := Diagram{
		Nodes: []Node{{ID: "a"}, {}},
		Edges: []Edge{
			{Source: "a", Target: "b"},
			{ID: "keep", Source: "b", Target: "a"},
		},
	}

	EnsureIDs(&d)

	if d.Nodes[1].ID == "" {
		t.Error("node without ID was not assigned one")
	}
	if got := d.Edges[0].ID; got != "a-b" {
		t.Errorf("derived edge ID = %q, want %q", got, "a-b")
	}
	if got := d.Edges[1].ID; got != "keep" {
		t.Errorf("existing edge ID changed to %q", got)
	}
}

func TestDiagram_Node(t *testing.T) {
	d := Diagram{Nodes: []Node{{ID: "a"}, {ID: "b"}}}

	if n := d.Node("b"); n == nil || n.ID != "b" {
		t.Errorf("Node(b) = %v, want node b", n)
	}
	if n := d.Node("ghost"); n != nil {
		t.Errorf("Node(ghost) = %v, want nil", n)
	}
}
