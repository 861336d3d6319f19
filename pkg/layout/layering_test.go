package layout

import (
	"reflect"
	"testing"

	"github.com/flowdeck/flowdeck/pkg/diagram"
)

func TestAssignLayers_Chain(t *testing.T) {
	g := buildGraph(
		[]diagram.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}},
		[]diagram.Edge{
			{ID: "e1", Source: "a", Target: "b"},
			{ID: "e2", Source: "b", Target: "c"},
		},
	)

	layers, layerOf := assignLayers(g)

	want := [][]string{{"a"}, {"b"}, {"c"}}
	if !reflect.DeepEqual(layers, want) {
		t.Errorf("layers = %v, want %v", layers, want)
	}
	if layerOf["c"] != 2 {
		t.Errorf("layerOf[c] = %d, want 2", layerOf["c"])
	}
}

func TestAssignLayers_LongestPathWins(t *testing.T) {
	// d is reachable directly from a and via b→c; it must land below the
	// deepest predecessor, not the shallowest.
	g := buildGraph(
		[]diagram.Node{{ID: "a"}, {ID: "b"}, {ID: "c"}, {ID: "d"}},
		[]diagram.Edge{
			{ID: "e1", Source: "a", Target: "b"},
			{ID: "e2", Source: "b", Target: "c"},
			{ID: "e3", Source: "a", Target: "d"},
			{ID: "e4", Source: "c", Target: "d"},
		},
	)

	_, layerOf := assignLayers(g)

	if layerOf["d"] != 3 {
		t.Errorf("layerOf[d] = %d, want 3", layerOf["d"])
	}
}

func TestAssignLayers_RootsLandInLayerZero(t *testing.T) {
	g := buildGraph(
		[]diagram.Node{{ID: "r1"}, {ID: "r2"}, {ID: "x"}},
		[]diagram.Edge{
			{ID: "e1", Source: "r1", Target: "x"},
			{ID: "e2", Source: "r2", Target: "x"},
		},
	)

	layers, _ := assignLayers(g)

	want := []string{"r1", "r2"}
	if !reflect.DeepEqual(layers[0], want) {
		t.Errorf("layer 0 = %v, want %v", layers[0], want)
	}
}

func TestAssignLayers_NoEntryPoint(t *testing.T) {
	// Hand-built adjacency with an unbroken cycle: Kahn has no seed and
	// must signal the caller to fall back instead of crashing.
	g := &graph{
		order:    []string{"a", "b"},
		forward:  map[string][]string{"a": {"b"}, "b": {"a"}},
		reverse:  map[string][]string{"a": {"b"}, "b": {"a"}},
		inDegree: map[string]int{"a": 1, "b": 1},
	}

	layers, layerOf := assignLayers(g)

	if layers != nil || layerOf != nil {
		t.Errorf("assignLayers = %v, %v, want nil, nil", layers, layerOf)
	}
}
