package layout

import (
	"github.com/flowdeck/flowdeck/pkg/diagram"
)

// Default geometry constants, in diagram units (pixels).
const (
	// DefaultNodeGap is the gap between adjacent nodes within a layer,
	// measured along the stacking axis.
	DefaultNodeGap = 120.0

	// DefaultLayerGap is the gap between consecutive layers, measured from
	// the far edge of one layer to the origin of the next.
	DefaultLayerGap = 200.0

	// DefaultSweeps is the number of crossing-reduction sweeps (alternating
	// downward and upward). Four sweeps are empirically sufficient for
	// diagrams of flowchart scale; the value is configurable but must stay
	// fixed for a given call to preserve determinism.
	DefaultSweeps = 4

	// DefaultNodeWidth and DefaultNodeHeight are used for nodes whose
	// dimensions are unset (zero). Generators commonly emit dimensionless
	// nodes; the output keeps the caller's dimension fields untouched.
	DefaultNodeWidth  = 160.0
	DefaultNodeHeight = 48.0

	// dummyHeight is the nominal stacking extent of a dummy node. Dummies
	// have zero width so they never widen a layer along the flow axis.
	dummyHeight = 20.0

	// crossAxisTolerance is the center offset beyond which a forward edge
	// switches from the along-flow handle pair to cross-axis handles.
	crossAxisTolerance = 10.0
)

// Options configures a layout run. The zero value selects horizontal flow
// with default gaps and sweep count.
type Options struct {
	// Orientation selects the flow axis. Defaults to [diagram.Horizontal].
	Orientation diagram.Orientation

	// NodeGap is the gap between nodes within a layer. Defaults to
	// DefaultNodeGap when zero or negative.
	NodeGap float64

	// LayerGap is the gap between consecutive layers. Defaults to
	// DefaultLayerGap when zero or negative.
	LayerGap float64

	// Sweeps is the crossing-reduction sweep budget. Defaults to
	// DefaultSweeps when zero or negative.
	Sweeps int
}

func (o *Options) setDefaults() {
	if !o.Orientation.Valid() {
		o.Orientation = diagram.Horizontal
	}
	if o.NodeGap <= 0 {
		o.NodeGap = DefaultNodeGap
	}
	if o.LayerGap <= 0 {
		o.LayerGap = DefaultLayerGap
	}
	if o.Sweeps <= 0 {
		o.Sweeps = DefaultSweeps
	}
}

// Result holds the output of one layout run.
type Result struct {
	// Nodes contains every input node with a freshly computed position.
	// Order matches the input.
	Nodes []diagram.Node

	// Edges contains every input edge with recomputed handles. Order
	// matches the input.
	Edges []diagram.Edge

	// Layers lists real node IDs per layer in final left-to-right (or
	// top-to-bottom) order. Dummy nodes are excluded. Empty when the
	// trivial-stack fallback was taken.
	Layers [][]string

	// Crossings is the edge crossing count of the final ordering, measured
	// on the virtual (adjacent-layer) graph. Diagnostic only.
	Crossings int
}

// Run computes a complete layout for the given nodes and edges.
// See the package documentation for the pipeline stages and contract.
func Run(nodes []diagram.Node, edges []diagram.Edge, opts Options) Result {
	opts.setDefaults()

	if len(nodes) == 0 {
		return Result{Nodes: []diagram.Node{}, Edges: cloneEdges(edges)}
	}

	g := buildGraph(nodes, edges)
	layers, layerOf := assignLayers(g)
	if layers == nil {
		// Every node is on a cycle with no entry point; Kahn produced no
		// waves. Degrade to a plain stack instead of failing.
		return fallbackStack(nodes, edges, opts)
	}

	vg := buildVirtual(layers, layerOf, g, nodeSizes(nodes))
	reduceCrossings(vg, opts.Sweeps)
	pos := assignCoords(vg, opts)

	out := Result{
		Nodes:     make([]diagram.Node, len(nodes)),
		Layers:    realLayers(vg),
		Crossings: countCrossings(vg),
	}
	for i, n := range nodes {
		placed := n
		if p, ok := pos[realKey(n.ID)]; ok {
			placed.X, placed.Y = p.x, p.y
		}
		out.Nodes[i] = placed
	}
	out.Edges = assignHandles(edges, centers(out.Nodes), g.back, opts.Orientation)
	return out
}

// fallbackStack places all nodes in a single vertical column. It is the
// degraded output for graphs Kahn layering cannot seed (no entry point).
func fallbackStack(nodes []diagram.Node, edges []diagram.Edge, opts Options) Result {
	out := Result{Nodes: make([]diagram.Node, len(nodes))}
	y := 0.0
	for i, n := range nodes {
		placed := n
		placed.X, placed.Y = 0, y
		y += effectiveHeight(n) + opts.NodeGap
		out.Nodes[i] = placed
	}
	out.Edges = assignHandles(edges, centers(out.Nodes), nil, opts.Orientation)
	return out
}

// size is a node's effective extent used during layout. Nodes without
// dimensions fall back to the package defaults; the caller's dimension
// fields are never modified.
type size struct {
	w, h float64
}

func nodeSizes(nodes []diagram.Node) map[string]size {
	m := make(map[string]size, len(nodes))
	for _, n := range nodes {
		m[n.ID] = size{w: effectiveWidth(n), h: effectiveHeight(n)}
	}
	return m
}

func effectiveWidth(n diagram.Node) float64 {
	if n.Width > 0 {
		return n.Width
	}
	return DefaultNodeWidth
}

func effectiveHeight(n diagram.Node) float64 {
	if n.Height > 0 {
		return n.Height
	}
	return DefaultNodeHeight
}

// point is a node center used for handle derivation.
type point struct {
	x, y float64
}

func centers(nodes []diagram.Node) map[string]point {
	m := make(map[string]point, len(nodes))
	for _, n := range nodes {
		m[n.ID] = point{
			x: n.X + effectiveWidth(n)/2,
			y: n.Y + effectiveHeight(n)/2,
		}
	}
	return m
}

func cloneEdges(edges []diagram.Edge) []diagram.Edge {
	out := make([]diagram.Edge, len(edges))
	copy(out, edges)
	return out
}

// realLayers strips dummy nodes from the working layers, keeping final order.
func realLayers(vg *vgraph) [][]string {
	out := make([][]string, len(vg.layers))
	for i, layer := range vg.layers {
		ids := make([]string, 0, len(layer))
		for _, k := range layer {
			if !k.isDummy() {
				ids = append(ids, k.id)
			}
		}
		out[i] = ids
	}
	return out
}
