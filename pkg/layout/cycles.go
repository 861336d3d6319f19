package layout

import "github.com/flowdeck/flowdeck/pkg/diagram"

// graph is the immutable adjacency view the layering stages work on.
// It is built once per layout run: edges referencing unknown nodes are
// dropped, self-loops are set aside, and back-edges detected by DFS are
// filtered out of the forward view rather than removed by mutation.
type graph struct {
	order    []string            // node IDs in input order; drives all traversals
	forward  map[string][]string // acyclic forward adjacency
	reverse  map[string][]string // reverse of forward
	inDegree map[string]int      // in-degrees of the acyclic view
	back     map[[2]string]struct{}
}

// buildGraph constructs the acyclic adjacency view for a node and edge list.
//
// Traversal starts from every unvisited node in input order, so repeated
// calls on identical input mark the identical back-edge set. A traversed
// edge whose target is still on the DFS stack closes a cycle and is marked
// as a back-edge. Self-loops never enter the adjacency at all; they are
// rendered as loop stubs, not laid out via ranks.
func buildGraph(nodes []diagram.Node, edges []diagram.Edge) *graph {
	g := &graph{
		order:    make([]string, 0, len(nodes)),
		forward:  make(map[string][]string, len(nodes)),
		reverse:  make(map[string][]string, len(nodes)),
		inDegree: make(map[string]int, len(nodes)),
		back:     make(map[[2]string]struct{}),
	}

	known := make(map[string]struct{}, len(nodes))
	for _, n := range nodes {
		if _, dup := known[n.ID]; dup {
			continue
		}
		known[n.ID] = struct{}{}
		g.order = append(g.order, n.ID)
		g.inDegree[n.ID] = 0
	}

	raw := make(map[string][]string, len(nodes))
	for _, e := range edges {
		if e.Source == e.Target {
			continue
		}
		if _, ok := known[e.Source]; !ok {
			continue
		}
		if _, ok := known[e.Target]; !ok {
			continue
		}
		raw[e.Source] = append(raw[e.Source], e.Target)
	}

	g.markBackEdges(raw)

	for _, u := range g.order {
		for _, v := range raw[u] {
			if _, isBack := g.back[[2]string{u, v}]; isBack {
				continue
			}
			g.forward[u] = append(g.forward[u], v)
			g.reverse[v] = append(g.reverse[v], u)
			g.inDegree[v]++
		}
	}
	return g
}

// markBackEdges runs white/gray/black DFS over the raw adjacency and
// records every edge that points at a gray (on-stack) node.
func (g *graph) markBackEdges(raw map[string][]string) {
	const (
		white = iota
		gray
		black
	)

	color := make(map[string]int, len(g.order))

	var dfs func(node string)
	dfs = func(node string) {
		color[node] = gray
		for _, child := range raw[node] {
			switch color[child] {
			case white:
				dfs(child)
			case gray:
				g.back[[2]string{node, child}] = struct{}{}
			}
		}
		color[node] = black
	}

	for _, id := range g.order {
		if color[id] == white {
			dfs(id)
		}
	}
}

// isBackEdge reports whether (from, to) was marked during cycle breaking.
func (g *graph) isBackEdge(from, to string) bool {
	_, ok := g.back[[2]string{from, to}]
	return ok
}
