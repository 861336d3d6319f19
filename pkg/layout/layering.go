package layout

// assignLayers partitions the acyclic graph into topological waves.
//
// Wave zero holds every node with no incoming edges; each subsequent wave
// holds the nodes whose in-degree reaches zero once the previous wave's
// outgoing edges are removed. This is Kahn's algorithm grouped by wave,
// which is equivalent to longest-path layering: a node lands as deep as its
// deepest predecessor forces it.
//
// The returned layerOf map gives each node's layer index. Both return
// values are nil when no node has in-degree zero (every node participates
// in a cycle with no entry point); the caller must fall back to a trivial
// placement in that case rather than crash.
func assignLayers(g *graph) (layers [][]string, layerOf map[string]int) {
	remaining := make(map[string]int, len(g.order))
	for id, d := range g.inDegree {
		remaining[id] = d
	}

	var current []string
	for _, id := range g.order {
		if remaining[id] == 0 {
			current = append(current, id)
		}
	}
	if len(current) == 0 {
		return nil, nil
	}

	layerOf = make(map[string]int, len(g.order))
	for len(current) > 0 {
		layers = append(layers, current)
		idx := len(layers) - 1

		var next []string
		for _, id := range current {
			layerOf[id] = idx
			for _, child := range g.forward[id] {
				remaining[child]--
				if remaining[child] == 0 {
					next = append(next, child)
				}
			}
		}
		current = next
	}
	return layers, layerOf
}
