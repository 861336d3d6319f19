package layout

// key identifies a node in the working (virtual) graph. Real nodes carry
// their diagram ID; dummy nodes are identified by the structured triple
// (src, dst, layer) of the edge segment they stand in for. A composite key
// avoids the collision risk of concatenated-string identities when node IDs
// contain separator characters.
type key struct {
	id       string // real node ID; empty for dummies
	src, dst string // dummy only: endpoints of the subdivided edge
	layer    int    // dummy only: layer the dummy occupies
}

func realKey(id string) key { return key{id: id} }

func dummyKey(src, dst string, layer int) key {
	return key{src: src, dst: dst, layer: layer}
}

func (k key) isDummy() bool { return k.id == "" }

// vgraph is the layered working graph: ordered layers of real and dummy
// nodes where every edge connects adjacent layers only. Intra-layer order
// is the mutable quantity the crossing reducer permutes; layer membership
// never changes after construction.
type vgraph struct {
	layers [][]key
	sizes  map[key]size
	succ   map[key][]key // edges into the next layer
	pred   map[key][]key // edges from the previous layer
}

// buildVirtual augments the layered graph with dummy chains so that every
// forward edge connects consecutive layers.
//
// An edge (u, v) spanning more than one layer becomes
// u → d₁ → d₂ → … → v with one dummy per intermediate layer, each appended
// to its layer's node list. Edges already spanning exactly one layer pass
// through unchanged. Parallel edges between the same endpoints share one
// dummy chain. Dummies have zero width and a nominal height, so they take
// part in ordering and centering without widening the flow axis.
func buildVirtual(layers [][]string, layerOf map[string]int, g *graph, dims map[string]size) *vgraph {
	vg := &vgraph{
		layers: make([][]key, len(layers)),
		sizes:  make(map[key]size),
		succ:   make(map[key][]key),
		pred:   make(map[key][]key),
	}

	for i, layer := range layers {
		vg.layers[i] = make([]key, len(layer))
		for j, id := range layer {
			k := realKey(id)
			vg.layers[i][j] = k
			vg.sizes[k] = dims[id]
		}
	}

	subdivided := make(map[[2]string]struct{})
	for _, u := range g.order {
		for _, v := range g.forward[u] {
			span := layerOf[v] - layerOf[u]
			if span < 1 {
				continue
			}
			if span == 1 {
				vg.link(realKey(u), realKey(v))
				continue
			}
			if _, done := subdivided[[2]string{u, v}]; done {
				continue
			}
			subdivided[[2]string{u, v}] = struct{}{}

			prev := realKey(u)
			for layer := layerOf[u] + 1; layer < layerOf[v]; layer++ {
				d := dummyKey(u, v, layer)
				vg.layers[layer] = append(vg.layers[layer], d)
				vg.sizes[d] = size{w: 0, h: dummyHeight}
				vg.link(prev, d)
				prev = d
			}
			vg.link(prev, realKey(v))
		}
	}
	return vg
}

func (vg *vgraph) link(from, to key) {
	vg.succ[from] = append(vg.succ[from], to)
	vg.pred[to] = append(vg.pred[to], from)
}
