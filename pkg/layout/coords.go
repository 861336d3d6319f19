package layout

import "github.com/flowdeck/flowdeck/pkg/diagram"

// position is a computed top-left corner for a working-graph node.
type position struct {
	x, y float64
}

// assignCoords converts the ordered layers into concrete coordinates.
//
// The flow axis advances layer by layer: each layer's origin sits past the
// widest node of the previous layer plus the configured layer gap, so boxes
// from different layers can never meet regardless of node widths. Along the
// stacking axis, nodes inside a layer are placed one after another with the
// configured node gap between their boxes, and every layer is centered
// against the extent of the longest layer.
//
// For horizontal orientation the flow axis is X and the stacking axis is Y;
// vertical orientation transposes the two. Dummy nodes receive coordinates
// too (they take part in centering) but carry zero flow-axis extent.
func assignCoords(vg *vgraph, opts Options) map[key]position {
	horizontal := opts.Orientation == diagram.Horizontal

	flowSize := func(s size) float64 {
		if horizontal {
			return s.w
		}
		return s.h
	}
	crossSize := func(s size) float64 {
		if horizontal {
			return s.h
		}
		return s.w
	}

	// Per-layer extents along the stacking axis and the overall maximum,
	// used to center shorter layers.
	extents := make([]float64, len(vg.layers))
	maxExtent := 0.0
	for i, layer := range vg.layers {
		ext := 0.0
		for j, k := range layer {
			if j > 0 {
				ext += opts.NodeGap
			}
			ext += crossSize(vg.sizes[k])
		}
		extents[i] = ext
		if ext > maxExtent {
			maxExtent = ext
		}
	}

	pos := make(map[key]position, len(vg.sizes))
	flow := 0.0
	for i, layer := range vg.layers {
		cross := (maxExtent - extents[i]) / 2
		widest := 0.0
		for _, k := range layer {
			s := vg.sizes[k]
			if horizontal {
				pos[k] = position{x: flow, y: cross}
			} else {
				pos[k] = position{x: cross, y: flow}
			}
			cross += crossSize(s) + opts.NodeGap
			if fs := flowSize(s); fs > widest {
				widest = fs
			}
		}
		flow += widest + opts.LayerGap
	}
	return pos
}
