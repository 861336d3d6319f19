package layout

import "github.com/flowdeck/flowdeck/pkg/diagram"

// assignHandles derives the attachment side for every original edge from
// the final node geometry.
//
// Rules, in precedence order:
//
//   - Self-loops get the Loop marker and a fixed right→top stub pair; the
//     generic geometry rule never applies to them.
//   - Back-edges get the fixed "return" pair drawn against the flow:
//     bottom→bottom for horizontal orientation, right→right for vertical.
//   - Forward edges whose endpoints differ materially along the cross axis
//     (beyond crossAxisTolerance) attach on the cross-axis sides facing
//     each other; otherwise they use the default along-flow pair
//     (right→left for horizontal flow, bottom→top for vertical).
//
// Edges referencing unknown node IDs are skipped by the geometry rule and
// keep the default along-flow pair. Input edges are never mutated; a fresh
// slice is returned.
func assignHandles(edges []diagram.Edge, pts map[string]point, back map[[2]string]struct{}, o diagram.Orientation) []diagram.Edge {
	out := make([]diagram.Edge, len(edges))
	for i, e := range edges {
		out[i] = handleFor(e, pts, back, o)
	}
	return out
}

func handleFor(e diagram.Edge, pts map[string]point, back map[[2]string]struct{}, o diagram.Orientation) diagram.Edge {
	e.Loop = false
	e.SourceHandle, e.TargetHandle = defaultHandles(o)

	if e.IsSelfLoop() {
		e.Loop = true
		e.SourceHandle, e.TargetHandle = diagram.HandleRight, diagram.HandleTop
		return e
	}
	if _, isBack := back[[2]string{e.Source, e.Target}]; isBack {
		if o == diagram.Vertical {
			e.SourceHandle, e.TargetHandle = diagram.HandleRight, diagram.HandleRight
		} else {
			e.SourceHandle, e.TargetHandle = diagram.HandleBottom, diagram.HandleBottom
		}
		return e
	}

	src, okS := pts[e.Source]
	dst, okT := pts[e.Target]
	if !okS || !okT {
		return e
	}

	if o == diagram.Vertical {
		switch dx := dst.x - src.x; {
		case dx > crossAxisTolerance:
			e.SourceHandle, e.TargetHandle = diagram.HandleRight, diagram.HandleLeft
		case dx < -crossAxisTolerance:
			e.SourceHandle, e.TargetHandle = diagram.HandleLeft, diagram.HandleRight
		}
		return e
	}

	switch dy := dst.y - src.y; {
	case dy > crossAxisTolerance:
		e.SourceHandle, e.TargetHandle = diagram.HandleBottom, diagram.HandleTop
	case dy < -crossAxisTolerance:
		e.SourceHandle, e.TargetHandle = diagram.HandleTop, diagram.HandleBottom
	}
	return e
}

// defaultHandles is the along-flow attachment pair for the orientation.
func defaultHandles(o diagram.Orientation) (src, dst diagram.Handle) {
	if o == diagram.Vertical {
		return diagram.HandleBottom, diagram.HandleTop
	}
	return diagram.HandleRight, diagram.HandleLeft
}
