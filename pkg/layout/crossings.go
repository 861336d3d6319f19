package layout

import "slices"

// countCrossings sums the edge crossings between every pair of consecutive
// layers of the working graph. The count is diagnostic: the pipeline logs
// it and tests use it to check that the median sweeps actually help.
func countCrossings(vg *vgraph) int {
	total := 0
	for i := 0; i+1 < len(vg.layers); i++ {
		total += countLayerCrossings(vg, vg.layers[i], vg.layers[i+1])
	}
	return total
}

// countLayerCrossings counts crossings between two adjacent layers with a
// Fenwick tree (binary indexed tree) in O(E log V), where E is the edges
// between the layers and V the size of the lower layer.
//
// Two edges (u1,v1) and (u2,v2) cross iff pos(u1) < pos(u2) and
// pos(v1) > pos(v2), so the crossing count equals the number of inversions
// in the sequence of target positions when edges are sorted by source
// position.
func countLayerCrossings(vg *vgraph, upper, lower []key) int {
	if len(upper) == 0 || len(lower) == 0 {
		return 0
	}

	lowerPos := make(map[key]int, len(lower))
	for i, k := range lower {
		lowerPos[k] = i
	}

	type seg struct{ upper, lower int }
	edges := make([]seg, 0, len(upper)*2)
	for i, k := range upper {
		for _, child := range vg.succ[k] {
			if p, ok := lowerPos[child]; ok {
				edges = append(edges, seg{i, p})
			}
		}
	}
	if len(edges) < 2 {
		return 0
	}

	slices.SortFunc(edges, func(a, b seg) int {
		if a.upper != b.upper {
			return a.upper - b.upper
		}
		return a.lower - b.lower
	})

	fenwick := make([]int, len(lower)+1)
	crossings, total := 0, 0
	for _, e := range edges {
		// Count edges seen so far with target <= e.lower; the remainder
		// (targets > e.lower) each cross this edge.
		lessOrEqual := 0
		for q := e.lower + 1; q > 0; q -= q & (-q) {
			lessOrEqual += fenwick[q]
		}
		crossings += total - lessOrEqual

		total++
		for idx := e.lower + 1; idx < len(fenwick); idx += idx & (-idx) {
			fenwick[idx]++
		}
	}
	return crossings
}
