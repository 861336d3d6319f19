package layout

import (
	"cmp"
	"slices"
)

// noNeighborRank is the sort position for a node with no neighbors in the
// fixed adjacent layer. The value -1 places such nodes before every node
// that does have neighbors; combined with the stable sort this keeps their
// relative order intact, which is the documented (if arbitrary) tie-break.
const noNeighborRank = -1.0

// reduceCrossings permutes node order within each layer using alternating
// median sweeps. Sweep s reorders every layer against its neighbors above
// (even s, downward) or below (odd s, upward), sorting nodes by the median
// position of their adjacent-layer neighbors. The median is preferred over
// the mean for robustness against outlier neighbors.
//
// The sweep count is a fixed budget; the heuristic carries no optimality
// guarantee but is deterministic for a given input and budget.
func reduceCrossings(vg *vgraph, sweeps int) {
	if len(vg.layers) < 2 {
		return
	}
	for s := 0; s < sweeps; s++ {
		if s%2 == 0 {
			for i := 1; i < len(vg.layers); i++ {
				sortByMedian(vg.layers[i], vg.layers[i-1], vg.pred)
			}
		} else {
			for i := len(vg.layers) - 2; i >= 0; i-- {
				sortByMedian(vg.layers[i], vg.layers[i+1], vg.succ)
			}
		}
	}
}

// sortByMedian stable-sorts layer by each node's median neighbor position
// in the fixed adjacent layer.
func sortByMedian(layer, fixed []key, neighbors map[key][]key) {
	pos := make(map[key]int, len(fixed))
	for i, k := range fixed {
		pos[k] = i
	}

	medians := make(map[key]float64, len(layer))
	for _, k := range layer {
		medians[k] = medianPosition(neighbors[k], pos)
	}

	slices.SortStableFunc(layer, func(a, b key) int {
		return cmp.Compare(medians[a], medians[b])
	})
}

// medianPosition returns the median of the neighbor positions found in pos,
// or noNeighborRank when none of the neighbors belong to the fixed layer.
func medianPosition(neighbors []key, pos map[key]int) float64 {
	ranks := make([]int, 0, len(neighbors))
	for _, n := range neighbors {
		if p, ok := pos[n]; ok {
			ranks = append(ranks, p)
		}
	}
	if len(ranks) == 0 {
		return noNeighborRank
	}
	slices.Sort(ranks)
	mid := len(ranks) / 2
	if len(ranks)%2 == 1 {
		return float64(ranks[mid])
	}
	return float64(ranks[mid-1]+ranks[mid]) / 2
}
