package heuristics

import "github.com/katalvlaran/banana/bigraph"

// Median orders B by bucketing each vertex under the median of its
// A-neighbor list, then concatenating buckets in ascending A order. Since
// bigraph.Graph's adjacency lists are already sorted, the median is just
// the middle element — no quickselect needed. Isolated vertices (no
// neighbors) bucket under A-column 0.
func Median(g *bigraph.Graph) []int {
	nA, nB := g.NumA(), g.NumB()
	buckets := make([][]int, max(nA, 1))

	for b := 0; b < nB; b++ {
		nbrs, _ := g.NeighborsB(b)
		m := medianOf(nbrs)
		buckets[m] = append(buckets[m], b)
	}

	order := make([]int, 0, nB)
	for a := range buckets {
		order = append(order, buckets[a]...)
	}

	return order
}

func medianOf(sortedNeighbors []int) int {
	if len(sortedNeighbors) == 0 {
		return 0
	}

	return sortedNeighbors[len(sortedNeighbors)/2]
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}
