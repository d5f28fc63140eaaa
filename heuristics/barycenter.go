package heuristics

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
)

// Barycenter orders B by mean A-neighbor position, ascending. Ties and the
// comparison itself are resolved by cross-multiplication
// (sum1*count2 vs sum2*count1) rather than floating-point division, so two
// isolated vertices (sum=count=0) compare equal and keep their relative
// input order (sort.SliceStable).
func Barycenter(g *bigraph.Graph) []int {
	nB := g.NumB()
	order := make([]int, nB)
	sum := make([]int64, nB)
	count := make([]int64, nB)
	for b := 0; b < nB; b++ {
		order[b] = b
		nbrs, _ := g.NeighborsB(b)
		count[b] = int64(len(nbrs))
		for _, a := range nbrs {
			sum[b] += int64(a)
		}
	}

	sort.SliceStable(order, func(i, j int) bool {
		bi, bj := order[i], order[j]

		return sum[bi]*count[bj] < sum[bj]*count[bi]
	})

	return order
}
