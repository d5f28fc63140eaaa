package heuristics

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// BarycenterSub is Barycenter restricted to a sub-instance, querying
// neighborhoods through o instead of assuming the full free partition.
// Weights carried by sub are ignored for ranking purposes — the heuristic
// orders by neighborhood position only, as §4.3 describes.
func BarycenterSub(sub bigraph.SubInstance, o *oracle.Oracle) []int {
	ids := sub.IDs()
	sum := make(map[int]int64, len(ids))
	count := make(map[int]int64, len(ids))
	for _, id := range ids {
		nbrs, _ := o.Neighborhood(id)
		count[id] = int64(len(nbrs))
		for _, a := range nbrs {
			sum[id] += int64(a)
		}
	}

	order := append([]int(nil), ids...)
	sort.SliceStable(order, func(i, j int) bool {
		bi, bj := order[i], order[j]

		return sum[bi]*count[bj] < sum[bj]*count[bi]
	})

	return order
}

// MedianSub is Median restricted to a sub-instance.
func MedianSub(sub bigraph.SubInstance, o *oracle.Oracle) []int {
	ids := sub.IDs()
	buckets := make(map[int][]int, len(ids))
	var cols []int
	for _, id := range ids {
		nbrs, _ := o.Neighborhood(id)
		m := medianOf(nbrs)
		if _, ok := buckets[m]; !ok {
			cols = append(cols, m)
		}
		buckets[m] = append(buckets[m], id)
	}
	sort.Ints(cols)

	order := make([]int, 0, len(ids))
	for _, c := range cols {
		order = append(order, buckets[c]...)
	}

	return order
}
