package reducer

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// TwinGroup records a set of vertices that share an identical A-neighborhood
// and were folded into a single representative carrying their summed
// weight. Members preserves their original relative order so Expand can
// restore it.
type TwinGroup struct {
	Representative bigraph.WeightedVertex
	Members        bigraph.SubInstance
}

// Twins groups vertices of sub by identical neighborhood, replacing each
// group with one representative whose weight is the group's summed weight.
// merged preserves the lexicographic-by-neighborhood order of the sort;
// groups lists only the folded (size > 1) groups, needed to Expand a
// solved order back to the original vertex set.
func Twins(sub bigraph.SubInstance, o *oracle.Oracle) (merged bigraph.SubInstance, groups []TwinGroup) {
	sorted := sub.Clone()
	sort.SliceStable(sorted, func(i, j int) bool {
		ni, _ := o.Neighborhood(sorted[i].ID)
		nj, _ := o.Neighborhood(sorted[j].ID)

		return lessInts(ni, nj)
	})

	n := len(sorted)
	for i := 0; i < n; {
		nbrsI, _ := o.Neighborhood(sorted[i].ID)
		weight := sorted[i].W
		members := bigraph.SubInstance{sorted[i]}
		j := i + 1
		for j < n {
			nbrsJ, _ := o.Neighborhood(sorted[j].ID)
			if !equalInts(nbrsI, nbrsJ) {
				break
			}
			weight = weight.Add(sorted[j].W)
			members = append(members, sorted[j])
			j++
		}
		rep := bigraph.WeightedVertex{ID: sorted[i].ID, W: weight}
		merged = append(merged, rep)
		if len(members) > 1 {
			groups = append(groups, TwinGroup{Representative: rep, Members: members})
		}
		i = j
	}

	return merged, groups
}

// Expand replaces every twin representative appearing in order with its
// original members, in their original relative order, restoring the full
// vertex set a merged sub-instance's solution was computed over.
func Expand(order []int, groups []TwinGroup) []int {
	byRep := make(map[int]bigraph.SubInstance, len(groups))
	for _, g := range groups {
		byRep[g.Representative.ID] = g.Members
	}

	out := make([]int, 0, len(order))
	for _, id := range order {
		if members, ok := byRep[id]; ok {
			for _, m := range members {
				out = append(out, m.ID)
			}

			continue
		}
		out = append(out, id)
	}

	return out
}

func equalInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

func lessInts(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
