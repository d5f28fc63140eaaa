package sattww

import "sort"

// Step records one contraction: Absorbed is merged into Survivor — the
// same (Survivor, Absorbed) shape trigraph.Trigraph.Contract expects.
type Step struct {
	Survivor, Absorbed int
}

func litTrue(l Lit, assign map[int]bool) bool {
	v := assign[l.Var()]
	if l < 0 {
		return !v
	}

	return v
}

// Decode reads a satisfying assign back into a contraction sequence, per
// the reference decoder: build the tournament i->j iff o(i,j) holds, its
// topological order is the elimination order, and each i's unique true
// p(i,j) names its parent. Steps come back ordered by elimination time.
func Decode(e *Encoding, assign map[int]bool) []Step {
	n := e.N
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return litTrue(e.oLit(order[a], order[b]), assign)
	})

	steps := make([]Step, 0, n-1)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if assign[e.p[[2]int{i, j}].Var()] {
				steps = append(steps, Step{Survivor: j, Absorbed: i})
			}
		}
	}

	sort.Slice(steps, func(a, b int) bool {
		return indexOf(order, steps[a].Absorbed) < indexOf(order, steps[b].Absorbed)
	})

	return steps
}

func indexOf(order []int, v int) int {
	for i, o := range order {
		if o == v {
			return i
		}
	}

	return -1
}
