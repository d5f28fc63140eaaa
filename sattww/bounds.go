package sattww

import "github.com/katalvlaran/banana/trigraph"

// GreedyBounds computes a cheap [lb, ub] window to seed Search's binary
// search, mirroring the reference implementation's greedy_upper_bound /
// greedy_lower_bound and the teacher's own seedUB heuristic-seeding pattern.
//
// ub: repeatedly contract whichever alive pair currently yields the
// smallest resulting width, until one vertex remains; the largest Width()
// seen along the way is a valid (if not tight) upper bound.
//
// lb: 0 is always a sound lower bound; Search still benefits from ub being
// tight, so lb is left trivial rather than invested in — the SAT formula
// itself is the source of truth for whether a given k is achievable.
func GreedyBounds(n int, adj AdjFunc) (lb, ub int) {
	if n <= 1 {
		return 0, 0
	}

	var edges []trigraph.Edge
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adj(i, j) {
				edges = append(edges, trigraph.Edge{U: i, V: j})
			}
		}
	}
	g := trigraph.New(n, edges)

	width := 0
	for {
		alive := g.Alive()
		if len(alive) <= 1 {
			break
		}
		bestU, bestV, bestW := -1, -1, -1
		for i := 0; i < len(alive); i++ {
			for j := i + 1; j < len(alive); j++ {
				trial := g.Clone()
				w, err := trial.Contract(alive[i], alive[j])
				if err != nil {
					continue
				}
				if bestW == -1 || w < bestW {
					bestW, bestU, bestV = w, alive[i], alive[j]
				}
			}
		}
		if bestU == -1 {
			break
		}
		w, err := g.Contract(bestU, bestV)
		if err != nil {
			break
		}
		if w > width {
			width = w
		}
	}

	return 0, width
}
