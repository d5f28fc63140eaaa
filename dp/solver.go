package dp

import (
	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// Solver is the bitset DP alternate optimizer: an exact, Held-Karp-style
// subset DP that tries every relative order of the sub-instance's vertices
// without enumerating permutations directly. It implements
// reducer.ExactSolver.
//
// dp[mask] holds the minimum crossing cost of placing exactly the vertices
// in mask as a prefix, in whatever internal order minimizes that cost;
// dp[fullMask] is the answer. This is the same subset-DP principle the
// path-like bag decomposition exploits (decide each vertex's position once,
// against everyone already decided) but run directly over the whole
// sub-instance rather than windowed per bag — Budget still gates on the
// bag-width estimate, since that is what determines whether 2^|bag| work
// per step stays practical, even though this implementation does not
// restrict the table to a sliding window.
type Solver struct {
	Oracle *oracle.Oracle
	Budget Budget
}

// New returns a Solver bound to o with DefaultBudget.
func New(o *oracle.Oracle) *Solver {
	return &Solver{Oracle: o, Budget: DefaultBudget()}
}

// Solve implements reducer.ExactSolver.
func (s *Solver) Solve(sub bigraph.SubInstance) ([]int, int, error) {
	n := len(sub)
	if n == 0 {
		return nil, 0, nil
	}
	if !Feasible(sub, s.Oracle, s.Budget) {
		return nil, 0, ErrBudgetExceeded
	}

	pairCost := make([][]int, n)
	for i := range pairCost {
		pairCost[i] = make([]int, n)
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			c, err := directionalCost(s.Oracle, sub[i], sub[j])
			if err != nil {
				return nil, 0, err
			}
			pairCost[i][j] = c
		}
	}

	full := 1 << uint(n)
	dp := make([]int, full)
	choice := make([]int, full)
	for mask := 1; mask < full; mask++ {
		best := -1
		bestV := -1
		for v := 0; v < n; v++ {
			bit := 1 << uint(v)
			if mask&bit == 0 {
				continue
			}
			prev := mask &^ bit
			cost := dp[prev]
			for u := 0; u < n; u++ {
				ubit := 1 << uint(u)
				if prev&ubit == 0 {
					continue
				}
				cost += pairCost[u][v]
			}
			if best == -1 || cost < best {
				best = cost
				bestV = v
			}
		}
		dp[mask] = best
		choice[mask] = bestV
	}

	order := make([]int, 0, n)
	mask := full - 1
	for mask != 0 {
		v := choice[mask]
		order = append(order, sub[v].ID)
		mask &^= 1 << uint(v)
	}
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, dp[full-1], nil
}
