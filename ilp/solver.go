package ilp

import (
	"errors"
	"sort"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// ErrCycleDetected is returned by Solver.Solve if the decided orientable
// relations cannot be extended to a total order. This would indicate a
// transitivity bug in the Backend or in BuildProblem's triangle
// generation, since the underlying interval structure always admits one.
var ErrCycleDetected = errors.New("ilp: decided relations contain a cycle")

// Solver adapts a Backend into a reducer.ExactSolver.
type Solver struct {
	Oracle  *oracle.Oracle
	Backend Backend
	Variant Variant
	// Prefix selects the §4.5 optional prefix/suffix rank cuts. Zero value
	// (NoPrefixConstraints) matches the CLI's "--ipprefixconstraints=none"
	// default.
	Prefix PrefixMode
}

// NewSolver builds a Solver. A nil Backend defaults to BranchAndBound{}.
func NewSolver(o *oracle.Oracle, backend Backend, variant Variant) *Solver {
	if backend == nil {
		backend = BranchAndBound{}
	}

	return &Solver{Oracle: o, Backend: backend, Variant: variant}
}

// Solve implements reducer.ExactSolver.
func (s *Solver) Solve(sub bigraph.SubInstance) ([]int, int, error) {
	if len(sub) <= 1 {
		ids := sub.IDs()
		if len(ids) == 0 {
			return nil, 0, nil
		}

		return ids, 0, nil
	}

	p, err := BuildProblem(sub, s.Oracle, s.Variant)
	if err != nil {
		return nil, 0, err
	}
	if s.Prefix != NoPrefixConstraints {
		// Applied after the heuristic cut is already sealed into
		// p.HeuristicCost/HeuristicAssign, so shrinking Vars/Triangles here
		// cannot invalidate that incumbent: fixing a variable the rank
		// bounds prove forced never excludes the true optimum, so its
		// value is unchanged and the heuristic bound remains valid.
		ApplyRankBounds(p, RankBounds(sub, s.Oracle, s.Prefix))
	}

	assign, _, err := s.Backend.Solve(p)
	if err != nil {
		return nil, 0, err
	}
	// Every pair BuildProblem/ApplyRankBounds folded away never reaches the
	// Backend, so its forced value has to be merged back in here — otherwise
	// assembleOrder would re-resolve it from its own crossing counts, which
	// need not agree with the reason it was fixed (a transitivity chain or a
	// rank bound, not this pair's local cost).
	for pr, val := range p.Fixed {
		assign[pr] = val
	}

	order, err := assembleOrder(sub, s.Oracle, assign)
	if err != nil {
		return nil, 0, err
	}

	crossings, err := s.Oracle.NumberOfCrossings(order)
	if err != nil {
		return nil, 0, err
	}

	return order, crossings, nil
}

// assembleOrder recovers sub's total order from every pairwise relation
// among its vertices, exactly as §4.5 describes: successor_count(i), summed
// over *every* other vertex j (not only the orientable ones Vars covers),
// ranks i. For an orientable pair, the relation is whatever the Backend
// decided; for a non-orientable pair, it is substituted directly from its
// actual crossing counts (PRE/POS), with the FREE case — equal counts,
// meaning an identical single-point interval — broken toward the lower
// vertex id. Vertices are then sorted by descending successor count, so the
// one preceding the most others leads.
func assembleOrder(sub bigraph.SubInstance, o *oracle.Oracle, assign map[Pair]bool) ([]int, error) {
	n := len(sub)
	weightOf := make(map[int]bigraph.WeightedVertex, n)
	for _, v := range sub {
		weightOf[v.ID] = v
	}

	succ := make(map[int]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			pr := pairOf(sub[i].ID, sub[j].ID)
			uBeforeV, err := decideOrder(pr, weightOf, o, assign)
			if err != nil {
				return nil, err
			}
			if uBeforeV {
				succ[pr.U]++
			} else {
				succ[pr.V]++
			}
		}
	}

	ids := sub.IDs()
	sort.Slice(ids, func(a, b int) bool {
		if succ[ids[a]] != succ[ids[b]] {
			return succ[ids[a]] > succ[ids[b]]
		}

		return ids[a] < ids[b]
	})

	rank := make(map[int]int, n)
	for i, id := range ids {
		rank[id] = i
	}
	for pr, val := range assign {
		uFirst := rank[pr.U] < rank[pr.V]
		if uFirst != val {
			return nil, ErrCycleDetected
		}
	}

	return ids, nil
}

// decideOrder reports whether pr.U precedes pr.V (pr is always canonical,
// U < V). Orientable pairs take the Backend's decision from assign;
// everything else is substituted per §4.5 directly from the actual
// crossing counts crossing.Matrix never indexed.
func decideOrder(pr Pair, weightOf map[int]bigraph.WeightedVertex, o *oracle.Oracle, assign map[Pair]bool) (bool, error) {
	if val, ok := assign[pr]; ok {
		return val, nil
	}

	before, after, err := o.ForcedCrossings(weightOf[pr.U], weightOf[pr.V])
	if err != nil {
		return false, err
	}
	switch {
	case before < after:
		return true, nil // PRE: U forced ahead of V.
	case after < before:
		return false, nil // POS: U forced behind V.
	default:
		return true, nil // FREE: identical single-point interval, U<V wins.
	}
}
