package ilp

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// PrefixMode selects which of §4.5's optional prefix/suffix rank cuts
// BuildProblem computes. X and Y name the two independent bound directions
// the source computes (upper bound from ascending deltas, lower bound from
// descending deltas); Both emits both.
type PrefixMode int

const (
	// NoPrefixConstraints disables rank-bound pruning entirely (default).
	NoPrefixConstraints PrefixMode = iota
	// PrefixX computes only the upper rank bound (max_prefix).
	PrefixX
	// PrefixY computes only the lower rank bound (min_suffix).
	PrefixY
	// PrefixBoth computes both bounds.
	PrefixBoth
)

// RankBound is vertex p's admissible 0-based rank interval within its
// sub-instance: any optimal order places p at an index in [Lo, Hi].
type RankBound struct{ Lo, Hi int }

// RankBounds computes, per §4.5, for every vertex p in sub the interval its
// rank must fall in. delta_j = c(p,j) - c(p,j's reverse) over every other
// orientable neighbor j; sorting ascending and finding the shortest prefix
// whose running sum turns positive bounds p's rank from above (moving p any
// later than that prefix accrues strictly positive net cost versus placing
// it among the cheaper set first); sorting descending and doing the
// symmetric scan bounds it from below. Vertices with no orientable
// neighbors in sub get the trivial [0, n-1] bound.
func RankBounds(sub bigraph.SubInstance, o *oracle.Oracle, mode PrefixMode) map[int]RankBound {
	bounds := make(map[int]RankBound, len(sub))
	if mode == NoPrefixConstraints {
		return bounds
	}

	n := len(sub)
	for _, p := range sub {
		var deltas []int
		for _, j := range sub {
			if j.ID == p.ID {
				continue
			}
			cpj, errA := o.Crossings(p, j)
			cjp, errB := o.Crossings(j, p)
			if errA != nil || errB != nil {
				continue // non-orientable: contributes no delta
			}
			deltas = append(deltas, cpj-cjp)
		}

		hi := n - 1
		if mode == PrefixX || mode == PrefixBoth {
			hi = runningSumBound(deltas, false, n-1)
		}
		lo := 0
		if mode == PrefixY || mode == PrefixBoth {
			lo = n - 1 - runningSumBound(deltas, true, n-1)
		}
		bounds[p.ID] = RankBound{Lo: lo, Hi: hi}
	}

	return bounds
}

// runningSumBound sorts deltas (descending when desc is true) and returns
// the index of the first prefix whose running sum turns strictly positive,
// or fallback if the full sum never does.
func runningSumBound(deltas []int, desc bool, fallback int) int {
	sorted := append([]int(nil), deltas...)
	if desc {
		sort.Sort(sort.Reverse(sort.IntSlice(sorted)))
	} else {
		sort.Ints(sorted)
	}

	sum := 0
	for k, d := range sorted {
		sum += d
		if sum > 0 {
			return k
		}
	}

	return fallback
}

// ApplyRankBounds folds every pair (u, v) in p.Vars whose rank intervals
// are disjoint (bounds[u].Hi < bounds[v].Lo, so u must precede v in any
// optimal order) directly into p, the same way BuildProblem already folds
// PRE/POS non-orientable pairs: the variable is removed and its forced
// contribution moves into Constant. This is the §4.5 prefix/suffix cut,
// expressed as problem-size reduction rather than as a separate LP
// inequality, since Backend has no LP relaxation to attach one to.
func ApplyRankBounds(p *Problem, bounds map[int]RankBound) {
	if len(bounds) == 0 {
		return
	}

	if p.Fixed == nil {
		p.Fixed = make(map[Pair]bool)
	}

	fixed := make(map[Pair]struct{})
	keep := p.Vars[:0:0]
	for _, pr := range p.Vars {
		bu, okU := bounds[pr.U]
		bv, okV := bounds[pr.V]
		switch {
		case okU && okV && bu.Hi < bv.Lo:
			// u forced before v: x(u,v) = true.
			p.Constant += p.Coeff[pr]
			delete(p.Coeff, pr)
			fixed[pr] = struct{}{}
			p.Fixed[pr] = true
		case okU && okV && bv.Hi < bu.Lo:
			// v forced before u: x(u,v) = false, contributes nothing.
			delete(p.Coeff, pr)
			fixed[pr] = struct{}{}
			p.Fixed[pr] = false
		default:
			keep = append(keep, pr)
		}
	}
	p.Vars = keep

	if len(fixed) == 0 {
		return
	}
	triangles := p.Triangles[:0:0]
	for _, t := range p.Triangles {
		_, a := fixed[t.UV]
		_, b := fixed[t.VW]
		_, c := fixed[t.UW]
		if a || b || c {
			continue
		}
		triangles = append(triangles, t)
	}
	p.Triangles = triangles

	forbidden := p.Forbidden[:0:0]
	for _, f := range p.Forbidden {
		_, a := fixed[f.A]
		_, b := fixed[f.B]
		if a || b {
			continue
		}
		forbidden = append(forbidden, f)
	}
	p.Forbidden = forbidden
}
