package ilp

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/crossing"
	"github.com/katalvlaran/banana/heuristics"
	"github.com/katalvlaran/banana/oracle"
)

// Pair is a canonical (U < V) variable index: x(U,V) = 1 means U precedes V.
type Pair = crossing.Pair

// Triangle is a transitivity constraint over three canonical variables:
// 0 <= x(u,v) + x(v,w) - x(u,w) <= 1. The lower bound forbids the reverse
// 3-cycle (u after v after w after u) the same way the upper bound forbids
// the forward one; both are required, since the three legs are independent
// Boolean variables the Backend is otherwise free to assign inconsistently.
type Triangle struct {
	UV, VW, UW Pair
	// NegUW is true when the third term of the constraint is -x(UW) as
	// written above; Simple/Shorter always leave it false (the literal
	// form). Quadratic's 3-cycle-elimination encoding instead emits a pair
	// of inequalities and sets this during generation for bookkeeping.
	NegUW bool
}

// ForbiddenPair disallows one joint assignment to two orientable variables.
// It is what a transitivity triple reduces to once its third leg is a
// non-orientable pair already resolved to a PRE/POS constant (§4.5:
// "triples involving two non-orientable pairs are propagated as
// implications rather than constraints") — A and B remain free, but the
// single combination that would force a 3-cycle against the known constant
// is excluded.
type ForbiddenPair struct {
	A    Pair
	AVal bool
	B    Pair
	BVal bool
}

// Variant selects which transitivity encoding BuildProblem emits. All three
// share the same objective and variable set; only the constraint set
// differs.
type Variant int

const (
	// Simple emits every ordered triangle the textbook formulation would
	// (redundant up to 6x per unordered triple), exactly mirroring the
	// original solver's dense loop structure.
	Simple Variant = iota
	// Shorter emits each unordered triple's constraint once, canonicalized
	// by ascending vertex id, cutting the constraint count without
	// changing the feasible region.
	Shorter
	// Quadratic replaces the textbook inequality with the equivalent
	// 3-cycle-elimination pair (1 <= x(u,v)+x(v,w)+x(w,u) <= 2), a
	// different but equally valid ILP encoding of "no 3-cycles in the
	// tournament".
	Quadratic
)

// Problem is the Boolean IP BuildProblem assembles: minimize
// sum(Coeff[p] * x(p)) + Constant subject to Triangles, x(p) in {0,1}.
type Problem struct {
	Vars      []Pair
	Coeff     map[Pair]int
	Constant  int
	Triangles []Triangle
	Forbidden []ForbiddenPair

	// Fixed records every pair whose value was decided outside the
	// Backend's search — folded out of Vars/Coeff either by a transitivity
	// triple with two non-orientable legs (propagateTransitivity) or by a
	// proven rank bound (ApplyRankBounds) — so Solver.Solve can merge it
	// back into the Backend's assignment before order recovery. A pair
	// absent from both assign and Fixed is genuinely non-orientable and is
	// resolved directly from its crossing counts instead.
	Fixed map[Pair]bool

	// HeuristicOrder is the better of barycenter/median's orderings of the
	// sub-instance, per §4.3: its objective value is a valid upper bound a
	// Backend can seed as an incumbent, tightening the search from the
	// start (the "objective <= best_heuristic" cut) without needing an
	// explicit inequality, since the order itself is always a feasible
	// total order.
	HeuristicOrder []int
	// HeuristicAssign is HeuristicOrder translated into the canonical
	// x(u,v) variables of Vars, and HeuristicCost its objective value.
	HeuristicAssign map[Pair]bool
	HeuristicCost   int
}

// BuildProblem derives a Problem from every orientable pair inside sub. The
// objective is reduced to the canonical-variable form: since x(v,u) is
// always 1 - x(u,v), cost(u,v) = c(v,u) + (c(u,v)-c(v,u))*x(u,v); Constant
// accumulates the fixed c(v,u) term and Coeff holds the multiplier.
func BuildProblem(sub bigraph.SubInstance, o *oracle.Oracle, variant Variant) (*Problem, error) {
	pairs := o.OrientablePairsSub(sub)
	p := &Problem{
		Vars:  pairs,
		Coeff: make(map[Pair]int, len(pairs)),
		Fixed: make(map[Pair]bool),
	}

	weightOf := make(map[int]bigraph.WeightedVertex, len(sub))
	for _, v := range sub {
		weightOf[v.ID] = v
	}

	orientable := make(map[Pair]struct{}, len(pairs))
	for _, pr := range pairs {
		orientable[pr] = struct{}{}
		uv, err := o.Crossings(weightOf[pr.U], weightOf[pr.V])
		if err != nil {
			return nil, err
		}
		vu, err := o.Crossings(weightOf[pr.V], weightOf[pr.U])
		if err != nil {
			return nil, err
		}
		p.Constant += vu
		p.Coeff[pr] = uv - vu
	}

	forbidden, err := propagateTransitivity(p, sub, o, weightOf, orientable)
	if err != nil {
		return nil, err
	}
	p.Forbidden = forbidden

	switch variant {
	case Shorter:
		p.Triangles = canonicalTriangles(p.Vars, orientable)
	case Quadratic:
		p.Triangles = cycleEliminationTriangles(p.Vars, orientable)
	default:
		p.Triangles = allOrderedTriangles(p.Vars, orientable)
	}

	seedHeuristicCut(p, sub, o)

	return p, nil
}

// propagateTransitivity substitutes §4.5's σ convention into every ascending
// triple (i<j<k) of sub's vertices: σ(i,j) is the canonical variable x(i,j)
// when (i,j) is orientable, or the PRE/POS constant o.ForcedCrossings
// resolves it to otherwise (a pair already fixed by an earlier fold — by
// this same propagation or by a proven rank bound — keeps that fixed value
// rather than being re-resolved). Substituting into
// 0 <= σ(i,j)+σ(j,k)-σ(i,k) <= 1 then has three outcomes depending on how
// many of the three legs remain variables: three (left untouched, handled
// by the variant-specific generator below), one (either one of its two
// values is infeasible against the two known constants, forcing it — folded
// directly into p.Fixed/p.Constant — or both remain feasible, no constraint
// needed) or two (exactly one of the four joint assignments is infeasible,
// recorded as a ForbiddenPair). The one-variable fold is run to a fixed
// point, since fixing one pair can in turn force another triple's last
// variable; ForbiddenPair generation then runs once more over the final
// state.
func propagateTransitivity(p *Problem, sub bigraph.SubInstance, o *oracle.Oracle, weightOf map[int]bigraph.WeightedVertex, orientable map[Pair]struct{}) ([]ForbiddenPair, error) {
	ids := sub.IDs()
	sort.Ints(ids)

	constOf := make(map[Pair]bool)
	resolve := func(u, v int) (pair Pair, isVar bool, val bool, err error) {
		pair = Pair{U: u, V: v}
		if fixedVal, ok := p.Fixed[pair]; ok {
			return pair, false, fixedVal, nil
		}
		if _, ok := orientable[pair]; ok {
			return pair, true, false, nil
		}
		if cached, ok := constOf[pair]; ok {
			return pair, false, cached, nil
		}
		before, after, err := o.ForcedCrossings(weightOf[u], weightOf[v])
		if err != nil {
			return pair, false, false, err
		}
		val = before <= after // PRE when strictly cheaper; FREE ties toward u<v, already ascending.
		constOf[pair] = val

		return pair, false, val, nil
	}

	for changed := true; changed; {
		changed = false
		if err := visitTriples(ids, resolve, func(legs [3]tripleLeg) error {
			if fixed, ok := foldForcedLeg(legs); ok {
				foldFixed(p, orientable, fixed.pair, fixed.val)
				changed = true
			}

			return nil
		}); err != nil {
			return nil, err
		}
	}

	var forbidden []ForbiddenPair
	err := visitTriples(ids, resolve, func(legs [3]tripleLeg) error {
		forbidden = append(forbidden, forbiddenPairs(legs)...)

		return nil
	})
	if err != nil {
		return nil, err
	}

	return forbidden, nil
}

// tripleLeg is one of the three legs of an ascending triple (i,j,k):
// (i,j), (j,k) or (i,k), carrying its canonical variable and current
// resolution (variable or fixed constant).
type tripleLeg struct {
	pair  Pair
	isVar bool
	val   bool
}

// tripleSigns are the coefficients of sigma(i,j), sigma(j,k), sigma(i,k) in
// the transitivity inequality 0 <= sigma(i,j)+sigma(j,k)-sigma(i,k) <= 1.
var tripleSigns = [3]int{1, 1, -1}

func transitivityHolds(values [3]int) bool {
	sum := tripleSigns[0]*values[0] + tripleSigns[1]*values[1] + tripleSigns[2]*values[2]

	return sum >= 0 && sum <= 1
}

// visitTriples calls visit once per ascending triple (i<j<k) of ids, with
// legs resolved via resolve.
func visitTriples(ids []int, resolve func(u, v int) (Pair, bool, bool, error), visit func([3]tripleLeg) error) error {
	for a := 0; a < len(ids); a++ {
		for b := a + 1; b < len(ids); b++ {
			for c := b + 1; c < len(ids); c++ {
				i, j, k := ids[a], ids[b], ids[c]
				var legs [3]tripleLeg
				for li, uv := range [2][2]int{{i, j}, {j, k}} {
					pr, isVar, val, err := resolve(uv[0], uv[1])
					if err != nil {
						return err
					}
					legs[li] = tripleLeg{pair: pr, isVar: isVar, val: val}
				}
				pr, isVar, val, err := resolve(i, k)
				if err != nil {
					return err
				}
				legs[2] = tripleLeg{pair: pr, isVar: isVar, val: val}

				if err := visit(legs); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

// forcedLeg is a triple's lone remaining variable leg, forced to val because
// its other value is infeasible against the triple's two known constants.
type forcedLeg struct {
	pair Pair
	val  bool
}

// foldForcedLeg reports whether exactly one leg of the triple is still a
// variable and, of its two possible values, exactly one satisfies
// transitivity against the other two (already-known) legs — the case §4.5
// propagates as a forced implication instead of a constraint.
func foldForcedLeg(legs [3]tripleLeg) (forcedLeg, bool) {
	idx := -1
	for i, l := range legs {
		if l.isVar {
			if idx != -1 {
				return forcedLeg{}, false // more than one variable leg.
			}
			idx = i
		}
	}
	if idx == -1 {
		return forcedLeg{}, false
	}

	var feasible []bool
	for _, cand := range []bool{false, true} {
		var values [3]int
		for i, l := range legs {
			if i == idx {
				values[i] = boolToInt(cand)
			} else {
				values[i] = boolToInt(l.val)
			}
		}
		if transitivityHolds(values) {
			feasible = append(feasible, cand)
		}
	}
	if len(feasible) != 1 {
		return forcedLeg{}, false
	}

	return forcedLeg{pair: legs[idx].pair, val: feasible[0]}, true
}

// forbiddenPairs reports the ForbiddenPair implied by a triple with exactly
// two variable legs and one fixed constant leg, if any.
func forbiddenPairs(legs [3]tripleLeg) []ForbiddenPair {
	var varIdx []int
	for i, l := range legs {
		if l.isVar {
			varIdx = append(varIdx, i)
		}
	}
	if len(varIdx) != 2 {
		return nil
	}

	i0, i1 := varIdx[0], varIdx[1]
	var out []ForbiddenPair
	for _, c0 := range []bool{false, true} {
		for _, c1 := range []bool{false, true} {
			var values [3]int
			for i, l := range legs {
				switch i {
				case i0:
					values[i] = boolToInt(c0)
				case i1:
					values[i] = boolToInt(c1)
				default:
					values[i] = boolToInt(l.val)
				}
			}
			if !transitivityHolds(values) {
				out = append(out, ForbiddenPair{A: legs[i0].pair, AVal: c0, B: legs[i1].pair, BVal: c1})
			}
		}
	}

	return out
}

// foldFixed removes pr from p.Vars/p.Coeff, folds its known contribution
// into p.Constant, and records the value in p.Fixed and orientable's
// deletion so later triples in the same propagation pass see it as fixed
// rather than as a free variable.
func foldFixed(p *Problem, orientable map[Pair]struct{}, pr Pair, val bool) {
	if val {
		p.Constant += p.Coeff[pr]
	}
	delete(p.Coeff, pr)
	delete(orientable, pr)
	p.Fixed[pr] = val

	kept := p.Vars[:0:0]
	for _, v := range p.Vars {
		if v != pr {
			kept = append(kept, v)
		}
	}
	p.Vars = kept
}

// seedHeuristicCut runs both heuristics of §4.3 on sub, keeps the order
// with the lower objective under p, and records it as a feasible incumbent
// a Backend may use to prune from the start.
func seedHeuristicCut(p *Problem, sub bigraph.SubInstance, o *oracle.Oracle) {
	candidates := [][]int{
		heuristics.BarycenterSub(sub, o),
		heuristics.MedianSub(sub, o),
	}

	bestCost := 0
	var bestAssign map[Pair]bool
	var bestOrder []int
	for _, order := range candidates {
		assign := assignFromOrder(order)
		cost := p.Constant
		for pr, forward := range assign {
			if forward {
				cost += p.Coeff[pr]
			}
		}
		if bestAssign == nil || cost < bestCost {
			bestCost, bestAssign, bestOrder = cost, assign, order
		}
	}

	p.HeuristicOrder = bestOrder
	p.HeuristicAssign = bestAssign
	p.HeuristicCost = bestCost
}

// assignFromOrder derives, for every pair of distinct ids in order, the
// canonical x(u,v) value implied by their relative position.
func assignFromOrder(order []int) map[Pair]bool {
	pos := make(map[int]int, len(order))
	for i, id := range order {
		pos[id] = i
	}

	assign := make(map[Pair]bool, len(order)*(len(order)-1)/2)
	for i := 0; i < len(order); i++ {
		for j := i + 1; j < len(order); j++ {
			pr := pairOf(order[i], order[j])
			assign[pr] = pos[pr.U] < pos[pr.V]
		}
	}

	return assign
}

func pairOf(u, v int) Pair {
	if u > v {
		u, v = v, u
	}

	return Pair{U: u, V: v}
}

// allOrderedTriangles mirrors the original dense formulation: every ordered
// triple (i,j,k) of distinct vertices sharing pairwise-orientable pairs
// gets a constraint. Each permutation is canonicalized to its ascending
// (lo,mid,hi) form before the Triangle is built — sigma(i,j) only equals
// the canonical x(i,j) directly when i<j, so a permutation like (2,1,3)
// has to resolve to the same (1,2,3) constraint rather than wiring
// x(1,2)+x(1,3)-x(2,3) as if it meant sigma(2,1)+sigma(1,3)-sigma(2,3).
// This makes the variant genuinely redundant (up to 6x per unordered
// triple) rather than a different, unsound constraint set.
func allOrderedTriangles(pairs []Pair, orientable map[Pair]struct{}) []Triangle {
	ids := vertexSet(pairs)
	var out []Triangle
	for _, i := range ids {
		for _, j := range ids {
			if j == i {
				continue
			}
			for _, k := range ids {
				if k == i || k == j {
					continue
				}
				lo, mid, hi := sortedTriple(i, j, k)
				_, okUV := orientable[pairOf(lo, mid)]
				_, okVW := orientable[pairOf(mid, hi)]
				_, okUW := orientable[pairOf(lo, hi)]
				if !okUV || !okVW || !okUW {
					continue
				}
				out = append(out, Triangle{UV: pairOf(lo, mid), VW: pairOf(mid, hi), UW: pairOf(lo, hi)})
			}
		}
	}

	return out
}

func sortedTriple(a, b, c int) (lo, mid, hi int) {
	if a > b {
		a, b = b, a
	}
	if b > c {
		b, c = c, b
	}
	if a > b {
		a, b = b, a
	}

	return a, b, c
}

// canonicalTriangles emits one constraint per unordered triple {i,j,k}
// (i<j<k), oriented along ascending id, instead of every ordered triple.
func canonicalTriangles(pairs []Pair, orientable map[Pair]struct{}) []Triangle {
	ids := vertexSet(pairs)
	var out []Triangle
	for a := 0; a < len(ids); a++ {
		for b := a + 1; b < len(ids); b++ {
			for c := b + 1; c < len(ids); c++ {
				i, j, k := ids[a], ids[b], ids[c]
				if _, ok := orientable[pairOf(i, j)]; !ok {
					continue
				}
				if _, ok := orientable[pairOf(j, k)]; !ok {
					continue
				}
				if _, ok := orientable[pairOf(i, k)]; !ok {
					continue
				}
				out = append(out, Triangle{UV: pairOf(i, j), VW: pairOf(j, k), UW: pairOf(i, k)})
			}
		}
	}

	return out
}

// cycleEliminationTriangles emits the same canonical triples, tagged for
// the Backend to interpret as 1 <= x(i,j)+x(j,k)+x(k,i) <= 2 rather than
// the textbook inequality.
func cycleEliminationTriangles(pairs []Pair, orientable map[Pair]struct{}) []Triangle {
	out := canonicalTriangles(pairs, orientable)
	for i := range out {
		out[i].NegUW = true
	}

	return out
}

func vertexSet(pairs []Pair) []int {
	seen := make(map[int]struct{})
	for _, p := range pairs {
		seen[p.U] = struct{}{}
		seen[p.V] = struct{}{}
	}
	ids := make([]int, 0, len(seen))
	for v := range seen {
		ids = append(ids, v)
	}
	sort.Ints(ids)

	return ids
}
