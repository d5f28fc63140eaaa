package ilp

import "time"

// BranchAndBound is the dependency-free reference Backend: depth-first
// search over the canonical variables in Problem.Vars order, with an
// admissible lower bound (the best-case contribution of every
// not-yet-decided variable, assuming it could independently take its
// cheaper value) and incremental transitivity checking as soon as a
// triangle's last variable is assigned.
//
// Complexity: worst case exponential in len(Vars); in practice the
// reducer only ever hands this an irreducible residual, which is small
// once isolated/twin/piece/LMR rules have run.
type BranchAndBound struct {
	// Deadline, if non-zero, aborts the search and returns
	// ErrDeadlineExceeded once no feasible assignment has been found yet.
	Deadline time.Time
}

// bbEngine holds the search state, mirroring the teacher's dedicated-engine
// convention: explicit fields instead of captured closures, so bound and
// branch logic stay easy to follow and to test in isolation.
type bbEngine struct {
	vars       []Pair
	coeff      map[Pair]int
	triByLast  [][]Triangle
	forbByLast [][]ForbiddenPair
	suffixMin  []int

	assign      map[Pair]bool
	best        map[Pair]bool
	bestCost    int
	foundAny    bool
	constant    int
	useDeadline bool
	deadline    time.Time
	deadlineHit bool
	steps       int
}

func (bb BranchAndBound) Solve(p *Problem) (map[Pair]bool, int, error) {
	e := &bbEngine{
		vars:     p.Vars,
		coeff:    p.Coeff,
		constant: p.Constant,
		assign:   make(map[Pair]bool, len(p.Vars)),
	}
	if !bb.Deadline.IsZero() {
		e.useDeadline = true
		e.deadline = bb.Deadline
	}
	e.indexTriangles(p.Triangles)
	e.indexForbidden(p.Forbidden)
	e.computeSuffixMin()

	if p.HeuristicAssign != nil {
		e.foundAny = true
		e.bestCost = p.HeuristicCost
		e.best = p.HeuristicAssign
	}

	e.dfs(0, p.Constant)

	if !e.foundAny {
		if e.deadlineHit {
			return nil, 0, ErrDeadlineExceeded
		}

		return nil, 0, ErrInfeasible
	}

	return e.best, e.bestCost, nil
}

func (e *bbEngine) indexTriangles(triangles []Triangle) {
	varIndex := make(map[Pair]int, len(e.vars))
	for i, v := range e.vars {
		varIndex[v] = i
	}
	e.triByLast = make([][]Triangle, len(e.vars))
	for _, t := range triangles {
		last := maxInt3(varIndex[t.UV], varIndex[t.VW], varIndex[t.UW])
		e.triByLast[last] = append(e.triByLast[last], t)
	}
}

func (e *bbEngine) indexForbidden(forbidden []ForbiddenPair) {
	varIndex := make(map[Pair]int, len(e.vars))
	for i, v := range e.vars {
		varIndex[v] = i
	}
	e.forbByLast = make([][]ForbiddenPair, len(e.vars))
	for _, f := range forbidden {
		last := varIndex[f.A]
		if varIndex[f.B] > last {
			last = varIndex[f.B]
		}
		e.forbByLast[last] = append(e.forbByLast[last], f)
	}
}

func (e *bbEngine) computeSuffixMin() {
	n := len(e.vars)
	e.suffixMin = make([]int, n+1)
	for i := n - 1; i >= 0; i-- {
		c := e.coeff[e.vars[i]]
		m := 0
		if c < 0 {
			m = c
		}
		e.suffixMin[i] = e.suffixMin[i+1] + m
	}
}

func (e *bbEngine) deadlineCheck() bool {
	e.steps++
	if !e.useDeadline || e.steps%1024 != 0 {
		return false
	}

	return time.Now().After(e.deadline)
}

func (e *bbEngine) dfs(i, cost int) {
	if e.deadlineCheck() {
		e.deadlineHit = true

		return
	}
	if e.foundAny && cost+e.suffixMin[i] >= e.bestCost {
		return
	}
	if i == len(e.vars) {
		e.bestCost = cost
		e.foundAny = true
		e.best = make(map[Pair]bool, len(e.assign))
		for k, v := range e.assign {
			e.best[k] = v
		}

		return
	}

	v := e.vars[i]
	delta := e.coeff[v]
	// Try the cheaper value first: a strong incumbent found early tightens
	// every subsequent bound check.
	order := [2]bool{false, true}
	if delta < 0 {
		order = [2]bool{true, false}
	}
	for _, val := range order {
		e.assign[v] = val
		d := 0
		if val {
			d = delta
		}
		if e.satisfiesTrianglesAt(i) {
			e.dfs(i+1, cost+d)
		}
		if e.deadlineHit {
			return
		}
	}
}

func (e *bbEngine) satisfiesTrianglesAt(i int) bool {
	for _, t := range e.triByLast[i] {
		uv, vw, uw := e.assign[t.UV], e.assign[t.VW], e.assign[t.UW]
		if t.NegUW {
			// 1 <= x(uv)+x(vw)+x(uw's reverse) <= 2; the third leg enters
			// complemented since it runs u-to-w against uw's w-to-u sense.
			total := boolToInt(uv) + boolToInt(vw) + (1 - boolToInt(uw))
			if total < 1 || total > 2 {
				return false
			}

			continue
		}
		// Both bounds are required: the upper one alone lets the Backend
		// pick the mirror-image 3-cycle (all three legs false) unchecked.
		sum := boolToInt(uv) + boolToInt(vw) - boolToInt(uw)
		if sum < 0 || sum > 1 {
			return false
		}
	}
	for _, f := range e.forbByLast[i] {
		if e.assign[f.A] == f.AVal && e.assign[f.B] == f.BVal {
			return false
		}
	}

	return true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}

func maxInt3(a, b, c int) int {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}

	return m
}
