package sattww

// Backend decides a CNF, given the base formula plus a set of extra unit
// clauses asserted for this particular red-degree bound (the "snapshot and
// assert the ladder clauses" step of the binary search). No real CDCL/SAT
// library binding exists in this module's dependency surface, so this
// mirrors ilp.Backend: a small seam with one grounded reference
// implementation (DPLL below).
type Backend interface {
	Solve(cnf *CNF, extra []Clause) (assign map[int]bool, sat bool, err error)
}

// DPLL is the reference Backend: classic Davis-Putnam-Logemann-Loveland
// search with unit propagation only: no pure-literal elimination and no
// clause learning. Adequate for the small quotient instances moddecomp ever
// produces; a real CDCL solver is a drop-in replacement behind Backend.
type DPLL struct{}

// Solve implements Backend.
func (DPLL) Solve(cnf *CNF, extra []Clause) (map[int]bool, bool, error) {
	clauses := make([]Clause, 0, len(cnf.Clauses)+len(extra))
	clauses = append(clauses, cnf.Clauses...)
	clauses = append(clauses, extra...)

	assign := make(map[int]bool, cnf.NumVars)
	ok := dpllSearch(clauses, cnf.NumVars, assign)
	if !ok {
		return nil, false, nil
	}

	return assign, true, nil
}

func dpllSearch(clauses []Clause, numVars int, assign map[int]bool) bool {
	clauses, ok := unitPropagate(clauses, assign)
	if !ok {
		return false
	}
	if allSatisfied(clauses, assign) {
		return true
	}

	v := firstUnassigned(numVars, assign)
	if v == 0 {
		// Every variable assigned but some clause unsatisfied: this branch
		// dead-ends (unitPropagate already filters satisfied clauses, so
		// reaching here with remaining clauses means contradiction).
		return len(clauses) == 0
	}

	for _, val := range [...]bool{true, false} {
		trial := cloneAssign(assign)
		trial[v] = val
		if dpllSearch(clauses, numVars, trial) {
			for k, vv := range trial {
				assign[k] = vv
			}

			return true
		}
	}

	return false
}

func cloneAssign(a map[int]bool) map[int]bool {
	out := make(map[int]bool, len(a))
	for k, v := range a {
		out[k] = v
	}

	return out
}

func firstUnassigned(numVars int, assign map[int]bool) int {
	for v := 1; v <= numVars; v++ {
		if _, ok := assign[v]; !ok {
			return v
		}
	}

	return 0
}

func litValue(l Lit, assign map[int]bool) (val bool, known bool) {
	v, ok := assign[l.Var()]
	if !ok {
		return false, false
	}
	if l < 0 {
		return !v, true
	}

	return v, true
}

// unitPropagate repeatedly satisfies unit clauses until fixpoint, returning
// the surviving (non-yet-satisfied) clauses and false if a contradiction
// (empty clause) was derived.
func unitPropagate(clauses []Clause, assign map[int]bool) ([]Clause, bool) {
	changed := true
	for changed {
		changed = false
		remaining := make([]Clause, 0, len(clauses))
		for _, c := range clauses {
			satisfied := false
			var unassignedLit Lit
			unassignedCount := 0
			for _, l := range c {
				val, known := litValue(l, assign)
				if known && val {
					satisfied = true

					break
				}
				if !known {
					unassignedCount++
					unassignedLit = l
				}
			}
			if satisfied {
				continue
			}
			if unassignedCount == 0 {
				return nil, false
			}
			if unassignedCount == 1 {
				assign[unassignedLit.Var()] = unassignedLit > 0
				changed = true

				continue
			}
			remaining = append(remaining, c)
		}
		clauses = remaining
	}

	return clauses, true
}

func allSatisfied(clauses []Clause, assign map[int]bool) bool {
	for _, c := range clauses {
		satisfied := false
		for _, l := range c {
			if val, known := litValue(l, assign); known && val {
				satisfied = true

				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
