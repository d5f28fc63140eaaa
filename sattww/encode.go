package sattww

// AdjFunc reports whether u and v are adjacent in the original trigraph
// (black edges only — the fixed input, not the evolving red structure the
// encoding reasons about via its own variables).
type AdjFunc func(u, v int) bool

// Encoding holds every variable allocated for an n-vertex instance plus the
// CNF they were added to, so Decode can read assignments back by name.
type Encoding struct {
	CNF *CNF
	N   int

	o map[[2]int]Lit // i<j
	p map[[2]int]Lit // i<j
	a map[[2]int]Lit // canonical i<j
	r map[[3]int]Lit // (i, j, k) with j<k

	// tally[i][j] is the totalizer output for vertex j's red-degree at
	// step i: tally[i][j][b] means "red-degree of j at step i is >= b+1".
	tally map[[2]int][]Lit
}

func canon2(u, v int) [2]int {
	if u > v {
		u, v = v, u
	}

	return [2]int{u, v}
}

// oLit returns the literal meaning "u is eliminated before v", for any
// distinct u, v (not just u < v).
func (e *Encoding) oLit(u, v int) Lit {
	if u < v {
		return e.o[[2]int{u, v}]
	}

	return e.o[[2]int{v, u}].Neg()
}

// aLit returns the literal for "edge {u,v} present" using the canonical
// (min,max) key; undefined pairs (u==v) are never queried.
func (e *Encoding) aLit(u, v int) Lit {
	return e.a[canon2(u, v)]
}

// rLit returns the literal for r(i,j,k), canonicalizing j<k.
func (e *Encoding) rLit(i, j, k int) Lit {
	if j > k {
		j, k = k, j
	}

	return e.r[[3]int{i, j, k}]
}

// Encode builds the full CNF (clauses a-g plus per-step red-degree
// totalizers) for an n-vertex instance whose initial adjacency is adj.
func Encode(n int, adj AdjFunc) *Encoding {
	e := &Encoding{
		CNF:   &CNF{},
		N:     n,
		o:     make(map[[2]int]Lit),
		p:     make(map[[2]int]Lit),
		a:     make(map[[2]int]Lit),
		r:     make(map[[3]int]Lit),
		tally: make(map[[2]int][]Lit),
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			e.o[[2]int{i, j}] = e.CNF.NewVar()
			e.p[[2]int{i, j}] = e.CNF.NewVar()
			e.a[[2]int{i, j}] = e.CNF.NewVar()
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := j + 1; k < n; k++ {
				if i == j || i == k {
					continue
				}
				e.r[[3]int{i, j, k}] = e.CNF.NewVar()
			}
		}
	}

	// a(u,v) stays free: clause (d) sets it once a red edge joins u and v,
	// and clause (f) hands that red edge on when the earlier one is
	// contracted.
	e.clauseTransitiveOrder()
	e.clauseExactlyOneParent()
	e.clauseParentFollowsOrder()
	e.clauseRedBookkeeping()
	e.clauseSymmetricDifference(adj)
	e.clauseInheritedRed()
	e.clauseRedPersistence()
	e.buildTallies()

	return e
}

// (a) Transitive order.
func (e *Encoding) clauseTransitiveOrder() {
	n := e.N
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				e.CNF.AddClause(e.oLit(i, j).Neg(), e.oLit(j, k).Neg(), e.oLit(i, k))
			}
		}
	}
}

// (b) Exactly-one parent per eliminated vertex i, drawn from the higher-id
// vertices (WLOG: the survivor of any merge can always be labeled the
// higher original id without loss of generality, since nothing later
// depends on which of the two ids continues to exist, only its row).
func (e *Encoding) clauseExactlyOneParent() {
	n := e.N
	for i := 0; i < n-1; i++ {
		var atLeastOne []Lit
		for j := i + 1; j < n; j++ {
			atLeastOne = append(atLeastOne, e.p[[2]int{i, j}])
		}
		e.CNF.AddClause(atLeastOne...)
		for j := i + 1; j < n; j++ {
			for k := j + 1; k < n; k++ {
				e.CNF.AddClause(e.p[[2]int{i, j}].Neg(), e.p[[2]int{i, k}].Neg())
			}
		}
	}
}

// (c) Parent follows in order.
func (e *Encoding) clauseParentFollowsOrder() {
	for key, lit := range e.p {
		e.CNF.AddClause(lit.Neg(), e.oLit(key[0], key[1]))
	}
}

// (d) Red-edge bookkeeping after contraction.
func (e *Encoding) clauseRedBookkeeping() {
	for key, rlit := range e.r {
		i, j, k := key[0], key[1], key[2]
		e.CNF.AddClause(e.oLit(i, j).Neg(), e.oLit(i, k).Neg(), rlit.Neg(), e.aLit(j, k))
	}
}

// (e) Symmetric difference originates red edges: for every k in
// N(i) XOR N(j), contracting i into j (p(i,j)) with i eliminated before k
// forces r(i,j,k).
func (e *Encoding) clauseSymmetricDifference(adj AdjFunc) {
	n := e.N
	for key, plit := range e.p {
		i, j := key[0], key[1]
		for k := 0; k < n; k++ {
			if k == i || k == j {
				continue
			}
			if adj(i, k) == adj(j, k) {
				continue // not in the symmetric difference
			}
			e.CNF.AddClause(plit.Neg(), e.oLit(i, k).Neg(), e.rLit(i, j, k))
		}
	}
}

// (f) Inherited red edges.
func (e *Encoding) clauseInheritedRed() {
	n := e.N
	for key, plit := range e.p {
		i, j := key[0], key[1]
		for k := 0; k < n; k++ {
			if k == i || k == j {
				continue
			}
			e.CNF.AddClause(plit.Neg(), e.oLit(i, k).Neg(), e.aLit(i, k).Neg(), e.rLit(i, j, k))
		}
	}
}

// (g) Red-edge persistence across steps.
func (e *Encoding) clauseRedPersistence() {
	n := e.N
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				for m := k + 1; m < n; m++ {
					if m == i || m == j {
						continue
					}
					riKM, ok := e.r[[3]int{i, k, m}]
					if !ok {
						continue
					}
					rjKM, ok := e.r[[3]int{j, k, m}]
					if !ok {
						continue
					}
					e.CNF.AddClause(e.oLit(i, j).Neg(), e.oLit(j, k).Neg(), e.oLit(j, m).Neg(), riKM.Neg(), rjKM)
				}
			}
		}
	}
}

// buildTallies constructs the per-(step, survivor) red-degree totalizer:
// for step i and vertex j, the inputs are every r(i,j,k) / r(i,k,j) with
// k != i, j.
func (e *Encoding) buildTallies() {
	n := e.N
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			var inputs []Lit
			for k := 0; k < n; k++ {
				if k == i || k == j {
					continue
				}
				if lit, ok := e.r[canon3(i, j, k)]; ok {
					inputs = append(inputs, lit)
				}
			}
			if len(inputs) == 0 {
				continue
			}
			e.tally[[2]int{i, j}] = AddTotalizer(e.CNF, inputs)
		}
	}
}

func canon3(i, j, k int) [3]int {
	if j > k {
		j, k = k, j
	}

	return [3]int{i, j, k}
}

// AssertMaxRedDegree adds unit clauses enforcing every step's every
// surviving vertex has red-degree at most k.
func (e *Encoding) AssertMaxRedDegree(k int) []Clause {
	var extra []Clause
	for _, tally := range e.tally {
		for b := k; b < len(tally); b++ {
			extra = append(extra, Clause{tally[b].Neg()})
		}
	}

	return extra
}
