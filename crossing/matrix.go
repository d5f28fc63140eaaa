package crossing

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
)

// Pair identifies an orientable pair of B-vertices, canonically with U < V
// in vertex-id order (not position order — the pair is symmetric in
// identity, asymmetric in cost: C(U,V) and C(V,U) generally differ).
type Pair struct {
	U, V int
}

// Matrix is the sparse, immutable crossing-cost index built by Build. Only
// orientable pairs are present; c(u, v) for any other pair is undefined and
// C reports ok=false.
type Matrix struct {
	c     map[Pair]int // c[{u,v}] = crossings incurred when u precedes v
	pairs []Pair       // canonical U<V list, ascending
}

// C returns c(u, v): the number of unavoidable crossings when u precedes v.
// ok is false if (u, v) is not an orientable pair.
func (m *Matrix) C(u, v int) (count int, ok bool) {
	count, ok = m.c[Pair{U: u, V: v}]

	return count, ok
}

// OrientablePairs returns the canonical (U < V) list of orientable pairs,
// ascending by (U, V). The returned slice is owned by Matrix.
func (m *Matrix) OrientablePairs() []Pair { return m.pairs }

// interleave reports whether intervals [l0,r0] and [l1,r1] interleave
// strictly: they overlap and neither contains the other, and they are not
// the same single point (which would make the pair FREE, not orientable).
func interleave(l0, r0, l1, r1 int) bool {
	if l0 == r0 && l1 == r1 && l0 == l1 {
		return false // FREE: identical single-point interval
	}
	overlaps := max(l0, l1) <= min(r0, r1)
	if !overlaps {
		return false // disjoint: forced PRE or POS, not orientable
	}
	nested := (l0 <= l1 && r1 <= r0) || (l1 <= l0 && r0 <= r1)

	return !nested
}

func min(a, b int) int {
	if a < b {
		return a
	}

	return b
}

func max(a, b int) int {
	if a > b {
		return a
	}

	return b
}

// Build runs the left-to-right sweep over A described in spec §4.1: bucket
// B-vertices into open/close by interval endpoint, maintain an active set
// of currently-open intervals, and accumulate crossing counts in two
// passes. The first pass seeds a zero entry for every pair that is ever
// simultaneously touched; the second accumulates the two crossing terms
// (edges of an active vertex landing right of a closing vertex's endpoint,
// and the symmetric term once a vertex closes). Only pairs whose intervals
// strictly interleave are kept in the final index.
//
// Complexity: O(nA + nB + sum of active-set sizes touched), which is
// O(nA * nB) worst case but far smaller when intervals are sparse — the
// asymptotic sparsity the spec requires.
func Build(g *bigraph.Graph) (*Matrix, error) {
	nA, nB := g.NumA(), g.NumB()

	open := make([][]int, nA+1)
	closeAt := make([][]int, nA+1)
	left := make([]int, nB)
	right := make([]int, nB)
	deg := make([]int, nB)
	hasInterval := make([]bool, nB)

	for b := 0; b < nB; b++ {
		deg[b] = g.DegreeB(b)
		l, r, ok := g.Interval(b)
		if !ok {
			continue
		}
		hasInterval[b] = true
		left[b], right[b] = l, r
		open[l] = append(open[l], b)
		closeAt[r] = append(closeAt[r], b)
	}

	raw := make(map[Pair]int)
	active := make(map[int]struct{})

	// First pass: seed zero entries for every pair ever simultaneously
	// active/touched, so the second pass's += never silently misses a pair.
	for a := 0; a < nA; a++ {
		for _, b := range open[a] {
			active[b] = struct{}{}
		}
		nbrs, _ := g.NeighborsA(a)
		for _, u := range nbrs {
			for v := range active {
				if u != v {
					raw[Pair{U: u, V: v}] = 0
				}
			}
		}
		for _, b := range closeAt[a] {
			delete(active, b)
		}
	}
	if len(active) != 0 {
		return nil, ErrInvariantViolated
	}

	// Second pass: accumulate crossing counts.
	dLess := make([]int, nB)
	dLeq := make([]int, nB)
	for a := 0; a < nA; a++ {
		nbrs, _ := g.NeighborsA(a)
		for _, b := range nbrs {
			dLeq[b]++
		}
		for _, b := range open[a] {
			active[b] = struct{}{}
		}

		// Crossings from edges of u landing right of v's closing endpoint
		// while v is still active.
		for _, u := range nbrs {
			for v := range active {
				if u != v {
					raw[Pair{U: u, V: v}] += dLess[v]
				}
			}
		}

		// Crossings from edges of active u that land strictly right of a,
		// each crossing every edge of v as v closes at a.
		for u := range active {
			for _, v := range nbrs {
				if u == v || right[v] != a {
					continue
				}
				raw[Pair{U: u, V: v}] += deg[v] * (deg[u] - dLeq[u])
			}
		}

		for _, b := range closeAt[a] {
			delete(active, b)
		}
		for _, b := range nbrs {
			dLess[b]++
		}
	}
	if len(active) != 0 {
		return nil, ErrInvariantViolated
	}

	return finalize(raw, left, right, hasInterval, deg), nil
}

// finalize filters the raw touched-pair map down to strictly orientable
// pairs, filling in a missing direction from the complementary-count
// invariant c(i,j) + c(j,i) == deg(i)*deg(j) when the sweep only recorded
// one side (which happens at interval boundaries).
func finalize(raw map[Pair]int, left, right []int, hasInterval []bool, deg []int) *Matrix {
	seen := make(map[Pair]struct{})
	for p := range raw {
		u, v := p.U, p.V
		if u > v {
			u, v = v, u
		}
		seen[Pair{U: u, V: v}] = struct{}{}
	}

	c := make(map[Pair]int, len(seen)*2)
	pairs := make([]Pair, 0, len(seen))
	for p := range seen {
		u, v := p.U, p.V
		if !hasInterval[u] || !hasInterval[v] {
			continue
		}
		if !interleave(left[u], right[u], left[v], right[v]) {
			continue
		}
		cuv, okUV := raw[Pair{U: u, V: v}]
		cvu, okVU := raw[Pair{U: v, V: u}]
		total := deg[u] * deg[v]
		switch {
		case okUV && okVU:
		case okUV && !okVU:
			cvu = total - cuv
		case okVU && !okUV:
			cuv = total - cvu
		default:
			continue
		}
		c[Pair{U: u, V: v}] = cuv
		c[Pair{U: v, V: u}] = cvu
		pairs = append(pairs, Pair{U: u, V: v})
	}
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].U != pairs[j].U {
			return pairs[i].U < pairs[j].U
		}

		return pairs[i].V < pairs[j].V
	})

	return &Matrix{c: c, pairs: pairs}
}
