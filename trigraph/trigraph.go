package trigraph

// Trigraph is a dense black/red adjacency matrix over a fixed vertex set,
// some of whom may have already been contracted away (Alive tracks which).
// Dense storage mirrors the teacher's own choice of [][]bool matrices
// for small-to-medium instances where cache-friendly bit access wins over
// a sparse structure's asymptotic edge.
type Trigraph struct {
	n      int
	black  [][]bool
	red    [][]bool
	alive  []bool
	redDeg []int
}

// Edge is an unordered pair of original vertex ids.
type Edge struct {
	U, V int
}

// New builds a Trigraph over n vertices with every edge in edges colored
// black.
func New(n int, edges []Edge) *Trigraph {
	black := make([][]bool, n)
	red := make([][]bool, n)
	for i := range black {
		black[i] = make([]bool, n)
		red[i] = make([]bool, n)
	}
	alive := make([]bool, n)
	for i := range alive {
		alive[i] = true
	}
	for _, e := range edges {
		black[e.U][e.V] = true
		black[e.V][e.U] = true
	}

	return &Trigraph{n: n, black: black, red: red, alive: alive, redDeg: make([]int, n)}
}

// NumVertices returns the original vertex count (alive + dead).
func (t *Trigraph) NumVertices() int { return t.n }

// Alive returns the currently-alive vertex ids, ascending.
func (t *Trigraph) Alive() []int {
	out := make([]int, 0, t.n)
	for i, a := range t.alive {
		if a {
			out = append(out, i)
		}
	}

	return out
}

// IsAlive reports whether v has not yet been contracted away.
func (t *Trigraph) IsAlive(v int) bool { return t.alive[v] }

func (t *Trigraph) hasEdge(u, v int) bool { return t.black[u][v] || t.red[u][v] }

// HasEdge reports whether any edge (black or red) currently connects u, v.
func (t *Trigraph) HasEdge(u, v int) bool { return t.hasEdge(u, v) }

// Clone returns an independent copy of t's current state; mutating the
// clone (via Contract) never affects t. Used by search routines that need
// to probe a tentative contraction and roll back on rejection.
func (t *Trigraph) Clone() *Trigraph {
	black := make([][]bool, t.n)
	red := make([][]bool, t.n)
	for i := range black {
		black[i] = append([]bool(nil), t.black[i]...)
		red[i] = append([]bool(nil), t.red[i]...)
	}

	return &Trigraph{
		n:      t.n,
		black:  black,
		red:    red,
		alive:  append([]bool(nil), t.alive...),
		redDeg: append([]int(nil), t.redDeg...),
	}
}

// RedDegree returns the current red-degree of v.
func (t *Trigraph) RedDegree(v int) int { return t.redDeg[v] }

// Width returns the maximum red-degree over all alive vertices.
func (t *Trigraph) Width() int {
	m := 0
	for i, a := range t.alive {
		if a && t.redDeg[i] > m {
			m = t.redDeg[i]
		}
	}

	return m
}

// Contract identifies v into u: u survives, v is marked dead, and every
// other alive vertex w gets a red edge to u whenever w's relationship to u
// and v disagreed (w adjacent to exactly one of them, or adjacent via a
// red edge to either) — the symmetric-difference rule that defines
// twin-width. Returns the resulting Width().
func (t *Trigraph) Contract(u, v int) (int, error) {
	if u == v || !t.alive[u] || !t.alive[v] {
		return 0, ErrInvalidContraction
	}

	for w := 0; w < t.n; w++ {
		if w == u || w == v || !t.alive[w] {
			continue
		}
		hu := t.hasEdge(u, w)
		hv := t.hasEdge(v, w)
		switch {
		case hu && hv:
			if !(t.black[u][w] && t.black[v][w]) {
				t.setRed(u, w)
			}
		case hu || hv:
			t.setRed(u, w)
		default:
			t.clearEdge(u, w)
		}
	}

	t.alive[v] = false
	for w := 0; w < t.n; w++ {
		t.black[v][w], t.black[w][v] = false, false
		t.red[v][w], t.red[w][v] = false, false
	}
	t.recomputeRedDegrees()

	return t.Width(), nil
}

func (t *Trigraph) setRed(u, w int) {
	t.black[u][w], t.black[w][u] = false, false
	t.red[u][w], t.red[w][u] = true, true
}

func (t *Trigraph) clearEdge(u, w int) {
	t.black[u][w], t.black[w][u] = false, false
	t.red[u][w], t.red[w][u] = false, false
}

func (t *Trigraph) recomputeRedDegrees() {
	for i := range t.redDeg {
		t.redDeg[i] = 0
	}
	for i := 0; i < t.n; i++ {
		if !t.alive[i] {
			continue
		}
		for j := 0; j < t.n; j++ {
			if j == i || !t.alive[j] {
				continue
			}
			if t.red[i][j] {
				t.redDeg[i]++
			}
		}
	}
}
