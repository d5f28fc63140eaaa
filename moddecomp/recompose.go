package moddecomp

import "github.com/katalvlaran/banana/trigraph"

// ContractionStep records one step of a width-optimal contraction sequence:
// Absorbed is merged into Survivor.
type ContractionStep struct {
	Survivor, Absorbed int
}

// QuotientEdge is a pair of representative vertex ids adjacent in the
// quotient graph over n.Children.
type QuotientEdge struct {
	U, V int
}

// Quotient returns one representative vertex per child of n, together with
// the adjacency of the quotient graph induced by adj. Series children are
// pairwise adjacent, Parallel children pairwise non-adjacent; callers solve
// the quotient themselves for a Prime node using these representatives.
func (n *Node) Quotient(adj AdjFunc) ([]int, []QuotientEdge) {
	reps := make([]int, len(n.Children))
	for i, c := range n.Children {
		reps[i] = c.Representative()
	}

	var edges []QuotientEdge
	switch n.Kind {
	case Series:
		for i := 0; i < len(reps); i++ {
			for j := i + 1; j < len(reps); j++ {
				edges = append(edges, QuotientEdge{reps[i], reps[j]})
			}
		}
	case Parallel:
		// no edges
	default:
		for i := 0; i < len(reps); i++ {
			for j := i + 1; j < len(reps); j++ {
				if adj(reps[i], reps[j]) {
					edges = append(edges, QuotientEdge{reps[i], reps[j]})
				}
			}
		}
	}

	return reps, edges
}

// Recompose builds a full contraction sequence over n.Members from each
// child's own sequence (childSeqs, keyed by the child's Representative) and
// a quotient-level sequence expressed directly in representative vertex ids.
// For Series and Parallel nodes quotientSeq may be nil: any order of
// merging fully-joined (Series) or fully-disjoint (Parallel) representatives
// introduces zero red edges, so a trivial left-to-right merge is used.
func Recompose(n *Node, childSeqs map[int][]ContractionStep, quotientSeq []ContractionStep) []ContractionStep {
	var out []ContractionStep
	reps := make([]int, len(n.Children))
	for i, c := range n.Children {
		rep := c.Representative()
		reps[i] = rep
		out = append(out, childSeqs[rep]...)
	}

	if len(reps) < 2 {
		return out
	}

	if quotientSeq != nil {
		return append(out, quotientSeq...)
	}

	for i := 1; i < len(reps); i++ {
		out = append(out, ContractionStep{Survivor: reps[0], Absorbed: reps[i]})
	}

	return out
}

// Apply runs steps against g, returning the largest Width() reached after
// any step.
func Apply(g *trigraph.Trigraph, steps []ContractionStep) (int, error) {
	width := 0
	for _, s := range steps {
		w, err := g.Contract(s.Survivor, s.Absorbed)
		if err != nil {
			return 0, err
		}
		if w > width {
			width = w
		}
	}

	return width, nil
}
