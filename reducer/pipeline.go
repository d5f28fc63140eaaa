package reducer

import (
	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// ExactSolver is the trait every optimizer (ilp, sattww, dp) implements so
// the reducer can recurse into whichever exact backend the caller
// configured, without this package depending on any of them.
type ExactSolver interface {
	Solve(sub bigraph.SubInstance) (order []int, crossings int, err error)
}

// Pipeline drives the reduction rules in a fixed order, falling back to an
// ExactSolver once none of them fire.
type Pipeline struct {
	leaf ExactSolver
}

// New builds a Pipeline that falls back to leaf once no reduction rule
// applies.
func New(leaf ExactSolver) *Pipeline {
	return &Pipeline{leaf: leaf}
}

// Solve recursively applies, in order, isolated-vertex removal, twin
// merging, piece cutting, and LMR locking; whichever rule fires first hands
// its shrunk sub-instance back to Solve, and the result is reassembled
// (twins expanded, pieces concatenated, LMR vertices reinserted, isolated
// vertices appended last). Once no rule applies, the configured
// ExactSolver is invoked directly.
func (p *Pipeline) Solve(sub bigraph.SubInstance, o *oracle.Oracle) ([]int, error) {
	if len(sub) == 0 {
		return nil, nil
	}

	kept, isolated := KillIsolated(sub, o)
	order, err := p.solveKept(kept, o)
	if err != nil {
		return nil, err
	}
	for _, v := range isolated {
		order = append(order, v.ID)
	}

	return order, nil
}

func (p *Pipeline) solveKept(kept bigraph.SubInstance, o *oracle.Oracle) ([]int, error) {
	if len(kept) == 0 {
		return nil, nil
	}

	if merged, groups := Twins(kept, o); len(groups) > 0 {
		mergedOrder, err := p.solveKept(merged, o)
		if err != nil {
			return nil, err
		}

		return Expand(mergedOrder, groups), nil
	}

	if pieces, ok := CutByPieces(kept, o); ok {
		order := make([]int, 0, len(kept))
		for _, piece := range pieces {
			sub, err := p.solveKept(piece, o)
			if err != nil {
				return nil, err
			}
			order = append(order, sub...)
		}

		return order, nil
	}

	if reduced, removed, ok := LMR(kept, o); ok {
		reducedOrder, err := p.solveKept(reduced, o)
		if err != nil {
			return nil, err
		}

		return Reinsert(reducedOrder, removed, kept, o), nil
	}

	order, _, err := p.leaf.Solve(kept)

	return order, err
}
