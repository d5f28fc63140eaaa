package solve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/banana/dimacs"
	"github.com/katalvlaran/banana/internal/cliutil"
	"github.com/katalvlaran/banana/moddecomp"
	"github.com/katalvlaran/banana/sattww"
	"github.com/katalvlaran/banana/trigraph"
)

// RunTWW solves twin-width over g: it computes the modular decomposition,
// runs the SAT optimizer on each PRIME node's quotient, recomposes the
// per-node sequences bottom-up, and replays the full sequence to report
// the realized width.
func RunTWW(ctx context.Context, g *trigraph.Trigraph, opts ...Option) ([]dimacs.ContractionPair, int, error) {
	o := Apply(opts...)
	logger := cliutil.LoggerFromContext(ctx)
	runID := cliutil.NewRunID()
	logger.Info("solving TWW", "run_id", runID, "n", g.NumVertices())

	adj := func(u, v int) bool { return g.HasEdge(u, v) }
	vertices := g.Alive()
	tree := moddecomp.Decompose(vertices, adj)

	steps, err := solveModNode(tree, adj, o.SATBackend)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSolver, err)
	}

	replay := g.Clone()
	width, err := moddecomp.Apply(replay, steps)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvariantViolated, err)
	}

	pairs := make([]dimacs.ContractionPair, len(steps))
	for i, s := range steps {
		pairs[i] = dimacs.ContractionPair{Parent: s.Survivor, Child: s.Absorbed}
	}

	logger.Info("solved TWW", "run_id", runID, "width", width)

	return pairs, width, nil
}

func solveModNode(n *moddecomp.Node, adj moddecomp.AdjFunc, backend sattww.Backend) ([]moddecomp.ContractionStep, error) {
	if n.Kind == moddecomp.Leaf {
		return nil, nil
	}

	childSeqs := make(map[int][]moddecomp.ContractionStep, len(n.Children))
	for _, c := range n.Children {
		seq, err := solveModNode(c, adj, backend)
		if err != nil {
			return nil, err
		}
		childSeqs[c.Representative()] = seq
	}

	if n.Kind != moddecomp.Prime {
		return moddecomp.Recompose(n, childSeqs, nil), nil
	}

	reps, _ := n.Quotient(adj)
	localAdj := func(a, b int) bool { return adj(reps[a], reps[b]) }
	steps, _, err := sattww.Search(len(reps), localAdj, backend)
	if err != nil {
		return nil, err
	}

	quotientSeq := make([]moddecomp.ContractionStep, len(steps))
	for i, s := range steps {
		quotientSeq[i] = moddecomp.ContractionStep{Survivor: reps[s.Survivor], Absorbed: reps[s.Absorbed]}
	}

	return moddecomp.Recompose(n, childSeqs, quotientSeq), nil
}
