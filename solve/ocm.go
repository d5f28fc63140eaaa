package solve

import (
	"context"
	"fmt"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/internal/cliutil"
	"github.com/katalvlaran/banana/oracle"
	"github.com/katalvlaran/banana/reducer"
)

// RunOCM solves one-sided crossing minimization over g and returns the
// optimal B-vertex order (0-based) and its crossing count.
func RunOCM(ctx context.Context, g *bigraph.Graph, opts ...Option) ([]int, int, error) {
	o := Apply(opts...)
	logger := cliutil.LoggerFromContext(ctx)
	runID := cliutil.NewRunID()
	logger.Info("solving OCM", "run_id", runID, "n_a", g.NumA(), "n_b", g.NumB())

	oc, err := oracle.Build(g)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvariantViolated, err)
	}

	leaf := newCompositeLeaf(oc, o)
	pipeline := reducer.New(leaf)

	sub := bigraph.FromIDs(idsUpTo(g.NumB()))
	order, err := pipeline.Solve(sub, oc)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrSolver, err)
	}

	crossings, err := oc.NumberOfCrossings(order)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %v", ErrInvariantViolated, err)
	}

	if o.VerifyPath != "" {
		ok, vErr := verifyOCMAgainstFile(oc, o.VerifyPath, crossings)
		if vErr != nil {
			return nil, 0, fmt.Errorf("%w: %v", ErrParse, vErr)
		}
		if !ok {
			return nil, 0, ErrVerificationFailed
		}
	}

	logger.Info("solved OCM", "run_id", runID, "crossings", crossings)

	return order, crossings, nil
}

func idsUpTo(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}

	return ids
}
