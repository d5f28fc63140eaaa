package solve

import (
	"errors"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/dp"
	"github.com/katalvlaran/banana/ilp"
	"github.com/katalvlaran/banana/oracle"
)

// compositeLeaf is the reducer.ExactSolver handed to reducer.Pipeline: it
// tries the bitset DP optimizer first (cheap when the sub-instance's bag
// width is small) and falls back to the ILP optimizer when dp reports
// ErrBudgetExceeded, mirroring §4.7's "driver runs the DP only if ... ;
// otherwise it hands the sub-instance to the ILP ... optimizer".
type compositeLeaf struct {
	dp  *dp.Solver
	ilp *ilp.Solver
}

func newCompositeLeaf(o *oracle.Oracle, opts Options) *compositeLeaf {
	ilpSolver := ilp.NewSolver(o, opts.IPBackend, opts.IPFormulation)
	ilpSolver.Prefix = opts.IPPrefixConstraints

	return &compositeLeaf{
		dp:  &dp.Solver{Oracle: o, Budget: opts.DPBudget},
		ilp: ilpSolver,
	}
}

func (c *compositeLeaf) Solve(sub bigraph.SubInstance) ([]int, int, error) {
	order, crossings, err := c.dp.Solve(sub)
	if err == nil {
		return order, crossings, nil
	}
	if !errors.Is(err, dp.ErrBudgetExceeded) {
		return nil, 0, err
	}

	return c.ilp.Solve(sub)
}
