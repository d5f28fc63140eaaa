package ilp

// Backend solves a Problem to optimality. The real ecosystem backends for
// this formulation (lp_solve, Gurobi, OR-Tools CP-SAT) have no Go bindings
// anywhere in this module's dependency surface, so Backend is the seam:
// production deployments wire in whichever solver they have available,
// and BranchAndBound below is the grounded, dependency-free reference
// implementation used by default and by every test in this package.
type Backend interface {
	Solve(p *Problem) (assign map[Pair]bool, objective int, err error)
}
