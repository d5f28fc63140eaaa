// Package ilp formulates one-sided crossing minimization over a
// sub-instance as a transitive-tournament Boolean integer program and
// dispatches it to a pluggable Backend.
//
// One binary variable x(u,v) is created per canonical orientable pair
// (u < v), meaning "u precedes v"; x(v,u) is always 1 - x(u,v), so totality
// is implicit rather than a separate constraint. Pairs with a forced
// relation (FREE, PRE, POS) never need a variable at all, which is what
// keeps the variable set sparse on realistic inputs instead of the dense
// n^2 program a naive translation of the textbook IP would produce.
//
// Transitivity, though, has to account for every triple regardless of how
// many of its three legs are orientable: propagateTransitivity substitutes
// the PRE/POS/FREE constant for each non-orientable leg into
// 0 <= sigma(i,j)+sigma(j,k)-sigma(i,k) <= 1, folding a triple with two
// forced legs directly into Problem.Fixed (an implication, per §4.5, rather
// than a constraint) and reducing one with a single forced leg to a
// ForbiddenPair on the remaining two variables. Only triples with all three
// legs orientable reach the variant-specific Triangle generators below.
//
// BuildProblem also runs both heuristics.BarycenterSub and
// heuristics.MedianSub over the sub-instance and keeps the cheaper as a
// feasible incumbent (Problem.HeuristicAssign/HeuristicCost): §4.3's
// "objective <= best_heuristic" cut, applied by seeding a Backend's search
// with an already-valid solution instead of an extra inequality.
package ilp
