// Package reducer implements the exact-preserving preprocessing pipeline:
// a sequence of instance-shrinking rules (isolated-vertex removal, twin
// merging, piece cutting by interval connectivity, and LMR position
// locking) that each either shrink a sub-instance before handing the rest
// to an ExactSolver, or report that they found nothing to do.
//
// Every rule is exact: applying it and later undoing its bookkeeping never
// changes the optimal crossing count, only the size of the instance the
// exact solver has to search.
package reducer
