// Package moddecomp builds the modular decomposition tree of a graph:
// recursively, the maximal proper modules of the vertex set become the
// children of a SERIES node (every pair of modules fully joined), a
// PARALLEL node (no module pair joined), or a PRIME node (neither) — down
// to LEAF nodes at single vertices. Series and parallel nodes can be
// collapsed by a contraction sequence of width 0; prime nodes are solved
// as a small quotient instance and the result lifted back (Recompose).
//
// The module-membership test here is the direct, quadratic "every outside
// vertex sees the candidate set uniformly" check rather than the linear
// partition-refinement algorithm from the literature: at the sub-instance
// sizes this package is ever handed (after the reducer and the
// crossing-oracle sparsity guarantees have already done their work), the
// quadratic check is simpler to get right and plenty fast.
package moddecomp
