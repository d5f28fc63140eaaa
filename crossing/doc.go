// Package crossing builds and indexes the pairwise crossing-cost matrix for
// a fixed bigraph.Graph: for every orientable pair of B-vertices (i, j) —
// pairs whose A-intervals interleave so their relative order affects the
// crossing count — c(i, j) is the number of crossings incurred when i
// precedes j.
//
// Non-orientable pairs (FREE, PRE, POS in the spec's terminology) are never
// stored: orientable pairs are asymptotically fewer on realistic inputs,
// and the spec forbids materializing the full O(nB^2) table.
//
// Matrix is built once via Build and is immutable afterward, mirroring the
// teacher's matrix package (adjacency/incidence matrices built once from a
// core.Graph and read thereafter).
package crossing
