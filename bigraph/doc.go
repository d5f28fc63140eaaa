// Package bigraph defines the fixed bipartite instance the crossing
// oracle and reducer operate on: a top partition A with a frozen ordering
// and a bottom partition B whose permutation is free.
//
// Vertex identity follows the DIMACS convention: A is indexed 0..nA-1, B is
// indexed 0..nB-1, and the union uses offset nA for B so an original graph
// can be rebuilt from a bigraph.Graph alone. A Graph is built once by a
// parser and never mutated afterward — all recursive work happens on
// WeightedVertex slices (sub-instances), never on the Graph itself.
//
// This package plays the role the teacher's core package plays for lvlath:
// the fundamental, lock-free value types every other package imports.
// Unlike core.Graph, a bigraph.Graph is immutable after NewGraph and so
// carries no mutex — nothing here is mutated concurrently with a solve.
package bigraph
