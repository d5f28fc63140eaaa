// Package oracle is the read-only facade every reducer rule and optimizer
// consults: it pairs a bigraph.Graph with its crossing.Matrix and answers
// neighborhood, interval, and crossing-count queries, including the
// Fenwick-tree NumberOfCrossings used to verify a full solution.
//
// An Oracle is built once (Build) and never mutated afterward, matching the
// teacher's convention of a frozen query structure built from a core.Graph.
package oracle
