// Package heuristics produces fast, non-exact orderings of the free
// partition, used both as a baseline and as a starting point for exact
// solvers that accept a heuristic cut (ilp's heuristic-cut constraint).
package heuristics
