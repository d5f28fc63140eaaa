// Package dp is the bitset DP alternate optimizer for one-sided crossing
// minimization: one exact subset-mask DP over the whole sub-instance, where
// dp[mask] is the minimum crossings of placing exactly the vertices of mask
// as a prefix.
//
// Budget gates the run with a time/memory estimate taken from a path-like
// event decomposition (INSERT/FORGET of B-vertices by A-column). The
// decomposition is used only for that estimate: the DP table is not
// restricted to the vertices of one bag. When the estimate is over budget,
// Solve returns ErrBudgetExceeded and the solve driver falls back to the
// ILP optimizer.
package dp
