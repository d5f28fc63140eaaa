// Package rational implements a minimal exact fraction type used to weight
// merged (twin) vertices during crossing-minimization preprocessing.
//
// Fractions are represented as a normalized (numerator, denominator) pair of
// int64, reduced to lowest terms with a positive denominator at construction
// time — never as math/big.Rat. Twin-merge weights stay small (bounded by
// the instance size) and every arithmetic result that reaches the crossing
// oracle must reduce back to an integer; a fixed-width pair lets that check
// be a single denominator comparison instead of a big.Int comparison, and keeps Fraction
// cheap to copy through the recursive reducer.
package rational
