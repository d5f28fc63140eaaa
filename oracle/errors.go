package oracle

import "errors"

// ErrNonIntegralCrossings is returned by Crossings when a weighted crossing
// count (weight(i) * weight(j) * c(i,j)) fails to reduce to a whole number.
// This can only happen if a caller passes weights that were not produced by
// the reducer's twin-merge rule, so it signals a programming error upstream.
var ErrNonIntegralCrossings = errors.New("oracle: weighted crossing count is not integral")

// ErrVertexNotOrientable is returned by Crossings when the requested pair is
// not present in the underlying crossing.Matrix.
var ErrVertexNotOrientable = errors.New("oracle: pair is not orientable")
