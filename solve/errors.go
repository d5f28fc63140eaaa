package solve

import "errors"

// ErrParse wraps a lower-level parse failure (dimacs.ErrMalformedHeader,
// bigraph.ErrEdgeOutOfRange, ...) for callers that only care about the
// top-level error taxonomy.
var ErrParse = errors.New("solve: parse error")

// ErrInvariantViolated wraps an internal invariant failure (crossing's
// active-set check, a non-integral weighted crossing count, a decoded
// order of the wrong length) — always a bug, never a user input problem.
var ErrInvariantViolated = errors.New("solve: invariant violated")

// ErrSolver wraps a back-end reporting a non-optimal/infeasible status.
var ErrSolver = errors.New("solve: solver error")

// ErrVerificationFailed is returned when an external or internal audit
// disagrees with the computed objective.
var ErrVerificationFailed = errors.New("solve: verification failed")
