package ilp

import "errors"

// ErrInfeasible is returned by a Backend when no assignment satisfies every
// transitivity constraint. For a correctly built Problem this should never
// happen — transitivity over a tournament is always satisfiable — so a
// Backend returning it signals a bug in that Backend, not the caller.
var ErrInfeasible = errors.New("ilp: no feasible assignment found")

// ErrDeadlineExceeded is returned by a Backend whose soft time budget (if
// any) expired before a feasible assignment was found.
var ErrDeadlineExceeded = errors.New("ilp: search deadline exceeded")
