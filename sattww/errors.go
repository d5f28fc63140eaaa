package sattww

import "errors"

// ErrUnsat names an unsatisfiable CNF. DPLL does not return it: a Backend
// reports unsatisfiability through its sat result, and Search treats any
// non-nil error as a failure.
var ErrUnsat = errors.New("sattww: formula is unsatisfiable")

// ErrNoBoundFound is returned by Search when the [lb, ub] window collapses
// without ever finding a satisfiable bound — a defensive check since a
// correctly seeded ub from GreedyBounds is always itself satisfiable.
var ErrNoBoundFound = errors.New("sattww: no satisfiable red-degree bound found")
