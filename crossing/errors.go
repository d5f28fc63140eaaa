package crossing

import "errors"

// ErrInvariantViolated is returned by Build when the two-pass sweep leaves
// the active set non-empty at the end of A — an internal consistency bug,
// never a user-input error. Per spec §7, this is fatal and never retried.
var ErrInvariantViolated = errors.New("crossing: invariant violated: active set non-empty after sweep")
