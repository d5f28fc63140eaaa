package dp

import "errors"

// ErrBudgetExceeded is returned by Solve when the sub-instance's estimated
// time or memory cost exceeds the configured Budget; callers should fall
// back to the ILP optimizer.
var ErrBudgetExceeded = errors.New("dp: estimated cost exceeds budget")
