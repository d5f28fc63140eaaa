package reducer

import "errors"

// ErrEmptyInstance names a zero-length sub-instance. Pipeline.Solve does
// not return it: an empty sub-instance yields an empty order and a nil error.
var ErrEmptyInstance = errors.New("reducer: empty sub-instance")
