package trigraph

import "errors"

// ErrInvalidContraction is returned by Contract when u == v or either
// vertex is already dead (previously contracted away).
var ErrInvalidContraction = errors.New("trigraph: invalid contraction")
