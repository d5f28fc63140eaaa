package dimacs

import "errors"

// ErrMalformedHeader is returned when the `p ocr`/`p tww` problem line is
// missing, has the wrong number of fields, or names an unknown format.
var ErrMalformedHeader = errors.New("dimacs: malformed problem line")

// ErrVertexOutOfRange is returned when an edge endpoint falls outside its
// declared partition (ocr) or vertex count (tww).
var ErrVertexOutOfRange = errors.New("dimacs: vertex index out of range")

// ErrEdgeCountMismatch is returned when fewer or more edge lines are
// present than the header declared.
var ErrEdgeCountMismatch = errors.New("dimacs: edge count does not match header")
