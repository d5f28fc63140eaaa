// Package sattww is the SAT optimizer for twin-width: it encodes a
// contraction-sequence search as a CNF over order, parent, and red-edge
// variables and binary-searches the smallest satisfiable red-degree bound,
// following the parent+order encoding and totalizer cardinality network of
// the reference solver this package is grounded on.
//
// As with ilp.Backend, no real Go CDCL SAT binding exists in this module's
// dependency surface, so Backend is the seam: Encode (encode.go) builds the
// CNF, Search (search.go) runs the bound search, and Backend.Solve decides
// each formula, with one grounded reference implementation
// (backend.go) doing plain DPLL with unit propagation — adequate for the
// small quotient instances moddecomp ever hands it.
package sattww
