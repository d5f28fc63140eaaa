// Package trigraph maintains the black/red multigraph a twin-width
// contraction sequence operates on: black edges carry the original graph's
// adjacency, red edges mark vertex pairs whose neighborhoods have already
// started to disagree because of earlier contractions. Width is the
// maximum red-degree over all currently-alive vertices.
package trigraph
