package bigraph

import "errors"

// Sentinel errors for bigraph construction and queries. Callers should use
// errors.Is; messages are not part of the contract.
var (
	// ErrBadPartitionSize indicates nA or nB was negative.
	ErrBadPartitionSize = errors.New("bigraph: negative partition size")

	// ErrEdgeOutOfRange indicates an edge endpoint fell outside its partition.
	ErrEdgeOutOfRange = errors.New("bigraph: edge endpoint out of range")

	// ErrVertexOutOfRange indicates a vertex query index is outside its
	// partition: [0, nA) for A-vertex queries, [0, nB) for B-vertex queries.
	ErrVertexOutOfRange = errors.New("bigraph: vertex index out of range")
)
