package bigraph

import "github.com/katalvlaran/banana/rational"

// WeightedVertex is a (id, w) pair: id names a B-vertex of the original
// Graph, w is its twin-merge weight. An unmerged vertex always carries
// rational.One.
type WeightedVertex struct {
	ID int
	W  rational.Fraction
}

// SubInstance is an ordered multiset of WeightedVertex — the unit every
// reducer rule and optimizer consumes. The original Graph is never part of
// a SubInstance; it is threaded separately via the oracle.
type SubInstance []WeightedVertex

// IDs returns the plain B-vertex ids in order, discarding weights.
func (s SubInstance) IDs() []int {
	ids := make([]int, len(s))
	for i, v := range s {
		ids[i] = v.ID
	}

	return ids
}

// Clone returns a shallow copy safe to mutate independently of s.
func (s SubInstance) Clone() SubInstance {
	out := make(SubInstance, len(s))
	copy(out, s)

	return out
}

// FromIDs builds a SubInstance where every vertex carries weight One, the
// starting point before any twin-merge has happened.
func FromIDs(ids []int) SubInstance {
	out := make(SubInstance, len(ids))
	for i, id := range ids {
		out[i] = WeightedVertex{ID: id, W: rational.One}
	}

	return out
}
