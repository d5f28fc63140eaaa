package reducer

import (
	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// KillIsolated partitions sub into vertices with at least one A-neighbor
// (kept, in original order) and vertices with none (isolated, in original
// order). Isolated vertices contribute zero crossings against any order and
// can be appended to a final solution at the very end.
func KillIsolated(sub bigraph.SubInstance, o *oracle.Oracle) (kept, isolated bigraph.SubInstance) {
	kept = make(bigraph.SubInstance, 0, len(sub))
	isolated = make(bigraph.SubInstance, 0)
	for _, v := range sub {
		if o.Degree(v.ID) == 0 {
			isolated = append(isolated, v)
		} else {
			kept = append(kept, v)
		}
	}

	return kept, isolated
}
