package dp

import (
	"sort"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
)

// Budget gates whether the DP optimizer is worth attempting on a given
// sub-instance, following estimate_time/estimate_memory from the source
// this package is grounded on.
type Budget struct {
	MaxTime   int64
	MaxMemory int64
}

// DefaultBudget matches the reference implementation's conservative default:
// comfortable for bags up to ~20 concurrent vertices.
func DefaultBudget() Budget {
	return Budget{MaxTime: 1 << 24, MaxMemory: 1 << 24}
}

const sizeofInt = 8

// bagSizes returns, for the path-like decomposition of sub derived from its
// intervals, the number of concurrently-active (inserted, not yet
// forgotten) vertices at each event — the "bag_sizes" array the feasibility
// estimate sums over.
func bagSizes(sub bigraph.SubInstance, o *oracle.Oracle) []int {
	type ev struct {
		coord int
		delta int
		// order ties so INSERT (delta +1) resolves before FORGET (delta -1)
		// at the same coordinate, matching a closed bag: a vertex is forgotten
		// only once its right endpoint has passed, so no count goes negative.
		rank int
	}
	ivs := o.CompressedIntervals(sub)
	events := make([]ev, 0, 2*len(ivs))
	for _, iv := range ivs {
		events = append(events, ev{coord: iv[0], delta: 1, rank: 0})
		events = append(events, ev{coord: iv[1], delta: -1, rank: 1})
	}
	sort.Slice(events, func(i, j int) bool {
		if events[i].coord != events[j].coord {
			return events[i].coord < events[j].coord
		}

		return events[i].rank < events[j].rank
	})

	sizes := make([]int, 0, len(events))
	active := 0
	for _, e := range events {
		active += e.delta
		sizes = append(sizes, active)
	}

	return sizes
}

// Feasible reports whether running the DP over sub is within b's bounds.
func Feasible(sub bigraph.SubInstance, o *oracle.Oracle, b Budget) bool {
	sizes := bagSizes(sub, o)
	var estTime, estMem int64
	for _, s := range sizes {
		pow := int64(1) << uint(s)
		estTime += pow * int64(s)
		estMem += pow * sizeofInt
	}

	return estTime <= b.MaxTime && estMem <= b.MaxMemory
}
