package dp

import (
	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
	"github.com/katalvlaran/banana/rational"
)

// directionalCost returns the number of crossings incurred when vi is
// placed before vj: the count of pairs (a in N(vi), a' in N(vj)) with
// a' < a, scaled by the two vertices' twin-merge weights.
//
// Unlike oracle.Crossings this is defined for every pair, not only
// orientable ones — crossing.Matrix only records orientable pairs because
// those are the only ones whose value depends on direction, but the DP
// optimizer needs a cost for every ordered pair it considers, so it
// recomputes the pairwise count directly from neighbor lists rather than
// going through the matrix.
func directionalCost(o *oracle.Oracle, vi, vj bigraph.WeightedVertex) (int, error) {
	ni, err := o.Neighborhood(vi.ID)
	if err != nil {
		return 0, err
	}
	nj, err := o.Neighborhood(vj.ID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, a := range ni {
		for _, b := range nj {
			if b < a {
				count++
			}
		}
	}

	weighted := vi.W.Mul(vj.W).Mul(rational.FromInt(int64(count)))
	n, err := weighted.Int()
	if err != nil {
		return 0, oracle.ErrNonIntegralCrossings
	}

	return int(n), nil
}
