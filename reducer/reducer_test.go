package reducer_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
	"github.com/katalvlaran/banana/reducer"
)

func TestKillIsolated(t *testing.T) {
	g, err := bigraph.NewGraph(2, 3, []bigraph.Edge{{A: 0, B: 0}})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	sub := bigraph.FromIDs([]int{0, 1, 2})
	kept, isolated := reducer.KillIsolated(sub, o)
	assert.Equal(t, []int{0}, kept.IDs())
	assert.ElementsMatch(t, []int{1, 2}, isolated.IDs())
}

func TestTwins_MergesIdenticalNeighborhoods(t *testing.T) {
	g, err := bigraph.NewGraph(2, 3, []bigraph.Edge{
		{A: 0, B: 0}, {A: 1, B: 0},
		{A: 0, B: 1}, {A: 1, B: 1},
		{A: 0, B: 2},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	sub := bigraph.FromIDs([]int{0, 1, 2})
	merged, groups := reducer.Twins(sub, o)
	require.Len(t, groups, 1)
	assert.Len(t, merged, 2)

	var repWeight int64
	for _, m := range merged {
		if m.ID == groups[0].Representative.ID {
			repWeight = m.W.MustInt()
		}
	}
	assert.Equal(t, int64(2), repWeight)
}

func TestTwins_ExpandRestoresOriginalIDs(t *testing.T) {
	groups := []reducer.TwinGroup{
		{
			Representative: bigraph.WeightedVertex{ID: 0},
			Members: bigraph.SubInstance{
				{ID: 0},
				{ID: 5},
			},
		},
	}
	out := reducer.Expand([]int{0, 3}, groups)
	assert.Equal(t, []int{0, 5, 3}, out)
}

func TestCutByPieces_SplitsDisjointIntervals(t *testing.T) {
	g, err := bigraph.NewGraph(4, 2, []bigraph.Edge{
		{A: 0, B: 0}, {A: 1, B: 0},
		{A: 2, B: 1}, {A: 3, B: 1},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	sub := bigraph.FromIDs([]int{0, 1})
	pieces, ok := reducer.CutByPieces(sub, o)
	require.True(t, ok)
	assert.Len(t, pieces, 2)
}

func TestCutByPieces_SingleConnectedPieceReportsFalse(t *testing.T) {
	g, err := bigraph.NewGraph(4, 2, []bigraph.Edge{
		{A: 0, B: 0}, {A: 2, B: 0},
		{A: 1, B: 1}, {A: 3, B: 1},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	sub := bigraph.FromIDs([]int{0, 1})
	_, ok := reducer.CutByPieces(sub, o)
	assert.False(t, ok)
}

// bruteLeaf is a trivial ExactSolver used only in tests: it tries every
// permutation of the sub-instance and returns the best one.
type bruteLeaf struct {
	o *oracle.Oracle
}

func (b bruteLeaf) Solve(sub bigraph.SubInstance) ([]int, int, error) {
	ids := sub.IDs()
	best := append([]int(nil), ids...)
	bestCost, err := b.o.NumberOfCrossings(best)
	if err != nil {
		return nil, 0, err
	}

	permute(ids, func(p []int) {
		cost, err := b.o.NumberOfCrossings(p)
		if err == nil && cost < bestCost {
			bestCost = cost
			best = append([]int(nil), p...)
		}
	})

	return best, bestCost, nil
}

func permute(a []int, visit func([]int)) {
	var helper func(k int)
	helper = func(k int) {
		if k == len(a) {
			visit(a)

			return
		}
		for i := k; i < len(a); i++ {
			a[k], a[i] = a[i], a[k]
			helper(k + 1)
			a[k], a[i] = a[i], a[k]
		}
	}
	helper(0)
}

func TestPipeline_SolvesButterflyOptimally(t *testing.T) {
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{
		{A: 0, B: 1}, {A: 1, B: 0},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	p := reducer.New(bruteLeaf{o: o})
	sub := bigraph.FromIDs([]int{0, 1})
	order, err := p.Solve(sub, o)
	require.NoError(t, err)

	got, err := o.NumberOfCrossings(order)
	require.NoError(t, err)
	assert.Equal(t, 0, got)
	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	assert.Equal(t, []int{0, 1}, sorted)
}
