package bigraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/bigraph"
)

func sampleGraph(t *testing.T) *bigraph.Graph {
	t.Helper()
	g, err := bigraph.NewGraph(3, 3, []bigraph.Edge{
		{A: 0, B: 0},
		{A: 1, B: 1},
		{A: 2, B: 2},
		{A: 0, B: 2},
	})
	require.NoError(t, err)

	return g
}

func TestNewGraph_SortsAdjacency(t *testing.T) {
	g := sampleGraph(t)
	nb, err := g.NeighborsB(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 2}, nb)
}

func TestNewGraph_RejectsOutOfRangeEdges(t *testing.T) {
	_, err := bigraph.NewGraph(2, 2, []bigraph.Edge{{A: 5, B: 0}})
	assert.ErrorIs(t, err, bigraph.ErrEdgeOutOfRange)

	_, err = bigraph.NewGraph(-1, 2, nil)
	assert.ErrorIs(t, err, bigraph.ErrBadPartitionSize)
}

func TestInterval(t *testing.T) {
	g := sampleGraph(t)
	l, r, ok := g.Interval(2)
	require.True(t, ok)
	assert.Equal(t, 0, l)
	assert.Equal(t, 2, r)

	g2, err := bigraph.NewGraph(1, 1, nil)
	require.NoError(t, err)
	_, _, ok = g2.Interval(0)
	assert.False(t, ok)
	assert.True(t, g2.IsolatedB(0))
}

func TestSubInstance(t *testing.T) {
	s := bigraph.FromIDs([]int{2, 0, 1})
	assert.Equal(t, []int{2, 0, 1}, s.IDs())

	clone := s.Clone()
	clone[0].ID = 99
	assert.Equal(t, 2, s[0].ID, "Clone must not alias the backing array")
}
