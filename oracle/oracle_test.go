package oracle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/oracle"
	"github.com/katalvlaran/banana/rational"
)

func butterfly(t *testing.T) *bigraph.Graph {
	t.Helper()
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{
		{A: 0, B: 1},
		{A: 1, B: 0},
	})
	require.NoError(t, err)

	return g
}

func TestNumberOfCrossings_ButterflyBothOrders(t *testing.T) {
	g := butterfly(t)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	c, err := o.NumberOfCrossings([]int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	c, err = o.NumberOfCrossings([]int{1, 0})
	require.NoError(t, err)
	assert.Equal(t, 0, c)
}

func TestVerify(t *testing.T) {
	g := butterfly(t)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	ok, err := o.Verify([]int{0, 1}, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = o.Verify([]int{0, 1}, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCrossings_WeightedIntegral(t *testing.T) {
	// B=0 on columns {0,2} and B=1 on {1,3} interleave, with c(0,1) = 1.
	g, err := bigraph.NewGraph(4, 2, []bigraph.Edge{
		{A: 0, B: 0}, {A: 2, B: 0},
		{A: 1, B: 1}, {A: 3, B: 1},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	half, err := rational.New(1, 2)
	require.NoError(t, err)
	vi := bigraph.WeightedVertex{ID: 0, W: rational.FromInt(2)}
	vj := bigraph.WeightedVertex{ID: 1, W: half}

	got, err := o.Crossings(vi, vj)
	require.NoError(t, err)
	assert.Equal(t, 1, got)
}

func TestCrossings_NotOrientable(t *testing.T) {
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{
		{A: 0, B: 0},
		{A: 1, B: 1},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	_, err = o.Crossings(bigraph.WeightedVertex{ID: 0, W: rational.One}, bigraph.WeightedVertex{ID: 1, W: rational.One})
	assert.ErrorIs(t, err, oracle.ErrVertexNotOrientable)
}

func TestCompressedIntervals(t *testing.T) {
	g := butterfly(t)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	sub := bigraph.FromIDs([]int{0, 1})
	ci := o.CompressedIntervals(sub)
	require.Len(t, ci, 2)
	// Both vertices have single-point intervals at distinct A columns, so
	// ranks must differ.
	assert.NotEqual(t, ci[0], ci[1])
}
