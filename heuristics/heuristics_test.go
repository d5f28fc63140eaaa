package heuristics_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/heuristics"
	"github.com/katalvlaran/banana/oracle"
)

func buildGraph(t *testing.T) *bigraph.Graph {
	t.Helper()
	g, err := bigraph.NewGraph(3, 3, []bigraph.Edge{
		{A: 0, B: 1},
		{A: 1, B: 0},
		{A: 2, B: 2},
	})
	require.NoError(t, err)

	return g
}

func TestBarycenter_IsPermutation(t *testing.T) {
	g := buildGraph(t)
	order := heuristics.Barycenter(g)
	assert.ElementsMatch(t, []int{0, 1, 2}, order)
}

func TestMedian_IsPermutation(t *testing.T) {
	g := buildGraph(t)
	order := heuristics.Median(g)
	assert.ElementsMatch(t, []int{0, 1, 2}, order)
}

func TestBarycenter_ImprovesOverIdentityOnButterfly(t *testing.T) {
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{
		{A: 0, B: 1},
		{A: 1, B: 0},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	order := heuristics.Barycenter(g)
	got, err := o.NumberOfCrossings(order)
	require.NoError(t, err)
	identity, err := o.NumberOfCrossings([]int{0, 1})
	require.NoError(t, err)
	assert.LessOrEqual(t, got, identity)
}
