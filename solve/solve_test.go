package solve_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/solve"
	"github.com/katalvlaran/banana/trigraph"
)

func TestRunOCM_ButterflyFindsZeroCrossings(t *testing.T) {
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{{A: 0, B: 1}, {A: 1, B: 0}})
	require.NoError(t, err)

	order, crossings, err := solve.RunOCM(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 0, crossings)
	assert.ElementsMatch(t, []int{0, 1}, order)
}

func TestRunTWW_PathOfThreeWidthZero(t *testing.T) {
	g := trigraph.New(3, []trigraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})

	pairs, width, err := solve.RunTWW(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 0, width)
	assert.Len(t, pairs, 2)
}

// TestRunOCM_NonCrossingScenario mirrors the DIMACS instance
// "p ocr 2 2 2 / 1 3 / 2 4": already non-crossing, optimum = 0, output
// "3\n4\n" (0-indexed order [0,1]).
func TestRunOCM_NonCrossingScenario(t *testing.T) {
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{{A: 0, B: 0}, {A: 1, B: 1}})
	require.NoError(t, err)

	order, crossings, err := solve.RunOCM(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 0, crossings)
	assert.Equal(t, []int{0, 1}, order)
}

// TestRunOCM_CompleteBipartiteScenario mirrors the DIMACS instance
// "p ocr 2 2 4 / 1 3 / 1 4 / 2 3 / 2 4": complete bipartite 2x2, optimum = 1,
// both orders [0,1] and [1,0] achieve it.
func TestRunOCM_CompleteBipartiteScenario(t *testing.T) {
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{
		{A: 0, B: 0}, {A: 0, B: 1}, {A: 1, B: 0}, {A: 1, B: 1},
	})
	require.NoError(t, err)

	order, crossings, err := solve.RunOCM(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 1, crossings)
	assert.Contains(t, [][]int{{0, 1}, {1, 0}}, order)
}

// TestRunOCM_AllNonOrientablePairsScenario mirrors the DIMACS instance
// "p ocr 3 3 4 / 1 4 / 2 5 / 3 6 / 3 4": every B-pair is non-orientable
// (nested or disjoint A-intervals), yet the optimum is still 1, achieved by
// two tied orders — [0,1,2] and [1,0,2] (1-indexed B-ids "4 5 6"/"5 4 6") —
// since the FREE convention only breaks a tie when the forced crossing
// counts it is substituting are themselves equal.
func TestRunOCM_AllNonOrientablePairsScenario(t *testing.T) {
	g, err := bigraph.NewGraph(3, 3, []bigraph.Edge{
		{A: 0, B: 0}, {A: 1, B: 1}, {A: 2, B: 2}, {A: 2, B: 0},
	})
	require.NoError(t, err)

	order, crossings, err := solve.RunOCM(context.Background(), g)
	require.NoError(t, err)
	assert.Equal(t, 1, crossings)
	assert.Contains(t, [][]int{{0, 1, 2}, {1, 0, 2}}, order)
}
