package trigraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/trigraph"
)

func TestContract_PathOfThree(t *testing.T) {
	// 0 - 1 - 2: contracting 0 into 1 leaves a red edge to 2 (1 was
	// adjacent to both 0 and 2, 0 was not adjacent to 2).
	g := trigraph.New(3, []trigraph.Edge{{U: 0, V: 1}, {U: 1, V: 2}})
	width, err := g.Contract(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, width)
	assert.False(t, g.IsAlive(0))
	assert.ElementsMatch(t, []int{1, 2}, g.Alive())
}

func TestContract_TwinsProduceNoRedEdge(t *testing.T) {
	// 0 and 1 are twins of 2 (both adjacent to 2, not to each other):
	// contracting them should not create a red edge.
	g := trigraph.New(3, []trigraph.Edge{{U: 0, V: 2}, {U: 1, V: 2}})
	width, err := g.Contract(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, width)
}

func TestContract_InvalidSelfOrDead(t *testing.T) {
	g := trigraph.New(2, []trigraph.Edge{{U: 0, V: 1}})
	_, err := g.Contract(0, 0)
	assert.ErrorIs(t, err, trigraph.ErrInvalidContraction)

	_, err = g.Contract(0, 1)
	require.NoError(t, err)
	_, err = g.Contract(0, 1)
	assert.ErrorIs(t, err, trigraph.ErrInvalidContraction)
}
