package ilp_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/banana/bigraph"
	"github.com/katalvlaran/banana/ilp"
	"github.com/katalvlaran/banana/oracle"
)

func butterfly(t *testing.T) (*bigraph.Graph, *oracle.Oracle) {
	t.Helper()
	g, err := bigraph.NewGraph(2, 2, []bigraph.Edge{
		{A: 0, B: 1}, {A: 1, B: 0},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	return g, o
}

func TestSolver_ButterflyFindsOptimalOrder(t *testing.T) {
	_, o := butterfly(t)
	s := ilp.NewSolver(o, nil, ilp.Simple)

	order, crossings, err := s.Solve(bigraph.FromIDs([]int{0, 1}))
	require.NoError(t, err)
	assert.Equal(t, 0, crossings)
	assert.Equal(t, []int{1, 0}, order)
}

func TestSolver_ShorterAndQuadraticAgreeWithSimple(t *testing.T) {
	g, err := bigraph.NewGraph(4, 4, []bigraph.Edge{
		{A: 0, B: 0}, {A: 2, B: 0},
		{A: 1, B: 1}, {A: 3, B: 1},
		{A: 0, B: 2}, {A: 3, B: 2},
		{A: 1, B: 3}, {A: 2, B: 3},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	sub := bigraph.FromIDs([]int{0, 1, 2, 3})
	var costs []int
	for _, v := range []ilp.Variant{ilp.Simple, ilp.Shorter, ilp.Quadratic} {
		s := ilp.NewSolver(o, nil, v)
		_, crossings, err := s.Solve(sub)
		require.NoError(t, err)
		costs = append(costs, crossings)
	}
	assert.Equal(t, costs[0], costs[1])
	assert.Equal(t, costs[0], costs[2])
}

func TestBuildProblem_SkipsNonOrientableTriangles(t *testing.T) {
	_, o := butterfly(t)
	p, err := ilp.BuildProblem(bigraph.FromIDs([]int{0, 1}), o, ilp.Simple)
	require.NoError(t, err)
	// The butterfly's two single-point intervals are disjoint, so the pair
	// is not orientable and gets no variable.
	assert.Len(t, p.Vars, 0)
	assert.Empty(t, p.Triangles)
}

func TestSolver_PrefixConstraintsAgreeWithUnconstrained(t *testing.T) {
	g, err := bigraph.NewGraph(4, 4, []bigraph.Edge{
		{A: 0, B: 0}, {A: 2, B: 0},
		{A: 1, B: 1}, {A: 3, B: 1},
		{A: 0, B: 2}, {A: 3, B: 2},
		{A: 1, B: 3}, {A: 2, B: 3},
	})
	require.NoError(t, err)
	o, err := oracle.Build(g)
	require.NoError(t, err)

	sub := bigraph.FromIDs([]int{0, 1, 2, 3})
	base := ilp.NewSolver(o, nil, ilp.Simple)
	_, wantCrossings, err := base.Solve(sub)
	require.NoError(t, err)

	for _, mode := range []ilp.PrefixMode{ilp.PrefixX, ilp.PrefixY, ilp.PrefixBoth} {
		s := ilp.NewSolver(o, nil, ilp.Simple)
		s.Prefix = mode
		_, crossings, err := s.Solve(sub)
		require.NoError(t, err)
		assert.Equal(t, wantCrossings, crossings)
	}
}

// randomBipartite builds a graph with an independent Bernoulli(p) coin per
// (a, b) pair.
func randomBipartite(rng *rand.Rand, nA, nB int, p float64) (*bigraph.Graph, error) {
	var edges []bigraph.Edge
	for a := 0; a < nA; a++ {
		for b := 0; b < nB; b++ {
			if rng.Float64() < p {
				edges = append(edges, bigraph.Edge{A: a, B: b})
			}
		}
	}

	return bigraph.NewGraph(nA, nB, edges)
}

// bruteForceOCM tries every permutation of 0..n-1 and returns the minimum
// crossing count, the textbook definition the optimizer is checked against.
func bruteForceOCM(o *oracle.Oracle, n int) (int, error) {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i
	}
	best := -1
	var permErr error
	permute(ids, func(p []int) {
		cost, err := o.NumberOfCrossings(p)
		if err != nil {
			permErr = err

			return
		}
		if best == -1 || cost < best {
			best = cost
		}
	})

	return best, permErr
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

// TestSolver_MatchesBruteForceOnRandomBipartiteGraphs covers §8's property:
// for random bipartite graphs up to n=8, the ILP objective matches the
// brute-force permutation minimum.
func TestSolver_MatchesBruteForceOnRandomBipartiteGraphs(t *testing.T) {
	rng := rand.New(rand.NewSource(20260729))
	sizes := []int{2, 3, 4, 5, 6, 7, 8, 6}
	for _, n := range sizes {
		g, err := randomBipartite(rng, n, n, 0.35)
		require.NoError(t, err)
		o, err := oracle.Build(g)
		require.NoError(t, err)

		want, err := bruteForceOCM(o, n)
		require.NoError(t, err)

		ids := make([]int, n)
		for i := range ids {
			ids[i] = i
		}
		s := ilp.NewSolver(o, nil, ilp.Simple)
		_, got, err := s.Solve(bigraph.FromIDs(ids))
		require.NoError(t, err)
		assert.Equal(t, want, got, "n=%d", n)
	}
}

func TestBuildProblem_SeedsHeuristicCut(t *testing.T) {
	_, o := butterfly(t)
	p, err := ilp.BuildProblem(bigraph.FromIDs([]int{0, 1}), o, ilp.Simple)
	require.NoError(t, err)
	require.NotNil(t, p.HeuristicAssign)
	assert.ElementsMatch(t, []int{0, 1}, p.HeuristicOrder)
	// The heuristic incumbent can never beat the true optimum, and on this
	// butterfly instance the optimum is 0.
	assert.GreaterOrEqual(t, p.HeuristicCost, 0)
}
