package op_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goldrush/core"
	"github.com/katalvlaran/goldrush/dijkstra"
	"github.com/katalvlaran/goldrush/op"
)

// costTol is the relative tolerance for cost comparisons in tests. It matches
// the engine's 1e-9 stabilization grain.
const costTol = 1e-9

// unitDist returns an n×n complete distance matrix with every off-diagonal
// entry 1. Intra-route order is cost-neutral on such instances, which makes
// optima easy to reason about by hand.
func unitDist(n int) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			if i != j {
				d[i][j] = 1
			}
		}
	}

	return d
}

// lineDist returns an n-node path graph 0—1—…—(n−1) with unit edges and
// every non-adjacent pair missing (+Inf).
func lineDist(n int) [][]float64 {
	inf := math.Inf(1)
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
		for j := range d[i] {
			switch {
			case i == j:
				d[i][j] = 0
			case i-j == 1 || j-i == 1:
				d[i][j] = 1
			default:
				d[i][j] = inf
			}
		}
	}

	return d
}

// randDist returns a random symmetric complete matrix with entries in [1, 5).
func randDist(n int, rng *rand.Rand) [][]float64 {
	d := make([][]float64, n)
	for i := range d {
		d[i] = make([]float64, n)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			w := 1 + 4*rng.Float64()
			d[i][j] = w
			d[j][i] = w
		}
	}

	return d
}

// randGold returns a gold vector with depot 0 and node amounts in [1, 10).
func randGold(n int, rng *rand.Rand) []float64 {
	g := make([]float64, n)
	for v := 1; v < n; v++ {
		g[v] = 1 + 9*rng.Float64()
	}

	return g
}

// mustGraph builds a core.Graph or fails the test.
func mustGraph(t *testing.T, dist [][]float64, gold []float64) *core.Graph {
	t.Helper()
	g, err := core.New(dist, gold)
	require.NoError(t, err)

	return g
}

// mustCache builds a dijkstra.Cache or fails the test.
func mustCache(t *testing.T, g *core.Graph) *dijkstra.Cache {
	t.Helper()
	c, err := dijkstra.NewCache(g)
	require.NoError(t, err)

	return c
}

// testOptions returns a fully specified Options value, so the search loops
// can be driven directly without the dispatcher's knob derivation.
func testOptions() op.Options {
	return op.Options{
		Alpha:            1,
		Beta:             1,
		Seed:             7,
		PopulationSize:   12,
		Generations:      60,
		TripHCIters:      50,
		NeighborK:        4,
		TournamentSize:   3,
		SplitHint:        3,
		DensityThreshold: 0.8,
		Restarts:         1,
	}
}

// requireCostsEqual compares two costs under relative tolerance, treating
// equal infinities as equal.
func requireCostsEqual(t *testing.T, want, got float64) {
	t.Helper()
	if math.IsInf(want, 1) && math.IsInf(got, 1) {
		return
	}
	scale := math.Max(1, math.Max(math.Abs(want), math.Abs(got)))
	require.InDelta(t, want, got, costTol*scale)
}

// requireValid audits the structural invariants of sol.
func requireValid(t *testing.T, sol *op.Solution, ev *op.Evaluator) {
	t.Helper()
	require.NoError(t, op.Validate(sol, ev))
}
