package dijkstra_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goldrush/core"
	"github.com/katalvlaran/goldrush/dijkstra"
)

// lineGraph builds a sparse path 0—1—2—…—(n−1) with unit edges; the shortest
// route between any pair is forced through every intermediate node.
func lineGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	inf := math.Inf(1)
	dist := make([][]float64, n)
	for i := range dist {
		dist[i] = make([]float64, n)
		for j := range dist[i] {
			switch {
			case i == j:
				dist[i][j] = 0
			case i == j+1 || j == i+1:
				dist[i][j] = 1
			default:
				dist[i][j] = inf
			}
		}
	}
	gold := make([]float64, n)
	for i := 1; i < n; i++ {
		gold[i] = 1
	}
	g, err := core.New(dist, gold)
	require.NoError(t, err)

	return g
}

func TestNewTree_LineGraphDistances(t *testing.T) {
	g := lineGraph(t, 6)
	tree, err := dijkstra.NewTree(g, 0)
	require.NoError(t, err)

	for v := 0; v < 6; v++ {
		assert.Equal(t, float64(v), tree.Dist[v], "dist to %d", v)
	}
	assert.Equal(t, []int{0, 1, 2, 3}, tree.PathTo(3))
	assert.Nil(t, tree.PathTo(17))
}

func TestNewTree_Validation(t *testing.T) {
	g := lineGraph(t, 3)

	_, err := dijkstra.NewTree(nil, 0)
	assert.ErrorIs(t, err, dijkstra.ErrNilGraph)

	_, err = dijkstra.NewTree(g, -1)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)

	_, err = dijkstra.NewTree(g, 3)
	assert.ErrorIs(t, err, dijkstra.ErrSourceOutOfRange)
}

func TestNewTree_ShortcutBeatsDetour(t *testing.T) {
	// Triangle with a heavy direct edge 0—2; going through 1 is cheaper.
	dist := [][]float64{
		{0, 1, 5},
		{1, 0, 1},
		{5, 1, 0},
	}
	g, err := core.New(dist, []float64{0, 1, 1})
	require.NoError(t, err)

	tree, err := dijkstra.NewTree(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 2.0, tree.Dist[2])
	assert.Equal(t, []int{0, 1, 2}, tree.PathTo(2))
}

func TestNewCache_UnreachableNode(t *testing.T) {
	// Node 2 is fully disconnected.
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 1, inf},
		{1, 0, inf},
		{inf, inf, 0},
	}
	g, err := core.New(dist, []float64{0, 1, 1})
	require.NoError(t, err)

	_, err = dijkstra.NewCache(g)
	assert.ErrorIs(t, err, dijkstra.ErrUnreachableNode)
}

func TestCache_DepotPaths(t *testing.T) {
	g := lineGraph(t, 5)
	c, err := dijkstra.NewCache(g)
	require.NoError(t, err)

	from, d := c.PathFromDepot(3)
	assert.Equal(t, []int{0, 1, 2, 3}, from)
	assert.Equal(t, 3.0, d)

	to, d2 := c.PathToDepot(3)
	assert.Equal(t, []int{3, 2, 1, 0}, to)
	assert.Equal(t, 3.0, d2)

	assert.Equal(t, 4.0, c.DistFromDepot(4))
	assert.True(t, math.IsInf(c.DistFromDepot(9), 1))
}

func TestCache_BetweenIsMemoizedAndCorrect(t *testing.T) {
	g := lineGraph(t, 7)
	c, err := dijkstra.NewCache(g)
	require.NoError(t, err)

	p1, d1 := c.Between(2, 5)
	assert.Equal(t, []int{2, 3, 4, 5}, p1)
	assert.Equal(t, 3.0, d1)

	// Second query from the same source hits the memoized tree.
	p2, d2 := c.Between(2, 6)
	assert.Equal(t, []int{2, 3, 4, 5, 6}, p2)
	assert.Equal(t, 4.0, d2)
}

func TestCache_KNearest(t *testing.T) {
	// Star around node 1 with graded spoke lengths.
	dist := [][]float64{
		{0, 1, 2, 3, 4},
		{1, 0, 1, 2, 3},
		{2, 1, 0, 1, 2},
		{3, 2, 1, 0, 1},
		{4, 3, 2, 1, 0},
	}
	g, err := core.New(dist, []float64{0, 1, 1, 1, 1})
	require.NoError(t, err)
	c, err := dijkstra.NewCache(g)
	require.NoError(t, err)

	// Nearest to node 2, no exclusions: 1 and 3 (dist 1), then 4 (dist 2).
	// The depot never appears.
	got := c.KNearest(2, 3, nil)
	assert.Equal(t, []int{1, 3, 4}, got)

	// Exclusions are honored and the fan-out shrinks accordingly.
	got = c.KNearest(2, 3, func(u int) bool { return u == 1 || u == 4 })
	assert.Equal(t, []int{3}, got)

	assert.Nil(t, c.KNearest(2, 0, nil))
	assert.Nil(t, c.KNearest(-1, 3, nil))
}
