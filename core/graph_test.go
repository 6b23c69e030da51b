package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/goldrush/core"
)

// unitMatrix builds a complete n×n matrix with every off-diagonal distance 1.
func unitMatrix(n int) [][]float64 {
	m := make([][]float64, n)
	for i := range m {
		m[i] = make([]float64, n)
		for j := range m[i] {
			if i != j {
				m[i][j] = 1
			}
		}
	}

	return m
}

func TestNew_ValidInstance(t *testing.T) {
	g, err := core.New(unitMatrix(5), []float64{0, 3, 5, 2, 4})
	require.NoError(t, err)

	assert.Equal(t, 5, g.N())
	assert.Equal(t, 1.0, g.Dist(1, 4))
	assert.Equal(t, 0.0, g.Dist(2, 2))
	assert.Equal(t, 5.0, g.Gold(2))
	assert.Equal(t, 0.0, g.Gold(core.Depot))
	assert.Equal(t, 14.0, g.TotalGold())
	assert.Equal(t, 1.0, g.Density())
	assert.True(t, g.HasEdge(0, 3))
	assert.False(t, g.HasEdge(3, 3))
}

func TestNew_Immutability(t *testing.T) {
	dist := unitMatrix(3)
	gold := []float64{0, 1, 2}
	g, err := core.New(dist, gold)
	require.NoError(t, err)

	// Mutating the caller's slices must not leak into the instance.
	dist[0][1] = 99
	gold[1] = 99
	assert.Equal(t, 1.0, g.Dist(0, 1))
	assert.Equal(t, 1.0, g.Gold(1))
}

func TestNew_MissingEdgesAndDensity(t *testing.T) {
	inf := math.Inf(1)
	dist := [][]float64{
		{0, 2, inf},
		{2, 0, 3},
		{inf, 3, 0},
	}
	g, err := core.New(dist, []float64{0, 1, 1})
	require.NoError(t, err)

	assert.False(t, g.HasEdge(0, 2))
	assert.True(t, math.IsInf(g.Dist(0, 2), 1))
	// 2 finite edges of 3 possible pairs.
	assert.InDelta(t, 2.0/3.0, g.Density(), 1e-12)
}

func TestNew_Validation(t *testing.T) {
	inf := math.Inf(1)

	t.Run("empty matrix → ErrNonSquare", func(t *testing.T) {
		_, err := core.New(nil, nil)
		assert.ErrorIs(t, err, core.ErrNonSquare)
	})

	t.Run("ragged rows → ErrNonSquare", func(t *testing.T) {
		_, err := core.New([][]float64{{0, 1}, {1}}, []float64{0, 1})
		assert.ErrorIs(t, err, core.ErrNonSquare)
	})

	t.Run("n=1 → ErrDimensionMismatch", func(t *testing.T) {
		_, err := core.New([][]float64{{0}}, []float64{0})
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})

	t.Run("NaN entry → ErrDimensionMismatch", func(t *testing.T) {
		m := unitMatrix(3)
		m[0][1] = math.NaN()
		_, err := core.New(m, []float64{0, 1, 1})
		assert.ErrorIs(t, err, core.ErrDimensionMismatch)
	})

	t.Run("non-zero diagonal → ErrNonZeroDiagonal", func(t *testing.T) {
		m := unitMatrix(3)
		m[1][1] = 0.5
		_, err := core.New(m, []float64{0, 1, 1})
		assert.ErrorIs(t, err, core.ErrNonZeroDiagonal)
	})

	t.Run("asymmetric weights → ErrAsymmetry", func(t *testing.T) {
		m := unitMatrix(3)
		m[0][1] = 2
		_, err := core.New(m, []float64{0, 1, 1})
		assert.ErrorIs(t, err, core.ErrAsymmetry)
	})

	t.Run("one-sided missing edge → ErrAsymmetry", func(t *testing.T) {
		m := unitMatrix(3)
		m[0][2] = inf // m[2][0] stays finite
		_, err := core.New(m, []float64{0, 1, 1})
		assert.ErrorIs(t, err, core.ErrAsymmetry)
	})

	t.Run("negative distance → ErrNegativeWeight", func(t *testing.T) {
		m := unitMatrix(3)
		m[0][1], m[1][0] = -1, -1
		_, err := core.New(m, []float64{0, 1, 1})
		assert.ErrorIs(t, err, core.ErrNegativeWeight)
	})

	t.Run("gold length mismatch → ErrBadGold", func(t *testing.T) {
		_, err := core.New(unitMatrix(3), []float64{0, 1})
		assert.ErrorIs(t, err, core.ErrBadGold)
	})

	t.Run("negative gold → ErrBadGold", func(t *testing.T) {
		_, err := core.New(unitMatrix(3), []float64{0, -1, 1})
		assert.ErrorIs(t, err, core.ErrBadGold)
	})

	t.Run("gold at depot → ErrBadGold", func(t *testing.T) {
		_, err := core.New(unitMatrix(3), []float64{1, 1, 1})
		assert.ErrorIs(t, err, core.ErrBadGold)
	})
}

func TestDist_OutOfRangeIsInfinite(t *testing.T) {
	g, err := core.New(unitMatrix(3), []float64{0, 1, 1})
	require.NoError(t, err)

	assert.True(t, math.IsInf(g.Dist(-1, 0), 1))
	assert.True(t, math.IsInf(g.Dist(0, 3), 1))
	assert.Equal(t, 0.0, g.Gold(17))
}
