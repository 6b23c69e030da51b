package core

import "math"

// Graph is an immutable goldrush problem instance.
//
// Distances are stored row-major in a flat slice (dist[u*n+v]) for
// cache-friendly reads on solver hot paths. All fields are private and
// written exactly once by New; accessors never expose internal slices.
type Graph struct {
	n    int       // number of nodes, depot included
	dist []float64 // row-major n×n distances; +Inf = missing edge
	gold []float64 // gold per node; gold[Depot] == 0

	totalGold float64 // Σ gold, precomputed
	density   float64 // finite off-diagonal pairs ÷ possible pairs
}

// New validates and deep-copies a problem instance.
//
// Contracts:
//   - dist must be square with n ≥ 2; see package doc for the full rule set.
//   - gold must have length n; the depot entry must be zero.
//
// Complexity: O(n²) time, O(n²) space.
func New(dist [][]float64, gold []float64) (*Graph, error) {
	// Stage 1: shape checks.
	n := len(dist)
	if n == 0 {
		return nil, ErrNonSquare
	}
	if n < 2 {
		return nil, ErrDimensionMismatch
	}

	var (
		i, j int
		d    float64
		flat = make([]float64, n*n)
	)
	for i = 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, ErrNonSquare
		}
	}

	// Stage 2: per-entry validation while flattening.
	// Diagonal ≈ 0, no NaN, no negatives; +Inf allowed off-diagonal.
	var edges int // finite off-diagonal entries in the upper triangle
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d = dist[i][j]
			if math.IsNaN(d) {
				return nil, ErrDimensionMismatch
			}
			if i == j {
				if math.IsInf(d, 0) {
					return nil, ErrDimensionMismatch
				}
				if math.Abs(d) > symTol {
					return nil, ErrNonZeroDiagonal
				}
				flat[i*n+j] = 0
				continue
			}
			if d < 0 {
				return nil, ErrNegativeWeight
			}
			flat[i*n+j] = d
		}
	}

	// Stage 3: symmetry over the upper triangle, counting finite edges.
	var dji float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = flat[i*n+j]
			dji = flat[j*n+i]
			if math.IsInf(d, 1) != math.IsInf(dji, 1) {
				return nil, ErrAsymmetry
			}
			if !math.IsInf(d, 1) {
				if math.Abs(d-dji) > symTol {
					return nil, ErrAsymmetry
				}
				edges++
			}
		}
	}

	// Stage 4: gold vector.
	if len(gold) != n {
		return nil, ErrBadGold
	}
	var (
		g     = make([]float64, n)
		total float64
	)
	for i = 0; i < n; i++ {
		d = gold[i]
		if math.IsNaN(d) || math.IsInf(d, 0) || d < 0 {
			return nil, ErrBadGold
		}
		g[i] = d
		total += d
	}
	if g[Depot] != 0 {
		return nil, ErrBadGold
	}

	possible := n * (n - 1) / 2

	return &Graph{
		n:         n,
		dist:      flat,
		gold:      g,
		totalGold: total,
		density:   float64(edges) / float64(possible),
	}, nil
}

// N returns the number of nodes, depot included.
func (g *Graph) N() int { return g.n }

// Dist returns the direct distance between u and v, or +Inf when no direct
// edge exists. Out-of-range indices return +Inf rather than panicking so the
// solvers' defensive checks stay branch-cheap.
func (g *Graph) Dist(u, v int) float64 {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return math.Inf(1)
	}

	return g.dist[u*g.n+v]
}

// HasEdge reports whether a finite direct edge connects u and v.
func (g *Graph) HasEdge(u, v int) bool {
	return u != v && !math.IsInf(g.Dist(u, v), 1)
}

// Gold returns the gold quantity at node v (zero for the depot and for
// out-of-range indices).
func (g *Graph) Gold(v int) float64 {
	if v < 0 || v >= g.n {
		return 0
	}

	return g.gold[v]
}

// TotalGold returns the sum of gold over all nodes.
func (g *Graph) TotalGold() float64 { return g.totalGold }

// Density returns the fraction of possible node pairs connected by a finite
// edge. The adaptive solver branches on it: sparse instances go to the
// genetic algorithm, dense ones to hill climbing.
func (g *Graph) Density() float64 { return g.density }
