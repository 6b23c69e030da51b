package op

import (
	"math/rand"
	"sort"

	"github.com/katalvlaran/goldrush/core"
	"github.com/katalvlaran/goldrush/dijkstra"
)

// GreedyBuild constructs one full-coverage individual: a random permutation
// of the non-depot nodes split into 1..splitHint segments at random cut
// points, consecutive nodes connected directly, every trip count 1, and the
// segment terminals rebuilt through the cache so sparse instances start
// from depot-reachable routes.
//
// Segment-count diversity is the point of the random split: crossover
// exchanges whole sub-sequences of segments, so a population seeded with a
// single split style would have nothing to trade.
//
// Complexity: O(n log n) for the shuffle and cut sort, O(1) per placement,
// plus O(terminal path length) for the rebuild.
func GreedyBuild(g *core.Graph, cache *dijkstra.Cache, ev *Evaluator, rng *rand.Rand, splitHint int) *Solution {
	n := g.N()
	perm := make([]int, 0, n-1)
	for v := 1; v < n; v++ {
		perm = append(perm, v)
	}
	shuffleInts(perm, rng)

	// Draw the number of segments and distinct cut positions.
	if splitHint < 1 {
		splitHint = 1
	}
	numSegs := 1 + rng.Intn(splitHint)
	if numSegs > len(perm) {
		numSegs = len(perm)
	}
	cuts := make([]int, 0, numSegs-1)
	if numSegs > 1 {
		// Sample numSegs−1 distinct interior positions via a partial shuffle.
		pos := make([]int, len(perm)-1)
		for i := range pos {
			pos[i] = i + 1
		}
		shuffleInts(pos, rng)
		cuts = append(cuts, pos[:numSegs-1]...)
		sort.Ints(cuts)
	}

	sol := &Solution{
		g:     g,
		segs:  make([]*segment, 0, numSegs),
		owner: make([]*segment, n),
	}
	start := 0
	for _, cut := range append(cuts, len(perm)) {
		s := &segment{nodes: append([]int(nil), perm[start:cut]...), trips: 1}
		for _, v := range s.nodes {
			sol.owner[v] = s
		}
		sol.segs = append(sol.segs, s)
		start = cut
	}

	// Bridge every segment's depot legs; on complete instances this is a
	// no-op, on sparse ones it pulls the forced waypoints in.
	tx := newTxn(sol)
	for _, s := range append([]*segment(nil), sol.segs...) {
		if !tx.deleted[s] && len(s.nodes) > 0 {
			tx.rebuildTerminals(s, cache)
		}
	}
	tx.reprice(ev)

	return sol
}
