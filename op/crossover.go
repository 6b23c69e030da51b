package op

import (
	"math"
	"math/rand"

	"github.com/katalvlaran/goldrush/dijkstra"
)

// Crossover recombines two parents into a fresh child Solution. Parents are
// read-only; the child shares nothing with them.
//
// Construction:
//
//  1. One independent cut point per parent's segment list; the child is a
//     deep copy of a's prefix followed by b's suffix, trip counts carried
//     over with their segments.
//  2. Duplicates across the two halves are resolved first-occurrence-wins;
//     segments that lose all nodes are dropped, their trip entries with
//     them.
//  3. Nodes present in neither half are re-inserted at the cheapest
//     segment end by direct distance (a fresh singleton segment when the
//     child has none, or when every end is unreachable), restoring full
//     coverage before the child leaves the operator.
//  4. Terminals of every child segment are rebuilt through the cache, and
//     the child's cost is assembled from the per-segment prices of exactly
//     the segments it owns — untouched parent state is never re-evaluated.
func Crossover(a, b *Solution, cache *dijkstra.Cache, ev *Evaluator, rng *rand.Rand) *Solution {
	g := a.g
	child := &Solution{
		g:     g,
		segs:  make([]*segment, 0, len(a.segs)+len(b.segs)),
		owner: make([]*segment, g.N()),
	}

	// Stage 1+2: copy a-prefix then b-suffix, dropping duplicate nodes.
	ca := rng.Intn(len(a.segs) + 1)
	cb := rng.Intn(len(b.segs) + 1)
	child.adopt(a.segs[:ca])
	child.adopt(b.segs[cb:])

	// Stage 3: coverage repair.
	for v := 1; v < g.N(); v++ {
		if child.owner[v] == nil {
			child.insertCheapest(v)
		}
	}

	// Stage 4: terminal rebuild + pricing over the child's own segments.
	tx := newTxn(child)
	for _, s := range append([]*segment(nil), child.segs...) {
		if !tx.deleted[s] && len(s.nodes) > 0 {
			tx.rebuildTerminals(s, cache)
		}
	}
	tx.reprice(ev)

	return child
}

// adopt deep-copies parent segments into sol, skipping nodes sol already
// owns (first occurrence wins) and dropping segments that arrive empty.
func (sol *Solution) adopt(parents []*segment) {
	for _, ps := range parents {
		nodes := make([]int, 0, len(ps.nodes))
		for _, v := range ps.nodes {
			if sol.owner[v] == nil {
				nodes = append(nodes, v)
			}
		}
		if len(nodes) == 0 {
			continue
		}
		s := &segment{nodes: nodes, trips: ps.trips}
		for _, v := range nodes {
			sol.owner[v] = s
		}
		sol.segs = append(sol.segs, s)
	}
}

// insertCheapest appends v to the segment end nearest to it by direct
// distance, or opens a singleton segment when no finite end exists. Cost
// caches are not maintained here; the caller reprices.
func (sol *Solution) insertCheapest(v int) {
	var (
		best     *segment
		bestDist = math.Inf(1)
	)
	for _, s := range sol.segs {
		if d := sol.g.Dist(s.nodes[len(s.nodes)-1], v); d < bestDist {
			bestDist = d
			best = s
		}
	}
	if best == nil {
		s := &segment{nodes: []int{v}, trips: 1}
		sol.owner[v] = s
		sol.segs = append(sol.segs, s)

		return
	}
	best.nodes = append(best.nodes, v)
	sol.owner[v] = best
}
