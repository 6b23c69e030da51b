package op

import (
	"math/rand"

	"github.com/katalvlaran/goldrush/core"
	"github.com/katalvlaran/goldrush/dijkstra"
)

// MutateInsertion applies one insertion mutation to sol in place and returns
// the exact delta cost together with a revert closure (O(touched); calling
// it restores the pre-edit state bit for bit).
//
// The edit, in order — the ordering is what keeps the uniqueness invariant
// intact on every exit path:
//
//  1. Pick a uniformly random active node c; next is the node after c in
//     its segment, or the depot when c closes the segment.
//  2. Draw candidate m from the k nearest neighbors of next (c and next
//     excluded). Uncovered candidates take priority: right after a
//     crossover this is the coverage-repair move; with full coverage it is
//     a relocation move.
//  3. Bridge c→m along the cached shortest path; m and every intermediate
//     node on the bridge are spliced in right after c, in path order. A
//     bridge that is the raw edge inserts m alone. Depot entries on the
//     bridge are skipped: segment pricing is over direct edges, and the
//     depot collects nothing.
//  4. Every spliced node already present elsewhere is first detached from
//     its current position (duplicate resolution).
//  5. Segments emptied by step 4 vanish together with their trip-count
//     entries.
//  6. The edited segment's depot legs are rebuilt along cached shortest
//     paths, pulling forced waypoints in under the same duplicate rule.
//
// When no candidate exists (n too small, everything excluded) the operator
// is a benign no-op with delta 0.
func MutateInsertion(sol *Solution, cache *dijkstra.Cache, ev *Evaluator, rng *rand.Rand, k int) (float64, func()) {
	noop := func() {}

	// Stage 1: anchor selection.
	total := sol.ActiveNodes()
	if total == 0 || k <= 0 {
		return 0, noop
	}
	s, pos := sol.pickActive(rng.Intn(total))
	if s == nil {
		return 0, noop
	}
	c := s.nodes[pos]
	next := core.Depot
	if pos+1 < len(s.nodes) {
		next = s.nodes[pos+1]
	}

	// Stage 2: candidate draw around next, uncovered-first.
	cand := cache.KNearest(next, k, func(u int) bool { return u == c || u == next })
	if len(cand) == 0 {
		return 0, noop
	}
	pool := cand[:0:0]
	for _, u := range cand {
		if sol.owner[u] == nil {
			pool = append(pool, u)
		}
	}
	if len(pool) == 0 {
		pool = cand
	}
	m := pool[rng.Intn(len(pool))]

	// Stage 3: shortest-path bridge c→m.
	bridge, _ := cache.Between(c, m)
	if bridge == nil || len(bridge) < 2 {
		return 0, noop // unreachable pair; cannot happen on a depot-connected symmetric instance
	}

	tx := newTxn(sol)

	// Stages 3–5: splice bridge[1:] after c, resolving duplicates as we go.
	anchor := c
	for _, x := range bridge[1:] {
		if x == core.Depot {
			continue
		}
		tx.removeIfActive(x)
		ai := indexIn(s.nodes, anchor)
		tx.insertAt(s, ai+1, x)
		anchor = x
	}

	// Stage 6: terminal reconstruction of the edited segment.
	tx.rebuildTerminals(s, cache)

	delta := tx.reprice(ev)

	return delta, tx.revert
}

// rebuildTerminals reconstructs the depot legs of s: depot→first along the
// cached depot tree and last→depot along its reverse, splicing bridge
// waypoints into the segment under the duplicate-resolution rule. Interior
// nodes are kept verbatim. On complete instances both legs are raw edges
// and this is a no-op.
func (tx *txn) rebuildTerminals(s *segment, cache *dijkstra.Cache) {
	tx.touchSeg(s)

	// Waypoints already inside s are left where they are: stealing them for
	// one leg could tear the other leg (or the interior) apart, and interior
	// ordering belongs to the insertion moves. Only outside nodes are pulled.

	// Leg (a): depot → first.
	if len(s.nodes) > 0 {
		lead, _ := cache.PathFromDepot(s.nodes[0])
		if len(lead) > 2 {
			at := 0
			for _, y := range lead[1 : len(lead)-1] {
				if y == core.Depot {
					continue
				}
				if tx.sol.owner[y] == s {
					if at < len(s.nodes) && s.nodes[at] == y {
						at++ // already in place
					}

					continue
				}
				tx.removeIfActive(y)
				tx.insertAt(s, at, y)
				at++
			}
		}
	}

	// Leg (c): last → depot.
	if len(s.nodes) > 0 {
		tail, _ := cache.PathToDepot(s.nodes[len(s.nodes)-1])
		if len(tail) > 2 {
			for _, y := range tail[1 : len(tail)-1] {
				if y == core.Depot || tx.sol.owner[y] == s {
					continue
				}
				tx.removeIfActive(y)
				tx.insertAt(s, len(s.nodes), y)
			}
		}
	}
}

// indexIn returns the position of v in nodes, or -1.
func indexIn(nodes []int, v int) int {
	for i, u := range nodes {
		if u == v {
			return i
		}
	}

	return -1
}
