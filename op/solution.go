package op

import (
	"math"

	"github.com/katalvlaran/goldrush/core"
)

// segment is one depot-to-depot route: an ordered run of non-depot nodes,
// a trip count ≥ 1, and its cached cost under the owning solution's
// evaluator. Segments are owned by exactly one Solution and referenced by
// pointer, so deleting one segment never shifts another's identity.
type segment struct {
	nodes []int
	trips int
	cost  float64
}

// Solution is a partition of the non-depot nodes into ordered segments.
//
// Node membership is realized as presence in exactly one segment's list —
// there is no per-node active flag to keep in sync; "deactivating" a node is
// removing it from its owning segment. owner[v] points at that segment
// (nil while a node is temporarily uncovered mid-edit).
//
// The cached total cost always equals the sum of the cached segment costs;
// operators keep both in lockstep and Validate audits them against the
// evaluator's from-scratch recomputation.
type Solution struct {
	g     *core.Graph
	segs  []*segment
	owner []*segment
	cost  float64
}

// NewSolution builds a Solution from explicit segment node lists and trip
// counts, pricing every segment with ev. trips may be nil (all counts 1);
// otherwise it must parallel segs.
//
// Errors: ErrNilGraph, ErrEmptySegment, ErrInvalidTripCount,
// ErrDuplicateNode (depot or out-of-range indices also map here),
// ErrBadOption when trips and segs disagree in length.
func NewSolution(g *core.Graph, ev *Evaluator, segs [][]int, trips []int) (*Solution, error) {
	if g == nil || ev == nil {
		return nil, ErrNilGraph
	}
	if trips != nil && len(trips) != len(segs) {
		return nil, ErrBadOption
	}

	sol := &Solution{
		g:     g,
		segs:  make([]*segment, 0, len(segs)),
		owner: make([]*segment, g.N()),
	}
	for i, nodes := range segs {
		if len(nodes) == 0 {
			return nil, ErrEmptySegment
		}
		t := 1
		if trips != nil {
			t = trips[i]
		}
		if t < 1 {
			return nil, ErrInvalidTripCount
		}
		s := &segment{nodes: append([]int(nil), nodes...), trips: t}
		for _, v := range nodes {
			if v <= core.Depot || v >= g.N() || sol.owner[v] != nil {
				return nil, ErrDuplicateNode
			}
			sol.owner[v] = s
		}
		s.cost = ev.SegmentCost(s.nodes, s.trips)
		sol.cost += s.cost
		sol.segs = append(sol.segs, s)
	}

	return sol, nil
}

// Cost returns the cached total cost.
func (sol *Solution) Cost() float64 { return sol.cost }

// Len returns the number of segments.
func (sol *Solution) Len() int { return len(sol.segs) }

// ActiveNodes returns the total number of nodes across all segments.
func (sol *Solution) ActiveNodes() int {
	var n int
	for _, s := range sol.segs {
		n += len(s.nodes)
	}

	return n
}

// Segments returns a deep copy of the segment node lists, in order.
func (sol *Solution) Segments() [][]int {
	out := make([][]int, len(sol.segs))
	for i, s := range sol.segs {
		out[i] = append([]int(nil), s.nodes...)
	}

	return out
}

// TripCounts returns a copy of the trip-count vector, aligned with Segments.
func (sol *Solution) TripCounts() []int {
	out := make([]int, len(sol.segs))
	for i, s := range sol.segs {
		out[i] = s.trips
	}

	return out
}

// Path returns the closed walk with depot markers: 0, s₁…, 0, s₂…, 0.
func (sol *Solution) Path() []int {
	out := make([]int, 0, sol.ActiveNodes()+len(sol.segs)+1)
	out = append(out, core.Depot)
	for _, s := range sol.segs {
		out = append(out, s.nodes...)
		out = append(out, core.Depot)
	}

	return out
}

// Clone returns an independent deep copy.
func (sol *Solution) Clone() *Solution {
	cp := &Solution{
		g:     sol.g,
		segs:  make([]*segment, len(sol.segs)),
		owner: make([]*segment, len(sol.owner)),
		cost:  sol.cost,
	}
	for i, s := range sol.segs {
		ns := &segment{
			nodes: append([]int(nil), s.nodes...),
			trips: s.trips,
			cost:  s.cost,
		}
		cp.segs[i] = ns
		for _, v := range ns.nodes {
			cp.owner[v] = ns
		}
	}

	return cp
}

// locate returns the position of v inside its owning segment, or (nil, -1)
// when v is uncovered. Segments are short relative to n, so the inner scan
// stays cheap.
func (sol *Solution) locate(v int) (*segment, int) {
	s := sol.owner[v]
	if s == nil {
		return nil, -1
	}
	for i, u := range s.nodes {
		if u == v {
			return s, i
		}
	}

	// Unreachable while the uniqueness invariant holds.
	return nil, -1
}

// pickActive returns a uniformly random (segment, position) over all active
// nodes, or (nil, -1) when the solution is empty.
func (sol *Solution) pickActive(r int) (*segment, int) {
	for _, s := range sol.segs {
		if r < len(s.nodes) {
			return s, r
		}
		r -= len(s.nodes)
	}

	return nil, -1
}

// --- transactional editing -------------------------------------------------

// txn records enough state to revert one multi-step edit in O(touched).
// Every structural change inside an operator goes through txn methods; the
// segment-pointer ownership model means deleting one segment never
// invalidates snapshots of another.
type txn struct {
	sol       *Solution
	segsSnap  []*segment           // segment order at txn start
	touched   []*segment           // touch order, for deterministic pricing
	segSnaps  map[*segment]segSnap // first-touch deep snapshots
	deleted   map[*segment]bool    // segments removed during the edit
	ownerSnap map[int]*segment     // first-touch ownership snapshots
	costSnap  float64
}

// segSnap is the immutable pre-edit image of one segment.
type segSnap struct {
	nodes []int
	trips int
	cost  float64
}

func newTxn(sol *Solution) *txn {
	return &txn{
		sol:       sol,
		segsSnap:  append([]*segment(nil), sol.segs...),
		segSnaps:  make(map[*segment]segSnap, 4),
		deleted:   make(map[*segment]bool, 2),
		ownerSnap: make(map[int]*segment, 8),
		costSnap:  sol.cost,
	}
}

// touchSeg snapshots s on first touch. Touch order is recorded so repricing
// sums deltas in a deterministic order (map iteration would jitter the
// floating-point tail between otherwise identical runs).
func (tx *txn) touchSeg(s *segment) {
	if _, ok := tx.segSnaps[s]; ok {
		return
	}
	tx.touched = append(tx.touched, s)
	tx.segSnaps[s] = segSnap{
		nodes: append([]int(nil), s.nodes...),
		trips: s.trips,
		cost:  s.cost,
	}
}

// touchOwner snapshots owner[v] on first touch.
func (tx *txn) touchOwner(v int) {
	if _, ok := tx.ownerSnap[v]; ok {
		return
	}
	tx.ownerSnap[v] = tx.sol.owner[v]
}

// removeIfActive detaches v from its owning segment, deleting the segment
// when it empties. No-op for uncovered nodes.
func (tx *txn) removeIfActive(v int) {
	s, i := tx.sol.locate(v)
	if s == nil {
		return
	}
	tx.touchSeg(s)
	tx.touchOwner(v)
	s.nodes = append(s.nodes[:i], s.nodes[i+1:]...)
	tx.sol.owner[v] = nil
	if len(s.nodes) == 0 {
		tx.deleteSeg(s)
	}
}

// insertAt places v into s at position i; v must be uncovered.
func (tx *txn) insertAt(s *segment, i, v int) {
	tx.touchSeg(s)
	tx.touchOwner(v)
	s.nodes = append(s.nodes, 0)
	copy(s.nodes[i+1:], s.nodes[i:])
	s.nodes[i] = v
	tx.sol.owner[v] = s
}

// deleteSeg drops s from the segment order (its trip-count entry goes with
// it — the vector is a projection of the segment list).
func (tx *txn) deleteSeg(s *segment) {
	tx.touchSeg(s)
	tx.deleted[s] = true
	segs := tx.sol.segs
	for i, cur := range segs {
		if cur == s {
			tx.sol.segs = append(segs[:i], segs[i+1:]...)

			return
		}
	}
}

// setTrips records and applies a trip-count change.
func (tx *txn) setTrips(s *segment, trips int) {
	tx.touchSeg(s)
	s.trips = trips
}

// reprice recomputes the cost of every touched, still-present segment and
// returns the exact delta of the whole edit. Untouched segments are never
// re-evaluated. Also folds the delta into the cached total.
func (tx *txn) reprice(ev *Evaluator) float64 {
	var delta float64
	for _, s := range tx.touched {
		snap := tx.segSnaps[s]
		if tx.deleted[s] {
			delta -= snap.cost

			continue
		}
		s.cost = ev.SegmentCost(s.nodes, s.trips)
		delta += s.cost - snap.cost
	}

	if math.IsNaN(delta) {
		// An Inf-cost segment appeared on both sides of the edit; fall back
		// to summing the cached segment costs so the total stays truthful.
		var total float64
		for _, s := range tx.sol.segs {
			total += s.cost
		}
		tx.sol.cost = total
		if d := total - tx.costSnap; !math.IsNaN(d) {
			return d
		}

		// Inf before and after: the edit changed nothing measurable.
		return 0
	}
	tx.sol.cost += delta

	return delta
}

// revert restores the pre-edit state exactly: segment order, touched
// segment contents, ownership, and the cached total.
func (tx *txn) revert() {
	tx.sol.segs = tx.segsSnap
	for _, s := range tx.touched {
		snap := tx.segSnaps[s]
		s.nodes = snap.nodes
		s.trips = snap.trips
		s.cost = snap.cost
	}
	for v, s := range tx.ownerSnap {
		tx.sol.owner[v] = s
	}
	tx.sol.cost = tx.costSnap
}
