package op

import "math"

// validateTol is the relative tolerance for the cached-vs-recomputed cost
// audit. Matches the engine-wide 1e-9 stabilization grain.
const validateTol = 1e-9

// Validate audits every structural invariant of sol against ev's
// from-scratch recomputation. Intended for tests and defensive exits; the
// operators are designed to make it pass on every return.
//
// Checks, in order:
//
//   - no empty segments (ErrEmptySegment),
//   - every trip count ≥ 1 (ErrInvalidTripCount),
//   - every non-depot node in exactly one segment, ownership index in sync
//     (ErrDuplicateNode / ErrMissingNode),
//   - cached per-segment and total costs equal to recomputation within
//     1e-9 relative (ErrCostMismatch).
//
// Complexity: O(total path length).
func Validate(sol *Solution, ev *Evaluator) error {
	if sol == nil || ev == nil {
		return ErrNilGraph
	}

	n := sol.g.N()
	seen := make([]bool, n)
	for _, s := range sol.segs {
		if len(s.nodes) == 0 {
			return ErrEmptySegment
		}
		if s.trips < 1 {
			return ErrInvalidTripCount
		}
		for _, v := range s.nodes {
			if v <= 0 || v >= n || seen[v] {
				return ErrDuplicateNode
			}
			if sol.owner[v] != s {
				return ErrDuplicateNode
			}
			seen[v] = true
		}
		if !costsClose(s.cost, ev.SegmentCost(s.nodes, s.trips)) {
			return ErrCostMismatch
		}
	}

	for v := 1; v < n; v++ {
		if !seen[v] {
			return ErrMissingNode
		}
		// seen[v] implies owner[v] != nil; the converse guards stale owners.
		if sol.owner[v] == nil {
			return ErrMissingNode
		}
	}

	if !costsClose(sol.cost, ev.FullCost(sol)) {
		return ErrCostMismatch
	}

	return nil
}

// costsClose compares costs under 1e-9 relative tolerance, treating equal
// infinities as close.
func costsClose(a, b float64) bool {
	if math.IsInf(a, 1) && math.IsInf(b, 1) {
		return true
	}
	if math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return false
	}
	diff := math.Abs(a - b)
	scale := math.Max(1, math.Max(math.Abs(a), math.Abs(b)))

	return diff <= validateTol*scale
}
