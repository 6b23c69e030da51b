package op

import "math/rand"

// tripFactor is the multiplicative step of every trip-count edit. Counts
// start at 1, so they stay exact powers of two and division is always clean.
const tripFactor = 2

// OptimizeTrips runs the trip-count hill climber on sol in place and returns
// the total (non-positive) delta it achieved. The path structure is never
// touched: only the trip-count vector moves.
//
// Schedule:
//
//   - one radical step first: every segment's count is multiplied by the
//     factor and the combined delta is priced in a single evaluation — a
//     cheap probe of whether global trip-splitting helps at all before
//     paying for per-segment search; reverted wholesale unless it improves,
//   - then iters local steps: one uniformly random segment, count
//     multiplied or divided by the factor (division only while the result
//     stays ≥ 1 — an illegal count is never even written), delta priced
//     over that one segment in O(segment length).
//
// Acceptance is the hill-climbing rule throughout: commit iff delta < −eps,
// revert otherwise, so the accepted-cost sequence is non-increasing.
//
// Callers gate on β: for β ≤ 1 the equal-split cost is non-decreasing in
// the trip count and the optimizer cannot help (see Evaluator).
func OptimizeTrips(sol *Solution, ev *Evaluator, rng *rand.Rand, iters int, eps float64) float64 {
	if sol == nil || len(sol.segs) == 0 {
		return 0
	}

	var total float64

	// Radical step: split everything at once.
	tx := newTxn(sol)
	for _, s := range sol.segs {
		tx.setTrips(s, s.trips*tripFactor)
	}
	if delta := tx.reprice(ev); delta < -eps {
		total += delta
	} else {
		tx.revert()
	}

	// Local steps.
	for i := 0; i < iters; i++ {
		s := sol.segs[rng.Intn(len(sol.segs))]

		up := rng.Intn(2) == 0
		if !up && s.trips < tripFactor {
			// Division would drive the count below 1; reject the direction
			// locally and try growth instead.
			up = true
		}
		next := s.trips * tripFactor
		if !up {
			next = s.trips / tripFactor
		}

		tx = newTxn(sol)
		tx.setTrips(s, next)
		if delta := tx.reprice(ev); delta < -eps {
			total += delta
		} else {
			tx.revert()
		}
	}

	return total
}
