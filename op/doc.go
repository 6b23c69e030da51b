// Package op implements the goldrush Orienteering Problem engine: the
// segmented solution representation, exact delta-cost evaluation, the
// insertion mutation, trip-count optimization, crossover, and the genetic /
// hill-climbing search loops behind the adaptive dispatcher Solve.
//
// Problem shape: every trip starts and ends at the depot (node 0) and
// collects the gold of the nodes it visits. The cost of traversing an edge
// of length d while carrying weight w is
//
//	d + (α·d·w)^β
//
// A Solution partitions the non-depot nodes into ordered segments; each
// segment is one depot-to-depot route, traversed trips ≥ 1 times with the
// segment's gold split equally across traversals. For β > 1 the weight
// penalty is superlinear, so raising a trip count can pay for the extra
// travel; for β ≤ 1 it never can, and the trip optimizer is skipped.
//
// Engine invariants (auditable via Validate):
//
//   - uniqueness: every non-depot node sits in exactly one segment's node
//     list on every operator exit ("at most one" holds mid-edit),
//   - no segment is ever empty; emptied segments vanish together with
//     their trip-count entry,
//   - every trip count stays ≥ 1 at all times,
//   - the cached total cost equals a from-scratch recomputation to 1e-9;
//     each operator returns the exact delta of its edit, priced over the
//     touched segments only.
//
// Design rules shared with the rest of goldrush: deterministic seeded RNG
// threaded explicitly through every operator, strict sentinel errors, no
// logging, no panics on user input, costs stabilized to 1e-9 at the API
// boundary.
//
// Entry point:
//
//	res, err := op.Solve(g, op.DefaultOptions())
//
// Solve builds the shortest-path cache (surfacing unreachable nodes before
// any search), routes to the genetic algorithm on sparse instances and to
// hill climbing on dense ones (density threshold 0.8 by default), optionally
// races independent restarts on derived RNG streams, and finishes with the
// trip optimizer when β > 1.
package op
