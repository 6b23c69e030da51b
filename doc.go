// Package goldrush solves a constrained Orienteering Problem: given a
// weighted graph with a depot and gold at every other node, build one or
// more depot-to-depot trips that collect all gold while minimizing
//
//	cost(edge) = distance + (α · distance · weight)^β
//
// where weight is the gold carried across that edge. For β > 1 the penalty
// is superlinear, so splitting a route into several lighter round trips can
// beat a single heavy pass — the engine searches over visit order, route
// partitioning, and per-route trip counts simultaneously.
//
// 🚀 What is goldrush?
//
//	A deterministic, zero-service metaheuristic engine built from three
//	subpackages:
//		• core/     — immutable problem instance: dense symmetric distances,
//		  per-node gold, depot fixed at index 0, density measure
//		• dijkstra/ — shortest-path cache: depot trees, memoized per-source
//		  trees, k-nearest neighbor queries
//		• op/       — the solver: segmented solutions, exact delta-cost
//		  evaluation, insertion mutation, trip-count optimization, genetic
//		  and hill-climbing loops, and the adaptive dispatcher op.Solve
//
// ✨ Why goldrush?
//
//   - Deterministic — explicit seeded RNG everywhere; same seed, same answer
//   - Strict sentinels — no logging, no panics on user input
//   - Delta discipline — every edit is priced incrementally and verified
//     against full recomputation in tests
//   - Pure Go — no cgo, no service surface, no hidden I/O
//
// Quick start:
//
//	g, err := core.New(dist, gold)
//	if err != nil { ... }
//	opt := op.DefaultOptions()
//	opt.Alpha, opt.Beta, opt.Seed = 1.0, 2.0, 42
//	res, err := op.Solve(g, opt)
//	// res.Path, res.TripCounts, res.Cost
package goldrush
