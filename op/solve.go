// Package op - adaptive dispatcher for the goldrush engine.
//
// Solve is the canonical entry point: it validates inputs, builds the
// shortest-path cache (surfacing unreachable nodes before any search), picks
// the search loop by graph density, optionally races independent restarts,
// and finishes with the trip optimizer when β > 1.
package op

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/goldrush/core"
	"github.com/katalvlaran/goldrush/dijkstra"
)

// Solve runs the adaptive pipeline on instance g and returns the best
// solution found as (path, trip counts, stabilized cost).
//
// Stages:
//
//  1. Validate options; derive every zeroed knob from n.
//  2. Build the dijkstra.Cache — a node unreachable from the depot aborts
//     here with dijkstra.ErrUnreachableNode, never mid-search.
//  3. Route: Options.Algo, or by density under Auto (genetic below the
//     threshold, hill climbing at or above it).
//  4. Restarts > 1 race that many independent searches on derived RNG
//     streams via errgroup; the Graph and Cache are shared read-only, every
//     worker owns its Solution exclusively. Restarts == 1 stays strictly
//     single-threaded.
//  5. β > 1: trip-count optimization on the winner.
//
// Errors: ErrNilGraph, ErrBadOption, ErrUnsupportedAlgorithm,
// dijkstra.ErrUnreachableNode.
func Solve(g *core.Graph, opts Options) (Result, error) {
	// Stage 1 - validation and knob derivation.
	if g == nil {
		return Result{}, ErrNilGraph
	}
	if err := opts.validate(); err != nil {
		return Result{}, err
	}
	opts = opts.withDerived(g.N())

	// Stage 2 - shortest-path cache (fatal reachability audit lives here).
	cache, err := dijkstra.NewCache(g)
	if err != nil {
		return Result{}, err
	}
	ev := NewEvaluator(g, opts.Alpha, opts.Beta)

	// Stage 3 - route to a search loop.
	run := RunGenetic
	switch opts.Algo {
	case HillClimb:
		run = RunHillClimb
	case Genetic:
		// keep
	case Auto:
		if g.Density() >= opts.DensityThreshold {
			run = RunHillClimb
		}
	}

	// Stage 4 - execute (optionally racing independent restarts).
	base := rngFromSeed(opts.Seed)
	best, err := raceRestarts(g, cache, ev, opts, base, run)
	if err != nil {
		return Result{}, err
	}

	// Stage 5 - trip-count optimization pays only under superlinear weight
	// penalty; for β ≤ 1 splitting can never reduce the equal-split cost.
	if opts.Beta > 1 {
		OptimizeTrips(best, ev, base, opts.TripHCIters, opts.Eps)
	}

	return Result{
		Path:       best.Path(),
		TripCounts: best.TripCounts(),
		Cost:       round1e9(best.cost),
	}, nil
}

// searchFn is the shared shape of RunGenetic and RunHillClimb.
type searchFn func(*core.Graph, *dijkstra.Cache, *Evaluator, Options, *rand.Rand) (*Solution, error)

// raceRestarts runs opts.Restarts independent searches and returns the
// cheapest result. Each worker gets its own derived RNG stream and owns its
// Solution exclusively; the instance and cache are shared read-only. With
// one restart the search runs inline on the caller's goroutine.
func raceRestarts(g *core.Graph, cache *dijkstra.Cache, ev *Evaluator, opts Options, base *rand.Rand, run searchFn) (*Solution, error) {
	if opts.Restarts <= 1 {
		return run(g, cache, ev, opts, deriveRNG(base, 0))
	}

	results := make([]*Solution, opts.Restarts)
	var eg errgroup.Group
	for i := 0; i < opts.Restarts; i++ {
		// Derive the stream on the caller's goroutine: base is not
		// goroutine-safe and derivation must stay deterministic.
		rng := deriveRNG(base, uint64(i))
		slot := i
		eg.Go(func() error {
			sol, err := run(g, cache, ev, opts, rng)
			if err != nil {
				return err
			}
			results[slot] = sol

			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	best := results[0]
	for _, sol := range results[1:] {
		if sol.cost < best.cost {
			best = sol
		}
	}

	return best, nil
}
