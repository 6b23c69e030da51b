package op

import (
	"math/rand"

	"github.com/katalvlaran/goldrush/core"
	"github.com/katalvlaran/goldrush/dijkstra"
)

// RunHillClimb runs the single-solution loop: one greedy individual,
// PopulationSize × Generations insertion mutations, each kept iff its delta
// beats −Eps and reverted otherwise. Reverts are O(touched) through the
// mutation's undo record, so a rejected step never pays for a clone.
//
// The accepted-cost sequence is non-increasing by construction. Used by the
// adaptive dispatcher on dense instances, where fast local refinement beats
// population diversity.
func RunHillClimb(g *core.Graph, cache *dijkstra.Cache, ev *Evaluator, opts Options, rng *rand.Rand) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	sol := GreedyBuild(g, cache, ev, rng, opts.SplitHint)

	iters := opts.PopulationSize * opts.Generations
	for i := 0; i < iters; i++ {
		delta, revert := MutateInsertion(sol, cache, ev, rng, opts.NeighborK)
		if delta >= -opts.Eps {
			revert()
		}
	}

	return sol, nil
}
