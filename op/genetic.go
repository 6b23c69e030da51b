package op

import (
	"math"
	"math/rand"

	"github.com/montanaflynn/stats"

	"github.com/katalvlaran/goldrush/core"
	"github.com/katalvlaran/goldrush/dijkstra"
)

// Mutation-probability bounds for the diversity-adaptive schedule. The
// schedule is a tunable, not a correctness invariant: any probability in
// (0,1] keeps the loop sound.
const (
	mutProbFloor = 0.2
	mutProbCeil  = 0.9
)

// RunGenetic runs the steady-state population loop:
//
//	init PopulationSize greedy individuals
//	per generation: tournament-select two parents → crossover →
//	insertion mutation with diversity-adaptive probability →
//	child replaces the current worst individual iff it beats it
//	terminal: best member of the final population
//
// The mutation probability rises as the population converges: it is
// 1 − cv clamped to [0.2, 0.9], where cv is the coefficient of variation
// (stddev/mean) of the population costs. A spread-out population explores
// through crossover alone; a collapsed one needs mutation pressure.
func RunGenetic(g *core.Graph, cache *dijkstra.Cache, ev *Evaluator, opts Options, rng *rand.Rand) (*Solution, error) {
	if g == nil {
		return nil, ErrNilGraph
	}

	pop := make([]*Solution, opts.PopulationSize)
	for i := range pop {
		pop[i] = GreedyBuild(g, cache, ev, rng, opts.SplitHint)
	}

	for gen := 0; gen < opts.Generations; gen++ {
		p1 := tournament(pop, opts.TournamentSize, rng)
		p2 := tournament(pop, opts.TournamentSize, rng)

		child := Crossover(p1, p2, cache, ev, rng)
		if rng.Float64() < adaptiveMutationProb(pop) {
			// Diversification move: keep it regardless of sign; selection
			// below decides whether the child survives at all.
			_, _ = MutateInsertion(child, cache, ev, rng, opts.NeighborK)
		}

		wi := worstIndex(pop)
		if child.cost < pop[wi].cost {
			pop[wi] = child
		}
	}

	return pop[bestIndex(pop)], nil
}

// tournament returns the cheapest of size uniformly drawn members.
func tournament(pop []*Solution, size int, rng *rand.Rand) *Solution {
	best := pop[rng.Intn(len(pop))]
	for i := 1; i < size; i++ {
		if c := pop[rng.Intn(len(pop))]; c.cost < best.cost {
			best = c
		}
	}

	return best
}

// adaptiveMutationProb maps population diversity to mutation pressure.
func adaptiveMutationProb(pop []*Solution) float64 {
	costs := make([]float64, len(pop))
	for i, s := range pop {
		costs[i] = s.cost
	}
	sd, errSD := stats.StandardDeviationPopulation(costs)
	mean, errMean := stats.Mean(costs)
	if errSD != nil || errMean != nil || mean == 0 ||
		math.IsInf(mean, 0) || math.IsNaN(sd) {
		// Inf-cost members (sparse instances early on) poison the moments;
		// fall back to the exploration floor.
		return mutProbFloor
	}

	p := 1 - sd/mean
	if p < mutProbFloor {
		return mutProbFloor
	}
	if p > mutProbCeil {
		return mutProbCeil
	}

	return p
}

// worstIndex returns the index of the costliest member.
func worstIndex(pop []*Solution) int {
	wi := 0
	for i, s := range pop {
		if s.cost > pop[wi].cost {
			wi = i
		}
	}

	return wi
}

// bestIndex returns the index of the cheapest member.
func bestIndex(pop []*Solution) int {
	bi := 0
	for i, s := range pop {
		if s.cost < pop[bi].cost {
			bi = i
		}
	}

	return bi
}
