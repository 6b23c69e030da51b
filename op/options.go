package op

// Options configures one Solve run. Every knob is overridable; zero values
// mean "derive a default from the instance size n" (linear formulas —
// configuration, not core logic).
//
// Alpha, Beta       – cost parameters: edge cost = d + (α·d·w)^β.
// Seed              – RNG seed; 0 ⇒ fixed default seed (deterministic).
// Algo              – Auto (density-based), Genetic, or HillClimb.
// PopulationSize    – GA population size; also scales the HC iteration
//                     budget (PopulationSize × Generations mutations).
// Generations       – GA generation count / HC budget factor.
// TripHCIters       – local-step iterations of the trip optimizer (β > 1).
// NeighborK         – fan-out of the k-nearest candidate query in the
//                     insertion mutation.
// TournamentSize    – GA parent-selection tournament size.
// SplitHint         – upper bound on the random segment count of a freshly
//                     built individual (diversity for crossover to exchange).
// DensityThreshold  – Auto branches to HillClimb when density ≥ threshold.
// Eps               – acceptance tolerance: an edit is kept iff Δ < −Eps.
// Restarts          – independent searches raced on derived RNG streams;
//                     1 keeps the engine strictly single-threaded.
type Options struct {
	Alpha float64
	Beta  float64
	Seed  int64
	Algo  Algorithm

	PopulationSize   int
	Generations      int
	TripHCIters      int
	NeighborK        int
	TournamentSize   int
	SplitHint        int
	DensityThreshold float64
	Eps              float64
	Restarts         int
}

// DefaultOptions returns the baseline configuration: linear cost (α=β=1),
// deterministic seed policy, density threshold 0.8, and every sizing knob
// zeroed so Solve derives it from n.
func DefaultOptions() Options {
	return Options{
		Alpha:            1,
		Beta:             1,
		DensityThreshold: 0.8,
	}
}

// validate rejects values outside their legal ranges. Zero values pass: they
// are placeholders for derivation.
func (o Options) validate() error {
	if o.Alpha < 0 {
		return ErrBadOption
	}
	if o.Beta <= 0 {
		return ErrBadOption
	}
	if o.PopulationSize < 0 || o.Generations < 0 || o.TripHCIters < 0 ||
		o.NeighborK < 0 || o.TournamentSize < 0 || o.SplitHint < 0 ||
		o.Restarts < 0 || o.Eps < 0 {
		return ErrBadOption
	}
	if o.DensityThreshold < 0 || o.DensityThreshold > 1 {
		return ErrBadOption
	}
	switch o.Algo {
	case Auto, Genetic, HillClimb:
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// withDerived fills every zero sizing knob from the instance size n.
// The formulas are deliberately simple and linear; they are tuning surface,
// not engine logic.
func (o Options) withDerived(n int) Options {
	if o.PopulationSize == 0 {
		o.PopulationSize = clampInt(n, 10, 60)
	}
	if o.Generations == 0 {
		o.Generations = 20 + 4*n
	}
	if o.TripHCIters == 0 {
		o.TripHCIters = 30 + 2*n
	}
	if o.NeighborK == 0 {
		o.NeighborK = 5
	}
	if o.TournamentSize == 0 {
		o.TournamentSize = 3
	}
	if o.SplitHint == 0 {
		o.SplitHint = maxInt(2, n/8)
	}
	if o.DensityThreshold == 0 {
		o.DensityThreshold = 0.8
	}
	if o.Eps == 0 {
		o.Eps = 1e-12
	}
	if o.Restarts == 0 {
		o.Restarts = 1
	}

	return o
}

// clampInt bounds v to [lo, hi].
func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}

// maxInt returns the larger of a and b.
func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}
