package op

import "errors"

// Sentinel errors returned by the engine. Structural conditions that the
// operators repair locally (duplicates, emptied segments, absent insertion
// candidates, illegal trip counts) never surface through Solve; the
// sentinels below exist for input validation and for the Validate audit
// used in tests and defensive exits.
var (
	// ErrNilGraph indicates that a nil *core.Graph was passed to Solve or to
	// one of the search loops.
	ErrNilGraph = errors.New("op: graph is nil")

	// ErrBadOption indicates an Options field outside its legal range
	// (negative sizes, α < 0, β ≤ 0, threshold outside [0,1], ...).
	ErrBadOption = errors.New("op: invalid option value")

	// ErrUnsupportedAlgorithm indicates an unknown Options.Algo value.
	ErrUnsupportedAlgorithm = errors.New("op: unsupported algorithm")

	// ErrEmptySegment indicates a segment with no nodes (audit only; the
	// operators delete emptied segments before returning).
	ErrEmptySegment = errors.New("op: empty segment")

	// ErrInvalidTripCount indicates a trip count below 1 (audit only; trip
	// edits that would go below 1 are rejected in place).
	ErrInvalidTripCount = errors.New("op: trip count below 1")

	// ErrDuplicateNode indicates a non-depot node present in more than one
	// segment, or an ownership index out of sync with the segment lists.
	ErrDuplicateNode = errors.New("op: node active in more than one segment")

	// ErrMissingNode indicates a non-depot node absent from every segment;
	// operators restore full coverage before returning.
	ErrMissingNode = errors.New("op: node missing from all segments")

	// ErrCostMismatch indicates that a cached cost drifted from the
	// from-scratch recomputation beyond tolerance.
	ErrCostMismatch = errors.New("op: cached cost out of sync with full recomputation")
)

// Algorithm selects the search loop run by Solve.
type Algorithm int

const (
	// Auto picks by graph density: genetic below Options.DensityThreshold,
	// hill climbing at or above it.
	Auto Algorithm = iota

	// Genetic forces the population loop.
	Genetic

	// HillClimb forces the single-solution loop.
	HillClimb
)

// Result is the outcome of Solve.
type Result struct {
	// Path is the closed walk with depot markers:
	// 0, s₁₁…s₁ₖ, 0, s₂₁…, 0. For a solution of q segments it contains
	// q+1 zeros.
	Path []int

	// TripCounts holds one positive integer per segment, aligned with the
	// segment order in Path.
	TripCounts []int

	// Cost is the total solution cost, stabilized to 1e-9.
	Cost float64
}
