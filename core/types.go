package core

import "errors"

// Depot is the fixed index of the start/end node of every trip.
// The depot carries no gold.
const Depot = 0

// symTol is the structural tolerance for symmetry and diagonal checks.
// It is a property of instance validation, not of the search (solvers keep
// their own acceptance epsilon).
const symTol = 1e-12

// Sentinel errors returned by instance construction.
var (
	// ErrNonSquare indicates that the distance matrix is not square or empty.
	ErrNonSquare = errors.New("core: distance matrix must be square")

	// ErrDimensionMismatch indicates a shape/value problem that does not fit
	// a more specific sentinel: n < 2, ragged rows, or NaN entries.
	ErrDimensionMismatch = errors.New("core: dimension mismatch or ill-posed value")

	// ErrNonZeroDiagonal indicates that some d(v,v) deviates from zero
	// beyond the structural tolerance.
	ErrNonZeroDiagonal = errors.New("core: distance matrix diagonal must be zero")

	// ErrAsymmetry indicates that d(u,v) and d(v,u) differ beyond the
	// structural tolerance; goldrush instances are symmetric by contract.
	ErrAsymmetry = errors.New("core: distance matrix must be symmetric")

	// ErrNegativeWeight indicates a negative distance entry.
	ErrNegativeWeight = errors.New("core: negative distance encountered")

	// ErrBadGold indicates a gold vector of the wrong length, a negative,
	// NaN or infinite gold value, or non-zero gold at the depot.
	ErrBadGold = errors.New("core: invalid gold vector")
)
