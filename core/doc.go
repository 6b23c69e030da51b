// Package core defines the immutable problem instance for the goldrush
// Orienteering Problem engine.
//
// A Graph holds a dense, symmetric, non-negative distance matrix over n
// nodes, a gold quantity per node, and a fixed depot at index 0. Missing
// edges are represented as math.Inf(1). The instance is validated once at
// construction and never mutated afterwards, so it can be shared read-only
// across solver workers without copying or locking.
//
// Validation performed by New (all violations are sentinel errors):
//
//   - matrix is square with n ≥ 2 (ErrNonSquare, ErrDimensionMismatch)
//   - diagonal ≈ 0 within 1e-12 (ErrNonZeroDiagonal)
//   - |d(u,v) − d(v,u)| ≤ 1e-12 (ErrAsymmetry)
//   - no negative or NaN distances (ErrNegativeWeight,
//     ErrDimensionMismatch); +Inf marks a missing edge and is allowed
//   - gold vector has length n, finite non-negative entries, and zero at
//     the depot (ErrBadGold)
//
// Complexity: New is O(n²) time and O(n²) space (deep copy of the matrix);
// every accessor is O(1).
package core
