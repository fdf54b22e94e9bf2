// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors. They form the shared
// failure taxonomy for every lvlnum solver package: all algorithms MUST
// return these sentinels (optionally wrapped with call-site context) and
// tests MUST check them via errors.Is. No algorithm panics on
// user-triggered error conditions; panics are reserved for programmer
// errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil receiver -> shape/index -> dimension mismatch -> numeric policy
// -> numerical failures (singular, indefinite) -> budget exhaustion.

var (
	// ErrBadShape is returned when a requested shape is invalid (r<=0 or c<=0)
	// or a [][]float64 source is empty/ragged. Constructors must validate
	// before allocation.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrNonSquare signals that a square matrix was required but the input
	// wasn't. Every solver in this module works on square systems.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands:
	// a vector whose length differs from the matrix dimension, or operand
	// shapes that do not line up.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured numeric tolerance (epsilon).
	ErrAsymmetry = errors.New("matrix: matrix is not symmetric within eps")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite
	// values are required by the numeric policy (ingestion, readers).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrSingular is returned when a zero pivot is encountered during
	// factorization or elimination where pivoting cannot resolve it
	// (dependent rows, or an unpivoted scheme meeting a zero divisor).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNotPositiveDefinite is returned when a positive-definiteness
	// precondition is violated: a Cholesky step meets a non-positive diagonal
	// sum, or conjugate gradient observes p·Ap <= 0.
	ErrNotPositiveDefinite = errors.New("matrix: matrix is not positive definite")

	// ErrDidNotConverge signals that an iterative solver exhausted its
	// iteration budget before meeting the convergence criterion. Solvers
	// return their best iterate alongside this sentinel rather than
	// discarding work.
	ErrDidNotConverge = errors.New("matrix: did not converge within iteration budget")

	// ErrNotImplemented marks a recognized but intentionally unsupported
	// operation (e.g., a sparse-coordinate MatrixMarket header in matio),
	// distinguishable from a genuine numerical failure.
	ErrNotImplemented = errors.New("matrix: operation not implemented")
)
