// Package stationary solves A·x = b by classic fixed-point iteration:
// Jacobi, Gauss-Seidel and SOR (successive over-relaxation).
//
// 🚀 What is a stationary method?
//
//	Split A into its diagonal and the rest, then repeat a cheap O(n²)
//	sweep that pulls the iterate toward the solution:
//	  • Jacobi       — every component updates from the previous sweep only
//	  • Gauss-Seidel — components update in place, reusing fresh values
//	  • SOR          — Gauss-Seidel blended with the old value by a
//	    relaxation factor ω ∈ (0, 2); ω = 1 reproduces Gauss-Seidel exactly
//
//	Convergence is guaranteed for strictly diagonally dominant and for
//	symmetric positive-definite systems, and plausible for anything close.
//	These methods shine when A is large and a full factorization is not
//	worth its O(n³) price.
//
// ✨ Key properties:
//   - the caller's matrix, right-hand side and initial guess are never
//     mutated; iteration runs on private copies
//   - a zero diagonal entry is rejected eagerly with ErrZeroPivot, before
//     any sweep runs
//   - two convergence tests: the largest component change per sweep
//     (AbsoluteDiff, the default) or the residual norm ‖b − A·x‖₂
//     (ResidualNorm)
//   - an exhausted iteration budget still returns the last iterate in
//     Result.X, tagged with matrix.ErrDidNotConverge, so callers can
//     inspect or refine the best estimate
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/stationary"
//
//	res, err := stationary.GaussSeidel(a, b, nil) // defaults: tol 1e-9, 100 sweeps
//	res, err := stationary.SOR(a, b, &stationary.Options{Omega: 1.5})
//	if errors.Is(err, matrix.ErrDidNotConverge) {
//	    // res.X still holds the best iterate, res.Delta its last measure
//	}
//
// Performance: O(n²) per sweep, O(n) extra memory beyond the working copy.
//
// See example_test.go for runnable scenarios.
package stationary
