// Package lu provides triangular factorizations of square matrices —
// Doolittle, Crout, Cholesky and LDL — plus forward/back substitution to
// solve systems from the computed factors.
//
// 🚀 What is an LU factorization?
//
//	Writing A = L·U with L lower-triangular and U upper-triangular turns
//	one hard solve into two trivial ones: L·y = b by forward substitution,
//	then U·x = y by back substitution.  Factor once, solve many times.
//	Variants shipped here:
//	  • Doolittle — unit diagonal on L (the classic textbook form)
//	  • Crout    — unit diagonal on U, computed by its own direct recurrence
//	  • Cholesky — A = L·Lᵗ for symmetric positive-definite input
//	  • LDL      — A = L·D·Lᵗ, square-root-free, symmetric indefinite allowed
//
// ✨ Key properties:
//   - factorizers never mutate their input; factors are fresh matrices
//   - no pivoting: a zero pivot fails with matrix.ErrSingular — matrices
//     that factor only after row exchange belong to package gauss
//   - Cholesky reads only the lower triangle; symmetry is the caller's
//     guarantee, a non-positive diagonal sum fails with
//     matrix.ErrNotPositiveDefinite
//   - eager shape checks: errors surface before any allocation
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/lu"
//
//	L, U, err := lu.Doolittle(a)      // a is any matrix.Matrix
//	x, err := lu.SolveLU(L, U, b)     // reuse L, U for many right-hand sides
//
//	// or in one step:
//	x, err := lu.Solve(a, b)
//
// Performance:
//
//   - Factorization: O(n³) time, O(n²) memory for the factors
//   - Substitution:  O(n²) time per right-hand side
//
// See example_test.go for runnable scenarios.
package lu
