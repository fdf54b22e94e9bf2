// Package lvlnum is your in-memory toolbox for solving dense linear systems
// Ax = b — from triangular factorizations to pivoted elimination and
// iterative refinement.
//
// 🚀 What is lvlnum?
//
//	A focused numerical library that brings together, per package:
//		• matrix/     — dense data model: Matrix interface, Dense storage, validators
//		• lu/         — factorizations: Doolittle, Crout, Cholesky, LDL + solves from factors
//		• gauss/      — Gaussian elimination with none/partial/scaled pivoting, Det, Inverse
//		• stationary/ — Jacobi, Gauss-Seidel and SOR sweeps with pluggable convergence tests
//		• krylov/     — conjugate gradient and iterative refinement
//		• linsolve/   — the solve(A, b) contract, method adapters, concurrent batch solving
//		• matio/      — MatrixMarket array I/O with transparent gzip
//
// ✨ Why choose lvlnum?
//
//   - Predictable failure modes – every routine reports singularity,
//     indefiniteness or non-convergence through sentinel errors you can
//     inspect with errors.Is; iterative methods hand back their best
//     iterate instead of discarding work
//   - Caller-owned data – solvers work on private copies; your A and b
//     are never mutated
//   - Deterministic pivoting – lowest-index tie-breaks, documented rules
//   - Pure Go core – no cgo, no assembler
//
// Quick taste:
//
//	A, _ := matrix.NewDenseFrom([][]float64{
//		{4, -1, 0},
//		{-1, 4, -1},
//		{0, -1, 4},
//	})
//	x, err := gauss.Solve(A, []float64{15, 10, 10}, nil)
//
// The same system solved iteratively:
//
//	res, err := stationary.GaussSeidel(A, b, nil) // res.X, res.Iterations
//	res, err := krylov.CG(A, b, nil)              // SPD systems
//
// Dive into each package's doc.go for algorithm outlines, complexity notes
// and runnable examples.
//
//	go get github.com/katalvlaran/lvlnum
package lvlnum
