// Package linsolve puts one face on every solver in the module and runs
// batches of independent systems concurrently.
//
// 🚀 What is it for?
//
//	The solver packages each expose their own entry point with their own
//	options. Code that just wants "solve A·x = b, I picked the method
//	already" programs against the Solver interface instead and receives
//	any of them through an adapter:
//	  • Elimination        — gauss.Solve with a pivot policy
//	  • LU                 — Doolittle factorization and substitution
//	  • Jacobi, GaussSeidel, SOR — stationary iteration
//	  • ConjugateGradient  — Krylov iteration for SPD systems
//	  • Refinement         — direct solve plus residual polish
//
//	SolveBatch fans a slice of Systems out across a bounded worker pool
//	and collects index-aligned solutions, failing fast on the first
//	error and honoring context cancellation.
//
// ✨ Key properties:
//   - adapters carry their package's Options verbatim; nil means defaults
//   - iterative adapters return the last iterate together with
//     matrix.ErrDidNotConverge, preserving the best-effort contract
//   - results[i] always belongs to systems[i], whatever order workers
//     finish in
//   - structured logging through log/slog, silent by default
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/linsolve"
//
//	var s linsolve.Solver = linsolve.Elimination{}
//	x, err := s.Solve(a, b)
//
//	xs, err := linsolve.SolveBatch(ctx, linsolve.ConjugateGradient{},
//	    []linsolve.System{{A: a1, B: b1}, {A: a2, B: b2}}, nil)
//
// See example_test.go for runnable scenarios.
package linsolve
