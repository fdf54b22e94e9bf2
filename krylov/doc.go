// Package krylov hosts the solvers that build their answer from Krylov
// subspaces and residual corrections: the conjugate gradient method and
// iterative refinement.
//
// 🚀 What lives here?
//
//	CG treats A·x = b with symmetric positive-definite A as minimizing
//	the quadratic ½xᵗAx − bᵗx. Each iteration walks one A-conjugate
//	direction, so in exact arithmetic n steps finish the job; in floating
//	point it usually stops far earlier, the moment ‖b − A·x‖₂ drops
//	under tolerance.
//
//	Refine polishes the output of a direct solver: compute the residual
//	r = b − A·x, solve A·δ = r for the correction, add it on, repeat.
//	The direct solver is injected through Options.Direct, so anything
//	satisfying the contract can sit underneath — by default, Gaussian
//	elimination with partial pivoting.
//
// ✨ Key properties:
//   - CG verifies symmetry eagerly and reports matrix.ErrAsymmetry before
//     iterating; non-positive curvature pᵗAp mid-run reports
//     matrix.ErrNotPositiveDefinite
//   - a zero iteration budget means automatic: 2n directions for CG,
//     DefaultRefineIterations passes for Refine
//   - an exhausted budget returns the last iterate tagged with
//     matrix.ErrDidNotConverge, never an empty result
//   - inputs are never mutated; iteration runs on private buffers
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lvlnum/krylov"
//
//	res, err := krylov.CG(a, b, nil)     // SPD systems
//	res, err := krylov.Refine(a, b, nil) // direct solve + polish
//
//	custom := &krylov.Options{
//	    Direct: func(m matrix.Matrix, rhs []float64) ([]float64, error) {
//	        return lu.Solve(m, rhs) // factor-based direct solver instead
//	    },
//	}
//	res, err = krylov.Refine(a, b, custom)
//
// Performance: CG costs one matrix-vector product per iteration, O(n²);
// Refine costs one direct solve plus one product per pass.
//
// See example_test.go for runnable scenarios.
package krylov
