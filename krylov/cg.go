package krylov

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlnum/matrix"
)

// CG solves A·x = b for symmetric positive-definite A by the conjugate
// gradient method.
//
// Starting from r = p = b − A·x₀, each iteration takes
//
//	α = rᵗr / pᵗA·p        (step length along the search direction)
//	x ← x + α·p
//	r ← r − α·A·p
//	β = r'ᵗr' / rᵗr        (Gram-Schmidt against the old direction)
//	p ← r' + β·p
//
// and stops when ‖r‖₂ < Tolerance. The starting residual is checked
// before the first iteration, so a solved system reports zero iterations.
//
// Symmetry is verified eagerly (one O(n²) scan); positive definiteness
// reveals itself mid-run through the curvature pᵗA·p, which a true SPD
// matrix keeps strictly positive.
//
// A nil opts selects DefaultOptions; a zero budget means 2n iterations,
// twice the exact-arithmetic bound. Inputs are never mutated.
//
// Returns:
//   - Result with the final iterate, iteration count and ‖r‖₂
//   - matrix.ErrNonSquare / ErrDimensionMismatch on shape problems
//   - matrix.ErrAsymmetry when A is not symmetric within matrix.DefaultEpsilon
//   - matrix.ErrNotPositiveDefinite when a curvature pᵗA·p is not positive
//   - ErrBadOptions on nonsensical options
//   - matrix.ErrDidNotConverge when the budget runs out; Result.X still
//     holds the last iterate
//
// Complexity: one O(n²) matrix-vector product per iteration, O(n) extra
// memory.
func CG(a matrix.Matrix, b []float64, opts *Options) (Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return Result{}, fmt.Errorf("krylov: CG: %w", err)
	}
	if err := matrix.ValidateSymmetric(a, matrix.DefaultEpsilon); err != nil {
		return Result{}, fmt.Errorf("krylov: CG: %w", err)
	}
	o := resolve(opts)
	if err := o.validate(); err != nil {
		return Result{}, fmt.Errorf("krylov: CG: %w", err)
	}

	work, err := matrix.ToDense(a)
	if err != nil {
		return Result{}, fmt.Errorf("krylov: CG: %w", err)
	}
	n := work.Rows()

	maxIter := o.MaxIterations
	if maxIter == 0 {
		maxIter = 2 * n
	}

	x, err := o.guessVector(n)
	if err != nil {
		return Result{}, fmt.Errorf("krylov: CG: initial guess: %w", err)
	}

	// r = b − A·x₀
	r, _ := matrix.MulVec(work, x) // shape already validated
	floats.Scale(-1, r)
	floats.Add(r, b)

	rr := floats.Dot(r, r)
	norm := math.Sqrt(rr)
	if norm < o.Tolerance {
		return Result{X: x, Iterations: 0, Converged: true, Residual: norm}, nil
	}

	p := matrix.CloneVec(r)

	var (
		iters      int
		ap         []float64
		pap, alpha float64
		rrNew      float64
	)
	for iters < maxIter {
		iters++

		ap, _ = matrix.MulVec(work, p)
		pap = floats.Dot(p, ap)
		if pap <= 0 || math.IsNaN(pap) {
			return Result{}, fmt.Errorf("krylov: CG: iteration %d: curvature %g: %w",
				iters, pap, matrix.ErrNotPositiveDefinite)
		}

		alpha = rr / pap
		floats.AddScaled(x, alpha, p)   // x += α·p
		floats.AddScaled(r, -alpha, ap) // r -= α·A·p

		rrNew = floats.Dot(r, r)
		norm = math.Sqrt(rrNew)
		if norm < o.Tolerance {
			return Result{X: x, Iterations: iters, Converged: true, Residual: norm}, nil
		}

		floats.AddScaledTo(p, r, rrNew/rr, p) // p = r + β·p
		rr = rrNew
	}

	res := Result{X: x, Iterations: iters, Residual: norm}

	return res, fmt.Errorf("krylov: CG: %d iterations, residual %.3g: %w",
		iters, norm, matrix.ErrDidNotConverge)
}
