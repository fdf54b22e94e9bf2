package krylov

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlnum/gauss"
	"github.com/katalvlaran/lvlnum/matrix"
)

// Refine solves A·x = b with the configured direct solver, then polishes
// the answer by iterative refinement: each pass computes the residual
// r = b − A·x in working precision, solves A·δ = r for the correction
// and applies it.
//
//	x ← x + δ,  stop when ‖δ‖₂ < Tolerance
//
// One pass usually recovers whatever accuracy cancellation cost the
// direct solve; the budget exists for ill-conditioned systems where the
// corrections shrink slowly, and for misbehaving injected solvers, whose
// non-contracting corrections would otherwise loop forever.
//
// When Options.InitialGuess is set the initial direct solve is skipped
// and refinement starts from the guess, which turns Refine into a
// general residual-correction loop.
//
// A nil opts selects DefaultOptions: Gaussian elimination with partial
// pivoting underneath, DefaultRefineIterations passes at most. Inputs
// are never mutated.
//
// Returns:
//   - Result with the final iterate, pass count and last ‖δ‖₂
//   - matrix.ErrNonSquare / ErrDimensionMismatch on shape problems
//   - ErrBadOptions on nonsensical options
//   - any error of the underlying direct solver, unchanged in cause
//   - matrix.ErrDidNotConverge when corrections refuse to shrink;
//     Result.X still holds the last iterate
//
// Complexity: one direct solve plus one O(n²) product per pass.
func Refine(a matrix.Matrix, b []float64, opts *Options) (Result, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return Result{}, fmt.Errorf("krylov: Refine: %w", err)
	}
	o := resolve(opts)
	if err := o.validate(); err != nil {
		return Result{}, fmt.Errorf("krylov: Refine: %w", err)
	}

	work, err := matrix.ToDense(a)
	if err != nil {
		return Result{}, fmt.Errorf("krylov: Refine: %w", err)
	}
	n := work.Rows()

	maxIter := o.MaxIterations
	if maxIter == 0 {
		maxIter = DefaultRefineIterations
	}

	direct := o.Direct
	if direct == nil {
		direct = func(m matrix.Matrix, rhs []float64) ([]float64, error) {
			return gauss.Solve(m, rhs, nil)
		}
	}

	var x []float64
	if o.InitialGuess != nil {
		if x, err = o.guessVector(n); err != nil {
			return Result{}, fmt.Errorf("krylov: Refine: initial guess: %w", err)
		}
	} else {
		if x, err = direct(work, b); err != nil {
			return Result{}, fmt.Errorf("krylov: Refine: initial solve: %w", err)
		}
		if err = matrix.ValidateVecLen(x, n); err != nil {
			return Result{}, fmt.Errorf("krylov: Refine: initial solve result: %w", err)
		}
	}

	var (
		iters int
		r, d  []float64
		delta float64
	)
	for iters < maxIter {
		iters++

		// r = b − A·x, then the correction δ from A·δ = r.
		r, _ = matrix.MulVec(work, x) // shape already validated
		floats.Scale(-1, r)
		floats.Add(r, b)

		if d, err = direct(work, r); err != nil {
			return Result{}, fmt.Errorf("krylov: Refine: pass %d: %w", iters, err)
		}
		if err = matrix.ValidateVecLen(d, n); err != nil {
			return Result{}, fmt.Errorf("krylov: Refine: pass %d result: %w", iters, err)
		}

		floats.Add(x, d)
		delta = floats.Norm(d, 2)
		if delta < o.Tolerance {
			return Result{X: x, Iterations: iters, Converged: true, Residual: delta}, nil
		}
	}

	res := Result{X: x, Iterations: iters, Residual: delta}

	return res, fmt.Errorf("krylov: Refine: %d passes, correction %.3g: %w",
		iters, delta, matrix.ErrDidNotConverge)
}
