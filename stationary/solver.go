package stationary

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvlnum/matrix"
)

// solver bundles the validated ingredients every sweep needs: a private
// dense copy of A, the (read-only) right-hand side, resolved options and
// the current iterate.
type solver struct {
	a *matrix.Dense
	b []float64
	o Options
	x []float64
}

// newSolver validates the system, resolves options, copies the matrix
// and seeds the iterate. name tags every error with the public entry
// point that failed.
func newSolver(name string, a matrix.Matrix, b []float64, opts *Options) (*solver, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("stationary: %s: %w", name, err)
	}
	o := resolve(opts)
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("stationary: %s: %w", name, err)
	}

	work, err := matrix.ToDense(a)
	if err != nil {
		return nil, fmt.Errorf("stationary: %s: %w", name, err)
	}
	n := work.Rows()

	// Sweeps divide by the diagonal on every pass; reject a zero once,
	// up front, instead of n times per sweep.
	var v float64
	for j := 0; j < n; j++ {
		if v, _ = work.At(j, j); v == 0 {
			return nil, fmt.Errorf("stationary: %s: diagonal entry %d: %w", name, j, ErrZeroPivot)
		}
	}

	x := make([]float64, n)
	if o.InitialGuess != nil {
		if err = matrix.ValidateVecLen(o.InitialGuess, n); err != nil {
			return nil, fmt.Errorf("stationary: %s: initial guess: %w", name, err)
		}
		if err = matrix.ValidateFinite(o.InitialGuess); err != nil {
			return nil, fmt.Errorf("stationary: %s: initial guess: %w", name, err)
		}
		copy(x, o.InitialGuess)
	}

	return &solver{a: work, b: b, o: o, x: x}, nil
}

// measure turns the sweep's largest component change into the value the
// configured criterion compares against Tolerance.
func (s *solver) measure(delta float64) float64 {
	if s.o.Criterion == ResidualNorm {
		r, _ := matrix.MulVec(s.a, s.x) // shape already validated
		floats.Sub(r, s.b)

		return floats.Norm(r, 2)
	}

	return delta
}

// finish assembles the Result after the iteration loop. The last iterate
// is returned either way; only the error tells success from exhaustion.
func (s *solver) finish(name string, iters int, m float64) (Result, error) {
	res := Result{X: s.x, Iterations: iters, Delta: m}
	if m < s.o.Tolerance {
		res.Converged = true

		return res, nil
	}

	return res, fmt.Errorf("stationary: %s: %d sweeps, measure %.3g: %w",
		name, iters, m, matrix.ErrDidNotConverge)
}
