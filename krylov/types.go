package krylov

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvlnum/matrix"
)

// ErrBadOptions reports an Options field with no sane meaning, such as a
// negative tolerance or iteration budget. Match it with errors.Is.
var ErrBadOptions = errors.New("krylov: invalid options")

// DirectSolver is the contract Refine expects from the solver underneath:
// solve A·x = b in one shot and hand back the solution. Both lvlnum's own
// gauss.Solve and lu.Solve fit after trivial wrapping, as does anything
// external that honors the signature.
type DirectSolver func(a matrix.Matrix, b []float64) ([]float64, error)

// Default knobs, exported so callers can build their own Options around
// the canonical values.
const (
	DefaultTolerance        = 1e-9
	DefaultRefineIterations = 10
)

// Options configures a Krylov-family solve. The zero value selects every
// default, so passing nil (or &Options{}) just works.
type Options struct {
	// InitialGuess seeds the iteration. nil means the zero vector for CG
	// and a fresh direct solve for Refine. When set, its length must
	// equal the system size.
	InitialGuess []float64

	// Tolerance is the convergence threshold: ‖b − A·x‖₂ for CG, ‖δ‖₂
	// for Refine. Zero means DefaultTolerance; negative or NaN is
	// rejected.
	Tolerance float64

	// MaxIterations caps the iteration count. Zero means automatic:
	// 2n for CG (twice the exact-arithmetic bound, roundoff headroom),
	// DefaultRefineIterations for Refine. Negative is rejected.
	MaxIterations int

	// Direct is the solver Refine corrects with. nil means Gaussian
	// elimination with partial pivoting. CG ignores the field.
	Direct DirectSolver
}

// DefaultOptions returns the canonical configuration: zero guess,
// tolerance 1e-9, automatic budget, elimination as the direct solver.
func DefaultOptions() Options {
	return Options{Tolerance: DefaultTolerance}
}

// Result reports the outcome of a Krylov-family solve. X is populated
// even when the budget ran out, so the best iterate is never lost.
type Result struct {
	// X is the final iterate, length n.
	X []float64

	// Iterations is the number of completed iterations. Zero is
	// legitimate: it means the starting point already satisfied the
	// tolerance.
	Iterations int

	// Converged tells whether the criterion was met within the budget.
	Converged bool

	// Residual is the convergence measure at exit: ‖b − A·x‖₂ for CG,
	// the correction norm ‖δ‖₂ for Refine.
	Residual float64
}

// resolve maps a possibly-nil Options pointer to a concrete value with
// the tolerance defaulted. The iteration budget stays as given; zero
// means automatic and each solver knows its own formula.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	o := *opts
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}

	return o
}

// validate rejects resolved option values with no sane meaning.
func (o Options) validate() error {
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return fmt.Errorf("%w: tolerance %g", ErrBadOptions, o.Tolerance)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations %d", ErrBadOptions, o.MaxIterations)
	}

	return nil
}

// guessVector validates and copies the initial guess, or allocates zeros.
func (o Options) guessVector(n int) ([]float64, error) {
	if o.InitialGuess == nil {
		return make([]float64, n), nil
	}
	if err := matrix.ValidateVecLen(o.InitialGuess, n); err != nil {
		return nil, err
	}
	if err := matrix.ValidateFinite(o.InitialGuess); err != nil {
		return nil, err
	}

	return matrix.CloneVec(o.InitialGuess), nil
}
