package stationary

import (
	"errors"
	"fmt"
	"math"
)

// NOTE ON NAMING & PREFIXING:
// Package-local failures carry their own sentinels below. Numerical
// outcomes shared across the module (ErrDidNotConverge, shape errors)
// come from package matrix, so callers match one taxonomy everywhere.
var (
	// ErrZeroPivot reports a zero on the diagonal of A. Stationary sweeps
	// divide by the diagonal, so this is checked once, eagerly, before
	// the first sweep.
	ErrZeroPivot = errors.New("stationary: zero diagonal entry")

	// ErrInvalidOmega reports a relaxation factor outside (0, 2), the
	// only interval where SOR can converge.
	ErrInvalidOmega = errors.New("stationary: omega must lie in (0, 2)")

	// ErrBadOptions reports an Options field that makes no sense, such as
	// a negative tolerance or an unknown convergence criterion.
	ErrBadOptions = errors.New("stationary: invalid options")
)

// Criterion selects the convergence test applied after every sweep.
type Criterion int

const (
	// AbsoluteDiff declares convergence when every component moved by
	// less than Tolerance during the sweep. The default: cheap, and the
	// classic stopping rule for these methods.
	AbsoluteDiff Criterion = iota

	// ResidualNorm declares convergence when ‖b − A·x‖₂ < Tolerance.
	// Costs an extra matrix-vector product per sweep, but measures the
	// equation error itself rather than the iterate's movement.
	ResidualNorm
)

// Default knobs, exported so callers can build their own Options around
// the canonical values.
const (
	DefaultTolerance     = 1e-9
	DefaultMaxIterations = 100
	DefaultOmega         = 1.0
)

// Options configures a stationary solve. The zero value selects every
// default, so passing nil (or &Options{}) just works.
type Options struct {
	// InitialGuess seeds the iteration. nil means the zero vector.
	// When set, its length must equal the system size.
	InitialGuess []float64

	// Tolerance is the convergence threshold for the chosen Criterion.
	// Zero means DefaultTolerance; negative or NaN is rejected.
	Tolerance float64

	// MaxIterations caps the number of sweeps. Zero means
	// DefaultMaxIterations; negative is rejected.
	MaxIterations int

	// Criterion picks the convergence test. Default: AbsoluteDiff.
	Criterion Criterion

	// Omega is the SOR relaxation factor and must lie in (0, 2):
	// under-relaxation below 1, over-relaxation above. Zero means
	// DefaultOmega. Jacobi and GaussSeidel ignore the value but still
	// reject one outside the interval.
	Omega float64
}

// DefaultOptions returns the canonical configuration: zero initial guess,
// tolerance 1e-9, 100 sweeps, AbsoluteDiff criterion, ω = 1.
func DefaultOptions() Options {
	return Options{
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		Omega:         DefaultOmega,
	}
}

// Result reports the outcome of an iterative solve. X is populated even
// when the budget ran out, so the best iterate is never lost.
type Result struct {
	// X is the final iterate, length n.
	X []float64

	// Iterations is the number of completed sweeps.
	Iterations int

	// Converged tells whether the criterion was met within the budget.
	Converged bool

	// Delta is the criterion's value at the last sweep: the largest
	// component change for AbsoluteDiff, ‖b − A·x‖₂ for ResidualNorm.
	Delta float64
}

// resolve maps a possibly-nil Options pointer to a concrete value with
// every zero field replaced by its default.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	o := *opts
	if o.Tolerance == 0 {
		o.Tolerance = DefaultTolerance
	}
	if o.MaxIterations == 0 {
		o.MaxIterations = DefaultMaxIterations
	}
	if o.Omega == 0 {
		o.Omega = DefaultOmega
	}

	return o
}

// validate rejects option values that survived resolve with no sane
// meaning. Called on resolved Options only.
func (o Options) validate() error {
	if o.Tolerance < 0 || math.IsNaN(o.Tolerance) {
		return fmt.Errorf("%w: tolerance %g", ErrBadOptions, o.Tolerance)
	}
	if o.MaxIterations < 0 {
		return fmt.Errorf("%w: max iterations %d", ErrBadOptions, o.MaxIterations)
	}
	if o.Criterion != AbsoluteDiff && o.Criterion != ResidualNorm {
		return fmt.Errorf("%w: criterion %d", ErrBadOptions, int(o.Criterion))
	}
	if o.Omega <= 0 || o.Omega >= 2 || math.IsNaN(o.Omega) {
		return fmt.Errorf("%w: got %g", ErrInvalidOmega, o.Omega)
	}

	return nil
}
