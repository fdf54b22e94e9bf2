package gauss

import (
	"errors"
	"fmt"
)

// ErrUnknownPivot reports an Options.Pivot value outside the declared
// policies. Match it with errors.Is.
var ErrUnknownPivot = errors.New("gauss: unknown pivot policy")

// PivotPolicy selects the row-exchange strategy used during elimination.
type PivotPolicy int

const (
	// PivotPartial exchanges each pivot row for the one holding the
	// largest absolute candidate in the current column. The zero value,
	// and the right answer for almost every system.
	PivotPartial PivotPolicy = iota

	// PivotNone performs no row exchange. An exact zero on the diagonal
	// fails with matrix.ErrSingular even when an exchange would have
	// rescued the system; choose it only for inputs known to be safely
	// ordered, such as diagonally dominant systems.
	PivotNone

	// PivotScaled exchanges by the largest candidate relative to its
	// row's largest initial magnitude. More robust than PivotPartial
	// when row scales differ wildly, at the cost of one extra O(n²)
	// scan up front.
	PivotScaled
)

// Options configures elimination-based operations. The zero value is
// ready to use and equals DefaultOptions().
type Options struct {
	// Pivot is the row-exchange strategy. Default: PivotPartial.
	Pivot PivotPolicy
}

// DefaultOptions returns the canonical configuration: partial pivoting.
func DefaultOptions() Options {
	return Options{Pivot: PivotPartial}
}

// Validate reports ErrUnknownPivot when the policy is not one of the
// declared constants.
func (o Options) Validate() error {
	switch o.Pivot {
	case PivotPartial, PivotNone, PivotScaled:
		return nil
	default:
		return fmt.Errorf("%w: %d", ErrUnknownPivot, int(o.Pivot))
	}
}

// resolve maps a possibly-nil Options pointer to a concrete value.
func resolve(opts *Options) Options {
	if opts == nil {
		return DefaultOptions()
	}

	return *opts
}
