package gauss

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Inverse computes A⁻¹ by Gauss-Jordan elimination of the augmented
// matrix [A | I]: forward elimination under the configured pivot policy,
// then a backward sweep that normalizes each pivot row and clears the
// column above it, leaving the inverse in the right half.
//
// A nil opts selects DefaultOptions. The input is never mutated.
//
// Returns:
//   - the n×n inverse as a fresh *matrix.Dense
//   - matrix.ErrNonSquare / ErrNilMatrix when a is not a square matrix
//   - ErrUnknownPivot when opts names a policy that does not exist
//   - matrix.ErrSingular when a has no inverse (or, under PivotNone,
//     when it merely needs a row exchange the policy forbids)
//
// Complexity: O(n³) time on an n×2n working matrix.
func Inverse(a matrix.Matrix, opts *Options) (*matrix.Dense, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return nil, fmt.Errorf("gauss: Inverse: %w", err)
	}
	o := resolve(opts)
	if err := o.Validate(); err != nil {
		return nil, fmt.Errorf("gauss: Inverse: %w", err)
	}

	n := a.Rows()
	aug, err := augmentIdentity(a)
	if err != nil {
		return nil, fmt.Errorf("gauss: Inverse: %w", err)
	}
	if _, err = eliminate(aug, n, o.Pivot); err != nil {
		return nil, fmt.Errorf("gauss: Inverse: %w", err)
	}

	// Backward Jordan sweep, bottom pivot first. By the time pivot j is
	// processed, the passes for columns j+1..n-1 have already cleared
	// row j to the right of its diagonal, so dividing by the pivot turns
	// the left half of the row into a unit vector.
	var (
		i, j, k int
		factor  float64
	)
	for j = n - 1; j >= 0; j-- {
		pivRow, _ := aug.RowView(j)
		factor = pivRow[j]
		for k = j; k < 2*n; k++ {
			pivRow[k] /= factor
		}
		for i = 0; i < j; i++ {
			row, _ := aug.RowView(i)
			if row[j] == 0 {
				continue
			}
			factor = row[j]
			row[j] = 0
			for k = n; k < 2*n; k++ {
				row[k] -= factor * pivRow[k]
			}
		}
	}

	// Extract the right half.
	inv, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("gauss: Inverse: %w", err)
	}
	for i = 0; i < n; i++ {
		src, _ := aug.RowView(i)
		dst, _ := inv.RowView(i)
		copy(dst, src[n:])
	}

	return inv, nil
}

// augmentIdentity copies a into the left half of a fresh n×2n working
// matrix and writes the identity into the right half.
func augmentIdentity(a matrix.Matrix) (*matrix.Dense, error) {
	n := a.Rows()
	aug, err := matrix.NewDense(n, 2*n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		row, _ := aug.RowView(i)
		for j = 0; j < n; j++ {
			if v, err = a.At(i, j); err != nil {
				return nil, err
			}
			row[j] = v
		}
		row[n+i] = 1
	}

	return aug, nil
}
