package gauss

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Det computes the determinant of a square matrix as the signed product
// of the pivots left by elimination: each row exchange flips the sign.
//
// Det always uses partial pivoting. That is not a stylistic choice:
// under partial pivoting a zero pivot means the entire remaining column
// is zero, which is proof of singularity, so Det can return exactly 0
// instead of an error. Under PivotNone a zero pivot proves nothing.
//
// Returns:
//   - the determinant; exactly 0 for singular input, no error attached
//   - matrix.ErrNonSquare / ErrNilMatrix when a is not a square matrix
//
// Complexity: O(n³) time, O(n²) working memory.
func Det(a matrix.Matrix) (float64, error) {
	if err := matrix.ValidateSquare(a); err != nil {
		return 0, fmt.Errorf("gauss: Det: %w", err)
	}

	work, err := matrix.ToDense(a) // a private copy; the caller's data stays intact
	if err != nil {
		return 0, fmt.Errorf("gauss: Det: %w", err)
	}

	n := work.Rows()
	swaps, err := eliminate(work, n, PivotPartial)
	if err != nil {
		if errors.Is(err, matrix.ErrSingular) {
			return 0, nil
		}

		return 0, fmt.Errorf("gauss: Det: %w", err)
	}

	det := 1.0
	for i := 0; i < n; i++ {
		v, _ := work.At(i, i)
		det *= v
	}
	if swaps%2 == 1 {
		det = -det
	}

	return det, nil
}
