package lu

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
)

// LDL factors a symmetric matrix into A = L·D·Lᵗ where L carries a unit
// diagonal and D is diagonal, returned as a plain slice.
//
// The square-root-free cousin of Cholesky: it tolerates negative diagonal
// entries in D, so symmetric indefinite matrices factor fine as long as no
// pivot lands on exactly zero. Like Cholesky, only the lower triangle of a
// is read and symmetry is the caller's guarantee.
//
// Column by column:
//
//	D[j]    = A[j][j] − Σₖ L[j][k]²·D[k]             (k < j)
//	L[i][j] = (A[i][j] − Σₖ L[i][k]·L[j][k]·D[k]) / D[j]   (i > j, k < j)
//
// Returns:
//   - L: freshly allocated unit-lower factor
//   - d: the diagonal of D, length n
//   - matrix.ErrNonSquare / ErrNilMatrix when a is not a square matrix
//   - matrix.ErrSingular when a pivot D[j] computes to exactly zero
//
// Complexity: O(n³) time, O(n²) extra memory.
func LDL(a matrix.Matrix) (l *matrix.Dense, d []float64, err error) {
	if err = matrix.ValidateSquare(a); err != nil {
		return nil, nil, fmt.Errorf("lu: LDL: %w", err)
	}
	n := a.Rows()

	// Shape is validated, so construction and element access cannot fail.
	l, _ = matrix.NewDense(n, n)
	d = make([]float64, n)

	var (
		i, j, k int
		sum     float64
		li, lj  float64
		av      float64
	)
	for j = 0; j < n; j++ {
		_ = l.Set(j, j, 1)

		av, _ = a.At(j, j)
		sum = av
		for k = 0; k < j; k++ {
			lj, _ = l.At(j, k)
			sum -= lj * lj * d[k]
		}
		d[j] = sum
		if d[j] == 0 {
			return nil, nil, fmt.Errorf("lu: LDL: zero pivot at index %d: %w", j, matrix.ErrSingular)
		}

		for i = j + 1; i < n; i++ {
			av, _ = a.At(i, j)
			sum = av
			for k = 0; k < j; k++ {
				li, _ = l.At(i, k)
				lj, _ = l.At(j, k)
				sum -= li * lj * d[k]
			}
			_ = l.Set(i, j, sum/d[j])
		}
	}

	return l, d, nil
}
