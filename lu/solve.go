package lu

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
)

// Solve factors a with Doolittle and solves A·x = b in one call.
//
// Use it when a single right-hand side is all you need; with several,
// factor once and call SolveLU per vector instead.
//
// Returns:
//   - x: the solution vector, length n
//   - matrix.ErrNonSquare / ErrDimensionMismatch on shape problems
//   - matrix.ErrSingular when factorization hits a zero pivot
//
// Complexity: O(n³) for the factorization plus O(n²) per solve.
func Solve(a matrix.Matrix, b []float64) ([]float64, error) {
	if err := matrix.ValidateSystem(a, b); err != nil {
		return nil, fmt.Errorf("lu: Solve: %w", err)
	}

	l, u, err := Doolittle(a)
	if err != nil {
		return nil, err
	}

	return SolveLU(l, u, b)
}

// SolveLU solves A·x = b given any L·U factorization of A, via L·y = b
// then U·x = y. It divides by both factor diagonals, so it serves
// Doolittle output (unit L) and Crout output (unit U) alike.
//
// Returns:
//   - x: the solution vector, length n
//   - matrix.ErrNilMatrix / ErrNonSquare / ErrDimensionMismatch on shape
//     problems between l, u and b
//   - matrix.ErrSingular when a factor diagonal holds an exact zero
func SolveLU(l, u *matrix.Dense, b []float64) ([]float64, error) {
	if l == nil || u == nil {
		return nil, fmt.Errorf("lu: SolveLU: %w", matrix.ErrNilMatrix)
	}
	n := l.Rows()
	if l.Cols() != n || u.Rows() != n || u.Cols() != n {
		return nil, fmt.Errorf("lu: SolveLU: factors are %dx%d and %dx%d: %w",
			l.Rows(), l.Cols(), u.Rows(), u.Cols(), matrix.ErrDimensionMismatch)
	}
	if err := matrix.ValidateVecLen(b, n); err != nil {
		return nil, fmt.Errorf("lu: SolveLU: %w", err)
	}

	y, err := forwardSubst(l, b)
	if err != nil {
		return nil, err
	}

	return backSubst(u, y)
}

// SolveCholesky solves A·x = b given the Cholesky factor L of A = L·Lᵗ,
// via L·y = b then Lᵗ·x = y. The transpose pass reads L by columns, so no
// transposed copy is ever built.
//
// Returns:
//   - x: the solution vector, length n
//   - matrix.ErrNilMatrix / ErrDimensionMismatch on shape problems
//   - matrix.ErrSingular when the factor diagonal holds an exact zero
func SolveCholesky(l *matrix.Dense, b []float64) ([]float64, error) {
	if l == nil {
		return nil, fmt.Errorf("lu: SolveCholesky: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSystem(l, b); err != nil {
		return nil, fmt.Errorf("lu: SolveCholesky: %w", err)
	}

	y, err := forwardSubst(l, b)
	if err != nil {
		return nil, err
	}

	return backSubstTranspose(l, y)
}

// SolveLDL solves A·x = b given the LDL factorization A = L·D·Lᵗ, via
// L·y = b, then D·z = y (a per-component divide), then Lᵗ·x = z.
//
// Returns:
//   - x: the solution vector, length n
//   - matrix.ErrNilMatrix / ErrDimensionMismatch on shape problems,
//     including len(d) != n
//   - matrix.ErrSingular when a diagonal entry of D is exactly zero
func SolveLDL(l *matrix.Dense, d, b []float64) ([]float64, error) {
	if l == nil {
		return nil, fmt.Errorf("lu: SolveLDL: %w", matrix.ErrNilMatrix)
	}
	if err := matrix.ValidateSystem(l, b); err != nil {
		return nil, fmt.Errorf("lu: SolveLDL: %w", err)
	}
	n := l.Rows()
	if len(d) != n {
		return nil, fmt.Errorf("lu: SolveLDL: diagonal has length %d, want %d: %w",
			len(d), n, matrix.ErrDimensionMismatch)
	}

	y, err := forwardSubst(l, b)
	if err != nil {
		return nil, err
	}
	for i := 0; i < n; i++ {
		if d[i] == 0 {
			return nil, fmt.Errorf("lu: SolveLDL: zero diagonal at %d: %w", i, matrix.ErrSingular)
		}
		y[i] /= d[i]
	}

	return backSubstTranspose(l, y)
}

// forwardSubst solves L·y = b for lower-triangular l, top row down.
func forwardSubst(l *matrix.Dense, b []float64) ([]float64, error) {
	n := l.Rows()
	y := make([]float64, n)

	var (
		i, k int
		row  []float64
		sum  float64
	)
	for i = 0; i < n; i++ {
		row, _ = l.RowView(i) // index validated by the callers
		sum = b[i]
		for k = 0; k < i; k++ {
			sum -= row[k] * y[k]
		}
		if row[i] == 0 {
			return nil, fmt.Errorf("lu: forward substitution: zero diagonal at %d: %w", i, matrix.ErrSingular)
		}
		y[i] = sum / row[i]
	}

	return y, nil
}

// backSubst solves U·x = y for upper-triangular u, bottom row up.
func backSubst(u *matrix.Dense, y []float64) ([]float64, error) {
	n := u.Rows()
	x := make([]float64, n)

	var (
		i, k int
		row  []float64
		sum  float64
	)
	for i = n - 1; i >= 0; i-- {
		row, _ = u.RowView(i)
		sum = y[i]
		for k = i + 1; k < n; k++ {
			sum -= row[k] * x[k]
		}
		if row[i] == 0 {
			return nil, fmt.Errorf("lu: back substitution: zero diagonal at %d: %w", i, matrix.ErrSingular)
		}
		x[i] = sum / row[i]
	}

	return x, nil
}

// backSubstTranspose solves Lᵗ·x = y without materializing the transpose:
// entry (i, k) of Lᵗ is read as l[k][i], a column walk of the stored factor.
func backSubstTranspose(l *matrix.Dense, y []float64) ([]float64, error) {
	n := l.Rows()
	x := make([]float64, n)

	var (
		i, k int
		lv   float64
		sum  float64
	)
	for i = n - 1; i >= 0; i-- {
		sum = y[i]
		for k = i + 1; k < n; k++ {
			lv, _ = l.At(k, i)
			sum -= lv * x[k]
		}
		lv, _ = l.At(i, i)
		if lv == 0 {
			return nil, fmt.Errorf("lu: transpose substitution: zero diagonal at %d: %w", i, matrix.ErrSingular)
		}
		x[i] = sum / lv
	}

	return x, nil
}
