package lu_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/lu"
	"github.com/katalvlaran/lvlnum/matrix"
)

// ////////////////////////////////////////////////////////////////////////////////////////////
// ExampleDoolittle factors a symmetric positive-definite matrix into unit-lower
// L and upper U.
//
// Scenario: the classic 3×3 fixture whose factors are small integers.
// Use-case: inspect pivots, or cache the factors for repeated solves.
// Complexity: O(n³) time, O(n²) memory.
// ////////////////////////////////////////////////////////////////////////////////////////////
func ExampleDoolittle() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})

	l, u, _ := lu.Doolittle(a)
	fmt.Print(l)
	fmt.Print(u)

	// Output:
	// [1, 0, 0]
	// [3, 1, 0]
	// [-4, 5, 1]
	// [4, 12, -16]
	// [0, 1, 5]
	// [0, 0, 9]
}

// ////////////////////////////////////////////////////////////////////////////////////////////
// ExampleCholesky factors the same matrix as A = L·Lᵗ, reading only its
// lower triangle.
//
// Scenario: a covariance-style matrix that is symmetric positive-definite.
// Use-case: half the arithmetic of Doolittle when symmetry is guaranteed.
// Complexity: O(n³) time with roughly half the multiplies of a full LU.
// ////////////////////////////////////////////////////////////////////////////////////////////
func ExampleCholesky() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{4, 12, -16},
		{12, 37, -43},
		{-16, -43, 98},
	})

	l, _ := lu.Cholesky(a)
	fmt.Print(l)

	// Output:
	// [2, 0, 0]
	// [6, 1, 0]
	// [-8, 5, 3]
}

// ////////////////////////////////////////////////////////////////////////////////////////////
// ExampleSolve factors and solves in one call.
//
// Scenario: the 2×2 system {2,1; 1,2}·x = {1, 2}.
// Use-case: one right-hand side, no need to keep the factors around.
// Complexity: O(n³) factorization plus O(n²) substitution.
// ////////////////////////////////////////////////////////////////////////////////////////////
func ExampleSolve() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{2, 1},
		{1, 2},
	})

	x, _ := lu.Solve(a, []float64{1, 2})
	fmt.Println(x)

	// Output:
	// [0 1]
}

// ////////////////////////////////////////////////////////////////////////////////////////////
// ExampleSolveLU factors once and reuses L, U for two right-hand sides.
//
// Scenario: the same coefficient matrix feeds several solves.
// Use-case: amortize the O(n³) factorization across many O(n²) solves.
// ////////////////////////////////////////////////////////////////////////////////////////////
func ExampleSolveLU() {
	a, _ := matrix.NewDenseFrom([][]float64{
		{4, 3},
		{6, 3},
	})

	l, u, _ := lu.Doolittle(a)

	x1, _ := lu.SolveLU(l, u, []float64{10, 12})
	x2, _ := lu.SolveLU(l, u, []float64{7, 9})
	fmt.Println(x1)
	fmt.Println(x2)

	// Output:
	// [1 2]
	// [1 1]
}
