package stationary_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/stationary"
)

// tridiag is diagonally dominant, so all three methods must converge on
// it. Exact solution of tridiag·x = {15,10,10}: (1/56)·{275,260,205}.
var (
	tridiag = [][]float64{
		{4, -1, 0},
		{-1, 4, -1},
		{0, -1, 4},
	}
	tridiagRHS = []float64{15, 10, 10}
	tridiagX   = []float64{275.0 / 56, 260.0 / 56, 205.0 / 56}
)

// dense builds a *matrix.Dense from rows or fails the test.
func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()

	d, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return d
}

// TestJacobi_Converges solves the dominant fixture within the default
// budget and checks the Result bookkeeping along with the solution.
func TestJacobi_Converges(t *testing.T) {
	res, err := stationary.Jacobi(dense(t, tridiag), tridiagRHS, nil)
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.InDeltaSlice(t, tridiagX, res.X, 1e-8)
	assert.Greater(t, res.Iterations, 0)
	assert.LessOrEqual(t, res.Iterations, stationary.DefaultMaxIterations)
	assert.Less(t, res.Delta, stationary.DefaultTolerance)
}

// TestGaussSeidel_ConvergesFasterThanJacobi exploits the classic result
// that reusing fresh values squares the contraction factor per sweep.
func TestGaussSeidel_ConvergesFasterThanJacobi(t *testing.T) {
	jac, err := stationary.Jacobi(dense(t, tridiag), tridiagRHS, nil)
	require.NoError(t, err)
	gs, err := stationary.GaussSeidel(dense(t, tridiag), tridiagRHS, nil)
	require.NoError(t, err)

	assert.True(t, gs.Converged)
	assert.InDeltaSlice(t, tridiagX, gs.X, 1e-8)
	assert.Less(t, gs.Iterations, jac.Iterations)
}

// TestJacobi_UsesPreviousIterateOnly pins the semantic difference between
// the two sweeps after exactly one iteration of {2,1; 1,2}·x = {1,2}
// from the zero vector: Jacobi must produce {0.5, 1} (old values only),
// Gauss-Seidel {0.5, 0.75} (fresh x₀ feeds x₁). All values are exact in
// binary, so the comparison is bitwise.
func TestJacobi_UsesPreviousIterateOnly(t *testing.T) {
	opts := &stationary.Options{MaxIterations: 1}
	a := [][]float64{{2, 1}, {1, 2}}
	b := []float64{1, 2}

	jac, err := stationary.Jacobi(dense(t, a), b, opts)
	require.ErrorIs(t, err, matrix.ErrDidNotConverge)
	assert.Equal(t, []float64{0.5, 1}, jac.X)

	gs, err := stationary.GaussSeidel(dense(t, a), b, opts)
	require.ErrorIs(t, err, matrix.ErrDidNotConverge)
	assert.Equal(t, []float64{0.5, 0.75}, gs.X)
}

// TestSOR_OmegaOneIsGaussSeidel runs both with ω = 1 and expects
// bit-identical iterates and the same sweep count: the blend
// (1−ω)·old + ω·new degenerates to the plain update in IEEE arithmetic.
func TestSOR_OmegaOneIsGaussSeidel(t *testing.T) {
	gs, err := stationary.GaussSeidel(dense(t, tridiag), tridiagRHS, nil)
	require.NoError(t, err)
	sor, err := stationary.SOR(dense(t, tridiag), tridiagRHS, &stationary.Options{Omega: 1})
	require.NoError(t, err)

	assert.Equal(t, gs.X, sor.X)
	assert.Equal(t, gs.Iterations, sor.Iterations)
}

// TestSOR_RelaxationRange verifies both sides of ω = 1 still converge on
// the dominant fixture.
func TestSOR_RelaxationRange(t *testing.T) {
	for name, omega := range map[string]float64{
		"under-relaxed 0.5": 0.5,
		"over-relaxed 1.2":  1.2,
	} {
		name, omega := name, omega
		t.Run(name, func(t *testing.T) {
			res, err := stationary.SOR(dense(t, tridiag), tridiagRHS, &stationary.Options{Omega: omega})
			require.NoError(t, err)
			assert.True(t, res.Converged)
			assert.InDeltaSlice(t, tridiagX, res.X, 1e-8)
		})
	}
}

// TestSOR_BudgetExhausted drives ω to 1.9, where the contraction factor
// sits near 0.9 and one hundred sweeps cannot reach 1e-9. The last
// iterate must come back tagged, not discarded.
func TestSOR_BudgetExhausted(t *testing.T) {
	res, err := stationary.SOR(dense(t, tridiag), tridiagRHS, &stationary.Options{Omega: 1.9})
	require.ErrorIs(t, err, matrix.ErrDidNotConverge)

	assert.False(t, res.Converged)
	assert.Equal(t, stationary.DefaultMaxIterations, res.Iterations)
	assert.Len(t, res.X, 3)
	assert.Greater(t, res.Delta, 0.0)
}

// TestJacobi_OscillatesOnSingularSystem iterates {1,2; 2,4}·x = {1,2},
// whose Jacobi iteration flips between {0,0} and {1,0.5} forever. The
// budget must expire with the exact oscillation delta of 1.
func TestJacobi_OscillatesOnSingularSystem(t *testing.T) {
	res, err := stationary.Jacobi(dense(t, [][]float64{{1, 2}, {2, 4}}), []float64{1, 2}, nil)
	require.ErrorIs(t, err, matrix.ErrDidNotConverge)

	assert.False(t, res.Converged)
	assert.Equal(t, stationary.DefaultMaxIterations, res.Iterations)
	assert.Equal(t, 1.0, res.Delta)
}

// TestZeroDiagonalRejected feeds a zero diagonal entry to every method
// and expects the eager ErrZeroPivot, before any sweep runs.
func TestZeroDiagonalRejected(t *testing.T) {
	a := [][]float64{{0, 1}, {1, 2}}
	b := []float64{1, 2}

	solvers := map[string]func(matrix.Matrix, []float64, *stationary.Options) (stationary.Result, error){
		"Jacobi":      stationary.Jacobi,
		"GaussSeidel": stationary.GaussSeidel,
		"SOR":         stationary.SOR,
	}
	for name, solve := range solvers {
		name, solve := name, solve
		t.Run(name, func(t *testing.T) {
			_, err := solve(dense(t, a), b, nil)
			assert.ErrorIs(t, err, stationary.ErrZeroPivot)
		})
	}
}

// TestInvalidOmega probes the boundary of the (0, 2) interval; both
// endpoints are excluded, as are NaN and negatives. Jacobi validates
// Omega too, even though its sweep ignores the value.
func TestInvalidOmega(t *testing.T) {
	a := dense(t, tridiag)

	for _, omega := range []float64{-0.5, 2, 2.5, math.NaN()} {
		_, err := stationary.SOR(a, tridiagRHS, &stationary.Options{Omega: omega})
		assert.ErrorIs(t, err, stationary.ErrInvalidOmega, "omega %g", omega)
	}

	_, err := stationary.Jacobi(a, tridiagRHS, &stationary.Options{Omega: 3})
	assert.ErrorIs(t, err, stationary.ErrInvalidOmega)
}

// TestBadOptions covers the remaining nonsense: negative tolerance,
// negative budget, unknown criterion.
func TestBadOptions(t *testing.T) {
	a := dense(t, tridiag)

	_, err := stationary.GaussSeidel(a, tridiagRHS, &stationary.Options{Tolerance: -1e-9})
	assert.ErrorIs(t, err, stationary.ErrBadOptions)

	_, err = stationary.GaussSeidel(a, tridiagRHS, &stationary.Options{MaxIterations: -5})
	assert.ErrorIs(t, err, stationary.ErrBadOptions)

	_, err = stationary.GaussSeidel(a, tridiagRHS, &stationary.Options{Criterion: stationary.Criterion(9)})
	assert.ErrorIs(t, err, stationary.ErrBadOptions)
}

// TestInitialGuess_AtSolution seeds the iteration with the exact answer;
// one sweep's movement stays under any reasonable tolerance, so a single
// iteration settles it.
func TestInitialGuess_AtSolution(t *testing.T) {
	res, err := stationary.GaussSeidel(dense(t, tridiag), tridiagRHS,
		&stationary.Options{InitialGuess: tridiagX})
	require.NoError(t, err)

	assert.True(t, res.Converged)
	assert.Equal(t, 1, res.Iterations)
}

// TestInitialGuess_Validation rejects a wrong length and non-finite
// entries before iterating.
func TestInitialGuess_Validation(t *testing.T) {
	a := dense(t, tridiag)

	_, err := stationary.Jacobi(a, tridiagRHS, &stationary.Options{InitialGuess: []float64{1, 2}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = stationary.Jacobi(a, tridiagRHS, &stationary.Options{InitialGuess: []float64{1, math.NaN(), 3}})
	assert.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestResidualNormCriterion solves under the ‖b − A·x‖₂ test and checks
// the reported Delta really is the residual norm of the returned iterate.
func TestResidualNormCriterion(t *testing.T) {
	res, err := stationary.GaussSeidel(dense(t, tridiag), tridiagRHS,
		&stationary.Options{Criterion: stationary.ResidualNorm})
	require.NoError(t, err)
	require.True(t, res.Converged)

	ax, err := matrix.MulVec(dense(t, tridiag), res.X)
	require.NoError(t, err)
	norm := 0.0
	for i := range ax {
		diff := tridiagRHS[i] - ax[i]
		norm += diff * diff
	}
	norm = math.Sqrt(norm)

	assert.InDelta(t, norm, res.Delta, 1e-15)
	assert.Less(t, res.Delta, stationary.DefaultTolerance)
}

// TestInputsUntouched confirms the matrix, right-hand side and guess all
// survive a full solve unchanged.
func TestInputsUntouched(t *testing.T) {
	a := dense(t, tridiag)
	before := a.String()
	b := []float64{15, 10, 10}
	guess := []float64{1, 1, 1}

	_, err := stationary.SOR(a, b, &stationary.Options{InitialGuess: guess, Omega: 1.1})
	require.NoError(t, err)

	assert.Equal(t, before, a.String())
	assert.Equal(t, []float64{15, 10, 10}, b)
	assert.Equal(t, []float64{1, 1, 1}, guess)
}

// TestMethodsAgree cross-checks all three methods against each other on
// the dominant fixture.
func TestMethodsAgree(t *testing.T) {
	jac, err := stationary.Jacobi(dense(t, tridiag), tridiagRHS, nil)
	require.NoError(t, err)
	gs, err := stationary.GaussSeidel(dense(t, tridiag), tridiagRHS, nil)
	require.NoError(t, err)
	sor, err := stationary.SOR(dense(t, tridiag), tridiagRHS, &stationary.Options{Omega: 1.1})
	require.NoError(t, err)

	assert.InDeltaSlice(t, jac.X, gs.X, 1e-7)
	assert.InDeltaSlice(t, gs.X, sor.X, 1e-7)
}
