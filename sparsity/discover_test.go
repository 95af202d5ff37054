package sparsity_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/simjac/jacobian"
	"github.com/katalvlaran/simjac/sparsity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diagSquare is f(x) = x² elementwise around x0: its Jacobian is diagonal.
// The evaluator receives a perturbation p and returns f(x0+p).
func diagSquare(x0 []float64) jacobian.Evaluator {
	return func(p []float64) ([]float64, error) {
		out := make([]float64, len(x0))
		for i := range x0 {
			v := x0[i] + p[i]
			out[i] = v * v
		}

		return out, nil
	}
}

// denseLinear is y = A·p + b with a fully dense A: every input touches every output.
func denseLinear(rows, cols int) jacobian.Evaluator {
	return func(p []float64) ([]float64, error) {
		out := make([]float64, rows)
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				out[r] += float64(r+c+1) * p[c]
			}
		}

		return out, nil
	}
}

// TestDiscover_DiagonalSquare verifies that f(x)=x² elementwise
// over 10 inputs discovers exactly the 10 diagonal cells.
func TestDiscover_DiagonalSquare(t *testing.T) {
	x0 := make([]float64, 10)
	for i := range x0 {
		x0[i] = 1.0 + float64(i)*0.1
	}

	p, err := sparsity.Discover(diagSquare(x0), 10)
	require.NoError(t, err)

	assert.Equal(t, 10, p.Rows())
	assert.Equal(t, 10, p.Cols())
	assert.Equal(t, 10, p.NNZ(), "diagonal Jacobian has exactly n nonzeros")
	for i := 0; i < 10; i++ {
		assert.True(t, p.Has(i, i), "diagonal cell (%d,%d) must be nonzero", i, i)
	}
}

// TestDiscover_Dense verifies a fully dense 5×5 Jacobian is discovered in full.
func TestDiscover_Dense(t *testing.T) {
	p, err := sparsity.Discover(denseLinear(5, 5), 5)
	require.NoError(t, err)
	assert.Equal(t, 25, p.NNZ(), "every cell of a dense 5×5 Jacobian is nonzero")
}

// TestDiscover_Idempotent verifies that two runs with equal options on a
// deterministic evaluator yield identical patterns.
func TestDiscover_Idempotent(t *testing.T) {
	x0 := []float64{1, 2, 3, 4}
	opts := []sparsity.Option{sparsity.WithTrials(4), sparsity.WithSeed(42)}

	p1, err := sparsity.Discover(diagSquare(x0), 4, opts...)
	require.NoError(t, err)
	p2, err := sparsity.Discover(diagSquare(x0), 4, opts...)
	require.NoError(t, err)

	assert.True(t, p1.Equal(p2), "Discover must be idempotent for fixed options")
}

// TestDiscover_EmptySparsity verifies the non-fatal empty-pattern condition.
func TestDiscover_EmptySparsity(t *testing.T) {
	constant := func(p []float64) ([]float64, error) {
		return []float64{3.0, -1.0}, nil // no input ever matters
	}

	pattern, err := sparsity.Discover(constant, 3)
	assert.ErrorIs(t, err, sparsity.ErrEmptySparsity, "constant function must report the empty condition")
	require.NotNil(t, pattern, "the empty Pattern is still returned")
	assert.True(t, pattern.Empty())
	assert.Equal(t, 2, pattern.Rows())
	assert.Equal(t, 3, pattern.Cols())
}

// TestDiscover_EvaluatorErrorPropagates verifies fail-fast on evaluator errors.
func TestDiscover_EvaluatorErrorPropagates(t *testing.T) {
	boom := errors.New("solver diverged")
	calls := 0
	failing := func(p []float64) ([]float64, error) {
		calls++
		if calls > 1 { // baseline succeeds, first perturbation fails
			return nil, boom
		}

		return []float64{0}, nil
	}

	_, err := sparsity.Discover(failing, 2)
	assert.ErrorIs(t, err, boom, "evaluator error must propagate unwrapped-matchable")
	assert.Equal(t, 2, calls, "no retry after a failure")
}

// TestDiscover_ContractViolations covers nil evaluator, bad dimensions,
// empty baseline and ragged responses.
func TestDiscover_ContractViolations(t *testing.T) {
	_, err := sparsity.Discover(nil, 3)
	assert.ErrorIs(t, err, jacobian.ErrNilEvaluator)

	_, err = sparsity.Discover(diagSquare([]float64{1}), 0)
	assert.ErrorIs(t, err, sparsity.ErrInvalidDimensions)

	empty := func(p []float64) ([]float64, error) { return nil, nil }
	_, err = sparsity.Discover(empty, 2)
	assert.ErrorIs(t, err, sparsity.ErrNoOutputs)

	calls := 0
	ragged := func(p []float64) ([]float64, error) {
		calls++
		if calls == 1 {
			return []float64{1, 2}, nil
		}

		return []float64{1}, nil // shrinks after the baseline
	}
	_, err = sparsity.Discover(ragged, 2)
	assert.ErrorIs(t, err, jacobian.ErrResponseSize)
}

// TestDiscover_ToleranceFiltersWeakEntries verifies that entries below
// tolerance are classified as structural zeros.
func TestDiscover_ToleranceFiltersWeakEntries(t *testing.T) {
	// y0 = 1e-3·p0 (weak), y1 = 10·p1 (strong).
	eval := func(p []float64) ([]float64, error) {
		return []float64{1e-3 * p[0], 10 * p[1]}, nil
	}

	p, err := sparsity.Discover(eval, 2, sparsity.WithTolerance(1.0))
	require.NoError(t, err)
	assert.False(t, p.Has(0, 0), "weak sensitivity must be filtered by tol")
	assert.True(t, p.Has(1, 1), "strong sensitivity must survive tol")
	assert.Equal(t, 1, p.NNZ())
}

// TestOptions_PanicOnNonsense verifies constructor validation.
func TestOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { sparsity.WithTrials(0) })
	assert.Panics(t, func() { sparsity.WithTolerance(-1) })
	assert.Panics(t, func() { sparsity.WithPerturbation(0) })
	assert.NotPanics(t, func() { sparsity.WithSeed(-5) })
}
