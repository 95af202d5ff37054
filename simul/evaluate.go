package simul

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/simjac/coloring"
	"github.com/katalvlaran/simjac/jacobian"
)

// EvaluateColored — Jacobian reconstruction through a coloring
//
// Description:
//
//	One evaluator call per color: the perturbation vector is nonzero at
//	every column of the group, and the group's decode table attributes each
//	response row to its owning column. Total calls = NumColors (+1 baseline
//	in finite-difference mode) instead of NumColumns — the entire value
//	proposition of coloring.
//
// Algorithm Outline (forward difference):
//  1. base = eval(0⃗); m = len(base).
//  2. For each group g:
//     pert[col] = step for every col in g; resp = eval(pert)
//     sens = (resp − base) / step
//     for (row → col) in decode(g): J[row, col] = sens[row].
//  3. Freeze and hand back the buffer.
//
// Complex-step mode skips the baseline: resp = ceval(i·step·Σ e_col) and
// sens = imag(resp) / step, exact to machine precision.
//
// Numeric semantics are forward-mode only; see the package doc.
//
// Errors:
//   - jacobian.ErrNilEvaluator — eval is nil (finite-difference mode).
//   - ErrNilColoring           — c is nil.
//   - ErrComplexEvaluator      — ComplexStep mode without a ComplexEvaluator.
//   - ErrNoOutputs             — empty response.
//   - jacobian.ErrResponseSize — response length drifts between calls.
//   - jacobian.ErrOutOfRange   — a decode row exceeds the output dimension
//     (dimension mismatch between coloring and function).
//
// Complexity: NumColors (+1) evaluator calls, O(nnz) decode work.
func EvaluateColored(eval jacobian.Evaluator, c *coloring.Coloring, opts ...Option) (*jacobian.Buffer, error) {
	if c == nil {
		return nil, ErrNilColoring
	}
	o := gatherOptions(opts...)
	if o.mode == jacobian.ComplexStep {
		return evaluateColoredComplex(o.ceval, c, o.step)
	}
	if eval == nil {
		return nil, jacobian.ErrNilEvaluator
	}

	n := c.NumColumns()
	base, err := eval(make([]float64, n))
	if err != nil {
		return nil, fmt.Errorf("simul: baseline evaluation: %w", err)
	}
	m := len(base)
	if m == 0 {
		return nil, ErrNoOutputs
	}

	buf, err := jacobian.NewBuffer(m, n)
	if err != nil {
		return nil, err
	}

	pert := make([]float64, n)
	sens := make([]float64, m)
	for g := 0; g < c.NumColors(); g++ {
		group := c.Group(g)
		for _, col := range group {
			pert[col] = o.step
		}

		resp, evalErr := eval(pert)
		for _, col := range group {
			pert[col] = 0 // restore the scratch vector before any return path
		}
		if evalErr != nil {
			return nil, fmt.Errorf("simul: group %d evaluation: %w", g, evalErr)
		}
		if len(resp) != m {
			return nil, fmt.Errorf("simul: group %d: got %d outputs, want %d: %w",
				g, len(resp), m, jacobian.ErrResponseSize)
		}

		floats.SubTo(sens, resp, base)
		floats.Scale(1/o.step, sens)

		if decodeErr := decodeGroup(buf, c, g, sens); decodeErr != nil {
			return nil, decodeErr
		}
	}

	buf.Freeze()

	return buf, nil
}

// evaluateColoredComplex is the ComplexStep body of EvaluateColored.
func evaluateColoredComplex(ceval jacobian.ComplexEvaluator, c *coloring.Coloring, step float64) (*jacobian.Buffer, error) {
	if ceval == nil {
		return nil, ErrComplexEvaluator
	}

	n := c.NumColumns()
	var (
		buf  *jacobian.Buffer
		m    int
		sens []float64
	)

	x := make([]complex128, n)
	for g := 0; g < c.NumColors(); g++ {
		group := c.Group(g)
		for _, col := range group {
			x[col] = complex(0, step)
		}

		resp, evalErr := ceval(x)
		for _, col := range group {
			x[col] = 0
		}
		if evalErr != nil {
			return nil, fmt.Errorf("simul: group %d evaluation: %w", g, evalErr)
		}

		if buf == nil {
			// The first response fixes the output dimension.
			m = len(resp)
			if m == 0 {
				return nil, ErrNoOutputs
			}
			var bufErr error
			if buf, bufErr = jacobian.NewBuffer(m, n); bufErr != nil {
				return nil, bufErr
			}
			sens = make([]float64, m)
		} else if len(resp) != m {
			return nil, fmt.Errorf("simul: group %d: got %d outputs, want %d: %w",
				g, len(resp), m, jacobian.ErrResponseSize)
		}

		for row := 0; row < m; row++ {
			sens[row] = imag(resp[row]) / step
		}

		if decodeErr := decodeGroup(buf, c, g, sens); decodeErr != nil {
			return nil, decodeErr
		}
	}

	buf.Freeze()

	return buf, nil
}

// decodeGroup writes the rows owned by group g into the buffer.
// A decode row past the output dimension surfaces as jacobian.ErrOutOfRange,
// i.e. a coloring/function dimension mismatch — never silently truncated.
func decodeGroup(buf *jacobian.Buffer, c *coloring.Coloring, g int, sens []float64) error {
	for row, col := range c.DecodeTable(g) {
		if row < 0 || row >= len(sens) {
			return fmt.Errorf("simul: group %d decode row %d outside %d outputs: %w",
				g, row, len(sens), jacobian.ErrOutOfRange)
		}
		if err := buf.Set(row, col, sens[row]); err != nil {
			return err
		}
	}

	return nil
}

// EvaluateDense — one-perturbation-per-column fallback
//
// Description:
//
//	The uncolored path: perturb each column alone and record every nonzero
//	sensitivity. Used when discovery finds no structure, when a coloring is
//	rejected by the improvement threshold, or directly by callers that want
//	a reference Jacobian.
//
// Errors:
//   - jacobian.ErrNilEvaluator / ErrComplexEvaluator — missing callback.
//   - ErrInvalidDimensions     — rows or cols <= 0.
//   - jacobian.ErrResponseSize — response length differs from rows.
//
// Complexity: cols (+1 baseline in finite-difference mode) evaluator calls.
func EvaluateDense(eval jacobian.Evaluator, rows, cols int, opts ...Option) (*jacobian.Buffer, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)
	if o.mode == jacobian.ComplexStep {
		return evaluateDenseComplex(o.ceval, rows, cols, o.step)
	}
	if eval == nil {
		return nil, jacobian.ErrNilEvaluator
	}

	base, err := eval(make([]float64, cols))
	if err != nil {
		return nil, fmt.Errorf("simul: baseline evaluation: %w", err)
	}
	if len(base) != rows {
		return nil, fmt.Errorf("simul: baseline: got %d outputs, want %d: %w",
			len(base), rows, jacobian.ErrResponseSize)
	}

	buf, err := jacobian.NewBuffer(rows, cols)
	if err != nil {
		return nil, err
	}

	pert := make([]float64, cols)
	sens := make([]float64, rows)
	for col := 0; col < cols; col++ {
		pert[col] = o.step
		resp, evalErr := eval(pert)
		pert[col] = 0
		if evalErr != nil {
			return nil, fmt.Errorf("simul: column %d evaluation: %w", col, evalErr)
		}
		if len(resp) != rows {
			return nil, fmt.Errorf("simul: column %d: got %d outputs, want %d: %w",
				col, len(resp), rows, jacobian.ErrResponseSize)
		}

		floats.SubTo(sens, resp, base)
		floats.Scale(1/o.step, sens)
		for row := 0; row < rows; row++ {
			if sens[row] != 0 {
				if setErr := buf.Set(row, col, sens[row]); setErr != nil {
					return nil, setErr
				}
			}
		}
	}

	buf.Freeze()

	return buf, nil
}

// evaluateDenseComplex is the ComplexStep body of EvaluateDense.
func evaluateDenseComplex(ceval jacobian.ComplexEvaluator, rows, cols int, step float64) (*jacobian.Buffer, error) {
	if ceval == nil {
		return nil, ErrComplexEvaluator
	}

	buf, err := jacobian.NewBuffer(rows, cols)
	if err != nil {
		return nil, err
	}

	x := make([]complex128, cols)
	for col := 0; col < cols; col++ {
		x[col] = complex(0, step)
		resp, evalErr := ceval(x)
		x[col] = 0
		if evalErr != nil {
			return nil, fmt.Errorf("simul: column %d evaluation: %w", col, evalErr)
		}
		if len(resp) != rows {
			return nil, fmt.Errorf("simul: column %d: got %d outputs, want %d: %w",
				col, len(resp), rows, jacobian.ErrResponseSize)
		}

		for row := 0; row < rows; row++ {
			if s := imag(resp[row]) / step; s != 0 {
				if setErr := buf.Set(row, col, s); setErr != nil {
					return nil, setErr
				}
			}
		}
	}

	buf.Freeze()

	return buf, nil
}
