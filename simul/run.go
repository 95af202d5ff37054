package simul

import (
	"errors"

	"github.com/katalvlaran/simjac/coloring"
	"github.com/katalvlaran/simjac/jacobian"
	"github.com/katalvlaran/simjac/sparsity"
)

// Result is the outcome of a full Run pass.
type Result struct {
	// Pattern is the discovered sparsity pattern (possibly empty).
	Pattern *sparsity.Pattern

	// Coloring is the computed coloring. Nil when discovery found no
	// structure, or when the coloring was rejected under DiscardRejected.
	Coloring *coloring.Coloring

	// Jacobian is the assembled, frozen result buffer.
	Jacobian *jacobian.Buffer

	// Colored reports whether colored evaluation was actually used.
	Colored bool

	// Rejected reports that a coloring was computed but fell below the
	// MinImprovement threshold, forcing the uncolored fallback.
	Rejected bool

	// Evaluations counts every evaluator call made across all stages.
	Evaluations int
}

// Run — discover, color, threshold-check, evaluate
//
// Description:
//
//	Run is the orchestrated pipeline over the stages this module exposes
//	individually: sparsity.Discover → coloring.Greedy → threshold check →
//	EvaluateColored, with the uncolored EvaluateDense fallback wherever
//	coloring cannot pay off.
//
// Fallback rules (conditions, not errors):
//   - discovery reports ErrEmptySparsity → uncolored evaluation
//     (Result.Coloring = nil, Colored = false);
//   - coloring improvement < MinImprovement → uncolored evaluation
//     (Rejected = true; the coloring is kept or dropped per RejectPolicy).
//
// Discovery always samples with real finite differences; the final
// evaluation honors WithMode, so complex-step callers supply both callbacks.
//
// The user callback is invoked strictly sequentially; a pass runs to
// completion or returns the first error (no retry, no cancellation).
//
// Errors: anything from Discover, Greedy, EvaluateColored, EvaluateDense.
//
// Cost: Trials·n + 1 discovery calls, then NumColors (+1) or n (+1) calls.
func Run(eval jacobian.Evaluator, nInputs int, opts ...Option) (*Result, error) {
	if eval == nil {
		return nil, jacobian.ErrNilEvaluator
	}
	if nInputs <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	// Count every call across stages; the contract explicitly permits a
	// diagnostics counter around an otherwise idempotent evaluator.
	res := &Result{}
	counted := func(p []float64) ([]float64, error) {
		res.Evaluations++

		return eval(p)
	}
	evalOpts := forwardedOptions(o)
	if o.ceval != nil {
		orig := o.ceval
		countedC := func(x []complex128) ([]complex128, error) {
			res.Evaluations++

			return orig(x)
		}
		evalOpts = append(evalOpts, WithComplexEvaluator(countedC))
	}

	pattern, err := sparsity.Discover(counted, nInputs, o.discovery...)
	switch {
	case errors.Is(err, sparsity.ErrEmptySparsity):
		// No structure found: evaluate uncolored, report the condition
		// through the empty Pattern rather than an error.
		res.Pattern = pattern
		res.Jacobian, err = EvaluateDense(counted, pattern.Rows(), nInputs, evalOpts...)
		if err != nil {
			return nil, err
		}

		return res, nil
	case err != nil:
		return nil, err
	}
	res.Pattern = pattern

	col, err := coloring.Greedy(pattern)
	if err != nil {
		return nil, err
	}

	if col.Improvement() < o.minImp {
		// Coloring rejected: the overhead would not be recouped.
		res.Rejected = true
		if o.policy == KeepRejected {
			res.Coloring = col
		}
		res.Jacobian, err = EvaluateDense(counted, pattern.Rows(), nInputs, evalOpts...)
		if err != nil {
			return nil, err
		}

		return res, nil
	}

	res.Coloring = col
	res.Jacobian, err = EvaluateColored(counted, col, evalOpts...)
	if err != nil {
		return nil, err
	}
	res.Colored = true

	return res, nil
}

// forwardedOptions rebuilds the evaluation-stage options from resolved
// values (mode, step); the complex evaluator is appended by Run after
// wrapping it with the call counter.
func forwardedOptions(o Options) []Option {
	return []Option{WithMode(o.mode), WithStep(o.step)}
}
