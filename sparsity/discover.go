package sparsity

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/simjac/jacobian"
)

// Discover — empirical sparsity-pattern sampling
//
// Description:
//
//	Discover estimates which cells of the Jacobian of eval can ever be
//	nonzero. It performs Trials full uncolored Jacobian estimations: each
//	trial perturbs the columns one at a time with an independent random
//	magnitude and thresholds the forward-difference sensitivity against
//	Tolerance. A cell flagged nonzero in ANY trial is retained — discovery
//	is deliberately biased toward over-inclusion, because a silently
//	dropped entry corrupts every downstream Jacobian while an extra entry
//	only costs one more color.
//
// Algorithm Outline:
//  1. base = eval(0⃗); m = len(base). m == 0 ⇒ ErrNoOutputs.
//  2. For each trial t = 1..Trials:
//     For each column c = 0..n-1:
//     h = step · uniform[0.5, 1.5)      // never zero
//     resp = eval(h·e_c)
//     mark (r, c) wherever |resp[r]-base[r]| / h > Tolerance.
//  3. If no cell was marked, return the empty Pattern with ErrEmptySparsity.
//
// Determinism:
//
//	The magnitude sampler is seeded from options (fixed default), so equal
//	options on a deterministic evaluator reproduce the identical Pattern.
//
// Cost:
//
//	Trials·n + 1 evaluator calls; evaluator errors propagate immediately
//	and are never retried.
//
// Errors:
//   - jacobian.ErrNilEvaluator — eval is nil.
//   - ErrInvalidDimensions     — nInputs <= 0.
//   - ErrNoOutputs             — baseline response is empty.
//   - jacobian.ErrResponseSize — a response length differs from the baseline's.
//   - ErrEmptySparsity         — condition, returned WITH the valid empty Pattern.
func Discover(eval jacobian.Evaluator, nInputs int, opts ...Option) (*Pattern, error) {
	if eval == nil {
		return nil, jacobian.ErrNilEvaluator
	}
	if nInputs <= 0 {
		return nil, ErrInvalidDimensions
	}
	o := gatherOptions(opts...)

	// Baseline response fixes the output dimension m.
	base, err := eval(make([]float64, nInputs))
	if err != nil {
		return nil, fmt.Errorf("sparsity: baseline evaluation: %w", err)
	}
	m := len(base)
	if m == 0 {
		return nil, ErrNoOutputs
	}

	pattern, err := NewPattern(m, nInputs)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(o.seed))
	pert := make([]float64, nInputs)

	for trial := 0; trial < o.trials; trial++ {
		for col := 0; col < nInputs; col++ {
			// Random nonzero magnitude in [0.5·step, 1.5·step).
			h := o.step * (0.5 + rng.Float64())
			pert[col] = h

			resp, evalErr := eval(pert)
			pert[col] = 0 // restore the shared scratch vector before any return path
			if evalErr != nil {
				return nil, fmt.Errorf("sparsity: trial %d column %d: %w", trial, col, evalErr)
			}
			if len(resp) != m {
				return nil, fmt.Errorf("sparsity: trial %d column %d: got %d outputs, want %d: %w",
					trial, col, len(resp), m, jacobian.ErrResponseSize)
			}

			for row := 0; row < m; row++ {
				s := (resp[row] - base[row]) / h
				if s > o.tol || s < -o.tol {
					// Mark cannot fail here: row/col are in range by construction.
					_ = pattern.Mark(row, col)
				}
			}
		}
	}

	if pattern.Empty() {
		return pattern, ErrEmptySparsity
	}

	return pattern, nil
}
