package simul_test

import (
	"testing"

	"github.com/katalvlaran/simjac/coloring"
	"github.com/katalvlaran/simjac/simul"
	"github.com/katalvlaran/simjac/sparsity"
)

// benchmarkColored measures colored evaluation alone (discovery and
// coloring run once in setup) on a tridiagonal system of n inputs.
func benchmarkColored(b *testing.B, n int) {
	eval := tridiagonalLinear(n)
	p, err := sparsity.Discover(eval, n)
	if err != nil {
		b.Fatalf("Discover failed: %v", err)
	}
	c, err := coloring.Greedy(p)
	if err != nil {
		b.Fatalf("Greedy failed: %v", err)
	}

	b.ResetTimer() // ignore discovery and coloring setup
	for i := 0; i < b.N; i++ {
		if _, evalErr := simul.EvaluateColored(eval, c); evalErr != nil {
			b.Fatalf("EvaluateColored failed: %v", evalErr)
		}
	}
}

// benchmarkDense measures the one-perturbation-per-column fallback.
func benchmarkDense(b *testing.B, n int) {
	eval := tridiagonalLinear(n)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simul.EvaluateDense(eval, n, n); err != nil {
			b.Fatalf("EvaluateDense failed: %v", err)
		}
	}
}

// BenchmarkEvaluateColored_128 — 128 columns collapse to ≤3 evaluations.
func BenchmarkEvaluateColored_128(b *testing.B) {
	benchmarkColored(b, 128)
}

// BenchmarkEvaluateColored_512 — the win grows with column count.
func BenchmarkEvaluateColored_512(b *testing.B) {
	benchmarkColored(b, 512)
}

// BenchmarkEvaluateDense_128 — the uncolored baseline for comparison.
func BenchmarkEvaluateDense_128(b *testing.B) {
	benchmarkDense(b, 128)
}

// BenchmarkEvaluateDense_512 — the uncolored baseline for comparison.
func BenchmarkEvaluateDense_512(b *testing.B) {
	benchmarkDense(b, 512)
}
