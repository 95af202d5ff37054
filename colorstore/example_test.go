package colorstore_test

import (
	"fmt"

	"github.com/katalvlaran/simjac/coloring"
	"github.com/katalvlaran/simjac/colorstore"
	"github.com/katalvlaran/simjac/sparsity"
)

// ExampleLoadOrCompute demonstrates the cache lifecycle: the first lookup
// computes and persists, the second is served from the store untouched.
//
// Scenario:
//
//	A 4-column arrow pattern (one global column + diagonal) cached under a
//	per-instance key.
func ExampleLoadOrCompute() {
	store := colorstore.NewMemStore()
	key := colorstore.Key(colorstore.ScopePerInstance, "aero.Panel", "wing-3")

	computed := 0
	compute := func() (*coloring.Coloring, *sparsity.Pattern, error) {
		computed++
		p, err := sparsity.NewPattern(3, 4)
		if err != nil {
			return nil, nil, err
		}
		for row := 0; row < 3; row++ {
			_ = p.Mark(row, 0)
			_ = p.Mark(row, row+1)
		}
		c, err := coloring.Greedy(p)

		return c, p, err
	}

	for i := 0; i < 2; i++ {
		c, _, err := colorstore.LoadOrCompute(store, key, 3, 4, compute, false)
		if err != nil {
			fmt.Println("error:", err)

			return
		}
		fmt.Printf("lookup %d: colors=%d computed so far=%d\n", i+1, c.NumColors(), computed)
	}
	// Output:
	// lookup 1: colors=2 computed so far=1
	// lookup 2: colors=2 computed so far=1
}
