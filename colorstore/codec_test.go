package colorstore_test

import (
	"testing"

	"github.com/katalvlaran/simjac/coloring"
	"github.com/katalvlaran/simjac/colorstore"
	"github.com/katalvlaran/simjac/sparsity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// arrowColoring builds a 3×4 arrow pattern (dense column 0 + diagonal) and
// its greedy coloring: groups {0} and {1,2,3}.
func arrowColoring(t *testing.T) (*coloring.Coloring, *sparsity.Pattern) {
	t.Helper()
	p, err := sparsity.NewPattern(3, 4)
	require.NoError(t, err)
	for row := 0; row < 3; row++ {
		require.NoError(t, p.Mark(row, 0))
		require.NoError(t, p.Mark(row, row+1))
	}
	c, err := coloring.Greedy(p)
	require.NoError(t, err)

	return c, p
}

// TestMarshal_RoundTrip verifies the lossless round-trip of all fields.
func TestMarshal_RoundTrip(t *testing.T) {
	c, p := arrowColoring(t)

	data, err := colorstore.Marshal(c, p)
	require.NoError(t, err)

	c2, p2, err := colorstore.Unmarshal(data)
	require.NoError(t, err)

	assert.True(t, p.Equal(p2), "pattern must round-trip exactly")
	assert.Equal(t, c.Groups(), c2.Groups(), "groups must round-trip in order")
	assert.Equal(t, c.NumColumns(), c2.NumColumns())
	for g := 0; g < c.NumColors(); g++ {
		assert.Equal(t, c.DecodeTable(g), c2.DecodeTable(g), "decode table %d", g)
	}
}

// TestMarshal_Idempotent verifies serialize∘deserialize∘serialize is stable.
func TestMarshal_Idempotent(t *testing.T) {
	c, p := arrowColoring(t)

	data1, err := colorstore.Marshal(c, p)
	require.NoError(t, err)
	c2, p2, err := colorstore.Unmarshal(data1)
	require.NoError(t, err)
	data2, err := colorstore.Marshal(c2, p2)
	require.NoError(t, err)

	assert.Equal(t, data1, data2, "round-tripped record must re-serialize byte-identically")
}

// TestMarshal_RejectsInvalid verifies nil and inconsistent inputs.
func TestMarshal_RejectsInvalid(t *testing.T) {
	c, p := arrowColoring(t)

	_, err := colorstore.Marshal(nil, p)
	assert.ErrorIs(t, err, colorstore.ErrNilColoring)
	_, err = colorstore.Marshal(c, nil)
	assert.ErrorIs(t, err, colorstore.ErrNilColoring)

	// A coloring valid for the arrow pattern is invalid against a dense one.
	dense, err := sparsity.NewPattern(3, 4)
	require.NoError(t, err)
	for r := 0; r < 3; r++ {
		for col := 0; col < 4; col++ {
			require.NoError(t, dense.Mark(r, col))
		}
	}
	_, err = colorstore.Marshal(c, dense)
	assert.ErrorIs(t, err, coloring.ErrGroupConflict, "invalid pairs must never be persisted")
}

// TestUnmarshal_Corrupt verifies that undecodable or invalid records all
// surface ErrCorruptRecord.
func TestUnmarshal_Corrupt(t *testing.T) {
	cases := map[string][]byte{
		"not json":         []byte("definitely-not-json"),
		"bad shape":        []byte(`{"rows":0,"cols":2,"groups":[[0,1]],"decode":[{}],"cells":[]}`),
		"cell oob":         []byte(`{"rows":2,"cols":2,"groups":[[0,1]],"decode":[{}],"cells":[[5,0]]}`),
		"not a partition":  []byte(`{"rows":2,"cols":2,"groups":[[0]],"decode":[{}],"cells":[]}`),
		"group conflict":   []byte(`{"rows":1,"cols":2,"groups":[[0,1]],"decode":[{"0":0}],"cells":[[0,0],[0,1]]}`),
		"decode count":     []byte(`{"rows":2,"cols":2,"groups":[[0,1]],"decode":[],"cells":[]}`),
		"decode tampered":  []byte(`{"rows":2,"cols":2,"groups":[[0,1]],"decode":[{"0":1,"1":0}],"cells":[[0,0],[1,1]]}`),
		"decode bad size":  []byte(`{"rows":2,"cols":2,"groups":[[0,1]],"decode":[{}],"cells":[[0,0],[1,1]]}`),
	}
	for name, data := range cases {
		_, _, err := colorstore.Unmarshal(data)
		assert.ErrorIs(t, err, colorstore.ErrCorruptRecord, "case %q", name)
	}
}

// TestKey verifies both granularities and the panic guards.
func TestKey(t *testing.T) {
	assert.Equal(t, "aero.Panel", colorstore.Key(colorstore.ScopePerType, "aero.Panel", "ignored"))
	assert.Equal(t, "aero.Panel/wing-3", colorstore.Key(colorstore.ScopePerInstance, "aero.Panel", "wing-3"))

	assert.Panics(t, func() { colorstore.Key(colorstore.ScopePerType, "", "x") })
	assert.Panics(t, func() { colorstore.Key(colorstore.ScopePerInstance, "t", "") })
	assert.Panics(t, func() { colorstore.Key(colorstore.KeyScope(9), "t", "x") })
}
