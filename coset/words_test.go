package coset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/toddcox/coset"
	"github.com/katalvlaran/toddcox/presentation"
)

func TestWords_Pentagon(t *testing.T) {
	tbl, err := coset.Solve(pentagon(t))
	require.NoError(t, err)

	want := [][]int{
		{},           // base coset: empty word
		{1},          // b
		{1, 0},       // ba
		{1, 0, 1},    // bab
		{1, 0, 1, 0}, // baba
	}
	assert.Equal(t, want, tbl.Words())
}

func TestWords_Cube(t *testing.T) {
	p, err := presentation.Schlafli([]string{"x", "y", "z"}, []string{"y", "z"}, []int{4, 3})
	require.NoError(t, err)
	tbl, err := coset.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 8, tbl.Len())

	want := [][]int{
		{},
		{0},
		{0, 1},
		{0, 1, 0},
		{0, 1, 2},
		{0, 1, 0, 2},
		{0, 1, 0, 2, 1},
		{0, 1, 0, 2, 1, 0},
	}
	assert.Equal(t, want, tbl.Words())
}

// TestWords_RoundTrip: replaying any coset's word from the base coset
// through forward lookups must land exactly on that coset.
func TestWords_RoundTrip(t *testing.T) {
	p, err := presentation.Schlafli([]string{"x", "y", "z"}, []string{"y", "z"}, []int{5, 3})
	require.NoError(t, err)
	tbl, err := coset.Solve(p)
	require.NoError(t, err)
	require.Equal(t, 20, tbl.Len())

	for c, word := range tbl.Words() {
		require.NotNil(t, word, "coset %d unreached", c)
		cur := 0
		for _, g := range word {
			target, ok := tbl.Get(cur, g)
			require.True(t, ok, "coset %d: undefined step", c)
			cur = target
		}
		assert.Equal(t, c, cur, "word of coset %d replays elsewhere", c)
	}
}
