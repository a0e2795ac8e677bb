package coset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTable_SetGetRGet(t *testing.T) {
	tbl := newTable([]string{"a", "b"})
	require.Equal(t, 1, tbl.Len())

	c, ok := tbl.addCoset() // defines (0, a) → 1
	require.True(t, ok)
	require.Equal(t, 1, c)

	got, ok := tbl.Get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 1, got)

	pre, ok := tbl.RGet(0, 1)
	assert.True(t, ok)
	assert.Equal(t, 0, pre)

	// unrelated entries stay undefined
	_, ok = tbl.Get(0, 1)
	assert.False(t, ok)
	_, ok = tbl.RGet(1, 0)
	assert.False(t, ok)

	// out-of-range lookups are not ok, never a panic
	_, ok = tbl.Get(5, 0)
	assert.False(t, ok)
	_, ok = tbl.RGet(0, -1)
	assert.False(t, ok)
}

// TestTable_AddCosetRowMajor: new cosets always attach to the first
// undefined entry in (coset asc, generator asc) order.
func TestTable_AddCosetRowMajor(t *testing.T) {
	tbl := newTable([]string{"a", "b"})

	c1, ok := tbl.addCoset()
	require.True(t, ok)
	from, gen, ok := tbl.Origin(c1)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 0}, [2]int{from, gen})

	// (0, a) is now defined, so the scan lands on (0, b)
	c2, ok := tbl.addCoset()
	require.True(t, ok)
	from, gen, ok = tbl.Origin(c2)
	require.True(t, ok)
	assert.Equal(t, [2]int{0, 1}, [2]int{from, gen})

	// coset 0 is full, the scan moves to coset 1
	c3, ok := tbl.addCoset()
	require.True(t, ok)
	from, gen, ok = tbl.Origin(c3)
	require.True(t, ok)
	assert.Equal(t, [2]int{1, 0}, [2]int{from, gen})

	// the base coset was spawned by nothing
	_, _, ok = tbl.Origin(0)
	assert.False(t, ok)
}

// TestTable_CoincidenceMerge: a deduction conflicting with an existing
// entry merges the two labels instead of overwriting one of them.
func TestTable_CoincidenceMerge(t *testing.T) {
	tbl := newTable([]string{"a", "b"})
	_, ok := tbl.addCoset() // forward[0][a] = 1
	require.True(t, ok)
	require.Equal(t, 2, tbl.Len())

	// new deduction: forward[0][a] = 0 ⇒ labels 1 and 0 coincide
	tbl.set(0, 0, 0)

	assert.Equal(t, 1, tbl.Len())
	assert.Equal(t, 1, tbl.Coincidences())
	assert.Equal(t, 0, tbl.rep(1))

	got, ok := tbl.Get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, got)
	// the dead label resolves through the redirect
	got, ok = tbl.Get(1, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, got)
}

// TestTable_MergeFoldsEntries: merging folds the dead row's entries into
// the survivor, cascading any secondary coincidences.
func TestTable_MergeFoldsEntries(t *testing.T) {
	tbl := newTable([]string{"a", "b"})
	c1, ok := tbl.addCoset() // (0, a) → 1
	require.True(t, ok)
	c2, ok := tbl.addCoset() // (0, b) → 2
	require.True(t, ok)
	tbl.set(c2, 0, 0) // a sends coset 2 back to 0

	// claim forward[0][b] = 1: merges 2 into 1
	tbl.set(0, 1, c1)

	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, 1, tbl.Coincidences())
	assert.Equal(t, c1, tbl.rep(c2))

	got, ok := tbl.Get(0, 1)
	require.True(t, ok)
	assert.Equal(t, c1, got)

	// the dead row's a-edge was folded into the survivor
	got, ok = tbl.Get(c1, 0)
	require.True(t, ok)
	assert.Equal(t, 0, got)
	got, ok = tbl.Get(c2, 0)
	require.True(t, ok)
	assert.Equal(t, 0, got)
}

func TestTable_Compact(t *testing.T) {
	tbl := newTable([]string{"a", "b"})
	_, ok := tbl.addCoset()
	require.True(t, ok)
	tbl.set(0, 0, 0) // merge 1 into 0

	tbl.compact()

	assert.Equal(t, 1, tbl.Len())
	assert.Len(t, tbl.fwd, 1)
	got, ok := tbl.Get(0, 0)
	assert.True(t, ok)
	assert.Equal(t, 0, got)
	_, ok = tbl.Get(0, 1)
	assert.False(t, ok)
}

func TestTable_Gens(t *testing.T) {
	tbl := newTable([]string{"x", "y"})
	gens := tbl.Gens()
	assert.Equal(t, []string{"x", "y"}, gens)

	gens[0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, tbl.Gens())
	assert.Equal(t, 2, tbl.NumGens())
}
