package coset

// undefined marks an empty table entry.
const undefined = -1

// Table is the coset table: the permutation action of each generator on the
// cosets of the subgroup. Coset 0 is the base coset, representing the
// subgroup itself.
//
// Two parallel k×n arrays back the table: forward maps (coset, generator) to
// the target coset, reverse maps (target, generator) back to its preimage,
// giving RGet O(1) lookup instead of a column scan. Generators are
// involutions, so a single column per generator serves both directions —
// this is a binding precondition of the data model.
//
// During enumeration a union-find redirect layer handles coincidences: a
// deduction conflicting with an existing entry proves two coset labels equal,
// the later label is tombstoned onto the earlier one, and the dead row's
// entries are folded into the survivor (cascading further coincidences until
// none remain). Indices are never renumbered mid-run; Solve compacts the
// surviving cosets into dense indices once the run is over. Coincidence-free
// runs keep their original numbering exactly.
//
// A Table returned by Solve is read-only.
type Table struct {
	names   []string
	nGens   int
	fwd     [][]int
	rev     [][]int
	parent  []int
	origin  [][2]int // spawning (coset, generator) edge; {-1,-1} for coset 0
	live    int
	pending [][2]int // coincidence queue: pairs of labels proven equal
	merges  int
}

// newTable returns a Table over the named generators, holding the single
// base coset with every entry undefined.
func newTable(names []string) *Table {
	t := &Table{
		names: append([]string(nil), names...),
		nGens: len(names),
	}
	t.addRow(-1, -1)

	return t
}

// addRow allocates one coset row with the given spawning edge and returns
// its index.
func (t *Table) addRow(fromCoset, gen int) int {
	t.fwd = append(t.fwd, newRowSlice(t.nGens))
	t.rev = append(t.rev, newRowSlice(t.nGens))
	t.parent = append(t.parent, len(t.parent))
	t.origin = append(t.origin, [2]int{fromCoset, gen})
	t.live++

	return len(t.fwd) - 1
}

func newRowSlice(n int) []int {
	row := make([]int, n)
	for i := range row {
		row[i] = undefined
	}

	return row
}

// rep resolves a coset label to its surviving representative, compressing
// the redirect path as it goes.
func (t *Table) rep(c int) int {
	r := c
	for t.parent[r] != r {
		r = t.parent[r]
	}
	for t.parent[c] != r {
		t.parent[c], c = r, t.parent[c]
	}

	return r
}

// Len reports the number of cosets: the subgroup index once enumeration has
// completed.
func (t *Table) Len() int { return t.live }

// NumGens reports the generator alphabet size.
func (t *Table) NumGens() int { return t.nGens }

// Gens returns a copy of the generator symbols, in alphabet order.
func (t *Table) Gens() []string {
	out := make([]string, len(t.names))
	copy(out, t.names)

	return out
}

// Get is the forward lookup: the coset reached from coset c by generator g.
// ok is false when the entry is undefined or the indices are out of range.
// No side effects beyond redirect-path compression.
func (t *Table) Get(c, g int) (int, bool) {
	if c < 0 || c >= len(t.fwd) || g < 0 || g >= t.nGens {
		return 0, false
	}
	target := t.fwd[t.rep(c)][g]
	if target == undefined {
		return 0, false
	}

	return t.rep(target), true
}

// RGet is the reverse lookup: the coset c with forward[c][g] == target,
// found in O(1) via the maintained reverse array.
func (t *Table) RGet(g, target int) (int, bool) {
	if target < 0 || target >= len(t.rev) || g < 0 || g >= t.nGens {
		return 0, false
	}
	c := t.rev[t.rep(target)][g]
	if c == undefined {
		return 0, false
	}

	return t.rep(c), true
}

// Origin reports the (coset, generator) edge whose definition spawned coset
// c; ok is false for the base coset, which no edge spawned.
func (t *Table) Origin(c int) (fromCoset, gen int, ok bool) {
	if c < 0 || c >= len(t.origin) {
		return 0, 0, false
	}
	o := t.origin[c]
	if o[0] < 0 {
		return 0, 0, false
	}

	return o[0], o[1], true
}

// Coincidences reports how many coset merges the run performed. Zero means
// the enumeration was coincidence-free and coset numbering followed the
// definition order exactly.
func (t *Table) Coincidences() int { return t.merges }

// set records forward[c][g] = target and reverse[target][g] = c as one
// atomic write, then drains any coincidences the write provoked.
func (t *Table) set(c, g, target int) {
	t.write(t.rep(c), g, t.rep(target))
	t.drain()
}

// write stores one forward/reverse entry pair. c and target must be
// representatives. A differing existing entry is not overwritten silently:
// the old and new values denote the same coset, so the pair is queued as a
// coincidence for drain to merge.
func (t *Table) write(c, g, target int) {
	if ex := t.fwd[c][g]; ex != undefined && t.rep(ex) != target {
		t.pending = append(t.pending, [2]int{t.rep(ex), target})
	}
	t.fwd[c][g] = target
	if ex := t.rev[target][g]; ex != undefined && t.rep(ex) != c {
		t.pending = append(t.pending, [2]int{t.rep(ex), c})
	}
	t.rev[target][g] = c
}

// drain merges queued coincidences until none remain. Merging keeps the
// lower label, redirects the higher one onto it, and folds the dead row's
// forward and reverse entries into the survivor — each fold may queue
// further coincidences, which cascade here rather than recurse.
func (t *Table) drain() {
	for len(t.pending) > 0 {
		pair := t.pending[len(t.pending)-1]
		t.pending = t.pending[:len(t.pending)-1]

		a, b := t.rep(pair[0]), t.rep(pair[1])
		if a == b {
			continue
		}
		if b < a {
			a, b = b, a
		}
		t.parent[b] = a
		t.live--
		t.merges++

		for g := 0; g < t.nGens; g++ {
			if target := t.fwd[b][g]; target != undefined {
				t.write(a, g, t.rep(target))
			}
			if c := t.rev[b][g]; c != undefined {
				t.write(t.rep(c), g, a)
			}
		}
	}
}

// addCoset scans live cosets in row-major order (coset ascending, then
// generator ascending) for the first undefined forward entry. If one is
// found, a fresh coset is allocated as its target and addCoset reports
// true; if every entry is defined the table is saturated and enumeration
// is complete.
func (t *Table) addCoset() (int, bool) {
	for c := 0; c < len(t.fwd); c++ {
		if t.parent[c] != c {
			continue
		}
		for g := 0; g < t.nGens; g++ {
			if t.fwd[c][g] != undefined {
				continue
			}
			target := t.addRow(c, g)
			t.set(c, g, target)

			return target, true
		}
	}

	return 0, false
}

// compact renumbers surviving cosets densely, dropping tombstoned rows and
// rewriting every entry, origin edge, and redirect through the new labels.
// Index order is preserved, so coincidence-free runs are untouched.
func (t *Table) compact() {
	remap := make([]int, len(t.fwd))
	next := 0
	for c := range t.fwd {
		if t.parent[c] == c {
			remap[c] = next
			next++
		}
	}
	if next == len(t.fwd) {
		return
	}

	relabel := func(v int) int {
		if v == undefined {
			return undefined
		}

		return remap[t.rep(v)]
	}

	fwd := make([][]int, 0, next)
	rev := make([][]int, 0, next)
	origin := make([][2]int, 0, next)
	for c := range t.fwd {
		if t.parent[c] != c {
			continue
		}
		for g := 0; g < t.nGens; g++ {
			t.fwd[c][g] = relabel(t.fwd[c][g])
			t.rev[c][g] = relabel(t.rev[c][g])
		}
		fwd = append(fwd, t.fwd[c])
		rev = append(rev, t.rev[c])
		o := t.origin[c]
		if o[0] >= 0 {
			o[0] = remap[t.rep(o[0])]
		}
		origin = append(origin, o)
	}

	t.fwd, t.rev, t.origin = fwd, rev, origin
	t.parent = make([]int, next)
	for i := range t.parent {
		t.parent[i] = i
	}
	t.live = next
}
