package coset

// row is one in-progress scan of one relator word, anchored at one coset:
// the claim that applying the relator to the anchor returns to the anchor.
// Known table entries narrow the unresolved window [left, right) from both
// ends; once a single step remains, the relator's identity constraint forces
// it and the row is consumed.
type row struct {
	rel   []int // relator word, as generator indices
	left  int   // window start: rel[0:left] already applied on the left
	right int   // window end: rel[right:] already applied on the right

	leftCoset   int // coset reached from the anchor by rel[0:left]
	rightTarget int // coset from which rel[right:] reaches the anchor
	done        bool
}

// newRow anchors a fresh scan of rel at coset c: the full word is
// unresolved and both ends sit on the anchor.
func newRow(rel []int, c int) row {
	return row{rel: rel, left: 0, right: len(rel), leftCoset: c, rightTarget: c}
}

// learn advances the window using currently known table entries and reports
// whether an entry was written. A row that reports true is consumed and must
// not be scanned again.
//
// Both anchors are renormalized through the table's coincidence redirects
// first; a merge elsewhere may have retired the labels this row held.
func (r *row) learn(t *Table) bool {
	if r.left+1 == r.right {
		return false
	}

	r.leftCoset = t.rep(r.leftCoset)
	r.rightTarget = t.rep(r.rightTarget)

	// advance from the left while the next step is known
	for r.left+1 != r.right {
		target, ok := t.Get(r.leftCoset, r.rel[r.left])
		if !ok {
			break
		}
		r.left++
		r.leftCoset = target
	}

	// advance from the right while the previous step is known
	for r.left+1 != r.right {
		c, ok := t.RGet(r.rel[r.right-1], r.rightTarget)
		if !ok {
			break
		}
		r.right--
		r.rightTarget = c
	}

	// a single remaining step is forced by the relator
	if r.left+1 == r.right {
		t.set(r.leftCoset, r.rel[r.left], r.rightTarget)
		r.done = true

		return true
	}

	return false
}
