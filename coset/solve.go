package coset

import (
	"fmt"

	"github.com/katalvlaran/toddcox/presentation"
)

// solver encapsulates the mutable state of one enumeration run: the table
// under construction and the arena of relation rows with its active set.
// Consumed rows are marked done and dropped from the active index list at
// the end of each pass, never removed mid-iteration.
type solver struct {
	tbl      *Table
	relators [][]int
	arena    []row
	active   []int // arena indices of pending rows, in creation order
	opts     Options
}

// Solve enumerates the cosets of the subgroup described by p and returns the
// completed coset table; its Len is the subgroup index [G:H].
//
// The procedure (Todd–Coxeter):
//  1. Start from the single base coset 0, fixed by every subgroup generator.
//  2. Anchor one relation row per relator at each coset; scan the pending
//     rows repeatedly, each scan narrowing a row's unresolved window from
//     both ends using known entries, until a full pass learns nothing new.
//  3. Define a fresh coset for the first undefined (coset, generator) entry
//     in row-major order and go back to scanning. When no entry is
//     undefined the table is saturated and the enumeration is complete.
//
// Deductions conflicting with existing entries are coincidences — two coset
// labels proven equal — and are merged on the spot; the returned table is
// compacted to dense indices. For a coincidence-free presentation the coset
// numbering is exactly the definition order, and scan order cannot change
// the final count either way.
//
// Returns ErrNilPresentation or ErrOptionViolation for invalid input, and
// ErrTooManyCosets once the run allocates more cosets than the configured
// ceiling — the presentation may have infinite index, which this
// semi-decision procedure cannot detect.
func Solve(p *presentation.Presentation, opts ...Option) (*Table, error) {
	if p == nil {
		return nil, ErrNilPresentation
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	tbl := newTable(p.Gens())
	// the base coset represents H: every subgroup generator fixes it
	for _, g := range p.Subgens() {
		tbl.set(0, g, 0)
	}

	s := &solver{tbl: tbl, relators: p.Relators(), opts: o}
	s.spawn(0)

	for {
		for s.pass() {
		}
		c, ok := tbl.addCoset()
		if !ok {
			break
		}
		if len(tbl.fwd) > o.MaxCosets {
			return nil, fmt.Errorf("%w: ceiling %d, presentation may have infinite index",
				ErrTooManyCosets, o.MaxCosets)
		}
		s.spawn(c)
	}

	tbl.compact()

	return tbl, nil
}

// spawn anchors one fresh relation row per relator at coset c.
func (s *solver) spawn(c int) {
	for _, rel := range s.relators {
		s.arena = append(s.arena, newRow(rel, c))
		s.active = append(s.active, len(s.arena)-1)
	}
}

// pass scans every pending row once and reports whether any row learned a
// table entry. Default scan order is reverse creation order; with a seeded
// rng the order is shuffled instead. Consumed rows are compacted out of the
// active set afterwards.
func (s *solver) pass() bool {
	if len(s.active) == 0 {
		return false
	}

	order := make([]int, len(s.active))
	copy(order, s.active)
	if s.opts.rng != nil {
		s.opts.rng.Shuffle(len(order), func(i, j int) {
			order[i], order[j] = order[j], order[i]
		})
	} else {
		for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
			order[i], order[j] = order[j], order[i]
		}
	}

	learned := false
	for _, i := range order {
		if s.arena[i].learn(s.tbl) {
			learned = true
		}
	}

	keep := s.active[:0]
	for _, i := range s.active {
		if !s.arena[i].done {
			keep = append(keep, i)
		}
	}
	s.active = keep

	return learned
}
