// Package presentation: core types and sentinel errors.
package presentation

import "errors"

// ErrInvalidPresentation is returned when the alphabet, subgroup generators,
// relator words, or Schläfli coefficients are mutually inconsistent.
// All constructors attach context via %w wrapping; branch with errors.Is.
var ErrInvalidPresentation = errors.New("presentation: invalid presentation")

// Word is an ordered, non-empty sequence of generator symbols, read left to
// right. Used as a relator it asserts that the spelled product equals the
// group identity.
type Word []string

// Presentation is the immutable (generators, subgroup generators, relators)
// triple. Construct one with New, Coxeter, or Schlafli; a zero Presentation
// is not valid.
//
// Symbols are resolved to alphabet indices at construction time, so the
// enumerator works on plain ints and never sees a string.
type Presentation struct {
	gens     []string
	index    map[string]int
	subgens  []int
	relators [][]int
}

// NumGens reports the alphabet size.
func (p *Presentation) NumGens() int { return len(p.gens) }

// Gens returns a copy of the ordered generator alphabet.
func (p *Presentation) Gens() []string {
	out := make([]string, len(p.gens))
	copy(out, p.gens)

	return out
}

// Subgens returns the subgroup generators as alphabet indices, in alphabet
// order of first mention.
func (p *Presentation) Subgens() []int {
	out := make([]int, len(p.subgens))
	copy(out, p.subgens)

	return out
}

// Relators returns the relator words as alphabet-index sequences,
// in construction order.
func (p *Presentation) Relators() [][]int {
	out := make([][]int, len(p.relators))
	for i, rel := range p.relators {
		out[i] = make([]int, len(rel))
		copy(out[i], rel)
	}

	return out
}

// Index resolves a generator symbol to its alphabet index.
func (p *Presentation) Index(symbol string) (int, bool) {
	i, ok := p.index[symbol]

	return i, ok
}
