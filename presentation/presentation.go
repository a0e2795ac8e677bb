package presentation

import "fmt"

// New builds a Presentation from an ordered generator alphabet, a subgroup
// generator subset, and raw relator words.
//
// Validation (fail fast, before any table construction):
//   - alphabet symbols must be non-empty and pairwise distinct;
//   - every subgroup generator must appear in the alphabet;
//   - every relator must be non-empty and spelled entirely in the alphabet.
//
// Returns ErrInvalidPresentation (wrapped with context) on any violation.
func New(gens, subgens []string, relators []Word) (*Presentation, error) {
	index := make(map[string]int, len(gens))
	for i, g := range gens {
		if g == "" {
			return nil, fmt.Errorf("%w: empty generator symbol at position %d", ErrInvalidPresentation, i)
		}
		if _, dup := index[g]; dup {
			return nil, fmt.Errorf("%w: duplicate generator %q", ErrInvalidPresentation, g)
		}
		index[g] = i
	}

	p := &Presentation{
		gens:     append([]string(nil), gens...),
		index:    index,
		subgens:  make([]int, 0, len(subgens)),
		relators: make([][]int, 0, len(relators)),
	}

	for _, g := range subgens {
		i, ok := index[g]
		if !ok {
			return nil, fmt.Errorf("%w: subgroup generator %q not in alphabet", ErrInvalidPresentation, g)
		}
		p.subgens = append(p.subgens, i)
	}

	for ri, rel := range relators {
		if len(rel) == 0 {
			return nil, fmt.Errorf("%w: relator %d is empty", ErrInvalidPresentation, ri)
		}
		word := make([]int, len(rel))
		for wi, g := range rel {
			i, ok := index[g]
			if !ok {
				return nil, fmt.Errorf("%w: symbol %q in relator %d not in alphabet", ErrInvalidPresentation, g, ri)
			}
			word[wi] = i
		}
		p.relators = append(p.relators, word)
	}

	return p, nil
}
