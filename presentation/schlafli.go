package presentation

import "fmt"

// Schlafli builds a Presentation from a Schläfli symbol {p,q,...}: one
// coefficient per consecutive generator pair along a linear Coxeter–Dynkin
// diagram. Requires len(gens) == len(coefficients)+1.
//
// Each coefficient cᵢ yields the pair relator (gᵢgᵢ₊₁)^cᵢ; the remaining
// diagram relators are supplied by Coxeter.
//
// Returns ErrInvalidPresentation if the symbol length does not fit the
// alphabet or any coefficient is below 1.
func Schlafli(gens, subgens []string, coefficients []int) (*Presentation, error) {
	if len(gens) != len(coefficients)+1 {
		return nil, fmt.Errorf("%w: Schläfli symbol of length %d needs %d generators, got %d",
			ErrInvalidPresentation, len(coefficients), len(coefficients)+1, len(gens))
	}

	relators := make([]Word, 0, len(coefficients))
	for i, c := range coefficients {
		if c < 1 {
			return nil, fmt.Errorf("%w: Schläfli coefficient %d at position %d", ErrInvalidPresentation, c, i)
		}
		word := make(Word, 0, 2*c)
		for k := 0; k < c; k++ {
			word = append(word, gens[i], gens[i+1])
		}
		relators = append(relators, word)
	}

	return Coxeter(gens, subgens, relators)
}
