package coset

import (
	"strconv"
	"strings"
)

// String renders the table for diagnostics: a header row of generator names
// preceded by two marker columns, then one row per coset listing the coset
// index, a "|" separator, and each generator's target coset. Every column is
// right-aligned to its widest cell. This exact layout is a stable debugging
// contract. Undefined entries render as "-"; tables returned by Solve have
// none.
func (t *Table) String() string {
	rows := make([][]string, 0, len(t.fwd)+1)

	header := make([]string, 0, t.nGens+2)
	header = append(header, " ", " ")
	header = append(header, t.names...)
	rows = append(rows, header)

	for c := range t.fwd {
		cells := make([]string, 0, t.nGens+2)
		cells = append(cells, strconv.Itoa(c), "|")
		for g := 0; g < t.nGens; g++ {
			if target, ok := t.Get(c, g); ok {
				cells = append(cells, strconv.Itoa(target))
			} else {
				cells = append(cells, "-")
			}
		}
		rows = append(rows, cells)
	}

	widths := make([]int, len(header))
	for _, cells := range rows {
		for i, cell := range cells {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var b strings.Builder
	for _, cells := range rows {
		for i, cell := range cells {
			if i > 0 {
				b.WriteByte(' ')
			}
			for pad := widths[i] - len(cell); pad > 0; pad-- {
				b.WriteByte(' ')
			}
			b.WriteString(cell)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
