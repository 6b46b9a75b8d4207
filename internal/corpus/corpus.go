// Package corpus carries the bundled catalog of puzzle definitions. The
// board model stays a pure function of its input string; which puzzle gets
// played is decided here.
package corpus

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

//go:embed puzzles.txt
var raw string

var puzzles = mustParse(raw)

func mustParse(raw string) []string {
	var defs []string
	for n, line := range strings.Split(strings.TrimSpace(raw), "\n") {
		def := strings.TrimSpace(line)
		if def == "" {
			continue
		}
		if _, err := sudoku.New(def); err != nil {
			panic(fmt.Sprintf("corpus: bad puzzle on line %d: %v", n+1, err))
		}
		defs = append(defs, def)
	}
	if len(defs) == 0 {
		panic("corpus: no puzzles embedded")
	}
	return defs
}

// Len returns the number of bundled puzzles.
func Len() int {
	return len(puzzles)
}

// Get returns the definition at index i, in catalog order.
func Get(i int) string {
	return puzzles[i]
}

// Pick returns a uniformly chosen definition.
func Pick(r *rand.Rand) string {
	return puzzles[r.IntN(len(puzzles))]
}
