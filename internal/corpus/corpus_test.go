package corpus

import (
	"math/rand/v2"
	"testing"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

func TestEveryPuzzleParses(t *testing.T) {
	if Len() == 0 {
		t.Fatal("empty catalog")
	}
	for i := range Len() {
		if _, err := sudoku.New(Get(i)); err != nil {
			t.Errorf("puzzle %d does not parse: %v", i, err)
		}
	}
}

func TestPickIsDeterministicPerSeed(t *testing.T) {
	a := rand.New(rand.NewPCG(1, 2))
	b := rand.New(rand.NewPCG(1, 2))
	for range 20 {
		if Pick(a) != Pick(b) {
			t.Fatal("identical seeds must produce identical picks")
		}
	}
}

func TestPickCoversCatalog(t *testing.T) {
	r := rand.New(rand.NewPCG(3, 4))
	seen := make(map[string]bool)
	for range Len() * 50 {
		seen[Pick(r)] = true
	}
	if len(seen) != Len() {
		t.Errorf("picked %d distinct puzzles out of %d", len(seen), Len())
	}
}
