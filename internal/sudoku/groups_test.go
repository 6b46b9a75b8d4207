package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupTablesPartition(t *testing.T) {
	names := []string{"rows", "columns", "boxes"}
	for k, groups := range groupings {
		t.Run(names[k], func(t *testing.T) {
			seen := make(map[int]int)
			for _, group := range groups {
				require.Len(t, group, Size)
				for _, i := range group {
					require.GreaterOrEqual(t, i, 0)
					require.Less(t, i, CellCount)
					seen[i]++
				}
			}
			require.Len(t, seen, CellCount, "every cell visited")
			for i, n := range seen {
				assert.Equal(t, 1, n, "cell %d visited once", i)
			}
		})
	}
}

func TestGroupTablesShape(t *testing.T) {
	// row g is the g-th run of nine consecutive indices, column-ordered
	for g := range Size {
		for i := range Size {
			assert.Equal(t, g*Size+i, rowGroups[g][i])
		}
	}
	// column g steps by one full row at a time
	for g := range Size {
		for i := range Size {
			assert.Equal(t, i*Size+g, colGroups[g][i])
		}
	}
	// box 0 is the top-left block, box 8 the bottom-right
	assert.Equal(t, [Size]int{0, 1, 2, 9, 10, 11, 18, 19, 20}, boxGroups[0])
	assert.Equal(t, [Size]int{60, 61, 62, 69, 70, 71, 78, 79, 80}, boxGroups[8])
	// box 4 is the central block
	assert.Equal(t, [Size]int{30, 31, 32, 39, 40, 41, 48, 49, 50}, boxGroups[4])
}
