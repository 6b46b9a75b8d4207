package sudoku

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	// published starting grid from the bundled catalog
	puzzleDef = "000091000000700600001003040002050406090006007078400010080309100406810000030000000"
	solvedDef = "534678912672195348198342567859761423426853791713924856961537284287419635345286179"
)

func TestNew(t *testing.T) {
	t.Run("valid definition", func(t *testing.T) {
		b, err := New(puzzleDef)
		require.NoError(t, err)

		cells := b.Cells()
		require.Len(t, cells, CellCount)
		for i, c := range cells {
			want := int(puzzleDef[i] - '0')
			assert.Equal(t, i/Size+1, c.Row)
			assert.Equal(t, i%Size+1, c.Col)
			assert.Equal(t, want, c.Value)
			assert.Equal(t, want != 0, c.Fixed)
		}
	})

	t.Run("invalid definition", func(t *testing.T) {
		tests := []struct {
			name  string
			def   string
			cause ValidationCause
		}{
			{"empty", "", BadLength},
			{"too short", strings.Repeat("0", 80), BadLength},
			{"too long", strings.Repeat("0", 82), BadLength},
			{"non-digit", strings.Repeat("0", 40) + "x" + strings.Repeat("0", 40), BadCharacter},
		}
		for _, test := range tests {
			t.Run(test.name, func(t *testing.T) {
				b, err := New(test.def)
				assert.Nil(t, b)
				var verr *ValidationError
				require.ErrorAs(t, err, &verr)
				assert.Equal(t, test.cause, verr.Cause)
			})
		}
	})
}

func TestSetCell(t *testing.T) {
	b, err := New(puzzleDef)
	require.NoError(t, err)

	t.Run("open cell accepts a value", func(t *testing.T) {
		require.True(t, b.SetCell(1, 1, 5))
		assert.Equal(t, 5, b.Cell(1, 1).Value)
		assert.False(t, b.Cell(1, 1).Fixed)
	})

	t.Run("open cell can be erased", func(t *testing.T) {
		require.True(t, b.SetCell(1, 1, 0))
		assert.Equal(t, 0, b.Cell(1, 1).Value)
	})

	t.Run("fixed cell rejects every write", func(t *testing.T) {
		fixed := b.Cell(1, 5) // the '9' given
		require.True(t, fixed.Fixed)
		for _, v := range []int{0, 1, fixed.Value} {
			assert.False(t, b.SetCell(fixed.Row, fixed.Col, v))
			assert.Equal(t, fixed.Value, b.Cell(fixed.Row, fixed.Col).Value)
		}
	})

	t.Run("out of range value is rejected", func(t *testing.T) {
		assert.False(t, b.SetCell(1, 1, 10))
		assert.False(t, b.SetCell(1, 1, -1))
		assert.Equal(t, 0, b.Cell(1, 1).Value)
	})
}

func TestAccessorsCopy(t *testing.T) {
	b, err := New(puzzleDef)
	require.NoError(t, err)

	cells := b.Cells()
	cells[0].Value = 9
	assert.Equal(t, 0, b.Cell(1, 1).Value, "mutating the returned slice must not touch the board")

	c := b.Cell(1, 1)
	c.Value = 7
	assert.Equal(t, 0, b.Cell(1, 1).Value)
}

func TestRestart(t *testing.T) {
	b, err := New(puzzleDef)
	require.NoError(t, err)

	require.True(t, b.SetCell(1, 1, 5))
	require.True(t, b.SetCell(9, 9, 3))
	require.True(t, b.SetCell(5, 5, 1))

	b.Restart()
	b.Restart() // idempotent

	for i, c := range b.Cells() {
		want := 0
		if c.Fixed {
			want = int(puzzleDef[i] - '0')
		}
		assert.Equal(t, want, c.Value)
	}
	assert.Equal(t, puzzleDef, b.Definition())
}

func TestWon(t *testing.T) {
	t.Run("complete solution wins", func(t *testing.T) {
		b, err := New(solvedDef)
		require.NoError(t, err)
		assert.True(t, b.Won())
	})

	t.Run("empty cell loses", func(t *testing.T) {
		b, err := New(puzzleDef)
		require.NoError(t, err)
		assert.False(t, b.Won())
	})

	t.Run("filling the last cell wins, never cached", func(t *testing.T) {
		// same solution with one cell left open
		def := "0" + solvedDef[1:]
		b, err := New(def)
		require.NoError(t, err)
		assert.False(t, b.Won())

		require.True(t, b.SetCell(1, 1, 5))
		assert.True(t, b.Won())

		// a duplicate in row 1 must flip the result right back
		require.True(t, b.SetCell(1, 1, 3))
		assert.False(t, b.Won())
	})
}

func TestConflicts(t *testing.T) {
	t.Run("fresh puzzle has none", func(t *testing.T) {
		b, err := New(puzzleDef)
		require.NoError(t, err)
		assert.Empty(t, b.Conflicts())
	})

	t.Run("row pair, lower column first", func(t *testing.T) {
		var b Board
		for i := range CellCount {
			b.cells[i] = Cell{Row: i/Size + 1, Col: i%Size + 1}
		}
		require.True(t, b.SetCell(3, 7, 5))
		require.True(t, b.SetCell(3, 2, 5))

		conflicts := b.Conflicts()
		require.Len(t, conflicts, 2)
		assert.Equal(t, 3, conflicts[0].Row)
		assert.Equal(t, 2, conflicts[0].Col)
		assert.Equal(t, 3, conflicts[1].Row)
		assert.Equal(t, 7, conflicts[1].Col)
	})

	t.Run("deduplicated across group kinds, sorted by row then column", func(t *testing.T) {
		b, err := New(strings.Repeat("0", CellCount))
		require.NoError(t, err)
		// (2,2) and (1,1) share a box; (2,2) and (2,9) share a row, so
		// (2,2) is flagged twice but reported once.
		require.True(t, b.SetCell(1, 1, 4))
		require.True(t, b.SetCell(2, 2, 4))
		require.True(t, b.SetCell(2, 9, 4))

		conflicts := b.Conflicts()
		require.Len(t, conflicts, 3)
		assert.Equal(t, []int{1, 2, 2}, []int{conflicts[0].Row, conflicts[1].Row, conflicts[2].Row})
		assert.Equal(t, []int{1, 2, 9}, []int{conflicts[0].Col, conflicts[1].Col, conflicts[2].Col})
	})

	t.Run("zeroes never conflict", func(t *testing.T) {
		b, err := New(strings.Repeat("0", CellCount))
		require.NoError(t, err)
		assert.Empty(t, b.Conflicts())
	})
}

func TestDefinitionRoundTrip(t *testing.T) {
	b, err := New(puzzleDef)
	require.NoError(t, err)
	assert.Equal(t, puzzleDef, b.Definition())
	assert.Equal(t, puzzleDef, b.Givens())

	require.True(t, b.SetCell(1, 1, 5))
	assert.Equal(t, "5"+puzzleDef[1:], b.Definition())
	assert.Equal(t, puzzleDef, b.Givens(), "givens ignore player moves")
}
