package handlers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vancomm/sudoku-server/internal/sudoku"
)

func TestRunCommand(t *testing.T) {
	newBoard := func(t *testing.T) *sudoku.Board {
		b, err := sudoku.New(strings.Repeat("0", sudoku.CellCount))
		require.NoError(t, err)
		return b
	}

	t.Run("set and restart", func(t *testing.T) {
		b := newBoard(t)
		require.NoError(t, runCommand(b, "s 4 6 7"))
		assert.Equal(t, 7, b.Cell(4, 6).Value)

		require.NoError(t, runCommand(b, "s 4 6 0"))
		assert.Equal(t, 0, b.Cell(4, 6).Value)

		require.NoError(t, runCommand(b, "s 4 6 7"))
		require.NoError(t, runCommand(b, "r"))
		assert.Equal(t, 0, b.Cell(4, 6).Value)
	})

	t.Run("noop", func(t *testing.T) {
		assert.NoError(t, runCommand(newBoard(t), "g"))
	})

	t.Run("rejected write is not a protocol error", func(t *testing.T) {
		def := "1" + strings.Repeat("0", sudoku.CellCount-1)
		b, err := sudoku.New(def)
		require.NoError(t, err)

		require.NoError(t, runCommand(b, "s 1 1 9"))
		assert.Equal(t, 1, b.Cell(1, 1).Value, "fixed cell stays put")
	})

	t.Run("protocol errors", func(t *testing.T) {
		b := newBoard(t)
		for _, line := range []string{
			"x",
			"s 1 1",
			"s 1 1 2 3",
			"s one 1 2",
			"s 0 1 2",
			"s 1 10 2",
			"g 1",
		} {
			assert.Error(t, runCommand(b, line), "%q", line)
		}
	})
}
