package sudoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeRoundTrip(t *testing.T) {
	b, err := New(puzzleDef)
	require.NoError(t, err)
	require.True(t, b.SetCell(1, 1, 5))
	require.True(t, b.SetCell(9, 9, 3))

	buf, err := b.Bytes()
	require.NoError(t, err)

	restored, err := Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, b.Cells(), restored.Cells())
	assert.Equal(t, b.Definition(), restored.Definition())
	assert.Equal(t, puzzleDef, restored.Givens())
}

func TestDecodeRejectsGarbage(t *testing.T) {
	_, err := Decode([]byte("not a gob stream"))
	assert.Error(t, err)
}
