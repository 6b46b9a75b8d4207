package handlers

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMoveDTO(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		dto, err := ParseMoveDTO(url.Values{
			"row": {"1"}, "col": {"9"}, "value": {"0"},
			"extra": {"ignored"},
		})
		require.NoError(t, err)
		assert.Equal(t, MoveDTO{Row: 1, Col: 9, Value: 0}, dto)
		assert.True(t, dto.InBounds())
	})

	t.Run("missing field", func(t *testing.T) {
		_, err := ParseMoveDTO(url.Values{"row": {"1"}, "col": {"2"}})
		assert.Error(t, err)
	})

	t.Run("non-numeric field", func(t *testing.T) {
		_, err := ParseMoveDTO(url.Values{
			"row": {"one"}, "col": {"2"}, "value": {"3"},
		})
		assert.Error(t, err)
	})

	t.Run("out of bounds", func(t *testing.T) {
		for _, dto := range []MoveDTO{
			{Row: 0, Col: 1, Value: 1},
			{Row: 10, Col: 1, Value: 1},
			{Row: 1, Col: 0, Value: 1},
			{Row: 1, Col: 10, Value: 1},
		} {
			assert.False(t, dto.InBounds(), "%+v", dto)
		}
	})
}

func TestParseNewGameDTO(t *testing.T) {
	dto, err := ParseNewGameDTO(url.Values{})
	require.NoError(t, err)
	assert.Empty(t, dto.Puzzle, "puzzle param is optional")

	dto, err = ParseNewGameDTO(url.Values{"puzzle": {"123"}})
	require.NoError(t, err)
	assert.Equal(t, "123", dto.Puzzle)
}
