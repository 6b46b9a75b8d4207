package sudoku

import (
	"bytes"
	"encoding/gob"
)

// boardState is the stored form of a board: the fixed givens in definition
// format plus every current cell value. Values travel as ints so a corrupted
// record surfaces as a validation error instead of a silently broken board.
type boardState struct {
	Givens string
	Values []int
}

// Bytes serializes the board for storage.
func (b *Board) Bytes() ([]byte, error) {
	state := boardState{
		Givens: b.Givens(),
		Values: make([]int, CellCount),
	}
	for i := range b.cells {
		state.Values[i] = b.cells[i].Value
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(state); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode restores a board previously serialized with [Board.Bytes].
func Decode(buf []byte) (*Board, error) {
	var state boardState
	if err := gob.NewDecoder(bytes.NewReader(buf)).Decode(&state); err != nil {
		return nil, err
	}
	b, err := New(state.Givens)
	if err != nil {
		return nil, err
	}
	if len(state.Values) != CellCount {
		return nil, errBadLength(len(state.Values))
	}
	for i, v := range state.Values {
		if v < 0 || v > Size {
			return nil, errBadValue(v)
		}
		if !b.cells[i].Fixed {
			b.cells[i].Value = v
		}
	}
	return b, nil
}
