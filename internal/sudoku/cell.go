package sudoku

// Cell is a single square of the grid. Row and Col are 1-based. A Value of
// zero means the square is empty. Fixed marks a given from the board
// definition; a fixed cell keeps its value for the lifetime of the board.
//
// Cells are plain values. Accessors hand out copies, so holding on to a Cell
// never aliases board state.
type Cell struct {
	Row   int  `json:"row"`
	Col   int  `json:"col"`
	Value int  `json:"value"`
	Fixed bool `json:"fixed"`
}

// Empty reports whether the cell holds no value.
func (c Cell) Empty() bool {
	return c.Value == 0
}
