package sudoku

import (
	"maps"
	"slices"
	"strings"
)

const (
	// Size is the side length of the grid and therefore also the number of
	// cells in every row, column and box.
	Size = 9
	// CellCount is the total number of cells on a board.
	CellCount = Size * Size
)

// Board owns the 81 cells of one puzzle, row-major. It is a plain in-memory
// value with no internal locking; callers sharing a board across goroutines
// must serialize access themselves.
type Board struct {
	cells [CellCount]Cell
}

// New builds a board from an 81-character definition: one decimal digit per
// cell, row 1 column 1 first, '0' for an empty square. Every nonzero digit
// becomes a fixed given. Construction is all-or-nothing: on error no board
// is produced.
func New(def string) (*Board, error) {
	if len(def) != CellCount {
		return nil, errBadLength(len(def))
	}
	var b Board
	for i := range CellCount {
		c := def[i]
		if c < '0' || c > '9' {
			return nil, errBadCharacter(i, c)
		}
		v := int(c - '0')
		b.cells[i] = Cell{
			Row:   i/Size + 1,
			Col:   i%Size + 1,
			Value: v,
			Fixed: v != 0,
		}
	}
	return &b, nil
}

// Cell returns a copy of the cell at (row, col). Coordinates must be in
// 1..9; this is the caller's precondition, not a checked error path.
func (b *Board) Cell(row, col int) Cell {
	return b.cells[(row-1)*Size+(col-1)]
}

// Cells returns a copy of all 81 cells in row-major order.
func (b *Board) Cells() []Cell {
	cells := make([]Cell, CellCount)
	copy(cells, b.cells[:])
	return cells
}

// SetCell writes value into the cell at (row, col) and reports whether the
// write happened. Writes to fixed cells are rejected, as are values outside
// 0..9; rejection leaves the board untouched. Writing zero erases the cell.
func (b *Board) SetCell(row, col, value int) bool {
	c := &b.cells[(row-1)*Size+(col-1)]
	if c.Fixed || value < 0 || value > Size {
		return false
	}
	c.Value = value
	return true
}

// Restart erases every non-fixed cell, returning the board to its
// just-constructed state. Fixed cells are untouched. Idempotent.
func (b *Board) Restart() {
	for i := range b.cells {
		if !b.cells[i].Fixed {
			b.cells[i].Value = 0
		}
	}
}

// Won reports whether the board is solved: no empty cells and all nine
// values pairwise distinct in every row, column and box. The result is
// recomputed from cell state on every call.
func (b *Board) Won() bool {
	for i := range b.cells {
		if b.cells[i].Value == 0 {
			return false
		}
	}
	for _, groups := range groupings {
		for _, group := range groups {
			seen := 0
			for _, i := range group {
				bit := 1 << b.cells[i].Value
				if seen&bit != 0 {
					return false
				}
				seen |= bit
			}
		}
	}
	return true
}

// Conflicts returns a copy of every cell that duplicates another nonzero
// value within its row, column or box. A cell flagged by more than one group
// appears once. The result is ordered by row, then column. Empty cells never
// conflict.
func (b *Board) Conflicts() []Cell {
	conflicted := make(map[int]struct{})
	for _, groups := range groupings {
		for _, group := range groups {
			var byValue [Size + 1][]int
			for _, i := range group {
				if v := b.cells[i].Value; v != 0 {
					byValue[v] = append(byValue[v], i)
				}
			}
			for _, dups := range byValue {
				if len(dups) < 2 {
					continue
				}
				for _, i := range dups {
					conflicted[i] = struct{}{}
				}
			}
		}
	}
	// row-major index order is row-then-column order
	cells := make([]Cell, 0, len(conflicted))
	for _, i := range slices.Sorted(maps.Keys(conflicted)) {
		cells = append(cells, b.cells[i])
	}
	return cells
}

// Definition serializes the current cell values back into the 81-digit
// format consumed by New.
func (b *Board) Definition() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for i := range b.cells {
		sb.WriteByte(byte('0' + b.cells[i].Value))
	}
	return sb.String()
}

// Givens serializes only the fixed cells, zeroes elsewhere. Feeding the
// result back to New reproduces the board as constructed.
func (b *Board) Givens() string {
	var sb strings.Builder
	sb.Grow(CellCount)
	for i := range b.cells {
		if b.cells[i].Fixed {
			sb.WriteByte(byte('0' + b.cells[i].Value))
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

func (b *Board) String() string {
	var sb strings.Builder
	for row := range Size {
		for col := range Size {
			v := b.cells[row*Size+col].Value
			if v == 0 {
				sb.WriteString(". ")
			} else {
				sb.WriteByte(byte('0' + v))
				sb.WriteByte(' ')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
