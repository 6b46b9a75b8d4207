package sudoku

import "fmt"

// ValidationCause discriminates why a board definition was rejected.
type ValidationCause uint8

const (
	BadLength ValidationCause = iota + 1
	BadCharacter
	BadValue
)

// ValidationError is the only error the package produces. It is returned
// from [New] alone; every other operation is total.
type ValidationError struct {
	Cause   ValidationCause
	message string
}

// [ValidationError] implements [error]
func (e *ValidationError) Error() string {
	return e.message
}

func errBadLength(n int) *ValidationError {
	return &ValidationError{
		Cause:   BadLength,
		message: fmt.Sprintf("board definition must be %d characters, got %d", CellCount, n),
	}
}

func errBadCharacter(i int, c byte) *ValidationError {
	return &ValidationError{
		Cause:   BadCharacter,
		message: fmt.Sprintf("board definition must contain only digits, got %q at index %d", c, i),
	}
}

func errBadValue(v int) *ValidationError {
	return &ValidationError{
		Cause:   BadValue,
		message: fmt.Sprintf("cell value must be in 0..%d, got %d", Size, v),
	}
}
