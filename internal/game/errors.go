package game

import (
	"errors"
	"fmt"
)

// OutOfBoundsError reports a lock request for a cell outside the stored grid.
// The board is left untouched when it is returned.
type OutOfBoundsError struct {
	Cell Cell
}

func (e *OutOfBoundsError) Error() string {
	if e == nil {
		return "cell out of bounds"
	}
	return fmt.Sprintf("cell (%d,%d) outside board [0,%d]x[0,%d]", e.Cell.Col, e.Cell.Row, Width-1, Height-1)
}

func IsOutOfBounds(err error) bool {
	var e *OutOfBoundsError
	return errors.As(err, &e)
}

// InvariantError is the panic value for programming errors such as an
// unknown piece kind or a rotation index outside 0..3.
type InvariantError struct {
	Msg string
}

func (e *InvariantError) Error() string {
	return "game invariant violated: " + e.Msg
}
