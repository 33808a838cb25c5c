package model

import "github.com/pkg/errors"

var (
	// ErrInvalidCharacter is returned when a character cannot be decoded into a cell
	ErrInvalidCharacter = errors.New("invalid character")
	// ErrInconsistentRowLength is returned when a row differs in length from the first one
	ErrInconsistentRowLength = errors.New("inconsistent row length")
	// ErrInvalidEncoding is returned when the alive, dead and separator characters collide
	ErrInvalidEncoding = errors.New("invalid encoding")
)

// CellState is the state of a single board position
type CellState uint8

const (
	// Dead is the default cell state, also returned for coordinates outside the board
	Dead CellState = iota
	Alive
)

func (s CellState) String() string {
	if s == Alive {
		return "alive"
	}
	return "dead"
}

// Rectangle is a half-open area of the board: [Left, Right) x [Top, Bottom)
type Rectangle struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// Length returns the number of columns, 0 for a degenerate rectangle
func (r Rectangle) Length() int {
	if r.Right > r.Left {
		return r.Right - r.Left
	}
	return 0
}

// Height returns the number of rows, 0 for a degenerate rectangle
func (r Rectangle) Height() int {
	if r.Bottom > r.Top {
		return r.Bottom - r.Top
	}
	return 0
}

// IsEmpty reports whether the rectangle covers no cells
func (r Rectangle) IsEmpty() bool {
	return r.Length() == 0 || r.Height() == 0
}
