package model

import (
	"io"

	"github.com/pkg/errors"
)

const (
	defaultAliveCell    = '*'
	defaultDeadCell     = '_'
	defaultRowSeparator = '\n'
)

// CellDecoder turns a character into a cell, failing with ErrInvalidCharacter
type CellDecoder func(c byte) (CellState, error)

// CellEncoder turns a cell into a character
type CellEncoder func(s CellState) byte

// CellEncoding maps cell states to characters for the text board format
type CellEncoding struct {
	AliveCell    byte
	DeadCell     byte
	RowSeparator byte
}

// DefaultCellEncoding returns the '*' / '_' / '\n' encoding
func DefaultCellEncoding() CellEncoding {
	return CellEncoding{
		AliveCell:    defaultAliveCell,
		DeadCell:     defaultDeadCell,
		RowSeparator: defaultRowSeparator,
	}
}

// NewCellEncoding builds an encoding, rejecting characters that are not pairwise distinct
func NewCellEncoding(alive, dead, separator byte) (CellEncoding, error) {
	enc := CellEncoding{AliveCell: alive, DeadCell: dead, RowSeparator: separator}
	if !enc.IsValid() {
		return CellEncoding{}, errors.Wrapf(
			ErrInvalidEncoding,
			"[NewCellEncoding] alive %q, dead %q and separator %q must differ",
			alive, dead, separator,
		)
	}
	return enc, nil
}

// IsValid reports whether the alive, dead and separator characters are pairwise distinct
func (e CellEncoding) IsValid() bool {
	return e.AliveCell != e.DeadCell &&
		e.AliveCell != e.RowSeparator &&
		e.DeadCell != e.RowSeparator
}

// Encode returns the character for the given state
func (e CellEncoding) Encode(s CellState) byte {
	if s == Alive {
		return e.AliveCell
	}
	return e.DeadCell
}

// Decode returns the state for the given character
func (e CellEncoding) Decode(c byte) (CellState, error) {
	switch c {
	case e.AliveCell:
		return Alive, nil
	case e.DeadCell:
		return Dead, nil
	}
	return Dead, errors.Wrapf(ErrInvalidCharacter, "[CellEncoding.Decode] unsupported character: %q", c)
}

// LoadBoard replaces the content of b with the board read from r
func (e CellEncoding) LoadBoard(r io.Reader, b *Board) error {
	return b.Load(r, e.Decode, e.RowSeparator)
}

// SaveBoard writes the occupied area of b to w
func (e CellEncoding) SaveBoard(w io.Writer, b *Board) error {
	return b.Save(w, b.GetOccupiedCellsBoundingRectangle(), e.Encode, e.RowSeparator)
}
