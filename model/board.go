package model

import (
	"bufio"
	"crypto/md5"
	"fmt"
	"io"

	"github.com/pkg/errors"
)

// Board represents the game board as a dense row-major grid.
// Living cells are counted per row and per column on every mutation,
// which keeps the bounding rectangle query linear in length+height.
type Board struct {
	cells         []CellState
	occupiedByRow []int
	occupiedByCol []int
}

// NewBoard creates a board of the given size with every cell dead
func NewBoard(length, height int) *Board {
	b := &Board{}
	b.Reset(length, height)
	return b
}

// GetLength returns the number of columns
func (b *Board) GetLength() int {
	return len(b.occupiedByCol)
}

// GetHeight returns the number of rows
func (b *Board) GetHeight() int {
	return len(b.occupiedByRow)
}

// Reset resizes the board to length x height, all cells dead.
// Existing buffers are reused when they are large enough.
func (b *Board) Reset(length, height int) {
	if length <= 0 || height <= 0 {
		length, height = 0, 0
	}
	b.cells = resize(b.cells, length*height)
	b.occupiedByRow = resize(b.occupiedByRow, height)
	b.occupiedByCol = resize(b.occupiedByCol, length)
}

func resize[T any](s []T, n int) []T {
	if cap(s) < n {
		return make([]T, n)
	}
	s = s[:n]
	clear(s)
	return s
}

// GetCell returns the cell at column x, row y, or Dead outside the board
func (b *Board) GetCell(x, y int) CellState {
	if x < 0 || x >= b.GetLength() || y < 0 || y >= b.GetHeight() {
		return Dead
	}
	return b.cells[x+y*b.GetLength()]
}

// SetCell replaces the cell at column x, row y.
// Coordinates are not checked.
func (b *Board) SetCell(x, y int, s CellState) {
	cell := &b.cells[x+y*b.GetLength()]
	switch {
	case *cell == Dead && s != Dead:
		b.occupiedByCol[x]++
		b.occupiedByRow[y]++
	case *cell != Dead && s == Dead:
		b.occupiedByCol[x]--
		b.occupiedByRow[y]--
	}
	*cell = s
}

// GetNeighborsCount returns how many of the 8 cells around (x, y) are in state s.
// Coordinates may lie outside the board.
func (b *Board) GetNeighborsCount(x, y int, s CellState) (count int) {
	for ny := y - 1; ny <= y+1; ny++ {
		for nx := x - 1; nx <= x+1; nx++ {
			if nx == x && ny == y {
				continue
			}
			if b.GetCell(nx, ny) == s {
				count++
			}
		}
	}
	return
}

// GetAliveNeighborsCount returns the number of living cells around (x, y)
func (b *Board) GetAliveNeighborsCount(x, y int) int {
	return b.GetNeighborsCount(x, y, Alive)
}

// GetOccupiedCellsBoundingRectangle returns the smallest rectangle holding every living cell
func (b *Board) GetOccupiedCellsBoundingRectangle() Rectangle {
	var rect Rectangle
	rect.Left, rect.Right = occupiedSpan(b.occupiedByCol)
	rect.Top, rect.Bottom = occupiedSpan(b.occupiedByRow)
	return rect
}

// occupiedSpan returns the first non-zero index and one past the last, or 0, 0
func occupiedSpan(counts []int) (first, last int) {
	for i, n := range counts {
		if n > 0 {
			first = i
			break
		}
	}
	for i := len(counts); i > 0; i-- {
		if counts[i-1] > 0 {
			last = i
			break
		}
	}
	return
}

// CountLivingCells returns the total number of living cells
func (b *Board) CountLivingCells() (count int) {
	for _, n := range b.occupiedByRow {
		count += n
	}
	return
}

// GetBoardHash returns an MD5 hash of the occupied area.
// Boards holding the same pattern at different offsets hash equally.
func (b *Board) GetBoardHash() string {
	rect := b.GetOccupiedCellsBoundingRectangle()
	h := md5.New()
	fmt.Fprintf(h, "%dx%d:", rect.Length(), rect.Height())
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			h.Write([]byte{byte(b.GetCell(x, y))})
		}
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}

// Load replaces the board with the one read from r.
// Every character but rowSeparator goes through decode; all rows must have equal length.
// The last row may omit its separator. On failure the board is left empty.
func (b *Board) Load(r io.Reader, decode CellDecoder, rowSeparator byte) error {
	b.Reset(0, 0)

	var (
		br           = bufio.NewReader(r)
		rowLength    = -1
		rowCellCount = 0
	)
	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			b.Reset(0, 0)
			return errors.Wrap(err, "[Board.Load] failed to read board")
		}

		if rowCellCount == 0 {
			b.occupiedByRow = append(b.occupiedByRow, 0)
		}
		row := len(b.occupiedByRow) - 1

		if c == rowSeparator {
			if rowLength >= 0 && rowLength != rowCellCount {
				b.Reset(0, 0)
				return errors.Wrapf(ErrInconsistentRowLength,
					"[Board.Load] row %d has %d cells, expected %d", row, rowCellCount, rowLength)
			}
			rowLength = rowCellCount
			rowCellCount = 0
			continue
		}

		s, err := decode(c)
		if err != nil {
			b.Reset(0, 0)
			return errors.Wrapf(err, "[Board.Load] row %d, column %d", row, rowCellCount)
		}
		b.cells = append(b.cells, s)
		if len(b.occupiedByCol) <= rowCellCount {
			b.occupiedByCol = append(b.occupiedByCol, 0)
		}
		if s != Dead {
			b.occupiedByRow[row]++
			b.occupiedByCol[rowCellCount]++
		}
		rowCellCount++
	}

	if rowCellCount != 0 && rowLength >= 0 && rowLength != rowCellCount {
		row := len(b.occupiedByRow) - 1
		b.Reset(0, 0)
		return errors.Wrapf(ErrInconsistentRowLength,
			"[Board.Load] last row %d has %d cells, expected %d", row, rowCellCount, rowLength)
	}

	// rows without cells do not make a board
	if b.GetLength() == 0 {
		b.Reset(0, 0)
	}
	return nil
}

// Save writes the area of the board delimited by rect to w, one separator after each row.
// No boundary checks are performed.
func (b *Board) Save(w io.Writer, rect Rectangle, encode CellEncoder, rowSeparator byte) error {
	bw := bufio.NewWriter(w)
	for y := rect.Top; y < rect.Bottom; y++ {
		for x := rect.Left; x < rect.Right; x++ {
			if err := bw.WriteByte(encode(b.GetCell(x, y))); err != nil {
				return errors.Wrap(err, "[Board.Save] failed to write cell")
			}
		}
		if err := bw.WriteByte(rowSeparator); err != nil {
			return errors.Wrap(err, "[Board.Save] failed to write row separator")
		}
	}
	if err := bw.Flush(); err != nil {
		return errors.Wrap(err, "[Board.Save] failed to flush board")
	}
	return nil
}
