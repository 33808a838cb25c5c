package model

import "github.com/sheikhrachel/go-gol-engine/rules"

// Engine runs generations of the game on a board that follows the living cells.
// Two boards are kept and swapped so that each generation reuses the buffers
// of the one before last.
type Engine struct {
	boards     [2]*Board
	current    int
	rules      rules.GameRules
	generation int
}

// NewEngine creates an engine owning board, which must not be used by the caller afterwards
func NewEngine(board *Board, r rules.GameRules) *Engine {
	if board == nil {
		board = &Board{}
	}
	return &Engine{
		boards: [2]*Board{board, {}},
		rules:  r,
	}
}

// Board returns the current board. Its size is only guaranteed to fit every living cell.
// The board must be treated as read-only and is invalidated by the next call to Next.
func (e *Engine) Board() *Board {
	return e.boards[e.current]
}

// Rules returns the rule set the engine applies
func (e *Engine) Rules() rules.GameRules {
	return e.rules
}

// Generation returns how many times Next has been called
func (e *Engine) Generation() int {
	return e.generation
}

// Next advances the game by one generation.
// A board without living cells is left untouched.
func (e *Engine) Next() {
	e.generation++

	current := e.boards[e.current]
	rect := current.GetOccupiedCellsBoundingRectangle()
	if rect.IsEmpty() {
		return
	}

	nextIdx := 1 - e.current
	next := e.boards[nextIdx]

	// one cell of margin on every side fits the fastest possible growth
	next.Reset(rect.Length()+2, rect.Height()+2)

	// newY deliberately runs one row past the new board; cells alive there are dropped
	for newY := 0; newY <= next.GetHeight(); newY++ {
		y := newY + rect.Top - 1
		for newX := 0; newX < next.GetLength(); newX++ {
			x := newX + rect.Left - 1
			alive := current.GetCell(x, y) == Alive
			if !e.rules.Apply(current.GetAliveNeighborsCount(x, y), alive) {
				continue
			}
			if newY < next.GetHeight() {
				next.SetCell(newX, newY, Alive)
			}
		}
	}

	e.current = nextIdx
}

// Release hands both boards to pool. The engine must not be used afterwards.
func (e *Engine) Release(pool *BoardPool) {
	for i, b := range e.boards {
		BoardToPool(b, pool)
		e.boards[i] = nil
	}
}
