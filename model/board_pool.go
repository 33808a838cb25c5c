package model

import "sync"

// BoardToPool returns a board to the pool for reuse
func BoardToPool(board *Board, pool *BoardPool) {
	if pool == nil || board == nil {
		return
	}

	pool.Put(board)
}

// BoardPool recycles board buffers between runs
type BoardPool struct {
	pool sync.Pool
}

func NewBoardPool() *BoardPool {
	return &BoardPool{
		pool: sync.Pool{
			New: func() interface{} {
				return &Board{}
			},
		},
	}
}

// Get retrieves a board from the pool, resetting its dimensions
func (p *BoardPool) Get(length, height int) *Board {
	b := p.pool.Get().(*Board)
	b.Reset(length, height)
	return b
}

// Put returns a board to the pool, dropping its content
func (p *BoardPool) Put(b *Board) {
	b.Reset(0, 0)
	p.pool.Put(b)
}
