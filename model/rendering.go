package model

import (
	"fmt"
	"io"
	"sync"

	"github.com/pkg/errors"
)

// TerminalRenderer writes boards in text form to a terminal
type TerminalRenderer struct {
	mu  sync.Mutex
	out io.Writer
	enc CellEncoding
}

// NewTerminalRenderer creates a renderer writing to out with the given encoding
func NewTerminalRenderer(out io.Writer, enc CellEncoding) *TerminalRenderer {
	return &TerminalRenderer{out: out, enc: enc}
}

// Display renders the occupied area of the board under a title line.
// Calls from different goroutines do not interleave.
func (r *TerminalRenderer) Display(title string, b *Board) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, err := fmt.Fprintf(r.out, "== %s\n", title); err != nil {
		return errors.Wrapf(err, "[TerminalRenderer.Display] failed to write title: %+v", title)
	}
	if err := r.enc.SaveBoard(r.out, b); err != nil {
		return errors.Wrapf(err, "[TerminalRenderer.Display] failed to write board: %+v", title)
	}
	return nil
}
