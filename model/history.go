package model

// History remembers the hashes of recent boards for cycle detection
type History struct {
	size   int
	hashes []string
}

// NewHistory creates a history keeping the last size boards
func NewHistory(size int) *History {
	if size < 1 {
		size = 1
	}
	return &History{size: size}
}

// Observe records b and reports whether the same pattern was seen in the window.
// Still lifes, oscillators and spaceships all repeat.
func (h *History) Observe(b *Board) bool {
	hash := b.GetBoardHash()

	seen := false
	for _, prev := range h.hashes {
		if prev == hash {
			seen = true
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return seen
}

// Reset forgets every observed board
func (h *History) Reset() {
	h.hashes = nil
}
