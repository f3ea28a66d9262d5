package model

// History remembers the hashes of recent generations so a caller can notice
// when the board has settled into a still life or a short cycle.
type History struct {
	size   int
	hashes []string
}

// NewHistory keeps the last size hashes; size below 1 keeps five
func NewHistory(size int) *History {
	if size < 1 {
		size = 5
	}
	return &History{size: size}
}

// Record adds g to the history and returns the period of the cycle g closes,
// or 0 if g has not been seen among the remembered generations. A still life
// reports period 1.
func (h *History) Record(g *Grid) int {
	hash := g.Hash()
	period := 0
	for i := len(h.hashes) - 1; i >= 0; i-- {
		if h.hashes[i] == hash {
			period = len(h.hashes) - i
			break
		}
	}

	h.hashes = append(h.hashes, hash)
	if len(h.hashes) > h.size {
		h.hashes = h.hashes[1:]
	}
	return period
}

// Reset forgets all remembered generations
func (h *History) Reset() {
	h.hashes = nil
}
