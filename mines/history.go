package mines

// History is a stack of display snapshots, one per completed action. The
// top entry always mirrors the board as it is right now.
type History struct {
	states []DisplayState
}

// Capture pushes a copy of the player's view of b.
func (h *History) Capture(b *Board) DisplayState {
	d := b.player.clone()
	h.states = append(h.states, d)
	return d.clone()
}

// Pop discards the most recent snapshot and returns the one before it. It
// reports false, leaving the history intact, when fewer than two remain.
func (h *History) Pop() (DisplayState, bool) {
	if len(h.states) < 2 {
		return DisplayState{}, false
	}
	h.states = h.states[:len(h.states)-1]
	return h.states[len(h.states)-1].clone(), true
}

func (h *History) Peek() (DisplayState, bool) {
	if len(h.states) == 0 {
		return DisplayState{}, false
	}
	return h.states[len(h.states)-1].clone(), true
}

func (h *History) Len() int {
	return len(h.states)
}

func (h *History) Clear() {
	clear(h.states)
	h.states = h.states[:0]
}
