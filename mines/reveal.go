package mines

// Reveal opens r, c and, while opened cells have no mined neighbors, keeps
// opening their covered neighbors. It returns how many cells were opened.
//
// Out of bounds, flagged and already opened cells are left alone. The caller
// is responsible for not revealing a mine this way; see [Board.Explode].
func (b *Board) Reveal(r, c int) int {
	if !b.InBounds(r, c) || b.status(r, c) != Unknown {
		return 0
	}

	before := b.opened
	todo := []Point{{r, c}}
	b.open(r, c)

	for len(todo) > 0 {
		pt := todo[0]
		todo = todo[1:]
		if b.status(pt.Row, pt.Col) != 0 {
			continue
		}
		b.forNeighbors(pt.Row, pt.Col, func(rr, cc int) {
			if b.status(rr, cc) == Unknown {
				b.open(rr, cc)
				todo = append(todo, Point{rr, cc})
			}
		})
	}

	return b.opened - before
}

func (b *Board) open(r, c int) {
	b.setStatus(r, c, CellStatus(b.AdjacentMines(r, c)))
	b.opened++
}

// Explode puts the mine marker on every mine, flagged or not.
func (b *Board) Explode() {
	for i, m := range b.mines {
		if m {
			b.player.Cells[i] = Mine
		}
	}
}

// ToggleFlag switches a covered cell between hidden and flagged and reports
// whether anything changed.
func (b *Board) ToggleFlag(r, c int) bool {
	if !b.InBounds(r, c) {
		return false
	}
	switch b.status(r, c) {
	case Unknown:
		b.setStatus(r, c, Flagged)
	case Flagged:
		b.setStatus(r, c, Unknown)
	default:
		return false
	}
	return true
}

// chordTargets lists the covered neighbors of an opened number whose
// flagged neighbor count equals the number. Otherwise it returns nil.
func (b *Board) chordTargets(r, c int) []Point {
	if !b.InBounds(r, c) {
		return nil
	}
	s := b.status(r, c)
	if !s.Revealed() || s == 0 {
		return nil
	}
	targets := make([]Point, 0, 8-int(s))
	flags := 0
	b.forNeighbors(r, c, func(rr, cc int) {
		switch b.status(rr, cc) {
		case Flagged:
			flags++
		case Unknown:
			targets = append(targets, Point{rr, cc})
		}
	})
	if flags != int(s) {
		return nil
	}
	return targets
}

// restore overwrites the player grid with d and recounts opened cells.
func (b *Board) restore(d DisplayState) {
	b.player = d.clone()
	b.opened = b.player.opened()
}
