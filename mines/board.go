package mines

import "math/rand/v2"

type Point struct {
	Row, Col int
}

// Cell is a read-only view of one square of a [Board].
type Cell struct {
	Point
	Revealed bool
	Flagged  bool
	IsMine   bool
	// only meaningful once Revealed
	AdjacentMines int
}

// Board owns the mine layout and what the player has uncovered so far.
// Its dimensions never change; a restart replaces the mines in place.
type Board struct {
	GameParams
	mines  []bool       /* real mine points */
	player DisplayState /* player knowledge */
	opened int
}

func newBoard(p GameParams, r *rand.Rand) (*Board, error) {
	b := &Board{
		GameParams: p,
		mines:      make([]bool, p.Cells()),
		player:     newDisplayState(p.Rows, p.Cols),
	}
	if err := b.reset(p.MineCount, r); err != nil {
		return nil, err
	}
	return b, nil
}

// reset lays out a fresh set of mines and covers every cell.
func (b *Board) reset(mineCount int, r *rand.Rand) error {
	p := b.GameParams
	p.MineCount = mineCount
	placed, err := GenerateMines(p, r)
	if err != nil {
		return err
	}
	b.placeMines(placed)
	b.MineCount = mineCount
	b.player = newDisplayState(b.Rows, b.Cols)
	b.opened = 0
	return nil
}

func (b *Board) placeMines(placed []Point) {
	clear(b.mines)
	for _, pt := range placed {
		b.mines[b.index(pt.Row, pt.Col)] = true
	}
}

func (b *Board) index(r, c int) int {
	return r*b.Cols + c
}

func (b *Board) InBounds(r, c int) bool {
	return b.ValidatePosition(r, c)
}

// IsMine is false for out of bounds positions.
func (b *Board) IsMine(r, c int) bool {
	return b.InBounds(r, c) && b.mines[b.index(r, c)]
}

func (b *Board) status(r, c int) CellStatus {
	return b.player.Cells[b.index(r, c)]
}

func (b *Board) setStatus(r, c int, s CellStatus) {
	b.player.Cells[b.index(r, c)] = s
}

// CellAt panics if r, c is out of bounds.
func (b *Board) CellAt(r, c int) Cell {
	s := b.status(r, c)
	cell := Cell{
		Point:    Point{r, c},
		Revealed: s.Revealed(),
		Flagged:  s == Flagged,
		IsMine:   b.IsMine(r, c),
	}
	if cell.Revealed {
		cell.AdjacentMines = int(s)
	}
	return cell
}

// AdjacentMines counts mines among the up to 8 neighbors of r, c.
func (b *Board) AdjacentMines(r, c int) int {
	n := 0
	b.forNeighbors(r, c, func(rr, cc int) {
		if b.mines[b.index(rr, cc)] {
			n++
		}
	})
	return n
}

// forNeighbors calls fn for every in-bounds neighbor of r, c.
func (b *Board) forNeighbors(r, c int, fn func(rr, cc int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			if b.InBounds(r+dr, c+dc) {
				fn(r+dr, c+dc)
			}
		}
	}
}

func (b *Board) Mines() []Point {
	pts := make([]Point, 0, b.MineCount)
	for i, m := range b.mines {
		if m {
			pts = append(pts, Point{i / b.Cols, i % b.Cols})
		}
	}
	return pts
}

// Opened is the number of non-mine cells the player has uncovered.
func (b *Board) Opened() int {
	return b.opened
}

func (b *Board) cleared() bool {
	return b.opened == b.Cells()-b.MineCount
}
