package mines

import (
	"fmt"
	"slices"
	"strconv"
	"strings"
)

type CellStatus int8

const (
	Unknown CellStatus = -2
	Flagged CellStatus = -1
	// 0-8 for an opened cell with given number of mined neighbors
	Mine CellStatus = 64 // post-game-over
)

const (
	FlagMarker = "🚩"
	MineMarker = "💣"
)

func (s CellStatus) Revealed() bool {
	return 0 <= s && s <= 8
}

// Label is what a viewer sees on the cell. Hidden cells and opened cells
// without mined neighbors are both blank; use [CellStatus.Revealed] to tell
// them apart.
func (s CellStatus) Label() string {
	switch s {
	case Flagged:
		return FlagMarker
	case Mine:
		return MineMarker
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return ""
	}
}

func (s CellStatus) String() string {
	switch s {
	case Unknown:
		return "#"
	case Flagged:
		return "F"
	case Mine:
		return "*"
	case 0:
		return "."
	case 1, 2, 3, 4, 5, 6, 7, 8:
		return strconv.Itoa(int(s))
	default:
		return "!"
	}
}

// DisplayState is a row-major picture of the board as the player sees it.
type DisplayState struct {
	Rows, Cols int
	Cells      []CellStatus
}

func newDisplayState(rows, cols int) DisplayState {
	cells := make([]CellStatus, rows*cols)
	for i := range cells {
		cells[i] = Unknown
	}
	return DisplayState{Rows: rows, Cols: cols, Cells: cells}
}

func (d DisplayState) clone() DisplayState {
	d.Cells = slices.Clone(d.Cells)
	return d
}

func (d DisplayState) At(r, c int) CellStatus {
	return d.Cells[r*d.Cols+c]
}

func (d DisplayState) Label(r, c int) string {
	return d.At(r, c).Label()
}

func (d DisplayState) Revealed(r, c int) bool {
	return d.At(r, c).Revealed()
}

func (d DisplayState) Equal(o DisplayState) bool {
	return d.Rows == o.Rows && d.Cols == o.Cols && slices.Equal(d.Cells, o.Cells)
}

// Count returns how many cells are in status s.
func (d DisplayState) Count(s CellStatus) (n int) {
	for _, cs := range d.Cells {
		if cs == s {
			n++
		}
	}
	return
}

func (d DisplayState) opened() (n int) {
	for _, cs := range d.Cells {
		if cs.Revealed() {
			n++
		}
	}
	return
}

// DisplayState implements [fmt.Stringer]
func (d DisplayState) String() string {
	var b strings.Builder
	fmt.Fprint(&b, "   ")
	for c := range d.Cols {
		fmt.Fprintf(&b, "%d ", c%10)
	}
	fmt.Fprint(&b, "\n")
	for r := range d.Rows {
		fmt.Fprintf(&b, "%2d ", r)
		for c := range d.Cols {
			fmt.Fprint(&b, d.At(r, c).String()+" ")
		}
		fmt.Fprint(&b, "\n")
	}
	return b.String()
}
