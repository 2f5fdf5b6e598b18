package mines

import (
	"hash/maphash"
	"log/slog"
	"math/rand/v2"
)

var Log *slog.Logger = slog.Default()

type Status int

const (
	Active Status = iota
	Won
	Lost
)

func (s Status) String() string {
	switch s {
	case Active:
		return "active"
	case Won:
		return "won"
	case Lost:
		return "lost"
	default:
		return "unknown"
	}
}

func (s Status) Over() bool {
	return s != Active
}

func createRand() *rand.Rand {
	return rand.New(rand.NewPCG(
		new(maphash.Hash).Sum64(), new(maphash.Hash).Sum64(),
	))
}

// Session is one game: a board, its undo history and the game-over state.
// It is not safe for concurrent use.
type Session struct {
	board   *Board
	history History
	rnd     *rand.Rand
	status  Status
}

// NewSession lays out a new board. A nil r is replaced with a randomly
// seeded source.
func NewSession(params GameParams, r *rand.Rand) (*Session, error) {
	if r == nil {
		r = createRand()
	}
	board, err := newBoard(params, r)
	if err != nil {
		return nil, err
	}
	s := &Session{board: board, rnd: r}
	s.history.Capture(board)
	Log.Debug("new session", slog.String("params", params.Seed()))
	return s, nil
}

// Open is the primary action. Opening a mine loses the game; opening the
// last safe cell wins it.
func (s *Session) Open(r, c int) {
	if s.status.Over() || !s.board.InBounds(r, c) || s.board.status(r, c) != Unknown {
		return
	}
	s.openOne(r, c)
	s.history.Capture(s.board)
}

// openOne returns false once the game is over.
func (s *Session) openOne(r, c int) bool {
	if s.board.IsMine(r, c) {
		s.board.Explode()
		s.status = Lost
		Log.Debug("mine opened", slog.Int("row", r), slog.Int("col", c))
		return false
	}
	s.board.Reveal(r, c)
	if s.board.cleared() {
		s.status = Won
		Log.Debug("board cleared", slog.Int("opened", s.board.Opened()))
		return false
	}
	return true
}

// Flag is the secondary action: it toggles the flag on a covered cell.
func (s *Session) Flag(r, c int) {
	if s.status.Over() {
		return
	}
	if s.board.ToggleFlag(r, c) {
		s.history.Capture(s.board)
	}
}

// Chord opens every covered neighbor of an opened number once the player
// has flagged that many of its neighbors.
func (s *Session) Chord(r, c int) {
	if s.status.Over() {
		return
	}
	targets := s.board.chordTargets(r, c)
	if len(targets) == 0 {
		return
	}
	for _, pt := range targets {
		if !s.openOne(pt.Row, pt.Col) {
			break
		}
	}
	s.history.Capture(s.board)
}

// Undo steps back one action. With nothing left to undo, it deals a fresh
// board with the same mine count instead.
func (s *Session) Undo() {
	s.status = Active
	if prev, ok := s.history.Pop(); ok {
		s.board.restore(prev)
		Log.Debug("undo", slog.Int("history", s.history.Len()))
		return
	}
	if err := s.board.reset(s.board.MineCount, s.rnd); err != nil {
		// mine count was validated when the board was laid out
		panic(err)
	}
	s.history.Clear()
	s.history.Capture(s.board)
	Log.Debug("history exhausted, board reset", slog.String("params", s.board.Seed()))
}

// Restart deals a new board with mineCount mines. An invalid mine count is
// reported as a [ConfigurationError] and the session is left as it was.
func (s *Session) Restart(mineCount int) error {
	if err := s.board.reset(mineCount, s.rnd); err != nil {
		return err
	}
	s.status = Active
	s.history.Clear()
	s.history.Capture(s.board)
	Log.Debug("restart", slog.String("params", s.board.Seed()))
	return nil
}

// Render returns a copy of what the player currently sees.
func (s *Session) Render() DisplayState {
	return s.board.player.clone()
}

func (s *Session) Status() Status {
	return s.status
}

func (s *Session) Board() *Board {
	return s.board
}

func (s *Session) Params() GameParams {
	return s.board.GameParams
}

func (s *Session) MineCount() int {
	return s.board.MineCount
}

// TilesClicked is the number of safe cells opened so far.
func (s *Session) TilesClicked() int {
	return s.board.Opened()
}

func (s *Session) Flags() int {
	return s.board.player.Count(Flagged)
}

func (s *Session) HistoryLen() int {
	return s.history.Len()
}
