package game

import (
	"fmt"
	"image/color"
	"math/rand"
	"time"
)

// scorePerLine is the score awarded per cleared row; simultaneous clears
// award linesCleared * scorePerLine.
const scorePerLine = 10

// Stats accumulates bookkeeping for the current game. It resets together
// with the board when the session goes through a game-over transition.
type Stats struct {
	Pieces    int // pieces spawned this game
	Lines     int // total rows cleared this game
	BestClear int // most rows cleared by a single placement
	Ticks     int // gravity ticks elapsed this game
}

// Session is one independent game: the board, the falling piece, the score
// and the random source that drives piece and colour selection. All engine
// operations mutate the session on the caller's goroutine; a session has no
// locking and expects tick and input calls to be serialized.
//
// There are no error conditions: invalid moves and rotations are silently
// rejected, and a colliding spawn triggers the game-over transition.
type Session struct {
	cfg     Config
	board   *Board
	piece   *Piece
	score   int
	stats   Stats
	games   int // completed (game-over) games this session
	rng     *rand.Rand
	palette []color.RGBA
	log     *EventLog

	scoreFn func(total int)  // observer: cumulative score after each clear
	overFn  func(final int)  // observer: fired once per game-over, before reset
	clearFn func(rows []int) // observer: full rows, fired before they are removed
}

// NewSession creates a session with an empty board and spawns the first
// piece. A nil rng falls back to a time-seeded source; tests pass a seeded
// one for deterministic piece sequences.
func NewSession(cfg Config, rng *rand.Rand) *Session {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano())) // #nosec G404 -- game only
	}
	s := &Session{
		cfg:     cfg,
		board:   NewBoard(cfg.Cols, cfg.Rows),
		rng:     rng,
		palette: Palette(cfg.PaletteSize),
		log:     NewEventLog(),
	}
	s.spawn()
	return s
}

// Config returns the session's configuration.
func (s *Session) Config() Config { return s.cfg }

// Board returns the playfield. Presentation adapters read it; only the
// engine writes to it.
func (s *Session) Board() *Board { return s.board }

// Piece returns the currently falling piece.
func (s *Session) Piece() *Piece { return s.piece }

// Score returns the current cumulative score.
func (s *Session) Score() int { return s.score }

// Stats returns the bookkeeping for the current game.
func (s *Session) Stats() Stats { return s.stats }

// Games returns how many games ended in game-over since the session started.
func (s *Session) Games() int { return s.games }

// Log returns the session's event log.
func (s *Session) Log() *EventLog { return s.log }

// OnScore registers the observer notified with the new cumulative score
// whenever rows are cleared.
func (s *Session) OnScore(fn func(total int)) { s.scoreFn = fn }

// OnOver registers the observer fired exactly once per game-over
// transition, with the final score, before the automatic reset proceeds.
func (s *Session) OnOver(fn func(final int)) { s.overFn = fn }

// OnClear registers the observer fired with the indices of completed rows
// after a piece merges and before the rows are removed, so adapters can
// still read the doomed cells.
func (s *Session) OnClear(fn func(rows []int)) { s.clearFn = fn }

// MoveLeft shifts the piece one column left if the target cells are open.
// Invalid requests are no-ops.
func (s *Session) MoveLeft() { s.tryShift(-1) }

// MoveRight shifts the piece one column right if the target cells are open.
// Invalid requests are no-ops.
func (s *Session) MoveRight() { s.tryShift(1) }

func (s *Session) tryShift(dx int) {
	if s.validMove(s.piece.X+dx, s.piece.Y, s.piece.Mask) {
		s.piece.X += dx
	}
}

// SoftDrop moves the piece down one row if the target cells are open.
// Unlike a gravity tick it never locks the piece.
func (s *Session) SoftDrop() {
	if s.validMove(s.piece.X, s.piece.Y+1, s.piece.Mask) {
		s.piece.Y++
	}
}

// Rotate replaces the piece's mask with its clockwise rotation when the
// rotated mask fits at the current position; otherwise the mask is kept
// unchanged. No wall-kick offsets are attempted.
func (s *Session) Rotate() {
	rotated := RotateCW(s.piece.Mask)
	if s.validMove(s.piece.X, s.piece.Y, rotated) {
		s.piece.Mask = rotated
	}
}

// Tick is the gravity step: move the piece down one row, or lock it in
// place when the row below is blocked or the board bottom is reached.
func (s *Session) Tick() {
	s.stats.Ticks++
	if s.validMove(s.piece.X, s.piece.Y+1, s.piece.Mask) {
		s.piece.Y++
		return
	}
	s.lock()
}

// validMove reports whether the mask fits at (x, y). Columns are strictly
// bounded to [0, Cols) and rows to (-inf, Rows): there is deliberately no
// lower bound on the row, because freshly spawned and rotated pieces may
// extend above the visible top where there is no geometry to collide with.
// Occupancy is only consulted for rows >= 0.
func (s *Session) validMove(x, y int, mask [][]bool) bool {
	for dy, row := range mask {
		for dx, filled := range row {
			if !filled {
				continue
			}
			cx := x + dx
			cy := y + dy
			if cx < 0 || cx >= s.cfg.Cols || cy >= s.cfg.Rows {
				return false
			}
			if cy >= 0 && !s.board.CellEmpty(cx, cy) {
				return false
			}
		}
	}
	return true
}

// lock merges the piece into the board, clears any completed rows, scores
// them and spawns the next piece.
func (s *Session) lock() {
	s.board.Merge(s.piece)
	rows := s.board.FullRows()
	if len(rows) > 0 {
		if s.clearFn != nil {
			s.clearFn(rows)
		}
		// Ascending order: clearing a row only shifts the rows above it,
		// so later (lower) full rows keep their indices.
		for _, row := range rows {
			s.board.ClearRow(row)
		}
		s.score += len(rows) * scorePerLine
		s.stats.Lines += len(rows)
		if len(rows) > s.stats.BestClear {
			s.stats.BestClear = len(rows)
		}
		s.log.Add(s.stats.Ticks, "clear", "rows", fmt.Sprintf("%d row(s) cleared", len(rows)), float64(len(rows)))
		s.log.Add(s.stats.Ticks, "score", "total", fmt.Sprintf("score=%d", s.score), float64(s.score))
		if s.scoreFn != nil {
			s.scoreFn(s.score)
		}
	}
	s.spawn()
}

// spawn creates the next piece at a horizontally centred top position. If
// the spawn position already collides with board cells, the session goes
// through the game-over transition instead.
func (s *Session) spawn() {
	shape := Shapes[s.rng.Intn(len(Shapes))]
	colour := s.palette[s.rng.Intn(len(s.palette))]
	p := &Piece{
		Name:  shape.Name,
		Mask:  copyMask(shape.Mask),
		Color: colour,
		Y:     0,
	}
	p.X = s.cfg.Cols/2 - p.Width()/2
	s.piece = p
	s.stats.Pieces++
	s.log.Add(s.stats.Ticks, "spawn", shape.Name, fmt.Sprintf("at col %d", p.X), 0)

	if !s.validMove(p.X, p.Y, p.Mask) {
		s.gameOver()
	}
}

// gameOver notifies the observer with the final score, then resets the
// board and score and spawns a fresh piece. The game-over state is
// terminal-then-reset, never an error.
func (s *Session) gameOver() {
	final := s.score
	s.log.Add(s.stats.Ticks, "over", "final", fmt.Sprintf("final score %d", final), float64(final))
	if s.overFn != nil {
		s.overFn(final)
	}
	s.games++
	s.board.Clear()
	s.score = 0
	s.stats = Stats{}
	s.spawn()
}
