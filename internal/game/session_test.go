package game

import (
	"math/rand"
	"testing"
)

func newTestSession(seed int64) *Session {
	return NewSession(DefaultConfig(), rand.New(rand.NewSource(seed)))
}

// setPiece swaps in a hand-built piece so tests control exactly what falls.
func setPiece(s *Session, m [][]bool, x, y int) *Piece {
	p := &Piece{Name: "test", Mask: m, Color: testRed, X: x, Y: y}
	s.piece = p
	return p
}

func TestNewSession_SpawnsCenteredAtTop(t *testing.T) {
	s := newTestSession(1)
	p := s.Piece()
	if p == nil {
		t.Fatal("a fresh session must have a falling piece")
	}
	if p.Y != 0 {
		t.Fatalf("spawn row = %d, want 0", p.Y)
	}
	wantX := s.cfg.Cols/2 - p.Width()/2
	if p.X != wantX {
		t.Fatalf("spawn col = %d, want %d", p.X, wantX)
	}
	if s.Score() != 0 {
		t.Fatalf("fresh session score = %d, want 0", s.Score())
	}
	if s.Stats().Pieces != 1 {
		t.Fatalf("fresh session pieces = %d, want 1", s.Stats().Pieces)
	}
}

func TestValidMove_ColumnAndFloorBoundsStrict(t *testing.T) {
	s := newTestSession(1)
	i := mask("####")
	if s.validMove(-1, 5, i) {
		t.Fatal("column -1 must be rejected")
	}
	if s.validMove(s.cfg.Cols-3, 5, i) {
		t.Fatal("mask extending past the last column must be rejected")
	}
	if !s.validMove(s.cfg.Cols-4, 5, i) {
		t.Fatal("mask ending exactly at the last column must be accepted")
	}
	if s.validMove(3, s.cfg.Rows, i) {
		t.Fatal("row == ROWS must be rejected")
	}
}

func TestValidMove_NoUpperRowBound(t *testing.T) {
	// Rows above the visible top are always open; spawn and rotation rely
	// on this asymmetry.
	s := newTestSession(1)
	vertical := mask("#", "#", "#", "#")
	if !s.validMove(3, -3, vertical) {
		t.Fatal("negative rows must be permitted on an empty board")
	}
	// Occupancy still applies to the part that reaches the board.
	s.board.SetCell(3, 0, testBlue)
	if s.validMove(3, -3, vertical) {
		t.Fatal("cell collision at row 0 must reject the move even when most of the mask is above the top")
	}
}

func TestMove_WallRejectionIsSilent(t *testing.T) {
	s := newTestSession(1)
	p := setPiece(s, mask("####"), 0, 5)
	s.MoveLeft()
	if p.X != 0 {
		t.Fatalf("move into the left wall must be a no-op, X = %d", p.X)
	}
	p.X = s.cfg.Cols - 4
	s.MoveRight()
	if p.X != s.cfg.Cols-4 {
		t.Fatalf("move into the right wall must be a no-op, X = %d", p.X)
	}
	s.MoveLeft()
	if p.X != s.cfg.Cols-5 {
		t.Fatalf("legal move must apply, X = %d", p.X)
	}
}

func TestRotate_RejectedWhenBlocked(t *testing.T) {
	s := newTestSession(1)
	vertical := mask("#", "#", "#", "#")
	p := setPiece(s, copyMask(vertical), s.cfg.Cols-1, 5)
	s.Rotate() // would span columns Cols-1 .. Cols+2
	if !maskEqual(p.Mask, vertical) {
		t.Fatal("blocked rotation must leave the mask unchanged")
	}
	p.X = 3
	s.Rotate()
	if len(p.Mask) != 1 || len(p.Mask[0]) != 4 {
		t.Fatalf("valid rotation must apply, mask is %dx%d", len(p.Mask), len(p.Mask[0]))
	}
}

func TestTick_MovesDownThenLocks(t *testing.T) {
	s := newTestSession(1)
	setPiece(s, mask("##", "##"), 4, s.cfg.Rows-3)

	s.Tick()
	if s.Piece().Y != s.cfg.Rows-2 {
		t.Fatalf("gravity tick should move the piece down, Y = %d", s.Piece().Y)
	}

	s.Tick() // bottom reached: lock, no clear, respawn
	b := s.Board()
	for _, c := range [][2]int{{4, s.cfg.Rows - 2}, {5, s.cfg.Rows - 2}, {4, s.cfg.Rows - 1}, {5, s.cfg.Rows - 1}} {
		if b.CellEmpty(c[0], c[1]) {
			t.Fatalf("cell (%d,%d) should hold the locked piece", c[0], c[1])
		}
	}
	if s.Piece().Y != 0 {
		t.Fatal("a new piece should spawn at the top after locking")
	}
	if s.Stats().Pieces != 2 {
		t.Fatalf("pieces = %d, want 2", s.Stats().Pieces)
	}
	if s.Score() != 0 {
		t.Fatalf("locking without a clear must not score, got %d", s.Score())
	}
}

func TestLineClear_SingleRowScoresTen(t *testing.T) {
	s := newTestSession(1)
	bottom := s.cfg.Rows - 1
	for col := 0; col < s.cfg.Cols; col++ {
		if col != 4 && col != 5 {
			s.board.SetCell(col, bottom, testBlue)
		}
	}
	setPiece(s, mask("##", "##"), 4, bottom-1)

	var gotScore int
	var gotRows []int
	s.OnScore(func(total int) { gotScore = total })
	s.OnClear(func(rows []int) { gotRows = append([]int(nil), rows...) })

	s.Tick() // down is blocked by the floor: lock and clear

	if s.Score() != 10 {
		t.Fatalf("single clear score = %d, want 10", s.Score())
	}
	if gotScore != 10 {
		t.Fatalf("score observer got %d, want 10", gotScore)
	}
	if len(gotRows) != 1 || gotRows[0] != bottom {
		t.Fatalf("clear observer got rows %v, want [%d]", gotRows, bottom)
	}
	// The O piece's upper half shifts into the bottom row.
	b := s.Board()
	for col := 0; col < s.cfg.Cols; col++ {
		want := col == 4 || col == 5
		if !b.CellEmpty(col, bottom) != want {
			t.Fatalf("bottom row col %d occupancy wrong after clear", col)
		}
	}
	for col := 0; col < s.cfg.Cols; col++ {
		if !b.CellEmpty(col, 0) {
			t.Fatal("top row should be empty after the shift")
		}
	}
	if s.Stats().Lines != 1 {
		t.Fatalf("stats lines = %d, want 1", s.Stats().Lines)
	}
}

func TestLineClear_TwoRowsScoreTwenty(t *testing.T) {
	s := newTestSession(1)
	r1 := s.cfg.Rows - 2
	r2 := s.cfg.Rows - 1
	for col := 0; col < s.cfg.Cols; col++ {
		if col != 4 && col != 5 {
			s.board.SetCell(col, r1, testBlue)
			s.board.SetCell(col, r2, testBlue)
		}
	}
	setPiece(s, mask("##", "##"), 4, r1)

	s.Tick()

	if s.Score() != 20 {
		t.Fatalf("double clear score = %d, want 20", s.Score())
	}
	if s.Stats().Lines != 2 || s.Stats().BestClear != 2 {
		t.Fatalf("stats = %+v, want 2 lines with best clear 2", s.Stats())
	}
	b := s.Board()
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if !b.CellEmpty(col, row) {
				t.Fatalf("board should be empty after both rows clear, cell (%d,%d) occupied", col, row)
			}
		}
	}
}

func TestVerticalIPiece_CompletesOnlyBottomRow(t *testing.T) {
	s := newTestSession(1)
	bottom := s.cfg.Rows - 1
	for col := 0; col <= 8; col++ {
		s.board.SetCell(col, bottom, testBlue)
	}
	setPiece(s, mask("#", "#", "#", "#"), 9, bottom-3)

	s.Tick() // floor below: lock

	if s.Score() != 10 {
		t.Fatalf("score = %d, want 10", s.Score())
	}
	b := s.Board()
	for col := 0; col < b.Cols; col++ {
		if !b.CellEmpty(col, 0) {
			t.Fatal("row 0 must be all-empty after the clear")
		}
	}
	// Only the surviving three cells of the I piece remain, shifted down one.
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			occupied := !b.CellEmpty(col, row)
			want := col == 9 && row >= bottom-2
			if occupied != want {
				t.Fatalf("cell (%d,%d) occupied=%v, want %v", col, row, occupied, want)
			}
		}
	}
}

func TestSpawnCollision_GameOverNotifiesOnceAndResets(t *testing.T) {
	s := newTestSession(1)
	s.score = 55
	for col := 2; col <= 7; col++ {
		s.board.SetCell(col, 0, testBlue)
		s.board.SetCell(col, 1, testBlue)
	}

	overCalls := 0
	var final int
	s.OnOver(func(f int) {
		overCalls++
		final = f
	})

	s.spawn()

	if overCalls != 1 {
		t.Fatalf("game-over observer fired %d times, want exactly 1", overCalls)
	}
	if final != 55 {
		t.Fatalf("final score reported as %d, want 55", final)
	}
	if s.Score() != 0 {
		t.Fatalf("score after reset = %d, want 0", s.Score())
	}
	if s.Games() != 1 {
		t.Fatalf("games = %d, want 1", s.Games())
	}
	b := s.Board()
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if !b.CellEmpty(col, row) {
				t.Fatalf("board cell (%d,%d) should be empty after reset", col, row)
			}
		}
	}
	if s.Piece() == nil || s.Piece().Y != 0 {
		t.Fatal("a fresh piece should spawn after the reset")
	}
}

func TestGameOver_WithoutObserversDoesNotPanic(t *testing.T) {
	s := newTestSession(1)
	for col := 0; col < s.cfg.Cols; col++ {
		s.board.SetCell(col, 0, testBlue)
		s.board.SetCell(col, 1, testBlue)
	}
	s.spawn() // must not panic with nil callbacks
	if s.Games() != 1 {
		t.Fatalf("games = %d, want 1", s.Games())
	}
}

func TestAutoplayer_SoakKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewSession(DefaultConfig(), rng)
	bot := NewAutoplayer(rng, 3)
	bot.Run(s, 600)

	b := s.Board()
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			c := b.Cell(col, row)
			if c.A != 0 && c.A != 255 {
				t.Fatalf("cell (%d,%d) holds a half-transparent colour: %v", col, row, c)
			}
		}
	}
	p := s.Piece()
	if p.X < 0 || p.X+p.Width() > s.cfg.Cols {
		t.Fatalf("piece escaped the columns: X=%d width=%d", p.X, p.Width())
	}
	if s.Score() < 0 {
		t.Fatalf("score went negative: %d", s.Score())
	}
	if s.Score()%10 != 0 {
		t.Fatalf("score must be a multiple of 10, got %d", s.Score())
	}
	log := s.Log()
	if got := int(log.SumNum("clear", "rows")); got < s.Stats().Lines {
		t.Fatalf("log records %d cleared rows, current game alone has %d", got, s.Stats().Lines)
	}
	if log.Count("spawn") < s.Stats().Pieces {
		t.Fatal("every spawned piece must appear in the event log")
	}
}
