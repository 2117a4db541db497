// Command term is the terminal front end: the same simulation core as the
// graphical game, drawn with termbox cells instead of a pixel canvas.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math/rand"
	"time"

	"github.com/Garsondee/Neon-Drop/internal/game"
	"github.com/mattn/go-runewidth"
	"github.com/nsf/termbox-go"
)

const (
	boardOffX = 2 // terminal column of the playfield's left edge
	boardOffY = 1 // terminal row of the playfield's top edge
	cellWidth = 2 // each board cell is two terminal columns wide
)

func main() {
	var seed int64
	flag.Int64Var(&seed, "seed", 0, "RNG seed (0 = time-based)")
	flag.Parse()

	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	if err := termbox.Init(); err != nil {
		log.Fatal(err)
	}
	defer termbox.Close()
	termbox.SetOutputMode(termbox.Output256)

	cfg := game.DefaultConfig()
	s := game.NewSession(cfg, rand.New(rand.NewSource(seed))) // #nosec G404 -- game only

	// Game-over notice: keep the final score on screen for a few seconds.
	var overScore int
	var overUntil time.Time
	s.OnOver(func(final int) {
		overScore = final
		overUntil = time.Now().Add(4 * time.Second)
	})

	// One goroutine forwards raw events; the session is only ever touched
	// from the loop below, so ticks and inputs stay strictly serialized.
	events := make(chan termbox.Event)
	go func() {
		for {
			events <- termbox.PollEvent()
		}
	}()

	ticker := time.NewTicker(cfg.TickInterval)
	defer ticker.Stop()

	for {
		draw(s, overScore, overUntil)
		select {
		case ev := <-events:
			if ev.Type != termbox.EventKey {
				continue
			}
			switch {
			case ev.Key == termbox.KeyArrowLeft:
				s.MoveLeft()
			case ev.Key == termbox.KeyArrowRight:
				s.MoveRight()
			case ev.Key == termbox.KeyArrowDown:
				s.SoftDrop()
			case ev.Key == termbox.KeyArrowUp || ev.Key == termbox.KeySpace:
				s.Rotate()
			case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC || ev.Ch == 'q':
				return
			}
		case <-ticker.C:
			s.Tick()
		}
	}
}

func draw(s *game.Session, overScore int, overUntil time.Time) {
	_ = termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	cfg := s.Config()

	drawFrame(cfg.Cols, cfg.Rows)

	// Settled cells.
	b := s.Board()
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if c := b.Cell(col, row); c.A != 0 {
				drawCell(col, row, c)
			}
		}
	}

	// Falling piece.
	if p := s.Piece(); p != nil {
		for dy, maskRow := range p.Mask {
			for dx, filled := range maskRow {
				if filled && p.Y+dy >= 0 {
					drawCell(p.X+dx, p.Y+dy, p.Color)
				}
			}
		}
	}

	// Side panel.
	px := boardOffX + cfg.Cols*cellWidth + 3
	st := s.Stats()
	printAt(px, boardOffY+0, termbox.ColorWhite, fmt.Sprintf("score %d", s.Score()))
	printAt(px, boardOffY+1, termbox.ColorWhite, fmt.Sprintf("lines %d", st.Lines))
	printAt(px, boardOffY+2, termbox.ColorWhite, fmt.Sprintf("pieces %d", st.Pieces))
	printAt(px, boardOffY+4, termbox.ColorDefault, "arrows move/drop")
	printAt(px, boardOffY+5, termbox.ColorDefault, "up/space rotate")
	printAt(px, boardOffY+6, termbox.ColorDefault, "q quit")

	// Game-over banner, centred over the playfield.
	if time.Now().Before(overUntil) {
		msg := fmt.Sprintf(" GAME OVER — %d ", overScore)
		w := runewidth.StringWidth(msg)
		x := boardOffX + (cfg.Cols*cellWidth-w)/2
		y := boardOffY + cfg.Rows/2
		for _, ch := range msg {
			termbox.SetCell(x, y, ch, termbox.ColorWhite|termbox.AttrBold, termbox.ColorRed)
			x += runewidth.RuneWidth(ch)
		}
	}

	_ = termbox.Flush()
}

// drawCell paints one board cell as a cellWidth-wide block of the given colour.
func drawCell(col, row int, c color.RGBA) {
	attr := rgbAttr(c)
	for i := 0; i < cellWidth; i++ {
		termbox.SetCell(boardOffX+col*cellWidth+i, boardOffY+row, ' ', termbox.ColorDefault, attr)
	}
}

// drawFrame draws the playfield border.
func drawFrame(cols, rows int) {
	w := cols * cellWidth
	for x := -1; x <= w; x++ {
		termbox.SetCell(boardOffX+x, boardOffY-1, '─', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(boardOffX+x, boardOffY+rows, '─', termbox.ColorWhite, termbox.ColorDefault)
	}
	for y := 0; y < rows; y++ {
		termbox.SetCell(boardOffX-1, boardOffY+y, '│', termbox.ColorWhite, termbox.ColorDefault)
		termbox.SetCell(boardOffX+w, boardOffY+y, '│', termbox.ColorWhite, termbox.ColorDefault)
	}
	termbox.SetCell(boardOffX-1, boardOffY-1, '┌', termbox.ColorWhite, termbox.ColorDefault)
	termbox.SetCell(boardOffX+w, boardOffY-1, '┐', termbox.ColorWhite, termbox.ColorDefault)
	termbox.SetCell(boardOffX-1, boardOffY+rows, '└', termbox.ColorWhite, termbox.ColorDefault)
	termbox.SetCell(boardOffX+w, boardOffY+rows, '┘', termbox.ColorWhite, termbox.ColorDefault)
}

func printAt(x, y int, fg termbox.Attribute, s string) {
	for _, ch := range s {
		termbox.SetCell(x, y, ch, fg, termbox.ColorDefault)
		x += runewidth.RuneWidth(ch)
	}
}

// rgbAttr maps an RGB colour onto the closest entry of the 256-colour cube.
func rgbAttr(c color.RGBA) termbox.Attribute {
	r := int(c.R) * 6 / 256
	g := int(c.G) * 6 / 256
	b := int(c.B) * 6 / 256
	idx := 16 + 36*r + 6*g + b
	return termbox.Attribute(idx + 1)
}
