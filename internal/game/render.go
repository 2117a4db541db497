package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	windowBg     = color.RGBA{R: 14, G: 14, B: 20, A: 255}
	playfieldBg  = color.RGBA{R: 30, G: 30, B: 30, A: 255}
	gridLineCol  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	cellEdgeCol  = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	frameCol     = color.RGBA{R: 90, G: 70, B: 120, A: 255}
	frameGlowCol = color.RGBA{R: 60, G: 45, B: 85, A: 100}
	hudTextCol   = color.RGBA{R: 225, G: 225, B: 235, A: 255}
	hudDimCol    = color.RGBA{R: 150, G: 150, B: 165, A: 255}
)

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(windowBg)

	ox := float32(g.offX)
	oy := float32(g.offY)
	fw := float32(g.cfg.Cols * g.cfg.CellSize)
	fh := float32(g.cfg.Rows * g.cfg.CellSize)

	// Playfield background and cell grid.
	vector.FillRect(screen, ox, oy, fw, fh, playfieldBg, false)
	g.drawGrid(screen)

	// Settled cells, then the falling piece on top.
	g.drawBoard(screen)
	g.drawPiece(screen)

	// Transient effects over the playfield.
	g.effects.Draw(screen, float64(g.offX), float64(g.offY), g.cfg.Cols, g.cfg.CellSize)

	// Playfield frame.
	vector.StrokeRect(screen, ox-1, oy-1, fw+2, fh+2, 2.0, frameCol, false)
	vector.StrokeRect(screen, ox-3, oy-3, fw+6, fh+6, 1.0, frameGlowCol, false)

	g.drawPanel(screen)
	g.drawBanner(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	ox := float32(g.offX)
	oy := float32(g.offY)
	cell := g.cfg.CellSize
	w := g.cfg.Cols * cell
	h := g.cfg.Rows * cell
	for x := 0; x <= w; x += cell {
		xf := ox + float32(x)
		vector.StrokeLine(screen, xf, oy, xf, oy+float32(h), 1.0, gridLineCol, false)
	}
	for y := 0; y <= h; y += cell {
		yf := oy + float32(y)
		vector.StrokeLine(screen, ox, yf, ox+float32(w), yf, 1.0, gridLineCol, false)
	}
}

// drawCell fills one board cell with its colour plus a darker 1px edge.
func (g *Game) drawCell(screen *ebiten.Image, col, row int, c color.RGBA) {
	if row < 0 {
		return // above the visible top
	}
	cell := float32(g.cfg.CellSize)
	x := float32(g.offX) + float32(col)*cell
	y := float32(g.offY) + float32(row)*cell
	vector.FillRect(screen, x, y, cell, cell, c, false)
	vector.StrokeRect(screen, x, y, cell, cell, 1.0, cellEdgeCol, false)
}

func (g *Game) drawBoard(screen *ebiten.Image) {
	b := g.session.Board()
	for row := 0; row < b.Rows; row++ {
		for col := 0; col < b.Cols; col++ {
			if c := b.Cell(col, row); c != emptyCell {
				g.drawCell(screen, col, row, c)
			}
		}
	}
}

func (g *Game) drawPiece(screen *ebiten.Image) {
	p := g.session.Piece()
	if p == nil {
		return
	}
	for dy, row := range p.Mask {
		for dx, filled := range row {
			if filled {
				g.drawCell(screen, p.X+dx, p.Y+dy, p.Color)
			}
		}
	}
}

// drawPanel renders the score and session stats right of the playfield.
func (g *Game) drawPanel(screen *ebiten.Image) {
	px := float64(g.offX + g.cfg.Cols*g.cfg.CellSize + g.offX)
	py := float64(g.offY)
	st := g.session.Stats()

	g.drawText(screen, "SCORE", g.hudFace, px, py, hudDimCol)
	scoreCol := hudTextCol
	if g.pulse > 0 {
		// Shift towards white while the pulse decays.
		boost := uint8(30 * g.pulse)
		scoreCol = color.RGBA{R: 225 + boost, G: 225 + boost, B: 235 + uint8(20*g.pulse), A: 255}
	}
	g.drawText(screen, fmt.Sprintf("%d", g.session.Score()), g.titleFace, px, py+20, scoreCol)

	g.drawText(screen, "LINES", g.hudFace, px, py+80, hudDimCol)
	g.drawText(screen, fmt.Sprintf("%d", st.Lines), g.titleFace, px, py+100, hudTextCol)

	g.drawText(screen, fmt.Sprintf("pieces  %d", st.Pieces), g.hudFace, px, py+170, hudDimCol)
	g.drawText(screen, fmt.Sprintf("best    x%d", st.BestClear), g.hudFace, px, py+192, hudDimCol)
	g.drawText(screen, fmt.Sprintf("time    %s", time.Since(g.gameStart).Round(time.Second)), g.hudFace, px, py+214, hudDimCol)

	g.drawText(screen, "arrows  move/drop", g.hudFace, px, float64(g.height-g.offY)-62, hudDimCol)
	g.drawText(screen, "up/spc  rotate", g.hudFace, px, float64(g.height-g.offY)-40, hudDimCol)
}

// drawBanner renders the fading game-over notice over the playfield.
func (g *Game) drawBanner(screen *ebiten.Image) {
	if g.bannerAlpha <= 0 {
		return
	}
	ox := float32(g.offX)
	fw := float32(g.cfg.Cols * g.cfg.CellSize)
	fh := float32(g.cfg.Rows * g.cfg.CellSize)
	bandH := float32(72)
	bandY := float32(g.offY) + fh/2 - bandH/2

	bg := color.RGBA{A: uint8(190 * g.bannerAlpha)}
	vector.FillRect(screen, ox, bandY, fw, bandH, bg, false)

	a := g.bannerAlpha
	titleCol := color.RGBA{R: uint8(255 * a), G: uint8(70 * a), B: uint8(70 * a), A: uint8(255 * a)}
	subCol := color.RGBA{R: uint8(220 * a), G: uint8(220 * a), B: uint8(230 * a), A: uint8(255 * a)}

	g.drawTextCentered(screen, "GAME OVER", g.titleFace, float64(ox)+float64(fw)/2, float64(bandY)+10, titleCol)
	g.drawTextCentered(screen, fmt.Sprintf("final score %d", g.bannerScore), g.hudFace,
		float64(ox)+float64(fw)/2, float64(bandY)+44, subCol)
}

func (g *Game) drawText(screen *ebiten.Image, s string, face *text.GoTextFace, x, y float64, c color.RGBA) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, face, op)
}

func (g *Game) drawTextCentered(screen *ebiten.Image, s string, face *text.GoTextFace, cx, y float64, c color.RGBA) {
	w, _ := text.Measure(s, face, 0)
	g.drawText(screen, s, face, cx-w/2, y, c)
}
