package game

import (
	"bytes"
	"log"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	text "github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/font/gofont/goregular"
)

// borderWidth is the pixel gap between the window edge and the playfield.
const borderWidth = 24

// panelWidth is the pixel width of the score panel right of the playfield.
const panelWidth = 170

// Game is the Ebitengine front end: it owns a Session and translates key
// presses and the wall-clock gravity timer into engine calls, then draws
// the session state each frame. All engine mutation happens on the single
// Update goroutine, so the session needs no locking.
type Game struct {
	width  int
	height int
	offX   int // pixel offset from window left to playfield left
	offY   int // pixel offset from window top to playfield top

	cfg     Config
	session *Session
	effects *Effects

	prevKeys map[ebiten.Key]bool

	// Gravity timing: one engine tick every tickFrames update frames.
	tickFrames int
	frameCount int

	// Score pulse, brightening the score read-out briefly after a clear.
	scorePulse *gween.Tween
	pulse      float32

	// Game-over banner, shown fading after each over transition.
	bannerScore int
	bannerFade  *gween.Tween
	bannerAlpha float32

	gameStart time.Time

	titleFace *text.GoTextFace
	hudFace   *text.GoTextFace
}

func New() *Game {
	cfg := DefaultConfig()
	g := &Game{
		width:    borderWidth + cfg.Cols*cfg.CellSize + borderWidth + panelWidth,
		height:   borderWidth + cfg.Rows*cfg.CellSize + borderWidth,
		offX:     borderWidth,
		offY:     borderWidth,
		cfg:      cfg,
		prevKeys: make(map[ebiten.Key]bool),
	}

	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		log.Fatalf("load hud font: %v", err)
	}
	g.titleFace = &text.GoTextFace{Source: src, Size: 26}
	g.hudFace = &text.GoTextFace{Source: src, Size: 15}

	// Gravity period expressed in 60 TPS update frames.
	g.tickFrames = int(cfg.TickInterval.Seconds() * 60)
	if g.tickFrames < 1 {
		g.tickFrames = 1
	}

	g.session = NewSession(cfg, rand.New(rand.NewSource(time.Now().UnixNano())))  // #nosec G404 -- game only
	g.effects = NewEffects(rand.New(rand.NewSource(time.Now().UnixNano() + 321))) // #nosec G404 -- cosmetic only
	g.gameStart = time.Now()

	g.session.OnClear(func(rows []int) { g.clearEffects(rows) })
	g.session.OnScore(func(int) {
		g.scorePulse = gween.New(1, 0, 0.6, ease.OutQuad)
	})
	g.session.OnOver(func(final int) { g.notifyGameOver(final) })
	return g
}

// clearEffects emits a particle burst for every cell of the rows about to
// vanish, plus a white flash per row. The board still holds the doomed
// cells when this runs.
func (g *Game) clearEffects(rows []int) {
	cell := g.cfg.CellSize
	for _, row := range rows {
		g.effects.FlashRow(row)
		for col := 0; col < g.cfg.Cols; col++ {
			c := g.session.Board().Cell(col, row)
			px := float64(col*cell + cell/2)
			py := float64(row*cell + cell/2)
			g.effects.Burst(px, py, c, 3)
		}
	}
}

// notifyGameOver shows the banner and drops a plain-text summary of the
// finished game on the clipboard. Runs before the session resets, so the
// stats still describe the game that just ended.
func (g *Game) notifyGameOver(final int) {
	g.bannerScore = final
	g.bannerAlpha = 1
	g.bannerFade = gween.New(1, 0, 4, ease.InQuad)
	if err := CopySummary(final, g.session.Stats(), time.Since(g.gameStart)); err != nil {
		log.Printf("clipboard summary: %v", err)
	}
	g.gameStart = time.Now()
	g.frameCount = 0
}

func (g *Game) Update() error {
	g.handleInput()

	g.frameCount++
	if g.frameCount >= g.tickFrames {
		g.frameCount = 0
		g.session.Tick()
	}

	const dt = 1.0 / 60
	g.effects.Update(dt)
	if g.scorePulse != nil {
		var done bool
		g.pulse, done = g.scorePulse.Update(dt)
		if done {
			g.scorePulse = nil
			g.pulse = 0
		}
	}
	if g.bannerFade != nil {
		var done bool
		g.bannerAlpha, done = g.bannerFade.Update(dt)
		if done {
			g.bannerFade = nil
			g.bannerAlpha = 0
		}
	}
	return nil
}

// handleInput maps edge-triggered key presses onto engine operations: one
// discrete press, one engine call.
func (g *Game) handleInput() {
	currentKeys := map[ebiten.Key]bool{}

	press := func(k ebiten.Key) bool {
		currentKeys[k] = ebiten.IsKeyPressed(k)
		return currentKeys[k] && !g.prevKeys[k]
	}

	if press(ebiten.KeyArrowLeft) {
		g.session.MoveLeft()
	}
	if press(ebiten.KeyArrowRight) {
		g.session.MoveRight()
	}
	if press(ebiten.KeyArrowDown) {
		g.session.SoftDrop()
	}
	rotUp := press(ebiten.KeyArrowUp)
	rotSpace := press(ebiten.KeySpace)
	if rotUp || rotSpace {
		g.session.Rotate()
	}

	g.prevKeys = currentKeys
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}

// Width returns the window width in pixels.
func (g *Game) Width() int { return g.width }

// Height returns the window height in pixels.
func (g *Game) Height() int { return g.height }
