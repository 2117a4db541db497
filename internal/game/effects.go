package game

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// particle is one square fragment of a line-clear burst. Position and
// velocity are in pixels; fading is driven by a tween over the particle's
// lifetime.
type particle struct {
	x, y   float64
	vx, vy float64
	size   float64
	col    color.RGBA
	alpha  float32
	fade   *gween.Tween
}

// particleGravity is the per-second downward acceleration, in pixels.
const particleGravity = 360.0

// Effects owns the transient visuals of the playfield: clear-burst
// particles and the white flash on rows about to vanish.
type Effects struct {
	particles []*particle
	flashes   []*rowFlash
	rng       *rand.Rand
}

// rowFlash is a brief white highlight over a cleared row.
type rowFlash struct {
	row   int
	alpha float32
	tween *gween.Tween
}

// NewEffects creates an effect system with its own random source for
// particle scatter.
func NewEffects(rng *rand.Rand) *Effects {
	return &Effects{rng: rng}
}

// Burst emits count particles of the given colour from pixel position
// (px, py), scattering with an upward bias.
func (e *Effects) Burst(px, py float64, col color.RGBA, count int) {
	for i := 0; i < count; i++ {
		lifetime := 0.5 + e.rng.Float64()*0.5 // seconds
		p := &particle{
			x:     px,
			y:     py,
			vx:    (e.rng.Float64() - 0.5) * 360,
			vy:    -120 - e.rng.Float64()*300,
			size:  6 + e.rng.Float64()*6,
			col:   col,
			alpha: 1,
			fade:  gween.New(1, 0, float32(lifetime), ease.OutQuad),
		}
		e.particles = append(e.particles, p)
	}
}

// FlashRow starts a white flash over the given board row.
func (e *Effects) FlashRow(row int) {
	e.flashes = append(e.flashes, &rowFlash{
		row:   row,
		alpha: 1,
		tween: gween.New(1, 0, 0.3, ease.OutQuad),
	})
}

// Update advances all live effects by dt seconds and drops finished ones.
func (e *Effects) Update(dt float64) {
	kept := e.particles[:0]
	for _, p := range e.particles {
		p.x += p.vx * dt
		p.y += p.vy * dt
		p.vy += particleGravity * dt
		if p.size > 1 {
			p.size -= 6 * dt
		}
		var done bool
		p.alpha, done = p.fade.Update(float32(dt))
		if done {
			continue
		}
		kept = append(kept, p)
	}
	e.particles = kept

	keptFl := e.flashes[:0]
	for _, f := range e.flashes {
		var done bool
		f.alpha, done = f.tween.Update(float32(dt))
		if done {
			continue
		}
		keptFl = append(keptFl, f)
	}
	e.flashes = keptFl
}

// Live returns the number of active particles.
func (e *Effects) Live() int {
	return len(e.particles)
}

// Draw renders particles and row flashes. offX/offY is the pixel offset of
// the playfield's top-left corner; cell is the cell edge in pixels.
func (e *Effects) Draw(screen *ebiten.Image, offX, offY float64, cols, cell int) {
	for _, f := range e.flashes {
		c := color.RGBA{R: 255, G: 255, B: 255, A: uint8(180 * f.alpha)}
		vector.FillRect(screen,
			float32(offX), float32(offY)+float32(f.row*cell),
			float32(cols*cell), float32(cell), c, false)
	}
	for _, p := range e.particles {
		c := p.col
		c.A = uint8(255 * p.alpha)
		vector.FillRect(screen,
			float32(offX+p.x), float32(offY+p.y),
			float32(p.size), float32(p.size), c, false)
	}
}
