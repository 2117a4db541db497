package game

import "math/rand"

// Autoplayer drives a session with random inputs drawn from its own seeded
// source. It exists for headless batch runs and soak tests; it is not a
// solver and loses quickly, which is exactly what exercises the game-over
// path.
type Autoplayer struct {
	rng          *rand.Rand
	MovesPerTick int // input events issued before each gravity tick
}

// NewAutoplayer creates an autoplayer issuing movesPerTick random inputs
// per gravity tick.
func NewAutoplayer(rng *rand.Rand, movesPerTick int) *Autoplayer {
	if movesPerTick < 0 {
		movesPerTick = 0
	}
	return &Autoplayer{rng: rng, MovesPerTick: movesPerTick}
}

// Step issues the configured number of random inputs and then advances one
// gravity tick, mirroring the input-then-tick serialization of interactive
// play.
func (a *Autoplayer) Step(s *Session) {
	for i := 0; i < a.MovesPerTick; i++ {
		switch a.rng.Intn(4) {
		case 0:
			s.MoveLeft()
		case 1:
			s.MoveRight()
		case 2:
			s.Rotate()
		case 3:
			s.SoftDrop()
		}
	}
	s.Tick()
}

// Run advances the session by n steps.
func (a *Autoplayer) Run(s *Session, n int) {
	for i := 0; i < n; i++ {
		a.Step(s)
	}
}
