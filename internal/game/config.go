package game

import "time"

// Config contains the compile-time tunables of a game session.
// Board dimensions are fixed for the lifetime of a session.
type Config struct {
	Cols         int           // playfield width in cells
	Rows         int           // playfield height in cells
	CellSize     int           // cell edge in pixels (presentation only)
	TickInterval time.Duration // gravity tick period
	PaletteSize  int           // number of generated piece colours
}

// DefaultConfig returns the standard 10x20 playfield with a one-second
// gravity tick.
func DefaultConfig() Config {
	return Config{
		Cols:         10,
		Rows:         20,
		CellSize:     30,
		TickInterval: time.Second,
		PaletteSize:  12,
	}
}
