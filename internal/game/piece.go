package game

import "image/color"

// Piece is the falling polyomino: a mask, a display colour and the
// board-relative position of the mask's top-left corner. A piece lives from
// spawn until it is merged into the board.
type Piece struct {
	Name  string
	Mask  [][]bool
	Color color.RGBA
	X     int
	Y     int
}

// Width returns the mask's bounding-box width in cells.
func (p *Piece) Width() int {
	if len(p.Mask) == 0 {
		return 0
	}
	return len(p.Mask[0])
}

// Height returns the mask's bounding-box height in cells.
func (p *Piece) Height() int {
	return len(p.Mask)
}
