package game

import "image/color"

// emptyCell marks an unoccupied board cell. Every placed cell carries an
// opaque colour, so the zero value (alpha 0) doubles as the empty marker.
var emptyCell = color.RGBA{}

// Board is the playfield grid. Cells are stored row-major; each cell is
// either emptyCell or the opaque colour of the piece that was merged there.
// Dimensions never change after creation.
type Board struct {
	Cols  int
	Rows  int
	cells []color.RGBA // index = row*Cols + col
}

// NewBoard creates a Cols x Rows board with every cell empty.
func NewBoard(cols, rows int) *Board {
	return &Board{Cols: cols, Rows: rows, cells: make([]color.RGBA, cols*rows)}
}

// inBounds returns true if (col, row) is a real cell of the grid.
func (b *Board) inBounds(col, row int) bool {
	return col >= 0 && col < b.Cols && row >= 0 && row < b.Rows
}

// CellEmpty returns whether the cell at (col, row) is unoccupied.
// Off-board coordinates report false; the engine performs its own bounds
// handling before real lookups.
func (b *Board) CellEmpty(col, row int) bool {
	if !b.inBounds(col, row) {
		return false
	}
	return b.cells[row*b.Cols+col] == emptyCell
}

// Cell returns the colour stored at (col, row), or emptyCell when the cell
// is unoccupied or off-board.
func (b *Board) Cell(col, row int) color.RGBA {
	if !b.inBounds(col, row) {
		return emptyCell
	}
	return b.cells[row*b.Cols+col]
}

// SetCell marks the cell at (col, row) occupied with the given colour.
func (b *Board) SetCell(col, row int, c color.RGBA) {
	if !b.inBounds(col, row) {
		return
	}
	b.cells[row*b.Cols+col] = c
}

// RowFull returns true iff every cell in the row is occupied.
func (b *Board) RowFull(row int) bool {
	if row < 0 || row >= b.Rows {
		return false
	}
	for col := 0; col < b.Cols; col++ {
		if b.cells[row*b.Cols+col] == emptyCell {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all completely occupied rows, top to bottom.
func (b *Board) FullRows() []int {
	var rows []int
	for row := 0; row < b.Rows; row++ {
		if b.RowFull(row) {
			rows = append(rows, row)
		}
	}
	return rows
}

// ClearRow removes the row and inserts a fresh empty row at the top: every
// row above the cleared one shifts down by one position. Rows below are
// untouched.
func (b *Board) ClearRow(row int) {
	if row < 0 || row >= b.Rows {
		return
	}
	copy(b.cells[b.Cols:(row+1)*b.Cols], b.cells[:row*b.Cols])
	for col := 0; col < b.Cols; col++ {
		b.cells[col] = emptyCell
	}
}

// Merge copies the piece's occupied cells into the board. Mask cells that
// are still above the visible top are dropped; there is no grid there.
func (b *Board) Merge(p *Piece) {
	for dy, row := range p.Mask {
		for dx, filled := range row {
			if filled {
				b.SetCell(p.X+dx, p.Y+dy, p.Color)
			}
		}
	}
}

// Clear empties every cell in place.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = emptyCell
	}
}
