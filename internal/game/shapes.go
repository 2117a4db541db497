package game

// Shape is one entry of the piece catalog: a name plus the binary mask of
// occupied cells within the piece's bounding box. Catalog masks are
// immutable; pieces get their own copy on spawn.
type Shape struct {
	Name string
	Mask [][]bool
}

// Shapes is the catalog of the seven canonical pieces in their spawn
// orientation. Bounding boxes are tight, so masks are rectangular rather
// than padded to a square.
var Shapes = []Shape{
	{"I", mask("####")},
	{"T", mask("###", ".#.")},
	{"O", mask("##", "##")},
	{"S", mask(".##", "##.")},
	{"Z", mask("##.", ".##")},
	{"J", mask("#..", "###")},
	{"L", mask("..#", "###")},
}

// mask builds a boolean matrix from row strings where '#' marks an
// occupied cell.
func mask(rows ...string) [][]bool {
	m := make([][]bool, len(rows))
	for y, r := range rows {
		m[y] = make([]bool, len(r))
		for x, ch := range r {
			m[y][x] = ch == '#'
		}
	}
	return m
}

// RotateCW returns the mask rotated 90 degrees clockwise: transpose, then
// reverse each resulting row. Works for rectangular masks, so a 1x4 piece
// rotates to 4x1.
func RotateCW(m [][]bool) [][]bool {
	rows := len(m)
	cols := len(m[0])
	out := make([][]bool, cols)
	for x := range out {
		out[x] = make([]bool, rows)
	}
	for y := 0; y < rows; y++ {
		for x := 0; x < cols; x++ {
			out[x][rows-1-y] = m[y][x]
		}
	}
	return out
}

// copyMask deep-copies a mask so rotation never mutates the catalog.
func copyMask(m [][]bool) [][]bool {
	out := make([][]bool, len(m))
	for y := range m {
		out[y] = make([]bool, len(m[y]))
		copy(out[y], m[y])
	}
	return out
}

// maskEqual reports whether two masks have identical dimensions and cells.
func maskEqual(a, b [][]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for y := range a {
		if len(a[y]) != len(b[y]) {
			return false
		}
		for x := range a[y] {
			if a[y][x] != b[y][x] {
				return false
			}
		}
	}
	return true
}
