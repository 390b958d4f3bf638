package core

// Board stores a 2D display buffer of byte-sized cell values in
// row-major order. Scenarios use it to project universe state into the
// W*H shape the render layers expect.
type Board struct {
	W, H int
	data []uint8
}

// NewBoard allocates a board with the given dimensions.
func NewBoard(w, h int) *Board {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Board{W: w, H: h, data: make([]uint8, w*h)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (b *Board) Cells() []uint8 { return b.data }

// Index returns the linear slice index for coordinates (x, y).
func (b *Board) Index(x, y int) int { return y*b.W + x }

// SetRow copies cells into row y. Extra input cells are ignored.
func (b *Board) SetRow(y int, cells []uint8) {
	row := b.data[y*b.W : (y+1)*b.W]
	copy(row, cells)
}

// ScrollDown shifts every row one step toward the bottom, discarding
// the last row. Row 0 is left as-is for the caller to overwrite.
func (b *Board) ScrollDown() {
	copy(b.data[b.W:], b.data[:b.W*(b.H-1)])
}

// Clear fills the board with zeros.
func (b *Board) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
}
