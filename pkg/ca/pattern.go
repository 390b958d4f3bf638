package ca

import "fmt"

// Pattern is an immutable rank-1 or rank-2 block of binary cells stored
// as a flat row-major slice plus a shape. It carries rule windows and
// explicit initial universe states.
type Pattern struct {
	shape []int
	cells []uint8
}

// NewPattern1D builds a rank-1 pattern from the given cells. The input
// is copied; it must be non-empty and contain only 0 and 1 values.
func NewPattern1D(cells []uint8) (Pattern, error) {
	if len(cells) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	buf := make([]uint8, len(cells))
	for i, c := range cells {
		if c > 1 {
			return Pattern{}, fmt.Errorf("ca: cell %d has value %d: %w", i, c, ErrBadCellState)
		}
		buf[i] = c
	}
	return Pattern{shape: []int{len(cells)}, cells: buf}, nil
}

// NewPattern2D builds a rank-2 pattern from the given rows. The input
// is copied; rows must be non-empty, rectangular, and binary.
func NewPattern2D(rows [][]uint8) (Pattern, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return Pattern{}, ErrEmptyPattern
	}
	w := len(rows[0])
	buf := make([]uint8, 0, len(rows)*w)
	for r, row := range rows {
		if len(row) != w {
			return Pattern{}, fmt.Errorf("ca: row %d has length %d, want %d: %w", r, len(row), w, ErrNonRectangular)
		}
		for c, cell := range row {
			if cell > 1 {
				return Pattern{}, fmt.Errorf("ca: cell (%d,%d) has value %d: %w", r, c, cell, ErrBadCellState)
			}
			buf = append(buf, cell)
		}
	}
	return Pattern{shape: []int{len(rows), w}, cells: buf}, nil
}

// Rank returns the number of axes (1 or 2).
func (p Pattern) Rank() int { return len(p.shape) }

// Shape returns a copy of the per-axis lengths.
func (p Pattern) Shape() []int {
	out := make([]int, len(p.shape))
	copy(out, p.shape)
	return out
}

// Dim returns the length along the given axis.
func (p Pattern) Dim(axis int) int { return p.shape[axis] }

// At returns the cell at the given coordinate. The coordinate arity
// must equal the pattern rank and lie within the shape.
func (p Pattern) At(coord ...int) uint8 {
	return p.cells[flatIndex(p.shape, coord)]
}

// Cells returns a copy of the flat row-major cell values.
func (p Pattern) Cells() []uint8 {
	out := make([]uint8, len(p.cells))
	copy(out, p.cells)
	return out
}

// at reads a cell without copying the coordinate slice.
func (p Pattern) at(coord []int) uint8 {
	return p.cells[flatIndex(p.shape, coord)]
}

// contains reports whether coord lies inside the pattern shape.
func (p Pattern) contains(coord []int) bool {
	if len(coord) != len(p.shape) {
		return false
	}
	for ax, c := range coord {
		if c < 0 || c >= p.shape[ax] {
			return false
		}
	}
	return true
}

// flatIndex converts an N-rank coordinate into a row-major slice index.
func flatIndex(shape, coord []int) int {
	idx := 0
	for ax, c := range coord {
		idx = idx*shape[ax] + c
	}
	return idx
}

// volume returns the total cell count of a shape.
func volume(shape []int) int {
	n := 1
	for _, d := range shape {
		n *= d
	}
	return n
}

// nextCoord advances coord through shape in row-major order, returning
// false once every position has been visited.
func nextCoord(coord, shape []int) bool {
	for ax := len(coord) - 1; ax >= 0; ax-- {
		coord[ax]++
		if coord[ax] < shape[ax] {
			return true
		}
		coord[ax] = 0
	}
	return false
}
