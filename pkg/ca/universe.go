package ca

import (
	"fmt"
	"strings"
)

// Universe owns the current generation of a bounded square grid of
// binary cells. Cells are stored flat in row-major order; in the 2-D
// case a coordinate is (row, column) with row 0 rendered first.
type Universe struct {
	rank   int
	extent int
	cells  []uint8
}

// NewUniverse allocates an all-dead universe of the given rank (1 or 2)
// with the given extent along every axis.
func NewUniverse(rank int, size Size) (*Universe, error) {
	if rank < 1 || rank > 2 {
		return nil, fmt.Errorf("ca: rank %d: %w", rank, ErrUnsupportedDimension)
	}
	if size.IsInfinite() {
		return nil, ErrInfiniteUniverse
	}
	if size.Extent() < 1 {
		return nil, fmt.Errorf("ca: extent %d: %w", size.Extent(), ErrNonPositiveExtent)
	}
	u := &Universe{rank: rank, extent: size.Extent()}
	u.cells = make([]uint8, volume(u.shape()))
	return u, nil
}

// UniverseFromPattern builds a universe whose initial state and rank
// are taken from the given pattern. A rank-2 pattern must be square.
// The pattern cells are copied; the universe never aliases them.
func UniverseFromPattern(p Pattern) (*Universe, error) {
	if p.Rank() == 0 {
		return nil, ErrEmptyPattern
	}
	if p.Rank() == 2 && p.Dim(0) != p.Dim(1) {
		return nil, fmt.Errorf("ca: initial state is %dx%d: %w", p.Dim(0), p.Dim(1), ErrNonSquareGrid)
	}
	return &Universe{rank: p.Rank(), extent: p.Dim(0), cells: p.Cells()}, nil
}

// Rank returns the universe dimensionality (1 or 2).
func (u *Universe) Rank() int { return u.rank }

// Extent returns the length of every axis.
func (u *Universe) Extent() int { return u.extent }

// Cells returns the current generation as a flat row-major slice.
// Callers must treat it as read-only; Evolve installs a fresh buffer
// rather than editing the returned one in place.
func (u *Universe) Cells() []uint8 { return u.cells }

// Coords1D converts bare 1-D indices into the coordinate form Transform
// expects.
func Coords1D(indices ...int) [][]int {
	out := make([][]int, len(indices))
	for i, idx := range indices {
		out[i] = []int{idx}
	}
	return out
}

// Transform sets every listed cell to the given state, in place. Every
// location is validated before any cell is written, so a failed call
// leaves the universe untouched.
func (u *Universe) Transform(locations [][]int, state uint8) error {
	if state > 1 {
		return fmt.Errorf("ca: state %d: %w", state, ErrBadCellState)
	}
	for _, loc := range locations {
		if len(loc) != u.rank {
			return fmt.Errorf("ca: location %v arity %d, universe rank %d: %w", loc, len(loc), u.rank, ErrDimensionMismatch)
		}
		for _, c := range loc {
			if c < 0 || c >= u.extent {
				return fmt.Errorf("ca: location %v exceeds extent %d: %w", loc, u.extent, ErrOutOfBounds)
			}
		}
	}
	shape := u.shape()
	for _, loc := range locations {
		u.cells[flatIndex(shape, loc)] = state
	}
	return nil
}

// Evolve computes one generation. Every rule window is matched against
// every cell position over a read-only snapshot of the current state,
// padded on each axis with enough dead cells that windows straddling
// the boundary sample dead neighbors instead of wrapping. The first
// matching rule in list order decides a cell; cells no rule matches
// retain their previous state. The fully computed generation replaces
// the current one at the end, so no cell ever observes another cell's
// new value mid-step. An empty rule list is a no-op.
func (u *Universe) Evolve(rules *RuleList) error {
	if rules == nil || rules.Len() == 0 {
		return nil
	}
	for r := range rules.All() {
		if r.window.Rank() != u.rank {
			return fmt.Errorf("ca: rule window rank %d, universe rank %d: %w", r.window.Rank(), u.rank, ErrDimensionMismatch)
		}
	}

	// Padding per axis is the widest window along that axis, so any
	// anchor alignment stays inside the snapshot.
	pad := make([]int, u.rank)
	for r := range rules.All() {
		for ax := 0; ax < u.rank; ax++ {
			if d := r.window.Dim(ax); d > pad[ax] {
				pad[ax] = d
			}
		}
	}

	gridShape := u.shape()
	snapShape := make([]int, u.rank)
	for ax := range snapShape {
		snapShape[ax] = u.extent + 2*pad[ax]
	}
	snap := make([]uint8, volume(snapShape))

	pos := make([]int, u.rank)
	padded := make([]int, u.rank)
	for {
		for ax := range pos {
			padded[ax] = pos[ax] + pad[ax]
		}
		snap[flatIndex(snapShape, padded)] = u.cells[flatIndex(gridShape, pos)]
		if !nextCoord(pos, gridShape) {
			break
		}
	}

	// Unmatched cells retain their previous state.
	next := make([]uint8, len(u.cells))
	copy(next, u.cells)

	origin := make([]int, u.rank)
	wc := make([]int, u.rank)
	abs := make([]int, u.rank)
	for ax := range pos {
		pos[ax] = 0
	}
	for {
		for ax := range pos {
			padded[ax] = pos[ax] + pad[ax]
		}
		for r := range rules.All() {
			for ax := range origin {
				origin[ax] = padded[ax] - r.anchor[ax]
			}
			if windowMatches(snap, snapShape, origin, r.window, wc, abs) {
				next[flatIndex(gridShape, pos)] = r.outcome
				break
			}
		}
		if !nextCoord(pos, gridShape) {
			break
		}
	}

	u.cells = next
	return nil
}

// windowMatches tests the window pattern against the snapshot starting
// at origin. wc and abs are caller-provided scratch coordinates.
func windowMatches(snap []uint8, snapShape, origin []int, w Pattern, wc, abs []int) bool {
	for ax := range wc {
		wc[ax] = 0
	}
	for {
		for ax := range wc {
			abs[ax] = origin[ax] + wc[ax]
		}
		if snap[flatIndex(snapShape, abs)] != w.at(wc) {
			return false
		}
		if !nextCoord(wc, w.shape) {
			return true
		}
	}
}

// Render returns the current generation as text: one digit per cell,
// 2-D rows joined by newlines. Pure function of the current state.
func (u *Universe) Render() string {
	var b strings.Builder
	if u.rank == 1 {
		b.Grow(u.extent)
		for _, c := range u.cells {
			b.WriteByte('0' + c)
		}
		return b.String()
	}
	b.Grow(u.extent*(u.extent+1) - 1)
	for row := 0; row < u.extent; row++ {
		if row > 0 {
			b.WriteByte('\n')
		}
		base := row * u.extent
		for col := 0; col < u.extent; col++ {
			b.WriteByte('0' + u.cells[base+col])
		}
	}
	return b.String()
}

func (u *Universe) shape() []int {
	s := make([]int, u.rank)
	for ax := range s {
		s[ax] = u.extent
	}
	return s
}
