package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPattern1D(t *testing.T) {
	p, err := NewPattern1D([]uint8{0, 1, 1})
	require.NoError(t, err)
	assert.Equal(t, 1, p.Rank())
	assert.Equal(t, []int{3}, p.Shape())
	assert.Equal(t, uint8(1), p.At(1))
	assert.Equal(t, uint8(0), p.At(0))

	_, err = NewPattern1D(nil)
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = NewPattern1D([]uint8{0, 3})
	assert.ErrorIs(t, err, ErrBadCellState)
}

func TestNewPattern1D_CopiesInput(t *testing.T) {
	cells := []uint8{1, 0}
	p, err := NewPattern1D(cells)
	require.NoError(t, err)
	cells[0] = 0
	assert.Equal(t, uint8(1), p.At(0))
}

func TestNewPattern2D(t *testing.T) {
	p, err := NewPattern2D([][]uint8{
		{0, 1},
		{1, 0},
		{1, 1},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, p.Rank())
	assert.Equal(t, []int{3, 2}, p.Shape())
	assert.Equal(t, uint8(1), p.At(1, 0))
	assert.Equal(t, uint8(0), p.At(1, 1))

	_, err = NewPattern2D(nil)
	assert.ErrorIs(t, err, ErrEmptyPattern)

	_, err = NewPattern2D([][]uint8{{0, 1}, {1}})
	assert.ErrorIs(t, err, ErrNonRectangular)

	_, err = NewPattern2D([][]uint8{{0, 1}, {1, 9}})
	assert.ErrorIs(t, err, ErrBadCellState)
}

func TestPattern_CellsReturnsCopy(t *testing.T) {
	p, err := NewPattern1D([]uint8{1, 0, 1})
	require.NoError(t, err)
	cells := p.Cells()
	cells[0] = 0
	assert.Equal(t, uint8(1), p.At(0))
}
