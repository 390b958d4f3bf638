package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRule_RejectsAnchorArityMismatch(t *testing.T) {
	win, err := NewPattern2D([][]uint8{
		{0, 1, 0},
		{1, 1, 1},
		{0, 1, 0},
	})
	require.NoError(t, err)

	_, err = NewRule(win, []int{1}, 1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	_, err = NewRule(win, []int{1, 1, 1}, 1)
	assert.ErrorIs(t, err, ErrDimensionMismatch)

	r, err := NewRule(win, []int{1, 1}, 1)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 1}, r.Anchor())
	assert.Equal(t, uint8(1), r.Outcome())
}

func TestNewRule_RejectsAnchorOutsideWindow(t *testing.T) {
	win, err := NewPattern1D([]uint8{1, 0, 1})
	require.NoError(t, err)

	_, err = NewRule(win, []int{3}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	_, err = NewRule(win, []int{-1}, 0)
	assert.ErrorIs(t, err, ErrOutOfBounds)
}

func TestNewRule_RejectsBadOutcome(t *testing.T) {
	win, err := NewPattern1D([]uint8{1})
	require.NoError(t, err)

	_, err = NewRule(win, []int{0}, 2)
	assert.ErrorIs(t, err, ErrBadCellState)
}

func TestRule_AnchorAccessorReturnsCopy(t *testing.T) {
	win, err := NewPattern1D([]uint8{1, 0})
	require.NoError(t, err)
	r, err := NewRule(win, []int{1}, 0)
	require.NoError(t, err)

	r.Anchor()[0] = 99
	assert.Equal(t, []int{1}, r.Anchor())
}

func TestMustRule_PanicsOnInvalidRule(t *testing.T) {
	win, err := NewPattern1D([]uint8{1})
	require.NoError(t, err)
	assert.Panics(t, func() { MustRule(win, []int{0, 0}, 1) })
}
