package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleList_PreservesInsertionOrder(t *testing.T) {
	win, err := NewPattern1D([]uint8{1})
	require.NoError(t, err)
	first := MustRule(win, []int{0}, 1)
	second := MustRule(win, []int{0}, 0)

	list := NewRuleList(first)
	list.Add(second)

	require.Equal(t, 2, list.Len())
	assert.Equal(t, uint8(1), list.At(0).Outcome())
	assert.Equal(t, uint8(0), list.At(1).Outcome())
}

func TestRuleList_AllIsRestartable(t *testing.T) {
	win, err := NewPattern1D([]uint8{0})
	require.NoError(t, err)
	list := NewRuleList(
		MustRule(win, []int{0}, 0),
		MustRule(win, []int{0}, 1),
		MustRule(win, []int{0}, 0),
	)

	collect := func() []uint8 {
		var out []uint8
		for r := range list.All() {
			out = append(out, r.Outcome())
		}
		return out
	}
	assert.Equal(t, []uint8{0, 1, 0}, collect())
	assert.Equal(t, []uint8{0, 1, 0}, collect(), "second iteration must see the same sequence")
}

func TestRuleList_AllStopsEarly(t *testing.T) {
	win, err := NewPattern1D([]uint8{0})
	require.NoError(t, err)
	list := NewRuleList(
		MustRule(win, []int{0}, 0),
		MustRule(win, []int{0}, 1),
	)

	seen := 0
	for range list.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
	assert.Equal(t, 2, list.Len(), "early termination must not mutate the list")
}
