package elementary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWolframRules_EmitsOnlyStateChangingWindows(t *testing.T) {
	rules := WolframRules(110)
	require.Equal(t, 3, rules.Len())

	// n iterates 7..0, so the expected order is 111->0, 101->1, 001->1.
	assert.Equal(t, []uint8{1, 1, 1}, rules.At(0).Window().Cells())
	assert.Equal(t, uint8(0), rules.At(0).Outcome())
	assert.Equal(t, []uint8{1, 0, 1}, rules.At(1).Window().Cells())
	assert.Equal(t, uint8(1), rules.At(1).Outcome())
	assert.Equal(t, []uint8{0, 0, 1}, rules.At(2).Window().Cells())
	assert.Equal(t, uint8(1), rules.At(2).Outcome())

	assert.Equal(t, 4, WolframRules(30).Len())
	assert.Equal(t, 0, WolframRules(204).Len(), "the identity rule needs no windows at all")
}

// Generations of rule 110 from the canonical seed row, derived by hand
// from the three window rules with dead padding on both sides.
var rule110Generations = []string{
	"00000000001011101100101011010010100000000000000000",
	"00000000011110111101111111110111100000000000000000",
	"00000000110011100111000000011100100000000000000000",
	"00000001110110101101000000110101100000000000000000",
}

func newRule110Sim(t *testing.T) *Sim {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Rule = 110
	cfg.Seeds = Rule110Seeds()
	s, err := New("rule110", cfg)
	require.NoError(t, err)
	return s
}

func TestRule110_CanonicalGenerations(t *testing.T) {
	s := newRule110Sim(t)
	require.Equal(t, rule110Generations[0], s.Render())

	for i, want := range rule110Generations[1:] {
		require.NoError(t, s.Step())
		assert.Equal(t, want, s.Render(), "generation %d", i+1)
	}
}

func TestStep_ScrollsHistoryDownwards(t *testing.T) {
	s := newRule110Sim(t)
	require.NoError(t, s.Step())

	w := s.Size().W
	cells := s.Cells()
	assert.Equal(t, rule110Generations[1], rowString(cells[:w]))
	assert.Equal(t, rule110Generations[0], rowString(cells[w:2*w]))
}

func TestReset_RestoresCanonicalSeeds(t *testing.T) {
	s := newRule110Sim(t)
	require.NoError(t, s.Step())
	require.NoError(t, s.Step())

	s.Reset(0)
	assert.Equal(t, rule110Generations[0], s.Render())

	s.Reset(7)
	random := s.Render()
	s.Reset(7)
	assert.Equal(t, random, s.Render(), "same seed must reproduce the same row")
}

func TestNew_RejectsSeedOutsideWidth(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width = 10
	cfg.Seeds = []int{3, 10}
	_, err := New("elementary", cfg)
	assert.Error(t, err)
}

func rowString(cells []uint8) string {
	out := make([]byte, len(cells))
	for i, c := range cells {
		out[i] = '0' + c
	}
	return string(out)
}
