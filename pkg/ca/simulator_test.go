package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulator_StepFeedsEachGenerationIntoTheNext(t *testing.T) {
	p := mustPattern1D(t, []uint8{1, 0, 0, 0})
	u, err := UniverseFromPattern(p)
	require.NoError(t, err)

	sim := NewSimulator(u, shiftRules(t))
	require.NoError(t, sim.Step(3))
	assert.Equal(t, "0001", sim.Render())

	// One more step pushes the live cell off the fixed boundary.
	require.NoError(t, sim.Step(1))
	assert.Equal(t, "0000", sim.Render())
}

func TestSimulator_StepPropagatesEvolveFailure(t *testing.T) {
	u, err := NewUniverse(2, NewSize(3))
	require.NoError(t, err)

	oneD := MustRule(mustPattern1D(t, []uint8{1}), []int{0}, 0)
	sim := NewSimulator(u, NewRuleList(oneD))

	err = sim.Step(5)
	assert.ErrorIs(t, err, ErrDimensionMismatch)
}

func TestSimulator_RenderDelegatesToUniverse(t *testing.T) {
	p := mustPattern2D(t, [][]uint8{
		{0, 1},
		{1, 0},
	})
	u, err := UniverseFromPattern(p)
	require.NoError(t, err)

	sim := NewSimulator(u, NewRuleList())
	assert.Equal(t, u.Render(), sim.Render())
	assert.Same(t, u, sim.Universe())
}
