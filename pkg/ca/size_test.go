package ca

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSize(t *testing.T) {
	s := NewSize(42)
	assert.False(t, s.IsInfinite())
	assert.Equal(t, 42, s.Extent())

	inf := InfiniteSize()
	assert.True(t, inf.IsInfinite())
}
