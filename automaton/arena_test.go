package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestArenaNewStateIndicesAreSequential(t *testing.T) {
	a := newArena(0, Dense)
	for i := 0; i < 5; i++ {
		idx := a.newState(i)
		assert.Equal(t, i, idx)
		assert.Equal(t, i, a.get(idx).index)
	}
	assert.Equal(t, 5, a.size())
}

func TestArenaCapacityHintDoesNotChangeBehavior(t *testing.T) {
	a := newArena(100, Sparse)
	idx := a.newState(3)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 3, a.get(0).len)
}
