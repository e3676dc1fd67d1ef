package automaton

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildEmptyText(t *testing.T) {
	a := Build(nil)
	require.Equal(t, 1, a.NumStates())
	root := a.State(0)
	assert.Equal(t, 0, root.Len())
	assert.Equal(t, none, root.Link())
	assert.True(t, root.Terminal())
}

func TestBuildStateBound(t *testing.T) {
	// The number of states never exceeds twice the text length.
	texts := []string{"mississippi", "banana", "abcbc", "aaaaaaaaaa", "abababab"}
	for _, text := range texts {
		a := Build([]byte(text))
		assert.LessOrEqualf(t, a.NumStates(), 2*len(text), "text=%q", text)
	}
}

func TestSuffixLinkInvariants(t *testing.T) {
	// Following link reaches root acyclically, and len strictly
	// decreases along a link.
	a := Build([]byte("mississippi"))
	for i := 1; i < a.NumStates(); i++ {
		steps := 0
		v := i
		for v != 0 {
			next := a.State(v).Link()
			require.NotEqual(t, none, next, "state %d must reach root", i)
			assert.Less(t, a.State(next).Len(), a.State(v).Len())
			v = next
			steps++
			require.LessOrEqual(t, steps, a.NumStates(), "suffix link cycle detected from state %d", i)
		}
	}
}

func TestTerminalStatesFormSuffixChain(t *testing.T) {
	a := Build([]byte("abab"))
	assert.LessOrEqual(t, a.NumStates(), 8)

	chain := map[int]bool{}
	v := a.last
	for v != none {
		chain[v] = true
		v = a.State(v).Link()
	}
	for i := 0; i < a.NumStates(); i++ {
		assert.Equal(t, chain[i], a.State(i).Terminal(), "state %d terminal mismatch", i)
	}
}

func TestBuildIsDeterministicAcrossBackends(t *testing.T) {
	text := []byte("mississippi")
	dense := Build(text, WithBackend(Dense))
	sparse := Build(text, WithBackend(Sparse))
	assert.Equal(t, dense.NumStates(), sparse.NumStates())
}
