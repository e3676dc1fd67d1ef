package automaton

// arena is an append-only indexed collection of State records. Indices
// are stable identities used everywhere in the package; states are
// never removed or reordered once created.
type arena struct {
	states  []*State
	backend Backend
}

// newArena returns an arena pre-reserving capacity for n input symbols
// when n is known up front (construction never produces more than
// 2n+2 states); pass 0 when the length is unknown and let the slice
// grow by doubling.
func newArena(n int, backend Backend) *arena {
	capHint := 16
	if n > 0 {
		capHint = 2*n + 2
	}
	return &arena{
		states:  make([]*State, 0, capHint),
		backend: backend,
	}
}

// newState appends a fresh state of the given length and returns its
// index, which always equals its position in the arena.
func (a *arena) newState(length int) int {
	idx := len(a.states)
	a.states = append(a.states, &State{
		index: idx,
		len:   length,
		link:  none,
		trans: newTransitionTable(a.backend),
	})
	return idx
}

// get returns the state at index i. Callers never retain this pointer
// across a call that might reallocate the arena's backing slice, but
// since arena never removes entries the pointer itself stays valid
// indefinitely — only the slice header moves, not the *State values.
func (a *arena) get(i int) *State {
	return a.states[i]
}

// size returns the number of states currently in the arena.
func (a *arena) size() int {
	return len(a.states)
}
