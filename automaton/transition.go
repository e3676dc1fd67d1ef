package automaton

// Backend selects the per-state transition table representation.
type Backend int

const (
	// Dense uses a fixed 256-entry array per state: O(1) lookup, Σ·N
	// memory. Fastest for byte alphabets where the memory cost is
	// acceptable. This is the default.
	Dense Backend = iota
	// Sparse uses a small map per state: memory proportional to actual
	// out-degree, at the cost of hashed lookup. Prefer this for large
	// texts where Σ·N would dominate memory.
	Sparse
)

// TransitionTable is the per-state outgoing-edge contract. Both
// backends below implement it identically from the caller's
// perspective; only their memory/speed tradeoff differs.
type TransitionTable interface {
	// Add introduces an edge c -> i. If c is already present the edge
	// is overwritten (construction never intentionally re-adds, but
	// overwrite must be idempotent).
	Add(c byte, i int)
	// Get returns the destination of c, or (0, false) if absent.
	Get(c byte) (int, bool)
	// Update replaces an existing edge c -> i. If c is absent this is
	// a no-op: the redirection walk in the constructor relies on this
	// to terminate naturally once an ancestor no longer points at the
	// state being replaced.
	Update(c byte, i int)
	// Iterate yields every (c, i) pair in unspecified order. Used only
	// while cloning, to copy all outgoing edges of the cloned state.
	Iterate(fn func(c byte, i int))
}

func newTransitionTable(backend Backend) TransitionTable {
	if backend == Sparse {
		return newSparseTransitions()
	}
	return newDenseTransitions()
}
