package automaton

// Automaton is a suffix automaton built from a single text. The zero
// value is not usable; construct one with Build.
type Automaton struct {
	arena   *arena
	last    int // state index corresponding to the whole text processed so far
	backend Backend

	indexBuilt bool // sticky flag: suffixreferences has been populated

	stats Stats
}

// Option configures construction. Options are applied in order before
// the arena is created, so the final backend/capacity choice always
// wins regardless of option order.
type Option func(*buildConfig)

type buildConfig struct {
	backend      Backend
	capacityHint int
}

// WithBackend selects the transition-table representation. Dense is
// the default.
func WithBackend(b Backend) Option {
	return func(c *buildConfig) { c.backend = b }
}

// WithCapacityHint preallocates the arena for a text of length n,
// avoiding growth reallocation during construction. Purely an
// optimization; omitting it is always correct.
func WithCapacityHint(n int) Option {
	return func(c *buildConfig) { c.capacityHint = n }
}

// Build constructs a suffix automaton from text by the online
// Blumer/Crochemore extension: one new accepting state per symbol,
// walking suffix links, cloning when a class must be split to stay
// minimal, and redirecting transitions. Terminal states are marked
// after the final symbol.
func Build(text []byte, opts ...Option) *Automaton {
	cfg := buildConfig{backend: Dense, capacityHint: len(text)}
	for _, opt := range opts {
		opt(&cfg)
	}

	a := &Automaton{backend: cfg.backend}
	a.arena = newArena(cfg.capacityHint, a.backend)
	a.arena.newState(0) // root: len=0, link=none
	a.last = 0

	for _, c := range text {
		a.extend(c)
	}
	a.markTerminal()
	return a
}

// extend performs one online-extension step for symbol c: create a
// new accepting state, walk suffix links adding transitions until one
// is found, then either attach to the existing solid child or clone
// it to preserve minimality.
func (a *Automaton) extend(c byte) {
	st := a.arena
	lastLen := st.get(a.last).len

	cur := st.newState(lastLen + 1)
	st.get(cur).first = lastLen

	p := a.last
	for p != none {
		if _, ok := st.get(p).trans.Get(c); ok {
			break
		}
		st.get(p).trans.Add(c, cur)
		p = st.get(p).link
	}

	if p == none {
		st.get(cur).link = 0
		a.last = cur
		return
	}

	q, _ := st.get(p).trans.Get(c)
	if st.get(q).len == st.get(p).len+1 {
		st.get(cur).link = q
		a.last = cur
		return
	}

	clone := st.newState(st.get(p).len + 1)
	cloneState := st.get(clone)
	qState := st.get(q)
	qState.trans.Iterate(func(sym byte, dst int) {
		cloneState.trans.Add(sym, dst)
	})
	cloneState.link = qState.link
	cloneState.first = qState.first
	cloneState.clone = true

	qState.link = clone
	st.get(cur).link = clone

	for p != none {
		dst, ok := st.get(p).trans.Get(c)
		if !ok || dst != q {
			break
		}
		st.get(p).trans.Update(c, clone)
		p = st.get(p).link
	}

	a.last = cur
}

// markTerminal walks from last up the suffix links to the root,
// marking every visited state as terminal. Done once at the end
// rather than incrementally, since intermediate `last` values change
// throughout construction.
func (a *Automaton) markTerminal() {
	st := a.arena
	v := a.last
	for v != none {
		st.get(v).terminal = true
		v = st.get(v).link
	}
}

// NumStates returns the number of states in the arena, including the
// root and any clones.
func (a *Automaton) NumStates() int {
	return a.arena.size()
}

// State returns the state at index i for inspection. Panics if i is
// out of range, matching slice-indexing semantics.
func (a *Automaton) State(i int) *State {
	return a.arena.get(i)
}
