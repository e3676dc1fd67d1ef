package automaton

// BuildIndex populates the suffix-link tree (each state's list of
// suffix-link children) eagerly. Positions is otherwise lazy about
// this: the first call builds it. Call BuildIndex before publishing
// an Automaton to concurrent readers that may call Positions, since
// the lazy build on first use is a write and is not internally
// synchronized — a positions call racing the lazy build is a caller
// bug this library does not try to detect.
func (a *Automaton) BuildIndex() {
	if a.indexBuilt {
		return
	}
	st := a.arena
	for i := 1; i < st.size(); i++ {
		link := st.get(i).link
		parent := st.get(link)
		parent.children = append(parent.children, i)
	}
	a.indexBuilt = true
}
