package automaton

// Stats accumulates per-instance query counters, kept on the
// Automaton itself rather than as process-wide globals so that
// multiple automata never share counters.
type Stats struct {
	// NumLookups is the number of completed query calls (Contains,
	// First, or Positions) issued against the automaton.
	NumLookups int64
	// LookupSizeTotal is the sum of pattern lengths walked across all
	// query calls, an approximation of total transition-table lookups
	// performed.
	LookupSizeTotal int64
}

// Stats returns a snapshot of the automaton's accumulated query
// statistics.
func (a *Automaton) Stats() Stats {
	return a.stats
}

func (a *Automaton) record(patternLen int) {
	a.stats.NumLookups++
	a.stats.LookupSizeTotal += int64(patternLen)
}
