// Package automaton implements an online suffix automaton (a minimal
// DFA recognizing every substring of a text) with membership, first-
// occurrence, and all-occurrences queries.
package automaton

// none is the sentinel used in place of a state index to mean "no
// link" / "no transition". Only the root state has link == none.
const none = -1

// State is one equivalence class of right-extensions of the text.
// States are identified solely by their index into an Automaton's
// arena; they never hold pointers to one another.
type State struct {
	index int // self-identity; equals insertion order
	len   int // length of the longest substring in this class
	link  int // suffix link: parent in the suffix-link tree, or none for root
	first int // end position (0-based, inclusive) of the first occurrence

	clone    bool // true iff introduced by the clone step
	terminal bool // true iff the class contains a suffix of the text

	trans TransitionTable
	children []int // suffixreferences: children in the suffix-link tree, lazy
}

// Index returns the state's position in the arena.
func (s *State) Index() int { return s.index }

// Len returns the length of the longest substring represented by s.
func (s *State) Len() int { return s.len }

// Link returns the suffix-link target, or -1 for the root.
func (s *State) Link() int { return s.link }

// Terminal reports whether s's class contains a suffix of the text.
func (s *State) Terminal() bool { return s.terminal }

// Clone reports whether s was introduced by the clone step during
// construction; clone states are not first occurrences of anything.
func (s *State) Clone() bool { return s.clone }
