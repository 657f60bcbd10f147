// Package completion implements the completion-set builder a registered
// completer callback populates, per spec §3/§4.4: an ordered list of
// (display, replacement) candidates sharing one anchor and delete_before
// count within the edit buffer.
//
// Nothing in the teacher package implements completion at all (ollama's
// readline has no Tab handling); this is grounded instead on the
// Config/AutoCompleter seam named in other_examples/wader-readline__config.go
// (a chzyer/readline-family Config, which is the idiom this codebase
// otherwise follows for host-supplied callbacks).
package completion

// Candidate is one completion offer: Display is what the menu shows,
// Replacement is what gets inserted, and DeleteBefore is how many bytes
// before the cursor should be overwritten.
type Candidate struct {
	Display      string
	Replacement  string
	DeleteBefore int
}

// Set is the completion set a completer callback populates. Every
// candidate in a Set shares the same Anchor: the buffer offset the
// replacement is computed relative to (spec §3's invariant).
type Set struct {
	Anchor     int
	candidates []Candidate
}

// NewSet returns an empty Set anchored at the given buffer offset.
func NewSet(anchor int) *Set {
	return &Set{Anchor: anchor}
}

// Add appends a completion candidate.
func (s *Set) Add(display, replacement string, deleteBefore int) {
	s.candidates = append(s.candidates, Candidate{
		Display:      display,
		Replacement:  replacement,
		DeleteBefore: deleteBefore,
	})
}

// Len returns the number of candidates.
func (s *Set) Len() int { return len(s.candidates) }

// At returns the candidate at index i.
func (s *Set) At(i int) Candidate { return s.candidates[i] }

// All returns every candidate, in the order added.
func (s *Set) All() []Candidate { return s.candidates }

// Completer is the host capability the editor calls on Tab, per spec §4.4:
// given the buffer bytes up to the cursor, populate set with candidates.
type Completer func(lineBeforeCursor string, set *Set)
