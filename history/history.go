// Package history implements the ordered, deduplicating history store
// described in spec §3/§4.7: an in-memory oldest-to-newest list of past
// entries with a soft cap, dedup-against-last policy, and a search cursor
// for incremental reverse/forward search.
//
// It reconstructs the calling convention the teacher's readline.Instance
// used (History.Add/.Prev/.Next/.Pos/.Size/.Enabled) since that type itself
// was not part of the retrieved file set, then expands it to the fuller
// contract spec §4.7 names.
package history

import "strings"

// DefaultCap is the default soft cap on stored entries (spec §3).
const DefaultCap = 200

// Direction selects which way Search walks the store.
type Direction int

const (
	Reverse Direction = iota // toward older entries
	Forward                  // toward newer entries
)

// Store is an ordered, oldest-to-newest sequence of past input lines.
//
// Pos indexes the "current position" used by Prev/Next navigation: it
// ranges over [0, Len()], where Len() means "not currently browsing
// history" (the draft slot is in effect).
type Store struct {
	entries    []string
	Cap        int
	NoDup      bool // when true (the default), consecutive duplicates collapse
	Enabled    bool
	Pos        int
	draft      string
	haveDraft  bool
}

// New returns an empty, enabled Store with the default cap and dedup
// policy.
func New() *Store {
	return &Store{
		Cap:     DefaultCap,
		NoDup:   true,
		Enabled: true,
	}
}

// Len returns the number of stored entries.
func (s *Store) Len() int { return len(s.entries) }

// Get returns the entry at index (0 = oldest).
func (s *Store) Get(index int) (string, bool) {
	if index < 0 || index >= len(s.entries) {
		return "", false
	}
	return s.entries[index], true
}

// Add appends entry to the store, unless it is empty, history is disabled,
// or NoDup is set and entry equals the current last entry (spec §3: "a
// newly-added entry equal to the current last is a no-op"). The cap is
// enforced by dropping from the head (oldest first).
func (s *Store) Add(entry string) {
	if !s.Enabled || entry == "" {
		return
	}
	if s.NoDup && len(s.entries) > 0 && s.entries[len(s.entries)-1] == entry {
		s.resetCursor()
		return
	}
	s.entries = append(s.entries, entry)
	cap := s.Cap
	if cap <= 0 {
		cap = DefaultCap
	}
	if over := len(s.entries) - cap; over > 0 {
		s.entries = s.entries[over:]
	}
	s.resetCursor()
}

// RemoveLast drops the most recently added entry, if any.
func (s *Store) RemoveLast() {
	if len(s.entries) == 0 {
		return
	}
	s.entries = s.entries[:len(s.entries)-1]
	s.resetCursor()
}

// Clear empties the store.
func (s *Store) Clear() {
	s.entries = nil
	s.resetCursor()
}

func (s *Store) resetCursor() {
	s.Pos = len(s.entries)
	s.haveDraft = false
	s.draft = ""
}

// Prev moves the cursor one entry toward the past and returns it. On first
// call from the "not browsing" position it stashes draft as the in-progress
// line to restore once Next steps past the newest entry again.
func (s *Store) Prev(draft string) (string, bool) {
	if s.Pos <= 0 {
		return "", false
	}
	if s.Pos == len(s.entries) {
		s.draft = draft
		s.haveDraft = true
	}
	s.Pos--
	return s.entries[s.Pos], true
}

// Next moves the cursor one entry toward the present. Stepping past the
// newest entry restores the stashed draft, per spec §3.
func (s *Store) Next() (line string, restoredDraft bool, ok bool) {
	if s.Pos >= len(s.entries) {
		return "", false, false
	}
	s.Pos++
	if s.Pos == len(s.entries) {
		if s.haveDraft {
			d := s.draft
			s.haveDraft = false
			s.draft = ""
			return d, true, true
		}
		return "", true, true
	}
	return s.entries[s.Pos], false, true
}

// ResetBrowsing returns the cursor to the "not browsing" position, e.g.
// after Enter/Cancel finishes a ReadLine call.
func (s *Store) ResetBrowsing() {
	s.resetCursor()
}

// Search walks the store from index `from` in direction dir looking for the
// first entry containing pattern as a substring, using Emacs smart-case
// matching: case-insensitive when pattern is all lowercase, case-sensitive
// otherwise (spec §4.5/§8). It returns the found index, or -1.
func Search(entries []string, pattern string, from int, dir Direction) int {
	if pattern == "" {
		return -1
	}
	matches := func(s string) bool {
		_, _, ok := MatchRange(s, pattern)
		return ok
	}

	if dir == Reverse {
		for i := from; i >= 0; i-- {
			if i < len(entries) && matches(entries[i]) {
				return i
			}
		}
		return -1
	}
	for i := from; i < len(entries); i++ {
		if i >= 0 && matches(entries[i]) {
			return i
		}
	}
	return -1
}

// MatchRange reports the byte range of pattern's first occurrence in entry
// under the same smart-case rule Search uses, so a caller can highlight the
// matched substring (spec §4.5: "matched substring in the emphasis color,
// the rest in the diminish color").
func MatchRange(entry, pattern string) (start, end int, ok bool) {
	if pattern == "" {
		return 0, 0, false
	}
	if isAllLower(pattern) {
		idx := strings.Index(strings.ToLower(entry), strings.ToLower(pattern))
		if idx < 0 {
			return 0, 0, false
		}
		return idx, idx + len(pattern), true
	}
	idx := strings.Index(entry, pattern)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(pattern), true
}

// Search runs Search over the store's own entries starting from index
// `from` (typically Store.Pos-1 for a fresh reverse search).
func (s *Store) Search(pattern string, from int, dir Direction) int {
	return Search(s.entries, pattern, from, dir)
}

func isAllLower(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return false
		}
	}
	return true
}
