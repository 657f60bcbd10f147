package isocline

import (
	"github.com/Ratakor/isocline/completion"
	"github.com/Ratakor/isocline/history"
)

// modeKind tags the active dispatch mode, per spec §9's "model as a sum
// type" design note: Editing, CompletionMenu and HistorySearch share the
// read-a-key/act/render scaffolding but have distinct data and key tables.
type modeKind int

const (
	modeEditing modeKind = iota
	modeCompletionMenu
	modeHistorySearch
)

// completionState is the CompletionMenu variant's payload: the candidate
// set returned by the completer, the currently highlighted index, and the
// word-extraction bookkeeping needed to Apply and re-quote the choice.
type completionState struct {
	set       *completion.Set
	index     int
	hasQuote  bool
	quote     rune
	wordCfg   completion.WordConfig
}

// searchState is the HistorySearch variant's payload: the incremental
// search pattern, the current match, its direction, and the buffer state
// to restore on Ctrl-G/Ctrl-C.
type searchState struct {
	dir        history.Direction
	pattern    string
	matchIdx   int // -1 = no match
	origText   string
	origCursor int
}

// mode is the tagged union itself: kind selects the variant, and at most
// one of completion/search is non-nil (neither, in Editing mode).
type mode struct {
	kind       modeKind
	completion *completionState
	search     *searchState
}

func editingMode() mode { return mode{kind: modeEditing} }
