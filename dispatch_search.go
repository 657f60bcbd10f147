package isocline

import (
	"strings"
	"unicode/utf8"

	"github.com/Ratakor/isocline/history"
	"github.com/Ratakor/isocline/term"
)

// enterHistorySearch transitions into HistorySearch mode, per spec §4.5,
// saving the current buffer so Ctrl-G/Ctrl-C can restore it.
func (s *session) enterHistorySearch(dir history.Direction) {
	s.mode = mode{kind: modeHistorySearch, search: &searchState{
		dir:        dir,
		origText:   s.buf.String(),
		origCursor: s.cursor,
		matchIdx:   -1,
	}}
}

// runSearch finds the match to display for the current pattern, per spec
// §4.5/§8's smart-case substring rule (delegated to history.Store.Search).
// On a pattern change (extendMatch true) the currently displayed match is
// re-tested first and kept if it still contains the extended pattern —
// only stepping to an older entry when it no longer matches — so typing
// more characters narrows within the same entry before walking further
// back in time. A repeat Ctrl-R/Ctrl-S (extendMatch false) always steps to
// the next older/newer entry regardless of whether the current one still
// matches. A failed search leaves the previous match displayed and beeps,
// rather than clearing the buffer.
func (s *session) runSearch(extendMatch bool) {
	ss := s.mode.search

	if extendMatch && ss.matchIdx >= 0 {
		if line, ok := s.e.History.Get(ss.matchIdx); ok {
			if _, _, matched := history.MatchRange(line, ss.pattern); matched {
				s.buf.LoadString(line)
				s.cursor = s.buf.Len()
				return
			}
		}
	}

	var from int
	switch {
	case ss.matchIdx >= 0 && ss.dir == history.Reverse:
		from = ss.matchIdx - 1
	case ss.matchIdx >= 0:
		from = ss.matchIdx + 1
	case ss.dir == history.Reverse:
		from = s.e.History.Len() - 1
	default:
		from = 0
	}

	idx := s.e.History.Search(ss.pattern, from, ss.dir)
	if idx < 0 {
		s.beep()
		return
	}
	ss.matchIdx = idx
	line, _ := s.e.History.Get(idx)
	s.buf.LoadString(line)
	s.cursor = s.buf.Len()
}

// handleHistorySearch dispatches within HistorySearch mode, per spec
// §4.5's exit semantics.
func (s *session) handleHistorySearch(ev term.Event) dispatchResult {
	ss := s.mode.search

	switch ev.Type {
	case term.EventChar:
		ss.pattern += string(ev.Rune)
		s.runSearch(true)
		return dispatchResult{}
	case term.EventResize:
		s.e.renderer.Invalidate()
		return dispatchResult{}
	case term.EventEOF:
		return dispatchResult{action: actionEOF}
	}

	switch ev.Name {
	case term.FnBackspace:
		if len(ss.pattern) > 0 {
			_, size := utf8.DecodeLastRuneInString(ss.pattern)
			ss.pattern = ss.pattern[:len(ss.pattern)-size]
			ss.matchIdx = -1
			s.runSearch(false)
		}
	case term.FnCtrlR:
		ss.dir = history.Reverse
		s.runSearch(false)
	case term.FnCtrlS:
		ss.dir = history.Forward
		s.runSearch(false)
	case term.FnEnter:
		s.mode = editingMode()
		return dispatchResult{action: actionFinish}
	case term.FnEsc:
		s.mode = editingMode()
	case term.FnCtrlG, term.FnCtrlC:
		s.buf.LoadString(ss.origText)
		s.cursor = ss.origCursor
		s.mode = editingMode()
	case term.FnLeft, term.FnRight, term.FnUp, term.FnDown, term.FnHome, term.FnEnd:
		s.mode = editingMode()
		return dispatchResult{action: actionRedispatch, redispatch: ev}
	}
	return dispatchResult{}
}

// searchModeline renders the "(reverse-i-search)'pattern'" status line
// shown as an overlay below the (already-updated) buffer row, per spec
// §4.5. The pattern itself is drawn in the emphasis color, the surrounding
// label/quotes/status in the diminish color.
func (s *session) searchModeline(colorEnabled bool) string {
	ss := s.mode.search
	if ss == nil {
		return ""
	}
	label := "reverse-i-search"
	if ss.dir == history.Forward {
		label = "i-search"
	}
	status := ""
	if ss.matchIdx < 0 {
		status = ": no match"
	}
	if !colorEnabled {
		return "(" + label + ")'" + ss.pattern + "'" + status
	}
	dim := sgrFor(PaintRange{Color: s.e.Config.DiminishColor})
	emph := sgrFor(PaintRange{Color: s.e.Config.EmphasisColor})
	var b strings.Builder
	b.WriteString(dim)
	b.WriteString("(" + label + ")'")
	b.WriteString(term.AttrReset)
	b.WriteString(emph)
	b.WriteString(ss.pattern)
	b.WriteString(term.AttrReset)
	b.WriteString(dim)
	b.WriteString("'" + status)
	b.WriteString(term.AttrReset)
	return b.String()
}

// searchMatchHighlight colors the displayed buffer (the currently matched
// history entry) per spec §4.5: the matched substring in the emphasis
// color, the rest of the entry in the diminish color.
func (s *session) searchMatchHighlight(text string, colorEnabled bool) string {
	if !colorEnabled {
		return text
	}
	dim := sgrFor(PaintRange{Color: s.e.Config.DiminishColor})
	emph := sgrFor(PaintRange{Color: s.e.Config.EmphasisColor})

	ss := s.mode.search
	var start, end int
	matched := false
	if ss != nil && ss.matchIdx >= 0 {
		start, end, matched = history.MatchRange(text, ss.pattern)
	}
	if !matched {
		return dim + text + term.AttrReset
	}

	var b strings.Builder
	b.WriteString(dim)
	b.WriteString(text[:start])
	b.WriteString(term.AttrReset)
	b.WriteString(emph)
	b.WriteString(text[start:end])
	b.WriteString(term.AttrReset)
	b.WriteString(dim)
	b.WriteString(text[end:])
	b.WriteString(term.AttrReset)
	return b.String()
}
