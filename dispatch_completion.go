package isocline

import (
	"github.com/Ratakor/isocline/completion"
	"github.com/Ratakor/isocline/term"
)

// enterCompletion invokes the registered completer with the buffer prefix
// up to the cursor and transitions into CompletionMenu mode, per spec
// §4.4. A CompleterError (a panicking callback) is swallowed: whatever
// candidates were appended before the panic are kept.
func (s *session) enterCompletion() {
	if s.e.completer == nil {
		s.beep()
		return
	}

	wordCfg := completion.DefaultWordConfig()
	wordCfg.WordClass = completion.WordClass(s.wordClass())

	lineBefore := s.buf.Slice(0, s.cursor)
	start, quote, hasQuote := wordCfg.ExtractWord(lineBefore, len(lineBefore))
	set := completion.NewSet(start)

	func() {
		defer func() { _ = recover() }()
		s.e.completer(lineBefore, set)
	}()

	switch set.Len() {
	case 0:
		s.beep()
	case 1:
		before := s.buf.String()
		s.applyCandidate(set.At(0), wordCfg, hasQuote)
		if s.e.Config.AutoTabEnable && s.buf.String() != before {
			s.enterCompletion()
		}
	default:
		s.mode = mode{kind: modeCompletionMenu, completion: &completionState{
			set:      set,
			hasQuote: hasQuote,
			quote:    quote,
			wordCfg:  wordCfg,
		}}
	}
}

// handleCompletionMenu dispatches within CompletionMenu mode, per spec
// §4.4's menu key table.
func (s *session) handleCompletionMenu(ev term.Event) dispatchResult {
	cs := s.mode.completion

	switch ev.Type {
	case term.EventChar:
		s.mode = editingMode()
		s.mutateInsertRune(ev.Rune)
		return dispatchResult{}
	case term.EventResize:
		s.e.renderer.Invalidate()
		return dispatchResult{}
	case term.EventEOF:
		return dispatchResult{action: actionEOF}
	}

	switch ev.Name {
	case term.FnRight, term.FnDown:
		cs.index = (cs.index + 1) % cs.set.Len()
	case term.FnTab:
		if ev.Mods&term.ModShift != 0 {
			cs.index = (cs.index - 1 + cs.set.Len()) % cs.set.Len()
		} else {
			cs.index = (cs.index + 1) % cs.set.Len()
		}
	case term.FnLeft, term.FnUp:
		cs.index = (cs.index - 1 + cs.set.Len()) % cs.set.Len()
	case term.FnEnter:
		s.applyCandidate(cs.set.At(cs.index), cs.wordCfg, cs.hasQuote)
	case term.FnEsc, term.FnCtrlC:
		s.mode = editingMode()
	case term.FnBackspace:
		s.mode = editingMode()
		s.doBackspace()
	default:
		s.mode = editingMode()
	}
	return dispatchResult{}
}

// applyCandidate implements spec §4.4's Apply: delete DeleteBefore bytes
// ending at the cursor, insert the (re-quoted) replacement, move the
// cursor to its end, and push one structural undo entry.
func (s *session) applyCandidate(c completion.Candidate, wordCfg completion.WordConfig, hasQuote bool) {
	deleteStart := s.cursor - c.DeleteBefore
	if deleteStart < 0 {
		deleteStart = 0
	}
	replacement := wordCfg.Requote(c.Replacement, hasQuote)

	s.undo.begin(runStructural, s.buf, s.cursor)
	if err := s.buf.Delete(deleteStart, s.cursor-deleteStart); err != nil {
		s.beep()
		return
	}
	if err := s.buf.Insert(deleteStart, replacement); err != nil {
		s.beep()
		return
	}
	s.cursor = deleteStart + len(replacement)
	s.undo.commit(runStructural, s.cursor)
	s.mode = editingMode()
}

func (s *session) completionOverlay() []string {
	cs := s.mode.completion
	if cs == nil {
		return nil
	}
	rows := make([]string, 0, cs.set.Len())
	for i := 0; i < cs.set.Len(); i++ {
		marker := "  "
		if i == cs.index {
			marker = "> "
		}
		rows = append(rows, marker+cs.set.At(i).Display)
	}
	return rows
}

// completionPreviewHint ghost-renders the part of the highlighted
// candidate's replacement not yet typed, per spec §4.4's completion
// preview.
func (s *session) completionPreviewHint() string {
	cs := s.mode.completion
	if cs == nil || cs.set.Len() == 0 {
		return ""
	}
	c := cs.set.At(cs.index)
	if c.DeleteBefore <= len(c.Replacement) {
		return c.Replacement[c.DeleteBefore:]
	}
	return ""
}
