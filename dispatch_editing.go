package isocline

import (
	"github.com/Ratakor/isocline/history"
	"github.com/Ratakor/isocline/term"
)

// handleEditing dispatches one key event against Editing mode's key table,
// per spec §4.3.
func (s *session) handleEditing(ev term.Event) dispatchResult {
	if s.help {
		s.help = false
		return dispatchResult{}
	}

	switch ev.Type {
	case term.EventChar:
		if ev.Mods&term.ModAlt != 0 {
			return s.handleAltChar(ev)
		}
		s.mutateInsertRune(ev.Rune)
		return dispatchResult{}
	case term.EventPaste:
		s.undo.begin(runStructural, s.buf, s.cursor)
		if err := s.buf.Insert(s.cursor, string(ev.Paste)); err == nil {
			s.cursor += len(ev.Paste)
			s.undo.commit(runStructural, s.cursor)
		} else {
			s.beep()
		}
		return dispatchResult{}
	case term.EventResize:
		s.e.renderer.Invalidate()
		return dispatchResult{}
	case term.EventEOF:
		return dispatchResult{action: actionEOF}
	case term.EventTimeout:
		return dispatchResult{}
	}

	switch ev.Name {
	case term.FnEnter, term.FnCtrlJ:
		return s.handleEnter()
	case term.FnBackspace, term.FnCtrlH:
		s.doBackspace()
	case term.FnDelete:
		s.doDelete()
	case term.FnLeft:
		s.moveLeftRight(-1, ev.Mods)
	case term.FnRight:
		s.moveLeftRight(1, ev.Mods)
	case term.FnCtrlB:
		s.moveLeftRight(-1, 0)
	case term.FnCtrlF:
		s.moveLeftRight(1, 0)
	case term.FnHome:
		if ev.Mods&term.ModCtrl != 0 {
			s.cursor = 0
		} else {
			s.cursor = s.buf.StartOfLine(s.cursor)
		}
	case term.FnEnd:
		if ev.Mods&term.ModCtrl != 0 {
			s.cursor = s.buf.Len()
		} else {
			s.cursor = s.buf.EndOfLine(s.cursor)
		}
	case term.FnCtrlA:
		s.cursor = s.buf.StartOfLine(s.cursor)
	case term.FnCtrlE:
		s.cursor = s.buf.EndOfLine(s.cursor)
	case term.FnUp:
		s.moveUpDown(-1)
	case term.FnDown:
		s.moveUpDown(1)
	case term.FnCtrlU:
		start := s.buf.StartOfLine(s.cursor)
		s.kill = s.buf.Slice(start, s.cursor)
		s.mutateDeleteRange(runDelete, start, s.cursor)
	case term.FnCtrlK:
		end := s.buf.EndOfLine(s.cursor)
		s.kill = s.buf.Slice(s.cursor, end)
		s.mutateDeleteForward(s.cursor, end)
	case term.FnCtrlW:
		start := s.buf.PrevWordOffset(s.cursor, s.wordClass())
		s.kill = s.buf.Slice(start, s.cursor)
		s.mutateDeleteRange(runDelete, start, s.cursor)
	case term.FnCtrlY:
		s.mutateInsert(s.kill)
	case term.FnCtrlT:
		s.transpose()
	case term.FnCtrlZ, term.FnCtrlUnderscore:
		if newCursor, ok := s.undo.undo(s.buf, s.cursor); ok {
			s.cursor = newCursor
		} else {
			s.beep()
		}
	case term.FnTab:
		s.enterCompletion()
	case term.FnCtrlR:
		s.enterHistorySearch(history.Reverse)
	case term.FnCtrlS:
		s.enterHistorySearch(history.Forward)
	case term.FnCtrlL:
		s.e.renderer.FullClear()
	case term.FnCtrlC:
		return dispatchResult{action: actionCancel}
	case term.FnCtrlD:
		if s.buf.IsEmpty() {
			return dispatchResult{action: actionEOF}
		}
		s.doDelete()
	case term.FnF1:
		if s.e.Config.InlineHelpEnable {
			s.help = true
		}
	}
	return dispatchResult{}
}

// handleAltChar covers the Meta-prefixed bindings the table names: Alt-D
// (delete next word), Alt-Enter (insert newline unconditionally), Alt-Y
// (redo, the dedicated redo binding spec's key table calls for alongside
// Ctrl-Z/Ctrl-_ undo), and Alt-Z (SuspendKey, since Ctrl-Z is already
// taken by undo). Other Alt-combinations have no binding here.
func (s *session) handleAltChar(ev term.Event) dispatchResult {
	switch ev.Rune {
	case 'd', 'D':
		s.deleteNextWord()
	case '\r', '\n':
		s.mutateInsert("\n")
	case 'y', 'Y':
		if newCursor, ok := s.undo.redoAction(s.buf, s.cursor); ok {
			s.cursor = newCursor
		} else {
			s.beep()
		}
	case 'z', 'Z':
		s.suspend()
	default:
		s.beep()
	}
	return dispatchResult{}
}

// handleEnter implements spec §4.3's finish-detection: Enter inserts a
// newline when multi-line editing is on and the buffer looks unfinished
// (trailing continuation char, or unbalanced brackets/quotes); otherwise it
// finishes the read_line call.
func (s *session) handleEnter() dispatchResult {
	if s.e.Config.MultilineEnable {
		text := s.buf.String()
		complete := true
		if s.e.isComplete != nil {
			complete = s.e.isComplete(text)
		} else {
			complete = defaultIsComplete(text, s.e.Config.ContinuationChar)
		}
		if !complete {
			s.mutateInsert("\n")
			return dispatchResult{}
		}
	}
	return dispatchResult{action: actionFinish}
}

func (s *session) doBackspace() {
	if s.cursor == 0 {
		s.beep()
		return
	}
	offset := s.buf.PrevOffset(s.cursor)
	s.mutateDeleteRange(runDelete, offset, s.cursor)
}

func (s *session) doDelete() {
	if s.cursor >= s.buf.Len() {
		s.beep()
		return
	}
	next := s.buf.NextOffset(s.cursor)
	s.mutateDeleteForward(s.cursor, next)
}

func (s *session) deleteNextWord() {
	end := s.buf.NextWordOffset(s.cursor, s.wordClass())
	if end <= s.cursor {
		s.beep()
		return
	}
	s.kill = s.buf.Slice(s.cursor, end)
	s.mutateDeleteForward(s.cursor, end)
}

func (s *session) moveLeftRight(dir int, mods term.Mod) {
	if mods&term.ModCtrl != 0 {
		if dir < 0 {
			s.cursor = s.buf.PrevWordOffset(s.cursor, s.wordClass())
		} else {
			s.cursor = s.buf.NextWordOffset(s.cursor, s.wordClass())
		}
		return
	}
	if dir < 0 {
		if s.cursor == 0 {
			s.beep()
			return
		}
		s.cursor = s.buf.PrevOffset(s.cursor)
	} else {
		if s.cursor >= s.buf.Len() {
			s.beep()
			return
		}
		s.cursor = s.buf.NextOffset(s.cursor)
	}
}
