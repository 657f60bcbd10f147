package isocline

import (
	"io"

	"github.com/Ratakor/isocline/internal/textbuf"
	"github.com/Ratakor/isocline/internal/width"
	"github.com/Ratakor/isocline/render"
	"github.com/Ratakor/isocline/term"
)

// SuspendKey names the binding for job-control suspend (Alt-Z): restore
// cooked mode, raise SIGTSTP, and re-enter raw mode on resume. It cannot
// share spec.md's own Ctrl-Z, which the key table already commits to undo.
const SuspendKey = "Alt-Z"

// ErrInterrupt is returned by ReadLine when the user cancels with Ctrl-C.
// io.EOF is returned instead for Ctrl-D on an empty buffer, per spec §7's
// tri-state boundary (line / EOF / cancel).
var ErrInterrupt = errInterrupt{}

type errInterrupt struct{}

func (errInterrupt) Error() string { return "isocline: interrupted" }

// session holds everything that resets fresh on every ReadLine call: the
// edit buffer, cursor, undo log, active mode and kill buffer. It is
// deliberately separate from Editor, which holds the process-lifetime
// state (history, completer, highlighter, terminal), per spec §3's
// lifecycle split.
type session struct {
	e      *Editor
	buf    *textbuf.Buffer
	cursor int
	undo   *undoLog
	mode   mode
	kill   string
	prompt render.Prompt
	help   bool // showing the F1 help overlay
}

// ReadLine runs the editor until the user finishes, cancels, or sends EOF,
// per spec §6's read_line(prompt) → string | absent. It is not safe to call
// concurrently (spec §5: "one read_line call is active at a time").
func (e *Editor) ReadLine(prompt string) (string, error) {
	if err := e.term.Acquire(); err != nil {
		return "", err
	}
	defer e.term.Release()

	s := &session{
		e:    e,
		buf:  textbuf.New(),
		undo: newUndoLog(),
		mode: editingMode(),
		prompt: render.Prompt{
			Text:               prompt,
			Marker:             e.Config.Marker,
			ContinuationMarker: e.Config.ContinuationMarker,
			Color:              e.Config.PromptColor,
			Indent:             e.Config.Indent,
		},
	}
	e.History.ResetBrowsing()
	e.renderer.Invalidate()

	s.draw()

	for {
		ev, err := e.term.Events.Next()
		if err != nil {
			return "", err
		}

		line, err, done := s.dispatch(ev)
		if done {
			return line, err
		}
		s.draw()
	}
}

// dispatch routes ev to the current mode's handler and resolves the result,
// following a Redispatch at most once (a cursor-motion key accepted during
// HistorySearch is always re-run in Editing mode, which cannot itself
// produce another Redispatch).
func (s *session) dispatch(ev term.Event) (line string, err error, done bool) {
	var out dispatchResult
	switch s.mode.kind {
	case modeCompletionMenu:
		out = s.handleCompletionMenu(ev)
	case modeHistorySearch:
		out = s.handleHistorySearch(ev)
	default:
		out = s.handleEditing(ev)
	}

	if out.action == actionRedispatch {
		s.mode = editingMode()
		out = s.handleEditing(out.redispatch)
	}

	switch out.action {
	case actionFinish:
		line = s.buf.String()
		s.e.History.Add(line)
		s.e.History.ResetBrowsing()
		return line, nil, true
	case actionCancel:
		return "", ErrInterrupt, true
	case actionEOF:
		return "", io.EOF, true
	default:
		return "", nil, false
	}
}

// dispatchAction is the outcome of handling one key event.
type dispatchAction int

const (
	actionNone dispatchAction = iota
	actionFinish
	actionCancel
	actionEOF
	actionRedispatch
)

type dispatchResult struct {
	action     dispatchAction
	redispatch term.Event
}

func (s *session) draw() {
	w, _ := s.e.term.Size()
	colorEnabled := s.e.term.Out.ColorEnabled()

	var hl render.Highlighter
	if s.mode.kind == modeHistorySearch {
		hl = func(text string) string { return s.searchMatchHighlight(text, colorEnabled) }
	} else if s.e.highlighter != nil {
		hl = func(text string) string { return s.e.highlighter.apply(text, colorEnabled) }
	}

	var overlay []string
	hint, hintColor := "", term.ColorNone

	switch {
	case s.help:
		overlay = helpOverlay()
	case s.mode.kind == modeCompletionMenu:
		overlay = s.completionOverlay()
		if s.e.Config.CompletionPreviewEnable {
			hint = s.completionPreviewHint()
			hintColor = s.e.Config.HintColor
		}
	case s.mode.kind == modeHistorySearch:
		overlay = []string{s.searchModeline(colorEnabled)}
	}

	frame := render.Build(s.prompt, s.buf.String(), s.cursor, hint, hintColor, hl, overlay, w, colorEnabled)
	s.e.renderer.Draw(frame)
}

// suspend implements SuspendKey (Alt-Z): drop raw mode, stop the process
// with SIGTSTP, and restore raw mode on resume. A full redraw is forced
// since the shell may have printed over the editor's rows while stopped.
func (s *session) suspend() {
	if err := s.e.term.Suspend(); err != nil {
		s.beep()
		return
	}
	s.e.renderer.Invalidate()
}

func (s *session) beep() {
	if s.e.Config.BeepEnable {
		s.e.term.Out.Ring(true)
	}
}

// --- mutation helpers shared by editing/completion dispatch ---

func (s *session) mutateInsert(text string) bool {
	before := s.cursor
	s.undo.begin(runInsert, s.buf, before)
	if err := s.buf.Insert(before, text); err != nil {
		s.beep()
		return false
	}
	s.cursor = before + len(text)
	s.undo.commit(runInsert, s.cursor)
	return true
}

func (s *session) mutateInsertRune(r rune) bool {
	before := s.cursor
	s.undo.begin(runInsert, s.buf, before)
	if err := s.buf.InsertRune(before, r); err != nil {
		s.beep()
		return false
	}
	s.cursor = s.buf.NextOffset(before)
	s.undo.commit(runInsert, s.cursor)
	return true
}

// mutateDeleteRange deletes [start, end) as a single run-kind mutation and
// leaves the cursor at start.
func (s *session) mutateDeleteRange(kind runKind, start, end int) {
	if end <= start {
		return
	}
	before := s.cursor
	s.undo.begin(kind, s.buf, before)
	if err := s.buf.Delete(start, end-start); err != nil {
		s.beep()
		return
	}
	s.cursor = start
	s.undo.commit(kind, s.cursor)
}

// mutateDeleteForward deletes end-start starting at start but leaves the
// cursor at start unmoved relative to content after it (used by the
// Delete key, which doesn't move the cursor).
func (s *session) mutateDeleteForward(start, end int) {
	if end <= start {
		return
	}
	before := s.cursor
	s.undo.begin(runDelete, s.buf, before)
	if err := s.buf.Delete(start, end-start); err != nil {
		s.beep()
		return
	}
	s.undo.commit(runDelete, s.cursor)
}

// transpose swaps the two code points around the cursor (Ctrl-T): at the
// end of the buffer it swaps the last two; elsewhere it swaps the code
// point before the cursor with the one under it and advances past both.
func (s *session) transpose() {
	total := s.buf.Len()
	if s.buf.RuneLen() < 2 || s.cursor == 0 {
		s.beep()
		return
	}
	cursor := s.cursor
	var p1, mid, p2, after int
	if cursor == total {
		mid = s.buf.PrevOffset(cursor)
		p1 = s.buf.PrevOffset(mid)
		p2 = cursor
		after = cursor
	} else {
		p1 = s.buf.PrevOffset(cursor)
		mid = cursor
		p2 = s.buf.NextOffset(cursor)
		after = p2
	}
	left := s.buf.Slice(p1, mid)
	right := s.buf.Slice(mid, p2)

	s.undo.begin(runStructural, s.buf, cursor)
	if err := s.buf.Delete(p1, p2-p1); err != nil {
		s.beep()
		return
	}
	if err := s.buf.Insert(p1, right+left); err != nil {
		s.beep()
		return
	}
	s.cursor = after
	s.undo.commit(runStructural, s.cursor)
}

func (s *session) moveUpDown(dir int) {
	lineStart := s.buf.StartOfLine(s.cursor)
	lineEnd := s.buf.EndOfLine(s.cursor)

	if dir < 0 && lineStart == 0 {
		s.historyPrev()
		return
	}
	if dir > 0 && lineEnd == s.buf.Len() {
		s.historyNext()
		return
	}

	col := s.buf.WidthOfRange(lineStart, s.cursor)

	var targetStart, targetEnd int
	if dir < 0 {
		nlOffset := s.buf.PrevOffset(lineStart)
		targetStart = s.buf.StartOfLine(nlOffset)
		targetEnd = nlOffset
	} else {
		targetStart = s.buf.NextOffset(lineEnd)
		targetEnd = s.buf.EndOfLine(targetStart)
	}

	line := s.buf.Slice(targetStart, targetEnd)
	s.cursor = targetStart + columnToByteOffset(line, col)
}

func columnToByteOffset(line string, targetCol int) int {
	col := 0
	for i, r := range line {
		w := 1
		switch {
		case r == '\t':
			w = width.TabStop - col%width.TabStop
		default:
			w = width.Rune(r)
		}
		if col+w > targetCol {
			return i
		}
		col += w
	}
	return len(line)
}

func (s *session) historyPrev() {
	line, ok := s.e.History.Prev(s.buf.String())
	if !ok {
		s.beep()
		return
	}
	s.buf.LoadString(line)
	s.cursor = s.buf.Len()
	s.undo.reset()
}

func (s *session) historyNext() {
	line, _, ok := s.e.History.Next()
	if !ok {
		s.beep()
		return
	}
	s.buf.LoadString(line)
	s.cursor = s.buf.Len()
	s.undo.reset()
}

func (s *session) wordClass() textbuf.WordClass {
	if s.e.wordClass != nil {
		return s.e.wordClass
	}
	return textbuf.DefaultWordClass
}

func helpOverlay() []string {
	return []string{
		"Ctrl-A/E line start/end  Ctrl-U/K kill to start/end  Ctrl-W/Alt-D kill word",
		"Ctrl-Y yank  Ctrl-T transpose  Ctrl-Z/Ctrl-_ undo  Alt-Y redo  Alt-Z suspend  Tab complete  Ctrl-R/S search  Ctrl-L clear",
	}
}
