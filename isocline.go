// Package isocline is a portable line-editing engine: a readline
// alternative for interactive command-line programs that works across
// POSIX terminals and Windows consoles using only a minimal ANSI escape
// subset (spec §1).
//
// A host constructs an *Editor once per process, registers a history
// store, completer, and/or highlighter, and calls ReadLine per input line:
//
//	ed, err := isocline.New(isocline.DefaultConfig())
//	if err != nil {
//		// no terminal available
//	}
//	line, err := ed.ReadLine("> ")
//	switch {
//	case errors.Is(err, io.EOF):
//		// Ctrl-D on an empty buffer
//	case errors.Is(err, isocline.ErrInterrupt):
//		// Ctrl-C
//	}
package isocline

import (
	"log/slog"

	"github.com/Ratakor/isocline/completion"
	"github.com/Ratakor/isocline/history"
	"github.com/Ratakor/isocline/render"
	"github.com/Ratakor/isocline/term"
)

// Editor is a per-process line-editing engine. History, the completer, the
// highlighter, and the underlying Terminal all live for the process
// lifetime and are shared across ReadLine calls; the edit buffer, cursor,
// undo stack and Mode are reset fresh on every call (spec §3 "Lifecycles").
type Editor struct {
	Config  *Config
	History *history.Store
	term    *term.Terminal
	renderer *render.Renderer
	logger  *slog.Logger

	completer   completion.Completer
	highlighter *highlighter
	wordClass   func(r rune) bool
	isComplete  func(buf string) bool

	// kill is not read or written by ReadLine: each call's kill buffer is
	// session.kill, which starts empty with the session.
	kill string
}

// New constructs an Editor sharing the given Config, opening the process's
// terminal singleton (spec §5 "The terminal is a process-wide singleton").
func New(cfg *Config) (*Editor, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	t, err := term.New()
	if err != nil {
		return nil, err
	}
	e := &Editor{
		Config:    cfg,
		History:   history.New(),
		term:      t,
		renderer:  render.New(t.Out),
		logger:    slog.Default(),
		wordClass: cfg.WordClass,
	}
	e.History.Cap = cfg.HistoryMaxEntries
	return e, nil
}

// SetLogger overrides this Editor's diagnostic logger, which receives
// history file load/save failures instead of surfacing them to the
// interactive caller. A panicking completer is recovered without logging.
func (e *Editor) SetLogger(l *slog.Logger) {
	if l != nil {
		e.logger = l
	}
}

// SetCompleter registers the completer callback invoked on Tab (spec §4.4).
func (e *Editor) SetCompleter(c completion.Completer) { e.completer = c }

// SetHighlighterFunc registers a pure string-to-escaped-string highlighter
// (one half of the tagged union in spec §9).
func (e *Editor) SetHighlighterFunc(f func(string) string) {
	e.highlighter = &highlighter{transform: f}
}

// SetHighlighterPainter registers a positional highlighter that paints
// byte ranges of the buffer (the other half of spec §9's tagged union).
func (e *Editor) SetHighlighterPainter(p PositionalPainter) {
	e.highlighter = &highlighter{paint: p}
}

// SetWordClass overrides the word-class predicate used for word motion and
// completion (spec §4.4/glossary "Word class").
func (e *Editor) SetWordClass(f func(r rune) bool) {
	if f != nil {
		e.wordClass = f
	}
}

// SetIsCompleteFunc overrides the multi-line "is input complete" heuristic
// (spec §4.3's extension point).
func (e *Editor) SetIsCompleteFunc(f func(buf string) bool) {
	e.isComplete = f
}

// LoadHistoryFile replaces the current history with the contents of path,
// truncated to maxEntries.
func (e *Editor) LoadHistoryFile(path string, maxEntries int) error {
	s, err := history.LoadFile(path, maxEntries)
	if err != nil {
		e.logger.Warn("isocline: history load failed", "path", path, "error", err)
		return nil // HistoryFileError never fails the interactive call, per spec §7
	}
	s.Enabled = e.History.Enabled
	s.NoDup = e.History.NoDup
	e.History = s
	return nil
}

// SaveHistoryFile persists the current history to path.
func (e *Editor) SaveHistoryFile(path string) error {
	if err := e.History.SaveFile(path); err != nil {
		e.logger.Warn("isocline: history save failed", "path", path, "error", err)
	}
	return nil
}

// HistoryEnable/HistoryDisable toggle history recording, mirroring the
// teacher's own Instance.HistoryEnable/HistoryDisable.
func (e *Editor) HistoryEnable()  { e.History.Enabled = true }
func (e *Editor) HistoryDisable() { e.History.Enabled = false }
