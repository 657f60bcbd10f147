package isocline

import (
	"github.com/Ratakor/isocline/history"
	"github.com/Ratakor/isocline/internal/textbuf"
	"github.com/Ratakor/isocline/term"
)

// Config holds every idempotent setting a host may change before or between
// ReadLine calls, per spec §6's "Configuration setters" list.
type Config struct {
	Marker             string
	ContinuationMarker string
	ContinuationChar   byte
	Indent             bool // align continuation lines under the marker

	PromptColor    term.Color
	InfoColor      term.Color
	DiminishColor  term.Color
	EmphasisColor  term.Color
	HintColor      term.Color

	MultilineEnable         bool
	BeepEnable              bool
	ColorForce              *bool // nil = auto-detect
	AutoTabEnable           bool
	InlineHelpEnable        bool
	HistoryDuplicatesEnable bool
	CompletionPreviewEnable bool

	HistoryMaxEntries int
	WordClass         textbuf.WordClass
}

// DefaultConfig returns the conventional defaults: a "> "/". " prompt pair,
// backslash line continuation, no forced color, and history deduplication
// on (spec §3/§6).
func DefaultConfig() *Config {
	return &Config{
		Marker:             "> ",
		ContinuationMarker: ". ",
		ContinuationChar:   '\\',
		PromptColor:        term.ColorNone,
		InfoColor:          term.ColorFGGreen,
		DiminishColor:      term.ColorFGGrey,
		EmphasisColor:      term.ColorFGYellow,
		HintColor:          term.ColorFGGrey,

		MultilineEnable:         true,
		BeepEnable:              true,
		HistoryMaxEntries:       history.DefaultCap,
		WordClass:               textbuf.DefaultWordClass,
	}
}

// SetPromptMarker sets the primary marker (e.g. "> ") and the continuation
// marker used on wrapped/multi-line rows (e.g. ". ").
func (e *Editor) SetPromptMarker(marker, continuationMarker string) {
	e.Config.Marker = marker
	e.Config.ContinuationMarker = continuationMarker
}

// SetPromptColor sets the color the prompt text/marker is drawn in.
func (e *Editor) SetPromptColor(c term.Color) { e.Config.PromptColor = c }

// SetInfoColor/SetDiminishColor/SetEmphasisColor/SetHintColor set the four
// interface colors named in spec §6.
func (e *Editor) SetInfoColor(c term.Color)     { e.Config.InfoColor = c }
func (e *Editor) SetDiminishColor(c term.Color) { e.Config.DiminishColor = c }
func (e *Editor) SetEmphasisColor(c term.Color) { e.Config.EmphasisColor = c }
func (e *Editor) SetHintColor(c term.Color)     { e.Config.HintColor = c }

// EnableMultiline toggles multi-line editing (bracket/quote/continuation
// detection on Enter). When disabled, Enter always finishes.
func (e *Editor) EnableMultiline(v bool) { e.Config.MultilineEnable = v }

// EnableBeep toggles the bell rung on no-op actions (empty completion set,
// buffer-limit errors).
func (e *Editor) EnableBeep(v bool) { e.Config.BeepEnable = v }

// EnableColor forces color on/off; pass nil to restore auto-detection.
func (e *Editor) EnableColor(v *bool) {
	e.Config.ColorForce = v
	e.term.Out.ForceColor(v)
}

// EnableAutoTab toggles auto-tab: re-invoking completion after a unique
// match to expand further common prefix (spec §4.4).
func (e *Editor) EnableAutoTab(v bool) { e.Config.AutoTabEnable = v }

// EnableInlineHelp toggles whether F1's help overlay is available.
func (e *Editor) EnableInlineHelp(v bool) { e.Config.InlineHelpEnable = v }

// EnableHistoryDuplicates toggles whether consecutive duplicate entries are
// kept (true) or collapsed (false, the default).
func (e *Editor) EnableHistoryDuplicates(v bool) {
	e.Config.HistoryDuplicatesEnable = v
	e.History.NoDup = !v
}

// EnableCompletionPreview toggles ghost-rendering the candidate under the
// completion-menu cursor inline in the buffer.
func (e *Editor) EnableCompletionPreview(v bool) { e.Config.CompletionPreviewEnable = v }

// EnableMultilineIndent toggles aligning continuation rows under the
// primary marker rather than under a flush-left continuation marker.
func (e *Editor) EnableMultilineIndent(v bool) { e.Config.Indent = v }
