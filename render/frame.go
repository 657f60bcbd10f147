// Package render turns editor state (prompt, buffer, mode overlay) into a
// minimal sequence of terminal writes, per spec §4.6. It replaces the
// teacher's inline fmt.Print-as-you-edit approach (Buffer.drawRemaining,
// Buffer.ClearScreen) with a diff-based renderer: build a fresh logical
// frame every dispatch step, then diff it against the row count of the
// last-drawn frame.
package render

import (
	"strings"

	"github.com/Ratakor/isocline/internal/width"
	"github.com/Ratakor/isocline/term"
)

// Prompt is the immutable prompt state captured at ReadLine start (spec §3).
type Prompt struct {
	Text               string
	Marker             string
	ContinuationMarker string
	Color              term.Color
	Indent             bool // align continuation lines under the marker
}

func (p Prompt) firstPrefix() string {
	return p.Text + p.Marker
}

func (p Prompt) contPrefix() string {
	if !p.Indent {
		return p.ContinuationMarker
	}
	pad := width.String(p.firstPrefix()) - width.String(p.ContinuationMarker)
	if pad <= 0 {
		return p.ContinuationMarker
	}
	return strings.Repeat(" ", pad) + p.ContinuationMarker
}

// Frame is the fully laid-out screen state for one dispatch step: a list of
// visual rows (already prefixed with prompt/continuation markers and any
// highlight escapes) plus the logical cursor's row/column within them.
type Frame struct {
	Rows      []string
	CursorRow int
	CursorCol int
}

// Highlighter paints byte ranges of the buffer with color/underline/reverse
// before layout, per spec §4.6/§9. It is a tagged union in spirit: either a
// pure string transformer or a positional painter, both reduced here to
// "text in, escaped text out" so the frame builder doesn't care which.
type Highlighter func(text string) string

// Build lays out prompt+buffer+hint+overlay into visual rows, soft-wrapping
// at termWidth using internal/width, per spec §4.6's wrap rule: a row wraps
// when the next code point's width would exceed the remaining columns.
// colorEnabled gates the hint's SGR escape the same way highlighter.apply
// gates highlighting: a disabled-color terminal gets the plain hint text.
func Build(prompt Prompt, text string, cursor int, hint string, hintColor term.Color, hl Highlighter, overlay []string, termWidth int, colorEnabled bool) Frame {
	highlighted := text
	if hl != nil {
		highlighted = hl(text)
	}

	var rows []string
	cursorRow, cursorCol := 0, 0
	cursorFound := false

	// logicalLines carries the plain buffer, whose byte offsets cursor is
	// expressed in; hlLines carries the (possibly escaped) text actually
	// written to the screen. A highlighter is only expected to splice
	// zero-width escapes around unchanged content, so the two stay
	// line-for-line in sync; if a highlighter breaks that (e.g. it changes
	// line counts) fall back to rendering unhighlighted rather than risk a
	// misplaced cursor.
	logicalLines := strings.Split(text, "\n")
	hlLines := strings.Split(highlighted, "\n")
	if len(hlLines) != len(logicalLines) {
		hlLines = logicalLines
	}
	lineStart := 0 // byte offset where the current logical line begins

	for li, line := range logicalLines {
		hline := hlLines[li]
		prefix := prefixFor(prompt, li)
		prefixWidth := width.String(prefix)
		avail := termWidth - prefixWidth
		if avail < 1 {
			avail = 1
		}

		col := 0
		var cur strings.Builder
		cur.WriteString(prefix)

		lineHasCursor := !cursorFound && cursor >= lineStart && cursor <= lineStart+len(line)
		bytePos := lineStart

		for i := 0; i < len(hline); {
			tok, r, isEsc, next := width.NextToken(hline, i)
			i = next
			if isEsc {
				cur.WriteString(tok)
				continue
			}
			rw := runeDisplayWidth(r)
			if lineHasCursor && bytePos == cursor {
				cursorRow = len(rows)
				cursorCol = width.String(cur.String())
				cursorFound = true
			}
			if col+rw > avail && col > 0 {
				rows = append(rows, cur.String())
				cur.Reset()
				cur.WriteString(prompt.contPrefix())
				col = 0
			}
			cur.WriteString(tok)
			col += rw
			bytePos += len(tok)
		}
		if lineHasCursor && !cursorFound && bytePos == cursor {
			cursorRow = len(rows)
			cursorCol = width.String(cur.String())
			cursorFound = true
		}
		rows = append(rows, cur.String())

		lineStart += len(line) + 1 // +1 for the '\n' separator this line consumed
	}

	if !cursorFound {
		cursorRow = len(rows) - 1
		if cursorRow < 0 {
			cursorRow = 0
		}
		if len(rows) > 0 {
			cursorCol = width.String(rows[len(rows)-1])
		}
	}

	if hint != "" && len(rows) > 0 {
		if colorEnabled {
			rows[len(rows)-1] += hintEscape(hintColor) + hint + resetEscape()
		} else {
			rows[len(rows)-1] += hint
		}
	}

	rows = append(rows, overlay...)

	return Frame{Rows: rows, CursorRow: cursorRow, CursorCol: cursorCol}
}

func prefixFor(p Prompt, lineIndex int) string {
	if lineIndex == 0 {
		return p.firstPrefix()
	}
	return p.contPrefix()
}

func runeDisplayWidth(r rune) int {
	if r == '\t' {
		return width.TabStop
	}
	return width.Rune(r)
}

func hintEscape(c term.Color) string {
	if c == term.ColorNone {
		return ""
	}
	return term.SGREscape(c)
}

func resetEscape() string { return term.AttrReset }
