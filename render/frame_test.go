package render

import (
	"testing"

	"github.com/Ratakor/isocline/term"
)

func TestBuildSingleLineCursorAtEnd(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	f := Build(p, "hello", 5, "", term.ColorNone, nil, nil, 80, true)
	if len(f.Rows) != 1 {
		t.Fatalf("Rows = %v", f.Rows)
	}
	if f.Rows[0] != "> hello" {
		t.Fatalf("got %q", f.Rows[0])
	}
	if f.CursorRow != 0 || f.CursorCol != len("> hello") {
		t.Fatalf("cursor = (%d,%d)", f.CursorRow, f.CursorCol)
	}
}

func TestBuildCursorMidLine(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	f := Build(p, "hello", 2, "", term.ColorNone, nil, nil, 80, true)
	if f.CursorCol != len("> he") {
		t.Fatalf("cursor col = %d, want %d", f.CursorCol, len("> he"))
	}
}

func TestBuildMultilineContinuation(t *testing.T) {
	p := Prompt{Text: "", Marker: "> ", ContinuationMarker: ". "}
	f := Build(p, "one\ntwo", 4, "", term.ColorNone, nil, nil, 80, true)
	if len(f.Rows) != 2 {
		t.Fatalf("Rows = %v", f.Rows)
	}
	if f.Rows[0] != "> one" || f.Rows[1] != ". two" {
		t.Fatalf("Rows = %v", f.Rows)
	}
	if f.CursorRow != 1 {
		t.Fatalf("CursorRow = %d, want 1", f.CursorRow)
	}
}

func TestBuildSoftWrap(t *testing.T) {
	p := Prompt{Text: "", Marker: "> ", ContinuationMarker: ""}
	f := Build(p, "abcdef", 6, "", term.ColorNone, nil, nil, 5, true) // avail = 3 cols after "> "
	if len(f.Rows) < 2 {
		t.Fatalf("expected soft-wrap into multiple rows, got %v", f.Rows)
	}
}

func TestBuildOverlayAppendedBelow(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	f := Build(p, "ab", 2, "", term.ColorNone, nil, []string{"menu item 1", "menu item 2"}, 80, true)
	if len(f.Rows) != 3 {
		t.Fatalf("Rows = %v", f.Rows)
	}
	if f.CursorRow != 0 {
		t.Fatalf("cursor should stay on the buffer row, got row %d", f.CursorRow)
	}
}

func TestBuildHintUsesRequestedColor(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	f := Build(p, "ab", 2, "int", term.ColorFGGreen, nil, nil, 80, true)
	want := "> ab" + term.SGREscape(term.ColorFGGreen) + "int" + term.AttrReset
	if f.Rows[0] != want {
		t.Fatalf("got %q, want %q", f.Rows[0], want)
	}
}

func TestBuildHintPlainWhenColorDisabled(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	f := Build(p, "ab", 2, "int", term.ColorFGGreen, nil, nil, 80, false)
	if f.Rows[0] != "> abint" {
		t.Fatalf("got %q, want plain hint text with no escapes", f.Rows[0])
	}
}

// A highlighter that wraps the whole buffer in SGR escapes must not shift
// the cursor into the escape bytes it injects: cursor is expressed in the
// plain buffer's byte offsets, not the escaped string's.
func TestBuildCursorAfterHighlightedText(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	hl := func(text string) string {
		return "\x1b[36m\x1b[1m" + text + "\x1b[0m"
	}
	f := Build(p, "help", 4, "", term.ColorNone, hl, nil, 80, true)
	want := "> " + "\x1b[36m\x1b[1m" + "help" + "\x1b[0m"
	if f.Rows[0] != want {
		t.Fatalf("got %q, want %q", f.Rows[0], want)
	}
	if f.CursorRow != 0 {
		t.Fatalf("CursorRow = %d, want 0", f.CursorRow)
	}
	if f.CursorCol != len("> help") {
		t.Fatalf("CursorCol = %d, want %d (cursor landed inside the escape sequence)", f.CursorCol, len("> help"))
	}
}

// The cursor may also land mid-token when the highlighter only wraps part
// of the buffer, e.g. a painter that colors a single word.
func TestBuildCursorMidHighlightedText(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	hl := func(text string) string {
		return "he" + "\x1b[7m" + "lp" + "\x1b[0m"
	}
	f := Build(p, "help", 2, "", term.ColorNone, hl, nil, 80, true)
	if f.CursorCol != len("> he") {
		t.Fatalf("CursorCol = %d, want %d", f.CursorCol, len("> he"))
	}
}

// A highlighter that changes the line count (breaking plain/highlighted
// alignment) must not corrupt cursor placement; Build falls back to
// rendering the plain text unhighlighted rather than guess.
func TestBuildHighlighterLineCountMismatchFallsBackToPlain(t *testing.T) {
	p := Prompt{Text: "", Marker: "> "}
	hl := func(text string) string {
		return text + "\nsuffix"
	}
	f := Build(p, "help", 4, "", term.ColorNone, hl, nil, 80, true)
	if f.Rows[0] != "> help" {
		t.Fatalf("got %q, want plain fallback %q", f.Rows[0], "> help")
	}
	if f.CursorRow != 0 || f.CursorCol != len("> help") {
		t.Fatalf("cursor = (%d,%d)", f.CursorRow, f.CursorCol)
	}
}
