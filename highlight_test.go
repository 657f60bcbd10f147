package isocline

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Ratakor/isocline/term"
)

func TestHighlighterTransform(t *testing.T) {
	h := &highlighter{transform: func(s string) string { return "<<" + s + ">>" }}
	assert.Equal(t, "<<hi>>", h.apply("hi", true))
}

func TestHighlighterNilPassesThrough(t *testing.T) {
	var h *highlighter
	assert.Equal(t, "hi", h.apply("hi", true))
}

func TestHighlighterColorDisabledPassesThrough(t *testing.T) {
	h := &highlighter{transform: func(s string) string { return "<<" + s + ">>" }}
	assert.Equal(t, "hi", h.apply("hi", false))
}

func TestHighlighterPaintWrapsRange(t *testing.T) {
	h := &highlighter{paint: func(text string) []PaintRange {
		return []PaintRange{{Start: 0, End: 3, Color: term.ColorFGRed}}
	}}
	got := h.apply("foo bar", true)
	want := term.SGREscape(term.ColorFGRed) + "foo" + term.AttrReset + " bar"
	assert.Equal(t, want, got)
}

func TestApplyPaintSkipsOverlapping(t *testing.T) {
	ranges := []PaintRange{
		{Start: 0, End: 3, Color: term.ColorFGRed},
		{Start: 1, End: 4, Color: term.ColorFGBlue}, // overlaps the first, skipped
	}
	got := applyPaint("abcdef", func(string) []PaintRange { return ranges })
	want := term.SGREscape(term.ColorFGRed) + "abc" + term.AttrReset + "def"
	assert.Equal(t, want, got)
}

func TestApplyPaintSkipsOutOfRange(t *testing.T) {
	ranges := []PaintRange{{Start: 0, End: 100, Color: term.ColorFGRed}}
	got := applyPaint("abc", func(string) []PaintRange { return ranges })
	assert.Equal(t, "abc", got)
}

func TestApplyPaintNoRanges(t *testing.T) {
	got := applyPaint("abc", func(string) []PaintRange { return nil })
	assert.Equal(t, "abc", got)
}

func TestSGRForCombinesAttrs(t *testing.T) {
	got := sgrFor(PaintRange{Color: term.ColorFGGreen, Bold: true, Underline: true})
	want := term.SGREscape(term.ColorFGGreen) + term.AttrBold + term.AttrUnderline
	assert.Equal(t, want, got)
}
