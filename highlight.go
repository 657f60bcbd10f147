package isocline

import (
	"sort"
	"strings"

	"github.com/Ratakor/isocline/term"
)

// PaintRange is one byte range a PositionalPainter wants drawn in a
// particular style. Ranges may come back in any order (applyPaint sorts
// them by Start); a range that overlaps an earlier one or runs past the
// end of the text is skipped.
type PaintRange struct {
	Start, End int
	Color      term.Color
	Bold       bool
	Underline  bool
	Reverse    bool
}

// PositionalPainter is the other half of spec §9's highlighter tagged
// union: instead of returning an already-escaped string, it inspects the
// plain buffer text and returns the ranges to paint.
type PositionalPainter func(text string) []PaintRange

// highlighter is the tagged union itself: at most one of transform/paint is
// set, matching how Editor.SetHighlighterFunc/SetHighlighterPainter
// populate it.
type highlighter struct {
	transform func(string) string
	paint     PositionalPainter
}

// apply runs the registered highlighter, if any, gated on colorEnabled: a
// disabled-color terminal gets the plain buffer text back untouched rather
// than raw escape bytes it can't render.
func (h *highlighter) apply(text string, colorEnabled bool) string {
	if h == nil || !colorEnabled {
		return text
	}
	switch {
	case h.transform != nil:
		return h.transform(text)
	case h.paint != nil:
		return applyPaint(text, h.paint)
	default:
		return text
	}
}

func applyPaint(text string, paint PositionalPainter) string {
	ranges := paint(text)
	if len(ranges) == 0 {
		return text
	}
	sort.Slice(ranges, func(i, j int) bool { return ranges[i].Start < ranges[j].Start })

	var b strings.Builder
	pos := 0
	for _, r := range ranges {
		if r.Start < pos || r.End < r.Start || r.End > len(text) {
			continue // overlapping or out-of-range range: skip rather than corrupt output
		}
		b.WriteString(text[pos:r.Start])
		b.WriteString(sgrFor(r))
		b.WriteString(text[r.Start:r.End])
		b.WriteString(term.AttrReset)
		pos = r.End
	}
	b.WriteString(text[pos:])
	return b.String()
}

func sgrFor(r PaintRange) string {
	var b strings.Builder
	if r.Color != term.ColorNone {
		b.WriteString(term.SGREscape(r.Color))
	}
	if r.Bold {
		b.WriteString(term.AttrBold)
	}
	if r.Underline {
		b.WriteString(term.AttrUnderline)
	}
	if r.Reverse {
		b.WriteString(term.AttrReverse)
	}
	return b.String()
}
