// Package width measures the terminal display width of runes and strings.
//
// It layers github.com/rivo/uniseg grapheme segmentation on top of
// github.com/mattn/go-runewidth's East-Asian-width table so that combining
// marks attach to their base rune (width 0) instead of advancing the cursor,
// and so ANSI SGR/CSI escapes embedded in highlighted text contribute zero
// columns.
package width

import (
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// TabStop is the column interval hard tabs expand to.
const TabStop = 8

var ambiguousIsWide = false

// SetAmbiguousWide controls whether ambiguous-width East-Asian code points
// (as classified by Unicode) measure as 2 cells instead of 1. Terminal
// emulators disagree on this, so hosts get a toggle (see spec §9).
func SetAmbiguousWide(wide bool) {
	ambiguousIsWide = wide
	runewidth.DefaultCondition.EastAsianWidth = wide
}

// Rune returns the display width of a single code point: 0 for combining or
// zero-width marks, 1 for normal-width code points, 2 for wide East Asian
// code points.
func Rune(r rune) int {
	return runewidth.RuneWidth(r)
}

// String returns the display width of s, ignoring embedded ANSI escape
// sequences and measuring by grapheme cluster so combining marks don't
// double-count against their base rune.
func String(s string) int {
	if s == "" {
		return 0
	}
	if isPlainASCII(s) {
		return len(s)
	}
	return graphemeWidth(StripANSI(s))
}

// AtColumn expands s starting from display column `col`, honoring hard tab
// stops, and returns the resulting column. Used by the renderer and the edit
// buffer to keep cursor placement correct across tabs.
func AtColumn(s string, col int) int {
	for _, r := range s {
		if r == '\t' {
			col += TabStop - col%TabStop
			continue
		}
		col += Rune(r)
	}
	return col
}

func isPlainASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b < 0x20 || b > 0x7E {
			return false
		}
	}
	return true
}

func graphemeWidth(s string) int {
	w := 0
	state := -1
	for len(s) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(s, state)
		w += clusterWidth(cluster)
		s = rest
		state = newState
	}
	return w
}

func clusterWidth(cluster string) int {
	if cluster == "" {
		return 0
	}
	if cluster == "\t" {
		return TabStop
	}
	r := []rune(cluster)
	return runewidth.RuneWidth(r[0])
}

// NextToken scans s starting at byte offset i and returns the next unit: an
// ANSI escape sequence (isEsc true, r zero) or a single decoded code point
// (isEsc false). next is the byte offset immediately following the token.
// StripANSI and the frame builder's layout walk both need to step through
// highlighted text one display unit at a time without losing sync with the
// plain-text byte offsets the escapes were spliced around, so the CSI/SS3
// matching rule lives here once instead of twice.
func NextToken(s string, i int) (token string, r rune, isEsc bool, next int) {
	if s[i] == 0x1b {
		j := i + 1
		if j < len(s) && (s[j] == '[' || s[j] == 'O') {
			j++
			for j < len(s) && s[j] >= 0x20 && s[j] <= 0x3F {
				j++
			}
			if j < len(s) {
				j++ // final byte
			}
			return s[i:j], 0, true, j
		}
		return s[i : i+1], 0, true, i + 1 // lone ESC
	}
	rr, size := utf8.DecodeRuneInString(s[i:])
	return s[i : i+size], rr, false, i + size
}

// StripANSI removes CSI ("ESC [ ... final") and SGR sequences from s so that
// width measurement of highlighted text ignores the escape bytes themselves,
// per spec §4.1.
func StripANSI(s string) string {
	if !strings.ContainsRune(s, 0x1b) {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		tok, _, isEsc, next := NextToken(s, i)
		i = next
		if !isEsc {
			b.WriteString(tok)
		}
	}
	return b.String()
}
