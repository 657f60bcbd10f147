package isocline

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ratakor/isocline/history"
	"github.com/Ratakor/isocline/internal/textbuf"
	"github.com/Ratakor/isocline/render"
	"github.com/Ratakor/isocline/term"
)

func newSearchTestSession(entries ...string) *session {
	h := history.New()
	for _, e := range entries {
		h.Add(e)
	}
	return &session{
		e: &Editor{
			History: h,
			Config:  DefaultConfig(),
			term:    &term.Terminal{Out: term.NewWriter(io.Discard)},
		},
		buf: textbuf.New(),
	}
}

// TestRunSearchKeepsCurrentMatchOnExtend is spec.md §8 scenario 4 verbatim:
// with history ["alpha","beta","beta-2"], Ctrl-R b e must land on
// "beta-2", not step back to the older "beta" the moment the pattern
// still matches the already-displayed entry.
func TestRunSearchKeepsCurrentMatchOnExtend(t *testing.T) {
	s := newSearchTestSession("alpha", "beta", "beta-2")
	s.enterHistorySearch(history.Reverse)

	s.mode.search.pattern = "b"
	s.runSearch(true)
	require.Equal(t, "beta-2", s.buf.String())

	s.mode.search.pattern = "be"
	s.runSearch(true)
	assert.Equal(t, "beta-2", s.buf.String())
}

func TestRunSearchStepsBackWhenCurrentNoLongerMatches(t *testing.T) {
	s := newSearchTestSession("alpha", "beta", "gamma")
	s.enterHistorySearch(history.Reverse)

	s.mode.search.pattern = "a"
	s.runSearch(true)
	require.Equal(t, "gamma", s.buf.String())

	s.mode.search.pattern = "al"
	s.runSearch(true)
	assert.Equal(t, "alpha", s.buf.String())
}

func TestRunSearchRepeatCtrlRAlwaysStepsBack(t *testing.T) {
	s := newSearchTestSession("ba", "bb", "bc")
	s.enterHistorySearch(history.Reverse)

	s.mode.search.pattern = "b"
	s.runSearch(true)
	require.Equal(t, "bc", s.buf.String())

	// A repeat Ctrl-R (extendMatch=false) steps to the next older match
	// even though the current one still satisfies the pattern.
	s.runSearch(false)
	assert.Equal(t, "bb", s.buf.String())
}

func TestRunSearchNoMatchBeeps(t *testing.T) {
	s := newSearchTestSession("alpha")
	s.enterHistorySearch(history.Reverse)
	s.mode.search.pattern = "zzz"
	s.runSearch(true)
	assert.Equal(t, -1, s.mode.search.matchIdx)
	assert.Equal(t, "", s.buf.String())
}

// searchMatchHighlight is the hl func draw() installs for every
// HistorySearch-mode frame (spec §4.5's on-by-default Ctrl-R/Ctrl-S). Run
// it through render.Build directly, the same as draw() does, to confirm
// the emphasis/diminish escapes it injects never shift the cursor off the
// buffer's real byte offsets.
func TestSearchMatchHighlightThroughRenderBuild(t *testing.T) {
	s := newSearchTestSession("alpha", "beta-2")
	s.enterHistorySearch(history.Reverse)
	s.mode.search.pattern = "b"
	s.runSearch(true)
	require.Equal(t, "beta-2", s.buf.String())
	s.cursor = s.buf.Len()

	hl := func(text string) string { return s.searchMatchHighlight(text, true) }
	p := render.Prompt{Text: "", Marker: "(reverse-i-search)`b': "}
	f := render.Build(p, s.buf.String(), s.cursor, "", term.ColorNone, hl, nil, 80, true)

	want := p.Text + p.Marker + hl(s.buf.String())
	require.Equal(t, want, f.Rows[0])
	assert.Equal(t, len(p.Text+p.Marker+s.buf.String()), f.CursorCol,
		"cursor must land after the highlighted text, not inside an injected escape")
}
