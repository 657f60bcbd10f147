package history

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddDedupAgainstLast(t *testing.T) {
	s := New()
	s.Add("alpha")
	s.Add("alpha")
	assert.Equal(t, 1, s.Len())
	s.Add("beta")
	assert.Equal(t, 2, s.Len())
}

func TestAddEmptyIsNoop(t *testing.T) {
	s := New()
	s.Add("")
	assert.Equal(t, 0, s.Len())
}

func TestCapEvictsFromHead(t *testing.T) {
	s := New()
	s.Cap = 2
	s.NoDup = false
	s.Add("a")
	s.Add("b")
	s.Add("c")
	require.Equal(t, 2, s.Len())
	got, _ := s.Get(0)
	assert.Equal(t, "b", got)
}

func TestPrevNextDraftRestore(t *testing.T) {
	s := New()
	s.NoDup = false
	s.Add("alpha")
	s.Add("beta")

	line, ok := s.Prev("draft")
	require.True(t, ok)
	assert.Equal(t, "beta", line)

	line, ok = s.Prev("draft")
	require.True(t, ok)
	assert.Equal(t, "alpha", line)

	// Stepping back past the newest entry restores the stashed draft.
	line, restored, ok := s.Next()
	require.True(t, ok)
	assert.Equal(t, "beta", line)
	assert.False(t, restored)

	line, restored, ok = s.Next()
	require.True(t, ok)
	assert.True(t, restored)
	assert.Equal(t, "draft", line)
}

func TestSearchSmartCase(t *testing.T) {
	entries := []string{"alpha", "beta", "beta-2", "Gamma"}
	// all-lowercase pattern folds case
	idx := Search(entries, "gamma", len(entries)-1, Reverse)
	assert.Equal(t, 3, idx)

	// reverse search from the end finds the most recent match first
	idx = Search(entries, "beta", len(entries)-1, Reverse)
	assert.Equal(t, 2, idx)

	// mixed-case pattern is case-sensitive and should not match "Gamma"
	idx = Search(entries, "gAmma", len(entries)-1, Reverse)
	assert.Equal(t, -1, idx)
}

func TestMatchRange(t *testing.T) {
	start, end, ok := MatchRange("beta-2", "be")
	require.True(t, ok)
	assert.Equal(t, "be", "beta-2"[start:end])

	start, end, ok = MatchRange("Gamma", "gamma")
	require.True(t, ok)
	assert.Equal(t, "Gamma", "Gamma"[start:end])

	_, _, ok = MatchRange("alpha", "zzz")
	assert.False(t, ok)

	_, _, ok = MatchRange("alpha", "")
	assert.False(t, ok)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	s := New()
	s.NoDup = false
	s.Add("simple")
	s.Add("multi\nline")
	s.Add(`back\slash`)

	require.NoError(t, s.SaveFile(path))

	loaded, err := LoadFile(path, 0)
	require.NoError(t, err)
	require.Equal(t, 3, loaded.Len())
	e0, _ := loaded.Get(0)
	e1, _ := loaded.Get(1)
	e2, _ := loaded.Get(2)
	assert.Equal(t, "simple", e0)
	assert.Equal(t, "multi\nline", e1)
	assert.Equal(t, `back\slash`, e2)
}

func TestLoadFileMissingIsEmpty(t *testing.T) {
	s, err := LoadFile(filepath.Join(t.TempDir(), "nope"), 100)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Len())
}

func TestLoadFileTruncatesToMaxEntries(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history")

	s := New()
	s.NoDup = false
	for _, e := range []string{"a", "b", "c", "d"} {
		s.Add(e)
	}
	require.NoError(t, s.SaveFile(path))

	loaded, err := LoadFile(path, 2)
	require.NoError(t, err)
	require.Equal(t, 2, loaded.Len())
	e0, _ := loaded.Get(0)
	e1, _ := loaded.Get(1)
	assert.Equal(t, "c", e0)
	assert.Equal(t, "d", e1)
}
