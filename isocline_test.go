package isocline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEditor(t *testing.T) *Editor {
	t.Helper()
	e, err := New(DefaultConfig())
	require.NoError(t, err)
	return e
}

func TestLoadHistoryFileCarriesNoDup(t *testing.T) {
	e := newTestEditor(t)
	e.EnableHistoryDuplicates(true)
	require.False(t, e.History.NoDup)

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, e.SaveHistoryFile(path))

	require.NoError(t, e.LoadHistoryFile(path, 0))
	assert.False(t, e.History.NoDup, "LoadHistoryFile must preserve a prior EnableHistoryDuplicates(true)")
}

func TestLoadHistoryFileCarriesEnabled(t *testing.T) {
	e := newTestEditor(t)
	e.HistoryDisable()

	path := filepath.Join(t.TempDir(), "history")
	require.NoError(t, e.SaveHistoryFile(path))

	require.NoError(t, e.LoadHistoryFile(path, 0))
	assert.False(t, e.History.Enabled)
}
