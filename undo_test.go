package isocline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ratakor/isocline/internal/textbuf"
)

func TestUndoCoalescesSequentialInserts(t *testing.T) {
	buf := textbuf.New()
	u := newUndoLog()

	cursor := 0
	for _, r := range "abc" {
		u.begin(runInsert, buf, cursor)
		require.NoError(t, buf.InsertRune(cursor, r))
		cursor = buf.NextOffset(cursor)
		u.commit(runInsert, cursor)
	}
	assert.Equal(t, "abc", buf.String())

	newCursor, ok := u.undo(buf, cursor)
	require.True(t, ok)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, newCursor)
}

func TestUndoSealsOnKindChange(t *testing.T) {
	buf := textbuf.New()
	u := newUndoLog()

	cursor := 0
	u.begin(runInsert, buf, cursor)
	require.NoError(t, buf.Insert(cursor, "abc"))
	cursor = buf.Len()
	u.commit(runInsert, cursor)

	// Backspace is a delete_run at the end of the buffer: distinct kind,
	// so it seals the insert run instead of coalescing with it.
	u.begin(runDelete, buf, cursor)
	require.NoError(t, buf.Delete(2, 1))
	cursor = 2
	u.commit(runDelete, cursor)
	assert.Equal(t, "ab", buf.String())

	newCursor, ok := u.undo(buf, cursor)
	require.True(t, ok)
	assert.Equal(t, "abc", buf.String())
	assert.Equal(t, 3, newCursor)

	newCursor, ok = u.undo(buf, newCursor)
	require.True(t, ok)
	assert.Equal(t, "", buf.String())
	assert.Equal(t, 0, newCursor)
}

func TestUndoRedoIsIdentity(t *testing.T) {
	buf := textbuf.New()
	u := newUndoLog()

	u.begin(runStructural, buf, 0)
	require.NoError(t, buf.Insert(0, "hello"))
	u.commit(runStructural, 5)

	cursor, ok := u.undo(buf, 5)
	require.True(t, ok)
	assert.Equal(t, "", buf.String())

	cursor, ok = u.redoAction(buf, cursor)
	require.True(t, ok)
	assert.Equal(t, "hello", buf.String())
	assert.Equal(t, 5, cursor)
}

func TestUndoNewMutationClearsRedo(t *testing.T) {
	buf := textbuf.New()
	u := newUndoLog()

	u.begin(runInsert, buf, 0)
	require.NoError(t, buf.Insert(0, "a"))
	u.commit(runInsert, 1)

	_, ok := u.undo(buf, 1)
	require.True(t, ok)
	require.Len(t, u.redo, 1)

	u.begin(runInsert, buf, 0)
	require.NoError(t, buf.Insert(0, "b"))
	u.commit(runInsert, 1)

	assert.Empty(t, u.redo)
}

func TestUndoEmptyStackReportsFalse(t *testing.T) {
	buf := textbuf.New()
	u := newUndoLog()
	_, ok := u.undo(buf, 0)
	assert.False(t, ok)
}
