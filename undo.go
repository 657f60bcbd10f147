package isocline

import "github.com/Ratakor/isocline/internal/textbuf"

// runKind tags an editing action for undo coalescing, per spec §4.3:
// "insert_run", "delete_run", or "structural". Consecutive same-kind
// actions at adjacent positions merge into the current undo entry; any
// other action seals it and starts a new one.
type runKind int

const (
	runNone runKind = iota
	runInsert
	runDelete
	runStructural
)

// undoCap bounds the snapshot stack, per spec §3's module budget.
const undoCap = 50

// snapshot is a full (buffer text, cursor) capture. The design note in
// spec §9 allows a delta log as a cheaper equivalent; this port keeps full
// snapshots, matching the teacher's own preference for holding whole
// buffer copies (Buffer.Refresh/Buffer.Copy) over incremental deltas.
type snapshot struct {
	text   string
	cursor int
}

// undoLog implements the coalescing undo/redo stack described in spec
// §4.3/§8: Undo followed by Redo is identity on (buffer, cursor), and Undo
// after N mutations returns through at most N coalesced units.
type undoLog struct {
	stack      []snapshot
	redo       []snapshot
	lastKind   runKind
	lastCursor int // cursor position immediately after the last mutation
}

func newUndoLog() *undoLog {
	return &undoLog{lastKind: runNone}
}

// begin records the pre-mutation state before an action of the given kind
// touches the buffer at atCursor, unless it coalesces with the run already
// open at the top of the stack.
func (u *undoLog) begin(kind runKind, buf *textbuf.Buffer, atCursor int) {
	if kind != runStructural && kind == u.lastKind && atCursor == u.lastCursor {
		return // coalesce: the entry already on top remains the "before" state
	}
	u.push(snapshot{text: buf.String(), cursor: atCursor})
	u.redo = nil
}

func (u *undoLog) push(s snapshot) {
	u.stack = append(u.stack, s)
	if len(u.stack) > undoCap {
		u.stack = u.stack[1:]
	}
}

// commit records the state left behind after an action of the given kind,
// so the next begin call can test adjacency for coalescing.
func (u *undoLog) commit(kind runKind, cursorAfter int) {
	u.lastKind = kind
	u.lastCursor = cursorAfter
}

// reset clears both stacks and the coalescing state, used when history
// navigation replaces the whole buffer. Each ReadLine call starts from a
// fresh newUndoLog instead.
func (u *undoLog) reset() {
	u.stack = nil
	u.redo = nil
	u.lastKind = runNone
	u.lastCursor = 0
}

// undo pops the most recent snapshot, pushing the buffer's current state
// onto the redo stack first, and reports the cursor to restore.
func (u *undoLog) undo(buf *textbuf.Buffer, cursor int) (newCursor int, ok bool) {
	if len(u.stack) == 0 {
		return cursor, false
	}
	top := u.stack[len(u.stack)-1]
	u.stack = u.stack[:len(u.stack)-1]
	u.redo = append(u.redo, snapshot{text: buf.String(), cursor: cursor})
	buf.LoadString(top.text)
	u.lastKind = runNone
	return top.cursor, true
}

// redoAction is the mirror of undo.
func (u *undoLog) redoAction(buf *textbuf.Buffer, cursor int) (newCursor int, ok bool) {
	if len(u.redo) == 0 {
		return cursor, false
	}
	top := u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]
	u.stack = append(u.stack, snapshot{text: buf.String(), cursor: cursor})
	buf.LoadString(top.text)
	u.lastKind = runNone
	return top.cursor, true
}
