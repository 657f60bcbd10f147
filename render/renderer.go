package render

import "github.com/Ratakor/isocline/term"

// Renderer diffs a freshly built Frame against the previous one and emits
// the minimal escape sequence to bring the screen up to date, per spec
// §4.6's diff policy: move to the start of the previous frame, clear each
// line while overwriting with new content, then reposition the cursor.
type Renderer struct {
	w             *term.Writer
	lastRows      int
	lastCursorRow int
}

// New wraps a term.Writer.
func New(w *term.Writer) *Renderer {
	return &Renderer{w: w}
}

// Invalidate forces the next Draw to treat the frame as a full redraw
// (e.g. after Ctrl-L or a resize), per spec §4.6.
func (r *Renderer) Invalidate() {
	r.lastRows = 0
	r.lastCursorRow = 0
}

// Draw renders f, replacing whatever the previous Draw call left on screen.
func (r *Renderer) Draw(f Frame) {
	r.w.HideCursor()
	defer r.w.ShowCursor()

	if r.lastRows > 0 {
		if r.lastCursorRow > 0 {
			r.w.MoveUp(r.lastCursorRow)
		}
		r.w.CR()
	}

	for i, row := range f.Rows {
		if i > 0 {
			r.w.WriteString("\r\n")
		}
		r.w.ClearEOL()
		r.w.WriteString(row)
	}

	if extra := r.lastRows - len(f.Rows); extra > 0 {
		for i := 0; i < extra; i++ {
			r.w.WriteString("\r\n")
			r.w.ClearEOL()
		}
		r.w.MoveUp(extra)
	}

	upFromLast := (len(f.Rows) - 1) - f.CursorRow
	if upFromLast > 0 {
		r.w.MoveUp(upFromLast)
	}
	r.w.CR()
	if f.CursorCol > 0 {
		r.w.MoveRight(f.CursorCol)
	}

	r.lastRows = len(f.Rows)
	r.lastCursorRow = f.CursorRow
}

// FullClear clears the whole screen and forces the next Draw to redraw from
// scratch, used by Ctrl-L per spec §4.3's key table.
func (r *Renderer) FullClear() {
	r.w.Clear()
	r.Invalidate()
}
