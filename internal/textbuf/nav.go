package textbuf

// WordClass reports whether r is part of a "word" for the purposes of
// word-wise motion and deletion (Ctrl-Left/Right, Alt-D, Ctrl-W). The
// default matches spec's glossary entry: alphanumerics plus '_'.
type WordClass func(r rune) bool

// DefaultWordClass is the default word-class predicate: letters, digits and
// underscore.
func DefaultWordClass(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
		return true
	default:
		return r > 127 // treat non-ASCII as word-forming so CJK text moves sanely
	}
}

// StartOfLine returns the byte offset of the start of the logical line
// (delimited by '\n') containing offset.
func (b *Buffer) StartOfLine(offset int) int {
	for offset > 0 {
		prev := b.PrevOffset(offset)
		r, _ := b.CodePointAt(prev)
		if r == '\n' {
			break
		}
		offset = prev
	}
	return offset
}

// EndOfLine returns the byte offset of the end of the logical line
// containing offset.
func (b *Buffer) EndOfLine(offset int) int {
	end := b.Len()
	for offset < end {
		r, _ := b.CodePointAt(offset)
		if r == '\n' {
			break
		}
		offset = b.NextOffset(offset)
	}
	return offset
}

// NextWordOffset returns the byte offset just past the end of the word (as
// classified by wc) starting at or after offset.
func (b *Buffer) NextWordOffset(offset int, wc WordClass) int {
	end := b.Len()
	// skip any non-word runs first
	for offset < end {
		r, _ := b.CodePointAt(offset)
		if wc(r) {
			break
		}
		offset = b.NextOffset(offset)
	}
	for offset < end {
		r, _ := b.CodePointAt(offset)
		if !wc(r) {
			break
		}
		offset = b.NextOffset(offset)
	}
	return offset
}

// PrevWordOffset returns the byte offset of the start of the word (as
// classified by wc) ending at or before offset.
func (b *Buffer) PrevWordOffset(offset int, wc WordClass) int {
	for offset > 0 {
		prev := b.PrevOffset(offset)
		r, _ := b.CodePointAt(prev)
		if wc(r) {
			break
		}
		offset = prev
	}
	for offset > 0 {
		prev := b.PrevOffset(offset)
		r, _ := b.CodePointAt(prev)
		if !wc(r) {
			break
		}
		offset = prev
	}
	return offset
}
