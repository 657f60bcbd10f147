// Package textbuf implements the growable UTF-8 edit buffer that backs the
// editor core: code-point-aware navigation, insertion and deletion, and
// display-width measurement.
//
// Runes are stored in an emirpasic/gods arraylist rather than a raw byte
// slice, following the teacher package's own buffer.Buf field — a middle
// insert/delete is an O(n) list splice either way, but indexing by rune
// avoids repeatedly re-decoding UTF-8 on every cursor move, which the
// byte-slice-only alternative would require.
package textbuf

import (
	"errors"
	"unicode/utf8"

	"github.com/emirpasic/gods/v2/lists/arraylist"

	"github.com/Ratakor/isocline/internal/width"
)

// DefaultMaxBytes is the hard cap on buffer size mentioned in spec §3.
const DefaultMaxBytes = 1 << 20 // 1 MiB

var (
	// ErrOffsetOutOfRange is returned when an operation targets a byte
	// offset that does not land on a code-point boundary or falls outside
	// the buffer.
	ErrOffsetOutOfRange = errors.New("textbuf: offset out of range")
	// ErrInvalidUTF8 is returned when Insert is given a byte sequence
	// containing invalid UTF-8.
	ErrInvalidUTF8 = errors.New("textbuf: invalid utf-8")
	// ErrTooLarge is returned when an insertion would push the buffer past
	// MaxBytes.
	ErrTooLarge = errors.New("textbuf: buffer size limit exceeded")
)

// Buffer is a growable, always-valid-UTF-8 edit buffer addressed by byte
// offsets on code-point boundaries; the cursor itself is kept by the
// caller. The zero value is not usable; construct with New.
type Buffer struct {
	runes    *arraylist.List[rune]
	MaxBytes int
}

// New returns an empty Buffer.
func New() *Buffer {
	return &Buffer{
		runes:    arraylist.New[rune](),
		MaxBytes: DefaultMaxBytes,
	}
}

// NewFromString returns a Buffer preloaded with s.
func NewFromString(s string) *Buffer {
	b := New()
	for _, r := range s {
		b.runes.Add(r)
	}
	return b
}

// RuneLen returns the number of code points in the buffer.
func (b *Buffer) RuneLen() int {
	return b.runes.Size()
}

// Len returns the number of UTF-8 bytes in the buffer.
func (b *Buffer) Len() int {
	n := 0
	for i := 0; i < b.runes.Size(); i++ {
		r, _ := b.runes.Get(i)
		n += utf8.RuneLen(r)
	}
	return n
}

// IsEmpty reports whether the buffer holds no code points.
func (b *Buffer) IsEmpty() bool {
	return b.runes.Empty()
}

// String returns the full buffer content.
func (b *Buffer) String() string {
	return b.Slice(0, b.Len())
}

// runeIndexForOffset converts a byte offset into a rune index. ok is false
// if offset does not fall on a code-point boundary.
func (b *Buffer) runeIndexForOffset(offset int) (idx int, ok bool) {
	if offset == 0 {
		return 0, true
	}
	pos := 0
	for i := 0; i < b.runes.Size(); i++ {
		if pos == offset {
			return i, true
		}
		if pos > offset {
			return 0, false
		}
		r, _ := b.runes.Get(i)
		pos += utf8.RuneLen(r)
	}
	if pos == offset {
		return b.runes.Size(), true
	}
	return 0, false
}

func (b *Buffer) offsetForRuneIndex(idx int) int {
	pos := 0
	for i := 0; i < idx; i++ {
		r, _ := b.runes.Get(i)
		pos += utf8.RuneLen(r)
	}
	return pos
}

// CodePointAt returns the code point starting at byte offset, and whether
// one exists there.
func (b *Buffer) CodePointAt(offset int) (rune, bool) {
	idx, ok := b.runeIndexForOffset(offset)
	if !ok {
		return 0, false
	}
	return b.runes.Get(idx)
}

// NextOffset returns the byte offset of the code point following offset, or
// Len() if offset is already at (or past) the end.
func (b *Buffer) NextOffset(offset int) int {
	idx, ok := b.runeIndexForOffset(offset)
	if !ok || idx >= b.runes.Size() {
		return b.Len()
	}
	r, _ := b.runes.Get(idx)
	return offset + utf8.RuneLen(r)
}

// PrevOffset returns the byte offset of the code point preceding offset, or
// 0 if offset is already at (or before) the start.
func (b *Buffer) PrevOffset(offset int) int {
	idx, ok := b.runeIndexForOffset(offset)
	if !ok || idx <= 0 {
		return 0
	}
	r, _ := b.runes.Get(idx - 1)
	return offset - utf8.RuneLen(r)
}

// Insert inserts s at offset. On any error the buffer is left unchanged.
func (b *Buffer) Insert(offset int, s string) error {
	if !utf8.ValidString(s) {
		return ErrInvalidUTF8
	}
	idx, ok := b.runeIndexForOffset(offset)
	if !ok {
		return ErrOffsetOutOfRange
	}
	if b.Len()+len(s) > b.MaxBytes {
		return ErrTooLarge
	}
	rs := []rune(s)
	for j := len(rs) - 1; j >= 0; j-- {
		b.runes.Insert(idx, rs[j])
	}
	return nil
}

// InsertRune inserts a single code point at offset.
func (b *Buffer) InsertRune(offset int, r rune) error {
	return b.Insert(offset, string(r))
}

// Delete removes length bytes starting at offset. length and offset must
// both land on code-point boundaries.
func (b *Buffer) Delete(offset, length int) error {
	if length == 0 {
		return nil
	}
	start, ok := b.runeIndexForOffset(offset)
	if !ok {
		return ErrOffsetOutOfRange
	}
	end, ok := b.runeIndexForOffset(offset + length)
	if !ok || end < start {
		return ErrOffsetOutOfRange
	}
	for i := end - 1; i >= start; i-- {
		b.runes.Remove(i)
	}
	return nil
}

// Slice returns the substring of the buffer between byte offsets [a, b).
func (b *Buffer) Slice(a, bEnd int) string {
	startIdx, ok1 := b.runeIndexForOffset(a)
	endIdx, ok2 := b.runeIndexForOffset(bEnd)
	if !ok1 || !ok2 || endIdx < startIdx {
		return ""
	}
	rs := make([]rune, 0, endIdx-startIdx)
	for i := startIdx; i < endIdx; i++ {
		r, _ := b.runes.Get(i)
		rs = append(rs, r)
	}
	return string(rs)
}

// WidthOfRange returns the display width, per internal/width, of the buffer
// content between byte offsets [a, b).
func (b *Buffer) WidthOfRange(a, bEnd int) int {
	return width.String(b.Slice(a, bEnd))
}

// Clear empties the buffer.
func (b *Buffer) Clear() {
	b.runes.Clear()
}

// Clone returns a deep copy of the buffer's contents (used by the undo log
// to snapshot buffer state).
func (b *Buffer) Clone() *Buffer {
	c := New()
	c.MaxBytes = b.MaxBytes
	for i := 0; i < b.runes.Size(); i++ {
		r, _ := b.runes.Get(i)
		c.runes.Add(r)
	}
	return c
}

// LoadString discards the current content and replaces it with s.
func (b *Buffer) LoadString(s string) {
	b.runes.Clear()
	for _, r := range s {
		b.runes.Add(r)
	}
}
