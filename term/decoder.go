package term

import (
	"bufio"
	"io"
	"time"
	"unicode/utf8"
)

// EscTimeout is how long the decoder waits after a lone ESC byte before
// deciding it is not the lead-in of a CSI/SS3 sequence, per spec §4.2/§5.
const EscTimeout = 100 * time.Millisecond

const (
	pasteStart = "\x1b[200~"
	pasteEnd   = "\x1b[201~"
)

// Decoder folds a raw byte stream into key Events: CSI/SS3 escape parsing,
// UTF-8 decoding, and bracketed-paste capture. It is the POSIX half of
// spec §4.2; the Windows half (console_windows.go) produces the same Event values
// from console input records instead of bytes.
type Decoder struct {
	r      *bufio.Reader
	resize chan struct{}
}

// NewDecoder wraps r (typically the raw-mode stdin) in a Decoder.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{
		r:      bufio.NewReader(r),
		resize: make(chan struct{}, 1),
	}
}

// Buffered reports how many bytes are already available without blocking on
// a read. The decoder and the editor do not consult it: a '\r' byte always
// decodes as Enter, whether it arrives alone or inside a burst of input.
func (d *Decoder) Buffered() int {
	return d.r.Buffered()
}

// NotifyResize is called by a SIGWINCH/console-resize handler to make the
// next Next() call return an EventResize instead of blocking on input.
func (d *Decoder) NotifyResize() {
	select {
	case d.resize <- struct{}{}:
	default:
	}
}

// Next reads and decodes the next Event from the stream.
func (d *Decoder) Next() (Event, error) {
	select {
	case <-d.resize:
		return Event{Type: EventResize}, nil
	default:
	}

	r, err := d.readRune()
	if err != nil {
		if err == io.EOF {
			return Event{Type: EventEOF}, nil
		}
		return Event{}, err
	}

	switch {
	case r == 0x1b:
		return d.decodeEscape()
	case r == utf8.RuneError:
		return Event{Type: EventChar, Rune: utf8.RuneError}, nil
	case r < 0x20:
		if name, ok := controlNames[byte(r)]; ok {
			return Event{Type: EventFn, Name: name}, nil
		}
		return Event{Type: EventChar, Rune: r}, nil
	case r == 0x7f:
		return Event{Type: EventFn, Name: FnBackspace}, nil
	default:
		return Event{Type: EventChar, Rune: r}, nil
	}
}

func (d *Decoder) readRune() (rune, error) {
	r, _, err := d.r.ReadRune()
	return r, err
}

// peekWithTimeout attempts to read one byte, but gives up after EscTimeout
// so a lone Esc keypress isn't held hostage waiting for a sequence that
// will never arrive.
func (d *Decoder) peekWithTimeout() (byte, bool) {
	type result struct {
		b   byte
		err error
	}
	ch := make(chan result, 1)
	go func() {
		b, err := d.r.ReadByte()
		ch <- result{b, err}
	}()
	select {
	case res := <-ch:
		if res.err != nil {
			return 0, false
		}
		return res.b, true
	case <-time.After(EscTimeout):
		return 0, false
	}
}

func (d *Decoder) decodeEscape() (Event, error) {
	b, ok := d.peekWithTimeout()
	if !ok {
		return Event{Type: EventFn, Name: FnEsc}, nil
	}

	switch b {
	case '[':
		return d.decodeCSI()
	case 'O':
		return d.decodeSS3()
	default:
		// Alt+<letter>: report as a Char event with ModAlt set.
		if b < 0x80 {
			r, _ := utf8.DecodeRuneInString(string(b))
			return Event{Type: EventChar, Rune: r, Mods: ModAlt}, nil
		}
		return Event{Type: EventFn, Name: FnEsc}, nil
	}
}

// decodeCSI parses "ESC [ params intermediates final" per spec §4.2 and
// maps the result to a named key, including bracketed-paste markers and
// modifier-parameter decoding for Ctrl/Alt/Shift combinations.
func (d *Decoder) decodeCSI() (Event, error) {
	var params []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		if b >= 0x30 && b <= 0x3F {
			params = append(params, b)
			continue
		}
		if b >= 0x20 && b <= 0x2F {
			continue // intermediate bytes, unused by the sequences we support
		}
		// final byte
		return d.finishCSI(params, b)
	}
}

func (d *Decoder) finishCSI(params []byte, final byte) (Event, error) {
	nums, hasTilde := splitParams(params)

	if final == '~' && len(nums) > 0 && nums[0] == 200 {
		return d.readPaste()
	}
	if final == '~' && len(nums) > 0 && nums[0] == 201 {
		// stray end-of-paste with no matching start: ignore silently.
		return d.Next()
	}

	mods := modsFromParams(nums)

	if final == 'Z' {
		// CSI Z: "cursor backward tabulation", universally xterm's Shift-Tab.
		return Event{Type: EventFn, Name: FnTab, Mods: ModShift}, nil
	}

	if final == '~' {
		code := 0
		if len(nums) > 0 {
			code = nums[0]
		}
		if name, ok := tildeKeys[code]; ok {
			return Event{Type: EventFn, Name: name, Mods: mods}, nil
		}
		return d.Next()
	}

	_ = hasTilde
	if name, ok := finalKeys[final]; ok {
		return Event{Type: EventFn, Name: name, Mods: mods}, nil
	}
	return d.Next()
}

func (d *Decoder) decodeSS3() (Event, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return Event{}, err
	}
	if name, ok := finalKeys[b]; ok {
		return Event{Type: EventFn, Name: name}, nil
	}
	if name, ok := ss3Keys[b]; ok {
		return Event{Type: EventFn, Name: name}, nil
	}
	return d.Next()
}

func (d *Decoder) readPaste() (Event, error) {
	var buf []byte
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return Event{}, err
		}
		buf = append(buf, b)
		if len(buf) >= len(pasteEnd) && string(buf[len(buf)-len(pasteEnd):]) == "\x1b[201~" {
			buf = buf[:len(buf)-len(pasteEnd)]
			break
		}
	}
	return Event{Type: EventPaste, Paste: buf}, nil
}

var finalKeys = map[byte]FnName{
	'A': FnUp,
	'B': FnDown,
	'C': FnRight,
	'D': FnLeft,
	'H': FnHome,
	'F': FnEnd,
	'P': FnF1,
	'Q': FnF2,
	'R': FnF3,
	'S': FnF4,
}

var ss3Keys = map[byte]FnName{
	'P': FnF1,
	'Q': FnF2,
	'R': FnF3,
	'S': FnF4,
}

var tildeKeys = map[int]FnName{
	1:  FnHome,
	2:  FnInsert,
	3:  FnDelete,
	4:  FnEnd,
	5:  FnPageUp,
	6:  FnPageDown,
	15: FnF5,
	17: FnF6,
	18: FnF7,
	19: FnF8,
	20: FnF9,
	21: FnF10,
	23: FnF11,
	24: FnF12,
}

// splitParams parses CSI parameter bytes ("1;5" etc) into integers.
func splitParams(params []byte) (nums []int, hadSemicolon bool) {
	if len(params) == 0 {
		return nil, false
	}
	cur := 0
	has := false
	for _, b := range params {
		switch {
		case b >= '0' && b <= '9':
			cur = cur*10 + int(b-'0')
			has = true
		case b == ';':
			nums = append(nums, cur)
			cur = 0
			hadSemicolon = true
		}
	}
	if has || len(nums) > 0 {
		nums = append(nums, cur)
	}
	return nums, hadSemicolon
}

// modsFromParams decodes the xterm modifier parameter convention: the
// second CSI parameter, when present, equals 1+bitmask(Shift|Alt|Ctrl|Meta).
func modsFromParams(nums []int) Mod {
	if len(nums) < 2 {
		return 0
	}
	v := nums[1] - 1
	if v <= 0 {
		return 0
	}
	return Mod(v)
}
