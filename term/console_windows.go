//go:build windows

package term

import (
	"unicode/utf16"

	"github.com/TheTitanrain/w32"
)

// Console virtual-key codes the decoder maps to the same FnName values the
// POSIX CSI/SS3 parser produces, per spec §4.2.
const (
	vkLeft     = 0x25
	vkUp       = 0x26
	vkRight    = 0x27
	vkDown     = 0x28
	vkHome     = 0x24
	vkEnd      = 0x23
	vkInsert   = 0x2D
	vkDelete   = 0x2E
	vkPageUp   = 0x21
	vkPageDown = 0x22
	vkF1       = 0x70
)

var vkNames = map[uint16]FnName{
	vkLeft: FnLeft, vkUp: FnUp, vkRight: FnRight, vkDown: FnDown,
	vkHome: FnHome, vkEnd: FnEnd, vkInsert: FnInsert, vkDelete: FnDelete,
	vkPageUp: FnPageUp, vkPageDown: FnPageDown,
}

func init() {
	for i := 0; i < 12; i++ {
		vkNames[uint16(vkF1+i)] = FnName(fKeyName(i + 1))
	}
}

// fKeyName avoids importing strconv just to format "F1".."F12".
func fKeyName(n int) string {
	if n < 10 {
		return "F" + string(rune('0'+n))
	}
	return "F1" + string(rune('0'+n-10))
}

// ConsoleDecoder produces the same term.Event stream as Decoder but reads
// Windows INPUT_RECORD key events instead of decoding escape bytes,
// grounded on the teacher's TheTitanrain/w32 dependency (used by ollama's
// real readline_windows.go for exactly this purpose).
type ConsoleDecoder struct {
	handle       w32.HANDLE
	pendingHigh  uint16
	haveSurrogate bool
}

// NewConsoleDecoder opens the process's console input handle.
func NewConsoleDecoder() *ConsoleDecoder {
	return &ConsoleDecoder{handle: w32.GetStdHandle(w32.STD_INPUT_HANDLE)}
}

// Buffered always reports 0: console input records are read one at a time
// from the OS queue, so there is no local read-ahead buffer to drain.
func (c *ConsoleDecoder) Buffered() int { return 0 }

// Next blocks until a key-down console event arrives and decodes it.
func (c *ConsoleDecoder) Next() (Event, error) {
	for {
		records, ok := w32.ReadConsoleInput(c.handle)
		if !ok {
			return Event{}, errConsoleMode("read")
		}
		for _, rec := range records {
			if rec.EventType == 0x0004 { // WINDOW_BUFFER_SIZE_EVENT
				return Event{Type: EventResize}, nil
			}
			if rec.EventType != w32.KEY_EVENT {
				continue
			}
			ev, produced := c.decodeKeyEvent(rec.KeyEvent)
			if produced {
				return ev, nil
			}
		}
	}
}

func (c *ConsoleDecoder) decodeKeyEvent(k w32.KEY_EVENT_RECORD) (Event, bool) {
	if !k.KeyDown {
		return Event{}, false
	}

	var mods Mod
	if k.ControlKeyState&(w32.LEFT_CTRL_PRESSED|w32.RIGHT_CTRL_PRESSED) != 0 {
		mods |= ModCtrl
	}
	if k.ControlKeyState&(w32.LEFT_ALT_PRESSED|w32.RIGHT_ALT_PRESSED) != 0 {
		mods |= ModAlt
	}
	if k.ControlKeyState&w32.SHIFT_PRESSED != 0 {
		mods |= ModShift
	}

	if name, ok := vkNames[k.VirtualKeyCode]; ok {
		return Event{Type: EventFn, Name: name, Mods: mods}, true
	}

	if k.UnicodeChar == 0 {
		return Event{}, false
	}

	if utf16.IsSurrogate(rune(k.UnicodeChar)) {
		if !c.haveSurrogate {
			c.pendingHigh = k.UnicodeChar
			c.haveSurrogate = true
			return Event{}, false
		}
		r := utf16.DecodeRune(rune(c.pendingHigh), rune(k.UnicodeChar))
		c.haveSurrogate = false
		return Event{Type: EventChar, Rune: r, Mods: mods}, true
	}

	r := rune(k.UnicodeChar)
	if r < 0x20 {
		if name, ok := controlNames[byte(r)]; ok {
			return Event{Type: EventFn, Name: name, Mods: mods}, true
		}
	}
	return Event{Type: EventChar, Rune: r, Mods: mods}, true
}
