package term

// EventType tags the variant carried by an Event, mirroring spec §4.2's key
// event union: Char, Fn, Paste, Resize, Timeout.
type EventType int

const (
	EventChar EventType = iota
	EventFn
	EventPaste
	EventResize
	EventTimeout
	EventEOF
)

// Mod is a bitmask of modifier keys, following the xterm CSI modifier
// parameter convention (value = 1 + bitmask) so decoding is a subtraction.
type Mod int

const (
	ModShift Mod = 1 << iota
	ModAlt
	ModCtrl
	ModMeta
)

// FnName names a non-printable key recognized by the decoder.
type FnName string

const (
	FnUp       FnName = "Up"
	FnDown     FnName = "Down"
	FnLeft     FnName = "Left"
	FnRight    FnName = "Right"
	FnHome     FnName = "Home"
	FnEnd      FnName = "End"
	FnInsert   FnName = "Insert"
	FnDelete   FnName = "Delete"
	FnPageUp   FnName = "PageUp"
	FnPageDown FnName = "PageDown"
	FnF1       FnName = "F1"
	FnF2       FnName = "F2"
	FnF3       FnName = "F3"
	FnF4       FnName = "F4"
	FnF5       FnName = "F5"
	FnF6       FnName = "F6"
	FnF7       FnName = "F7"
	FnF8       FnName = "F8"
	FnF9       FnName = "F9"
	FnF10      FnName = "F10"
	FnF11      FnName = "F11"
	FnF12      FnName = "F12"

	// Named controls, decoded from a lone byte < 0x20 per spec §4.2.
	FnTab       FnName = "Tab"
	FnEnter     FnName = "Enter"
	FnBackspace FnName = "Backspace"
	FnEsc       FnName = "Esc"

	FnCtrlA FnName = "Ctrl-A"
	FnCtrlB FnName = "Ctrl-B"
	FnCtrlC FnName = "Ctrl-C"
	FnCtrlD FnName = "Ctrl-D"
	FnCtrlE FnName = "Ctrl-E"
	FnCtrlF FnName = "Ctrl-F"
	FnCtrlG FnName = "Ctrl-G"
	FnCtrlH FnName = "Ctrl-H"
	FnCtrlJ FnName = "Ctrl-J"
	FnCtrlK FnName = "Ctrl-K"
	FnCtrlL FnName = "Ctrl-L"
	FnCtrlN FnName = "Ctrl-N"
	FnCtrlO FnName = "Ctrl-O"
	FnCtrlP FnName = "Ctrl-P"
	FnCtrlR FnName = "Ctrl-R"
	FnCtrlS FnName = "Ctrl-S"
	FnCtrlT FnName = "Ctrl-T"
	FnCtrlU FnName = "Ctrl-U"
	FnCtrlW FnName = "Ctrl-W"
	FnCtrlY FnName = "Ctrl-Y"
	FnCtrlZ FnName = "Ctrl-Z"
	FnCtrlUnderscore FnName = "Ctrl-_"
)

// controlNames maps raw control bytes (0x00-0x1f) to their named key, for
// the bytes spec §4.2 calls out by name plus the rest of the emacs-style
// control alphabet the editor's key table dispatches on.
var controlNames = map[byte]FnName{
	0x01: FnCtrlA,
	0x02: FnCtrlB,
	0x03: FnCtrlC,
	0x04: FnCtrlD,
	0x05: FnCtrlE,
	0x06: FnCtrlF,
	0x07: FnCtrlG,
	0x08: FnCtrlH,
	0x09: FnTab,
	0x0A: FnCtrlJ,
	0x0B: FnCtrlK,
	0x0C: FnCtrlL,
	0x0D: FnEnter,
	0x0E: FnCtrlN,
	0x0F: FnCtrlO,
	0x10: FnCtrlP,
	0x12: FnCtrlR,
	0x13: FnCtrlS,
	0x14: FnCtrlT,
	0x15: FnCtrlU,
	0x17: FnCtrlW,
	0x19: FnCtrlY,
	0x1A: FnCtrlZ,
	0x1F: FnCtrlUnderscore,
}

// Event is a single decoded input event.
type Event struct {
	Type  EventType
	Rune  rune   // valid when Type == EventChar
	Name  FnName // valid when Type == EventFn
	Mods  Mod
	Paste []byte // valid when Type == EventPaste
}
