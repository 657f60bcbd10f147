//go:build windows

package term

import (
	"github.com/TheTitanrain/w32"
)

const (
	enableLineInput       = 0x0002
	enableEchoInput       = 0x0004
	enableProcessedInput  = 0x0001
	enableWindowInput     = 0x0008
	enableVirtualTerminal = 0x0200
)

// rawState captures the console mode SetRawMode overwrote, so UnsetRawMode
// can put it back exactly.
type rawState struct {
	handle w32.HANDLE
	mode   uint32
}

// SetRawMode disables line/echo/processed input on the console input
// buffer, matching the POSIX raw-mode contract: bytes (here, console input
// records) arrive unbuffered and unechoed.
func SetRawMode(fd uintptr) (any, error) {
	h := w32.GetStdHandle(w32.STD_INPUT_HANDLE)
	mode, ok := w32.GetConsoleMode(h)
	if !ok {
		return nil, errConsoleMode("get")
	}
	raw := mode &^ (enableLineInput | enableEchoInput | enableProcessedInput)
	raw |= enableWindowInput
	if !w32.SetConsoleMode(h, raw) {
		return nil, errConsoleMode("set")
	}
	return &rawState{handle: h, mode: mode}, nil
}

// UnsetRawMode restores the console mode SetRawMode saved.
func UnsetRawMode(fd uintptr, state any) error {
	rs, ok := state.(*rawState)
	if !ok || rs == nil {
		return nil
	}
	if !w32.SetConsoleMode(rs.handle, rs.mode) {
		return errConsoleMode("restore")
	}
	return nil
}

// IsTerminal reports whether fd's console mode can be queried, which is
// true only for a real console (not a pipe or redirected file).
func IsTerminal(fd uintptr) bool {
	h := w32.GetStdHandle(w32.STD_INPUT_HANDLE)
	_, ok := w32.GetConsoleMode(h)
	return ok
}

func querySize(fd uintptr) (width, height int, err error) {
	h := w32.GetStdHandle(w32.STD_OUTPUT_HANDLE)
	info, ok := w32.GetConsoleScreenBufferInfo(h)
	if !ok {
		return 0, 0, errConsoleMode("size")
	}
	width = int(info.Window.Right-info.Window.Left) + 1
	height = int(info.Window.Bottom-info.Window.Top) + 1
	return width, height, nil
}

// tryEnableVirtualTerminal attempts to turn on VT100 escape processing for
// stdout so the CSI subset in writer.go renders natively. Nothing in the
// package calls it, and Writer has no console-API translation of that
// subset: on a console without VT processing the escapes are written as-is.
func tryEnableVirtualTerminal() bool {
	h := w32.GetStdHandle(w32.STD_OUTPUT_HANDLE)
	mode, ok := w32.GetConsoleMode(h)
	if !ok {
		return false
	}
	return w32.SetConsoleMode(h, mode|enableVirtualTerminal)
}

type consoleModeError string

func (e consoleModeError) Error() string { return "term: console mode " + string(e) + " failed" }

func errConsoleMode(op string) error { return consoleModeError(op) }
