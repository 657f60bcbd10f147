//go:build windows

package term

import "os"

func newPlatformEventSource(fd uintptr, in *os.File) EventSource {
	return NewConsoleDecoder()
}

// NotifyResize is a no-op: console resize arrives as a
// WINDOW_BUFFER_SIZE_EVENT record inside Next, not via an external signal.
func (c *ConsoleDecoder) NotifyResize() {}
