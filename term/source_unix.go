//go:build !windows

package term

import "os"

// newPlatformEventSource returns nil on POSIX: the generic byte Decoder is
// used directly (see newEventSource in terminal.go).
func newPlatformEventSource(fd uintptr, in *os.File) EventSource {
	return nil
}
