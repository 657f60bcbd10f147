//go:build !windows

package term

import (
	"github.com/containerd/console"
	xterm "golang.org/x/term"
)

// rawState is the opaque per-platform "termios" the editor core hands back
// to UnsetRawMode, mirroring the teacher's own Terminal.termios `any` field.
type rawState struct {
	fd    int
	saved *xterm.State
}

// SetRawMode disables canonical mode and echo on fd and returns the saved
// terminal attributes so they can be restored by UnsetRawMode.
func SetRawMode(fd uintptr) (any, error) {
	saved, err := xterm.MakeRaw(int(fd))
	if err != nil {
		return nil, err
	}
	return &rawState{fd: int(fd), saved: saved}, nil
}

// UnsetRawMode restores the terminal attributes captured by SetRawMode.
func UnsetRawMode(fd uintptr, state any) error {
	rs, ok := state.(*rawState)
	if !ok || rs == nil {
		return nil
	}
	return xterm.Restore(rs.fd, rs.saved)
}

// IsTerminal reports whether fd refers to a terminal.
func IsTerminal(fd uintptr) bool {
	return xterm.IsTerminal(int(fd))
}

// querySize asks the console package for the current window size, falling
// back to golang.org/x/term's ioctl-based query. containerd/console is
// already a direct dependency of the teacher's go.mod; using it here for
// size keeps that dependency exercised beyond the raw-mode call alone.
func querySize(fd uintptr) (width, height int, err error) {
	if c := console.Current(); c != nil {
		if sz, err := c.Size(); err == nil {
			return int(sz.Width), int(sz.Height), nil
		}
	}
	return xterm.GetSize(int(fd))
}
