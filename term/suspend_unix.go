//go:build !windows

package term

import (
	"os"
	"syscall"
)

// Suspend stops the process with SIGTSTP after restoring cooked mode, then
// re-enters raw mode once a SIGCONT wakes it back up. It mirrors the
// teacher's handleCharCtrlZ, which does the same restore/raise/reacquire
// sequence around the shell's job-control suspend.
func (t *Terminal) Suspend() error {
	if err := t.Release(); err != nil {
		return err
	}
	if err := syscall.Kill(os.Getpid(), syscall.SIGTSTP); err != nil {
		return err
	}
	return t.Acquire()
}
