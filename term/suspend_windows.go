//go:build windows

package term

import "errors"

// ErrSuspendUnsupported is returned by Suspend on Windows, which has no
// POSIX job-control signal to raise.
var ErrSuspendUnsupported = errors.New("term: suspend is not supported on windows")

func (t *Terminal) Suspend() error {
	return ErrSuspendUnsupported
}
