package term

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// EventSource is anything that can produce the next input Event: the POSIX
// byte Decoder or the Windows ConsoleDecoder.
type EventSource interface {
	Next() (Event, error)
	Buffered() int
	NotifyResize()
}

// Terminal is the process-wide singleton spec §3/§5 describes: it owns the
// raw-mode guard, the input decoder and the output writer.
type Terminal struct {
	In     *os.File
	Out    *Writer
	Events EventSource

	fd         uintptr
	raw        any
	inRaw      bool
	stopResize func()

	// LastFrameRows is not updated by the renderer, which keeps its own
	// row count of the last drawn frame (render.Renderer.lastRows).
	LastFrameRows int
}

// New constructs a Terminal wrapping stdin/stdout. It does not enter raw
// mode; call Acquire for that.
func New() (*Terminal, error) {
	t := &Terminal{
		In:  os.Stdin,
		Out: NewWriter(os.Stdout),
		fd:  os.Stdin.Fd(),
	}
	t.Events = newEventSource(t.fd, t.In)
	return t, nil
}

func newEventSource(fd uintptr, in *os.File) EventSource {
	if src := newPlatformEventSource(fd, in); src != nil {
		return src
	}
	return NewDecoder(in)
}

// IsTTY reports whether the wrapped stdin/stdout are real terminals.
func (t *Terminal) IsTTY() bool {
	return IsTerminal(t.fd) && IsTerminal(os.Stdout.Fd())
}

// Size returns the current terminal dimensions.
func (t *Terminal) Size() (width, height int) {
	return Size()
}

// Acquire enters raw mode as a scoped resource, per spec §4.2/§9, and turns
// on bracketed paste. It is entered at ReadLine start and must be released
// via Release on every exit path: ReadLine's deferred Release covers normal
// returns and panics, and registerGuard installs a process-level
// SIGTERM/SIGHUP/SIGQUIT handler standing in for an atexit hook.
func (t *Terminal) Acquire() error {
	if t.inRaw {
		return nil
	}
	raw, err := SetRawMode(t.fd)
	if err != nil {
		return err
	}
	t.raw = raw
	t.inRaw = true
	t.Out.EnableBracketedPaste()
	t.stopResize = watchResize(asDecoder(t.Events))
	registerGuard(t)
	return nil
}

// Release restores the terminal to its pre-Acquire state. Safe to call
// multiple times.
func (t *Terminal) Release() error {
	if !t.inRaw {
		return nil
	}
	t.Out.DisableBracketedPaste()
	if t.stopResize != nil {
		t.stopResize()
		t.stopResize = nil
	}
	err := UnsetRawMode(t.fd, t.raw)
	t.inRaw = false
	unregisterGuard(t)
	return err
}

func asDecoder(src EventSource) *Decoder {
	d, _ := src.(*Decoder)
	return d
}

// --- process-level teardown registration -----------------------------

var (
	guardMu     sync.Mutex
	activeGuard *Terminal
	guardOnce   sync.Once
)

func registerGuard(t *Terminal) {
	guardMu.Lock()
	activeGuard = t
	guardMu.Unlock()

	guardOnce.Do(func() {
		ch := make(chan os.Signal, 1)
		signal.Notify(ch, syscall.SIGTERM, syscall.SIGHUP, syscall.SIGQUIT)
		go func() {
			for range ch {
				guardMu.Lock()
				g := activeGuard
				guardMu.Unlock()
				if g != nil {
					_ = g.Release()
				}
				signal.Stop(ch)
				os.Exit(1)
			}
		}()
	})
}

func unregisterGuard(t *Terminal) {
	guardMu.Lock()
	if activeGuard == t {
		activeGuard = nil
	}
	guardMu.Unlock()
}
