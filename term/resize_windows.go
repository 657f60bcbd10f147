//go:build windows

package term

// watchResize is a no-op on Windows: console resize is delivered as a
// WINDOW_BUFFER_SIZE_EVENT record through the same ReadConsoleInput loop
// ConsoleDecoder.Next already reads, so no separate signal watcher is
// needed.
func watchResize(dec *Decoder) (stop func()) {
	return func() {}
}
