package completion

import (
	"os"
	"path/filepath"
	"strings"
)

// FilenameConfig configures the filename completer helper named in spec §6:
// a directory separator, an optional set of root directories to resolve
// relative prefixes against, and an optional extension allowlist.
type FilenameConfig struct {
	Separator  string
	Roots      []string
	Extensions []string // empty means "no filter"
}

// DefaultFilenameConfig returns the conventional POSIX-style configuration.
func DefaultFilenameConfig() FilenameConfig {
	return FilenameConfig{Separator: "/"}
}

// Filenames appends filesystem-entry candidates matching prefix to set,
// anchored at anchor (the byte offset prefix starts at). Directories get
// the separator appended to their display and replacement so completion
// can chain into their contents.
func (fc FilenameConfig) Filenames(prefix string, anchor int, set *Set) {
	dir, base := splitPrefix(prefix, fc.Separator)

	searchDirs := []string{dir}
	if dir == "" && len(fc.Roots) > 0 {
		searchDirs = fc.Roots
	}

	for _, sd := range searchDirs {
		entries, err := os.ReadDir(resolveDir(sd))
		if err != nil {
			continue
		}
		for _, e := range entries {
			name := e.Name()
			if !strings.HasPrefix(name, base) {
				continue
			}
			if !e.IsDir() && !fc.extensionAllowed(name) {
				continue
			}
			display := name
			if e.IsDir() {
				display += fc.Separator
			}
			replacement := dir + display
			set.Add(display, replacement, len(prefix))
		}
	}
}

func (fc FilenameConfig) extensionAllowed(name string) bool {
	if len(fc.Extensions) == 0 {
		return true
	}
	ext := filepath.Ext(name)
	for _, want := range fc.Extensions {
		if ext == want {
			return true
		}
	}
	return false
}

func resolveDir(dir string) string {
	if dir == "" {
		return "."
	}
	return dir
}

// splitPrefix splits prefix into a directory portion (including the trailing
// separator, if any) and the remaining basename fragment to match against.
func splitPrefix(prefix, sep string) (dir, base string) {
	idx := strings.LastIndex(prefix, sep)
	if idx == -1 {
		return "", prefix
	}
	return prefix[:idx+len(sep)], prefix[idx+len(sep):]
}
