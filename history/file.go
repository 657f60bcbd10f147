package history

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"
)

// LoadFile reads a history file in the line-oriented format spec §6
// describes (one entry per line, "\n" and "\\" escaped) into a fresh Store,
// truncated to at most maxEntries. Leading/trailing blank lines are
// ignored. A missing file is not an error: it just yields an empty store.
func LoadFile(path string, maxEntries int) (*Store, error) {
	s := New()
	if maxEntries > 0 {
		s.Cap = maxEntries
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	for sc.Scan() {
		line := unescapeLine(sc.Text())
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return s, err
	}

	lines = trimBlankEdges(lines)
	if maxEntries > 0 && len(lines) > maxEntries {
		lines = lines[len(lines)-maxEntries:]
	}
	s.entries = lines
	s.resetCursor()
	return s, nil
}

// SaveFile atomically writes the store to path (write to a temp file in the
// same directory, then rename) using mode 0600 on POSIX, per spec §6.
func (s *Store) SaveFile(path string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".history-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmp.Name()
	defer os.Remove(tmpPath) // no-op once the rename below succeeds

	w := bufio.NewWriter(tmp)
	for _, e := range s.entries {
		if _, err := w.WriteString(escapeLine(e)); err != nil {
			tmp.Close()
			return err
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmpPath, 0o600); err != nil {
		return err
	}
	return os.Rename(tmpPath, path)
}

func escapeLine(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return s
}

func unescapeLine(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			switch s[i+1] {
			case 'n':
				b.WriteByte('\n')
				i++
				continue
			case '\\':
				b.WriteByte('\\')
				i++
				continue
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func trimBlankEdges(lines []string) []string {
	start := 0
	for start < len(lines) && lines[start] == "" {
		start++
	}
	end := len(lines)
	for end > start && lines[end-1] == "" {
		end--
	}
	return lines[start:end]
}
