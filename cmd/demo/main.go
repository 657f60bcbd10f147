// Command demo is a minimal interactive shell exercising the isocline
// editor: prompt/history/completion/highlighting wired up the way
// interactive_main.go wires up the teacher's own readline.Instance.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Ratakor/isocline"
	"github.com/Ratakor/isocline/completion"
	"github.com/Ratakor/isocline/term"
)

var builtins = []string{"help", "exit", "history", "clear"}

func main() {
	cfg := isocline.DefaultConfig()
	ed, err := isocline.New(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "isocline: init failed:", err)
		os.Exit(1)
	}

	if home, err := os.UserHomeDir(); err == nil {
		histPath := filepath.Join(home, ".isocline_demo_history")
		_ = ed.LoadHistoryFile(histPath, 500)
		defer ed.SaveHistoryFile(histPath)
	}

	ed.SetCompleter(demoCompleter)
	ed.SetHighlighterPainter(demoHighlighter)
	ed.EnableCompletionPreview(true)

	for {
		line, err := ed.ReadLine("demo> ")
		switch {
		case errors.Is(err, io.EOF):
			fmt.Println()
			return
		case errors.Is(err, isocline.ErrInterrupt):
			fmt.Println("^C")
			continue
		case err != nil:
			fmt.Fprintln(os.Stderr, "isocline:", err)
			return
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "exit" {
			return
		}
		fmt.Printf("you said: %q\n", line)
	}
}

func demoCompleter(lineBeforeCursor string, set *completion.Set) {
	wc := completion.DefaultWordConfig()
	start, _, _ := wc.ExtractWord(lineBeforeCursor, len(lineBeforeCursor))
	prefix := lineBeforeCursor[start:]
	for _, b := range builtins {
		if strings.HasPrefix(b, prefix) {
			set.Add(b, b, len(prefix))
		}
	}
	fc := completion.DefaultFilenameConfig()
	fc.Filenames(prefix, start, set)
}

func demoHighlighter(text string) []isocline.PaintRange {
	var ranges []isocline.PaintRange
	for _, b := range builtins {
		idx := 0
		for {
			at := strings.Index(text[idx:], b)
			if at == -1 {
				break
			}
			start := idx + at
			ranges = append(ranges, isocline.PaintRange{
				Start: start,
				End:   start + len(b),
				Color: term.ColorFGCyan,
				Bold:  true,
			})
			idx = start + len(b)
		}
	}
	return ranges
}
