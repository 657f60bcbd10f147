package term

import (
	"strings"
	"testing"
)

func decodeAll(t *testing.T, input string, n int) []Event {
	t.Helper()
	d := NewDecoder(strings.NewReader(input))
	events := make([]Event, 0, n)
	for i := 0; i < n; i++ {
		ev, err := d.Next()
		if err != nil {
			t.Fatalf("Next() error: %v", err)
		}
		events = append(events, ev)
	}
	return events
}

func TestDecodePlainChar(t *testing.T) {
	evs := decodeAll(t, "a", 1)
	if evs[0].Type != EventChar || evs[0].Rune != 'a' {
		t.Fatalf("got %+v", evs[0])
	}
}

func TestDecodeControlKey(t *testing.T) {
	evs := decodeAll(t, "\x01", 1) // Ctrl-A
	if evs[0].Type != EventFn || evs[0].Name != FnCtrlA {
		t.Fatalf("got %+v", evs[0])
	}
}

func TestDecodeArrowKeys(t *testing.T) {
	evs := decodeAll(t, "\x1b[A\x1b[B\x1b[C\x1b[D", 4)
	want := []FnName{FnUp, FnDown, FnRight, FnLeft}
	for i, w := range want {
		if evs[i].Type != EventFn || evs[i].Name != w {
			t.Fatalf("event %d: got %+v, want %s", i, evs[i], w)
		}
	}
}

func TestDecodeDeleteTilde(t *testing.T) {
	evs := decodeAll(t, "\x1b[3~", 1)
	if evs[0].Name != FnDelete {
		t.Fatalf("got %+v", evs[0])
	}
}

func TestDecodeModifiedArrow(t *testing.T) {
	// Ctrl-Right: ESC[1;5C -> modifier param 5 = 1 + Ctrl(4)
	evs := decodeAll(t, "\x1b[1;5C", 1)
	if evs[0].Name != FnRight {
		t.Fatalf("got %+v", evs[0])
	}
	if evs[0].Mods&ModCtrl == 0 {
		t.Fatalf("expected ModCtrl set, got %v", evs[0].Mods)
	}
}

func TestDecodeUTF8Multibyte(t *testing.T) {
	evs := decodeAll(t, "中", 1)
	if evs[0].Type != EventChar || evs[0].Rune != '中' {
		t.Fatalf("got %+v", evs[0])
	}
}

func TestDecodeBracketedPaste(t *testing.T) {
	evs := decodeAll(t, "\x1b[200~hello\nworld\x1b[201~", 1)
	if evs[0].Type != EventPaste {
		t.Fatalf("got %+v", evs[0])
	}
	if string(evs[0].Paste) != "hello\nworld" {
		t.Fatalf("paste content = %q", evs[0].Paste)
	}
}

func TestDecodeSS3(t *testing.T) {
	evs := decodeAll(t, "\x1bOP", 1) // SS3 F1
	if evs[0].Name != FnF1 {
		t.Fatalf("got %+v", evs[0])
	}
}
