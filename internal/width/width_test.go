package width

import "testing"

func TestRuneWidths(t *testing.T) {
	cases := []struct {
		r    rune
		want int
	}{
		{'a', 1},
		{'́', 0},  // combining acute accent
		{'中', 2},  // CJK "middle"
		{'​', 0},  // zero width space
	}
	for _, c := range cases {
		if got := Rune(c.r); got != c.want {
			t.Errorf("Rune(%q) = %d, want %d", c.r, got, c.want)
		}
	}
}

func TestStringIgnoresANSI(t *testing.T) {
	s := "\x1b[31mhi\x1b[0m"
	if got := String(s); got != 2 {
		t.Errorf("String(%q) = %d, want 2", s, got)
	}
}

func TestStripANSI(t *testing.T) {
	s := "\x1b[1;31mred\x1b[0m plain"
	want := "red plain"
	if got := StripANSI(s); got != want {
		t.Errorf("StripANSI(%q) = %q, want %q", s, got, want)
	}
}

func TestAtColumnExpandsTabs(t *testing.T) {
	if got := AtColumn("\t", 0); got != TabStop {
		t.Errorf("AtColumn(tab, 0) = %d, want %d", got, TabStop)
	}
	if got := AtColumn("\t", 3); got != TabStop {
		t.Errorf("AtColumn(tab, 3) = %d, want %d", got, TabStop)
	}
}

func TestStringCombiningMark(t *testing.T) {
	// "e" + combining acute should measure as a single width-1 cluster.
	s := "é"
	if got := String(s); got != 1 {
		t.Errorf("String(%q) = %d, want 1", s, got)
	}
}
