package components

import "testing"

func TestVisibleLen(t *testing.T) {
	tests := []struct {
		in   string
		want int
	}{
		{"", 0},
		{"hello", 5},
		{"\x1b[31mred\x1b[0m", 3},
		{"日本", 4},
		{"a\x1b[1mb\x1b[22mc", 3},
	}
	for _, tt := range tests {
		if got := VisibleLen(tt.in); got != tt.want {
			t.Errorf("VisibleLen(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("hello", 3); got != "hel" {
		t.Errorf("Truncate = %q, want %q", got, "hel")
	}
	if got := Truncate("hi", 5); got != "hi" {
		t.Errorf("Truncate short = %q, want unchanged", got)
	}
	if got := Truncate("hello", 0); got != "" {
		t.Errorf("Truncate width 0 = %q, want empty", got)
	}
}

func TestTruncateWithTail(t *testing.T) {
	if got := TruncateWithTail("abcdef", 4, "…"); got != "abc…" {
		t.Errorf("TruncateWithTail = %q, want %q", got, "abc…")
	}
	if got := TruncateWithTail("abc", 4, "…"); got != "abc" {
		t.Errorf("TruncateWithTail short = %q, want unchanged", got)
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("ab", 4); got != "ab  " {
		t.Errorf("PadRight = %q", got)
	}
	if got := PadRight("abcde", 4); got != "abcde" {
		t.Errorf("PadRight wide = %q, want unchanged", got)
	}
	if got := PadRight("\x1b[31mab\x1b[39m", 4); VisibleLen(got) != 4 {
		t.Errorf("PadRight ansi width = %d, want 4", VisibleLen(got))
	}
}

func TestPadLeft(t *testing.T) {
	if got := PadLeft("ab", 4); got != "  ab" {
		t.Errorf("PadLeft = %q", got)
	}
}

func TestPadCenter(t *testing.T) {
	if got := PadCenter("ab", 6); got != "  ab  " {
		t.Errorf("PadCenter even = %q", got)
	}
	if got := PadCenter("ab", 5); got != " ab  " {
		t.Errorf("PadCenter odd = %q, want extra space on the right", got)
	}
	if got := PadCenter("abcdef", 4); got != "abcdef" {
		t.Errorf("PadCenter wide = %q, want unchanged", got)
	}
}

func TestColor(t *testing.T) {
	if got := Color("#ff5500"); got != "\x1b[38;2;255;85;0m" {
		t.Errorf("Color = %q", got)
	}
	if got := Color(""); got != "" {
		t.Errorf("Color empty = %q, want empty", got)
	}
	if got := Color("#zzzzzz"); got != "" {
		t.Errorf("Color bad hex = %q, want empty", got)
	}
}

func TestBgColor(t *testing.T) {
	if got := BgColor("#001020"); got != "\x1b[48;2;0;16;32m" {
		t.Errorf("BgColor = %q", got)
	}
}

func TestBoldDim(t *testing.T) {
	if got := Bold("hi"); got != "\x1b[1mhi\x1b[22m" {
		t.Errorf("Bold = %q", got)
	}
	if got := Dim("hi"); got != "\x1b[2mhi\x1b[22m" {
		t.Errorf("Dim = %q", got)
	}
}

func TestReset(t *testing.T) {
	if got := Reset(); got != "\x1b[0m" {
		t.Errorf("Reset = %q", got)
	}
}
