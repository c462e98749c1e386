package components

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// All width arguments below are terminal cells: ANSI escape sequences
// count zero, wide runes (CJK, emoji) count two.

// VisibleLen measures s in terminal cells.
func VisibleLen(s string) int {
	return ansi.StringWidth(s)
}

// Truncate cuts s down to at most width cells, keeping escape sequences
// ahead of the cut intact.
func Truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, "")
}

// TruncateWithTail cuts s down to at most width cells, marking the cut
// with tail (e.g. "…"). The tail counts toward width.
func TruncateWithTail(s string, width int, tail string) string {
	if width <= 0 {
		return ""
	}
	return ansi.Truncate(s, width, tail)
}

// PadRight extends s with trailing spaces to exactly width cells. Wider
// input comes back unchanged.
func PadRight(s string, width int) string {
	if n := width - VisibleLen(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

// PadLeft extends s with leading spaces to exactly width cells.
func PadLeft(s string, width int) string {
	if n := width - VisibleLen(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// PadCenter centers s within width cells; an odd remainder leaves the
// extra space on the right.
func PadCenter(s string, width int) string {
	n := width - VisibleLen(s)
	if n <= 0 {
		return s
	}
	left := n / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", n-left)
}
