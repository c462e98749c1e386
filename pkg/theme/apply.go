package theme

import (
	"fmt"
	"strings"
)

// Colorize wraps text in ANSI true-color foreground escape sequences using
// the given hex color. The terminator restores only the default foreground,
// so an active background (zebra rows, selection) survives the wrap.
// Returns text unchanged if hexColor is empty or invalid.
func Colorize(text, hexColor string) string {
	if hexColor == "" {
		return text
	}
	r, g, b, ok := thParseHex(hexColor)
	if !ok {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[39m", r, g, b, text)
}

// ApplyPager colors pager text, dimming controls that have no adjacent page.
func ApplyPager(text string, t Theme, enabled bool) string {
	if enabled {
		return Colorize(text, t.PagerFg)
	}
	return Colorize(text, t.PagerDisabled)
}

// ApplyEmpty colors empty-state text ("No records", "No matching records").
func ApplyEmpty(text string, t Theme) string {
	return Colorize(text, t.EmptyText)
}

// HighlightMatches highlights every case-insensitive occurrence of term in
// text using the theme's filter highlight color. An empty term returns text
// unchanged. Matching is byte-wise on the lowercase forms, so the original
// casing of the matched substrings is preserved in the output.
func HighlightMatches(text, term string, t Theme) string {
	if term == "" {
		return text
	}
	lower := strings.ToLower(text)
	needle := strings.ToLower(term)
	if len(lower) != len(text) {
		// Case folding changed byte offsets; skip highlighting rather
		// than slice at the wrong boundaries.
		return text
	}

	var b strings.Builder
	for i := 0; i < len(text); {
		j := strings.Index(lower[i:], needle)
		if j < 0 {
			b.WriteString(text[i:])
			break
		}
		b.WriteString(text[i : i+j])
		b.WriteString(Colorize(text[i+j:i+j+len(needle)], t.FilterHighlight))
		i += j + len(needle)
	}
	return b.String()
}
