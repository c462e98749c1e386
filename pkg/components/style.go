package components

import (
	"fmt"
	"strconv"
	"strings"
)

// Color returns the true-color foreground escape for a "#RRGGBB" (or bare
// "RRGGBB") hex color, or "" when the value is empty or malformed.
func Color(hex string) string {
	return rgbSeq(38, hex)
}

// BgColor is Color for the background layer.
func BgColor(hex string) string {
	return rgbSeq(48, hex)
}

func rgbSeq(layer int, hex string) string {
	r, g, b, ok := parseHex(hex)
	if !ok {
		return ""
	}
	return fmt.Sprintf("\x1b[%d;2;%d;%d;%dm", layer, r, g, b)
}

// Bold and Dim wrap s in the SGR attribute and its shared normal-intensity
// terminator, so they can nest inside colored spans without resetting them.

func Bold(s string) string {
	return "\x1b[1m" + s + "\x1b[22m"
}

func Dim(s string) string {
	return "\x1b[2m" + s + "\x1b[22m"
}

// Reset clears all active styling.
func Reset() string {
	return "\x1b[0m"
}

func parseHex(hex string) (r, g, b uint8, ok bool) {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return 0, 0, 0, false
	}
	return uint8(v >> 16), uint8(v >> 8), uint8(v), true
}
