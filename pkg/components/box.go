package components

import "strings"

// BorderStyle selects the box-drawing character set for RenderBox.
type BorderStyle int

const (
	// BorderSingle draws single-line box characters.
	BorderSingle BorderStyle = iota
	// BorderRounded is BorderSingle with rounded corners.
	BorderRounded
)

// boxChars is the four corners plus the two edge characters of a border.
type boxChars struct {
	tl, tr, bl, br string
	h, v           string
}

func (b BorderStyle) chars() boxChars {
	if b == BorderRounded {
		return boxChars{tl: "╭", tr: "╮", bl: "╰", br: "╯", h: "─", v: "│"}
	}
	return boxChars{tl: "┌", tr: "┐", bl: "└", br: "┘", h: "─", v: "│"}
}

// BoxStyle controls the border character set, the title embedded in the
// top edge, and the border color.
type BoxStyle struct {
	Border     BorderStyle
	Title      string
	TitleAlign Align
	FG         string // hex "#RRGGBB"; empty leaves the border unstyled
}

// RenderBox draws content inside a bordered box of exactly width x height
// cells. Content lines are truncated or padded to the interior width;
// missing lines render blank. Returns "" when the box cannot hold its own
// borders.
func RenderBox(content string, width, height int, style BoxStyle) string {
	if width < 2 || height < 2 {
		return ""
	}

	ch := style.Border.chars()
	pre := Color(style.FG)
	suf := ""
	if pre != "" {
		// Foreground-only terminator so box interiors keep their own styling.
		suf = "\x1b[39m"
	}
	frame := func(s string) string { return pre + s + suf }

	inner := width - 2
	body := strings.Split(content, "\n")

	lines := make([]string, 0, height)
	lines = append(lines, frame(ch.tl)+boxTitleBar(style.Title, style.TitleAlign, inner, ch.h, frame)+frame(ch.tr))
	for i := 0; i < height-2; i++ {
		row := ""
		if i < len(body) {
			row = Truncate(body[i], inner)
		}
		lines = append(lines, frame(ch.v)+PadRight(row, inner)+frame(ch.v))
	}
	lines = append(lines, frame(ch.bl+strings.Repeat(ch.h, inner)+ch.br))
	return strings.Join(lines, "\n")
}

// boxTitleBar fills the top edge with horizontal characters, embedding
// " title " when the bar is wide enough for the title plus an edge
// character and a space on each side. A bar too narrow drops the title.
func boxTitleBar(title string, align Align, barWidth int, h string, frame func(string) string) string {
	if title == "" || barWidth < VisibleLen(title)+4 {
		return frame(strings.Repeat(h, barWidth))
	}

	seg := " " + title + " "
	rest := barWidth - VisibleLen(seg)

	var left int
	switch align {
	case AlignRight:
		left = rest - 1
	case AlignCenter:
		left = rest / 2
	default:
		left = 1
	}
	right := rest - left

	return frame(strings.Repeat(h, left)) + seg + frame(strings.Repeat(h, right))
}
