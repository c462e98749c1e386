package components

import (
	"fmt"
	"strings"
)

// ---------------------------------------------------------------------------
// Column sizing
// ---------------------------------------------------------------------------

// SizingKind discriminates the three column sizing strategies.
type SizingKind int

const (
	sizingFixed   SizingKind = iota
	sizingPercent            // percentage of total width
	sizingFill               // takes remaining space
)

// ColumnSizing describes how a column's width is computed.
type ColumnSizing struct {
	Kind  SizingKind
	Value int // width for Fixed, percentage 1-100 for Percent, unused for Fill
}

// SizingFixed returns a ColumnSizing that allocates exactly width characters.
func SizingFixed(width int) ColumnSizing {
	if width < 0 {
		width = 0
	}
	return ColumnSizing{Kind: sizingFixed, Value: width}
}

// SizingPercent returns a ColumnSizing that allocates pct% of available width.
func SizingPercent(pct int) ColumnSizing {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return ColumnSizing{Kind: sizingPercent, Value: pct}
}

// SizingFill returns a ColumnSizing that shares remaining space equally with
// other Fill columns.
func SizingFill() ColumnSizing {
	return ColumnSizing{Kind: sizingFill}
}

// ---------------------------------------------------------------------------
// Grid view configuration
// ---------------------------------------------------------------------------

// ColumnSpec is the rendering contract for one grid column.
type ColumnSpec struct {
	Title    string
	Sizing   ColumnSizing
	Align    Align
	MinWidth int
	Sortable bool
}

// GridStyle controls the visual appearance of a rendered grid.
type GridStyle struct {
	HeaderBold    bool
	HeaderFg      string // hex "#RRGGBB"
	HeaderBg      string // hex "#RRGGBB"
	EvenRowBg     string
	OddRowBg      string
	SelectedRowBg string
	PagerFg       string
	EmptyFg       string
	ShowBorder    bool
	BorderChar    string
	HeaderSepChar string
}

// SortMarker describes the active sort for header decoration.
type SortMarker struct {
	Column    int // -1 when no sort is active
	Ascending bool
}

// PagerState is the pager block as computed by the grid controller.
type PagerState struct {
	Visible    bool
	InfoText   string // "Showing 1-10 of 42"
	HasPrev    bool
	HasNext    bool
	Page       int
	TotalPages int
}

// GridFrame is everything the view needs to draw one frame: the visible
// page window (already filtered, sorted, and windowed by the controller),
// the sort marker, the pager, and the empty-state message when no rows are
// visible.
type GridFrame struct {
	Rows        [][]string
	SelectedRow int // index into Rows, -1 for none
	Sort        SortMarker
	Pager       PagerState
	EmptyText   string // rendered centered when Rows is empty
}

// GridView renders controller frames as fixed-width terminal text. It holds
// only presentation config; all row visibility decisions live upstream in
// the controller.
type GridView struct {
	columns []ColumnSpec
	style   GridStyle

	// MarkHeader, when set, wraps each rendered header cell. The TUI uses
	// this to register mouse hit zones for click-to-sort.
	MarkHeader func(col int, cell string) string

	// MarkCell, when set, decorates each padded data cell. Decorations
	// must be zero-width (ANSI only); the TUI uses this to highlight
	// filter matches.
	MarkCell func(cell string) string

	// MarkPager, when set, styles each pager segment; enabled is false
	// for a nav label with no page in that direction. Overrides the
	// PagerFg/Dim defaults.
	MarkPager func(text string, enabled bool) string
}

// NewGridView creates a GridView over the given column specs.
func NewGridView(columns []ColumnSpec, style GridStyle) *GridView {
	if style.BorderChar == "" {
		style.BorderChar = "│"
	}
	if style.HeaderSepChar == "" {
		style.HeaderSepChar = "─"
	}
	return &GridView{columns: columns, style: style}
}

// HeaderHeight returns the number of lines the header block occupies.
func (v *GridView) HeaderHeight() int { return 2 }

// PagerHeight returns the number of lines the pager block occupies when
// visible.
func (v *GridView) PagerHeight() int { return 1 }

// Render draws the frame at the given width. Each output line is exactly
// width visible cells; the line count is header + rows (or one empty-state
// line) + optional pager.
func (v *GridView) Render(frame GridFrame, width int) string {
	if width <= 0 {
		return ""
	}

	colWidths := v.resolveWidths(width)

	lines := []string{
		v.renderHeader(frame.Sort, colWidths, width),
		v.renderSeparator(colWidths, width),
	}

	if len(frame.Rows) == 0 {
		empty := frame.EmptyText
		if VisibleLen(empty) > width {
			empty = TruncateWithTail(empty, width, "…")
		}
		if v.style.EmptyFg != "" {
			empty = Color(v.style.EmptyFg) + empty + Reset()
		}
		lines = append(lines, PadCenter(empty, width))
	}

	for i, cells := range frame.Rows {
		lines = append(lines, v.renderRow(cells, i, i == frame.SelectedRow, colWidths, width))
	}

	if frame.Pager.Visible {
		lines = append(lines, v.renderPager(frame.Pager, width))
	}

	return strings.Join(lines, "\n")
}

// ---------------------------------------------------------------------------
// Header and separator
// ---------------------------------------------------------------------------

// sort indicator glyphs appended to the sorted column's title.
const (
	sortAscGlyph  = "▲"
	sortDescGlyph = "▼"
)

func (v *GridView) renderHeader(sort SortMarker, colWidths []int, totalWidth int) string {
	var sb strings.Builder
	prefix := BgColor(v.style.HeaderBg) + Color(v.style.HeaderFg)
	if v.style.HeaderBold {
		prefix += "\x1b[1m"
	}

	usedWidth := 0
	for i, col := range v.columns {
		if i >= len(colWidths) {
			break
		}
		w := colWidths[i]
		if w <= 0 {
			continue
		}
		if i > 0 && v.borderActive(totalWidth) {
			sb.WriteString(prefix)
			sb.WriteString(v.style.BorderChar)
			usedWidth++
		}

		title := col.Title
		if i == sort.Column {
			glyph := sortAscGlyph
			if !sort.Ascending {
				glyph = sortDescGlyph
			}
			title += " " + glyph
		}
		title = TruncateWithTail(title, w, "…")
		title = padAligned(title, w, col.Align)

		cell := prefix + title
		if v.MarkHeader != nil {
			cell = v.MarkHeader(i, cell)
		}
		sb.WriteString(cell)
		usedWidth += w
	}
	sb.WriteString(Reset())

	if usedWidth < totalWidth {
		sb.WriteString(strings.Repeat(" ", totalWidth-usedWidth))
	}
	return sb.String()
}

func (v *GridView) renderSeparator(colWidths []int, totalWidth int) string {
	var sb strings.Builder
	usedWidth := 0
	for i, w := range colWidths {
		if w <= 0 {
			continue
		}
		if i > 0 && v.borderActive(totalWidth) {
			sb.WriteString("┼")
			usedWidth++
		}
		sb.WriteString(strings.Repeat(v.style.HeaderSepChar, w))
		usedWidth += w
	}
	if usedWidth < totalWidth {
		sb.WriteString(strings.Repeat(v.style.HeaderSepChar, totalWidth-usedWidth))
	}
	line := sb.String()
	if VisibleLen(line) > totalWidth {
		line = Truncate(line, totalWidth)
	}
	return line
}

// ---------------------------------------------------------------------------
// Data rows
// ---------------------------------------------------------------------------

func (v *GridView) renderRow(cells []string, rowIndex int, selected bool, colWidths []int, totalWidth int) string {
	var sb strings.Builder

	bgSeq := ""
	switch {
	case selected:
		bgSeq = BgColor(v.style.SelectedRowBg)
	case rowIndex%2 == 0:
		bgSeq = BgColor(v.style.EvenRowBg)
	default:
		bgSeq = BgColor(v.style.OddRowBg)
	}

	usedWidth := 0
	for i, col := range v.columns {
		if i >= len(colWidths) {
			break
		}
		w := colWidths[i]
		if w <= 0 {
			continue
		}
		if i > 0 && v.borderActive(totalWidth) {
			sb.WriteString(bgSeq)
			sb.WriteString(v.style.BorderChar)
			usedWidth++
		}
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cell = TruncateWithTail(cell, w, "…")
		cell = padAligned(cell, w, col.Align)
		if v.MarkCell != nil {
			cell = v.MarkCell(cell)
		}
		sb.WriteString(bgSeq)
		sb.WriteString(cell)
		usedWidth += w
	}

	if usedWidth < totalWidth {
		sb.WriteString(bgSeq)
		sb.WriteString(strings.Repeat(" ", totalWidth-usedWidth))
	}
	sb.WriteString(Reset())
	return sb.String()
}

// ---------------------------------------------------------------------------
// Pager
// ---------------------------------------------------------------------------

func (v *GridView) renderPager(p PagerState, width int) string {
	prev := "‹ prev"
	next := "next ›"
	pages := fmt.Sprintf("%d/%d", p.Page+1, p.TotalPages)

	var line string
	if v.MarkPager != nil {
		line = v.MarkPager(prev, p.HasPrev) + "  " +
			v.MarkPager(pages, true) + "  " +
			v.MarkPager(next, p.HasNext) + "   " +
			v.MarkPager(p.InfoText, true)
	} else {
		if !p.HasPrev {
			prev = Dim(prev)
		}
		if !p.HasNext {
			next = Dim(next)
		}
		line = prev + "  " + pages + "  " + next + "   " + p.InfoText
		if v.style.PagerFg != "" {
			line = Color(v.style.PagerFg) + line + Reset()
		}
	}
	if VisibleLen(line) > width {
		line = TruncateWithTail(line, width, "…")
	}
	return PadRight(line, width)
}

// ---------------------------------------------------------------------------
// Width resolution
// ---------------------------------------------------------------------------

// borderActive reports whether column separators are drawn at this width.
// Very narrow grids drop separators to save cells.
func (v *GridView) borderActive(totalWidth int) bool {
	return v.style.ShowBorder && totalWidth >= 20
}

// resolveWidths allocates the total width across columns: fixed columns
// first, then percentage columns, then fill columns share the remainder,
// with min-width enforcement stealing from fill columns and a final
// truncation pass when the total overflows.
func (v *GridView) resolveWidths(totalWidth int) []int {
	n := len(v.columns)
	if n == 0 {
		return nil
	}

	widths := make([]int, n)

	sepOverhead := 0
	if v.borderActive(totalWidth) {
		sepOverhead = n - 1
	}
	available := totalWidth - sepOverhead
	if available < 0 {
		available = 0
	}

	remaining := available
	for i, col := range v.columns {
		if col.Sizing.Kind == sizingFixed {
			w := col.Sizing.Value
			if w > remaining {
				w = remaining
			}
			widths[i] = w
			remaining -= w
		}
	}

	for i, col := range v.columns {
		if col.Sizing.Kind == sizingPercent {
			w := (available * col.Sizing.Value) / 100
			if w > remaining {
				w = remaining
			}
			widths[i] = w
			remaining -= w
		}
	}

	fillCount := 0
	for _, col := range v.columns {
		if col.Sizing.Kind == sizingFill {
			fillCount++
		}
	}
	if fillCount > 0 && remaining > 0 {
		each := remaining / fillCount
		extra := remaining % fillCount
		filled := 0
		for i, col := range v.columns {
			if col.Sizing.Kind == sizingFill {
				w := each
				if filled < extra {
					w++
				}
				widths[i] = w
				filled++
			}
		}
	}

	// Enforce MinWidth, stealing from fill columns right to left.
	for i, col := range v.columns {
		if col.MinWidth > 0 && widths[i] < col.MinWidth {
			deficit := col.MinWidth - widths[i]
			widths[i] = col.MinWidth
			for j := n - 1; j >= 0 && deficit > 0; j-- {
				if j == i || v.columns[j].Sizing.Kind != sizingFill {
					continue
				}
				canSteal := widths[j] - v.columns[j].MinWidth
				if canSteal <= 0 {
					continue
				}
				steal := deficit
				if steal > canSteal {
					steal = canSteal
				}
				widths[j] -= steal
				deficit -= steal
			}
		}
	}

	// Truncate rightmost fill columns when the total still overflows.
	totalUsed := 0
	for _, w := range widths {
		totalUsed += w
	}
	if totalUsed > available {
		excess := totalUsed - available
		for i := n - 1; i >= 0 && excess > 0; i-- {
			if v.columns[i].Sizing.Kind != sizingFill {
				continue
			}
			canCut := widths[i] - v.columns[i].MinWidth
			if canCut <= 0 {
				continue
			}
			cut := excess
			if cut > canCut {
				cut = canCut
			}
			widths[i] -= cut
			excess -= cut
		}
	}

	return widths
}

// padAligned pads s to width according to align.
func padAligned(s string, width int, align Align) string {
	switch align {
	case AlignRight:
		return PadLeft(s, width)
	case AlignCenter:
		return PadCenter(s, width)
	default:
		return PadRight(s, width)
	}
}
