package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"gitlab.com/tinyland/lab/gridline/pkg/components"
	"gitlab.com/tinyland/lab/gridline/pkg/grid"
	"gitlab.com/tinyland/lab/gridline/pkg/theme"
)

// Empty-state messages for the two zero-row frames.
const (
	emptyNoRecords = "No records available"
	emptyNoMatches = "No matching records"
)

// View implements tea.Model. The layout is a title line, the grid frame
// (header, page window, pager), and a one-line bottom bar whose content
// depends on the input mode.
func (m Model) View() string {
	if m.width <= 0 || m.height <= 0 {
		return ""
	}

	sections := []string{
		m.renderTitle(m.width),
		m.view.Render(m.gridFrame(), m.width),
		m.renderBottomBar(m.width),
	}
	out := strings.Join(sections, "\n")

	if m.mode == modeHelp {
		out = m.overlayHelp(out)
	}
	if m.zones != nil {
		out = m.zones.Scan(out)
	}
	return out
}

// gridFrame converts the controller's frame into the renderer's input.
func (m Model) gridFrame() components.GridFrame {
	f := m.ctrl.Frame()
	rows := m.ctrl.Rows()

	cells := make([][]string, len(f.Visible))
	for i, idx := range f.Visible {
		cells[i] = rows[idx].Cells
	}

	sortCol, sortDir := m.ctrl.Sort()

	var empty string
	switch f.Empty {
	case grid.EmptyNoRecords:
		empty = emptyNoRecords
	case grid.EmptyNoMatches:
		empty = emptyNoMatches
	}
	if empty != "" {
		empty = theme.ApplyEmpty(empty, m.th)
	}

	return components.GridFrame{
		Rows:        cells,
		SelectedRow: m.selected,
		Sort: components.SortMarker{
			Column:    sortCol,
			Ascending: sortDir == grid.Ascending,
		},
		Pager: components.PagerState{
			Visible:    f.PagerVisible,
			InfoText:   m.pagerInfo(f),
			HasPrev:    f.HasPrev,
			HasNext:    f.HasNext,
			Page:       f.Page,
			TotalPages: f.TotalPages,
		},
		EmptyText: empty,
	}
}

// pagerInfo builds the "Showing A-B of N" text plus the page-dot strip.
func (m Model) pagerInfo(f grid.Frame) string {
	if f.Total == 0 {
		return ""
	}
	info := fmt.Sprintf("Showing %d-%d of %d", f.First, f.Last, f.Total)
	if f.TotalPages > 1 && f.TotalPages <= 12 {
		info += "  " + m.pager.View()
	}
	return info
}

// renderTitle renders the dataset name and, when a filter is active, the
// current term with its match count.
func (m Model) renderTitle(width int) string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(m.th.Accent))

	line := titleStyle.Render(m.title)
	if term := m.ctrl.FilterTerm(); term != "" {
		filterStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(m.th.Dim))
		line += filterStyle.Render(fmt.Sprintf("  filter:%q (%d)", term, m.ctrl.Frame().Total))
	}

	return components.PadRight(components.Truncate(line, width), width)
}

// renderBottomBar renders the last terminal line: the filter input, the
// go-to-page prompt, or the key-hint status bar.
func (m Model) renderBottomBar(width int) string {
	switch m.mode {
	case modeFilter:
		return components.PadRight(components.Truncate(m.filterInput.View(), width), width)
	case modeGoto:
		return m.renderGotoPrompt(width)
	default:
		return m.renderStatusBar(width)
	}
}

// renderGotoPrompt renders the two-field prompt: page number and the
// second bound filter input. Tab swaps focus between them.
func (m Model) renderGotoPrompt(width int) string {
	line := m.pageInput.View() + "   " + m.gotoFilter.View() + "   (tab to switch, enter to jump)"
	return components.PadRight(components.Truncate(line, width), width)
}

// renderStatusBar renders a one-line status bar with key hints, prefixed
// by a transient status message when one is set. It pads or truncates to
// exactly width characters.
func (m Model) renderStatusBar(width int) string {
	if width <= 0 {
		return ""
	}

	hints := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		hints = m.status + "  |  " + hints
	}

	return components.PadRight(components.Truncate(hints, width), width)
}

// overlayHelp composites the full help box centered over the base view
// using a character buffer.
func (m Model) overlayHelp(base string) string {
	helpBody := m.help.FullHelpView(m.keys.FullHelp())

	boxW := components.VisibleLen(strings.Split(helpBody, "\n")[0]) + 6
	if boxW > m.width {
		boxW = m.width
	}
	boxH := strings.Count(helpBody, "\n") + 3
	if boxH > m.height {
		boxH = m.height
	}

	box := components.RenderBox(helpBody, boxW, boxH, components.BoxStyle{
		Border:     components.BorderRounded,
		Title:      "Keys",
		TitleAlign: components.AlignLeft,
		FG:         m.th.Accent,
	})

	buf := tuiNewBuffer(m.width, m.height)
	tuiBlitToBuffer(buf, base, 0, 0, m.width, m.height)
	tuiBlitToBuffer(buf, box, (m.width-boxW)/2, (m.height-boxH)/2, m.width, m.height)
	return tuiBufferToString(buf)
}

// tuiNewBuffer creates a 2D grid of spaces with the given dimensions.
func tuiNewBuffer(width, height int) [][]rune {
	buf := make([][]rune, height)
	for y := 0; y < height; y++ {
		row := make([]rune, width)
		for x := 0; x < width; x++ {
			row[x] = ' '
		}
		buf[y] = row
	}
	return buf
}

// tuiBlitToBuffer writes a rendered multi-line string into the character
// buffer at position (x, y), clipping to the buffer boundaries. ANSI
// sequences are stripped during the blit; the overlay is monochrome by
// construction.
func tuiBlitToBuffer(buf [][]rune, rendered string, x, y, bufW, bufH int) {
	lines := strings.Split(rendered, "\n")
	for dy, line := range lines {
		ry := y + dy
		if ry < 0 || ry >= bufH {
			continue
		}
		runes := []rune(ansi.Strip(line))
		for dx, ch := range runes {
			rx := x + dx
			if rx < 0 || rx >= bufW {
				continue
			}
			buf[ry][rx] = ch
		}
	}
}

// tuiBufferToString converts the 2D character buffer to a single string
// with newline separators between rows.
func tuiBufferToString(buf [][]rune) string {
	lines := make([]string, len(buf))
	for i, row := range buf {
		lines[i] = string(row)
	}
	return strings.Join(lines, "\n")
}
