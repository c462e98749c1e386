package components

import (
	"fmt"
	"strings"
	"testing"
)

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

// gvStripANSI removes all ANSI CSI sequences from s.
func gvStripANSI(s string) string {
	var sb strings.Builder
	inEsc := false
	for _, r := range s {
		if inEsc {
			if r == 'm' {
				inEsc = false
			}
			continue
		}
		if r == '\x1b' {
			inEsc = true
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// gvContains checks that rendered output contains sub in visible text.
func gvContains(rendered, sub string) bool {
	return strings.Contains(gvStripANSI(rendered), sub)
}

// gvColumns returns a simple 3-column spec for testing.
func gvColumns() []ColumnSpec {
	return []ColumnSpec{
		{Title: "Name", Sizing: SizingFill(), Align: AlignLeft, Sortable: true},
		{Title: "Age", Sizing: SizingFixed(6), Align: AlignRight, Sortable: true},
		{Title: "City", Sizing: SizingFill(), Align: AlignLeft},
	}
}

// gvFrame wraps rows into a GridFrame with no pager and no selection.
func gvFrame(rows [][]string) GridFrame {
	return GridFrame{Rows: rows, SelectedRow: -1, Sort: SortMarker{Column: -1}}
}

func gvSampleRows() [][]string {
	return [][]string{
		{"Alice", "30", "New York"},
		{"Bob", "25", "London"},
	}
}

// ---------------------------------------------------------------------------
// Rendering
// ---------------------------------------------------------------------------

func TestGridViewHeaderAndRows(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{ShowBorder: true, HeaderBold: true})
	out := v.Render(gvFrame(gvSampleRows()), 40)

	for _, want := range []string{"Name", "Age", "City", "Alice", "Bob"} {
		if !gvContains(out, want) {
			t.Errorf("output should contain %q", want)
		}
	}
	if !strings.Contains(out, "\x1b[1m") {
		t.Error("bold header style should emit the bold sequence")
	}
}

func TestGridViewLineWidths(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{ShowBorder: true})
	out := v.Render(gvFrame(gvSampleRows()), 40)
	for i, line := range strings.Split(out, "\n") {
		if w := VisibleLen(line); w != 40 {
			t.Errorf("line %d: visible width %d, want 40", i, w)
		}
	}
}

func TestGridViewLineCount(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{})
	out := v.Render(gvFrame(gvSampleRows()), 40)
	// Header + separator + 2 rows, no pager.
	if got := strings.Count(out, "\n") + 1; got != 4 {
		t.Errorf("expected 4 lines, got %d", got)
	}
}

func TestGridViewSortIndicator(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{})
	frame := gvFrame(gvSampleRows())
	frame.Sort = SortMarker{Column: 1, Ascending: true}
	out := v.Render(frame, 40)
	if !gvContains(out, "Age ▲") {
		t.Errorf("ascending sort should mark the Age header, got:\n%s", gvStripANSI(out))
	}

	frame.Sort.Ascending = false
	out = v.Render(frame, 40)
	if !gvContains(out, "Age ▼") {
		t.Error("descending sort should flip the indicator")
	}
}

func TestGridViewEmptyState(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{EmptyFg: "#6b6b6b"})
	frame := gvFrame(nil)
	frame.EmptyText = "No matching records"
	out := v.Render(frame, 44)
	if !gvContains(out, "No matching records") {
		t.Error("empty frame should render the empty-state text")
	}
	if !strings.Contains(out, Color("#6b6b6b")) {
		t.Error("empty-state text should carry the configured color")
	}
	// Header + separator + 1 empty-state line.
	if got := strings.Count(out, "\n") + 1; got != 3 {
		t.Errorf("expected 3 lines, got %d", got)
	}
}

func TestGridViewPagerLine(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{PagerFg: "#9c9c9c"})
	frame := gvFrame(gvSampleRows())
	frame.Pager = PagerState{
		Visible:    true,
		InfoText:   "Showing 1-2 of 5",
		HasNext:    true,
		Page:       0,
		TotalPages: 3,
	}
	out := v.Render(frame, 60)
	if !gvContains(out, "Showing 1-2 of 5") {
		t.Error("pager should render the info text")
	}
	if !gvContains(out, "1/3") {
		t.Error("pager should render the page position")
	}
	// prev disabled on page 0: rendered dim.
	if !strings.Contains(out, "\x1b[2m") {
		t.Error("disabled prev affordance should be dimmed")
	}
	if !strings.Contains(out, Color("#9c9c9c")) {
		t.Error("pager line should carry the configured pager color")
	}
}

func TestGridViewMarkPager(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{PagerFg: "#ff0000"})
	v.MarkPager = func(text string, enabled bool) string {
		if !enabled {
			return "off(" + text + ")"
		}
		return "on(" + text + ")"
	}
	frame := gvFrame(gvSampleRows())
	frame.Pager = PagerState{
		Visible:    true,
		InfoText:   "Showing 1-2 of 5",
		HasNext:    true,
		Page:       0,
		TotalPages: 3,
	}
	out := v.Render(frame, 60)

	for _, want := range []string{"off(‹ prev)", "on(next ›)", "on(1/3)", "on(Showing 1-2 of 5)"} {
		if !strings.Contains(out, want) {
			t.Errorf("marked pager missing %q:\n%s", want, out)
		}
	}
	// The hook supersedes the style's pager color and dimming.
	if strings.Contains(out, Color("#ff0000")) || strings.Contains(out, "\x1b[2m") {
		t.Error("MarkPager should replace the PagerFg/Dim fallback")
	}
}

func TestGridViewPagerHidden(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{})
	out := v.Render(gvFrame(gvSampleRows()), 60)
	if gvContains(out, "prev") || gvContains(out, "next") {
		t.Error("pager must not render when not visible")
	}
}

func TestGridViewSelectedRowBackground(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{SelectedRowBg: "#ff0000"})
	frame := gvFrame(gvSampleRows())
	frame.SelectedRow = 1
	out := v.Render(frame, 40)
	if !strings.Contains(out, "\x1b[48;2;255;0;0m") {
		t.Error("selected row should carry the selection background")
	}
}

func TestGridViewZebraRows(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{EvenRowBg: "#111111", OddRowBg: "#222222"})
	out := v.Render(gvFrame(gvSampleRows()), 40)
	if !strings.Contains(out, "\x1b[48;2;17;17;17m") {
		t.Error("even rows should use the even background")
	}
	if !strings.Contains(out, "\x1b[48;2;34;34;34m") {
		t.Error("odd rows should use the odd background")
	}
}

func TestGridViewTruncatesLongCells(t *testing.T) {
	cols := []ColumnSpec{{Title: "Name", Sizing: SizingFixed(6), Align: AlignLeft}}
	v := NewGridView(cols, GridStyle{})
	out := v.Render(gvFrame([][]string{{"AVeryLongValue"}}), 6)
	if !gvContains(out, "…") {
		t.Error("long cells should truncate with ellipsis")
	}
}

func TestGridViewMarkHeader(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{})
	var marked []int
	v.MarkHeader = func(col int, cell string) string {
		marked = append(marked, col)
		return cell
	}
	v.Render(gvFrame(gvSampleRows()), 40)
	if len(marked) != 3 {
		t.Errorf("MarkHeader should run once per column, got %v", marked)
	}
}

func TestGridViewNarrowWidthDropsBorders(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{ShowBorder: true})
	out := v.Render(gvFrame(gvSampleRows()), 15)
	if gvContains(out, "│") {
		t.Error("narrow width should drop column separators")
	}
}

func TestGridViewZeroWidth(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{})
	if out := v.Render(gvFrame(gvSampleRows()), 0); out != "" {
		t.Error("zero width should produce empty output")
	}
}

// ---------------------------------------------------------------------------
// Width resolution
// ---------------------------------------------------------------------------

func TestResolveWidthsFixed(t *testing.T) {
	v := NewGridView([]ColumnSpec{
		{Title: "A", Sizing: SizingFixed(10)},
		{Title: "B", Sizing: SizingFixed(20)},
	}, GridStyle{ShowBorder: true})
	widths := v.resolveWidths(40)
	if widths[0] != 10 || widths[1] != 20 {
		t.Errorf("fixed widths = %v, want [10 20]", widths)
	}
}

func TestResolveWidthsPercent(t *testing.T) {
	v := NewGridView([]ColumnSpec{
		{Title: "A", Sizing: SizingPercent(50)},
		{Title: "B", Sizing: SizingPercent(50)},
	}, GridStyle{ShowBorder: true})
	// totalWidth=41 -> available = 40 after one separator.
	widths := v.resolveWidths(41)
	if widths[0] != 20 || widths[1] != 20 {
		t.Errorf("percent widths = %v, want [20 20]", widths)
	}
}

func TestResolveWidthsFillShareRemainder(t *testing.T) {
	v := NewGridView([]ColumnSpec{
		{Title: "A", Sizing: SizingFill()},
		{Title: "B", Sizing: SizingFill()},
		{Title: "C", Sizing: SizingFill()},
	}, GridStyle{})
	widths := v.resolveWidths(10)
	total := 0
	for _, w := range widths {
		total += w
	}
	if total != 10 {
		t.Errorf("fill columns should consume the full width, got %v", widths)
	}
}

func TestResolveWidthsMinWidthSteals(t *testing.T) {
	v := NewGridView([]ColumnSpec{
		{Title: "Narrow", Sizing: SizingFixed(3), MinWidth: 8},
		{Title: "Fill", Sizing: SizingFill()},
	}, GridStyle{ShowBorder: true})
	// totalWidth=40 -> available=39; fixed 3 -> min 8 steals 5 from fill.
	widths := v.resolveWidths(40)
	if widths[0] != 8 {
		t.Errorf("narrow column should reach min width 8, got %d", widths[0])
	}
	if widths[1] != 31 {
		t.Errorf("fill column should give up the deficit, got %d", widths[1])
	}
}

func TestResolveWidthsMixed(t *testing.T) {
	v := NewGridView([]ColumnSpec{
		{Title: "Fixed", Sizing: SizingFixed(10)},
		{Title: "Pct", Sizing: SizingPercent(25)},
		{Title: "Fill", Sizing: SizingFill()},
	}, GridStyle{ShowBorder: true})
	// totalWidth=50 -> available=48; fixed 10, pct 12, fill 26.
	widths := v.resolveWidths(50)
	want := []int{10, 12, 26}
	for i := range want {
		if widths[i] != want[i] {
			t.Errorf("widths = %v, want %v", widths, want)
			break
		}
	}
}

func TestSizingClamps(t *testing.T) {
	if s := SizingPercent(150); s.Value != 100 {
		t.Errorf("SizingPercent should clamp to 100, got %d", s.Value)
	}
	if s := SizingPercent(-5); s.Value != 0 {
		t.Errorf("SizingPercent should clamp to 0, got %d", s.Value)
	}
	if s := SizingFixed(-10); s.Value != 0 {
		t.Errorf("SizingFixed should clamp negative to 0, got %d", s.Value)
	}
}

func TestGridViewManyRows(t *testing.T) {
	v := NewGridView(gvColumns(), GridStyle{ShowBorder: true})
	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("Row%d", i), fmt.Sprintf("%d", i), "X"}
	}
	out := v.Render(gvFrame(rows), 60)
	if got := strings.Count(out, "\n") + 1; got != 52 {
		t.Errorf("expected 52 lines (header+sep+50 rows), got %d", got)
	}
}
