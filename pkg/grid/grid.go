// Package grid implements the state core of a filterable, sortable,
// paginated data grid. It is deliberately free of any rendering concern:
// a Controller owns the row snapshot and three independent pieces of state
// (filter term, sort order, page window) and recomputes a Frame — the set
// of visible row indices plus pager affordances — synchronously on every
// applied command. Rendering is a thin adapter on top (see pkg/components
// and pkg/tui).
package grid

import "strings"

// ColumnKind declares how a column's cell values are compared during sort.
type ColumnKind int

const (
	// KindString compares lower-cased cell text.
	KindString ColumnKind = iota
	// KindNumber parses cells as floats; unparseable cells sort first
	// in ascending order.
	KindNumber
	// KindDate parses cells as timestamps; unparseable cells sort first
	// in ascending order.
	KindDate
)

// SortDirection is the direction of an active column sort.
type SortDirection int

const (
	// Ascending orders rows smallest-first.
	Ascending SortDirection = iota
	// Descending orders rows largest-first.
	Descending
)

// Column describes one column of the grid.
type Column struct {
	Title    string
	Kind     ColumnKind
	Sortable bool
}

// Row is a single data row. Cells holds the display text per column;
// SortValues optionally overrides the comparison value per column (an
// empty override falls back to the cell text). The two hidden flags record
// why a row is not currently displayed: a row is visible iff it is neither
// filter-hidden nor page-hidden.
type Row struct {
	ID         string
	Cells      []string
	SortValues []string

	filterHidden bool
	pageHidden   bool
}

// Visible reports whether the row is currently displayed.
func (r *Row) Visible() bool {
	return !r.filterHidden && !r.pageHidden
}

// FilterHidden reports whether the row is hidden by the active filter term.
func (r *Row) FilterHidden() bool { return r.filterHidden }

// PageHidden reports whether the row is outside the current page window.
func (r *Row) PageHidden() bool { return r.pageHidden }

// compareValue returns the value used for sort and filter comparison in
// column col: the SortValues override when present and non-empty, the cell
// text otherwise.
func (r *Row) compareValue(col int) string {
	if col < len(r.SortValues) && r.SortValues[col] != "" {
		return r.SortValues[col]
	}
	if col < len(r.Cells) {
		return r.Cells[col]
	}
	return ""
}

// matchText returns the concatenated lower-cased comparison text of the
// row, used for substring filter matching.
func (r *Row) matchText(columns int) string {
	n := len(r.Cells)
	if columns > n {
		n = columns
	}
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(r.compareValue(i))
	}
	return strings.ToLower(sb.String())
}

// Options configures a Controller at construction time.
type Options struct {
	// Paged enables the page window. When false the controller still
	// filters and sorts but shows every matching row.
	Paged bool

	// DefaultPageSize is used when the row height has never been
	// measurable, so no geometry-derived page size exists. Zero means 10.
	DefaultPageSize int

	// MaxPageSize caps the computed page size. Zero means no cap.
	MaxPageSize int
}

// Controller owns the grid state for exactly one table of rows. It is not
// safe for concurrent use; in the TUI all commands arrive serialized
// through the bubbletea update loop.
type Controller struct {
	columns []Column
	rows    []Row

	filterTerm string
	sortCol    int // -1 when no column sort is active
	sortDir    SortDirection

	paged           bool
	page            int
	pageSize        int // 0 until first geometry computation
	defaultPageSize int
	maxPageSize     int

	geom          Geometry
	haveGeom      bool
	lastRowHeight int

	frame   Frame
	renders int
}

// NewController builds a controller over the given columns and the current
// row snapshot, and renders once. Rows added or removed externally later
// require an explicit RefreshRows command.
func NewController(columns []Column, rows []Row, opts Options) *Controller {
	dps := opts.DefaultPageSize
	if dps <= 0 {
		dps = 10
	}
	c := &Controller{
		columns:         columns,
		rows:            rows,
		sortCol:         -1,
		paged:           opts.Paged,
		defaultPageSize: dps,
		maxPageSize:     opts.MaxPageSize,
	}
	c.applyFilter()
	c.render()
	return c
}

// Columns returns the column definitions.
func (c *Controller) Columns() []Column { return c.columns }

// Rows returns the row snapshot in its current (possibly sorted) order.
// The returned slice is the controller's own storage; callers must not
// reorder it.
func (c *Controller) Rows() []Row { return c.rows }

// FilterTerm returns the active normalized filter term ("" when inactive).
func (c *Controller) FilterTerm() string { return c.filterTerm }

// Sort returns the active sort column index (-1 when unsorted) and its
// direction.
func (c *Controller) Sort() (int, SortDirection) { return c.sortCol, c.sortDir }

// Frame returns the most recently computed frame.
func (c *Controller) Frame() Frame { return c.frame }

// Renders returns how many frame recomputations have run. Tests use this
// to assert that a single user action triggers exactly one render pass.
func (c *Controller) Renders() int { return c.renders }

// normalizeTerm trims and lower-cases a raw filter input value.
func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// applyFilter recomputes every row's filterHidden flag from the current
// term. An empty term marks all rows as matching.
func (c *Controller) applyFilter() {
	if c.filterTerm == "" {
		for i := range c.rows {
			c.rows[i].filterHidden = false
		}
		return
	}
	cols := len(c.columns)
	for i := range c.rows {
		c.rows[i].filterHidden = !strings.Contains(c.rows[i].matchText(cols), c.filterTerm)
	}
}

// filteredIndices returns the indices of rows not hidden by the filter, in
// snapshot order.
func (c *Controller) filteredIndices() []int {
	out := make([]int, 0, len(c.rows))
	for i := range c.rows {
		if !c.rows[i].filterHidden {
			out = append(out, i)
		}
	}
	return out
}
