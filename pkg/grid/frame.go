package grid

// Geometry describes the vertical space the grid may occupy, in terminal
// lines. The page size is derived from it rather than configured: the grid
// gets whatever fits between its top offset and the bottom of the
// viewport, minus the header, the pager, and any fixed chrome.
type Geometry struct {
	// ViewportHeight is the total terminal height.
	ViewportHeight int

	// TableTop is the number of lines above the grid's first header line.
	// Negative means the offset could not be measured, which triggers the
	// half-viewport fallback.
	TableTop int

	// HeaderHeight is the rendered height of the header block
	// (title row plus separator).
	HeaderHeight int

	// PagerHeight is the rendered height of the pager block, 0 when the
	// pager is absent.
	PagerHeight int

	// RowHeight is the measured height of one representative visible row.
	// Zero means no row was measurable this cycle; the controller then
	// retains its last known measurement.
	RowHeight int

	// BottomPadding is fixed space reserved below the grid.
	BottomPadding int

	// ExtraSpacing is additional chrome (margins, separators) subtracted
	// from the available space.
	ExtraSpacing int

	// MinFallbackHeight floors the half-viewport fallback used when
	// TableTop is unmeasurable.
	MinFallbackHeight int
}

// EmptyState distinguishes the two zero-row renders.
type EmptyState int

const (
	// EmptyNone means at least one row is visible.
	EmptyNone EmptyState = iota
	// EmptyNoRecords means the table has no rows at all.
	EmptyNoRecords
	// EmptyNoMatches means rows exist but the filter matched none.
	EmptyNoMatches
)

// Frame is the result of one render pass: which rows are visible and what
// the pager affordances should show. It is a pure value; the terminal
// renderer consumes it without touching controller state.
type Frame struct {
	// Visible holds indices into Rows() for the rows inside the current
	// page window, in display order.
	Visible []int

	// First and Last are the 1-based positions of the window within the
	// filtered set, and Total is the filtered row count, for
	// "Showing First-Last of Total" text. All zero when nothing matches.
	First, Last, Total int

	// Page and TotalPages describe the clamped page window.
	Page, TotalPages int

	// PageSize is the effective page size used (0 when paging is off).
	PageSize int

	// HasPrev and HasNext report whether an adjacent page exists.
	HasPrev, HasNext bool

	// PagerVisible is false when the unfiltered set already fits on one
	// page, so no pager block should be drawn at all.
	PagerVisible bool

	// Empty reports the zero-row state, if any.
	Empty EmptyState
}

// computePageSize derives the page size from the current geometry.
// Precedence: measured geometry, then the last known row height, then the
// configured default page size.
func (c *Controller) computePageSize() int {
	g := c.geom

	available := 0
	if g.TableTop >= 0 {
		available = g.ViewportHeight - g.TableTop - g.BottomPadding
	}
	if g.TableTop < 0 || available <= 0 {
		available = g.ViewportHeight / 2
		if available < g.MinFallbackHeight {
			available = g.MinFallbackHeight
		}
	}

	rowH := g.RowHeight
	if rowH <= 0 {
		rowH = c.lastRowHeight
	}
	if rowH <= 0 {
		return c.defaultPageSize
	}

	size := (available - g.HeaderHeight - g.PagerHeight - g.ExtraSpacing) / rowH
	if size < 1 {
		size = 1
	}
	if c.maxPageSize > 0 && size > c.maxPageSize {
		size = c.maxPageSize
	}
	return size
}

// render recomputes the frame from the three state variables and updates
// every row's pageHidden marker. It runs synchronously at the end of every
// effective command.
func (c *Controller) render() {
	c.renders++

	filtered := c.filteredIndices()
	total := len(filtered)

	frame := Frame{Total: total}

	if total == 0 {
		if len(c.rows) == 0 {
			frame.Empty = EmptyNoRecords
		} else {
			frame.Empty = EmptyNoMatches
		}
		c.page = 0
		for i := range c.rows {
			c.rows[i].pageHidden = false
		}
		frame.PageSize = c.pageSize
		c.frame = frame
		return
	}

	if !c.paged {
		frame.Visible = filtered
		frame.First = 1
		frame.Last = total
		frame.TotalPages = 1
		for i := range c.rows {
			c.rows[i].pageHidden = false
		}
		c.frame = frame
		return
	}

	if c.pageSize <= 0 {
		c.pageSize = c.computePageSize()
	}
	size := c.pageSize

	totalPages := (total + size - 1) / size
	if c.page >= totalPages {
		c.page = totalPages - 1
	}
	if c.page < 0 {
		c.page = 0
	}

	start := c.page * size
	end := start + size
	if end > total {
		end = total
	}

	window := make(map[int]bool, end-start)
	frame.Visible = filtered[start:end]
	for _, idx := range frame.Visible {
		window[idx] = true
	}
	for i := range c.rows {
		c.rows[i].pageHidden = !c.rows[i].filterHidden && !window[i]
	}

	frame.First = start + 1
	frame.Last = end
	frame.Page = c.page
	frame.TotalPages = totalPages
	frame.PageSize = size
	frame.HasPrev = c.page > 0
	frame.HasNext = c.page < totalPages-1
	// A pager over a set that fits on one page is noise; hide it unless
	// the unfiltered data actually spans pages.
	frame.PagerVisible = len(c.rows) > size

	c.frame = frame
}
