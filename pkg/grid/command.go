package grid

// The controller mutates only through commands. Each user action becomes a
// discrete command applied by Apply, which runs the state transition and a
// single frame recomputation. This keeps the control flow traceable and
// lets tests replay exact command sequences.

// Command is a state transition request for a Controller.
type Command interface {
	isCommand()
}

// SetFilter installs a filter term. The term is normalized (trimmed,
// lower-cased) before comparison; matching is case-insensitive substring
// over a row's concatenated comparison text. A changed term resets the
// page to 0.
type SetFilter struct {
	Term string
}

// SortColumn activates a column sort. Sorting the already-active column
// toggles direction; a new column starts ascending. Non-sortable columns
// are ignored.
type SortColumn struct {
	Column int
}

// NextPage advances the page window by one page.
type NextPage struct{}

// PrevPage moves the page window back one page.
type PrevPage struct{}

// SetPage jumps to a specific zero-based page. The value is clamped into
// the valid range during rendering.
type SetPage struct {
	Page int
}

// Resize installs new viewport geometry. A geometry change that produces a
// different page size resets the page to 0.
type Resize struct {
	Geometry Geometry
}

// RefreshRows replaces the row snapshot with the live row list after
// external additions or removals, reapplies the current filter, and
// re-renders. The page index is clamped, not reset.
type RefreshRows struct {
	Rows []Row
}

func (SetFilter) isCommand()   {}
func (SortColumn) isCommand()  {}
func (NextPage) isCommand()    {}
func (PrevPage) isCommand()    {}
func (SetPage) isCommand()     {}
func (Resize) isCommand()      {}
func (RefreshRows) isCommand() {}

// Apply runs cmd against the controller state and recomputes the frame.
// It returns false when the command was a no-op (same filter term, sort on
// a non-sortable column, page step with no adjacent page, identical
// geometry), in which case no render pass runs.
func (c *Controller) Apply(cmd Command) bool {
	switch cmd := cmd.(type) {
	case SetFilter:
		term := normalizeTerm(cmd.Term)
		if term == c.filterTerm {
			return false
		}
		c.filterTerm = term
		c.applyFilter()
		c.page = 0

	case SortColumn:
		if cmd.Column < 0 || cmd.Column >= len(c.columns) || !c.columns[cmd.Column].Sortable {
			return false
		}
		if cmd.Column == c.sortCol {
			if c.sortDir == Ascending {
				c.sortDir = Descending
			} else {
				c.sortDir = Ascending
			}
		} else {
			c.sortCol = cmd.Column
			c.sortDir = Ascending
		}
		c.sortRows()

	case NextPage:
		if !c.frame.HasNext {
			return false
		}
		c.page++

	case PrevPage:
		if !c.frame.HasPrev {
			return false
		}
		c.page--

	case SetPage:
		if cmd.Page == c.page {
			return false
		}
		c.page = cmd.Page

	case Resize:
		if c.haveGeom && cmd.Geometry == c.geom {
			return false
		}
		c.geom = cmd.Geometry
		c.haveGeom = true
		if c.geom.RowHeight > 0 {
			c.lastRowHeight = c.geom.RowHeight
		}
		if c.paged {
			size := c.computePageSize()
			if size != c.pageSize {
				c.pageSize = size
				c.page = 0
			}
		}

	case RefreshRows:
		c.rows = cmd.Rows
		c.applyFilter()

	default:
		return false
	}

	c.render()
	return true
}
