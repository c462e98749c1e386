// Package tui implements the interactive Bubbletea shell around the grid
// controller. The model translates terminal events (keys, mouse clicks on
// column headers, window resizes) into grid commands, and renders the
// resulting frames through the components.GridView adapter.
package tui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"gitlab.com/tinyland/lab/gridline/pkg/components"
	"gitlab.com/tinyland/lab/gridline/pkg/config"
	"gitlab.com/tinyland/lab/gridline/pkg/grid"
	"gitlab.com/tinyland/lab/gridline/pkg/theme"
)

// mode is the model's input mode.
type mode int

const (
	modeBrowse mode = iota
	modeFilter      // filter bar focused
	modeGoto        // go-to-page prompt open
	modeHelp        // full help overlay
)

// resizeSettledMsg fires after the resize debounce window so a burst of
// WindowSizeMsg events produces a single page-size recomputation.
type resizeSettledMsg struct {
	seq int
}

// Config assembles everything the model needs at construction time.
type Config struct {
	Title   string
	Columns []grid.Column
	Rows    []grid.Row

	// Specs describe column rendering (widths, alignment); must be the
	// same length as Columns.
	Specs []components.ColumnSpec

	Theme theme.Theme
	Grid  config.GridConfig

	// Mouse enables header hit zones for click-to-sort.
	Mouse bool

	// Reload, when non-nil, re-reads the row snapshot from its source.
	// Bound to the R key.
	Reload func() ([]grid.Row, error)
}

// Model is the root bubbletea model. All grid state lives in the
// controller; the model holds only terminal concerns (inputs, sizes,
// input mode).
type Model struct {
	ctrl  *grid.Controller
	view  *components.GridView
	th    theme.Theme
	cfg   config.GridConfig
	title string

	zones *zone.Manager
	mouse bool

	width  int
	height int

	mode        mode
	filterInput textinput.Model
	pageInput   textinput.Model
	// gotoFilter is a second input bound to the same filter term as
	// filterInput; edits to either go through the controller and the
	// other input is resynced from it.
	gotoFilter    textinput.Model
	gotoFilterSel bool // which goto field is focused

	pager paginator.Model
	keys  KeyMap
	help  help.Model

	selected int // index into the current frame's visible rows, -1 none
	status   string

	resizeSeq      int
	resizeDebounce time.Duration

	reload func() ([]grid.Row, error)
}

// New builds the model and its controller. The controller renders its
// first frame immediately; the page size settles on the first
// WindowSizeMsg.
func New(c Config) Model {
	ctrl := grid.NewController(c.Columns, c.Rows, grid.Options{
		Paged:           true,
		DefaultPageSize: c.Grid.DefaultPageSize,
		MaxPageSize:     c.Grid.MaxPageSize,
	})

	style := components.GridStyle{
		HeaderBold:    true,
		HeaderFg:      c.Theme.HeaderFg,
		HeaderBg:      c.Theme.HeaderBg,
		EvenRowBg:     c.Theme.RowEvenBg,
		OddRowBg:      c.Theme.RowOddBg,
		SelectedRowBg: c.Theme.SelectionBg,
		ShowBorder:    c.Grid.ShowBorder,
	}
	view := components.NewGridView(c.Specs, style)

	fi := textinput.New()
	fi.Prompt = "/"
	fi.Placeholder = "filter rows"
	fi.CharLimit = 128

	pi := textinput.New()
	pi.Prompt = "page: "
	pi.Placeholder = "1"
	pi.CharLimit = 6

	gf := textinput.New()
	gf.Prompt = "filter: "
	gf.CharLimit = 128

	pg := paginator.New()
	pg.Type = paginator.Dots
	pg.ActiveDot = "●"
	pg.InactiveDot = "○"

	m := Model{
		ctrl:           ctrl,
		view:           view,
		th:             c.Theme,
		cfg:            c.Grid,
		title:          c.Title,
		mouse:          c.Mouse,
		filterInput:    fi,
		pageInput:      pi,
		gotoFilter:     gf,
		pager:          pg,
		keys:           DefaultKeyMap(),
		help:           help.New(),
		selected:       -1,
		resizeDebounce: c.Grid.ResizeDebounce.Duration,
		reload:         c.Reload,
	}
	if c.Mouse {
		m.zones = zone.New()
		m.view.MarkHeader = func(col int, cell string) string {
			return m.zones.Mark(headerZoneID(col), cell)
		}
	}
	view.MarkCell = func(cell string) string {
		return theme.HighlightMatches(cell, ctrl.FilterTerm(), c.Theme)
	}
	view.MarkPager = func(text string, enabled bool) string {
		return theme.ApplyPager(text, c.Theme, enabled)
	}
	m.syncFromFrame()
	return m
}

// Controller exposes the grid controller, mainly for tests.
func (m Model) Controller() *grid.Controller { return m.ctrl }

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.filterInput.Width = msg.Width - 4
		if m.resizeDebounce <= 0 {
			m.applyResize()
			return m, nil
		}
		m.resizeSeq++
		seq := m.resizeSeq
		return m, tea.Tick(m.resizeDebounce, func(time.Time) tea.Msg {
			return resizeSettledMsg{seq: seq}
		})

	case resizeSettledMsg:
		// Only the last resize in a burst lands here with a current seq.
		if msg.seq == m.resizeSeq {
			m.applyResize()
		}
		return m, nil

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		switch m.mode {
		case modeFilter:
			return m.updateFilterMode(msg)
		case modeGoto:
			return m.updateGotoMode(msg)
		case modeHelp:
			m.mode = modeBrowse
			return m, nil
		default:
			return m.updateBrowseMode(msg)
		}
	}
	return m, nil
}

// updateBrowseMode handles keys in the default navigation mode.
func (m Model) updateBrowseMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.mode = modeHelp
		return m, nil

	case key.Matches(msg, m.keys.Filter):
		m.mode = modeFilter
		m.filterInput.SetValue(m.ctrl.FilterTerm())
		m.filterInput.CursorEnd()
		return m, m.filterInput.Focus()

	case key.Matches(msg, m.keys.ClearFilter):
		if m.ctrl.Apply(grid.SetFilter{}) {
			m.filterInput.SetValue("")
			m.gotoFilter.SetValue("")
			m.syncFromFrame()
		}
		return m, nil

	case key.Matches(msg, m.keys.Goto):
		m.mode = modeGoto
		m.gotoFilterSel = false
		m.pageInput.SetValue("")
		m.gotoFilter.SetValue(m.ctrl.FilterTerm())
		m.gotoFilter.Blur()
		return m, m.pageInput.Focus()

	case key.Matches(msg, m.keys.NextPage):
		m.applyAndSync(grid.NextPage{})
		return m, nil

	case key.Matches(msg, m.keys.PrevPage):
		m.applyAndSync(grid.PrevPage{})
		return m, nil

	case key.Matches(msg, m.keys.FirstPage):
		m.applyAndSync(grid.SetPage{Page: 0})
		return m, nil

	case key.Matches(msg, m.keys.LastPage):
		m.applyAndSync(grid.SetPage{Page: m.ctrl.Frame().TotalPages - 1})
		return m, nil

	case key.Matches(msg, m.keys.Up):
		if m.selected > 0 {
			m.selected--
		}
		return m, nil

	case key.Matches(msg, m.keys.Down):
		if m.selected < len(m.ctrl.Frame().Visible)-1 {
			m.selected++
		}
		return m, nil

	case key.Matches(msg, m.keys.SortColumn):
		col, err := strconv.Atoi(msg.String())
		if err == nil {
			m.applyAndSync(grid.SortColumn{Column: col - 1})
		}
		return m, nil

	case key.Matches(msg, m.keys.Reload):
		if m.reload == nil {
			return m, nil
		}
		rows, err := m.reload()
		if err != nil {
			m.status = fmt.Sprintf("reload failed: %v", err)
			return m, nil
		}
		m.status = fmt.Sprintf("reloaded %d rows", len(rows))
		m.applyAndSync(grid.RefreshRows{Rows: rows})
		return m, nil
	}
	return m, nil
}

// updateFilterMode routes keys to the filter bar. Every edit becomes one
// SetFilter command; unchanged terms are no-ops inside the controller, so
// cursor movement does not trigger renders.
func (m Model) updateFilterMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape, tea.KeyEnter:
		m.mode = modeBrowse
		m.filterInput.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	if m.ctrl.Apply(grid.SetFilter{Term: m.filterInput.Value()}) {
		// Keep the second bound input showing the same raw text.
		m.gotoFilter.SetValue(m.filterInput.Value())
		m.syncFromFrame()
	}
	return m, cmd
}

// updateGotoMode routes keys to the go-to-page prompt. The prompt carries
// two fields: the page number and a second filter input bound to the same
// term as the filter bar.
func (m Model) updateGotoMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEscape:
		m.mode = modeBrowse
		m.pageInput.Blur()
		m.gotoFilter.Blur()
		return m, nil

	case tea.KeyTab:
		m.gotoFilterSel = !m.gotoFilterSel
		if m.gotoFilterSel {
			m.pageInput.Blur()
			return m, m.gotoFilter.Focus()
		}
		m.gotoFilter.Blur()
		return m, m.pageInput.Focus()

	case tea.KeyEnter:
		if !m.gotoFilterSel {
			if n, err := strconv.Atoi(m.pageInput.Value()); err == nil && n >= 1 {
				m.applyAndSync(grid.SetPage{Page: n - 1})
			}
		}
		m.mode = modeBrowse
		m.pageInput.Blur()
		m.gotoFilter.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	if m.gotoFilterSel {
		m.gotoFilter, cmd = m.gotoFilter.Update(msg)
		if m.ctrl.Apply(grid.SetFilter{Term: m.gotoFilter.Value()}) {
			m.filterInput.SetValue(m.gotoFilter.Value())
			m.syncFromFrame()
		}
	} else {
		m.pageInput, cmd = m.pageInput.Update(msg)
	}
	return m, cmd
}

// updateMouse sorts by the clicked column header.
func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if m.zones == nil || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	for col := range m.ctrl.Columns() {
		if m.zones.Get(headerZoneID(col)).InBounds(msg) {
			m.applyAndSync(grid.SortColumn{Column: col})
			break
		}
	}
	return m, nil
}

// applyAndSync applies one grid command and realigns the paginator and
// selection when the command was effective.
func (m *Model) applyAndSync(cmd grid.Command) {
	if m.ctrl.Apply(cmd) {
		m.syncFromFrame()
	}
}

// applyResize pushes the current terminal geometry into the controller.
func (m *Model) applyResize() {
	m.applyAndSync(grid.Resize{Geometry: m.geometry()})
}

// geometry maps the terminal layout onto the controller's line-based
// geometry: one title line above the grid, the status bar plus configured
// padding below it.
func (m *Model) geometry() grid.Geometry {
	return grid.Geometry{
		ViewportHeight:    m.height,
		TableTop:          1,
		HeaderHeight:      m.view.HeaderHeight(),
		PagerHeight:       m.view.PagerHeight(),
		RowHeight:         m.cfg.RowHeight,
		BottomPadding:     1 + m.cfg.BottomPadding,
		ExtraSpacing:      m.cfg.ExtraSpacing,
		MinFallbackHeight: m.cfg.MinFallbackHeight,
	}
}

// syncFromFrame realigns paginator state and the row selection with the
// most recent frame.
func (m *Model) syncFromFrame() {
	f := m.ctrl.Frame()

	if f.TotalPages > 0 {
		m.pager.SetTotalPages(f.TotalPages)
	} else {
		m.pager.SetTotalPages(1)
	}
	m.pager.Page = f.Page

	if len(f.Visible) == 0 {
		m.selected = -1
		return
	}
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(f.Visible) {
		m.selected = len(f.Visible) - 1
	}
}

// headerZoneID builds the bubblezone ID for a column header.
func headerZoneID(col int) string {
	return fmt.Sprintf("grid-header-%d", col)
}
