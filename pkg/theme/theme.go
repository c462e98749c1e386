package theme

import (
	"sort"
	"strings"
	"sync"
)

// Theme defines the complete color palette for the grid viewer.
type Theme struct {
	Name string

	// Base colors
	Background string // hex color e.g. "#1a1b26"
	Foreground string // hex color
	Dim        string // dimmed text
	Accent     string // highlights, active controls

	// Grid colors
	HeaderFg    string // column header text
	HeaderBg    string // column header background
	Border      string // column separators, header rule
	RowEvenBg   string // zebra stripe, even rows
	RowOddBg    string // zebra stripe, odd rows
	SelectionBg string // selected row background
	SelectionFg string // selected row text

	// Pager colors
	PagerFg       string // "Showing X-Y of Z" and page indicator
	PagerDisabled string // prev/next arrows with no adjacent page

	// Special
	EmptyText       string // "No records" / "No matching records"
	FilterHighlight string // matched substring in filtered cells
	HelpKey         string // keybinding highlight color
	HelpDesc        string // help description color
}

// Current holds the active theme (set via SetCurrent).
var Current Theme

var (
	mu       sync.RWMutex
	registry = map[string]Theme{}
)

func init() {
	thRegisterBuiltins()
	Current = thDefaultTheme()
}

// Get returns a named theme, falling back to Default if not found.
func Get(name string) Theme {
	mu.RLock()
	defer mu.RUnlock()
	if t, ok := registry[strings.ToLower(name)]; ok {
		return t
	}
	return registry["default"]
}

// Names returns all available theme names sorted alphabetically.
func Names() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// SetCurrent sets the active theme by name.
func SetCurrent(name string) {
	Current = Get(name)
}

// Register adds a theme to the registry under its lowercase name,
// replacing any existing theme with the same name.
func Register(t Theme) {
	mu.Lock()
	defer mu.Unlock()
	registry[strings.ToLower(t.Name)] = t
}
