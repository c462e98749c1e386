package theme

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
)

// thTOMLTheme is the TOML-serializable representation of a Theme.
type thTOMLTheme struct {
	Name    string        `toml:"name"`
	Base    thTOMLBase    `toml:"base"`
	Grid    thTOMLGrid    `toml:"grid"`
	Pager   thTOMLPager   `toml:"pager"`
	Special thTOMLSpecial `toml:"special"`
}

type thTOMLBase struct {
	Background string `toml:"background"`
	Foreground string `toml:"foreground"`
	Dim        string `toml:"dim"`
	Accent     string `toml:"accent"`
}

type thTOMLGrid struct {
	HeaderFg    string `toml:"header_fg"`
	HeaderBg    string `toml:"header_bg"`
	Border      string `toml:"border"`
	RowEvenBg   string `toml:"row_even_bg"`
	RowOddBg    string `toml:"row_odd_bg"`
	SelectionBg string `toml:"selection_bg"`
	SelectionFg string `toml:"selection_fg"`
}

type thTOMLPager struct {
	Fg       string `toml:"fg"`
	Disabled string `toml:"disabled"`
}

type thTOMLSpecial struct {
	EmptyText       string `toml:"empty_text"`
	FilterHighlight string `toml:"filter_highlight"`
	HelpKey         string `toml:"help_key"`
	HelpDesc        string `toml:"help_desc"`
}

var thHexColorRegex = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// LoadFromTOML parses a TOML theme definition from raw bytes.
func LoadFromTOML(data []byte) (Theme, error) {
	var tt thTOMLTheme
	if err := toml.Unmarshal(data, &tt); err != nil {
		return Theme{}, fmt.Errorf("theme: parse TOML: %w", err)
	}

	t := Theme{
		Name:       tt.Name,
		Background: tt.Base.Background,
		Foreground: tt.Base.Foreground,
		Dim:        tt.Base.Dim,
		Accent:     tt.Base.Accent,

		HeaderFg:    tt.Grid.HeaderFg,
		HeaderBg:    tt.Grid.HeaderBg,
		Border:      tt.Grid.Border,
		RowEvenBg:   tt.Grid.RowEvenBg,
		RowOddBg:    tt.Grid.RowOddBg,
		SelectionBg: tt.Grid.SelectionBg,
		SelectionFg: tt.Grid.SelectionFg,

		PagerFg:       tt.Pager.Fg,
		PagerDisabled: tt.Pager.Disabled,

		EmptyText:       tt.Special.EmptyText,
		FilterHighlight: tt.Special.FilterHighlight,
		HelpKey:         tt.Special.HelpKey,
		HelpDesc:        tt.Special.HelpDesc,
	}

	if err := thValidateTheme(t); err != nil {
		return Theme{}, err
	}

	return t, nil
}

// SaveToTOML serializes a theme to TOML bytes.
func SaveToTOML(t Theme) ([]byte, error) {
	tt := thTOMLTheme{
		Name: t.Name,
		Base: thTOMLBase{
			Background: t.Background,
			Foreground: t.Foreground,
			Dim:        t.Dim,
			Accent:     t.Accent,
		},
		Grid: thTOMLGrid{
			HeaderFg:    t.HeaderFg,
			HeaderBg:    t.HeaderBg,
			Border:      t.Border,
			RowEvenBg:   t.RowEvenBg,
			RowOddBg:    t.RowOddBg,
			SelectionBg: t.SelectionBg,
			SelectionFg: t.SelectionFg,
		},
		Pager: thTOMLPager{
			Fg:       t.PagerFg,
			Disabled: t.PagerDisabled,
		},
		Special: thTOMLSpecial{
			EmptyText:       t.EmptyText,
			FilterHighlight: t.FilterHighlight,
			HelpKey:         t.HelpKey,
			HelpDesc:        t.HelpDesc,
		},
	}

	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	if err := enc.Encode(tt); err != nil {
		return nil, fmt.Errorf("theme: encode TOML: %w", err)
	}
	return buf.Bytes(), nil
}

// LoadDir loads every *.toml theme file from dir into the registry.
// Returns the names of the themes registered. Files that fail to parse
// are skipped and reported in the returned error (the rest still load).
func LoadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("theme: read dir %s: %w", dir, err)
	}

	var names []string
	var bad []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".toml") {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			bad = append(bad, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		t, err := LoadFromTOML(data)
		if err != nil {
			bad = append(bad, fmt.Sprintf("%s: %v", e.Name(), err))
			continue
		}
		Register(t)
		names = append(names, t.Name)
	}

	if len(bad) > 0 {
		return names, fmt.Errorf("theme: %d file(s) failed to load: %s",
			len(bad), strings.Join(bad, "; "))
	}
	return names, nil
}

// thValidateTheme checks that all required color fields are present and valid hex.
func thValidateTheme(t Theme) error {
	if t.Name == "" {
		return fmt.Errorf("theme: missing required field %q", "name")
	}

	colorFields := map[string]string{
		"background":       t.Background,
		"foreground":       t.Foreground,
		"dim":              t.Dim,
		"accent":           t.Accent,
		"header_fg":        t.HeaderFg,
		"header_bg":        t.HeaderBg,
		"border":           t.Border,
		"row_even_bg":      t.RowEvenBg,
		"row_odd_bg":       t.RowOddBg,
		"selection_bg":     t.SelectionBg,
		"selection_fg":     t.SelectionFg,
		"pager_fg":         t.PagerFg,
		"pager_disabled":   t.PagerDisabled,
		"empty_text":       t.EmptyText,
		"filter_highlight": t.FilterHighlight,
		"help_key":         t.HelpKey,
		"help_desc":        t.HelpDesc,
	}

	for field, value := range colorFields {
		if value == "" {
			return fmt.Errorf("theme: missing required field %q", field)
		}
		if !thHexColorRegex.MatchString(value) {
			return fmt.Errorf("theme: invalid hex color %q for field %q (expected #RRGGBB)", value, field)
		}
	}

	return nil
}
