package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Config is the root configuration for gridline.
type Config struct {
	General GeneralConfig `toml:"general"`
	Grid    GridConfig    `toml:"grid"`
	Theme   ThemeConfig   `toml:"theme"`
}

// GeneralConfig holds logging and cache settings.
type GeneralConfig struct {
	LogFile  string `toml:"log_file"`
	LogLevel string `toml:"log_level"` // "debug", "info", "warn", "error"
}

// GridConfig holds the grid controller's geometry and paging knobs.
type GridConfig struct {
	// DefaultPageSize is used when the row height has never been
	// measurable and no geometry-derived page size exists.
	DefaultPageSize int `toml:"default_page_size"`

	// MaxPageSize caps the computed page size. 0 = uncapped.
	MaxPageSize int `toml:"max_page_size"`

	// RowHeight is the rendered height of one data row in lines.
	RowHeight int `toml:"row_height"`

	// BottomPadding is fixed space reserved below the grid.
	BottomPadding int `toml:"bottom_padding"`

	// ExtraSpacing is additional chrome subtracted from available height.
	ExtraSpacing int `toml:"extra_spacing"`

	// MinFallbackHeight floors the half-viewport fallback used when the
	// grid's top offset cannot be measured.
	MinFallbackHeight int `toml:"min_fallback_height"`

	// ShowBorder toggles column separators.
	ShowBorder bool `toml:"show_border"`

	// ResizeDebounce coalesces bursts of resize events into one page-size
	// recomputation.
	ResizeDebounce Duration `toml:"resize_debounce"`
}

// ThemeConfig selects the color theme.
type ThemeConfig struct {
	Name string `toml:"name"`
	Dir  string `toml:"dir"` // extra directory searched for *.toml themes
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	home, _ := os.UserHomeDir()
	logFile := filepath.Join(xdgCacheHome(home), "gridline", "gridline.log")

	return &Config{
		General: GeneralConfig{
			LogFile:  logFile,
			LogLevel: "info",
		},
		Grid: GridConfig{
			DefaultPageSize:   10,
			RowHeight:         1,
			BottomPadding:     1,
			MinFallbackHeight: 8,
			ShowBorder:        true,
			ResizeDebounce:    Duration{50 * time.Millisecond},
		},
		Theme: ThemeConfig{
			Name: "default",
		},
	}
}

// Validate checks the configuration for values the grid cannot work with.
func (c *Config) Validate() error {
	switch c.General.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.General.LogLevel)
	}
	if c.Grid.DefaultPageSize < 1 {
		return fmt.Errorf("default_page_size must be at least 1, got %d", c.Grid.DefaultPageSize)
	}
	if c.Grid.MaxPageSize < 0 {
		return fmt.Errorf("max_page_size must not be negative, got %d", c.Grid.MaxPageSize)
	}
	if c.Grid.MaxPageSize > 0 && c.Grid.MaxPageSize < c.Grid.DefaultPageSize {
		return fmt.Errorf("max_page_size %d is below default_page_size %d",
			c.Grid.MaxPageSize, c.Grid.DefaultPageSize)
	}
	if c.Grid.RowHeight < 1 {
		return fmt.Errorf("row_height must be at least 1, got %d", c.Grid.RowHeight)
	}
	if c.Grid.BottomPadding < 0 || c.Grid.ExtraSpacing < 0 || c.Grid.MinFallbackHeight < 0 {
		return fmt.Errorf("grid spacing values must not be negative")
	}
	return nil
}
