// gridline is an interactive terminal viewer for tabular data.
//
// It loads a CSV or YAML dataset and presents it as a filterable,
// sortable, paged grid. The page size follows the terminal height, so the
// table always fits the window without scrolling.
//
// Usage:
//
//	gridline [flags] <dataset.csv|dataset.yaml>
//
// Flags:
//
//	-config string  Path to configuration file (default: ~/.config/gridline/config.toml)
//	-theme string   Theme name (overrides config)
//	-list-themes    Print available theme names and exit
//	-page-size int  Fallback page size when the terminal height is unknown
//	-no-mouse       Disable mouse support (click-to-sort)
//	-verbose        Enable verbose logging
//	-version        Print version and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"gitlab.com/tinyland/lab/gridline/pkg/components"
	"gitlab.com/tinyland/lab/gridline/pkg/config"
	"gitlab.com/tinyland/lab/gridline/pkg/dataset"
	"gitlab.com/tinyland/lab/gridline/pkg/grid"
	"gitlab.com/tinyland/lab/gridline/pkg/terminal"
	"gitlab.com/tinyland/lab/gridline/pkg/theme"
	"gitlab.com/tinyland/lab/gridline/pkg/tui"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath  = flag.String("config", "", "Path to configuration file")
		themeName   = flag.String("theme", "", "Theme name (overrides config)")
		listThemes  = flag.Bool("list-themes", false, "Print available theme names and exit")
		pageSize    = flag.Int("page-size", 0, "Fallback page size when the terminal height is unknown")
		noMouse     = flag.Bool("no-mouse", false, "Disable mouse support")
		verbose     = flag.Bool("verbose", false, "Enable verbose logging")
		showVersion = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Printf("gridline %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	// Load configuration
	var (
		cfg *config.Config
		err error
	)
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Apply flag overrides before validation
	if *pageSize > 0 {
		cfg.Grid.DefaultPageSize = *pageSize
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	// Setup logging - write to both stderr and log file
	logLevel := slog.LevelWarn
	if *verbose {
		logLevel = slog.LevelDebug
	} else if lvl, ok := parseLogLevel(cfg.General.LogLevel); ok {
		logLevel = lvl
	}

	logWriter := io.Writer(os.Stderr)
	if cfg.General.LogFile != "" {
		if err := ensureLogDir(cfg.General.LogFile); err != nil {
			fmt.Fprintf(os.Stderr, "failed to create log directory: %v\n", err)
			os.Exit(1)
		}
		logFile, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
		logWriter = io.MultiWriter(os.Stderr, logFile)
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: logLevel,
	}))

	// User theme directory extends the builtin set
	if cfg.Theme.Dir != "" {
		loaded, err := theme.LoadDir(cfg.Theme.Dir)
		if err != nil {
			logger.Warn("some theme files failed to load", "dir", cfg.Theme.Dir, "error", err)
		}
		if len(loaded) > 0 {
			logger.Debug("loaded user themes", "dir", cfg.Theme.Dir, "themes", loaded)
		}
	}

	if *listThemes {
		for _, name := range theme.Names() {
			fmt.Println(name)
		}
		os.Exit(0)
	}

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "usage: gridline [flags] <dataset.csv|dataset.yaml>\n")
		flag.PrintDefaults()
		os.Exit(2)
	}
	datasetPath := flag.Arg(0)

	ds, err := dataset.Load(datasetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load dataset: %v\n", err)
		os.Exit(1)
	}
	if len(ds.Rows) == 0 {
		logger.Warn("dataset has no rows", "path", datasetPath)
	}

	// Degrade the theme to what the terminal can display.
	caps := terminal.DetectCapabilities()
	theme.SetCurrent(cfg.Theme.Name)
	th := theme.Get(cfg.Theme.Name)
	if caps.ColorDepth < 24 {
		th = theme.Adapt(th, caps.ColorDepth)
	}

	mouse := caps.Mouse && !*noMouse

	logger.Debug("starting gridline",
		"dataset", datasetPath,
		"rows", len(ds.Rows),
		"theme", th.Name,
		"color_depth", caps.ColorDepth,
		"mouse", mouse,
	)

	model := tui.New(tui.Config{
		Title:   ds.Name,
		Columns: gridColumns(ds.Columns),
		Rows:    ds.Rows,
		Specs:   columnSpecs(ds.Columns),
		Theme:   th,
		Grid:    cfg.Grid,
		Mouse:   mouse,
		Reload: func() ([]grid.Row, error) {
			fresh, err := dataset.Load(datasetPath)
			if err != nil {
				return nil, err
			}
			return fresh.Rows, nil
		},
	})

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model, opts...).Run(); err != nil {
		logger.Error("TUI error", "error", err)
		os.Exit(1)
	}
}

// gridColumns maps dataset columns onto controller columns.
func gridColumns(cols []dataset.Column) []grid.Column {
	out := make([]grid.Column, len(cols))
	for i, c := range cols {
		out[i] = grid.Column{
			Title:    c.Title,
			Kind:     c.Kind,
			Sortable: c.Sortable,
		}
	}
	return out
}

// columnSpecs maps dataset columns onto renderer column specs: a fixed
// width wins over a percentage, and columns with neither share the
// remaining space.
func columnSpecs(cols []dataset.Column) []components.ColumnSpec {
	specs := make([]components.ColumnSpec, len(cols))
	for i, c := range cols {
		spec := components.ColumnSpec{
			Title:    c.Title,
			Align:    parseAlign(c.Align),
			MinWidth: 3,
			Sortable: c.Sortable,
		}
		switch {
		case c.Width > 0:
			spec.Sizing = components.SizingFixed(c.Width)
		case c.Percent > 0:
			spec.Sizing = components.SizingPercent(c.Percent)
		default:
			spec.Sizing = components.SizingFill()
		}
		specs[i] = spec
	}
	return specs
}

// parseAlign maps a dataset alignment name onto the renderer's enum.
// Unknown names fall back to left alignment.
func parseAlign(s string) components.Align {
	switch s {
	case dataset.AlignRight:
		return components.AlignRight
	case dataset.AlignCenter:
		return components.AlignCenter
	default:
		return components.AlignLeft
	}
}

// parseLogLevel maps a config log level name onto a slog level.
func parseLogLevel(s string) (slog.Level, bool) {
	switch s {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return slog.LevelInfo, false
	}
}

func ensureLogDir(logFile string) error {
	return os.MkdirAll(filepath.Dir(logFile), 0755)
}
