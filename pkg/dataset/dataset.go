// Package dataset loads tabular data for the grid from CSV and YAML files.
// CSV files carry a header record and get their column kinds inferred by
// sampling values; YAML files declare columns (title, kind, alignment,
// width) explicitly and may attach per-cell sort overrides.
package dataset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tinyland/lab/gridline/pkg/grid"
)

// Alignment names accepted in YAML column declarations.
const (
	AlignLeft   = "left"
	AlignRight  = "right"
	AlignCenter = "center"
)

// Column describes one dataset column.
type Column struct {
	Title    string
	Kind     grid.ColumnKind
	Align    string // AlignLeft, AlignRight, AlignCenter
	Width    int    // fixed width in cells, 0 = share remaining space
	Percent  int    // percentage width, 0 = unused
	Sortable bool
}

// Dataset is a named table of rows ready to hand to a grid controller.
type Dataset struct {
	Name    string
	Columns []Column
	Rows    []grid.Row
}

// Load reads a dataset from path, dispatching on the file extension.
// Supported: .csv, .yaml, .yml.
func Load(path string) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return LoadCSV(f, name)
	case ".yaml", ".yml":
		return LoadYAML(f)
	default:
		return nil, fmt.Errorf("unsupported dataset format %q", filepath.Ext(path))
	}
}

// parseKind maps a YAML kind name onto a grid.ColumnKind.
func parseKind(s string) (grid.ColumnKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "string", "text":
		return grid.KindString, nil
	case "number", "numeric", "float", "int":
		return grid.KindNumber, nil
	case "date", "time", "datetime", "timestamp":
		return grid.KindDate, nil
	default:
		return grid.KindString, fmt.Errorf("unknown column kind %q", s)
	}
}
