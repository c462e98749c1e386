package dataset

import (
	"fmt"
	"io"
	"strconv"

	"gopkg.in/yaml.v3"

	"gitlab.com/tinyland/lab/gridline/pkg/grid"
)

// yamlDataset mirrors the on-disk YAML dataset schema.
type yamlDataset struct {
	Name    string       `yaml:"name"`
	Columns []yamlColumn `yaml:"columns"`
	Rows    []yamlRow    `yaml:"rows"`
}

type yamlColumn struct {
	Title    string `yaml:"title"`
	Kind     string `yaml:"kind"`
	Align    string `yaml:"align"`
	Width    int    `yaml:"width"`
	Percent  int    `yaml:"percent"`
	Sortable *bool  `yaml:"sortable"` // nil defaults to true
}

type yamlRow struct {
	ID    string   `yaml:"id"`
	Cells []string `yaml:"cells"`
	Sort  []string `yaml:"sort"` // optional per-cell sort overrides
}

// LoadYAML reads a declarative YAML dataset from r. Columns are explicit;
// rows may carry per-cell sort override values used for comparison instead
// of the display text.
func LoadYAML(r io.Reader) (*Dataset, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read yaml dataset: %w", err)
	}

	var decl yamlDataset
	if err := yaml.Unmarshal(raw, &decl); err != nil {
		return nil, fmt.Errorf("parse yaml dataset: %w", err)
	}
	if len(decl.Columns) == 0 {
		return nil, fmt.Errorf("yaml dataset %q declares no columns", decl.Name)
	}

	ds := &Dataset{Name: decl.Name}
	for i, yc := range decl.Columns {
		kind, err := parseKind(yc.Kind)
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, yc.Title, err)
		}
		align, err := parseAlign(yc.Align)
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, yc.Title, err)
		}
		sortable := true
		if yc.Sortable != nil {
			sortable = *yc.Sortable
		}
		ds.Columns = append(ds.Columns, Column{
			Title:    yc.Title,
			Kind:     kind,
			Align:    align,
			Width:    yc.Width,
			Percent:  yc.Percent,
			Sortable: sortable,
		})
	}

	for i, yr := range decl.Rows {
		if len(yr.Cells) != len(decl.Columns) {
			return nil, fmt.Errorf("row %d has %d cells, want %d", i, len(yr.Cells), len(decl.Columns))
		}
		if len(yr.Sort) > 0 && len(yr.Sort) != len(decl.Columns) {
			return nil, fmt.Errorf("row %d has %d sort overrides, want %d", i, len(yr.Sort), len(decl.Columns))
		}
		id := yr.ID
		if id == "" {
			id = strconv.Itoa(i)
		}
		ds.Rows = append(ds.Rows, grid.Row{
			ID:         id,
			Cells:      yr.Cells,
			SortValues: yr.Sort,
		})
	}

	return ds, nil
}

// parseAlign validates a YAML alignment name. Empty means left.
func parseAlign(s string) (string, error) {
	switch s {
	case "", AlignLeft:
		return AlignLeft, nil
	case AlignRight:
		return AlignRight, nil
	case AlignCenter:
		return AlignCenter, nil
	default:
		return "", fmt.Errorf("unknown alignment %q", s)
	}
}
