package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"gitlab.com/tinyland/lab/gridline/pkg/grid"
)

// inferSampleSize caps how many rows kind inference examines per column.
const inferSampleSize = 100

// LoadCSV reads a CSV dataset from r. The first record is the header; every
// column's kind is inferred by sampling up to inferSampleSize values. All
// columns are sortable.
func LoadCSV(r io.Reader, name string) (*Dataset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read csv: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("csv dataset %q is empty", name)
	}

	header := records[0]
	body := records[1:]

	ds := &Dataset{Name: name}
	for col, title := range header {
		ds.Columns = append(ds.Columns, Column{
			Title:    strings.TrimSpace(title),
			Kind:     inferKind(columnSample(body, col)),
			Align:    AlignLeft,
			Sortable: true,
		})
	}

	for i, record := range body {
		cells := make([]string, len(header))
		copy(cells, record)
		ds.Rows = append(ds.Rows, grid.Row{
			ID:    strconv.Itoa(i),
			Cells: cells,
		})
	}
	return ds, nil
}

// columnSample collects up to inferSampleSize non-empty values from one
// column of the record set.
func columnSample(records [][]string, col int) []string {
	var sample []string
	for _, record := range records {
		if len(sample) >= inferSampleSize {
			break
		}
		if col >= len(record) {
			continue
		}
		v := strings.TrimSpace(record[col])
		if v != "" {
			sample = append(sample, v)
		}
	}
	return sample
}

// csvDateLayouts are the formats kind inference recognizes as dates.
var csvDateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
}

// inferKind classifies a column from its sampled values: every value
// numeric means number, every value a recognizable date means date,
// anything else is a plain string column. Empty samples stay strings.
func inferKind(sample []string) grid.ColumnKind {
	if len(sample) == 0 {
		return grid.KindString
	}

	numeric := true
	for _, v := range sample {
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			numeric = false
			break
		}
	}
	if numeric {
		return grid.KindNumber
	}

	dated := true
	for _, v := range sample {
		if !looksLikeDate(v) {
			dated = false
			break
		}
	}
	if dated {
		return grid.KindDate
	}

	return grid.KindString
}

// looksLikeDate reports whether v parses under any recognized date layout.
func looksLikeDate(v string) bool {
	for _, layout := range csvDateLayouts {
		if _, err := time.Parse(layout, v); err == nil {
			return true
		}
	}
	return false
}
