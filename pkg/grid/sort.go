package grid

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// dateLayouts are tried in order when parsing a KindDate cell. The list
// covers the formats our dataset loaders emit plus common interchange
// forms.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"2006/01/02",
	"01/02/2006",
	time.RFC1123,
	time.RFC822,
}

// numericKey parses s as a float. Failures map to -Inf so malformed cells
// sort to one end instead of aborting the sort.
func numericKey(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.Inf(-1)
	}
	return v
}

// dateKey parses s as a timestamp and returns Unix nanoseconds as a float.
// Failures map to -Inf, matching the numeric behavior.
func dateKey(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.Inf(-1)
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return float64(t.UnixNano())
		}
	}
	// Bare Unix timestamps also count as dates.
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v
	}
	return math.Inf(-1)
}

// compareCells orders two comparison values under the given column kind.
// Returns -1, 0, or 1 in ascending terms.
func compareCells(a, b string, kind ColumnKind) int {
	switch kind {
	case KindNumber:
		av, bv := numericKey(a), numericKey(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	case KindDate:
		av, bv := dateKey(a), dateKey(b)
		switch {
		case av < bv:
			return -1
		case av > bv:
			return 1
		}
		return 0
	default:
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	}
}

// sortRows reorders the row snapshot by the active sort column and
// direction. The sort is stable so equal keys keep their relative order;
// filter and page markers are untouched, and the caller re-renders so page
// boundaries reflect the new order.
func (c *Controller) sortRows() {
	if c.sortCol < 0 || c.sortCol >= len(c.columns) {
		return
	}
	col := c.sortCol
	kind := c.columns[col].Kind
	desc := c.sortDir == Descending

	sort.SliceStable(c.rows, func(i, j int) bool {
		cmp := compareCells(c.rows[i].compareValue(col), c.rows[j].compareValue(col), kind)
		if desc {
			return cmp > 0
		}
		return cmp < 0
	})
}
