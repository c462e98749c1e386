package grid

import (
	"math"
	"testing"
)

func TestNumericKeyParsing(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"-3.5", -3.5},
		{"  7 ", 7},
		{"1e3", 1000},
	}
	for _, tt := range tests {
		if got := numericKey(tt.input); got != tt.want {
			t.Errorf("numericKey(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNumericKeyFailureIsNegInf(t *testing.T) {
	for _, s := range []string{"", "abc", "12abc", "n/a", "--"} {
		if got := numericKey(s); !math.IsInf(got, -1) {
			t.Errorf("numericKey(%q) = %v, want -Inf", s, got)
		}
	}
}

func TestDateKeyLayouts(t *testing.T) {
	// All parseable layouts produce finite, ordered keys.
	inputs := []string{
		"2022-01-01",
		"2022-06-15 12:00:00",
		"2023-01-01T00:00:00Z",
		"2024/03/09",
	}
	prev := math.Inf(-1)
	for _, s := range inputs {
		got := dateKey(s)
		if math.IsInf(got, -1) {
			t.Errorf("dateKey(%q) should parse", s)
			continue
		}
		if got <= prev {
			t.Errorf("dateKey(%q) = %v not increasing over %v", s, got, prev)
		}
		prev = got
	}
}

func TestDateKeyFailureIsNegInf(t *testing.T) {
	for _, s := range []string{"", "not a date", "13/45/9999"} {
		if got := dateKey(s); !math.IsInf(got, -1) {
			t.Errorf("dateKey(%q) = %v, want -Inf", s, got)
		}
	}
}

func TestNumericSortMalformedFirst(t *testing.T) {
	cols := []Column{{Title: "N", Kind: KindNumber, Sortable: true}}
	rows := []Row{
		{ID: "ten", Cells: []string{"10"}},
		{ID: "bad", Cells: []string{"oops"}},
		{ID: "two", Cells: []string{"2"}},
	}
	c := NewController(cols, rows, Options{})
	c.Apply(SortColumn{Column: 0})
	if got := visibleIDs(c); !equalIDs(got, []string{"bad", "two", "ten"}) {
		t.Errorf("malformed cells should sort first ascending, got %v", got)
	}

	c.Apply(SortColumn{Column: 0})
	if got := visibleIDs(c); !equalIDs(got, []string{"ten", "two", "bad"}) {
		t.Errorf("malformed cells should sort last descending, got %v", got)
	}
}

func TestNumericSortMonotonic(t *testing.T) {
	cols := []Column{{Title: "N", Kind: KindNumber, Sortable: true}}
	rows := []Row{
		{ID: "a", Cells: []string{"3.2"}},
		{ID: "b", Cells: []string{"-1"}},
		{ID: "c", Cells: []string{"100"}},
		{ID: "d", Cells: []string{"0"}},
		{ID: "e", Cells: []string{"junk"}},
	}
	c := NewController(cols, rows, Options{})
	c.Apply(SortColumn{Column: 0})

	prev := math.Inf(-1)
	for _, idx := range c.Frame().Visible {
		v := numericKey(c.Rows()[idx].Cells[0])
		if v < prev {
			t.Fatalf("ascending order violated at row %s", c.Rows()[idx].ID)
		}
		prev = v
	}
}

func TestStringSortCaseInsensitive(t *testing.T) {
	cols := []Column{{Title: "S", Kind: KindString, Sortable: true}}
	rows := []Row{
		{ID: "1", Cells: []string{"banana"}},
		{ID: "2", Cells: []string{"Apple"}},
		{ID: "3", Cells: []string{"cherry"}},
	}
	c := NewController(cols, rows, Options{})
	c.Apply(SortColumn{Column: 0})
	if got := visibleIDs(c); !equalIDs(got, []string{"2", "1", "3"}) {
		t.Errorf("string sort should ignore case, got %v", got)
	}
}

func TestSortStable(t *testing.T) {
	cols := []Column{{Title: "N", Kind: KindNumber, Sortable: true}}
	rows := []Row{
		{ID: "first", Cells: []string{"5"}},
		{ID: "second", Cells: []string{"5"}},
		{ID: "third", Cells: []string{"5"}},
	}
	c := NewController(cols, rows, Options{})
	c.Apply(SortColumn{Column: 0})
	if got := visibleIDs(c); !equalIDs(got, []string{"first", "second", "third"}) {
		t.Errorf("equal keys must keep their relative order, got %v", got)
	}
}

func TestSortUsesOverrideValues(t *testing.T) {
	// Display text sorts wrong ("1.5 GB" < "200 MB" as strings); the
	// byte-count overrides fix the order.
	cols := []Column{{Title: "Size", Kind: KindNumber, Sortable: true}}
	rows := []Row{
		{ID: "big", Cells: []string{"1.5 GB"}, SortValues: []string{"1610612736"}},
		{ID: "small", Cells: []string{"200 MB"}, SortValues: []string{"209715200"}},
	}
	c := NewController(cols, rows, Options{})
	c.Apply(SortColumn{Column: 0})
	if got := visibleIDs(c); !equalIDs(got, []string{"small", "big"}) {
		t.Errorf("sort should use override values, got %v", got)
	}
}

func TestCompareCellsDate(t *testing.T) {
	if compareCells("2022-01-01", "2023-01-01", KindDate) != -1 {
		t.Error("earlier date should compare lower")
	}
	if compareCells("2023-01-01", "2023-01-01", KindDate) != 0 {
		t.Error("equal dates should compare equal")
	}
	if compareCells("garbage", "2023-01-01", KindDate) != -1 {
		t.Error("unparseable date should compare lowest")
	}
}
