package helpers

import (
	"reflect"
	"testing"
)

type fakeRow struct {
	Title    string
	Location string
}

func rowFields(r fakeRow) []string {
	return []string{r.Title, r.Location}
}

func TestFilterBySearchEmptyQueryIsIdentity(t *testing.T) {
	rows := []fakeRow{
		{Title: "Backend Engineer", Location: "Remote"},
		{Title: "Frontend Engineer", Location: "Berlin"},
		{Title: "Data Scientist", Location: "Remote"},
	}

	for _, query := range []string{"", "   ", "\t"} {
		got := FilterBySearch(rows, query, rowFields)
		if !reflect.DeepEqual(got, rows) {
			t.Errorf("FilterBySearch(%q) = %v, want original slice in original order", query, got)
		}
	}
}

func TestFilterBySearchCaseInsensitiveSubstring(t *testing.T) {
	rows := []fakeRow{
		{Title: "Backend Engineer", Location: "Remote"},
		{Title: "Frontend Engineer", Location: "Berlin"},
		{Title: "Data Scientist", Location: "Remote"},
	}

	tests := []struct {
		query string
		want  []string
	}{
		{"engineer", []string{"Backend Engineer", "Frontend Engineer"}},
		{"REMOTE", []string{"Backend Engineer", "Data Scientist"}},
		{"berl", []string{"Frontend Engineer"}},
		{"nowhere", []string{}},
	}

	for _, tt := range tests {
		got := FilterBySearch(rows, tt.query, rowFields)
		titles := make([]string, 0, len(got))
		for _, r := range got {
			titles = append(titles, r.Title)
		}
		if !reflect.DeepEqual(titles, tt.want) {
			t.Errorf("FilterBySearch(%q) = %v, want %v", tt.query, titles, tt.want)
		}
	}
}

func TestFilterBySearchIsSubset(t *testing.T) {
	rows := []fakeRow{
		{Title: "Go Meetup", Location: "Online"},
		{Title: "Rust Meetup", Location: "Munich"},
	}

	got := FilterBySearch(rows, "meetup", rowFields)
	if len(got) > len(rows) {
		t.Fatalf("filtered result has %d items, more than input %d", len(got), len(rows))
	}
	for _, g := range got {
		found := false
		for _, r := range rows {
			if g == r {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("filtered item %v not present in input", g)
		}
	}
}

func TestCalculateSliceIndices(t *testing.T) {
	tests := []struct {
		page, size, total    int
		wantStart, wantEnd   int
	}{
		{1, 10, 25, 0, 10},
		{2, 10, 25, 10, 20},
		{3, 10, 25, 20, 25},
		{4, 10, 25, 25, 25},
		{1, 10, 0, 0, 0},
		{0, 0, 5, 0, 5},
	}

	for _, tt := range tests {
		start, end := CalculateSliceIndices(tt.page, tt.size, tt.total)
		if start != tt.wantStart || end != tt.wantEnd {
			t.Errorf("CalculateSliceIndices(%d, %d, %d) = (%d, %d), want (%d, %d)",
				tt.page, tt.size, tt.total, start, end, tt.wantStart, tt.wantEnd)
		}
	}
}
