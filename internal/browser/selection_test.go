package browser

import (
	"slices"
	"testing"
)

func TestNewDomain(t *testing.T) {
	table := testTable(t)
	d := NewDomain(table, DefaultSentinelSeasons)

	if !slices.Equal(d.Seasons, []int{1, 2, 3}) {
		t.Errorf("Expected seasons [1 2 3], got %v", d.Seasons)
	}
	if d.Ratings != (Range{Lo: 7.1, Hi: 9.2}) {
		t.Errorf("Expected ratings [7.1, 9.2], got %+v", d.Ratings)
	}
	if !d.HasRatings {
		t.Error("Expected HasRatings to be true")
	}

	withSentinel := NewDomain(table, nil)
	if !slices.Equal(withSentinel.Seasons, []int{1, 2, 3, 27}) {
		t.Errorf("Expected seasons [1 2 3 27] without sentinels, got %v", withSentinel.Seasons)
	}
}

func TestNewSelectionDefaults(t *testing.T) {
	d := Domain{Seasons: []int{3, 5}, Ratings: Range{Lo: 6, Hi: 9}, HasRatings: true}
	sel := NewSelection(d)

	expected := Selection{Season: 3, Rating: Range{Lo: 6, Hi: 9}}
	if sel != expected {
		t.Errorf("Expected %+v, got %+v", expected, sel)
	}
	if sel.Mode() != ModeBrowse {
		t.Errorf("Expected browse mode, got %s", sel.Mode())
	}
	if sel.RatingActive(d) || sel.CastActive() {
		t.Error("Expected no active filters by default")
	}
}

func TestSelectionReconcile(t *testing.T) {
	d := Domain{Seasons: []int{1, 2, 3}, Ratings: Range{Lo: 6, Hi: 9}, HasRatings: true}

	tests := []struct {
		name     string
		in       Selection
		expected Selection
	}{
		{
			name:     "known season kept",
			in:       Selection{Season: 2, Rating: Range{Lo: 7, Hi: 8}},
			expected: Selection{Season: 2, Rating: Range{Lo: 7, Hi: 8}},
		},
		{
			name:     "sentinel season reset",
			in:       Selection{Season: 27, Rating: Range{Lo: 6, Hi: 9}},
			expected: Selection{Season: 1, Rating: Range{Lo: 6, Hi: 9}},
		},
		{
			name:     "range clamped",
			in:       Selection{Season: 3, Rating: Range{Lo: 0, Hi: 10}},
			expected: Selection{Season: 3, Rating: Range{Lo: 6, Hi: 9}},
		},
		{
			name:     "search and cast untouched",
			in:       Selection{Season: 1, Search: "x", Cast: "Ice-T", Rating: Range{Lo: 6, Hi: 9}},
			expected: Selection{Season: 1, Search: "x", Cast: "Ice-T", Rating: Range{Lo: 6, Hi: 9}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.Reconcile(d); got != tt.expected {
				t.Errorf("Expected %+v, got %+v", tt.expected, got)
			}
		})
	}
}

func TestSelectSeasonRejectsUnknown(t *testing.T) {
	d := Domain{Seasons: []int{1, 2}}
	sel := NewSelection(d)

	if sel.SelectSeason(d, 27) {
		t.Error("Expected sentinel season to be rejected")
	}
	if sel.Season != 1 {
		t.Errorf("Expected season to stay 1, got %d", sel.Season)
	}
	if !sel.SelectSeason(d, 2) || sel.Season != 2 {
		t.Errorf("Expected season 2 to be selected, got %d", sel.Season)
	}
}

func TestToggleCast(t *testing.T) {
	var sel Selection

	sel.ToggleCast("Olivia Benson")
	if sel.Cast != "Olivia Benson" {
		t.Fatalf("Expected Olivia Benson, got %q", sel.Cast)
	}

	sel.ToggleCast("Ice-T")
	if sel.Cast != "Ice-T" {
		t.Fatalf("Expected switching to Ice-T, got %q", sel.Cast)
	}

	sel.ToggleCast("Ice-T")
	if sel.Cast != "" {
		t.Fatalf("Expected cleared cast, got %q", sel.Cast)
	}

	sel.ToggleCast("  ")
	if sel.Cast != "" {
		t.Fatalf("Expected blank name to clear, got %q", sel.Cast)
	}
}
