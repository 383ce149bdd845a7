package episodes

import (
	"fmt"
	"slices"
	"strings"
)

// Table is the normalized, read-only episode table for a session
type Table struct {
	episodes []Episode
}

// NewTable validates rows and wraps them in a Table. Rows keep their order.
func NewTable(rows []Episode) (*Table, error) {
	type key struct{ season, number int }
	seen := make(map[key]int, len(rows))

	episodes := make([]Episode, len(rows))
	for i, ep := range rows {
		if ep.Season <= 0 {
			return nil, fmt.Errorf("row %d: season must be positive, got %d", i+1, ep.Season)
		}
		if ep.Number <= 0 {
			return nil, fmt.Errorf("row %d: episode number must be positive, got %d", i+1, ep.Number)
		}
		if strings.TrimSpace(ep.Title) == "" {
			return nil, fmt.Errorf("row %d: %s has an empty title", i+1, ep.Code())
		}
		k := key{ep.Season, ep.Number}
		if prev, dup := seen[k]; dup {
			return nil, fmt.Errorf("row %d: duplicate episode %s (first seen at row %d)", i+1, ep.Code(), prev)
		}
		seen[k] = i + 1

		if ep.MainCast == nil {
			ep.MainCast = Cast{}
		} else {
			ep.MainCast = ep.MainCast.Normalize()
		}
		episodes[i] = ep
	}

	return &Table{episodes: episodes}, nil
}

// Len returns the number of episodes
func (t *Table) Len() int {
	return len(t.episodes)
}

// Episodes returns a copy of all rows in table order. Cast slices are
// copied too, so callers cannot modify the table through them.
func (t *Table) Episodes() []Episode {
	out := make([]Episode, len(t.episodes))
	for i, ep := range t.episodes {
		ep.MainCast = slices.Clone(ep.MainCast)
		out[i] = ep
	}
	return out
}

// Each calls fn for every row in table order without copying the table.
// fn must not retain or modify the episode's cast slice.
func (t *Table) Each(fn func(Episode)) {
	for _, ep := range t.episodes {
		fn(ep)
	}
}

// Find looks up an episode by season and episode number
func (t *Table) Find(season, number int) (Episode, bool) {
	for _, ep := range t.episodes {
		if ep.Season == season && ep.Number == number {
			return ep, true
		}
	}
	return Episode{}, false
}

// Seasons returns the distinct seasons in ascending order, leaving out any
// season listed in exclude.
func (t *Table) Seasons(exclude ...int) []int {
	var seasons []int
	for _, ep := range t.episodes {
		if slices.Contains(exclude, ep.Season) || slices.Contains(seasons, ep.Season) {
			continue
		}
		seasons = append(seasons, ep.Season)
	}
	slices.Sort(seasons)
	return seasons
}

// RatingBounds returns the lowest and highest rating present in the table.
// ok is false when no episode has a rating.
func (t *Table) RatingBounds() (lo, hi float64, ok bool) {
	for _, ep := range t.episodes {
		if ep.Rating == nil {
			continue
		}
		r := *ep.Rating
		if !ok {
			lo, hi, ok = r, r, true
			continue
		}
		lo = min(lo, r)
		hi = max(hi, r)
	}
	return lo, hi, ok
}
