package browser

import (
	"slices"
	"strings"

	"github.com/lehigh-university-libraries/episode-explorer/internal/episodes"
)

// DefaultSentinelSeasons lists seasons that exist in the scraped data but
// carry no real episodes.
var DefaultSentinelSeasons = []int{27}

// Range is a closed rating interval [Lo, Hi]
type Range struct {
	Lo float64 `json:"lo"`
	Hi float64 `json:"hi"`
}

// Contains reports whether v lies inside the interval
func (r Range) Contains(v float64) bool {
	return r.Lo <= v && v <= r.Hi
}

// Domain holds the selectable values derived from a table
type Domain struct {
	Seasons    []int `json:"seasons"`
	Ratings    Range `json:"ratings"`
	HasRatings bool  `json:"has_ratings"`
}

// NewDomain derives the season and rating domains from the table.
// Sentinel seasons are left out of the season domain.
func NewDomain(table *episodes.Table, sentinels []int) Domain {
	d := Domain{Seasons: table.Seasons(sentinels...)}
	lo, hi, ok := table.RatingBounds()
	if ok {
		d.Ratings = Range{Lo: lo, Hi: hi}
		d.HasRatings = true
	} else {
		d.Ratings = Range{Lo: 0, Hi: 10}
	}
	return d
}

// FirstSeason returns the lowest season, or 0 for an empty domain
func (d Domain) FirstSeason() int {
	if len(d.Seasons) == 0 {
		return 0
	}
	return d.Seasons[0]
}

// HasSeason reports whether season is selectable
func (d Domain) HasSeason(season int) bool {
	return slices.Contains(d.Seasons, season)
}

// Mode is the active filtering mode of a selection
type Mode string

const (
	ModeBrowse Mode = "browse"
	ModeSearch Mode = "search"
)

// Selection is the user's current filter state. The zero value is not
// meaningful; start from NewSelection.
type Selection struct {
	Season int    `json:"season"`
	Search string `json:"search"`
	Rating Range  `json:"rating"`
	Cast   string `json:"cast,omitempty"` // empty means no cast filter
}

// NewSelection returns the default selection for a domain: first season,
// no search, full rating range, no cast member.
func NewSelection(d Domain) Selection {
	return Selection{
		Season: d.FirstSeason(),
		Rating: d.Ratings,
	}
}

// Reconcile fits the selection back into the domain. An unknown season
// falls back to the first one and the rating range is clamped to the
// observed bounds.
func (s Selection) Reconcile(d Domain) Selection {
	if !d.HasSeason(s.Season) {
		s.Season = d.FirstSeason()
	}
	s.Rating.Lo = min(max(s.Rating.Lo, d.Ratings.Lo), d.Ratings.Hi)
	s.Rating.Hi = max(min(s.Rating.Hi, d.Ratings.Hi), d.Ratings.Lo)
	return s
}

// Mode reports search mode when the search text is not blank
func (s Selection) Mode() Mode {
	if s.SearchTerm() != "" {
		return ModeSearch
	}
	return ModeBrowse
}

// SearchTerm is the search text with surrounding whitespace removed
func (s Selection) SearchTerm() string {
	return strings.TrimSpace(s.Search)
}

// SelectSeason switches the browsed season. Unknown seasons are ignored.
func (s *Selection) SelectSeason(d Domain, season int) bool {
	if !d.HasSeason(season) {
		return false
	}
	s.Season = season
	return true
}

// SetSearch replaces the search text
func (s *Selection) SetSearch(text string) {
	s.Search = text
}

// SetRating replaces the rating range, clamped to the domain. lo > hi is
// kept as given and simply matches nothing.
func (s *Selection) SetRating(d Domain, r Range) {
	s.Rating = r
	s.Rating.Lo = min(max(s.Rating.Lo, d.Ratings.Lo), d.Ratings.Hi)
	s.Rating.Hi = max(min(s.Rating.Hi, d.Ratings.Hi), d.Ratings.Lo)
}

// ToggleCast selects name, or clears the cast filter when name is already
// selected.
func (s *Selection) ToggleCast(name string) {
	name = strings.TrimSpace(name)
	if name == "" || s.Cast == name {
		s.Cast = ""
		return
	}
	s.Cast = name
}

// RatingActive reports whether the rating range is narrower than the domain
func (s Selection) RatingActive(d Domain) bool {
	return s.Rating != d.Ratings
}

// CastActive reports whether a cast member is selected
func (s Selection) CastActive() bool {
	return s.Cast != ""
}
