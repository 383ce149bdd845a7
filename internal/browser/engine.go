package browser

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/cases"

	"github.com/lehigh-university-libraries/episode-explorer/internal/episodes"
)

// DefaultTopCastSize is the number of cast members offered as filter buttons
const DefaultTopCastSize = 15

// SeasonCount is one bar of the per-season chart
type SeasonCount struct {
	Season int `json:"season"`
	Count  int `json:"count"`
}

// Header summarizes the current selection above the episode list
type Header struct {
	Title  string `json:"title"`
	Detail string `json:"detail,omitempty"`
	Count  int    `json:"count"`
}

// TopCast returns the n most frequent cast members across the whole table.
// Equal counts keep the order in which names were first encountered.
func TopCast(table *episodes.Table, n int) []string {
	if n <= 0 {
		return []string{}
	}

	counts := make(map[string]int)
	var order []string
	table.Each(func(ep episodes.Episode) {
		for _, name := range ep.MainCast {
			if _, ok := counts[name]; !ok {
				order = append(order, name)
			}
			counts[name]++
		}
	})

	// insertion sort keeps first-seen order for ties
	ranked := make([]string, 0, len(order))
	for _, name := range order {
		i := len(ranked)
		for i > 0 && counts[ranked[i-1]] < counts[name] {
			i--
		}
		ranked = append(ranked, "")
		copy(ranked[i+1:], ranked[i:])
		ranked[i] = name
	}

	if len(ranked) > n {
		ranked = ranked[:n]
	}
	return ranked
}

// VisibleEpisodes returns the episodes to display for a selection, in
// table order. With a search term every season is searched; otherwise only
// the selected season is shown. Rating and cast filters apply in both modes.
func VisibleEpisodes(table *episodes.Table, d Domain, sel Selection) []episodes.Episode {
	match := newMatcher(d, sel)
	visible := []episodes.Episode{}
	table.Each(func(ep episodes.Episode) {
		if !match.rating(ep) || !match.cast(ep) {
			return
		}
		if sel.Mode() == ModeSearch {
			if !match.text(ep) {
				return
			}
		} else if ep.Season != sel.Season {
			return
		}
		ep.MainCast = slices.Clone(ep.MainCast)
		visible = append(visible, ep)
	})
	return visible
}

// SeasonCounts counts episodes per season under the rating and cast filters
// only. Every season of the domain is listed once, ascending, including
// seasons whose count dropped to zero.
func SeasonCounts(table *episodes.Table, d Domain, sel Selection) []SeasonCount {
	match := newMatcher(d, sel)
	return countSeasons(table, d, func(ep episodes.Episode) bool {
		return match.rating(ep) && match.cast(ep)
	})
}

// ChartMax is the largest per-season count of the unfiltered table. It
// fixes the chart's vertical scale across filter states.
func ChartMax(table *episodes.Table, d Domain) int {
	highest := 0
	for _, sc := range countSeasons(table, d, func(episodes.Episode) bool { return true }) {
		highest = max(highest, sc.Count)
	}
	return highest
}

func countSeasons(table *episodes.Table, d Domain, keep func(episodes.Episode) bool) []SeasonCount {
	index := make(map[int]int, len(d.Seasons))
	counts := make([]SeasonCount, len(d.Seasons))
	for i, season := range d.Seasons {
		counts[i] = SeasonCount{Season: season}
		index[season] = i
	}

	table.Each(func(ep episodes.Episode) {
		i, ok := index[ep.Season]
		if ok && keep(ep) {
			counts[i].Count++
		}
	})
	return counts
}

// BuildHeader describes the selection and the number of visible episodes
func BuildHeader(d Domain, sel Selection, count int) Header {
	if sel.Mode() == ModeSearch {
		return Header{
			Title: fmt.Sprintf("Search Results for '%s' (%d episodes found)", sel.SearchTerm(), count),
			Count: count,
		}
	}

	var active []string
	if sel.RatingActive(d) {
		active = append(active, fmt.Sprintf("rated %.1f to %.1f", sel.Rating.Lo, sel.Rating.Hi))
	}
	if sel.CastActive() {
		active = append(active, "featuring "+sel.Cast)
	}

	title := fmt.Sprintf("Season %d", sel.Season)
	if len(active) > 0 {
		title += " (" + strings.Join(active, " and ") + ")"
	}
	return Header{
		Title:  title,
		Detail: fmt.Sprintf("Episodes: %d", count),
		Count:  count,
	}
}

type matcher struct {
	sel         Selection
	ratingOn    bool
	foldedQuery string
	fold        cases.Caser
}

func newMatcher(d Domain, sel Selection) *matcher {
	m := &matcher{
		sel:      sel,
		ratingOn: sel.RatingActive(d),
		fold:     cases.Fold(),
	}
	m.foldedQuery = m.fold.String(sel.SearchTerm())
	return m
}

// rating passes everything while the range spans the whole domain. Once
// narrowed, episodes without a rating never pass.
func (m *matcher) rating(ep episodes.Episode) bool {
	if !m.ratingOn {
		return true
	}
	return ep.Rating != nil && m.sel.Rating.Contains(*ep.Rating)
}

func (m *matcher) cast(ep episodes.Episode) bool {
	return m.sel.Cast == "" || ep.MainCast.Contains(m.sel.Cast)
}

func (m *matcher) text(ep episodes.Episode) bool {
	if m.contains(ep.Title) || m.contains(ep.Description) {
		return true
	}
	for _, name := range ep.MainCast {
		if m.contains(name) {
			return true
		}
	}
	return false
}

func (m *matcher) contains(s string) bool {
	return strings.Contains(m.fold.String(s), m.foldedQuery)
}
