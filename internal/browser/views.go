package browser

import (
	"slices"

	"github.com/lehigh-university-libraries/episode-explorer/internal/episodes"
)

// Views is everything the presentation layer renders for one selection
type Views struct {
	Selection    Selection          `json:"selection"`
	Mode         Mode               `json:"mode"`
	Header       Header             `json:"header"`
	Episodes     []episodes.Episode `json:"episodes"`
	TopCast      []string           `json:"top_cast"`
	SeasonCounts []SeasonCount      `json:"season_counts"`
	ChartMax     int                `json:"chart_max"`
	Domain       Domain             `json:"domain"`
}

// Engine derives views from an immutable table. The leaderboard and chart
// scale do not depend on the selection and are computed once.
type Engine struct {
	table    *episodes.Table
	domain   Domain
	topCast  []string
	chartMax int
}

// Options configures an Engine
type Options struct {
	SentinelSeasons []int
	TopCastSize     int
}

// NewEngine prepares an engine over table
func NewEngine(table *episodes.Table, opts Options) *Engine {
	if opts.SentinelSeasons == nil {
		opts.SentinelSeasons = DefaultSentinelSeasons
	}
	if opts.TopCastSize == 0 {
		opts.TopCastSize = DefaultTopCastSize
	}

	domain := NewDomain(table, opts.SentinelSeasons)
	return &Engine{
		table:    table,
		domain:   domain,
		topCast:  TopCast(table, opts.TopCastSize),
		chartMax: ChartMax(table, domain),
	}
}

// Domain returns the selectable seasons and rating bounds
func (e *Engine) Domain() Domain {
	return e.domain
}

// Table returns the underlying episode table
func (e *Engine) Table() *episodes.Table {
	return e.table
}

// DefaultSelection is the selection a new session starts with
func (e *Engine) DefaultSelection() Selection {
	return NewSelection(e.domain)
}

// Derive recomputes every view for sel. The selection is reconciled with
// the domain first; the reconciled value is returned in Views.Selection.
func (e *Engine) Derive(sel Selection) Views {
	sel = sel.Reconcile(e.domain)
	visible := VisibleEpisodes(e.table, e.domain, sel)

	return Views{
		Selection:    sel,
		Mode:         sel.Mode(),
		Header:       BuildHeader(e.domain, sel, len(visible)),
		Episodes:     visible,
		TopCast:      slices.Clone(e.topCast),
		SeasonCounts: SeasonCounts(e.table, e.domain, sel),
		ChartMax:     e.chartMax,
		Domain:       e.domain,
	}
}
