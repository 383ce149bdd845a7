package handlers

import (
	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
)

// Chart geometry in SVG user units
const (
	chartWidth    = 640
	chartHeight   = 220
	chartPadLeft  = 32
	chartPadBelow = 24
	chartPadAbove = 12
	barGap        = 4
)

// Chart is a laid out per-season bar chart
type Chart struct {
	Width  int
	Height int
	Max    int
	Bars   []Bar
	Ticks  []Tick
}

// Bar is one season's bar
type Bar struct {
	Season   int
	Count    int
	X        float64
	Y        float64
	Width    float64
	Height   float64
	LabelX   float64
	Selected bool
}

// Tick is a horizontal grid line on the count axis
type Tick struct {
	Value int
	Y     float64
}

// buildChart lays out counts on a vertical axis fixed to 0..scaleMax so bar
// heights stay comparable while filters change.
func buildChart(counts []browser.SeasonCount, scaleMax int, selected int) Chart {
	c := Chart{Width: chartWidth, Height: chartHeight, Max: scaleMax}
	if len(counts) == 0 {
		return c
	}

	plotW := float64(chartWidth - chartPadLeft)
	plotH := float64(chartHeight - chartPadBelow - chartPadAbove)
	baseline := float64(chartHeight - chartPadBelow)
	slot := plotW / float64(len(counts))
	barW := max(slot-barGap, 1)

	for i, sc := range counts {
		h := 0.0
		if scaleMax > 0 {
			h = plotH * float64(min(sc.Count, scaleMax)) / float64(scaleMax)
		}
		x := float64(chartPadLeft) + float64(i)*slot + (slot-barW)/2
		c.Bars = append(c.Bars, Bar{
			Season:   sc.Season,
			Count:    sc.Count,
			X:        x,
			Y:        baseline - h,
			Width:    barW,
			Height:   h,
			LabelX:   x + barW/2,
			Selected: sc.Season == selected,
		})
	}

	if scaleMax > 0 {
		for _, v := range []int{0, scaleMax / 2, scaleMax} {
			c.Ticks = append(c.Ticks, Tick{
				Value: v,
				Y:     baseline - plotH*float64(v)/float64(scaleMax),
			})
		}
	}
	return c
}
