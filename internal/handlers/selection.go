package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
)

// selectionPatch is the body of PUT /api/selection. Omitted fields leave
// the current selection unchanged.
type selectionPatch struct {
	Reset      bool           `json:"reset"`
	Season     *int           `json:"season"`
	Search     *string        `json:"search"`
	Rating     *browser.Range `json:"rating"`
	ToggleCast *string        `json:"toggle_cast"`
}

func (p selectionPatch) validate(d browser.Domain) string {
	if p.Season != nil && !d.HasSeason(*p.Season) {
		return "Unknown season " + strconv.Itoa(*p.Season)
	}
	if p.Rating != nil && p.Rating.Lo > p.Rating.Hi {
		return "Invalid rating range: minimum is above maximum"
	}
	return ""
}

func (p selectionPatch) apply(d browser.Domain, sel *browser.Selection) {
	if p.Reset {
		*sel = browser.NewSelection(d)
	}
	if p.Season != nil {
		sel.SelectSeason(d, *p.Season)
	}
	if p.Search != nil {
		sel.SetSearch(*p.Search)
	}
	if p.Rating != nil {
		sel.SetRating(d, *p.Rating)
	}
	if p.ToggleCast != nil {
		sel.ToggleCast(*p.ToggleCast)
	}
}

// HandleViews returns every derived view for the session's selection
// GET /api/views
func (h *Handler) HandleViews(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, h.engine.Derive(h.currentSelection(w, r)))
}

// HandleSelection applies a partial selection change and returns the new views
// PUT /api/selection
func (h *Handler) HandleSelection(w http.ResponseWriter, r *http.Request) {
	var patch selectionPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		h.writeError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	d := h.engine.Domain()
	if msg := patch.validate(d); msg != "" {
		h.writeError(w, msg, http.StatusBadRequest)
		return
	}

	sel := h.updateSelection(w, r, func(s *browser.Selection) {
		patch.apply(d, s)
	})
	h.writeJSON(w, h.engine.Derive(sel))
}

// POST /select/season/{season}
func (h *Handler) HandleSelectSeason(w http.ResponseWriter, r *http.Request) {
	season, err := strconv.Atoi(mux.Vars(r)["season"])
	if err != nil || !h.engine.Domain().HasSeason(season) {
		h.writeError(w, "Season not found", http.StatusNotFound)
		return
	}

	h.updateSelection(w, r, func(s *browser.Selection) {
		s.SelectSeason(h.engine.Domain(), season)
	})
	h.redirectHome(w, r)
}

// POST /select/search
func (h *Handler) HandleSearch(w http.ResponseWriter, r *http.Request) {
	query := r.FormValue("q")
	h.updateSelection(w, r, func(s *browser.Selection) {
		s.SetSearch(query)
	})
	h.redirectHome(w, r)
}

// POST /select/rating
func (h *Handler) HandleRating(w http.ResponseWriter, r *http.Request) {
	lo, errLo := strconv.ParseFloat(strings.TrimSpace(r.FormValue("lo")), 64)
	hi, errHi := strconv.ParseFloat(strings.TrimSpace(r.FormValue("hi")), 64)
	if errLo != nil || errHi != nil {
		h.writeError(w, "Rating bounds must be numbers", http.StatusBadRequest)
		return
	}

	patch := selectionPatch{Rating: &browser.Range{Lo: lo, Hi: hi}}
	d := h.engine.Domain()
	if msg := patch.validate(d); msg != "" {
		h.writeError(w, msg, http.StatusBadRequest)
		return
	}

	h.updateSelection(w, r, func(s *browser.Selection) {
		patch.apply(d, s)
	})
	h.redirectHome(w, r)
}

// POST /select/cast
func (h *Handler) HandleCast(w http.ResponseWriter, r *http.Request) {
	name := r.FormValue("name")
	h.updateSelection(w, r, func(s *browser.Selection) {
		s.ToggleCast(name)
	})
	h.redirectHome(w, r)
}

// POST /select/reset
func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	h.selections.Delete(h.sessionID(w, r))
	h.redirectHome(w, r)
}
