package handlers

import (
	"embed"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
)

//go:embed assets
var assets embed.FS

// seasonColumns is the width of the season button grid
const seasonColumns = 5

var templateFuncs = template.FuncMap{
	"rating": func(r *float64) string {
		if r == nil {
			return ""
		}
		return strconv.FormatFloat(*r, 'f', -1, 64)
	},
	// num keeps full precision so an untouched rating form posts back the
	// exact domain bounds
	"num": func(f float64) string {
		return strconv.FormatFloat(f, 'f', -1, 64)
	},
}

type pageData struct {
	Views         browser.Views
	Chart         Chart
	SeasonColumns int
	Browsing      bool
}

// HandleIndex renders the explorer page for the session's selection
// GET /
func (h *Handler) HandleIndex(w http.ResponseWriter, r *http.Request) {
	views := h.engine.Derive(h.currentSelection(w, r))

	data := pageData{
		Views:         views,
		Chart:         buildChart(views.SeasonCounts, views.ChartMax, views.Selection.Season),
		SeasonColumns: seasonColumns,
		Browsing:      views.Mode == browser.ModeBrowse,
	}

	var buf strings.Builder
	if err := h.page.Execute(&buf, data); err != nil {
		h.writeError(w, "Failed to render page: "+err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if _, err := w.Write([]byte(buf.String())); err != nil {
		slog.Error("Unable to write page", "err", err)
	}
}

// HandleStatic serves the embedded stylesheet and scripts
// GET /static/...
func (h *Handler) HandleStatic(w http.ResponseWriter, r *http.Request) {
	filepath := strings.TrimPrefix(r.URL.Path, "/static/")

	// Prevent directory traversal attacks
	if filepath == "" || strings.Contains(filepath, "..") {
		http.Error(w, "Invalid file path", http.StatusBadRequest)
		return
	}

	sub, err := fs.Sub(assets, "assets")
	if err != nil {
		h.writeError(w, "Static assets unavailable", http.StatusInternalServerError)
		return
	}

	// Set appropriate content type based on file extension
	switch {
	case strings.HasSuffix(filepath, ".css"):
		w.Header().Set("Content-Type", "text/css")
	case strings.HasSuffix(filepath, ".js"):
		w.Header().Set("Content-Type", "application/javascript")
	}

	http.ServeFileFS(w, r, sub, filepath)
}
