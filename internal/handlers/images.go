package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
)

// HandleImage proxies an episode's image. Fetch failures of any kind are
// answered with the placeholder image rather than an error.
// GET /images/{season}/{episode}
func (h *Handler) HandleImage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	season, _ := strconv.Atoi(vars["season"])
	number, _ := strconv.Atoi(vars["episode"])

	ep, ok := h.engine.Table().Find(season, number)
	if !ok {
		h.writeError(w, "Episode not found", http.StatusNotFound)
		return
	}

	img := h.fetcher.FetchOrPlaceholder(r.Context(), ep.ImageURL)
	w.Header().Set("Content-Type", img.ContentType)
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(img.Data); err != nil {
		slog.Error("Unable to write image", "err", err)
	}
}
