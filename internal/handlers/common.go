package handlers

import (
	"encoding/json"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
	"github.com/lehigh-university-libraries/episode-explorer/internal/images"
	"github.com/lehigh-university-libraries/episode-explorer/internal/storage"
)

type Handler struct {
	engine     *browser.Engine
	selections *storage.SelectionStore
	fetcher    *images.Fetcher
	page       *template.Template
}

func New(engine *browser.Engine, fetcher *images.Fetcher) *Handler {
	return &Handler{
		engine:     engine,
		selections: storage.New(),
		fetcher:    fetcher,
		page:       template.Must(template.New("index.html").Funcs(templateFuncs).ParseFS(assets, "assets/index.html")),
	}
}

// Routes wires every endpoint of the explorer
func (h *Handler) Routes() *mux.Router {
	r := mux.NewRouter()

	r.HandleFunc("/", h.HandleIndex).Methods(http.MethodGet)
	r.HandleFunc("/select/season/{season:[0-9]+}", h.HandleSelectSeason).Methods(http.MethodPost)
	r.HandleFunc("/select/search", h.HandleSearch).Methods(http.MethodPost)
	r.HandleFunc("/select/rating", h.HandleRating).Methods(http.MethodPost)
	r.HandleFunc("/select/cast", h.HandleCast).Methods(http.MethodPost)
	r.HandleFunc("/select/reset", h.HandleReset).Methods(http.MethodPost)

	r.HandleFunc("/api/views", h.HandleViews).Methods(http.MethodGet)
	r.HandleFunc("/api/selection", h.HandleSelection).Methods(http.MethodPut)

	r.HandleFunc("/images/{season:[0-9]+}/{episode:[0-9]+}", h.HandleImage).Methods(http.MethodGet)
	r.PathPrefix("/static/").HandlerFunc(h.HandleStatic).Methods(http.MethodGet)
	r.HandleFunc("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		if _, err := w.Write([]byte("OK")); err != nil {
			slog.Error("Unable to write healthcheck", "err", err)
		}
	})

	return r
}

// Response helpers
func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(data); err != nil {
		slog.Error("Unable to encode JSON response", "err", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, code int) {
	slog.Error(message)
	http.Error(w, message, code)
}

func (h *Handler) redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
