package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/lehigh-university-libraries/episode-explorer/internal/browser"
)

const sessionCookie = "explorer_session"

// sessionID returns the caller's session id, issuing a new cookie on the
// first visit.
func (h *Handler) sessionID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(sessionCookie); err == nil {
		if _, err := uuid.Parse(c.Value); err == nil {
			return c.Value
		}
	}

	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

// currentSelection returns the session's selection, or the defaults for a
// new session.
func (h *Handler) currentSelection(w http.ResponseWriter, r *http.Request) browser.Selection {
	sel, ok := h.selections.Get(h.sessionID(w, r))
	if !ok {
		return h.engine.DefaultSelection()
	}
	return sel.Reconcile(h.engine.Domain())
}

func (h *Handler) updateSelection(w http.ResponseWriter, r *http.Request, fn func(*browser.Selection)) browser.Selection {
	return h.selections.Update(h.sessionID(w, r), h.engine.DefaultSelection(), fn)
}
