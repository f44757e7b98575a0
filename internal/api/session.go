package api

import (
	"net/http"

	"github.com/dscvit/dscv/pkg/session"
)

type sessionView struct {
	ID string `json:"id"`
}

// getSession answers with the identifier the session middleware resolved.
func getSession(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, sessionView{ID: session.MustIDFromContext(r.Context())})
}
