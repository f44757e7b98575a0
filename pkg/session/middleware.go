package session

import (
	"net/http"

	"github.com/dscvit/dscv/pkg/cookie"
)

// Middleware resolves the session once per request and stores the identifier
// in the request context. The Set-Cookie header, when needed, is written before
// next runs.
func (r *Resolver) Middleware(cookies *cookie.Manager) func(http.Handler) http.Handler {
	if cookies == nil {
		panic("session: cookie manager is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			id := r.Resolve(req.Context(), cookies.Jar(w, req))
			next.ServeHTTP(w, req.WithContext(WithID(req.Context(), id)))
		})
	}
}
