package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dscvit/dscv/pkg/cookie"
	"github.com/dscvit/dscv/pkg/httpserver"
	"github.com/dscvit/dscv/pkg/logger"
	"github.com/dscvit/dscv/pkg/requestid"
	"github.com/dscvit/dscv/pkg/session"
	"github.com/dscvit/dscv/pkg/users"
)

// Deps are the collaborators the router is built from.
type Deps struct {
	Logger   *slog.Logger
	Cookies  *cookie.Manager
	Sessions *session.Resolver
	Users    users.Storage
	Checks   []httpserver.Check

	AllowedOrigins []string
	RequestTimeout time.Duration
}

// NewRouter builds the HTTP handler:
//
//	GET  /healthz      liveness
//	GET  /readyz       readiness of every check
//	GET  /v1/session   the caller's session identifier
//	POST /v1/users/me  create the anonymous user row if missing
//	GET  /v1/users/me  the caller's user row
//	PUT  /v1/users/me  replace the caller's profile fields
func NewRouter(d Deps) http.Handler {
	log := d.Logger
	if log == nil {
		log = logger.Discard()
	}
	timeout := d.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	r := chi.NewRouter()
	r.Use(
		middleware.RealIP,
		requestid.Middleware,
		accessLog(log),
		middleware.Recoverer,
	)

	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, d.Checks...))

	r.Route("/v1", func(r chi.Router) {
		r.Use(
			cors(d.AllowedOrigins),
			middleware.Timeout(timeout),
			d.Sessions.Middleware(d.Cookies),
		)

		r.Get("/session", getSession)
		r.Route("/users", NewUsersHandler(d.Users, log).Routes)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, errTypeNotFound, "route not found")
	})

	return r
}
