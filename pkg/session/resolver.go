package session

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dscvit/dscv/pkg/cookie"
	"github.com/dscvit/dscv/pkg/logger"
	"github.com/dscvit/dscv/pkg/phonetic"
)

// Jar is the private-cookie surface the resolver needs from the current
// request/response exchange. *cookie.Jar satisfies it.
type Jar interface {
	GetPrivate(name string) (string, error)
	AddPrivate(name, value string, opts ...cookie.Option) error
}

// Resolver maps a cookie jar to a stable caller identifier.
type Resolver struct {
	config   Config
	generate func() string
	logger   *slog.Logger
}

// New creates a Resolver with DefaultConfig, the phonetic generator and a
// discarding logger, then applies opts.
func New(opts ...Option) *Resolver {
	r := &Resolver{
		config:   DefaultConfig(),
		generate: phonetic.New,
		logger:   logger.Discard(),
	}

	for _, opt := range opts {
		opt(r)
	}

	if r.config.CookieName == "" {
		r.config.CookieName = DefaultConfig().CookieName
	}

	return r
}

// Config returns the resolver configuration.
func (r *Resolver) Config() Config {
	return r.config
}

// Resolve returns the caller identifier stored in jar.
//
// When the session cookie is present and decrypts, its value is returned and
// jar is not touched. Otherwise a new identifier is generated, written to jar
// as a private cookie, and returned. Resolve never fails: unreadable cookies
// are treated as absent, and a failed cookie write is logged while the new
// identifier is still returned.
func (r *Resolver) Resolve(ctx context.Context, jar Jar) string {
	id, err := jar.GetPrivate(r.config.CookieName)
	if err == nil && id != "" {
		return id
	}

	reason := "absent"
	if err != nil && !errors.Is(err, cookie.ErrCookieNotFound) {
		reason = "undecodable"
	} else if err == nil {
		reason = "empty"
	}

	id = r.generate()

	if err := jar.AddPrivate(r.config.CookieName, id, r.cookieOptions()...); err != nil {
		r.logger.WarnContext(ctx, "failed to write session cookie",
			logger.Component("session"),
			slog.String("cookie", r.config.CookieName),
			logger.Error(err),
		)
		return id
	}

	r.logger.DebugContext(ctx, "session minted",
		logger.Component("session"),
		slog.String("reason", reason),
	)

	return id
}

func (r *Resolver) cookieOptions() []cookie.Option {
	opts := []cookie.Option{
		cookie.WithPath("/"),
		cookie.WithHTTPOnly(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithSecure(r.config.Secure),
	}

	if r.config.Domain != "" {
		opts = append(opts, cookie.WithDomain(r.config.Domain))
	}
	if r.config.Permanent {
		opts = append(opts, cookie.WithPermanent())
	}

	return opts
}
