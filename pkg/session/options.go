package session

import "log/slog"

// Option is a functional option for configuring the Resolver.
type Option func(*Resolver)

// WithConfig replaces the whole configuration.
func WithConfig(cfg Config) Option {
	return func(r *Resolver) {
		r.config = cfg
	}
}

// WithCookieName sets the session cookie name.
func WithCookieName(name string) Option {
	return func(r *Resolver) {
		r.config.CookieName = name
	}
}

// WithDomain scopes the session cookie to domain.
func WithDomain(domain string) Option {
	return func(r *Resolver) {
		r.config.Domain = domain
	}
}

// WithSecure toggles the Secure cookie flag.
func WithSecure(secure bool) Option {
	return func(r *Resolver) {
		r.config.Secure = secure
	}
}

// WithPermanent toggles the long Max-Age.
func WithPermanent(permanent bool) Option {
	return func(r *Resolver) {
		r.config.Permanent = permanent
	}
}

// WithGenerator replaces the identifier generator. Nil is ignored.
func WithGenerator(fn func() string) Option {
	return func(r *Resolver) {
		if fn != nil {
			r.generate = fn
		}
	}
}

// WithLogger sets the logger used to report reminted sessions. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}
