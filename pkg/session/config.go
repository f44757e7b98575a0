package session

// Config holds session cookie configuration.
type Config struct {
	// CookieName is the name of the private session cookie (default: "session").
	CookieName string `env:"SESSION_COOKIE_NAME" envDefault:"session"`

	// Domain scopes the cookie to the serving site, e.g. ".dscv.it". Empty means host-only.
	Domain string `env:"SESSION_COOKIE_DOMAIN" envDefault:""`

	// Secure sets the Secure flag. Only disable for plain-HTTP local development.
	Secure bool `env:"SESSION_COOKIE_SECURE" envDefault:"true"`

	// Permanent gives the cookie a 20 year Max-Age instead of a browser-session lifetime.
	Permanent bool `env:"SESSION_COOKIE_PERMANENT" envDefault:"true"`
}

// DefaultConfig returns default session configuration.
func DefaultConfig() Config {
	return Config{
		CookieName: "session",
		Secure:     true,
		Permanent:  true,
	}
}

// NewFromConfig creates a new Resolver from the provided Config.
func NewFromConfig(cfg Config, opts ...Option) *Resolver {
	configOpts := []Option{
		WithConfig(cfg),
	}

	configOpts = append(configOpts, opts...)

	return New(configOpts...)
}
