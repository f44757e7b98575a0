package usercache

import "time"

// Config holds cache settings.
type Config struct {
	TTL    time.Duration `env:"USER_CACHE_TTL" envDefault:"5m"`
	Prefix string        `env:"USER_CACHE_PREFIX" envDefault:"users:"`
}

// DefaultConfig returns default cache settings.
func DefaultConfig() Config {
	return Config{
		TTL:    5 * time.Minute,
		Prefix: "users:",
	}
}
