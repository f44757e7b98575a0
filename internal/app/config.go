package app

import (
	"github.com/dscvit/dscv/pkg/config"
	"github.com/dscvit/dscv/pkg/cookie"
	"github.com/dscvit/dscv/pkg/httpserver"
	"github.com/dscvit/dscv/pkg/logger"
	"github.com/dscvit/dscv/pkg/pg"
	"github.com/dscvit/dscv/pkg/redis"
	"github.com/dscvit/dscv/pkg/session"
	"github.com/dscvit/dscv/pkg/usercache"
)

// Config is the whole process configuration, read from the environment.
type Config struct {
	Env            string   `env:"APP_ENV" envDefault:"development"`
	ServiceName    string   `env:"SERVICE_NAME" envDefault:"dscv"`
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","`

	Log       logger.Config
	HTTP      httpserver.Config
	Cookie    cookie.Config
	Session   session.Config
	Postgres  pg.Config
	Redis     redis.Config
	UserCache usercache.Config
}

// LoadConfig reads envFiles (or ./.env when none are given) and parses the
// environment into a Config.
func LoadConfig(envFiles ...string) (Config, error) {
	if err := config.LoadEnv(envFiles...); err != nil {
		return Config{}, err
	}
	return config.Load[Config]()
}
