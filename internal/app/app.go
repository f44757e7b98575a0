package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	"github.com/dscvit/dscv/internal/api"
	"github.com/dscvit/dscv/internal/db/migrations"
	"github.com/dscvit/dscv/pkg/cookie"
	"github.com/dscvit/dscv/pkg/environment"
	"github.com/dscvit/dscv/pkg/httpserver"
	"github.com/dscvit/dscv/pkg/logger"
	"github.com/dscvit/dscv/pkg/pg"
	"github.com/dscvit/dscv/pkg/redis"
	"github.com/dscvit/dscv/pkg/requestid"
	"github.com/dscvit/dscv/pkg/session"
	"github.com/dscvit/dscv/pkg/usercache"
	"github.com/dscvit/dscv/pkg/users"
)

// NewLogger builds the process logger from cfg.
func NewLogger(cfg Config) (*slog.Logger, error) {
	return logger.NewFromConfig(cfg.Log, environment.Parse(cfg.Env), cfg.ServiceName,
		logger.WithContextExtractors(requestid.LogExtractor, session.LogExtractor),
	)
}

// Migrate connects to Postgres and applies the embedded migrations, or the
// ones in cfg.Postgres.MigrationsPath when fromDisk is set.
func Migrate(ctx context.Context, cfg Config, log *slog.Logger, fromDisk bool) error {
	pool, err := pg.Connect(ctx, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if fromDisk {
		return pg.Migrate(ctx, pool, cfg.Postgres, log)
	}
	return pg.MigrateFS(ctx, pool, migrations.FS, cfg.Postgres, log)
}

// Serve connects every dependency and runs the HTTP server until ctx is
// cancelled or the process is signalled.
func Serve(ctx context.Context, cfg Config, log *slog.Logger) error {
	cookies, err := cookie.NewFromConfig(cfg.Cookie)
	if err != nil {
		return err
	}

	pool, err := pg.Connect(ctx, cfg.Postgres, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Postgres.AutoMigrate {
		if err := pg.MigrateFS(ctx, pool, migrations.FS, cfg.Postgres, log); err != nil {
			return err
		}
	}

	store, checks, closeCache, err := userStorage(ctx, cfg, pool, log)
	if err != nil {
		return err
	}
	defer closeCache()

	router := api.NewRouter(api.Deps{
		Logger:         log,
		Cookies:        cookies,
		Sessions:       session.NewFromConfig(cfg.Session, session.WithLogger(log)),
		Users:          store,
		Checks:         checks,
		AllowedOrigins: cfg.AllowedOrigins,
		RequestTimeout: cfg.HTTP.WriteTimeout,
	})

	return httpserver.New(cfg.HTTP, httpserver.WithLogger(log)).Run(ctx, router)
}

// userStorage returns the Postgres store, wrapped in the Redis cache when
// REDIS_URL is set, together with the readiness checks for what it uses.
func userStorage(ctx context.Context, cfg Config, pool *pgxpool.Pool, log *slog.Logger) (users.Storage, []httpserver.Check, func(), error) {
	var store users.Storage = users.NewStore(pool)
	checks := []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}}

	if !cfg.Redis.Enabled() {
		log.InfoContext(ctx, "user cache disabled", logger.Component("app"))
		return store, checks, func() {}, nil
	}

	client, err := redis.Connect(ctx, cfg.Redis, log)
	if err != nil {
		return nil, nil, nil, err
	}

	closeFn := func() {
		if err := client.Close(); err != nil && !errors.Is(err, goredis.ErrClosed) {
			log.WarnContext(ctx, "failed to close redis client", logger.Component("app"), logger.Error(err))
		}
	}

	store = usercache.NewFromConfig(cfg.UserCache, store, client, usercache.WithLogger(log))
	checks = append(checks, httpserver.Check{Name: "redis", Fn: redis.Healthcheck(client)})

	return store, checks, closeFn, nil
}
