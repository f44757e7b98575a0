package usercache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/dscvit/dscv/pkg/logger"
	"github.com/dscvit/dscv/pkg/users"
)

// Cache is a read-through users.Storage backed by Redis.
//
// Postgres stays the source of truth. Redis failures are logged and the call
// falls through to the wrapped store; store errors, ErrNotFound included,
// are returned unchanged and never cached. Writes invalidate instead of
// caching, and rows that carry a password are not cached at all.
type Cache struct {
	next   users.Storage
	client redis.UniversalClient
	config Config
	logger *slog.Logger
}

var _ users.Storage = (*Cache)(nil)

var errStale = errors.New("usercache: stale fill")

// Option configures a Cache.
type Option func(*Cache)

// WithLogger sets the logger for cache failures. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(c *Cache) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithConfig replaces the TTL and key prefix.
func WithConfig(cfg Config) Option {
	return func(c *Cache) {
		c.config = cfg
	}
}

// New wraps next with a Redis cache.
func New(next users.Storage, client redis.UniversalClient, opts ...Option) *Cache {
	c := &Cache{
		next:   next,
		client: client,
		config: DefaultConfig(),
		logger: logger.Discard(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewFromConfig creates a Cache from cfg.
func NewFromConfig(cfg Config, next users.Storage, client redis.UniversalClient, opts ...Option) *Cache {
	return New(next, client, append([]Option{WithConfig(cfg)}, opts...)...)
}

// Create delegates to the store. When a row was inserted any stale entry for
// the id is invalidated.
func (c *Cache) Create(ctx context.Context, u users.User) (int64, error) {
	n, err := c.next.Create(ctx, u)
	if err != nil {
		return n, err
	}
	if n > 0 {
		c.invalidate(ctx, u.ID)
	}
	return n, nil
}

// Find serves id from Redis when present, otherwise loads it from the store
// and caches it. The fill is skipped when an Update or Create for the id ran
// while the store was being read.
func (c *Cache) Find(ctx context.Context, id string) (users.User, error) {
	if id == "" {
		return users.User{}, users.ErrEmptyID
	}

	if u, ok := c.lookup(ctx, id); ok {
		return u, nil
	}

	gen, genOK := c.generation(ctx, id)

	u, err := c.next.Find(ctx, id)
	if err != nil {
		return users.User{}, err
	}

	if genOK {
		c.fill(ctx, u, gen)
	}
	return u, nil
}

// Update delegates to the store and invalidates the cached row. The next
// Find reloads it.
func (c *Cache) Update(ctx context.Context, u users.User) (users.User, error) {
	updated, err := c.next.Update(ctx, u)
	if err != nil {
		if errors.Is(err, users.ErrNotFound) {
			c.invalidate(ctx, u.ID)
		}
		return users.User{}, err
	}

	c.invalidate(ctx, u.ID)
	return updated, nil
}

// entry is the cached form of a user. It has no password field: rows with a
// password are never cached.
type entry struct {
	ID        string  `json:"id"`
	Username  *string `json:"username"`
	Activated *bool   `json:"activated"`
}

func (c *Cache) key(id string) string {
	return c.config.Prefix + id
}

func (c *Cache) genKey(id string) string {
	return c.config.Prefix + id + ":gen"
}

func (c *Cache) lookup(ctx context.Context, id string) (users.User, bool) {
	data, err := c.client.Get(ctx, c.key(id)).Bytes()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			c.warn(ctx, "user cache read failed", id, err)
		}
		return users.User{}, false
	}

	var e entry
	if err := json.Unmarshal(data, &e); err != nil || e.ID != id {
		c.warn(ctx, "user cache entry corrupt", id, err)
		c.forget(ctx, id)
		return users.User{}, false
	}
	return users.User{ID: e.ID, Username: e.Username, Activated: e.Activated}, true
}

// generation returns the invalidation counter of id. A missing counter is 0.
func (c *Cache) generation(ctx context.Context, id string) (int64, bool) {
	gen, err := c.client.Get(ctx, c.genKey(id)).Int64()
	if err != nil && !errors.Is(err, redis.Nil) {
		c.warn(ctx, "user cache generation read failed", id, err)
		return 0, false
	}
	return gen, true
}

// fill caches u if the counter of u.ID still equals gen. The check and the
// write run under WATCH so an invalidation in between aborts the write.
func (c *Cache) fill(ctx context.Context, u users.User, gen int64) {
	if u.Password != nil {
		return
	}

	data, err := json.Marshal(entry{ID: u.ID, Username: u.Username, Activated: u.Activated})
	if err != nil {
		c.warn(ctx, "user cache encode failed", u.ID, err)
		return
	}

	key, genKey := c.key(u.ID), c.genKey(u.ID)
	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		cur, err := tx.Get(ctx, genKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if cur != gen {
			return errStale
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, c.config.TTL)
			return nil
		})
		return err
	}, genKey)

	switch {
	case err == nil, errors.Is(err, errStale), errors.Is(err, redis.TxFailedErr):
	default:
		c.warn(ctx, "user cache write failed", u.ID, err)
	}
}

// invalidate bumps the counter of id and drops its entry in one transaction.
func (c *Cache) invalidate(ctx context.Context, id string) {
	genKey := c.genKey(id)
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, genKey)
		if c.config.TTL > 0 {
			pipe.Expire(ctx, genKey, c.config.TTL)
		}
		pipe.Del(ctx, c.key(id))
		return nil
	})
	if err != nil {
		c.warn(ctx, "user cache invalidate failed", id, err)
	}
}

func (c *Cache) forget(ctx context.Context, id string) {
	if err := c.client.Del(ctx, c.key(id)).Err(); err != nil {
		c.warn(ctx, "user cache delete failed", id, err)
	}
}

func (c *Cache) warn(ctx context.Context, msg, id string, err error) {
	c.logger.WarnContext(ctx, msg,
		logger.Component("usercache"),
		logger.UserID(id),
		logger.Error(err),
	)
}
