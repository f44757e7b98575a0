package users

import (
	"context"

	"github.com/dscvit/dscv/pkg/pg"
)

// Storage is the users repository contract. Store implements it; decorators
// such as the Redis cache wrap it.
type Storage interface {
	Create(ctx context.Context, u User) (int64, error)
	Find(ctx context.Context, id string) (User, error)
	Update(ctx context.Context, u User) (User, error)
}

// Store binds the package functions to one DBTX.
type Store struct {
	db pg.DBTX
}

// NewStore returns a Store running every statement on db.
func NewStore(db pg.DBTX) *Store {
	return &Store{db: db}
}

// WithDB returns a copy of s bound to db, usually a pgx.Tx.
func (s *Store) WithDB(db pg.DBTX) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, u User) (int64, error) {
	return Create(ctx, s.db, u)
}

func (s *Store) Find(ctx context.Context, id string) (User, error) {
	return Find(ctx, s.db, id)
}

func (s *Store) Update(ctx context.Context, u User) (User, error) {
	return Update(ctx, s.db, u)
}

// EnsureAnonymousIn is EnsureAnonymous for any Storage, cached or not.
func EnsureAnonymousIn(ctx context.Context, s Storage, id string) (bool, error) {
	n, err := s.Create(ctx, Anonymous(id))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
