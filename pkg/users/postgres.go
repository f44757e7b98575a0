package users

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/dscvit/dscv/pkg/pg"
)

const (
	createQuery = `INSERT INTO users (id, username, password, activated)
VALUES ($1, $2, $3, $4)
ON CONFLICT (id) DO NOTHING`

	findQuery = `SELECT id, username, password, activated
FROM users
WHERE id = $1`

	updateQuery = `UPDATE users
SET username = $2, password = $3, activated = $4
WHERE id = $1
RETURNING id, username, password, activated`
)

// Create inserts u and returns the number of rows written. A row with the
// same id already present is left untouched and Create returns 0 with a nil
// error, so racing callers can all create the same id safely.
func Create(ctx context.Context, db pg.DBTX, u User) (int64, error) {
	if u.ID == "" {
		return 0, ErrEmptyID
	}

	tag, err := db.Exec(ctx, createQuery, u.ID, u.Username, u.Password, u.Activated)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Find returns the row with the given id, or ErrNotFound.
func Find(ctx context.Context, db pg.DBTX, id string) (User, error) {
	if id == "" {
		return User{}, ErrEmptyID
	}
	return scan(db.QueryRow(ctx, findQuery, id))
}

// Update overwrites username, password and activated of the row u.ID with
// the values in u, nil fields included, and returns the stored row. It never
// inserts: an unknown id yields ErrNotFound.
func Update(ctx context.Context, db pg.DBTX, u User) (User, error) {
	if u.ID == "" {
		return User{}, ErrEmptyID
	}
	return scan(db.QueryRow(ctx, updateQuery, u.ID, u.Username, u.Password, u.Activated))
}

// EnsureAnonymous creates the id-only stub for id unless a row exists and
// reports whether it inserted one.
func EnsureAnonymous(ctx context.Context, db pg.DBTX, id string) (bool, error) {
	n, err := Create(ctx, db, Anonymous(id))
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func scan(row pgx.Row) (User, error) {
	var u User
	if err := row.Scan(&u.ID, &u.Username, &u.Password, &u.Activated); err != nil {
		if pg.IsNotFoundError(err) {
			return User{}, ErrNotFound
		}
		return User{}, err
	}
	return u, nil
}
