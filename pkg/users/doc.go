// Package users persists the minimal user record keyed by a session
// identifier.
//
// Rows are created lazily as id-only anonymous stubs and promoted by updating
// username, password and activated. Create is insert-or-ignore, Find and
// Update report ErrNotFound for unknown ids, and every other driver error is
// returned as is. Password is stored verbatim; hashing is the caller's job.
//
// Each operation takes the pg.DBTX to run on, so callers choose between the
// pool, a dedicated connection or a transaction:
//
//	tx, err := pool.Begin(ctx)
//	...
//	if _, err := users.EnsureAnonymous(ctx, tx, id); err != nil {
//	    return err
//	}
//	u, err := users.Update(ctx, tx, users.User{ID: id, Username: users.String("ada")})
package users
