// Package pg wires the pgx/v5 driver: a retrying pool constructor, a
// readiness probe, goose migrations from disk or an embedded fs.FS, and
// helpers that classify driver errors by SQLSTATE.
//
//	pool, err := pg.Connect(ctx, cfg, log)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if err := pg.MigrateFS(ctx, pool, migrations.FS, cfg, log); err != nil {
//	    return err
//	}
//
// Repositories take a DBTX rather than a pool, so the same code runs on a
// pool, a single connection or inside a transaction.
package pg
