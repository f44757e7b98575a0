package pg_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/dscvit/dscv/pkg/pg"
)

func TestIsNotFoundError(t *testing.T) {
	t.Parallel()

	assert.True(t, pg.IsNotFoundError(pgx.ErrNoRows))
	assert.True(t, pg.IsNotFoundError(fmt.Errorf("find: %w", pgx.ErrNoRows)))
	assert.False(t, pg.IsNotFoundError(nil))
	assert.False(t, pg.IsNotFoundError(errors.New("other")))
}

func TestIsForeignKeyViolationError(t *testing.T) {
	t.Parallel()

	dup := &pgconn.PgError{Code: "23505"}
	fk := &pgconn.PgError{Code: "23503"}

	assert.True(t, pg.IsForeignKeyViolationError(fk))
	assert.True(t, pg.IsForeignKeyViolationError(fmt.Errorf("wrapped: %w", fk)))
	assert.False(t, pg.IsForeignKeyViolationError(nil))
	assert.False(t, pg.IsForeignKeyViolationError(dup))
	assert.False(t, pg.IsForeignKeyViolationError(errors.New("23503")))
}
