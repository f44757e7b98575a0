package pg_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dscvit/dscv/pkg/pg"
)

type pinger struct{ err error }

func (p pinger) Ping(context.Context) error { return p.err }

func TestHealthcheck(t *testing.T) {
	t.Parallel()

	assert.NoError(t, pg.Healthcheck(pinger{})(context.Background()))

	cause := errors.New("connection refused")
	err := pg.Healthcheck(pinger{err: cause})(context.Background())
	assert.ErrorIs(t, err, pg.ErrHealthcheckFailed)
	assert.ErrorIs(t, err, cause)
}
