package cookie_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dscvit/dscv/pkg/cookie"
)

func TestDefaultSecurityAttributes(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	w := httptest.NewRecorder()
	require.NoError(t, m.SetPrivate(w, "session", "value"))

	header := w.Header().Get("Set-Cookie")
	assert.Contains(t, header, "HttpOnly")
	assert.Contains(t, header, "SameSite=Lax")
	assert.Contains(t, header, "Path=/")
	assert.NotContains(t, header, "Secure", "Secure is opt-in on the bare manager")
	assert.NotContains(t, header, "Max-Age", "no expiry unless asked")
}

func TestPerCookieOptions(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	w := httptest.NewRecorder()
	jar := m.Jar(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, jar.AddPrivate("session", "value",
		cookie.WithDomain(".dscv.it"),
		cookie.WithSecure(true),
		cookie.WithSameSite(http.SameSiteLaxMode),
		cookie.WithPermanent(),
	))

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "dscv.it", c.Domain, "leading dot is dropped by the parser")
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, cookie.PermanentMaxAge, c.MaxAge)

	// Defaults are not changed by per-cookie options.
	assert.False(t, m.Defaults().Secure)
	assert.Empty(t, m.Defaults().Domain)
}

func TestNonceUniqueness(t *testing.T) {
	t.Parallel()
	m := newManager(t)

	const n = 500
	seen := make(map[string]struct{}, n)
	for range n {
		w := httptest.NewRecorder()
		require.NoError(t, m.SetPrivate(w, "session", "same-value"))
		seen[w.Result().Cookies()[0].Value] = struct{}{}
	}

	assert.Len(t, seen, n, "same plaintext must never produce the same ciphertext")
}
