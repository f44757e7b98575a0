package session_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dscvit/dscv/pkg/cookie"
	"github.com/dscvit/dscv/pkg/phonetic"
	"github.com/dscvit/dscv/pkg/session"
)

const secret = "this-is-a-very-long-secret-key-32-chars-long"

func setupCookies(t *testing.T, secrets ...string) *cookie.Manager {
	t.Helper()
	if len(secrets) == 0 {
		secrets = []string{secret}
	}
	m, err := cookie.New(secrets)
	require.NoError(t, err)
	return m
}

func replay(w *httptest.ResponseRecorder) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range w.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestResolve_MintsWhenAbsent(t *testing.T) {
	t.Parallel()

	cookies := setupCookies(t)
	resolver := session.New(session.WithDomain(".dscv.it"))

	w := httptest.NewRecorder()
	jar := cookies.Jar(w, httptest.NewRequest(http.MethodGet, "/", nil))

	id := resolver.Resolve(context.Background(), jar)
	require.NotEmpty(t, id)
	assert.True(t, phonetic.Valid(id))

	// The jar now holds a private session cookie carrying the same identifier.
	got, err := jar.GetPrivate("session")
	require.NoError(t, err)
	assert.Equal(t, id, got)

	cs := w.Result().Cookies()
	require.Len(t, cs, 1)
	c := cs[0]
	assert.Equal(t, "session", c.Name)
	assert.NotEqual(t, id, c.Value, "cookie value is encrypted")
	assert.Equal(t, "dscv.it", c.Domain)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.Secure)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, c.SameSite)
	assert.Equal(t, cookie.PermanentMaxAge, c.MaxAge)
}

func TestResolve_ReturnsExistingWithoutWriting(t *testing.T) {
	t.Parallel()

	cookies := setupCookies(t)
	resolver := session.New()

	first := httptest.NewRecorder()
	id := resolver.Resolve(context.Background(), cookies.Jar(first, httptest.NewRequest(http.MethodGet, "/", nil)))

	second := httptest.NewRecorder()
	jar := cookies.Jar(second, replay(first))

	got := resolver.Resolve(context.Background(), jar)
	assert.Equal(t, id, got)
	assert.Empty(t, second.Header().Values("Set-Cookie"))
	assert.Empty(t, jar.Added())
}

func TestResolve_StableAcrossRequests(t *testing.T) {
	t.Parallel()

	cookies := setupCookies(t)
	resolver := session.New()

	w := httptest.NewRecorder()
	id := resolver.Resolve(context.Background(), cookies.Jar(w, httptest.NewRequest(http.MethodGet, "/", nil)))
	r := replay(w)

	for range 5 {
		assert.Equal(t, id, resolver.Resolve(context.Background(), cookies.Jar(httptest.NewRecorder(), r)))
	}
}

func TestResolve_SecondCallInSameExchangeIsStable(t *testing.T) {
	t.Parallel()

	cookies := setupCookies(t)
	resolver := session.New()

	w := httptest.NewRecorder()
	jar := cookies.Jar(w, httptest.NewRequest(http.MethodGet, "/", nil))

	first := resolver.Resolve(context.Background(), jar)
	second := resolver.Resolve(context.Background(), jar)

	assert.Equal(t, first, second)
	assert.Len(t, w.Header().Values("Set-Cookie"), 1)
}

func TestResolve_RemintsOnUndecodableCookie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		value func(t *testing.T) string
	}{
		{
			name:  "plain text",
			value: func(*testing.T) string { return "bapodinuhaso" },
		},
		{
			name: "written with a retired key",
			value: func(t *testing.T) string {
				old := setupCookies(t, "this-is-old-very-long-secret-key-32-chars-ok")
				w := httptest.NewRecorder()
				require.NoError(t, old.SetPrivate(w, "session", "kimosabu"))
				return w.Result().Cookies()[0].Value
			},
		},
		{
			name: "moved from another cookie",
			value: func(t *testing.T) string {
				w := httptest.NewRecorder()
				require.NoError(t, setupCookies(t).SetPrivate(w, "other", "kimosabu"))
				return w.Result().Cookies()[0].Value
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cookies := setupCookies(t)
			resolver := session.New(session.WithGenerator(func() string { return "fresh" }))

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			r.AddCookie(&http.Cookie{Name: "session", Value: tt.value(t)})
			w := httptest.NewRecorder()

			id := resolver.Resolve(context.Background(), cookies.Jar(w, r))
			assert.Equal(t, "fresh", id)

			got, err := cookies.GetPrivate(replay(w), "session")
			require.NoError(t, err)
			assert.Equal(t, "fresh", got)
		})
	}
}

func TestResolve_MockJar(t *testing.T) {
	t.Parallel()

	t.Run("existing value does not write", func(t *testing.T) {
		t.Parallel()

		jar := &MockJar{}
		jar.On("GetPrivate", "session").Return("bapodinuhaso", nil)

		id := session.New().Resolve(context.Background(), jar)

		assert.Equal(t, "bapodinuhaso", id)
		jar.AssertExpectations(t)
		jar.AssertNotCalled(t, "AddPrivate", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("empty value is treated as absent", func(t *testing.T) {
		t.Parallel()

		jar := &MockJar{}
		jar.On("GetPrivate", "session").Return("", nil)
		jar.On("AddPrivate", "session", "fresh", mock.Anything).Return(nil)

		id := session.New(session.WithGenerator(func() string { return "fresh" })).Resolve(context.Background(), jar)

		assert.Equal(t, "fresh", id)
		jar.AssertExpectations(t)
	})

	t.Run("write failure still returns identifier", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		jar := &MockJar{}
		jar.On("GetPrivate", "sid").Return("", cookie.ErrCookieNotFound)
		jar.On("AddPrivate", "sid", "fresh", mock.Anything).Return(errors.New("boom"))

		resolver := session.New(
			session.WithCookieName("sid"),
			session.WithGenerator(func() string { return "fresh" }),
			session.WithLogger(log),
		)

		assert.Equal(t, "fresh", resolver.Resolve(context.Background(), jar))
		assert.Contains(t, buf.String(), "failed to write session cookie")
		assert.Contains(t, buf.String(), "boom")
		jar.AssertExpectations(t)
	})

	t.Run("logs remint reason", func(t *testing.T) {
		t.Parallel()

		buf := &bytes.Buffer{}
		log := slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

		jar := &MockJar{}
		jar.On("GetPrivate", "session").Return("", cookie.ErrDecryptionFailed)
		jar.On("AddPrivate", "session", mock.Anything, mock.Anything).Return(nil)

		session.New(session.WithLogger(log)).Resolve(context.Background(), jar)

		assert.Contains(t, buf.String(), "session minted")
		assert.Contains(t, buf.String(), "reason=undecodable")
	})
}

func TestResolve_CookieAttributesFollowConfig(t *testing.T) {
	t.Parallel()

	cookies := setupCookies(t)
	cfg := session.Config{CookieName: "sid", Secure: false, Permanent: false}
	resolver := session.NewFromConfig(cfg)

	w := httptest.NewRecorder()
	resolver.Resolve(context.Background(), cookies.Jar(w, httptest.NewRequest(http.MethodGet, "/", nil)))

	cs := w.Result().Cookies()
	require.Len(t, cs, 1)
	assert.Equal(t, "sid", cs[0].Name)
	assert.False(t, cs[0].Secure)
	assert.Zero(t, cs[0].MaxAge)
	assert.Empty(t, cs[0].Domain)
	assert.Equal(t, http.SameSiteLaxMode, cs[0].SameSite)
}

func TestResolve_Concurrent(t *testing.T) {
	t.Parallel()

	cookies := setupCookies(t)
	resolver := session.New()

	var wg sync.WaitGroup
	ids := make(chan string, 50)
	for range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w := httptest.NewRecorder()
			ids <- resolver.Resolve(context.Background(), cookies.Jar(w, httptest.NewRequest(http.MethodGet, "/", nil)))
		}()
	}
	wg.Wait()
	close(ids)

	seen := make(map[string]struct{})
	for id := range ids {
		seen[id] = struct{}{}
	}
	assert.Len(t, seen, 50, "racing first visits each get their own identifier")
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	cfg := session.New(session.WithCookieName("")).Config()
	assert.Equal(t, "session", cfg.CookieName)
	assert.True(t, cfg.Secure)
	assert.True(t, cfg.Permanent)
	assert.Equal(t, session.DefaultConfig(), session.New().Config())
}
