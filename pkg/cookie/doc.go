// Package cookie reads and writes HTTP cookies, including private cookies
// whose values are encrypted and authenticated by the server.
//
// # Overview
//
// A Manager is built from one or more secrets (at least 32 characters each)
// and a set of default Options. Each secret is stretched with HKDF-SHA256 into
// an AES-256-GCM key. The first key encrypts, all keys are tried on decrypt, so
// secrets can be rotated by prepending a new one.
//
// A private cookie value is base64url(nonce || ciphertext || tag) with the
// cookie name bound as additional authenticated data: the client can neither
// read it nor move it to a different cookie name.
//
// # Jar
//
// Manager.Jar wraps one request/response exchange. Cookies added through the
// jar are written as Set-Cookie headers and are also visible to later reads in
// the same exchange:
//
//	jar := man.Jar(w, r)
//	if _, err := jar.GetPrivate("session"); err != nil {
//	    _ = jar.AddPrivate("session", "bapodinuhaso", cookie.WithPermanent())
//	}
//	id, _ := jar.GetPrivate("session") // "bapodinuhaso"
//
// # Configuration
//
// Config carries COOKIE_* env tags for github.com/caarlos0/env:
//
//	var cfg cookie.Config
//	_ = env.Parse(&cfg)
//	man, err := cookie.NewFromConfig(cfg)
//
// # Errors
//
// ErrCookieNotFound, ErrInvalidFormat and ErrDecryptionFailed tell apart a
// missing cookie from one that is present but unreadable; use errors.Is.
package cookie
