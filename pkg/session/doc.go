// Package session gives every caller a stable identifier without asking them
// to register.
//
// The identifier lives in a private (encrypted, authenticated) cookie. On each
// request the Resolver reads it back; when the cookie is missing, was written
// under a retired key, or has been tampered with, the Resolver mints a fresh
// identifier and sets a new cookie. Decode failures are never reported to the
// caller: having a session always wins over detecting tampering.
//
// The resolver has no storage of its own and never talks to the database.
// Callers that need a durable record use the identifier as a key elsewhere
// (see package users).
//
// # Usage
//
//	import (
//	    "github.com/dscvit/dscv/pkg/cookie"
//	    "github.com/dscvit/dscv/pkg/session"
//	)
//
//	cookies, _ := cookie.New([]string{os.Getenv("COOKIE_SECRET")})
//	resolver := session.New(session.WithDomain(".dscv.it"))
//
//	http.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
//	    id := resolver.Resolve(r.Context(), cookies.Jar(w, r))
//	    fmt.Fprintln(w, id)
//	})
//
// Or resolve once per request with the middleware and read it from context:
//
//	r.Use(resolver.Middleware(cookies))
//	id, ok := session.IDFromContext(ctx)
//
// # Cookie
//
// The cookie is named "session" by default and is written with Path=/,
// HttpOnly, SameSite=Lax, Secure and a 20 year Max-Age. Domain is taken from
// Config.Domain when set.
//
// # Concurrency
//
// A Resolver is immutable after construction and safe for concurrent use. Two
// first requests from the same browser that race each other each receive a
// different identifier; the last Set-Cookie the browser stores wins.
package session
