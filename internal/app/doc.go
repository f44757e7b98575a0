// Package app composes the dscv service from its configuration: logger,
// Postgres with migrations, the optional Redis user cache, the cookie
// manager, the session resolver and the HTTP router.
package app
