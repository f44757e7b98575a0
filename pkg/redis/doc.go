// Package redis connects go-redis/v9 clients with retries and exposes a
// readiness probe. The client it returns backs the user cache.
package redis
