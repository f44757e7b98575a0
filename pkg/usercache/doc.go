// Package usercache puts a Redis read-through cache in front of a
// users.Storage. Finds are served from Redis when possible. Updates and
// inserting creates invalidate the entry and bump a per-id generation
// counter, and a Find only fills the cache if the counter did not move while
// it was reading the store.
package usercache
