package users

import "errors"

var (
	// ErrNotFound is returned by Find and Update when no row has the id.
	ErrNotFound = errors.New("users: not found")
	// ErrEmptyID is returned before any query when the id is empty.
	ErrEmptyID = errors.New("users: empty id")
)
