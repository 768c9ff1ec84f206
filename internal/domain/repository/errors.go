package repository

import "errors"

var (
	// ErrNotFound reports a missing note, watchlist entry, or session.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate reports a (user, symbol) uniqueness violation.
	ErrDuplicate = errors.New("already exists")
)
