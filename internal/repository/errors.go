package repository

import "errors"

var (
	// ErrNotFound covers both missing and disabled records so callers cannot
	// distinguish the two at the boundary.
	ErrNotFound = errors.New("record not found")
	// ErrConflict signals a uniqueness violation (short token or email).
	ErrConflict = errors.New("record already exists")
)
