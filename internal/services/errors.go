package services

import "errors"

var (
	// ErrInvalidCredentials deliberately does not say whether the account
	// exists or the password was wrong.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrTokenExhausted means generation collided on every retry. With 42
	// bits of token entropy this indicates something badly wrong, so it is
	// logged as an anomaly when it occurs.
	ErrTokenExhausted = errors.New("short token space exhausted")
)
