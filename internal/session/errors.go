package session

import "errors"

var (
	// ErrInvalidToken means the remote store rejected the token.
	ErrInvalidToken = errors.New("invalid token")

	// ErrNoSession means the session ID is unknown or expired.
	ErrNoSession = errors.New("no session")
)
