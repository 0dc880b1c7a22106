package session

import (
	"context"

	"grassroots-tasks/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Login validates the personal access token against the remote
	// store and opens a session for the resolved identity.
	Login(ctx context.Context, input LoginInput) (LoginOutput, error)

	// Logout closes the session. Unknown IDs are a no-op.
	Logout(ctx context.Context, sessionID string) error

	// Current resolves a session ID back to its scope.
	Current(ctx context.Context, sessionID string) (model.Scope, error)
}

// Store keeps live sessions. Implementations must be safe for
// concurrent use; the memory store is the default, a shared backend
// can be swapped in without touching the usecase.
type Store interface {
	Get(sessionID string) (model.Scope, bool)
	Set(sessionID string, sc model.Scope)
	Clear(sessionID string)
}
