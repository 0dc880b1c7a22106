package taskboard

import "errors"

// Domain-specific errors for the taskboard package.
var (
	ErrNotAuthenticated = errors.New("authentication required")
	ErrTaskNotFound     = errors.New("task not found")
)
