package session

import "grassroots-tasks/internal/model"

// LoginInput carries the personal access token to validate.
type LoginInput struct {
	Token string
}

// LoginOutput is the opened session.
type LoginOutput struct {
	SessionID string
	Profile   model.Profile
}
