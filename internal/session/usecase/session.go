package usecase

import (
	"context"

	"github.com/google/uuid"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/session"
	pkgGithub "grassroots-tasks/pkg/github"
)

// Login validates the token against GET /user and opens a session for
// the resolved identity. The token is never persisted outside the
// session store.
func (uc *implUseCase) Login(ctx context.Context, input session.LoginInput) (session.LoginOutput, error) {
	if input.Token == "" {
		return session.LoginOutput{}, session.ErrInvalidToken
	}

	user, err := uc.client.ValidateToken(ctx, input.Token)
	if err != nil {
		if remote, ok := pkgGithub.AsRemoteError(err); ok && remote.StatusCode == 401 {
			return session.LoginOutput{}, session.ErrInvalidToken
		}
		uc.l.Errorf(ctx, "session: token validation failed: %v", err)
		return session.LoginOutput{}, err
	}

	profile := model.Profile{
		Login:     user.Login,
		AvatarURL: user.AvatarURL,
		Name:      user.Name,
		HTMLURL:   user.HTMLURL,
	}

	sessionID := uuid.NewString()
	uc.store.Set(sessionID, model.Scope{
		Token:   input.Token,
		Profile: profile,
	})

	uc.l.Infof(ctx, "session: opened for %s", profile.Login)
	return session.LoginOutput{
		SessionID: sessionID,
		Profile:   profile,
	}, nil
}

func (uc *implUseCase) Logout(ctx context.Context, sessionID string) error {
	uc.store.Clear(sessionID)
	return nil
}

func (uc *implUseCase) Current(ctx context.Context, sessionID string) (model.Scope, error) {
	sc, ok := uc.store.Get(sessionID)
	if !ok {
		return model.Scope{}, session.ErrNoSession
	}
	return sc, nil
}
