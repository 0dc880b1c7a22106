package usecase

import (
	"grassroots-tasks/internal/session"
	pkgGithub "grassroots-tasks/pkg/github"
	pkgLog "grassroots-tasks/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	store  session.Store
	client *pkgGithub.Client
}

// New creates a new session UseCase instance.
func New(l pkgLog.Logger, store session.Store, client *pkgGithub.Client) session.UseCase {
	return &implUseCase{
		l:      l,
		store:  store,
		client: client,
	}
}
