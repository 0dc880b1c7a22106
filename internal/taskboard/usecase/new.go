package usecase

import (
	"grassroots-tasks/internal/taskboard"
	"grassroots-tasks/internal/taskboard/repository"
	pkgLog "grassroots-tasks/pkg/log"
)

type implUseCase struct {
	l    pkgLog.Logger
	repo repository.TaskRepository
}

// New creates a new taskboard UseCase instance.
func New(l pkgLog.Logger, repo repository.TaskRepository) taskboard.UseCase {
	return &implUseCase{
		l:    l,
		repo: repo,
	}
}
