package usecase

import (
	"grassroots-tasks/internal/roster"
	"grassroots-tasks/internal/roster/repository"
	pkgLog "grassroots-tasks/pkg/log"
)

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.DocumentRepository
	pools roster.PoolFinder
	opt   roster.ParseOptions
}

// New creates a new roster UseCase instance.
//
// The people roster is parsed permissively (a document without the
// recognized section is scanned whole); the resource roster is always
// strict. The option only loosens people parsing. pools may be nil, in
// which case a missing document has no fallback source.
func New(l pkgLog.Logger, repo repository.DocumentRepository, pools roster.PoolFinder, opt roster.ParseOptions) roster.UseCase {
	return &implUseCase{
		l:     l,
		repo:  repo,
		pools: pools,
		opt:   opt,
	}
}
