package roster

import (
	"context"

	"grassroots-tasks/internal/model"
)

// UseCase defines the business logic interface for the roster domain.
type UseCase interface {
	// People fetches and parses the member roster document.
	People(ctx context.Context) (PeopleOutput, error)

	// Resources fetches and parses the resource roster document.
	Resources(ctx context.Context) (ResourcesOutput, error)
}

// PoolFinder locates the fallback roster issue for a pool label. The
// taskboard usecase satisfies it.
type PoolFinder interface {
	PoolIssue(ctx context.Context, label string) (*model.Task, error)
}
