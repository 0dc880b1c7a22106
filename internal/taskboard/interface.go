package taskboard

import (
	"context"

	"grassroots-tasks/internal/model"
)

// UseCase defines the business logic interface for the task board.
type UseCase interface {
	// List returns the open tasks matching the filter, decorated with
	// derived fields and the caller's available action.
	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)

	// Get returns one task with its derived fields, parsed body
	// details and the caller's available action.
	Get(ctx context.Context, sc model.Scope, number int) (TaskView, error)

	// Claim takes an open task: attribution comment, 待领 → 进行中
	// label swap, actor added to assignees. Strictly in that order.
	Claim(ctx context.Context, sc model.Scope, number int) error

	// Unclaim releases a held task: release comment, 进行中 → 待领,
	// actor removed from assignees.
	Unclaim(ctx context.Context, sc model.Scope, number int) error

	// Complete marks a task done: completion comment, any of
	// {进行中, 待领} replaced by 已完成, assignees unchanged.
	Complete(ctx context.Context, sc model.Scope, number int) error

	// UpdateLabels rewrites a task's full label set as
	// (current − toRemove) ∪ (toAdd − current), writing as the caller.
	UpdateLabels(ctx context.Context, sc model.Scope, number int, toRemove, toAdd []string) error

	// PoolIssue returns the first open issue carrying the given pool
	// label (人池 / 资源池), or nil when none exists.
	PoolIssue(ctx context.Context, label string) (*model.Task, error)
}
