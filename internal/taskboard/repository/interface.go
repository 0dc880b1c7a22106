package repository

import (
	"context"

	"grassroots-tasks/internal/model"
)

// TaskRepository is the issue-store access interface for the task
// board. It owns no state between calls; every method is one remote
// round trip (ListTasks already excludes pull requests).
//
// Mutations take the caller's scope: they run on the caller's own
// credential, so the remote store attributes comments and assignee
// changes to the acting user, not to the service account.
type TaskRepository interface {
	ListTasks(ctx context.Context, opt ListTasksOptions) ([]model.Task, error)
	GetTask(ctx context.Context, number int) (model.Task, error)

	GetLabels(ctx context.Context, number int) ([]string, error)
	// SetLabels is a full replace: labels absent from the submitted set
	// are dropped from the task.
	SetLabels(ctx context.Context, sc model.Scope, number int, labels []string) error

	AddComment(ctx context.Context, sc model.Scope, number int, body string) error
	ListComments(ctx context.Context, number int) ([]Comment, error)

	AddAssignee(ctx context.Context, sc model.Scope, number int, login string) error
	RemoveAssignee(ctx context.Context, sc model.Scope, number int, login string) error
}

// Comment is an issue comment as the task board sees it.
type Comment struct {
	Author string
	Body   string
}
