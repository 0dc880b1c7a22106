package usecase

import (
	"context"
	"net/http"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/roster"
	"grassroots-tasks/internal/taskboard"
	"grassroots-tasks/internal/taskboard/repository"
	pkgGithub "grassroots-tasks/pkg/github"
)

// List returns open tasks, pull requests excluded, with all set filters
// AND-combined by exact label membership. Each task carries its derived
// fields and the caller's action affordance.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input taskboard.ListInput) (taskboard.ListOutput, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		State:   "open",
		PerPage: 100,
	})
	if err != nil {
		return taskboard.ListOutput{}, err
	}

	views := make([]taskboard.TaskView, 0, len(tasks))
	for _, t := range tasks {
		if !matchesFilter(t, input) {
			continue
		}

		views = append(views, makeView(sc, t))
	}

	uc.l.Infof(ctx, "taskboard: listed %d of %d tasks", len(views), len(tasks))
	return taskboard.ListOutput{Tasks: views, Count: len(views)}, nil
}

// Get returns one task as the caller sees it. A missing issue maps to
// ErrTaskNotFound.
func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, number int) (taskboard.TaskView, error) {
	t, err := uc.repo.GetTask(ctx, number)
	if err != nil {
		if remote, ok := pkgGithub.AsRemoteError(err); ok && remote.StatusCode == http.StatusNotFound {
			return taskboard.TaskView{}, taskboard.ErrTaskNotFound
		}
		return taskboard.TaskView{}, err
	}
	return makeView(sc, t), nil
}

// makeView decorates a task with its derived fields, parsed body
// details and the caller's action affordance.
func makeView(sc model.Scope, t model.Task) taskboard.TaskView {
	t = taskboard.Decorate(t)

	firstAssignee := ""
	if len(t.Assignees) > 0 {
		firstAssignee = t.Assignees[0]
	}

	return taskboard.TaskView{
		Task:    t,
		Details: roster.ParseTaskBody(t.Body),
		Action: taskboard.ActionFor(
			sc.Authenticated(),
			t.Status,
			taskboard.IsAssignee(sc.Profile.Login, t),
			firstAssignee,
		),
	}
}

func matchesFilter(t model.Task, input taskboard.ListInput) bool {
	if input.Priority != "" && !hasLabel(t.Labels, input.Priority) {
		return false
	}
	if input.Status != "" && !hasLabel(t.Labels, input.Status) {
		return false
	}
	if input.Skill != "" && !hasLabel(t.Labels, input.Skill) {
		return false
	}
	return true
}

func hasLabel(labels []string, want string) bool {
	for _, l := range labels {
		if l == want {
			return true
		}
	}
	return false
}

// PoolIssue returns the first open issue labeled with the given pool
// label, or nil when the pool does not exist.
func (uc *implUseCase) PoolIssue(ctx context.Context, label string) (*model.Task, error) {
	tasks, err := uc.repo.ListTasks(ctx, repository.ListTasksOptions{
		State:  "open",
		Labels: []string{label},
	})
	if err != nil {
		return nil, err
	}
	if len(tasks) == 0 {
		return nil, nil
	}
	t := taskboard.Decorate(tasks[0])
	return &t, nil
}
