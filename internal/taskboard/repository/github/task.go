package github

import (
	"context"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/taskboard/repository"
	pkgGithub "grassroots-tasks/pkg/github"
	pkgLog "grassroots-tasks/pkg/log"
)

type implRepository struct {
	client *pkgGithub.Client
	l      pkgLog.Logger
}

// New creates a GitHub-backed task repository.
func New(client *pkgGithub.Client, l pkgLog.Logger) repository.TaskRepository {
	return &implRepository{
		client: client,
		l:      l,
	}
}

func (r *implRepository) ListTasks(ctx context.Context, opt repository.ListTasksOptions) ([]model.Task, error) {
	state := opt.State
	if state == "" {
		state = "open"
	}
	perPage := opt.PerPage
	if perPage == 0 {
		perPage = 100
	}

	issues, err := r.client.ListIssues(ctx, pkgGithub.ListIssuesOptions{
		State:     state,
		Sort:      "created",
		Direction: "desc",
		PerPage:   perPage,
		Labels:    opt.Labels,
	})
	if err != nil {
		r.l.Errorf(ctx, "task repository: failed to list issues: %v", err)
		return nil, err
	}

	tasks := make([]model.Task, 0, len(issues))
	for _, issue := range issues {
		// The issues endpoint also returns pull requests; they are not
		// tasks and get filtered here.
		if issue.PullRequest != nil {
			continue
		}
		tasks = append(tasks, issueToTask(issue))
	}
	return tasks, nil
}

func (r *implRepository) GetTask(ctx context.Context, number int) (model.Task, error) {
	issue, err := r.client.GetIssue(ctx, number)
	if err != nil {
		return model.Task{}, err
	}
	return issueToTask(*issue), nil
}

func (r *implRepository) GetLabels(ctx context.Context, number int) ([]string, error) {
	return r.client.GetLabels(ctx, number)
}

func (r *implRepository) SetLabels(ctx context.Context, sc model.Scope, number int, labels []string) error {
	return r.clientFor(sc).SetLabels(ctx, number, labels)
}

func (r *implRepository) AddComment(ctx context.Context, sc model.Scope, number int, body string) error {
	return r.clientFor(sc).AddComment(ctx, number, body)
}

func (r *implRepository) ListComments(ctx context.Context, number int) ([]repository.Comment, error) {
	comments, err := r.client.ListComments(ctx, number)
	if err != nil {
		return nil, err
	}
	out := make([]repository.Comment, 0, len(comments))
	for _, c := range comments {
		out = append(out, repository.Comment{Author: c.User.Login, Body: c.Body})
	}
	return out, nil
}

func (r *implRepository) AddAssignee(ctx context.Context, sc model.Scope, number int, login string) error {
	return r.clientFor(sc).AddAssignees(ctx, number, []string{login})
}

func (r *implRepository) RemoveAssignee(ctx context.Context, sc model.Scope, number int, login string) error {
	return r.clientFor(sc).RemoveAssignees(ctx, number, []string{login})
}

// clientFor binds a call to the caller's credential. Mutations must go
// out as the acting user: the store's comment authorship is what the
// retry check reads back.
func (r *implRepository) clientFor(sc model.Scope) *pkgGithub.Client {
	return r.client.WithToken(sc.Token)
}

// issueToTask converts a GitHub API issue to the internal task view.
// Derived fields are the usecase's job.
func issueToTask(issue pkgGithub.Issue) model.Task {
	return model.Task{
		Number:    issue.Number,
		Title:     issue.Title,
		Body:      issue.Body,
		HTMLURL:   issue.HTMLURL,
		Labels:    issue.LabelNames(),
		Assignees: issue.AssigneeLogins(),
		CreatedAt: issue.CreatedAt,
		UpdatedAt: issue.UpdatedAt,
	}
}
