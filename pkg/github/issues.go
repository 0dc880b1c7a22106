package github

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// ListIssues lists repository issues via GET /repos/{owner}/{repo}/issues.
// The result still contains pull requests; filtering them out is the
// caller's job (the API has no server-side switch for it).
func (c *Client) ListIssues(ctx context.Context, opt ListIssuesOptions) ([]Issue, error) {
	q := url.Values{}
	if opt.State != "" {
		q.Set("state", opt.State)
	}
	if opt.Sort != "" {
		q.Set("sort", opt.Sort)
	}
	if opt.Direction != "" {
		q.Set("direction", opt.Direction)
	}
	if opt.PerPage > 0 {
		q.Set("per_page", strconv.Itoa(opt.PerPage))
	}
	if len(opt.Labels) > 0 {
		q.Set("labels", strings.Join(opt.Labels, ","))
	}

	u := c.repoURL("/issues")
	if enc := q.Encode(); enc != "" {
		u += "?" + enc
	}

	var issues []Issue
	if err := c.doJSON(ctx, http.MethodGet, u, nil, &issues); err != nil {
		return nil, err
	}
	return issues, nil
}

// GetIssue fetches a single issue by number.
func (c *Client) GetIssue(ctx context.Context, number int) (*Issue, error) {
	var issue Issue
	if err := c.doJSON(ctx, http.MethodGet, c.repoURL("/issues/%d", number), nil, &issue); err != nil {
		return nil, err
	}
	return &issue, nil
}

// GetLabels returns the current label names of an issue.
func (c *Client) GetLabels(ctx context.Context, number int) ([]string, error) {
	issue, err := c.GetIssue(ctx, number)
	if err != nil {
		return nil, err
	}
	return issue.LabelNames(), nil
}

// SetLabels replaces the full label set of an issue via PUT.
// The endpoint is a full replace: any label missing from the submitted
// set is dropped from the issue.
func (c *Client) SetLabels(ctx context.Context, number int, labels []string) error {
	body := map[string][]string{"labels": labels}
	return c.doJSON(ctx, http.MethodPut, c.repoURL("/issues/%d/labels", number), body, nil)
}

// AddComment posts a comment on an issue.
func (c *Client) AddComment(ctx context.Context, number int, text string) error {
	body := map[string]string{"body": text}
	return c.doJSON(ctx, http.MethodPost, c.repoURL("/issues/%d/comments", number), body, nil)
}

// ListComments returns the comments of an issue in creation order.
func (c *Client) ListComments(ctx context.Context, number int) ([]Comment, error) {
	var comments []Comment
	if err := c.doJSON(ctx, http.MethodGet, c.repoURL("/issues/%d/comments", number), nil, &comments); err != nil {
		return nil, err
	}
	return comments, nil
}

// AddAssignees adds user handles to an issue's assignee set.
func (c *Client) AddAssignees(ctx context.Context, number int, logins []string) error {
	body := map[string][]string{"assignees": logins}
	return c.doJSON(ctx, http.MethodPost, c.repoURL("/issues/%d/assignees", number), body, nil)
}

// RemoveAssignees removes user handles from an issue's assignee set.
func (c *Client) RemoveAssignees(ctx context.Context, number int, logins []string) error {
	body := map[string][]string{"assignees": logins}
	return c.doJSON(ctx, http.MethodDelete, c.repoURL("/issues/%d/assignees", number), body, nil)
}
