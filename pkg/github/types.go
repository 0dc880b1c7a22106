package github

// Issue is the GitHub API issue object, reduced to the fields this
// service reads. A non-nil PullRequest marks the issue as a PR.
type Issue struct {
	Number      int      `json:"number"`
	Title       string   `json:"title"`
	Body        string   `json:"body"`
	State       string   `json:"state"`
	HTMLURL     string   `json:"html_url"`
	Labels      []Label  `json:"labels"`
	Assignees   []User   `json:"assignees"`
	PullRequest *PullRef `json:"pull_request,omitempty"`
	CreatedAt   string   `json:"created_at"`
	UpdatedAt   string   `json:"updated_at"`
}

// PullRef is the marker object present on issues that are pull requests.
type PullRef struct {
	URL string `json:"url"`
}

// Label is the GitHub API label object.
type Label struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

// User is the GitHub API user object.
type User struct {
	Login     string `json:"login"`
	AvatarURL string `json:"avatar_url"`
	Name      string `json:"name"`
	HTMLURL   string `json:"html_url"`
}

// Comment is the GitHub API issue comment object.
type Comment struct {
	ID        int64  `json:"id"`
	Body      string `json:"body"`
	User      User   `json:"user"`
	CreatedAt string `json:"created_at"`
}

// LabelNames extracts the plain label names from an issue.
func (i Issue) LabelNames() []string {
	names := make([]string, 0, len(i.Labels))
	for _, l := range i.Labels {
		names = append(names, l.Name)
	}
	return names
}

// AssigneeLogins extracts the assignee handles from an issue.
func (i Issue) AssigneeLogins() []string {
	logins := make([]string, 0, len(i.Assignees))
	for _, a := range i.Assignees {
		logins = append(logins, a.Login)
	}
	return logins
}

// ListIssuesOptions are the query parameters for ListIssues.
type ListIssuesOptions struct {
	State     string // "open", "closed", "all"
	Sort      string // "created", "updated", "comments"
	Direction string // "asc", "desc"
	PerPage   int
	Labels    []string // server-side label filter, comma-joined
}
