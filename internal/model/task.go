package model

// Status is the task lifecycle state derived from the label set.
type Status string

const (
	StatusOpen       Status = "open"
	StatusInProgress Status = "in-progress"
	StatusCompleted  Status = "completed"
)

// Priority is the task priority derived from the label set.
type Priority string

const (
	PriorityP0   Priority = "p0"
	PriorityP1   Priority = "p1"
	PriorityP2   Priority = "p2"
	PriorityNone Priority = "none"
)

// Task is the issue-backed task view. Labels are the single source of
// truth; Status, Priority and Skills are projections of the label set
// and are never stored independently.
type Task struct {
	Number    int      `json:"number"`
	Title     string   `json:"title"`
	Body      string   `json:"body"`
	HTMLURL   string   `json:"html_url"`
	Labels    []string `json:"labels"`
	Assignees []string `json:"assignees"`
	CreatedAt string   `json:"created_at"`
	UpdatedAt string   `json:"updated_at"`

	// Derived fields, populated for display.
	Priority Priority `json:"priority"`
	Status   Status   `json:"status"`
	Skills   []string `json:"skills"`
}

// TaskDetails are the structured fields extracted from a task body's
// headed sections.
type TaskDetails struct {
	Description string `json:"description"`
	Skills      string `json:"skills"`
	Time        string `json:"time"`
	Links       string `json:"links"`
	Assignee    string `json:"assignee"`
}
