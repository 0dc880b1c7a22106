package taskboard

import "grassroots-tasks/internal/model"

// ActionKind names the single UI affordance a viewer gets for a task.
type ActionKind string

const (
	// ActionPromptLogin: viewer is anonymous; show the login prompt.
	ActionPromptLogin ActionKind = "prompt-login"
	// ActionClaim: task is open; show the claim button.
	ActionClaim ActionKind = "claim"
	// ActionManage: viewer holds the task; show complete + unclaim.
	ActionManage ActionKind = "manage"
	// ActionInProgressBy: someone else holds the task; read-only badge.
	ActionInProgressBy ActionKind = "in-progress-by"
	// ActionCompleted: task is done; read-only badge.
	ActionCompleted ActionKind = "completed"
)

// Action is the view model for the task's action area.
type Action struct {
	Kind     ActionKind `json:"kind"`
	Assignee string     `json:"assignee,omitempty"`
}

// ActionFor is a pure function of (authenticated, derived status,
// viewer-is-assignee) to the rendered affordance. firstAssignee is only
// used for the in-progress-by badge.
func ActionFor(authenticated bool, status model.Status, isAssignee bool, firstAssignee string) Action {
	if !authenticated {
		return Action{Kind: ActionPromptLogin}
	}

	switch status {
	case model.StatusCompleted:
		return Action{Kind: ActionCompleted}
	case model.StatusInProgress:
		if isAssignee {
			return Action{Kind: ActionManage}
		}
		return Action{Kind: ActionInProgressBy, Assignee: firstAssignee}
	default:
		return Action{Kind: ActionClaim}
	}
}
