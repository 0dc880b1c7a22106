package taskboard

import "grassroots-tasks/internal/model"

// ListInput filters the task list. All set filters are AND-combined,
// each checked by exact label-name membership.
type ListInput struct {
	Priority string `form:"priority"` // "p0" | "p1" | "p2"
	Status   string `form:"status"`   // "待领" | "进行中" | "已完成"
	Skill    string `form:"skill"`
}

// TaskView is one task decorated with the caller's affordance.
type TaskView struct {
	model.Task
	Details model.TaskDetails `json:"details"`
	Action  Action            `json:"action"`
}

// ListOutput is the filtered, decorated task list.
type ListOutput struct {
	Tasks []TaskView
	Count int
}
