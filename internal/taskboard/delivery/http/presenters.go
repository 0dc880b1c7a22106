package http

import (
	"context"

	"grassroots-tasks/internal/model"
	"grassroots-tasks/internal/taskboard"
)

type lifecycleOp func(ctx context.Context, sc model.Scope, number int) error

type listResp struct {
	Tasks []taskboard.TaskView `json:"tasks"`
	Count int                  `json:"count"`
}

func newListResp(out taskboard.ListOutput) listResp {
	return listResp{
		Tasks: out.Tasks,
		Count: out.Count,
	}
}
