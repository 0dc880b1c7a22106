package http

import (
	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/middleware"
	"grassroots-tasks/pkg/response"
)

// List godoc
// @Summary     Task list
// @Description Returns open tasks with derived fields and the caller's action per task.
// @Tags        Taskboard
// @Produce     json
// @Param       priority query string false "Priority label (p0|p1|p2)"
// @Param       status   query string false "Status label (待领|进行中|已完成)"
// @Param       skill    query string false "Skill label"
// @Success     200 {object} listResp
// @Router      /api/v1/tasks [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processListRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.ScopeFromContext(c), input)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, newListResp(output))
}

// Detail godoc
// @Summary     Task detail
// @Description Returns one task with derived fields, parsed body details and the caller's action.
// @Tags        Taskboard
// @Produce     json
// @Param       number path int true "Task number"
// @Success     200 {object} taskboard.TaskView
// @Failure     404 {object} response.Resp
// @Router      /api/v1/tasks/{number} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	number, err := h.processNumberParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	view, err := h.uc.Get(ctx, middleware.ScopeFromContext(c), number)
	if err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, view)
}

// Claim godoc
// @Summary     Claim a task
// @Description Posts the attribution comment, swaps 待领 for 进行中 and assigns the caller.
// @Tags        Taskboard
// @Produce     json
// @Param       number path int true "Task number"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp
// @Router      /api/v1/tasks/{number}/claim [POST]
func (h *handler) Claim(c *gin.Context) {
	h.lifecycle(c, h.uc.Claim)
}

// Unclaim godoc
// @Summary     Release a task
// @Description Posts the release comment, swaps 进行中 for 待领 and unassigns the caller.
// @Tags        Taskboard
// @Produce     json
// @Param       number path int true "Task number"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp
// @Router      /api/v1/tasks/{number}/unclaim [POST]
func (h *handler) Unclaim(c *gin.Context) {
	h.lifecycle(c, h.uc.Unclaim)
}

// Complete godoc
// @Summary     Complete a task
// @Description Posts the completion comment and labels the task 已完成.
// @Tags        Taskboard
// @Produce     json
// @Param       number path int true "Task number"
// @Success     200 {object} response.Resp
// @Failure     401 {object} response.Resp
// @Router      /api/v1/tasks/{number}/complete [POST]
func (h *handler) Complete(c *gin.Context) {
	h.lifecycle(c, h.uc.Complete)
}

func (h *handler) lifecycle(c *gin.Context, op lifecycleOp) {
	ctx := c.Request.Context()

	number, err := h.processNumberParam(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := op(ctx, middleware.ScopeFromContext(c), number); err != nil {
		h.mapError(c, err)
		return
	}

	response.OK(c, nil)
}
