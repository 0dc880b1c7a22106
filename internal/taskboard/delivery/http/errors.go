package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/taskboard"
	pkgGithub "grassroots-tasks/pkg/github"
	"grassroots-tasks/pkg/response"
)

// mapError translates usecase failures to HTTP. Remote store failures
// keep their upstream status so the caller sees what GitHub said.
func (h *handler) mapError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, taskboard.ErrNotAuthenticated):
		response.Unauthorized(c)
	case errors.Is(err, taskboard.ErrTaskNotFound):
		response.ErrorStatus(c, 404, err)
	default:
		if remote, ok := pkgGithub.AsRemoteError(err); ok {
			response.ErrorStatus(c, remote.StatusCode, err)
			return
		}
		h.l.Errorf(c.Request.Context(), "taskboard delivery: %v", err)
		response.InternalError(c, err)
	}
}
