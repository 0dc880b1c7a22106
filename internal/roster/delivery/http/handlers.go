package http

import (
	"github.com/gin-gonic/gin"

	"grassroots-tasks/pkg/response"
)

// People godoc
// @Summary     Member roster
// @Description Returns the parsed member roster with its source metadata.
// @Tags        Roster
// @Produce     json
// @Success     200 {object} peopleResp
// @Router      /api/v1/roster/people [GET]
func (h *handler) People(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.People(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.People: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newPeopleResp(output))
}

// Resources godoc
// @Summary     Resource roster
// @Description Returns the parsed resource roster with its source metadata.
// @Tags        Roster
// @Produce     json
// @Success     200 {object} resourcesResp
// @Router      /api/v1/roster/resources [GET]
func (h *handler) Resources(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Resources(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Resources: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newResourcesResp(output))
}
