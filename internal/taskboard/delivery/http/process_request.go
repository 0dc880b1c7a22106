package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/taskboard"
)

func (h *handler) processListRequest(c *gin.Context) (taskboard.ListInput, error) {
	var input taskboard.ListInput
	if err := c.ShouldBindQuery(&input); err != nil {
		return taskboard.ListInput{}, errors.New("invalid filter")
	}
	return input, nil
}

func (h *handler) processNumberParam(c *gin.Context) (int, error) {
	number, err := strconv.Atoi(c.Param("number"))
	if err != nil || number <= 0 {
		return 0, errors.New("invalid task number")
	}
	return number, nil
}
