package http

import (
	"errors"

	"github.com/gin-gonic/gin"
)

type loginReq struct {
	Token string `json:"token"`
}

func (h *handler) processLoginRequest(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return loginReq{}, errors.New("invalid request body")
	}
	if req.Token == "" {
		return loginReq{}, errors.New("token is required")
	}
	return req, nil
}
