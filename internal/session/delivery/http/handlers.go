package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/session"
	"grassroots-tasks/pkg/response"
)

// Login godoc
// @Summary     Open a session
// @Description Validates a personal access token and opens a session.
// @Tags        Session
// @Accept      json
// @Produce     json
// @Param       body body loginReq true "Token"
// @Success     200 {object} loginResp
// @Failure     401 {object} response.Resp
// @Router      /api/v1/session/login [POST]
func (h *handler) Login(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processLoginRequest(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Login(ctx, session.LoginInput{Token: req.Token})
	if err != nil {
		if errors.Is(err, session.ErrInvalidToken) {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.Login: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newLoginResp(output))
}

// Logout godoc
// @Summary     Close the session
// @Tags        Session
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} response.Resp
// @Router      /api/v1/session [DELETE]
func (h *handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.Logout(ctx, c.GetHeader(SessionIDHeader)); err != nil {
		h.l.Errorf(ctx, "uc.Logout: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, nil)
}

// Current godoc
// @Summary     Current session
// @Description Returns the identity behind the presented session ID.
// @Tags        Session
// @Produce     json
// @Param       X-Session-ID header string true "Session ID"
// @Success     200 {object} profileResp
// @Failure     401 {object} response.Resp
// @Router      /api/v1/session [GET]
func (h *handler) Current(c *gin.Context) {
	ctx := c.Request.Context()

	sc, err := h.uc.Current(ctx, c.GetHeader(SessionIDHeader))
	if err != nil {
		if errors.Is(err, session.ErrNoSession) {
			response.Unauthorized(c)
			return
		}
		h.l.Errorf(ctx, "uc.Current: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, newProfileResp(sc.Profile))
}
