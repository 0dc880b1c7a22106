package http

import (
	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/session"
	pkgLog "grassroots-tasks/pkg/log"
)

// SessionIDHeader carries the session ID on authenticated calls.
const SessionIDHeader = "X-Session-ID"

// Handler is the public interface for the session HTTP delivery layer.
type Handler interface {
	Login(c *gin.Context)
	Logout(c *gin.Context)
	Current(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc session.UseCase
}

// New creates a new HTTP handler for the session domain.
func New(l pkgLog.Logger, uc session.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes maps the session routes.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.POST("/login", h.Login)
	rg.DELETE("", h.Logout)
	rg.GET("", h.Current)
}
