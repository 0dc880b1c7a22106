package http

import (
	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/taskboard"
	pkgLog "grassroots-tasks/pkg/log"
)

// Handler is the public interface for the taskboard HTTP delivery layer.
type Handler interface {
	List(c *gin.Context)
	Detail(c *gin.Context)
	Claim(c *gin.Context)
	Unclaim(c *gin.Context)
	Complete(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc taskboard.UseCase
}

// New creates a new HTTP handler for the taskboard domain.
func New(l pkgLog.Logger, uc taskboard.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes maps the taskboard routes. The list is a public read;
// lifecycle calls demand an authenticated scope, enforced in the
// usecase against the scope the auth middleware resolved.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("", h.List)
	rg.GET("/:number", h.Detail)
	rg.POST("/:number/claim", h.Claim)
	rg.POST("/:number/unclaim", h.Unclaim)
	rg.POST("/:number/complete", h.Complete)
}
