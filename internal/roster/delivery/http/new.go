package http

import (
	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/roster"
	pkgLog "grassroots-tasks/pkg/log"
)

// Handler is the public interface for the roster HTTP delivery layer.
type Handler interface {
	People(c *gin.Context)
	Resources(c *gin.Context)
}

type handler struct {
	l  pkgLog.Logger
	uc roster.UseCase
}

// New creates a new HTTP handler for the roster domain.
func New(l pkgLog.Logger, uc roster.UseCase) Handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}

// RegisterRoutes maps the roster routes. Both are public reads.
func RegisterRoutes(rg *gin.RouterGroup, h Handler) {
	rg.GET("/people", h.People)
	rg.GET("/resources", h.Resources)
}
