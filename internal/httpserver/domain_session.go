package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	sessionHTTP "grassroots-tasks/internal/session/delivery/http"
	sessionUC "grassroots-tasks/internal/session/usecase"
)

// setupSessionDomain initializes the session domain and registers its routes.
func (srv *HTTPServer) setupSessionDomain(ctx context.Context, api *gin.RouterGroup) error {
	// 1. UseCase (the session store doubles as the repository)
	uc := sessionUC.New(srv.l, srv.sessionStore, srv.github)

	// 2. HTTP Handler
	h := sessionHTTP.New(srv.l, uc)

	// 3. Routes: registers /api/v1/session and /api/v1/session/login
	sessionHTTP.RegisterRoutes(api.Group("/session"), h)

	srv.l.Infof(ctx, "Session domain registered")
	return nil
}
