package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/taskboard"
	taskboardHTTP "grassroots-tasks/internal/taskboard/delivery/http"
	taskboardRepo "grassroots-tasks/internal/taskboard/repository/github"
	taskboardUC "grassroots-tasks/internal/taskboard/usecase"
)

// setupTaskboardDomain initializes the taskboard domain and registers
// its routes. The usecase is returned so the roster domain can use it
// as a pool-issue fallback source.
func (srv *HTTPServer) setupTaskboardDomain(ctx context.Context, api *gin.RouterGroup) (taskboard.UseCase, error) {
	// 1. Repository
	repo := taskboardRepo.New(srv.github, srv.l)

	// 2. UseCase
	uc := taskboardUC.New(srv.l, repo)

	// 3. HTTP Handler
	h := taskboardHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/tasks and the lifecycle endpoints
	taskboardHTTP.RegisterRoutes(api.Group("/tasks"), h)

	srv.l.Infof(ctx, "Taskboard domain registered")
	return uc, nil
}
