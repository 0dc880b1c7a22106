package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/roster"
	rosterHTTP "grassroots-tasks/internal/roster/delivery/http"
	rosterRepo "grassroots-tasks/internal/roster/repository/github"
	rosterUC "grassroots-tasks/internal/roster/usecase"
)

// setupRosterDomain initializes the roster domain and registers its routes.
//
// Pattern to follow when adding a new domain:
//  1. Create Repository:   repo := mydomainRepo.New(srv.github, srv.l)
//  2. Create UseCase:      uc := mydomainUC.New(srv.l, repo)
//  3. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  4. Register Routes:     mydomainHTTP.RegisterRoutes(api.Group("/myresource"), h)
func (srv *HTTPServer) setupRosterDomain(ctx context.Context, api *gin.RouterGroup, pools roster.PoolFinder) error {
	// 1. Repository
	repo := rosterRepo.New(srv.github, srv.l)

	// 2. UseCase
	uc := rosterUC.New(srv.l, repo, pools, srv.rosterOpts)

	// 3. HTTP Handler
	h := rosterHTTP.New(srv.l, uc)

	// 4. Routes: registers /api/v1/roster/people and /api/v1/roster/resources
	rosterHTTP.RegisterRoutes(api.Group("/roster"), h)

	srv.l.Infof(ctx, "Roster domain registered")
	return nil
}
