package httpserver

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"grassroots-tasks/internal/middleware"
)

// Run maps every route and serves until the listener dies.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf(":%d", srv.port))
}

func (srv *HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.sessionStore, srv.github)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv *HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestID())
	srv.gin.Use(mw.Auth())
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv *HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()
	api := srv.gin.Group("/api/v1")

	taskboardUC, err := srv.setupTaskboardDomain(ctx, api)
	if err != nil {
		return err
	}
	if err := srv.setupRosterDomain(ctx, api, taskboardUC); err != nil {
		return err
	}
	if err := srv.setupSessionDomain(ctx, api); err != nil {
		return err
	}

	return nil
}
