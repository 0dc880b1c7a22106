package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"grassroots-tasks/internal/roster"
	"grassroots-tasks/internal/session"
	pkgGithub "grassroots-tasks/pkg/github"
	pkgLog "grassroots-tasks/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	github       *pkgGithub.Client
	sessionStore session.Store
	rosterOpts   roster.ParseOptions
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	GitHubClient *pkgGithub.Client
	SessionStore session.Store
	RosterOpts   roster.ParseOptions
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:            logger,
		gin:          gin.New(),
		port:         cfg.Port,
		mode:         cfg.Mode,
		environment:  cfg.Environment,
		github:       cfg.GitHubClient,
		sessionStore: cfg.SessionStore,
		rosterOpts:   cfg.RosterOpts,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.github == nil {
		return errors.New("github client is required")
	}
	if srv.sessionStore == nil {
		return errors.New("session store is required")
	}
	return nil
}
