package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"grassroots-tasks/config"
	_ "grassroots-tasks/docs" // Swagger docs
	"grassroots-tasks/internal/httpserver"
	"grassroots-tasks/internal/roster"
	sessionStore "grassroots-tasks/internal/session/store/memory"
	pkgGithub "grassroots-tasks/pkg/github"
	"grassroots-tasks/pkg/log"
)

// @title       Grassroots Tasks API
// @description Volunteer task board backed by GitHub issues, labels and comments.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Grassroots Tasks API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Task repository: %s/%s", cfg.GitHub.Owner, cfg.GitHub.Repo)

	// 3. Remote store client
	githubClient := pkgGithub.NewClient(pkgGithub.Config{
		Owner:      cfg.GitHub.Owner,
		Repo:       cfg.GitHub.Repo,
		Token:      cfg.GitHub.Token,
		APIBaseURL: cfg.GitHub.APIBaseURL,
		RawBaseURL: cfg.GitHub.RawBaseURL,
	})

	// 4. Session store
	store := sessionStore.New()

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:       logger,
		Port:         cfg.HTTPServer.Port,
		Mode:         cfg.HTTPServer.Mode,
		Environment:  cfg.Environment.Name,
		GitHubClient: githubClient,
		SessionStore: store,
		RosterOpts: roster.ParseOptions{
			StrictSectionMatch: cfg.Roster.StrictSectionMatch,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
