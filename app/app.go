// Package app holds the application factory. Every launch path (the server
// binary, tests, embedders) builds the application through New, so schema
// creation can never be skipped by the way the process was started.
package app

import (
	"fmt"
	"net/http"

	"gorm.io/gorm"

	"agentchat/agent"
	"agentchat/config"
	"agentchat/database"
	"agentchat/handlers"
	"agentchat/logger"
	"agentchat/repositories"
	"agentchat/routes"
	"agentchat/templates"
	"agentchat/websocket"
)

type App struct {
	Config *config.Config
	DB     *gorm.DB
	Hub    *websocket.Hub
	Router http.Handler
}

// New constructs and wires the whole application. The database schema is
// migrated here, before the router exists, so it is in place before the
// first request can be served.
func New(cfg *config.Config) (*App, error) {
	logger.Init(cfg.LogLevel)

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, err
	}

	messageRepo := repositories.NewMessageRepository(db)
	sessionRepo := repositories.NewSessionRepository(db)

	var runner agent.Runner
	if cfg.AgentURL != "" {
		runner = agent.NewHTTPRunner(cfg.AgentURL)
	}

	hub := websocket.NewHub()
	go hub.Run()

	tmpl, err := templates.Index()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	router := routes.SetupRoutes(
		handlers.NewChatHandler(messageRepo, sessionRepo, runner, hub),
		handlers.NewHistoryHandler(messageRepo),
		handlers.NewSessionHandler(tmpl),
		handlers.NewSystemHandler(db),
		hub,
		cfg.AccessTokenHash,
	)

	return &App{
		Config: cfg,
		DB:     db,
		Hub:    hub,
		Router: router,
	}, nil
}

// Close releases the database connection pool.
func (a *App) Close() error {
	sqlDB, err := a.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
