// Package main implements the entry point for the Q&A API server,
// which serves questions, replies, and the users who write them.
package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"

	"github.com/phrazzld/qna-api/internal/config"
	"github.com/phrazzld/qna-api/internal/platform/logger"
)

func main() {
	app, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	router := app.setupRouter()
	if err := app.startHTTPServer(context.Background(), router); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration, sets up logging, and wires the
// application dependencies. Returns the assembled application or an
// initialization error.
func initializeApp() (*application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"store_backend", cfg.Store.Backend,
		"password_scheme", cfg.Auth.PasswordScheme)

	app, err := newApplication(cfg, appLogger)
	if err != nil {
		return nil, fmt.Errorf("failed to assemble application: %w", err)
	}

	return app, nil
}
