package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/pressly/goose/v3"

	"github.com/phrazzld/qna-api/migrations"
)

// runMigrations applies any pending goose migrations from the embedded
// migration files. Called at startup for the postgres backend so a fresh
// database is ready to serve without a separate migration step.
func runMigrations(db *sql.DB, logger *slog.Logger) error {
	goose.SetBaseFS(migrations.FS)

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set migration dialect: %w", err)
	}

	if err := goose.Up(db, "."); err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	version, err := goose.GetDBVersion(db)
	if err != nil {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	logger.Info("Database migrations applied", "version", version)
	return nil
}
