// Package logger provides structured logging functionality for the application.
package logger

import (
	"context"
	"log/slog"
	"os"
	"strings"

	"github.com/phrazzld/qna-api/internal/config"
)

// contextKey is a private type for context keys defined in this package.
type contextKey int

// loggerKey is the context key under which a request-scoped logger is stored.
const loggerKey contextKey = iota

// Setup initializes and configures the application's logging system based on
// the provided configuration. It creates a structured JSON logger with the
// appropriate log level and sets it as the default logger for the application.
func Setup(cfg config.ServerConfig) (*slog.Logger, error) {
	// Parse the log level from configuration (case-insensitive)
	var level slog.Level
	switch strings.ToLower(cfg.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		// If the log level is invalid, use info level and warn about it
		level = slog.LevelInfo

		tmpLogger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		tmpLogger.Warn("invalid log level configured, using default level",
			"configured_level", cfg.LogLevel,
			"default_level", "info")
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	handler := slog.NewJSONHandler(os.Stdout, opts)
	logger := slog.New(handler)

	// Set this logger as the default so the slog package functions
	// (slog.Info, slog.Error, etc.) use it as well.
	slog.SetDefault(logger)

	return logger, nil
}

// WithLogger returns a copy of ctx carrying the given logger.
// Panics if logger is nil; storing a nil logger is always a caller bug.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	if logger == nil {
		// ALLOW-PANIC: Misuse that must fail loudly during development
		panic("logger cannot be nil")
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext retrieves the logger stored in ctx, falling back to the
// process-wide default logger when none is present.
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// FromContextOrDefault retrieves the logger stored in ctx, falling back to
// the provided default. A nil defaultLogger falls through to slog.Default.
func FromContextOrDefault(ctx context.Context, defaultLogger *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok {
		return logger
	}
	if defaultLogger != nil {
		return defaultLogger
	}
	return slog.Default()
}
