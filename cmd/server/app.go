package main

import (
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/phrazzld/qna-api/internal/config"
	"github.com/phrazzld/qna-api/internal/platform/memstore"
	"github.com/phrazzld/qna-api/internal/platform/sqlstore"
	"github.com/phrazzld/qna-api/internal/service"
	"github.com/phrazzld/qna-api/internal/service/auth"
	"github.com/phrazzld/qna-api/internal/store"
)

// application holds all the shared application dependencies to simplify
// management and ensure proper cleanup on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// db is nil when the in-memory backend is selected.
	db *sql.DB

	// Stores (using interfaces for proper abstraction)
	userStore     store.UserStore
	questionStore store.QuestionStore
	replyStore    store.ReplyStore

	// Services
	passwordScheme  auth.PasswordScheme
	userService     service.UserService
	questionService service.QuestionService
}

// newApplication creates a new application instance with all dependencies
// initialized according to the loaded configuration. The storage backend is
// selected here; everything above the store interfaces is wired identically
// for both backends.
func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
	}

	switch cfg.Auth.PasswordScheme {
	case config.PasswordSchemeBcrypt:
		app.passwordScheme = auth.NewBcryptScheme()
	default:
		app.passwordScheme = auth.NewPlaintextScheme()
	}

	switch cfg.Store.Backend {
	case config.StoreBackendPostgres:
		db, err := setupAppDatabase(cfg, logger)
		if err != nil {
			return nil, err
		}
		if err := runMigrations(db, logger); err != nil {
			closeQuietly(db, logger)
			return nil, err
		}
		app.db = db
		app.userStore = sqlstore.NewUserStore(db, logger)
		app.questionStore = sqlstore.NewQuestionStore(db, logger)
		app.replyStore = sqlstore.NewReplyStore(db, logger)
	case config.StoreBackendMemory:
		replies := memstore.NewReplyStore()
		app.userStore = memstore.NewUserStore()
		app.questionStore = memstore.NewQuestionStore(replies, logger)
		app.replyStore = replies
	default:
		return nil, fmt.Errorf("unsupported store backend: %q", cfg.Store.Backend)
	}

	app.userService = service.NewUserService(app.userStore, app.db, app.passwordScheme, logger)
	app.questionService = service.NewQuestionService(app.questionStore, logger)

	return app, nil
}

// cleanup releases resources held by the application, such as the database
// connection pool. Safe to call for the in-memory backend.
func (app *application) cleanup() {
	if app.db != nil {
		closeQuietly(app.db, app.logger)
	}
}

func closeQuietly(db *sql.DB, logger *slog.Logger) {
	if err := db.Close(); err != nil {
		logger.Error("Failed to close database connection", "error", err)
	}
}
