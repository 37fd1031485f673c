package sqlstore

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/platform/logger"
	"github.com/phrazzld/qna-api/internal/store"
)

// UserStore implements the store.UserStore interface using a SQL database as
// the storage backend. It accepts a connection or transaction through the
// store.DBTX abstraction; WithTx rebinds the store to a transaction so the
// service layer can run its guarded update as one atomic unit.
type UserStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewUserStore creates a SQL implementation of the UserStore interface.
func NewUserStore(db store.DBTX, logger *slog.Logger) *UserStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserStore{
		db:     db,
		logger: logger.With(slog.String("component", "user_store")),
	}
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// Save implements store.UserStore.Save
// Returns store.ErrLoginIDExists when the login ID is already taken.
func (s *UserStore) Save(ctx context.Context, loginID, password, name, email string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(loginID, password, name, email)
	if err != nil {
		log.Warn("user validation failed during save",
			slog.String("error", err.Error()),
			slog.String("login_id", loginID))
		return 0, err
	}

	query := `
		INSERT INTO users (login_id, password, name, email)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = s.db.QueryRowContext(ctx, query, user.LoginID, user.Password, user.Name, user.Email).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return 0, store.ErrLoginIDExists
		}
		log.Error("failed to save user",
			slog.String("error", err.Error()),
			slog.String("login_id", loginID))
		return 0, store.NewStoreError("user", "save", "failed to insert row", err)
	}

	log.Debug("user saved", slog.Int64("user_id", id))
	return id, nil
}

// FindAll implements store.UserStore.FindAll
func (s *UserStore) FindAll(ctx context.Context) ([]*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, login_id, password, name, email
		FROM users
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query users", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "find_all", "query failed", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	users := []*domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(&user.ID, &user.LoginID, &user.Password, &user.Name, &user.Email); err != nil {
			log.Error("failed to scan user row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("user", "find_all", "row scan failed", err)
		}
		users = append(users, &user)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("user", "find_all", "row iteration failed", err)
	}

	return users, nil
}

// FindByID implements store.UserStore.FindByID
func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, login_id, password, name, email
		FROM users
		WHERE id = $1
	`

	var user domain.User
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.LoginID,
		&user.Password,
		&user.Name,
		&user.Email,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrUserNotFound
		}
		log.Error("failed to get user by ID",
			slog.String("error", err.Error()),
			slog.Int64("user_id", id))
		return nil, store.NewStoreError("user", "find_by_id", "query failed", err)
	}

	return &user, nil
}

// Update implements store.UserStore.Update
// Every column of the matching row is replaced. No authorization happens
// here; the password-guarded policy lives in the service layer.
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := user.Validate(); err != nil {
		log.Warn("user validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return err
	}

	query := `
		UPDATE users
		SET login_id = $1, password = $2, name = $3, email = $4
		WHERE id = $5
	`

	result, err := s.db.ExecContext(ctx, query, user.LoginID, user.Password, user.Name, user.Email, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return store.ErrLoginIDExists
		}
		log.Error("failed to update user",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return store.NewStoreError("user", "update", "exec failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("user_id", user.ID))
		return store.NewStoreError("user", "update", "rows affected unavailable", err)
	}
	if rowsAffected == 0 {
		return store.ErrUserNotFound
	}

	log.Debug("user updated", slog.Int64("user_id", user.ID))
	return nil
}

// DeleteAll implements store.UserStore.DeleteAll
func (s *UserStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM users`); err != nil {
		log.Error("failed to delete all users", slog.String("error", err.Error()))
		return store.NewStoreError("user", "delete_all", "exec failed", err)
	}
	return nil
}

// WithTx implements store.UserStore.WithTx
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return &UserStore{
		db:     tx,
		logger: s.logger,
	}
}
