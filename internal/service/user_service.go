package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/service/auth"
	"github.com/phrazzld/qna-api/internal/store"
)

// UserService mediates all user mutations through authorization rules;
// the store alone offers no protection.
type UserService interface {
	// CreateUser registers a new user and returns the assigned ID.
	CreateUser(ctx context.Context, loginID, password, name, email string) (int64, error)

	// FindAll returns all users.
	FindAll(ctx context.Context) ([]*domain.User, error)

	// FindByID returns the user with the given ID.
	// Returns store.ErrUserNotFound unchanged if the user does not exist.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// Update replaces the user's login ID, name, and email after verifying
	// the supplied password against the stored one. The password itself is
	// never changed by this operation. Returns the (unchanged) user ID.
	// Returns store.ErrUserNotFound if the user does not exist, or
	// ErrWrongPassword - with no mutation - if the password does not match.
	Update(ctx context.Context, id int64, password, newLoginID, newName, newEmail string) (int64, error)
}

// UserServiceImpl implements the UserService interface.
type UserServiceImpl struct {
	users  store.UserStore
	db     *sql.DB
	scheme auth.PasswordScheme
	logger *slog.Logger
}

// NewUserService creates a new UserService over the given store.
// db may be nil when the store has no transaction support (the in-memory
// backend); with a SQL backend, pass the same handle the store was built on
// so guarded updates run inside a transaction.
func NewUserService(users store.UserStore, db *sql.DB, scheme auth.PasswordScheme, logger *slog.Logger) UserService {
	if scheme == nil {
		scheme = auth.NewPlaintextScheme()
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &UserServiceImpl{
		users:  users,
		db:     db,
		scheme: scheme,
		logger: logger.With(slog.String("component", "user_service")),
	}
}

// CreateUser registers a new user. The password is passed through the
// configured scheme before it reaches the store.
func (s *UserServiceImpl) CreateUser(ctx context.Context, loginID, password, name, email string) (int64, error) {
	if password == "" {
		return 0, domain.ErrEmptyPassword
	}

	stored, err := s.scheme.Hash(password)
	if err != nil {
		s.logger.Error("failed to prepare password for storage",
			slog.String("error", err.Error()),
			slog.String("login_id", loginID))
		return 0, fmt.Errorf("failed to create user: %w", err)
	}

	id, err := s.users.Save(ctx, loginID, stored, name, email)
	if err != nil {
		if errors.Is(err, store.ErrLoginIDExists) {
			s.logger.Debug("attempted to create user with existing login ID",
				slog.String("login_id", loginID))
		} else {
			s.logger.Error("failed to save user",
				slog.String("error", err.Error()),
				slog.String("login_id", loginID))
		}
		return 0, err
	}

	s.logger.Info("user created",
		slog.Int64("user_id", id),
		slog.String("login_id", loginID))
	return id, nil
}

// FindAll delegates directly to the store.
func (s *UserServiceImpl) FindAll(ctx context.Context) ([]*domain.User, error) {
	return s.users.FindAll(ctx)
}

// FindByID delegates directly to the store; absence surfaces as the store's
// own store.ErrUserNotFound.
func (s *UserServiceImpl) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.FindByID(ctx, id)
}

// Update performs the guarded update sequence: look up the user, verify the
// supplied password, then replace the login ID, name, and email. On a SQL
// backend the whole sequence runs inside one transaction so the check never
// passes against stale data.
func (s *UserServiceImpl) Update(ctx context.Context, id int64, password, newLoginID, newName, newEmail string) (int64, error) {
	err := s.inTx(ctx, func(users store.UserStore) error {
		user, err := users.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				s.logger.Debug("attempted to update missing user",
					slog.Int64("user_id", id))
			}
			return err
		}

		if err := s.scheme.Compare(user.Password, password); err != nil {
			s.logger.Warn("user update rejected: password mismatch",
				slog.Int64("user_id", id))
			return ErrWrongPassword
		}

		updated := *user
		updated.LoginID = newLoginID
		updated.Name = newName
		updated.Email = newEmail

		return users.Update(ctx, &updated)
	})
	if err != nil {
		return 0, err
	}

	s.logger.Info("user updated", slog.Int64("user_id", id))
	return id, nil
}

// inTx runs fn against a transaction-bound store when a database handle is
// available, and directly against the store otherwise.
func (s *UserServiceImpl) inTx(ctx context.Context, fn func(users store.UserStore) error) error {
	if s.db == nil {
		return fn(s.users)
	}
	return store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(s.users.WithTx(tx))
	})
}
