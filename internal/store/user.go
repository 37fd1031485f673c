package store

import (
	"context"
	"database/sql"

	"github.com/phrazzld/qna-api/internal/domain"
)

// UserStore defines the interface for user persistence.
//
// The store is a dumb container: Update performs no authorization whatsoever.
// The password-guarded update policy lives in service.UserService, which is
// the only caller that should mutate password-protected fields.
type UserStore interface {
	// Save persists a new user and returns the assigned identifier.
	// Returns ErrLoginIDExists if the login ID is already taken.
	// Returns a *StoreError if the underlying write fails.
	Save(ctx context.Context, loginID, password, name, email string) (int64, error)

	// FindAll returns all users. An empty store yields an empty slice,
	// never an error.
	FindAll(ctx context.Context) ([]*domain.User, error)

	// FindByID returns the user with the given ID.
	// Returns ErrUserNotFound if no such user exists.
	FindByID(ctx context.Context, id int64) (*domain.User, error)

	// Update replaces every field of the user matching user.ID.
	// Returns ErrUserNotFound if the user does not exist.
	// No authorization is performed here; see service.UserService.
	Update(ctx context.Context, user *domain.User) error

	// DeleteAll hard-deletes every user. Administrative/test-only operation.
	DeleteAll(ctx context.Context) error

	// WithTx returns a UserStore bound to the provided transaction, so a
	// service can run a read-check-write sequence as one atomic unit.
	// Implementations without transaction support return themselves.
	WithTx(tx *sql.Tx) UserStore
}
