// Package mocks provides function-field test doubles for the store
// interfaces, used to inject failures the real implementations cannot
// produce on demand.
package mocks

import (
	"context"
	"database/sql"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/store"
)

// UserStore implements store.UserStore for testing. Any nil function field
// falls back to a trivial default.
type UserStore struct {
	SaveFn     func(ctx context.Context, loginID, password, name, email string) (int64, error)
	FindAllFn  func(ctx context.Context) ([]*domain.User, error)
	FindByIDFn func(ctx context.Context, id int64) (*domain.User, error)
	UpdateFn   func(ctx context.Context, user *domain.User) error
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// Save implements the UserStore interface
func (m *UserStore) Save(ctx context.Context, loginID, password, name, email string) (int64, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, loginID, password, name, email)
	}
	return 1, nil
}

// FindAll implements the UserStore interface
func (m *UserStore) FindAll(ctx context.Context) ([]*domain.User, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return []*domain.User{}, nil
}

// FindByID implements the UserStore interface
func (m *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, store.ErrUserNotFound
}

// Update implements the UserStore interface
func (m *UserStore) Update(ctx context.Context, user *domain.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, user)
	}
	return nil
}

// DeleteAll implements the UserStore interface
func (m *UserStore) DeleteAll(ctx context.Context) error {
	return nil
}

// WithTx implements the UserStore interface; the mock has no transactions.
func (m *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return m
}
