package memstore

import (
	"context"
	"database/sql"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/store"
)

// UserStore implements store.UserStore with an in-process map.
type UserStore struct {
	seq atomic.Int64

	mu    sync.RWMutex
	users map[int64]*domain.User
	order []int64
}

// NewUserStore creates an empty in-memory user store.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[int64]*domain.User),
	}
}

// Ensure UserStore implements store.UserStore
var _ store.UserStore = (*UserStore)(nil)

// Save implements store.UserStore.Save
func (s *UserStore) Save(ctx context.Context, loginID, password, name, email string) (int64, error) {
	user, err := domain.NewUser(loginID, password, name, email)
	if err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.users {
		if existing.LoginID == loginID {
			return 0, store.ErrLoginIDExists
		}
	}

	id := s.seq.Add(1)
	user.ID = id
	s.users[id] = user
	s.order = append(s.order, id)

	return id, nil
}

// FindAll implements store.UserStore.FindAll
// Users are returned in insertion order.
func (s *UserStore) FindAll(ctx context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	users := []*domain.User{}
	for _, id := range s.order {
		user, ok := s.users[id]
		if !ok {
			continue
		}
		cp := *user
		users = append(users, &cp)
	}

	return users, nil
}

// FindByID implements store.UserStore.FindByID
func (s *UserStore) FindByID(ctx context.Context, id int64) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}

	cp := *user
	return &cp, nil
}

// Update implements store.UserStore.Update
func (s *UserStore) Update(ctx context.Context, user *domain.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}

	for id, existing := range s.users {
		if id != user.ID && existing.LoginID == user.LoginID {
			return store.ErrLoginIDExists
		}
	}

	cp := *user
	s.users[user.ID] = &cp
	return nil
}

// DeleteAll implements store.UserStore.DeleteAll
func (s *UserStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = make(map[int64]*domain.User)
	s.order = nil
	return nil
}

// WithTx implements store.UserStore.WithTx
// The in-memory store has no transactions; operations are individually
// serialized by the store's own lock, so it returns itself.
func (s *UserStore) WithTx(tx *sql.Tx) store.UserStore {
	return s
}
