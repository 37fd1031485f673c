package mocks

import (
	"context"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/store"
)

// QuestionStore implements store.QuestionStore for testing. Any nil function
// field falls back to a trivial default.
type QuestionStore struct {
	SaveFn       func(ctx context.Context, title, content, writer string, writerID int64) (int64, error)
	FindAllFn    func(ctx context.Context) ([]*domain.Question, error)
	FindByIDFn   func(ctx context.Context, id int64) (*domain.Question, error)
	UpdateFn     func(ctx context.Context, target *domain.Question) error
	DeleteByIDFn func(ctx context.Context, id int64) error
}

// Ensure QuestionStore implements store.QuestionStore
var _ store.QuestionStore = (*QuestionStore)(nil)

// Save implements the QuestionStore interface
func (m *QuestionStore) Save(ctx context.Context, title, content, writer string, writerID int64) (int64, error) {
	if m.SaveFn != nil {
		return m.SaveFn(ctx, title, content, writer, writerID)
	}
	return 1, nil
}

// FindAll implements the QuestionStore interface
func (m *QuestionStore) FindAll(ctx context.Context) ([]*domain.Question, error) {
	if m.FindAllFn != nil {
		return m.FindAllFn(ctx)
	}
	return []*domain.Question{}, nil
}

// FindByID implements the QuestionStore interface
func (m *QuestionStore) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	if m.FindByIDFn != nil {
		return m.FindByIDFn(ctx, id)
	}
	return nil, store.ErrQuestionNotFound
}

// Update implements the QuestionStore interface
func (m *QuestionStore) Update(ctx context.Context, target *domain.Question) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, target)
	}
	return nil
}

// DeleteByID implements the QuestionStore interface
func (m *QuestionStore) DeleteByID(ctx context.Context, id int64) error {
	if m.DeleteByIDFn != nil {
		return m.DeleteByIDFn(ctx, id)
	}
	return nil
}

// DeleteAll implements the QuestionStore interface
func (m *QuestionStore) DeleteAll(ctx context.Context) error {
	return nil
}
