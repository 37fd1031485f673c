package store

import (
	"context"

	"github.com/phrazzld/qna-api/internal/domain"
)

// QuestionStore defines the interface for question persistence.
// The in-memory and SQL-backed implementations are interchangeable; no caller
// depends on which one is wired in.
type QuestionStore interface {
	// Save persists a new question and returns the assigned identifier.
	// Identifiers are unique and monotonically increasing within a store
	// instance. Returns a *StoreError if the underlying write fails.
	Save(ctx context.Context, title, content, writer string, writerID int64) (int64, error)

	// FindAll returns all non-deleted questions. An empty store yields an
	// empty slice, never an error. Order is store-defined.
	FindAll(ctx context.Context) ([]*domain.Question, error)

	// FindByID returns the non-deleted question with the given ID.
	// Returns ErrQuestionNotFound if no such question exists.
	FindByID(ctx context.Context, id int64) (*domain.Question, error)

	// Update replaces the title and content of the question matching
	// target.ID, leaving the writer fields untouched.
	// Returns ErrQuestionNotFound if the question does not exist.
	Update(ctx context.Context, target *domain.Question) error

	// DeleteByID soft-deletes the question and every reply referencing it as
	// one atomic unit: both take effect together or neither does.
	// Returns ErrQuestionNotFound if the question does not exist.
	DeleteByID(ctx context.Context, id int64) error

	// DeleteAll hard-deletes every question, bypassing soft delete.
	// Administrative/test-only operation.
	DeleteAll(ctx context.Context) error
}
