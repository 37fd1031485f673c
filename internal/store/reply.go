package store

import (
	"context"

	"github.com/phrazzld/qna-api/internal/domain"
)

// ReplyStore defines the interface for reply persistence.
type ReplyStore interface {
	// Save persists a new reply to the given question and returns the
	// assigned identifier. Returns a *StoreError if the write fails.
	Save(ctx context.Context, questionID int64, writer, content string) (int64, error)

	// FindByQuestionID returns all non-deleted replies to the given question,
	// in insertion order. An empty result is an empty slice, never an error.
	FindByQuestionID(ctx context.Context, questionID int64) ([]*domain.Reply, error)

	// DeleteAll hard-deletes every reply. Administrative/test-only operation.
	DeleteAll(ctx context.Context) error
}
