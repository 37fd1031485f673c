package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/store"
)

// QuestionService provides question operations with ownership rules:
// only the writer of a question may update or delete it.
type QuestionService interface {
	// Create saves a new question and returns the assigned ID.
	Create(ctx context.Context, title, content, writer string, writerID int64) (int64, error)

	// FindAll returns all non-deleted questions.
	FindAll(ctx context.Context) ([]*domain.Question, error)

	// FindByID returns the question with the given ID.
	// Returns store.ErrQuestionNotFound unchanged if it does not exist.
	FindByID(ctx context.Context, id int64) (*domain.Question, error)

	// Update replaces the title and content of the question, provided
	// writerID matches the question's writer. Returns ErrNotOwned otherwise.
	Update(ctx context.Context, id, writerID int64, title, content string) error

	// Delete soft-deletes the question and its replies, provided writerID
	// matches the question's writer. Returns ErrNotOwned otherwise.
	Delete(ctx context.Context, id, writerID int64) error
}

// QuestionServiceImpl implements the QuestionService interface.
type QuestionServiceImpl struct {
	questions store.QuestionStore
	logger    *slog.Logger
}

// NewQuestionService creates a new QuestionService over the given store.
func NewQuestionService(questions store.QuestionStore, logger *slog.Logger) QuestionService {
	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionServiceImpl{
		questions: questions,
		logger:    logger.With(slog.String("component", "question_service")),
	}
}

// Create saves a new question.
func (s *QuestionServiceImpl) Create(ctx context.Context, title, content, writer string, writerID int64) (int64, error) {
	id, err := s.questions.Save(ctx, title, content, writer, writerID)
	if err != nil {
		s.logger.Error("failed to save question",
			slog.String("error", err.Error()),
			slog.Int64("writer_id", writerID))
		return 0, err
	}

	s.logger.Info("question created",
		slog.Int64("question_id", id),
		slog.Int64("writer_id", writerID))
	return id, nil
}

// FindAll delegates directly to the store.
func (s *QuestionServiceImpl) FindAll(ctx context.Context) ([]*domain.Question, error) {
	return s.questions.FindAll(ctx)
}

// FindByID delegates directly to the store.
func (s *QuestionServiceImpl) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	return s.questions.FindByID(ctx, id)
}

// Update replaces title and content after checking ownership.
func (s *QuestionServiceImpl) Update(ctx context.Context, id, writerID int64, title, content string) error {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if question.WriterID != writerID {
		s.logger.Warn("question update rejected: not the writer",
			slog.Int64("question_id", id),
			slog.Int64("writer_id", writerID))
		return ErrNotOwned
	}

	question.Title = title
	question.Content = content
	return s.questions.Update(ctx, question)
}

// Delete soft-deletes the question and its replies after checking ownership.
func (s *QuestionServiceImpl) Delete(ctx context.Context, id, writerID int64) error {
	question, err := s.questions.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if question.WriterID != writerID {
		s.logger.Warn("question delete rejected: not the writer",
			slog.Int64("question_id", id),
			slog.Int64("writer_id", writerID))
		return ErrNotOwned
	}

	if err := s.questions.DeleteByID(ctx, id); err != nil {
		if !errors.Is(err, store.ErrQuestionNotFound) {
			s.logger.Error("failed to delete question",
				slog.String("error", err.Error()),
				slog.Int64("question_id", id))
		}
		return err
	}

	return nil
}
