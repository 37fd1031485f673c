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

// QuestionStore implements the store.QuestionStore interface using a SQL
// database as the storage backend. Rows carry an is_deleted flag; normal
// queries exclude soft-deleted rows.
type QuestionStore struct {
	db     *sql.DB
	logger *slog.Logger
}

// NewQuestionStore creates a SQL implementation of the QuestionStore
// interface. It accepts a database connection that should be initialized and
// managed by the caller. If logger is nil, a default logger will be used.
func NewQuestionStore(db *sql.DB, logger *slog.Logger) *QuestionStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionStore{
		db:     db,
		logger: logger.With(slog.String("component", "question_store")),
	}
}

// Ensure QuestionStore implements store.QuestionStore
var _ store.QuestionStore = (*QuestionStore)(nil)

// Save implements store.QuestionStore.Save
func (s *QuestionStore) Save(ctx context.Context, title, content, writer string, writerID int64) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	question, err := domain.NewQuestion(title, content, writer, writerID)
	if err != nil {
		log.Warn("question validation failed during save",
			slog.String("error", err.Error()))
		return 0, err
	}

	query := `
		INSERT INTO question (title, content, writer, writer_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id
	`

	var id int64
	err = s.db.QueryRowContext(
		ctx,
		query,
		question.Title,
		question.Content,
		question.Writer,
		question.WriterID,
	).Scan(&id)
	if err != nil {
		log.Error("failed to save question",
			slog.String("error", err.Error()),
			slog.Int64("writer_id", writerID))
		return 0, store.NewStoreError("question", "save", "failed to insert row", err)
	}

	log.Debug("question saved",
		slog.Int64("question_id", id),
		slog.Int64("writer_id", writerID))
	return id, nil
}

// FindAll implements store.QuestionStore.FindAll
// Soft-deleted questions are excluded.
func (s *QuestionStore) FindAll(ctx context.Context) ([]*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, writer, writer_id
		FROM question
		WHERE is_deleted = FALSE
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		log.Error("failed to query questions", slog.String("error", err.Error()))
		return nil, store.NewStoreError("question", "find_all", "query failed", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	questions := []*domain.Question{}
	for rows.Next() {
		var question domain.Question
		err := rows.Scan(
			&question.ID,
			&question.Title,
			&question.Content,
			&question.Writer,
			&question.WriterID,
		)
		if err != nil {
			log.Error("failed to scan question row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("question", "find_all", "row scan failed", err)
		}
		questions = append(questions, &question)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("question", "find_all", "row iteration failed", err)
	}

	return questions, nil
}

// FindByID implements store.QuestionStore.FindByID
// Returns store.ErrQuestionNotFound for missing or soft-deleted questions.
func (s *QuestionStore) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, title, content, writer, writer_id
		FROM question
		WHERE id = $1 AND is_deleted = FALSE
	`

	var question domain.Question
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&question.ID,
		&question.Title,
		&question.Content,
		&question.Writer,
		&question.WriterID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrQuestionNotFound
		}
		log.Error("failed to get question by ID",
			slog.String("error", err.Error()),
			slog.Int64("question_id", id))
		return nil, store.NewStoreError("question", "find_by_id", "query failed", err)
	}

	return &question, nil
}

// Update implements store.QuestionStore.Update
// Only the title and content columns are written; the writer columns stay as
// saved. Returns store.ErrQuestionNotFound if no live row matches target.ID.
func (s *QuestionStore) Update(ctx context.Context, target *domain.Question) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := target.Validate(); err != nil {
		log.Warn("question validation failed during update",
			slog.String("error", err.Error()),
			slog.Int64("question_id", target.ID))
		return err
	}

	query := `
		UPDATE question
		SET title = $1, content = $2
		WHERE id = $3 AND is_deleted = FALSE
	`

	result, err := s.db.ExecContext(ctx, query, target.Title, target.Content, target.ID)
	if err != nil {
		log.Error("failed to update question",
			slog.String("error", err.Error()),
			slog.Int64("question_id", target.ID))
		return store.NewStoreError("question", "update", "exec failed", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.Int64("question_id", target.ID))
		return store.NewStoreError("question", "update", "rows affected unavailable", err)
	}
	if rowsAffected == 0 {
		return store.ErrQuestionNotFound
	}

	log.Debug("question updated", slog.Int64("question_id", target.ID))
	return nil
}

// DeleteByID implements store.QuestionStore.DeleteByID
// The question and its replies are marked deleted inside one transaction, so
// either both updates commit or neither takes effect.
func (s *QuestionStore) DeleteByID(ctx context.Context, id int64) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	err := store.RunInTransaction(ctx, s.db, func(ctx context.Context, tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`UPDATE question SET is_deleted = TRUE WHERE id = $1 AND is_deleted = FALSE`, id)
		if err != nil {
			return store.NewStoreError("question", "delete", "exec failed", err)
		}

		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return store.NewStoreError("question", "delete", "rows affected unavailable", err)
		}
		if rowsAffected == 0 {
			return store.ErrQuestionNotFound
		}

		if _, err := tx.ExecContext(ctx,
			`UPDATE reply SET is_deleted = TRUE WHERE question_id = $1`, id); err != nil {
			return store.NewStoreError("reply", "delete", "cascade exec failed", err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, store.ErrQuestionNotFound) {
			log.Error("failed to delete question",
				slog.String("error", err.Error()),
				slog.Int64("question_id", id))
		}
		return err
	}

	log.Info("question deleted with replies", slog.Int64("question_id", id))
	return nil
}

// DeleteAll implements store.QuestionStore.DeleteAll
func (s *QuestionStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM question`); err != nil {
		log.Error("failed to delete all questions", slog.String("error", err.Error()))
		return store.NewStoreError("question", "delete_all", "exec failed", err)
	}
	return nil
}
