package sqlstore

import (
	"context"
	"log/slog"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/platform/logger"
	"github.com/phrazzld/qna-api/internal/store"
)

// ReplyStore implements the store.ReplyStore interface using a SQL database
// as the storage backend. It accepts a connection or transaction through the
// store.DBTX abstraction.
type ReplyStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReplyStore creates a SQL implementation of the ReplyStore interface.
func NewReplyStore(db store.DBTX, logger *slog.Logger) *ReplyStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &ReplyStore{
		db:     db,
		logger: logger.With(slog.String("component", "reply_store")),
	}
}

// Ensure ReplyStore implements store.ReplyStore
var _ store.ReplyStore = (*ReplyStore)(nil)

// Save implements store.ReplyStore.Save
func (s *ReplyStore) Save(ctx context.Context, questionID int64, writer, content string) (int64, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	reply, err := domain.NewReply(questionID, writer, content)
	if err != nil {
		log.Warn("reply validation failed during save",
			slog.String("error", err.Error()),
			slog.Int64("question_id", questionID))
		return 0, err
	}

	query := `
		INSERT INTO reply (question_id, writer, content)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	var id int64
	err = s.db.QueryRowContext(ctx, query, reply.QuestionID, reply.Writer, reply.Content).Scan(&id)
	if err != nil {
		log.Error("failed to save reply",
			slog.String("error", err.Error()),
			slog.Int64("question_id", questionID))
		return 0, store.NewStoreError("reply", "save", "failed to insert row", err)
	}

	return id, nil
}

// FindByQuestionID implements store.ReplyStore.FindByQuestionID
// Soft-deleted replies are excluded.
func (s *ReplyStore) FindByQuestionID(ctx context.Context, questionID int64) ([]*domain.Reply, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, question_id, writer, content
		FROM reply
		WHERE question_id = $1 AND is_deleted = FALSE
	`

	rows, err := s.db.QueryContext(ctx, query, questionID)
	if err != nil {
		log.Error("failed to query replies",
			slog.String("error", err.Error()),
			slog.Int64("question_id", questionID))
		return nil, store.NewStoreError("reply", "find_by_question_id", "query failed", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	replies := []*domain.Reply{}
	for rows.Next() {
		var reply domain.Reply
		if err := rows.Scan(&reply.ID, &reply.QuestionID, &reply.Writer, &reply.Content); err != nil {
			log.Error("failed to scan reply row", slog.String("error", err.Error()))
			return nil, store.NewStoreError("reply", "find_by_question_id", "row scan failed", err)
		}
		replies = append(replies, &reply)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows", slog.String("error", err.Error()))
		return nil, store.NewStoreError("reply", "find_by_question_id", "row iteration failed", err)
	}

	return replies, nil
}

// DeleteAll implements store.ReplyStore.DeleteAll
func (s *ReplyStore) DeleteAll(ctx context.Context) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if _, err := s.db.ExecContext(ctx, `DELETE FROM reply`); err != nil {
		log.Error("failed to delete all replies", slog.String("error", err.Error()))
		return store.NewStoreError("reply", "delete_all", "exec failed", err)
	}
	return nil
}
