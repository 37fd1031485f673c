package memstore

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/platform/logger"
	"github.com/phrazzld/qna-api/internal/store"
)

// QuestionStore implements store.QuestionStore with an in-process map.
// Identifier assignment uses an atomic counter, so concurrent savers always
// receive distinct, increasing IDs.
type QuestionStore struct {
	logger  *slog.Logger
	replies *ReplyStore

	seq atomic.Int64

	mu        sync.RWMutex
	questions map[int64]*domain.Question
	order     []int64
}

// NewQuestionStore creates an empty in-memory question store. Replies held by
// the given ReplyStore are cascaded when a question is deleted; replies may be
// nil when the caller has no reply storage. If logger is nil, the default
// logger is used.
func NewQuestionStore(replies *ReplyStore, logger *slog.Logger) *QuestionStore {
	if logger == nil {
		logger = slog.Default()
	}

	return &QuestionStore{
		logger:    logger.With(slog.String("component", "question_store")),
		replies:   replies,
		questions: make(map[int64]*domain.Question),
	}
}

// Ensure QuestionStore implements store.QuestionStore
var _ store.QuestionStore = (*QuestionStore)(nil)

// Save implements store.QuestionStore.Save
func (s *QuestionStore) Save(ctx context.Context, title, content, writer string, writerID int64) (int64, error) {
	question, err := domain.NewQuestion(title, content, writer, writerID)
	if err != nil {
		return 0, err
	}

	id := s.seq.Add(1)
	question.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions[id] = question
	s.order = append(s.order, id)

	return id, nil
}

// FindAll implements store.QuestionStore.FindAll
// Questions are returned in insertion order.
func (s *QuestionStore) FindAll(ctx context.Context) ([]*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	questions := []*domain.Question{}
	for _, id := range s.order {
		question, ok := s.questions[id]
		if !ok {
			// Deleted; the order slice keeps its slot.
			continue
		}
		cp := *question
		questions = append(questions, &cp)
	}

	return questions, nil
}

// FindByID implements store.QuestionStore.FindByID
func (s *QuestionStore) FindByID(ctx context.Context, id int64) (*domain.Question, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	question, ok := s.questions[id]
	if !ok {
		return nil, store.ErrQuestionNotFound
	}

	cp := *question
	return &cp, nil
}

// Update implements store.QuestionStore.Update
// Only the title and content are replaced; the writer fields stay as saved.
func (s *QuestionStore) Update(ctx context.Context, target *domain.Question) error {
	if err := target.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.questions[target.ID]
	if !ok {
		return store.ErrQuestionNotFound
	}

	existing.Title = target.Title
	existing.Content = target.Content
	return nil
}

// DeleteByID implements store.QuestionStore.DeleteByID
// The question and its replies are removed together while the question lock
// is held, so no reader observes the question gone but its replies present.
func (s *QuestionStore) DeleteByID(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.questions[id]; !ok {
		return store.ErrQuestionNotFound
	}
	delete(s.questions, id)

	if s.replies != nil {
		s.replies.deleteByQuestionID(id)
	}

	log := logger.FromContextOrDefault(ctx, s.logger)
	log.Debug("question deleted", slog.Int64("question_id", id))
	return nil
}

// DeleteAll implements store.QuestionStore.DeleteAll
func (s *QuestionStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions = make(map[int64]*domain.Question)
	s.order = nil
	return nil
}
