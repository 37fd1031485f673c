package memstore

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/phrazzld/qna-api/internal/domain"
	"github.com/phrazzld/qna-api/internal/store"
)

// ReplyStore implements store.ReplyStore with an in-process map.
type ReplyStore struct {
	seq atomic.Int64

	mu      sync.RWMutex
	replies map[int64]*domain.Reply
	order   []int64
}

// NewReplyStore creates an empty in-memory reply store.
func NewReplyStore() *ReplyStore {
	return &ReplyStore{
		replies: make(map[int64]*domain.Reply),
	}
}

// Ensure ReplyStore implements store.ReplyStore
var _ store.ReplyStore = (*ReplyStore)(nil)

// Save implements store.ReplyStore.Save
func (s *ReplyStore) Save(ctx context.Context, questionID int64, writer, content string) (int64, error) {
	reply, err := domain.NewReply(questionID, writer, content)
	if err != nil {
		return 0, err
	}

	id := s.seq.Add(1)
	reply.ID = id

	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[id] = reply
	s.order = append(s.order, id)

	return id, nil
}

// FindByQuestionID implements store.ReplyStore.FindByQuestionID
func (s *ReplyStore) FindByQuestionID(ctx context.Context, questionID int64) ([]*domain.Reply, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	replies := []*domain.Reply{}
	for _, id := range s.order {
		reply, ok := s.replies[id]
		if !ok || reply.QuestionID != questionID {
			continue
		}
		cp := *reply
		replies = append(replies, &cp)
	}

	return replies, nil
}

// DeleteAll implements store.ReplyStore.DeleteAll
func (s *ReplyStore) DeleteAll(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies = make(map[int64]*domain.Reply)
	s.order = nil
	return nil
}

// deleteByQuestionID removes every reply attached to the given question.
// Called by QuestionStore.DeleteByID to cascade a question delete.
func (s *ReplyStore) deleteByQuestionID(questionID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, reply := range s.replies {
		if reply.QuestionID == questionID {
			delete(s.replies, id)
		}
	}
}
