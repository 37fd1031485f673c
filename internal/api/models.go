package api

import "github.com/phrazzld/qna-api/internal/domain"

// UserResponse represents the response data for a user.
// The password is never serialized.
type UserResponse struct {
	ID      int64  `json:"id"`
	LoginID string `json:"user_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
}

// QuestionResponse represents the response data for a question.
type QuestionResponse struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Writer   string `json:"writer"`
	WriterID int64  `json:"writer_id"`
}

// ReplyResponse represents the response data for a reply.
type ReplyResponse struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Writer     string `json:"writer"`
	Content    string `json:"content"`
}

// CreatedResponse carries the identifier assigned to a newly created entity.
type CreatedResponse struct {
	ID int64 `json:"id"`
}

func userToResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:      u.ID,
		LoginID: u.LoginID,
		Name:    u.Name,
		Email:   u.Email,
	}
}

func usersToResponse(users []*domain.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, userToResponse(u))
	}
	return out
}

func questionToResponse(q *domain.Question) QuestionResponse {
	return QuestionResponse{
		ID:       q.ID,
		Title:    q.Title,
		Content:  q.Content,
		Writer:   q.Writer,
		WriterID: q.WriterID,
	}
}

func questionsToResponse(questions []*domain.Question) []QuestionResponse {
	out := make([]QuestionResponse, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionToResponse(q))
	}
	return out
}

func repliesToResponse(replies []*domain.Reply) []ReplyResponse {
	out := make([]ReplyResponse, 0, len(replies))
	for _, reply := range replies {
		out = append(out, ReplyResponse{
			ID:         reply.ID,
			QuestionID: reply.QuestionID,
			Writer:     reply.Writer,
			Content:    reply.Content,
		})
	}
	return out
}
