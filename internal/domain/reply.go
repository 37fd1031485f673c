package domain

// Reply is a comment attached to a question. Replies share the question's
// soft-delete lifecycle: deleting a question marks its replies deleted in the
// same atomic unit.
type Reply struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	Writer     string `json:"writer"`
	Content    string `json:"content"`
}

// NewReply creates an unpersisted Reply for the given question.
func NewReply(questionID int64, writer, content string) (*Reply, error) {
	r := &Reply{
		QuestionID: questionID,
		Writer:     writer,
		Content:    content,
	}

	if err := r.Validate(); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate checks if the Reply has valid data.
func (r *Reply) Validate() error {
	if r.QuestionID <= 0 {
		return ErrInvalidID
	}
	if r.Writer == "" {
		return ErrEmptyWriter
	}
	if r.Content == "" {
		return ErrEmptyContent
	}
	return nil
}
