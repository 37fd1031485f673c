package domain

// Question represents a single board question with writer attribution.
// The zero ID means the question has not been persisted yet; once a store
// assigns an ID it never changes.
type Question struct {
	ID       int64  `json:"id"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Writer   string `json:"writer"`
	WriterID int64  `json:"writer_id"`
}

// NewQuestion creates an unpersisted Question with the given fields.
// Returns a validation error if any required field is empty.
func NewQuestion(title, content, writer string, writerID int64) (*Question, error) {
	q := &Question{
		Title:    title,
		Content:  content,
		Writer:   writer,
		WriterID: writerID,
	}

	if err := q.Validate(); err != nil {
		return nil, err
	}

	return q, nil
}

// Validate checks if the Question has valid data.
// Returns an error if any field fails validation.
func (q *Question) Validate() error {
	if q.Title == "" {
		return ErrEmptyTitle
	}
	if q.Content == "" {
		return ErrEmptyContent
	}
	if q.Writer == "" {
		return ErrEmptyWriter
	}
	return nil
}
