package model

// QuestionType enumerates the supported question kinds.
type QuestionType string

const (
	// QuestionTypeText is an open-ended free-text question.
	QuestionTypeText QuestionType = "text"
	// QuestionTypeSingleChoice is a single-select multiple-choice question.
	QuestionTypeSingleChoice QuestionType = "multiple-choice"
	// QuestionTypeMultiChoice is a multi-select multiple-choice question.
	QuestionTypeMultiChoice QuestionType = "multiple-choice-multiple"
	// QuestionTypeUpload asks for a website URL or an uploaded document.
	QuestionTypeUpload QuestionType = "website-upload"
)

// Question represents a single assessment question. The catalog is
// immutable after load; Order is the stable sort key.
//
// JSON field names follow the wire format the quiz UI already consumes.
type Question struct {
	ID       int          `json:"id"`
	Category string       `json:"category"`
	Type     QuestionType `json:"type"`
	Question string       `json:"question"`
	Options  []string     `json:"options"`
	// CorrectAnswer is the canonical answer compared by exact string match.
	// Empty string means the question has no objective answer (open-ended
	// and upload types) and can never score correct.
	CorrectAnswer string `json:"correctAnswer"`
	Explanation   string `json:"explanation,omitempty"`
	Order         int    `json:"order"`
	// Upload constraints, only meaningful for QuestionTypeUpload.
	AllowedFileTypes []string `json:"allowedFileTypes,omitempty"`
	MaxFileSize      int64    `json:"maxFileSize,omitempty"`
}

// HasObjectiveAnswer reports whether the question can ever be scored
// correct.
func (q *Question) HasObjectiveAnswer() bool {
	return q.CorrectAnswer != ""
}
