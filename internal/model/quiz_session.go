package model

import (
	"time"
)

// CategoryTally counts correct answers against the number of questions in
// one category.
type CategoryTally struct {
	Correct int `json:"correct"`
	Total   int `json:"total"`
}

// QuizSession represents one user's attempt at the question sequence.
// Answers are keyed by the question id rendered as a decimal string; the
// value is the raw wire payload (see Answer for the decoded forms).
type QuizSession struct {
	ID                   int                      `json:"id"`
	UserID               *int                     `json:"userId"`
	StartTime            time.Time                `json:"startTime"`
	EndTime              *time.Time               `json:"endTime"`
	CurrentQuestionIndex int                      `json:"currentQuestionIndex"`
	TimeRemaining        int                      `json:"timeRemaining"`
	Answers              map[string]string        `json:"answers"`
	IsCompleted          bool                     `json:"isCompleted"`
	Score                *int                     `json:"score"`
	CategoryScores       map[string]CategoryTally `json:"categoryScores"`
}

// Clone returns an independent deep copy of the session. Stores hand out
// clones so callers can never mutate stored state through a live view.
func (s *QuizSession) Clone() *QuizSession {
	cp := *s
	if s.UserID != nil {
		v := *s.UserID
		cp.UserID = &v
	}
	if s.EndTime != nil {
		v := *s.EndTime
		cp.EndTime = &v
	}
	if s.Score != nil {
		v := *s.Score
		cp.Score = &v
	}
	cp.Answers = make(map[string]string, len(s.Answers))
	for k, v := range s.Answers {
		cp.Answers[k] = v
	}
	cp.CategoryScores = make(map[string]CategoryTally, len(s.CategoryScores))
	for k, v := range s.CategoryScores {
		cp.CategoryScores[k] = v
	}
	return &cp
}

// CreateSessionRequest is the payload for creating a new quiz session.
type CreateSessionRequest struct {
	UserID *int `json:"userId" binding:"omitempty,min=1"`
}

// SessionPatch carries the partial fields a PATCH may update. Nil pointers
// mean "leave unchanged"; Answers replaces the stored map wholesale,
// matching the client sending its full accumulated snapshot each autosave.
type SessionPatch struct {
	CurrentQuestionIndex *int              `json:"currentQuestionIndex" binding:"omitempty,min=0"`
	TimeRemaining        *int              `json:"timeRemaining" binding:"omitempty,min=0"`
	Answers              map[string]string `json:"answers" binding:"omitempty"`
	EndTime              *time.Time        `json:"endTime" binding:"omitempty"`
}
