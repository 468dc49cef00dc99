package model

import (
	"time"
)

// QuizResult is the immutable scored outcome of one submitted session.
type QuizResult struct {
	ID                int                      `json:"id"`
	SessionID         int                      `json:"sessionId"`
	TotalQuestions    int                      `json:"totalQuestions"`
	CorrectAnswers    int                      `json:"correctAnswers"`
	OverallScore      int                      `json:"overallScore"`
	CategoryBreakdown map[string]CategoryTally `json:"categoryBreakdown"`
	CompletedAt       time.Time                `json:"completedAt"`
}

// Clone returns an independent deep copy of the result.
func (r *QuizResult) Clone() *QuizResult {
	cp := *r
	cp.CategoryBreakdown = make(map[string]CategoryTally, len(r.CategoryBreakdown))
	for k, v := range r.CategoryBreakdown {
		cp.CategoryBreakdown[k] = v
	}
	return &cp
}

// ExportDescriptor is the legacy placeholder body for result export,
// kept for clients that have not migrated to the PDF stream.
type ExportDescriptor struct {
	Message     string `json:"message"`
	DownloadURL string `json:"downloadUrl"`
}
