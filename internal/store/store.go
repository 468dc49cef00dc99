// Package store provides session and result storage behind a single
// interface. Implementations carry very different durability: the memory
// store is process-lifetime only and is reset on every restart, the
// Postgres store survives restarts, and the cached store layers Redis
// reads over either. Callers that need durability must pick a backend
// accordingly.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/readylabs/aiready-backend/internal/model"
)

var (
	// ErrNotFound signals a session or result id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrSessionCompleted signals a mutation attempt on a completed
	// session. A submitted session's answers must not silently change.
	ErrSessionCompleted = errors.New("session already completed")
)

// Store is the session/result storage contract. Implementations must
// serialize read-modify-write access per session id so concurrent autosave
// and submit requests cannot lose updates, and must hand out independent
// copies, never live views of stored state.
type Store interface {
	// CreateSession allocates a new session with defaults: start time now,
	// question index 0, the configured time limit, empty answers, not
	// completed.
	CreateSession(ctx context.Context, userID *int) (*model.QuizSession, error)

	// GetSession returns the session or ErrNotFound.
	GetSession(ctx context.Context, id int) (*model.QuizSession, error)

	// UpdateSession shallow-merges the patch into the session. The answers
	// map replaces the stored one wholesale. Completed sessions reject the
	// update with ErrSessionCompleted.
	UpdateSession(ctx context.Context, id int, patch model.SessionPatch) (*model.QuizSession, error)

	// CompleteSession transitions the session to completed, recording end
	// time, score and category breakdown. Already-completed sessions
	// return ErrSessionCompleted.
	CompleteSession(ctx context.Context, id int, score int, categoryScores map[string]model.CategoryTally) (*model.QuizSession, error)

	// DeleteSession removes the session and its results.
	DeleteSession(ctx context.Context, id int) error

	// ListExpiredSessions returns ids of uncompleted sessions started
	// before the given cutoff, for the TTL sweep.
	ListExpiredSessions(ctx context.Context, olderThan time.Time) ([]int, error)

	// CreateResult persists a result snapshot, assigning its id and
	// completion timestamp.
	CreateResult(ctx context.Context, result *model.QuizResult) (*model.QuizResult, error)

	// GetResult returns the result or ErrNotFound.
	GetResult(ctx context.Context, id int) (*model.QuizResult, error)

	// ListResultsForSession returns all results recorded for a session,
	// oldest first. Normally zero or one.
	ListResultsForSession(ctx context.Context, sessionID int) ([]model.QuizResult, error)
}

// applyPatch merges non-nil patch fields into the session in place.
func applyPatch(s *model.QuizSession, patch model.SessionPatch) {
	if patch.CurrentQuestionIndex != nil {
		s.CurrentQuestionIndex = *patch.CurrentQuestionIndex
	}
	if patch.TimeRemaining != nil {
		s.TimeRemaining = *patch.TimeRemaining
	}
	if patch.Answers != nil {
		answers := make(map[string]string, len(patch.Answers))
		for k, v := range patch.Answers {
			answers[k] = v
		}
		s.Answers = answers
	}
	if patch.EndTime != nil {
		t := *patch.EndTime
		s.EndTime = &t
	}
}
