package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readylabs/aiready-backend/internal/model"
)

func TestCreateSessionDefaults(t *testing.T) {
	m := NewMemory(1800)

	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	assert.Equal(t, 1, session.ID)
	assert.Nil(t, session.UserID)
	assert.Equal(t, 0, session.CurrentQuestionIndex)
	assert.Equal(t, 1800, session.TimeRemaining)
	assert.Equal(t, map[string]string{}, session.Answers)
	assert.False(t, session.IsCompleted)
	assert.Nil(t, session.Score)
	assert.Nil(t, session.EndTime)
	assert.False(t, session.StartTime.IsZero())

	second, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 2, second.ID)
}

func TestCreateSessionWithOwner(t *testing.T) {
	m := NewMemory(1800)
	userID := 42

	session, err := m.CreateSession(context.Background(), &userID)
	require.NoError(t, err)
	require.NotNil(t, session.UserID)
	assert.Equal(t, 42, *session.UserID)
}

func TestGetSessionNotFound(t *testing.T) {
	m := NewMemory(1800)

	_, err := m.GetSession(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateSessionReplacesAnswersWholesale(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	_, err = m.UpdateSession(context.Background(), session.ID, model.SessionPatch{
		Answers: map[string]string{"1": "X"},
	})
	require.NoError(t, err)

	updated, err := m.UpdateSession(context.Background(), session.ID, model.SessionPatch{
		Answers: map[string]string{"2": "Y"},
	})
	require.NoError(t, err)

	// Not a deep merge: the new snapshot replaces the old map entirely.
	assert.Equal(t, map[string]string{"2": "Y"}, updated.Answers)
}

func TestUpdateSessionIsIdempotent(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	idx := 3
	remaining := 1500
	patch := model.SessionPatch{
		CurrentQuestionIndex: &idx,
		TimeRemaining:        &remaining,
		Answers:              map[string]string{"1": "X"},
	}

	once, err := m.UpdateSession(context.Background(), session.ID, patch)
	require.NoError(t, err)
	twice, err := m.UpdateSession(context.Background(), session.ID, patch)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
}

func TestUpdateSessionLeavesUnpatchedFields(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	idx := 5
	updated, err := m.UpdateSession(context.Background(), session.ID, model.SessionPatch{
		CurrentQuestionIndex: &idx,
	})
	require.NoError(t, err)

	assert.Equal(t, 5, updated.CurrentQuestionIndex)
	assert.Equal(t, 1800, updated.TimeRemaining)
	assert.Equal(t, map[string]string{}, updated.Answers)
}

func TestUpdateSessionNotFound(t *testing.T) {
	m := NewMemory(1800)

	_, err := m.UpdateSession(context.Background(), 7, model.SessionPatch{})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateCompletedSessionRejected(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	_, err = m.CompleteSession(context.Background(), session.ID, 80, map[string]model.CategoryTally{
		"A": {Correct: 4, Total: 5},
	})
	require.NoError(t, err)

	_, err = m.UpdateSession(context.Background(), session.ID, model.SessionPatch{
		Answers: map[string]string{"1": "tampered"},
	})
	assert.ErrorIs(t, err, ErrSessionCompleted)

	// The stored answers did not silently change.
	stored, err := m.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Answers)
}

func TestCompleteSessionSetsFinalState(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	completed, err := m.CompleteSession(context.Background(), session.ID, 50, map[string]model.CategoryTally{
		"A": {Correct: 1, Total: 2},
	})
	require.NoError(t, err)

	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.Score)
	assert.Equal(t, 50, *completed.Score)
	require.NotNil(t, completed.EndTime)
	assert.Equal(t, model.CategoryTally{Correct: 1, Total: 2}, completed.CategoryScores["A"])

	_, err = m.CompleteSession(context.Background(), session.ID, 50, nil)
	assert.ErrorIs(t, err, ErrSessionCompleted)
}

func TestSessionsAreHandedOutAsCopies(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	session.Answers["1"] = "mutated through the returned value"

	stored, err := m.GetSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.Answers)
}

func TestResultRoundTrip(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	created, err := m.CreateResult(context.Background(), &model.QuizResult{
		SessionID:         session.ID,
		TotalQuestions:    2,
		CorrectAnswers:    1,
		OverallScore:      50,
		CategoryBreakdown: map[string]model.CategoryTally{"A": {Correct: 1, Total: 2}},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
	assert.False(t, created.CompletedAt.IsZero())

	results, err := m.ListResultsForSession(context.Background(), session.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, created.ID, results[0].ID)
	assert.Equal(t, 50, results[0].OverallScore)

	fetched, err := m.GetResult(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, fetched.ID)

	_, err = m.GetResult(context.Background(), 99)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListResultsForUnknownSessionIsEmpty(t *testing.T) {
	m := NewMemory(1800)

	results, err := m.ListResultsForSession(context.Background(), 12345)
	require.NoError(t, err)
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestListExpiredSessions(t *testing.T) {
	m := NewMemory(1800)
	first, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)
	second, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	// Completed sessions are never expired.
	_, err = m.CompleteSession(context.Background(), second.ID, 0, nil)
	require.NoError(t, err)

	cutoff := first.StartTime.Add(time.Hour)
	ids, err := m.ListExpiredSessions(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, []int{first.ID}, ids)
}

func TestDeleteSessionRemovesResults(t *testing.T) {
	m := NewMemory(1800)
	session, err := m.CreateSession(context.Background(), nil)
	require.NoError(t, err)

	_, err = m.CreateResult(context.Background(), &model.QuizResult{SessionID: session.ID})
	require.NoError(t, err)

	require.NoError(t, m.DeleteSession(context.Background(), session.ID))

	_, err = m.GetSession(context.Background(), session.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	results, err := m.ListResultsForSession(context.Background(), session.ID)
	require.NoError(t, err)
	assert.Empty(t, results)

	assert.ErrorIs(t, m.DeleteSession(context.Background(), session.ID), ErrNotFound)
}
