package service

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/readylabs/aiready-backend/internal/catalog"
	"github.com/readylabs/aiready-backend/internal/model"
	"github.com/readylabs/aiready-backend/internal/store"
)

func newTestService(t *testing.T) (*SessionService, *store.Memory) {
	t.Helper()

	st := store.NewMemory(1800)
	cat := catalog.New([]model.Question{
		{ID: 1, Category: "A", CorrectAnswer: "X", Order: 0},
		{ID: 2, Category: "A", CorrectAnswer: "", Order: 1},
	})

	svc := NewSessionService(st, cat, false, zerolog.Nop())
	t.Cleanup(svc.Close)
	return svc, st
}

func TestSubmitScoresAndCompletes(t *testing.T) {
	svc, st := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, session.ID, model.SessionPatch{
		Answers: map[string]string{"1": "X", "2": "anything"},
	})
	require.NoError(t, err)

	result, err := svc.Submit(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, session.ID, result.SessionID)
	assert.Equal(t, 2, result.TotalQuestions)
	assert.Equal(t, 1, result.CorrectAnswers)
	assert.Equal(t, 50, result.OverallScore)
	assert.Equal(t, model.CategoryTally{Correct: 1, Total: 2}, result.CategoryBreakdown["A"])
	assert.False(t, result.CompletedAt.IsZero())

	// The session carries the same final state.
	completed, err := st.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)
	require.NotNil(t, completed.Score)
	assert.Equal(t, 50, *completed.Score)
	require.NotNil(t, completed.EndTime)
}

func TestSubmitTwiceIsConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID)
	assert.ErrorIs(t, err, store.ErrSessionCompleted)

	// Exactly one result exists.
	results, err := svc.Results(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestUpdateAfterSubmitIsConflict(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID)
	require.NoError(t, err)

	_, err = svc.Update(ctx, session.ID, model.SessionPatch{
		Answers: map[string]string{"1": "X"},
	})
	assert.ErrorIs(t, err, store.ErrSessionCompleted)
}

func TestSubmitMissingSession(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.Submit(context.Background(), 404)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestResultIsIndependentSnapshot(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	result, err := svc.Submit(ctx, session.ID)
	require.NoError(t, err)

	result.CategoryBreakdown["A"] = model.CategoryTally{Correct: 99, Total: 99}

	stored, err := svc.Result(ctx, result.ID)
	require.NoError(t, err)
	assert.Equal(t, model.CategoryTally{Correct: 0, Total: 2}, stored.CategoryBreakdown["A"])
}

// newAutoSubmitService runs server-side countdowns at a few milliseconds
// per tick so expiry lands within the test deadline.
func newAutoSubmitService(t *testing.T, timeLimit int) (*SessionService, *store.Memory) {
	t.Helper()

	st := store.NewMemory(timeLimit)
	cat := catalog.New([]model.Question{
		{ID: 1, Category: "A", CorrectAnswer: "X", Order: 0},
	})

	svc := NewSessionService(st, cat, true, zerolog.Nop())
	svc.tick = 5 * time.Millisecond
	t.Cleanup(svc.Close)
	return svc, st
}

func waitForCompletion(t *testing.T, st *store.Memory, id int) *model.QuizSession {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		session, err := st.GetSession(context.Background(), id)
		require.NoError(t, err)
		if session.IsCompleted {
			return session
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("session never auto-submitted")
	return nil
}

func TestAutoSubmitOnExpiry(t *testing.T) {
	svc, st := newAutoSubmitService(t, 2)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Update(ctx, session.ID, model.SessionPatch{
		Answers: map[string]string{"1": "X"},
	})
	require.NoError(t, err)

	completed := waitForCompletion(t, st, session.ID)
	require.NotNil(t, completed.Score)
	assert.Equal(t, 100, *completed.Score)

	results, err := svc.Results(ctx, session.ID)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, 100, results[0].OverallScore)
}

func TestAutoSubmitResyncsFromTimeRemainingPatch(t *testing.T) {
	svc, st := newAutoSubmitService(t, 100000)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	// The client snapshot says almost no time is left; the server
	// countdown must adopt it instead of running out the original limit.
	_, err = svc.Update(ctx, session.ID, model.SessionPatch{
		TimeRemaining: intPtr(2),
	})
	require.NoError(t, err)

	waitForCompletion(t, st, session.ID)
}

func TestManualSubmitStopsCountdown(t *testing.T) {
	svc, st := newAutoSubmitService(t, 3)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	_, err = svc.Submit(ctx, session.ID)
	require.NoError(t, err)

	// Outlive the original countdown; the manual submit must remain the
	// only result.
	time.Sleep(100 * time.Millisecond)
	results, err := st.ListResultsForSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Len(t, results, 1)
}

func TestReleaseCountdownPreventsExpirySubmit(t *testing.T) {
	svc, st := newAutoSubmitService(t, 2)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	require.NoError(t, st.DeleteSession(ctx, session.ID))
	svc.ReleaseCountdown(session.ID)

	time.Sleep(100 * time.Millisecond)
	_, err = st.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	results, err := st.ListResultsForSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func intPtr(v int) *int { return &v }

func TestSubmitEmptyCatalog(t *testing.T) {
	st := store.NewMemory(1800)
	svc := NewSessionService(st, catalog.New(nil), false, zerolog.Nop())
	t.Cleanup(svc.Close)
	ctx := context.Background()

	session, err := svc.Create(ctx, nil)
	require.NoError(t, err)

	result, err := svc.Submit(ctx, session.ID)
	require.NoError(t, err)

	assert.Equal(t, 0, result.TotalQuestions)
	assert.Equal(t, 0, result.OverallScore)
}
