package store

import (
	"context"
	"sync"
	"time"

	"github.com/readylabs/aiready-backend/internal/model"
)

// Memory is the in-memory Store: maps guarded by a mutex, with
// incrementing counters for id allocation. State lives for the process
// lifetime only. Construct one per test or per process; there is no
// package-level singleton.
type Memory struct {
	mu sync.Mutex

	sessions map[int]*model.QuizSession
	results  map[int]*model.QuizResult

	nextSessionID int
	nextResultID  int

	defaultTimeLimit int
}

// NewMemory creates an empty memory store. defaultTimeLimit is the initial
// timeRemaining, in seconds, for new sessions.
func NewMemory(defaultTimeLimit int) *Memory {
	return &Memory{
		sessions:         make(map[int]*model.QuizSession),
		results:          make(map[int]*model.QuizResult),
		nextSessionID:    1,
		nextResultID:     1,
		defaultTimeLimit: defaultTimeLimit,
	}
}

func (m *Memory) CreateSession(ctx context.Context, userID *int) (*model.QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session := &model.QuizSession{
		ID:                   m.nextSessionID,
		StartTime:            time.Now(),
		CurrentQuestionIndex: 0,
		TimeRemaining:        m.defaultTimeLimit,
		Answers:              map[string]string{},
		IsCompleted:          false,
		CategoryScores:       map[string]model.CategoryTally{},
	}
	if userID != nil {
		v := *userID
		session.UserID = &v
	}
	m.nextSessionID++
	m.sessions[session.ID] = session

	return session.Clone(), nil
}

func (m *Memory) GetSession(ctx context.Context, id int) (*model.QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	return session.Clone(), nil
}

func (m *Memory) UpdateSession(ctx context.Context, id int, patch model.SessionPatch) (*model.QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if session.IsCompleted {
		return nil, ErrSessionCompleted
	}

	applyPatch(session, patch)
	return session.Clone(), nil
}

func (m *Memory) CompleteSession(ctx context.Context, id int, score int, categoryScores map[string]model.CategoryTally) (*model.QuizSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	if session.IsCompleted {
		return nil, ErrSessionCompleted
	}

	now := time.Now()
	session.IsCompleted = true
	session.EndTime = &now
	session.Score = &score
	session.CategoryScores = make(map[string]model.CategoryTally, len(categoryScores))
	for k, v := range categoryScores {
		session.CategoryScores[k] = v
	}

	return session.Clone(), nil
}

func (m *Memory) DeleteSession(ctx context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.sessions[id]; !ok {
		return ErrNotFound
	}
	delete(m.sessions, id)
	for rid, r := range m.results {
		if r.SessionID == id {
			delete(m.results, rid)
		}
	}
	return nil
}

func (m *Memory) ListExpiredSessions(ctx context.Context, olderThan time.Time) ([]int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var ids []int
	for id, s := range m.sessions {
		if !s.IsCompleted && s.StartTime.Before(olderThan) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *Memory) CreateResult(ctx context.Context, result *model.QuizResult) (*model.QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := result.Clone()
	stored.ID = m.nextResultID
	stored.CompletedAt = time.Now()
	m.nextResultID++
	m.results[stored.ID] = stored

	return stored.Clone(), nil
}

func (m *Memory) GetResult(ctx context.Context, id int) (*model.QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result, ok := m.results[id]
	if !ok {
		return nil, ErrNotFound
	}
	return result.Clone(), nil
}

func (m *Memory) ListResultsForSession(ctx context.Context, sessionID int) ([]model.QuizResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	results := []model.QuizResult{}
	// Result ids increment monotonically, so ascending id is creation order.
	for id := 1; id < m.nextResultID; id++ {
		if r, ok := m.results[id]; ok && r.SessionID == sessionID {
			results = append(results, *r.Clone())
		}
	}
	return results, nil
}
