package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/readylabs/aiready-backend/internal/catalog"
	"github.com/readylabs/aiready-backend/internal/model"
	"github.com/readylabs/aiready-backend/internal/store"
	"github.com/readylabs/aiready-backend/internal/timer"
)

// SessionService drives the quiz session lifecycle: create, incremental
// patch, and submission with scoring. The store and catalog are injected
// so tests can run against isolated instances.
type SessionService struct {
	store   store.Store
	catalog *catalog.Catalog
	log     zerolog.Logger

	// autoSubmit enables server-side countdowns that force-submit a
	// session when its time runs out. Off by default: the client owns the
	// timer and the server only snapshots timeRemaining.
	autoSubmit bool

	// tick is the countdown resolution, one second in production. Tests
	// shrink it so expiry happens within the test deadline.
	tick time.Duration

	mu         sync.Mutex
	countdowns map[int]*timer.Countdown
}

// NewSessionService creates a SessionService.
func NewSessionService(st store.Store, cat *catalog.Catalog, autoSubmit bool, log zerolog.Logger) *SessionService {
	return &SessionService{
		store:      st,
		catalog:    cat,
		log:        log.With().Str("component", "session_service").Logger(),
		autoSubmit: autoSubmit,
		tick:       time.Second,
		countdowns: make(map[int]*timer.Countdown),
	}
}

// Create starts a new quiz session for an optional owning user.
func (s *SessionService) Create(ctx context.Context, userID *int) (*model.QuizSession, error) {
	session, err := s.store.CreateSession(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	if s.autoSubmit {
		s.startCountdown(session.ID, session.TimeRemaining)
	}

	s.log.Debug().Int("session_id", session.ID).Msg("session created")
	return session, nil
}

// Get returns a session by id.
func (s *SessionService) Get(ctx context.Context, id int) (*model.QuizSession, error) {
	return s.store.GetSession(ctx, id)
}

// Update applies a partial patch to a session. Repeated identical patches
// are idempotent and out-of-order autosave snapshots resolve as
// last-write-wins; completed sessions reject the patch.
func (s *SessionService) Update(ctx context.Context, id int, patch model.SessionPatch) (*model.QuizSession, error) {
	session, err := s.store.UpdateSession(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	// A fresh timeRemaining snapshot resyncs the server-side countdown.
	if s.autoSubmit && patch.TimeRemaining != nil {
		s.resetCountdown(id, *patch.TimeRemaining)
	}

	return session, nil
}

// Submit scores the session against the full catalog, marks it completed
// and persists an independent result snapshot. Submitting a session twice
// is a conflict (store.ErrSessionCompleted).
func (s *SessionService) Submit(ctx context.Context, id int) (*model.QuizResult, error) {
	session, err := s.store.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	if session.IsCompleted {
		return nil, store.ErrSessionCompleted
	}

	outcome := Score(session, s.catalog.ListAll())

	if _, err := s.store.CompleteSession(ctx, id, outcome.OverallScore, outcome.CategoryScores); err != nil {
		return nil, err
	}

	result, err := s.store.CreateResult(ctx, &model.QuizResult{
		SessionID:         id,
		TotalQuestions:    outcome.TotalQuestions,
		CorrectAnswers:    outcome.CorrectAnswers,
		OverallScore:      outcome.OverallScore,
		CategoryBreakdown: outcome.CategoryScores,
	})
	if err != nil {
		return nil, fmt.Errorf("persist result: %w", err)
	}

	s.stopCountdown(id)

	s.log.Info().
		Int("session_id", id).
		Int("score", outcome.OverallScore).
		Int("correct", outcome.CorrectAnswers).
		Int("total", outcome.TotalQuestions).
		Msg("session submitted")

	return result, nil
}

// Result returns a single result by id.
func (s *SessionService) Result(ctx context.Context, id int) (*model.QuizResult, error) {
	return s.store.GetResult(ctx, id)
}

// Results returns every result recorded for a session, oldest first.
func (s *SessionService) Results(ctx context.Context, sessionID int) ([]model.QuizResult, error) {
	return s.store.ListResultsForSession(ctx, sessionID)
}

// ReleaseCountdown stops and forgets the server-side countdown for a
// session, if one is running. The sweeper calls this after deleting an
// abandoned session so the countdown goroutine does not run on to expiry
// and attempt a submit against a row that no longer exists.
func (s *SessionService) ReleaseCountdown(sessionID int) {
	s.stopCountdown(sessionID)
}

// Close stops any running countdowns. Call on shutdown.
func (s *SessionService) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, cd := range s.countdowns {
		cd.Stop()
		delete(s.countdowns, id)
	}
}

func (s *SessionService) startCountdown(sessionID, seconds int) {
	cd := timer.NewTicking(seconds, s.tick, func() {
		// Countdown hit zero: force-submit with a fresh context, the
		// originating request is long gone.
		if _, err := s.Submit(context.Background(), sessionID); err != nil {
			s.log.Warn().Err(err).Int("session_id", sessionID).Msg("auto-submit failed")
		}
	})

	s.mu.Lock()
	if old, ok := s.countdowns[sessionID]; ok {
		old.Stop()
	}
	s.countdowns[sessionID] = cd
	s.mu.Unlock()

	cd.Start()
}

func (s *SessionService) resetCountdown(sessionID, seconds int) {
	s.mu.Lock()
	cd, ok := s.countdowns[sessionID]
	s.mu.Unlock()

	if ok {
		cd.Reset(seconds)
	} else {
		s.startCountdown(sessionID, seconds)
	}
}

func (s *SessionService) stopCountdown(sessionID int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cd, ok := s.countdowns[sessionID]; ok {
		cd.Stop()
		delete(s.countdowns, sessionID)
	}
}
