package worker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/readylabs/aiready-backend/internal/store"
)

// Sweeper periodically deletes abandoned sessions: uncompleted attempts
// whose start time is older than the TTL. Completed sessions and their
// results are never touched.
type Sweeper struct {
	store    store.Store
	ttl      time.Duration
	interval time.Duration
	log      zerolog.Logger

	// onDelete, when set, is invoked with the id of every swept session.
	// The server wires it to the session service so a deleted session's
	// countdown is released alongside its row.
	onDelete func(sessionID int)
}

// NewSweeper creates a Sweeper.
func NewSweeper(st store.Store, ttl, interval time.Duration, log zerolog.Logger) *Sweeper {
	return &Sweeper{
		store:    st,
		ttl:      ttl,
		interval: interval,
		log:      log.With().Str("component", "session_sweeper").Logger(),
	}
}

// OnDelete registers a hook called after each successful delete. Register
// before Start.
func (w *Sweeper) OnDelete(fn func(sessionID int)) {
	w.onDelete = fn
}

// Start begins the sweep loop. Call in a goroutine; it exits when ctx is
// cancelled.
func (w *Sweeper) Start(ctx context.Context) {
	w.log.Info().
		Dur("ttl", w.ttl).
		Dur("interval", w.interval).
		Msg("Sweeper started")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.log.Info().Msg("Sweeper stopped")
			return
		case <-ticker.C:
			w.Sweep(ctx)
		}
	}
}

// Sweep runs one pass, deleting every expired session. Individual delete
// failures are logged and skipped so one bad row cannot stall the sweep.
func (w *Sweeper) Sweep(ctx context.Context) int {
	cutoff := time.Now().Add(-w.ttl)

	ids, err := w.store.ListExpiredSessions(ctx, cutoff)
	if err != nil {
		w.log.Error().Err(err).Msg("list expired sessions failed")
		return 0
	}

	swept := 0
	for _, id := range ids {
		if err := w.store.DeleteSession(ctx, id); err != nil {
			// Already gone is fine; a concurrent submit may have won.
			if !errors.Is(err, store.ErrNotFound) {
				w.log.Error().Err(err).Int("session_id", id).Msg("delete expired session failed")
			}
			continue
		}
		if w.onDelete != nil {
			w.onDelete(id)
		}
		swept++
	}

	if swept > 0 {
		w.log.Info().Int("count", swept).Msg("Swept expired sessions")
	}
	return swept
}
