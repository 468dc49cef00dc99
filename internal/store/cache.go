package store

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/readylabs/aiready-backend/internal/config"
	"github.com/readylabs/aiready-backend/internal/model"
)

// Cached layers a Redis read-through cache over another Store. Session
// reads hit Redis first and fall back to the underlying store on a miss,
// self-healing the cache entry; writes go through to the underlying store
// and refresh the snapshot. A broken Redis never fails a request; every
// cache error degrades to the underlying store with a log line.
type Cached struct {
	inner Store
	rdb   *redis.Client
	ttl   time.Duration
	log   zerolog.Logger
}

// NewCached wraps inner with a Redis cache. ttl bounds how long snapshots
// may outlive their session server-side.
func NewCached(inner Store, rdb *redis.Client, ttl time.Duration, log zerolog.Logger) *Cached {
	return &Cached{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		log:   log.With().Str("component", "session_cache").Logger(),
	}
}

func (c *Cached) CreateSession(ctx context.Context, userID *int) (*model.QuizSession, error) {
	session, err := c.inner.CreateSession(ctx, userID)
	if err != nil {
		return nil, err
	}
	c.setSession(ctx, session)
	return session, nil
}

func (c *Cached) GetSession(ctx context.Context, id int) (*model.QuizSession, error) {
	key := config.CacheKey.SessionKey(id)
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var session model.QuizSession
		if jsonErr := json.Unmarshal([]byte(raw), &session); jsonErr == nil {
			return &session, nil
		}
		// Corrupt entry. Drop it and fall back.
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Int("session_id", id).Msg("cache read failed")
	}

	session, err := c.inner.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	// Self-heal so the next read is fast.
	c.setSession(ctx, session)
	return session, nil
}

func (c *Cached) UpdateSession(ctx context.Context, id int, patch model.SessionPatch) (*model.QuizSession, error) {
	session, err := c.inner.UpdateSession(ctx, id, patch)
	if err != nil {
		return nil, err
	}
	c.setSession(ctx, session)
	return session, nil
}

func (c *Cached) CompleteSession(ctx context.Context, id int, score int, categoryScores map[string]model.CategoryTally) (*model.QuizSession, error) {
	session, err := c.inner.CompleteSession(ctx, id, score, categoryScores)
	if err != nil {
		return nil, err
	}
	c.setSession(ctx, session)
	return session, nil
}

func (c *Cached) DeleteSession(ctx context.Context, id int) error {
	if err := c.inner.DeleteSession(ctx, id); err != nil {
		return err
	}
	if err := c.rdb.Del(ctx,
		config.CacheKey.SessionKey(id),
		config.CacheKey.SessionResultsKey(id),
	).Err(); err != nil {
		c.log.Warn().Err(err).Int("session_id", id).Msg("cache invalidation failed")
	}
	return nil
}

func (c *Cached) ListExpiredSessions(ctx context.Context, olderThan time.Time) ([]int, error) {
	return c.inner.ListExpiredSessions(ctx, olderThan)
}

func (c *Cached) CreateResult(ctx context.Context, result *model.QuizResult) (*model.QuizResult, error) {
	created, err := c.inner.CreateResult(ctx, result)
	if err != nil {
		return nil, err
	}
	// Invalidate the session's result list rather than appending to it.
	if err := c.rdb.Del(ctx, config.CacheKey.SessionResultsKey(created.SessionID)).Err(); err != nil {
		c.log.Warn().Err(err).Int("session_id", created.SessionID).Msg("cache invalidation failed")
	}
	return created, nil
}

func (c *Cached) GetResult(ctx context.Context, id int) (*model.QuizResult, error) {
	return c.inner.GetResult(ctx, id)
}

func (c *Cached) ListResultsForSession(ctx context.Context, sessionID int) ([]model.QuizResult, error) {
	key := config.CacheKey.SessionResultsKey(sessionID)
	raw, err := c.rdb.Get(ctx, key).Result()
	if err == nil {
		var results []model.QuizResult
		if jsonErr := json.Unmarshal([]byte(raw), &results); jsonErr == nil {
			return results, nil
		}
		c.rdb.Del(ctx, key)
	} else if !errors.Is(err, redis.Nil) {
		c.log.Warn().Err(err).Int("session_id", sessionID).Msg("cache read failed")
	}

	results, err := c.inner.ListResultsForSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if raw, jsonErr := json.Marshal(results); jsonErr == nil {
		if err := c.rdb.Set(ctx, key, raw, c.ttl).Err(); err != nil {
			c.log.Warn().Err(err).Int("session_id", sessionID).Msg("cache write failed")
		}
	}
	return results, nil
}

func (c *Cached) setSession(ctx context.Context, session *model.QuizSession) {
	raw, err := json.Marshal(session)
	if err != nil {
		return
	}
	if err := c.rdb.Set(ctx, config.CacheKey.SessionKey(session.ID), raw, c.ttl).Err(); err != nil {
		c.log.Warn().Err(err).Int("session_id", session.ID).Msg("cache write failed")
	}
}
