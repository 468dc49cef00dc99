package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/readylabs/aiready-backend/internal/model"
)

const sessionColumns = `id, user_id, start_time, end_time, current_question_index,
	time_remaining, answers, is_completed, score, category_scores`

const resultColumns = `id, session_id, total_questions, correct_answers,
	overall_score, category_breakdown, completed_at`

// Postgres is the pgx-backed Store. Unlike the memory store it survives
// restarts and surfaces I/O errors to callers; per-session serialization
// comes from single-statement updates.
type Postgres struct {
	pool             *pgxpool.Pool
	defaultTimeLimit int
}

// NewPostgres creates a Postgres store on the given pool.
func NewPostgres(pool *pgxpool.Pool, defaultTimeLimit int) *Postgres {
	return &Postgres{pool: pool, defaultTimeLimit: defaultTimeLimit}
}

func (p *Postgres) CreateSession(ctx context.Context, userID *int) (*model.QuizSession, error) {
	session := &model.QuizSession{
		Answers:        map[string]string{},
		CategoryScores: map[string]model.CategoryTally{},
		TimeRemaining:  p.defaultTimeLimit,
	}
	err := p.pool.QueryRow(ctx,
		`INSERT INTO quiz_sessions (user_id, time_remaining)
		 VALUES ($1, $2)
		 RETURNING id, start_time`,
		userID, p.defaultTimeLimit,
	).Scan(&session.ID, &session.StartTime)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}
	if userID != nil {
		v := *userID
		session.UserID = &v
	}
	return session, nil
}

func (p *Postgres) GetSession(ctx context.Context, id int) (*model.QuizSession, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM quiz_sessions WHERE id = $1`, id)
	return scanSession(row)
}

func (p *Postgres) UpdateSession(ctx context.Context, id int, patch model.SessionPatch) (*model.QuizSession, error) {
	sets := []string{}
	args := []any{}

	if patch.CurrentQuestionIndex != nil {
		args = append(args, *patch.CurrentQuestionIndex)
		sets = append(sets, fmt.Sprintf("current_question_index = $%d", len(args)))
	}
	if patch.TimeRemaining != nil {
		args = append(args, *patch.TimeRemaining)
		sets = append(sets, fmt.Sprintf("time_remaining = $%d", len(args)))
	}
	if patch.Answers != nil {
		args = append(args, patch.Answers)
		sets = append(sets, fmt.Sprintf("answers = $%d", len(args)))
	}
	if patch.EndTime != nil {
		args = append(args, *patch.EndTime)
		sets = append(sets, fmt.Sprintf("end_time = $%d", len(args)))
	}

	if len(sets) == 0 {
		// Nothing to change; still reject patches against completed sessions.
		session, err := p.GetSession(ctx, id)
		if err != nil {
			return nil, err
		}
		if session.IsCompleted {
			return nil, ErrSessionCompleted
		}
		return session, nil
	}

	args = append(args, id)
	query := `UPDATE quiz_sessions SET `
	for i, set := range sets {
		if i > 0 {
			query += ", "
		}
		query += set
	}
	query += fmt.Sprintf(" WHERE id = $%d AND is_completed = FALSE RETURNING %s", len(args), sessionColumns)

	session, err := scanSession(p.pool.QueryRow(ctx, query, args...))
	if errors.Is(err, ErrNotFound) {
		// Either the session does not exist or it is already completed.
		existing, getErr := p.GetSession(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if existing.IsCompleted {
			return nil, ErrSessionCompleted
		}
		return nil, ErrNotFound
	}
	return session, err
}

func (p *Postgres) CompleteSession(ctx context.Context, id int, score int, categoryScores map[string]model.CategoryTally) (*model.QuizSession, error) {
	session, err := scanSession(p.pool.QueryRow(ctx,
		`UPDATE quiz_sessions
		 SET is_completed = TRUE, end_time = NOW(), score = $1, category_scores = $2
		 WHERE id = $3 AND is_completed = FALSE
		 RETURNING `+sessionColumns,
		score, categoryScores, id))
	if errors.Is(err, ErrNotFound) {
		existing, getErr := p.GetSession(ctx, id)
		if getErr != nil {
			return nil, getErr
		}
		if existing.IsCompleted {
			return nil, ErrSessionCompleted
		}
		return nil, ErrNotFound
	}
	return session, err
}

func (p *Postgres) DeleteSession(ctx context.Context, id int) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM quiz_sessions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (p *Postgres) ListExpiredSessions(ctx context.Context, olderThan time.Time) ([]int, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT id FROM quiz_sessions
		 WHERE is_completed = FALSE AND start_time < $1`, olderThan)
	if err != nil {
		return nil, fmt.Errorf("list expired sessions: %w", err)
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *Postgres) CreateResult(ctx context.Context, result *model.QuizResult) (*model.QuizResult, error) {
	stored := result.Clone()
	err := p.pool.QueryRow(ctx,
		`INSERT INTO quiz_results (session_id, total_questions, correct_answers, overall_score, category_breakdown)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, completed_at`,
		result.SessionID, result.TotalQuestions, result.CorrectAnswers,
		result.OverallScore, result.CategoryBreakdown,
	).Scan(&stored.ID, &stored.CompletedAt)
	if err != nil {
		return nil, fmt.Errorf("create result: %w", err)
	}
	return stored, nil
}

func (p *Postgres) GetResult(ctx context.Context, id int) (*model.QuizResult, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT `+resultColumns+` FROM quiz_results WHERE id = $1`, id)
	return scanResult(row)
}

func (p *Postgres) ListResultsForSession(ctx context.Context, sessionID int) ([]model.QuizResult, error) {
	rows, err := p.pool.Query(ctx,
		`SELECT `+resultColumns+` FROM quiz_results
		 WHERE session_id = $1
		 ORDER BY id ASC`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	defer rows.Close()

	results := []model.QuizResult{}
	for rows.Next() {
		r, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, *r)
	}
	return results, rows.Err()
}

func scanSession(row pgx.Row) (*model.QuizSession, error) {
	s := &model.QuizSession{}
	err := row.Scan(
		&s.ID, &s.UserID, &s.StartTime, &s.EndTime, &s.CurrentQuestionIndex,
		&s.TimeRemaining, &s.Answers, &s.IsCompleted, &s.Score, &s.CategoryScores,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan session: %w", err)
	}
	if s.Answers == nil {
		s.Answers = map[string]string{}
	}
	if s.CategoryScores == nil {
		s.CategoryScores = map[string]model.CategoryTally{}
	}
	return s, nil
}

func scanResult(row pgx.Row) (*model.QuizResult, error) {
	r := &model.QuizResult{}
	err := row.Scan(
		&r.ID, &r.SessionID, &r.TotalQuestions, &r.CorrectAnswers,
		&r.OverallScore, &r.CategoryBreakdown, &r.CompletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("scan result: %w", err)
	}
	return r, nil
}
