// Command seed-questions loads the question catalog into PostgreSQL for
// deployments that serve the catalog from the database. The embedded seed
// is used unless QUESTIONS_FILE points at a JSON catalog.
package main

import (
	"context"
	"fmt"
	"time"

	"github.com/readylabs/aiready-backend/internal/catalog"
	"github.com/readylabs/aiready-backend/internal/config"
	"github.com/readylabs/aiready-backend/internal/database"
	"github.com/readylabs/aiready-backend/internal/logger"
)

func main() {
	cfg := config.Load()
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	cat := catalog.Default()
	if cfg.QuestionsFile != "" {
		cat, err = catalog.LoadFile(cfg.QuestionsFile)
		if err != nil {
			log.Fatal().Err(err).Str("file", cfg.QuestionsFile).Msg("Failed to load catalog file")
		}
	}

	questions := cat.ListAll()
	fmt.Printf("=== Seeding %d Questions ===\n", len(questions))

	tx, err := pool.Begin(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to begin transaction")
	}
	defer tx.Rollback(ctx)

	// Replace the catalog wholesale so reseeding is idempotent.
	if _, err := tx.Exec(ctx, `DELETE FROM questions`); err != nil {
		log.Fatal().Err(err).Msg("Failed to clear questions")
	}

	for _, q := range questions {
		_, err := tx.Exec(ctx,
			`INSERT INTO questions (id, category, type, question, options, correct_answer, explanation, order_num, allowed_file_types, max_file_size)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			q.ID, q.Category, q.Type, q.Question, q.Options,
			q.CorrectAnswer, q.Explanation, q.Order, q.AllowedFileTypes, q.MaxFileSize,
		)
		if err != nil {
			log.Fatal().Err(err).Int("question_id", q.ID).Msg("Failed to insert question")
		}
	}

	if _, err := tx.Exec(ctx,
		`SELECT setval(pg_get_serial_sequence('questions', 'id'), (SELECT COALESCE(MAX(id), 1) FROM questions))`,
	); err != nil {
		log.Fatal().Err(err).Msg("Failed to reset id sequence")
	}

	if err := tx.Commit(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to commit")
	}

	fmt.Println("Done.")
}
