package repository

import (
	"context"
	"fmt"

	"github.com/aliskhannn/quiz-manager/internal/domain/entities"
	"github.com/aliskhannn/quiz-manager/internal/infra/postgres"
)

const createScoresTable = `
	CREATE TABLE IF NOT EXISTS quiz_scores (
		id            UUID PRIMARY KEY,
		player_name   TEXT        NOT NULL,
		correct_count INTEGER     NOT NULL,
		total_count   INTEGER     NOT NULL,
		completed_at  TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)
`

// ScoreRepository stores finished quiz results in PostgreSQL.
type ScoreRepository struct {
	db postgres.DBTX
}

// NewScoreRepository creates a new ScoreRepository with the provided database handle.
func NewScoreRepository(db postgres.DBTX) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// EnsureSchema creates the scores table if it does not exist yet.
func (r *ScoreRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, createScoresTable); err != nil {
		return fmt.Errorf("create quiz_scores: %w", err)
	}
	return nil
}

// Save inserts a score entry. Saving the same session twice keeps the first entry.
func (r *ScoreRepository) Save(ctx context.Context, entry *entities.ScoreEntry) error {
	query := `
		INSERT INTO quiz_scores (id, player_name, correct_count, total_count, completed_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`

	_, err := r.db.Exec(
		ctx,
		query,
		entry.SessionID,
		entry.PlayerName,
		entry.Result.CorrectCount,
		entry.Result.TotalCount,
		entry.CompletedAt,
	)
	if err != nil {
		return fmt.Errorf("save score: %w", err)
	}

	return nil
}

// Top returns up to limit best scores, best first.
func (r *ScoreRepository) Top(ctx context.Context, limit int) ([]*entities.ScoreEntry, error) {
	query := `
		SELECT id::text, player_name, correct_count, total_count, completed_at
		FROM quiz_scores
		ORDER BY
			CASE WHEN total_count > 0 THEN correct_count * 100 / total_count ELSE 0 END DESC,
			correct_count DESC,
			completed_at ASC
		LIMIT $1
	`

	rows, err := r.db.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("get top scores: %w", err)
	}
	defer rows.Close()

	var entries []*entities.ScoreEntry
	for rows.Next() {
		var e entities.ScoreEntry
		if err := rows.Scan(
			&e.SessionID,
			&e.PlayerName,
			&e.Result.CorrectCount,
			&e.Result.TotalCount,
			&e.CompletedAt,
		); err != nil {
			return nil, fmt.Errorf("scan score: %w", err)
		}
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}
