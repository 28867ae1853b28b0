package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"learning_iq/internal/domain/model"
)

type AttemptRepository interface {
	// RecordAttempt persists the new mastery map and appends the attempt row
	// as one transaction; a crash between the two must not be observable.
	RecordAttempt(ctx context.Context, masteryMap map[string]float64, attempt *model.QuizAttempt) error
	ListRecentScores(ctx context.Context, userID int64, limit int) ([]model.TestScore, error)
}

type pgAttemptRepository struct {
	db *sql.DB
}

func NewPgAttemptRepository(db *sql.DB) AttemptRepository {
	return &pgAttemptRepository{db: db}
}

func (r *pgAttemptRepository) RecordAttempt(ctx context.Context, masteryMap map[string]float64, attempt *model.QuizAttempt) error {
	encoded, err := json.Marshal(masteryMap)
	if err != nil {
		return fmt.Errorf("pgAttemptRepository.RecordAttempt: %w", err)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("pgAttemptRepository.RecordAttempt: %w", err)
	}
	defer tx.Rollback() // Rollback if not committed

	_, err = tx.ExecContext(ctx,
		`UPDATE users SET mastery_map = $1 WHERE id = $2`, encoded, attempt.UserID)
	if err != nil {
		return fmt.Errorf("pgAttemptRepository.RecordAttempt: update mastery_map: %w", err)
	}

	query := `INSERT INTO quiz_attempts (user_id, topic_id, score, time_seconds, confidence, reattempt_count)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at`
	err = tx.QueryRowContext(ctx, query,
		attempt.UserID, attempt.TopicID, attempt.Score,
		attempt.TimeSeconds, attempt.Confidence, attempt.ReattemptCount,
	).Scan(&attempt.ID, &attempt.CreatedAt)
	if err != nil {
		return fmt.Errorf("pgAttemptRepository.RecordAttempt: insert attempt: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("pgAttemptRepository.RecordAttempt: %w", err)
	}
	return nil
}

func (r *pgAttemptRepository) ListRecentScores(ctx context.Context, userID int64, limit int) ([]model.TestScore, error) {
	query := `
		SELECT qa.topic_id, t.name, qa.score, qa.created_at
		FROM quiz_attempts qa JOIN topics t ON qa.topic_id = t.id
		WHERE qa.user_id = $1
		ORDER BY qa.created_at DESC
		LIMIT $2`
	rows, err := r.db.QueryContext(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("pgAttemptRepository.ListRecentScores: %w", err)
	}
	defer rows.Close()

	scores := []model.TestScore{}
	for rows.Next() {
		var s model.TestScore
		if err := rows.Scan(&s.TopicID, &s.TopicName, &s.Score, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("pgAttemptRepository.ListRecentScores: %w", err)
		}
		scores = append(scores, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("pgAttemptRepository.ListRecentScores: %w", err)
	}
	return scores, nil
}
